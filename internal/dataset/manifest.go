package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/qharbor/sync-agent/internal/versions"
)

const (
	// ManifestFile is the fixed name of the sync manifest within a dataset
	// directory.
	ManifestFile = ".QH_manifest.yaml"

	// ManifestVersion is the manifest format version written by this agent.
	ManifestVersion = "0.1"

	// StatusOK marks a file record as uploaded and up to date.
	StatusOK = "OK"

	// StatusError marks a file record as failed.
	StatusError = "Error"
)

// ErrWriteManifestFailed is returned when the sync manifest cannot be
// written. The underlying cause is chained.
var ErrWriteManifestFailed = errors.New("failed to write manifest file")

// ConvertedRecord tracks the upload of a converted form of a file.
type ConvertedRecord struct {
	Output string `yaml:"output"`
	MTime  string `yaml:"m_time"`
	Status string `yaml:"status"`
	Error  string `yaml:"error,omitempty"`
}

// FileRecord tracks the upload state of one file of a dataset.
type FileRecord struct {
	MTime     string                      `yaml:"m_time,omitempty"`
	Status    string                      `yaml:"status,omitempty"`
	Error     string                      `yaml:"error,omitempty"`
	Converted map[string]*ConvertedRecord `yaml:"converted,omitempty"`
}

// manifestDoc is the serialized form of a sync manifest.
type manifestDoc struct {
	Version     string                 `yaml:"version"`
	DatasetUUID string                 `yaml:"dataset_uuid"`
	ScopeUUID   string                 `yaml:"scope_uuid"`
	SyncPath    string                 `yaml:"dataset_sync_path,omitempty"`
	SyncTime    string                 `yaml:"sync_time"`
	Files       map[string]*FileRecord `yaml:"files"`
	Errors      []string               `yaml:"errors"`
	Logs        []string               `yaml:"logs,omitempty"`
}

// Manifest is the agent's bookkeeping of one dataset synchronization. It is
// not safe for concurrent use.
type Manifest struct {
	path string
	doc  manifestDoc
}

// NewManifest creates a fresh manifest for the dataset directory at path.
func NewManifest(path string, datasetUUID, scopeUUID uuid.UUID) *Manifest {
	return &Manifest{
		path: path,
		doc: manifestDoc{
			Version:     ManifestVersion,
			DatasetUUID: datasetUUID.String(),
			ScopeUUID:   scopeUUID.String(),
			SyncPath:    path,
			SyncTime:    time.Now().Format(time.RFC3339),
			Files:       map[string]*FileRecord{},
			Errors:      []string{},
		},
	}
}

// OpenManifest returns the manifest for the dataset directory at path. When
// a manifest exists on disk for the same scope it is reused, adopting its
// dataset UUID (the on-disk identity wins over the caller's). A missing,
// unreadable or foreign-scope manifest yields a fresh one; the load error,
// if any, is recorded in the fresh manifest's error list.
func OpenManifest(path string, datasetUUID, scopeUUID uuid.UUID) *Manifest {
	m := NewManifest(path, datasetUUID, scopeUUID)

	data, err := os.ReadFile(filepath.Join(path, ManifestFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			m.AddError(fmt.Errorf("error loading previous manifest: %w", err))
		}
		return m
	}

	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		m.AddError(fmt.Errorf("error loading previous manifest: %w", err))
		return m
	}
	if versions.IsNewerVersion(doc.Version, ManifestVersion) {
		m.AddError(fmt.Errorf("previous manifest has unsupported version %s", doc.Version))
		return m
	}

	if doc.ScopeUUID == scopeUUID.String() {
		doc.Errors = []string{}
		if doc.Files == nil {
			doc.Files = map[string]*FileRecord{}
		}
		m.doc = doc
	}
	return m
}

// DatasetUUID returns the dataset identity carried by the manifest. After
// OpenManifest this may differ from the UUID the caller passed in; the
// caller is expected to adopt it.
func (m *Manifest) DatasetUUID() (uuid.UUID, error) {
	return uuid.Parse(m.doc.DatasetUUID)
}

// AddError appends an error to the manifest's error list.
func (m *Manifest) AddError(err error) {
	m.doc.Errors = append(m.doc.Errors, err.Error())
}

// AddLog appends a timestamped log line to the manifest.
func (m *Manifest) AddLog(log string) {
	m.doc.Logs = append(m.doc.Logs, fmt.Sprintf("%s - %s", time.Now().Format(time.RFC3339), log))
}

// Logs returns the manifest's log lines.
func (m *Manifest) Logs() []string {
	return m.doc.Logs
}

// HasErrors reports whether the manifest carries any errors.
func (m *Manifest) HasErrors() bool {
	return len(m.doc.Errors) > 0
}

// ErrorSummary returns a human-readable summary of the manifest's errors.
func (m *Manifest) ErrorSummary() string {
	if len(m.doc.Errors) == 0 {
		return "No errors found."
	}
	summary := "Errors found in the manifest:"
	for _, e := range m.doc.Errors {
		summary += "\n\t - " + e
	}
	return summary
}

// IsFileUploaded checks whether the named file has been uploaded and is up
// to date, by comparing the recorded modification time and status. Pass
// converterName to check a converted form of the file instead.
func (m *Manifest) IsFileUploaded(fileName, filePath, converterName string) bool {
	record, ok := m.doc.Files[fileName]
	if !ok {
		return false
	}

	mtime, err := modTime(filePath)
	if err != nil {
		return false
	}

	if converterName == "" {
		return record.MTime == mtime && record.Status == StatusOK
	}
	converted, ok := record.Converted[converterName]
	if !ok {
		return false
	}
	return converted.MTime == mtime && converted.Status == StatusOK
}

// RecordFileUpload records the outcome of uploading a file. A nil uploadErr
// marks the file as uploaded.
func (m *Manifest) RecordFileUpload(fileName, filePath string, uploadErr error) {
	record := m.fileRecord(fileName)

	mtime, err := modTime(filePath)
	if err != nil {
		record.Status = StatusError
		record.Error = err.Error()
		return
	}
	record.MTime = mtime
	if uploadErr == nil {
		record.Status = StatusOK
		record.Error = ""
	} else {
		record.Status = StatusError
		record.Error = uploadErr.Error()
	}
}

// RecordConvertedUpload records the outcome of converting and uploading a
// file. outputPath is the path of the converted artifact; a nil uploadErr
// marks the conversion as successful.
func (m *Manifest) RecordConvertedUpload(fileName, filePath, outputPath, converterName string, uploadErr error) {
	record := m.fileRecord(fileName)
	if record.Converted == nil {
		record.Converted = map[string]*ConvertedRecord{}
	}
	converted, ok := record.Converted[converterName]
	if !ok {
		converted = &ConvertedRecord{}
		record.Converted[converterName] = converted
	}

	converted.Output = outputPath
	mtime, err := modTime(filePath)
	if err != nil {
		converted.Status = StatusError
		converted.Error = err.Error()
		return
	}
	converted.MTime = mtime
	if uploadErr == nil {
		converted.Status = StatusOK
		converted.Error = ""
	} else {
		converted.Status = StatusError
		converted.Error = uploadErr.Error()
	}
}

// Write persists the manifest into its dataset directory, replacing any
// previous manifest atomically.
func (m *Manifest) Write() error {
	data, err := yaml.Marshal(&m.doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteManifestFailed, err)
	}
	if err := writeFileAtomic(filepath.Join(m.path, ManifestFile), data); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteManifestFailed, err)
	}
	return nil
}

func (m *Manifest) fileRecord(fileName string) *FileRecord {
	if m.doc.Files == nil {
		m.doc.Files = map[string]*FileRecord{}
	}
	record, ok := m.doc.Files[fileName]
	if !ok {
		record = &FileRecord{}
		m.doc.Files[fileName] = record
	}
	return record
}

// modTime returns the modification time of a file, or for a directory the
// maximum modification time over its tree, as an RFC 3339 timestamp.
func modTime(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	latest := info.ModTime()
	if info.IsDir() {
		err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			fi, err := d.Info()
			if err != nil {
				return err
			}
			if fi.ModTime().After(latest) {
				latest = fi.ModTime()
			}
			return nil
		})
		if err != nil {
			return "", err
		}
	}
	return latest.Format(time.RFC3339Nano), nil
}
