package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/qharbor/sync-agent/internal/converters"
	"github.com/qharbor/sync-agent/internal/versions"
)

const (
	// DatasetInfoFile is the fixed name of the dataset info file within a
	// dataset directory.
	DatasetInfoFile = "_QH_dataset_info.yaml"

	// InfoVersion is the info file format version written by this agent.
	InfoVersion = "0.1"

	// timeFormat is the on-disk form of the creation timestamp.
	timeFormat = "2006-01-02T15:04:05"
)

var (
	// ErrNotADirectory is returned when the dataset path exists but is not
	// a directory.
	ErrNotADirectory = errors.New("the specified path is not a directory")

	// ErrInvalidAttributes is returned when an attribute value is not a
	// scalar. Attributes must have a depth of exactly one.
	ErrInvalidAttributes = errors.New(
		"attributes must be a mapping with a depth of 1, and values of type string, int, or float")

	// ErrInvalidConverters is returned when a converter does not satisfy
	// the file converter contract.
	ErrInvalidConverters = errors.New("converters must be file converters with input and output types")

	// ErrWriteInfoFailed is returned when the dataset info file cannot be
	// written. The underlying cause is chained.
	ErrWriteInfoFailed = errors.New("failed to write dataset info file")

	// ErrInfoVersionUnsupported is returned when an info file on disk was
	// written by a newer agent than this one.
	ErrInfoVersionUnsupported = errors.New("dataset info file version is newer than supported")
)

// Info describes a dataset. All fields are optional; zero values are
// omitted from the written file.
type Info struct {
	// Name is the dataset name.
	Name string

	// Creation is the creation time of the dataset.
	Creation *time.Time

	// Description is a brief description of the dataset.
	Description string

	// Attributes is a flat mapping of dataset attributes. Values must be
	// strings, integers or floats.
	Attributes map[string]any

	// Keywords is an ordered list of keywords associated with the dataset.
	Keywords []string

	// Converters declares the file converters to apply when the dataset is
	// synchronized.
	Converters []converters.FileConverter

	// Skip lists file or folder patterns excluded from synchronization,
	// e.g. ["*.json", "text.txt"].
	Skip []string
}

// InfoFile is the serialized form of a dataset info file.
type InfoFile struct {
	Version     string                    `yaml:"version"`
	Name        string                    `yaml:"name,omitempty"`
	Creation    string                    `yaml:"creation,omitempty"`
	Description string                    `yaml:"description,omitempty"`
	Attributes  map[string]any            `yaml:"attributes,omitempty"`
	Keywords    []string                  `yaml:"keywords,omitempty"`
	Converters  map[string]converters.Ref `yaml:"converters,omitempty"`
	Skip        []string                  `yaml:"skip,omitempty"`
}

// GenerateInfo validates info and writes the dataset info file into the
// directory at path. The directory is created, including parents, when it
// does not exist yet. An existing info file at the destination is replaced
// atomically. Validation failures surface before any filesystem change.
func GenerateInfo(path string, info Info) error {
	doc := InfoFile{Version: InfoVersion}

	doc.Name = info.Name
	if info.Creation != nil {
		doc.Creation = info.Creation.Format(timeFormat)
	}
	doc.Description = info.Description

	if len(info.Attributes) > 0 {
		for key, value := range info.Attributes {
			if !isScalar(value) {
				return fmt.Errorf("%w (attribute %q has type %T)", ErrInvalidAttributes, key, value)
			}
		}
		doc.Attributes = info.Attributes
	}

	doc.Keywords = info.Keywords

	if len(info.Converters) > 0 {
		encoded, err := encodeConverters(info.Converters)
		if err != nil {
			return err
		}
		doc.Converters = encoded
	}

	doc.Skip = info.Skip

	if err := ensureDirectory(path); err != nil {
		return err
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteInfoFailed, err)
	}
	if err := writeFileAtomic(filepath.Join(path, DatasetInfoFile), data); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteInfoFailed, err)
	}
	return nil
}

// ReadInfo loads the dataset info file from the directory at path. Info
// files written by a newer agent version are rejected.
func ReadInfo(path string) (*InfoFile, error) {
	data, err := os.ReadFile(filepath.Join(path, DatasetInfoFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset info file: %w", err)
	}

	var doc InfoFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse dataset info file: %w", err)
	}

	if versions.IsNewerVersion(doc.Version, InfoVersion) {
		return nil, fmt.Errorf("%w: %s", ErrInfoVersionUnsupported, doc.Version)
	}
	return &doc, nil
}

// isScalar reports whether v is an attribute value of supported scalar type.
func isScalar(v any) bool {
	switch v.(type) {
	case string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

// encodeConverters turns converter implementations into their serialized
// references, keyed by the canonical converter name. Two converters with the
// same input/output pair collapse onto one key, last one wins.
func encodeConverters(convs []converters.FileConverter) (map[string]converters.Ref, error) {
	encoded := make(map[string]converters.Ref, len(convs))
	for _, c := range convs {
		if c == nil || c.InputType() == "" || c.OutputType() == "" {
			return nil, fmt.Errorf("%w (converter %T)", ErrInvalidConverters, c)
		}
		name, ref := converters.Describe(c)
		encoded[name] = ref
	}
	return encoded, nil
}

// ensureDirectory creates the dataset directory when absent and rejects
// destinations that exist as something other than a directory.
func ensureDirectory(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrNotADirectory, path)
		}
		return nil
	case os.IsNotExist(err):
		if mkErr := os.MkdirAll(path, 0750); mkErr != nil {
			return fmt.Errorf("failed to create dataset directory: %w", mkErr)
		}
		return nil
	default:
		return fmt.Errorf("failed to stat dataset directory: %w", err)
	}
}
