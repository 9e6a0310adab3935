package dataset

import "os"

// writeFileAtomic writes data to a temporary file next to path and renames
// it over the destination, so a crash mid-write never leaves a truncated
// file behind.
func writeFileAtomic(path string, data []byte) error {
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return err
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return err
	}
	return nil
}
