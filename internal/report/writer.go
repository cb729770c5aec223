package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dbsmedya/autoprobe/internal/types"
)

// FileStore writes the summary and names files. Every Save replaces both
// files completely, so it can be called any number of times.
type FileStore struct {
	SummaryPath string
	NamesPath   string
}

// NewFileStore creates a FileStore for the two output paths.
func NewFileStore(summaryPath, namesPath string) *FileStore {
	return &FileStore{SummaryPath: summaryPath, NamesPath: namesPath}
}

// Save writes the summary file, then the names file.
func (s *FileStore) Save(summary types.RunSummary, names *types.VersionNames) error {
	if err := writeJSON(s.SummaryPath, summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if err := writeJSON(s.NamesPath, names); err != nil {
		return fmt.Errorf("write names: %w", err)
	}
	return nil
}

// writeJSON encodes v with two-space indentation and atomically replaces path.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
