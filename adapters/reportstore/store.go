package reportstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"qareview/domain/core"
	"qareview/domain/review"
	"qareview/internal/errors"
)

// Store persists reports as pretty-printed JSON files. Writes go to a
// temporary file first and are renamed into place, so an interrupted write
// never leaves a file that could pass for a complete report.
type Store struct{}

// New creates a new report store
func New() *Store {
	return &Store{}
}

// Store serializes a report to UTF-8 JSON at path
func (s *Store) Store(ctx context.Context, path string, report any) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.WriteFailed(path, err)
	}
	return s.StoreBytes(ctx, path, append(data, '\n'))
}

// StoreBytes writes raw artifact bytes at path
func (s *Store) StoreBytes(ctx context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.WriteFailed(path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return errors.WriteFailed(path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.WriteFailed(path, err)
	}
	return nil
}

// LoadAnalysis reads a previously written analysis report
func (s *Store) LoadAnalysis(ctx context.Context, path string) (*review.AnalysisReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.InputInvalid("failed to read analysis report: "+path, err)
	}

	var report review.AnalysisReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errors.InputInvalid("malformed analysis report: "+path, core.ErrReportInvalid)
	}
	return &report, nil
}
