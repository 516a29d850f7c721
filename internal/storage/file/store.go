// Package file persists the dataset as JSON documents on local disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/honeycarbs/skillviz/internal/domain"
	"github.com/honeycarbs/skillviz/internal/repository"
)

const (
	mainFile       = "admin_data.json"
	categoriesFile = "categories_data.json"
	metadataFile   = "metadata.json"
)

// Ensure Store implements repository.Storage
var _ repository.Storage = (*Store)(nil)

// Store reads and writes the dataset under a single directory
type Store struct {
	dir string
}

// NewStore creates the data directory if needed
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// LoadMain reads the full record table. A missing file is an empty dataset.
func (s *Store) LoadMain(_ context.Context) ([]domain.JobRecord, error) {
	var records []domain.JobRecord
	if err := s.read(mainFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadCategories reads the per-category partitions
func (s *Store) LoadCategories(_ context.Context) (map[string][]domain.JobRecord, error) {
	partitions := make(map[string][]domain.JobRecord)
	if err := s.read(categoriesFile, &partitions); err != nil {
		return nil, err
	}
	return partitions, nil
}

// SaveMain writes the full record table
func (s *Store) SaveMain(_ context.Context, records []domain.JobRecord) error {
	if records == nil {
		records = []domain.JobRecord{}
	}
	return s.write(mainFile, records)
}

// SaveCategories writes the per-category partitions
func (s *Store) SaveCategories(_ context.Context, partitions map[string][]domain.JobRecord) error {
	if partitions == nil {
		partitions = map[string][]domain.JobRecord{}
	}
	return s.write(categoriesFile, partitions)
}

// SaveMetadata writes the dataset metadata document
func (s *Store) SaveMetadata(_ context.Context, meta repository.Metadata) error {
	return s.write(metadataFile, meta)
}

// ClearAll removes every data file
func (s *Store) ClearAll(_ context.Context) error {
	for _, name := range []string{mainFile, categoriesFile, metadataFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) read(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// write replaces the target atomically via a temp file in the same dir.
func (s *Store) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	target := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
