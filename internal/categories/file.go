package categories

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/paper-hunter/paper-hunter/internal/apperr"
	"github.com/paper-hunter/paper-hunter/internal/domain"
)

// FileStore reads the category taxonomy from a YAML file keyed by source:
//
//	arxiv:
//	  - value: cs.AI
//	    label: Artificial Intelligence
//	    field: Computer Science
//	biorxiv:
//	  - value: genomics
//	    label: Genomics
//
// The file is read once at startup; the taxonomy changes rarely.
type FileStore struct {
	bySource map[string][]domain.Category
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) (*FileStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open categories file: %w", err)
	}
	defer f.Close()

	return NewFileStoreFromReader(f)
}

func NewFileStoreFromReader(r io.Reader) (*FileStore, error) {
	decoder := yaml.NewDecoder(r)

	var bySource map[string][]domain.Category
	if err := decoder.Decode(&bySource); err != nil {
		return nil, fmt.Errorf("failed to decode categories file: %w", err)
	}

	return &FileStore{bySource: bySource}, nil
}

func (s *FileStore) List(_ context.Context, source domain.Source) ([]domain.Category, error) {
	rows := s.bySource[string(source)]
	if len(rows) == 0 {
		return nil, apperr.NewNotFound("no categories found")
	}
	return rows, nil
}
