package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStorage writes rendered media into a directory served under /media/.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Save stores the content under a fresh uuid-based name with the given
// extension and returns the filename.
func (s *LocalStorage) Save(ext string, reader io.Reader) (string, error) {
	filename := uuid.New().String() + ext
	fullPath := filepath.Join(s.dir, filename)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filename, nil
}

func (s *LocalStorage) GetPath(filename string) string {
	return filepath.Join(s.dir, filename)
}

func (s *LocalStorage) Delete(filename string) error {
	return os.Remove(filepath.Join(s.dir, filename))
}
