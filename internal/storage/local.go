package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidFilename = errors.New("invalid filename")

// LocalStorage writes files under a single flat directory on local disk.
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStorage{basePath: basePath, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes the stream to a uniquely named file. The temp-then-rename dance
// is skipped: a partial write fails the request and the name is never reused.
func (s *LocalStorage) Save(originalName string, r io.Reader) (*SavedFile, error) {
	ext := filepath.Ext(originalName)
	filename := uuid.NewString() + ext
	fullPath := filepath.Join(s.basePath, filename)

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(fullPath)
		return nil, fmt.Errorf("write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(fullPath)
		return nil, fmt.Errorf("close file: %w", err)
	}

	return &SavedFile{
		Filename: filename,
		Path:     fullPath,
		URL:      s.baseURL + "/" + filename,
	}, nil
}

// Open rejects any name that would escape the storage directory.
func (s *LocalStorage) Open(filename string) (io.ReadCloser, error) {
	if !validFilename(filename) {
		return nil, ErrInvalidFilename
	}
	return os.Open(filepath.Join(s.basePath, filename))
}

func (s *LocalStorage) Delete(filename string) error {
	if !validFilename(filename) {
		return ErrInvalidFilename
	}
	err := os.Remove(filepath.Join(s.basePath, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func validFilename(name string) bool {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return false
	}
	return filepath.Base(name) == name && name != "." && name != ".."
}
