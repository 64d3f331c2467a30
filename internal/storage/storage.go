package storage

import "io"

// SavedFile describes the stored object after a successful write.
type SavedFile struct {
	Filename string
	Path     string
	URL      string
}

// Storage persists uploaded files. Save must complete durably before the
// caller records any reference to the file.
type Storage interface {
	Save(originalName string, r io.Reader) (*SavedFile, error)
	Open(filename string) (io.ReadCloser, error)
	Delete(filename string) error
}

type Config struct {
	BasePath string
	BaseURL  string
}

func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg.BasePath, cfg.BaseURL)
}
