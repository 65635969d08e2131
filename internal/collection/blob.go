package collection

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Blob is the key-value surface the Store persists through. Get returns
// (nil, nil) for a key that has never been written.
type Blob interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
	Delete(key string) error
}

// FileBlob stores each key as a JSON file under a directory.
type FileBlob struct {
	dir string
}

// NewFileBlob creates the directory if needed and returns a file-backed blob
func NewFileBlob(dir string) (*FileBlob, error) {
	if err := os.MkdirAll(dir, blobDirMode); err != nil {
		return nil, fmt.Errorf("failed to create blob directory %s: %w", dir, err)
	}
	return &FileBlob{dir: dir}, nil
}

func (b *FileBlob) path(key string) string {
	// Keys are internal constants, but keep path traversal out anyway.
	safe := strings.ReplaceAll(filepath.Base(key), string(filepath.Separator), "_")
	return filepath.Join(b.dir, safe+blobFileExt)
}

func (b *FileBlob) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgReadBlobFailed, key, err)
	}
	return data, nil
}

func (b *FileBlob) Put(key string, data []byte) error {
	// Write via temp file and rename so a crash never leaves a
	// half-written blob behind.
	path := b.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, blobFileMode); err != nil {
		return fmt.Errorf(ErrMsgWriteBlobFailed, key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf(ErrMsgWriteBlobFailed, key, err)
	}
	return nil
}

func (b *FileBlob) Delete(key string) error {
	if err := os.Remove(b.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete collection blob %q: %w", key, err)
	}
	return nil
}

// MemoryBlob is an in-memory Blob for tests and ephemeral sessions.
type MemoryBlob struct {
	data map[string][]byte
}

// NewMemoryBlob creates an empty in-memory blob
func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{data: make(map[string][]byte)}
}

func (b *MemoryBlob) Get(key string) ([]byte, error) {
	data, ok := b.data[key]
	if !ok {
		return nil, nil
	}
	return data, nil
}

func (b *MemoryBlob) Put(key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	b.data[key] = cp
	return nil
}

func (b *MemoryBlob) Delete(key string) error {
	delete(b.data, key)
	return nil
}
