package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BlobStore is the photo-evidence collaborator: store bytes under a key,
// hand back a public URL for that key.
type BlobStore interface {
	Put(key string, r io.Reader) error
	PublicURL(key string) string
}

// DiskStore keeps blobs in a directory served by the web server under
// baseURL (the /uploads static mount).
type DiskStore struct {
	Dir     string
	BaseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &DiskStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *DiskStore) Put(key string, r io.Reader) error {
	if !validKey(key) {
		return fmt.Errorf("invalid blob key %q", key)
	}
	f, err := os.Create(filepath.Join(s.Dir, key))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return err
	}
	return f.Sync()
}

func (s *DiskStore) PublicURL(key string) string {
	return s.BaseURL + "/" + key
}

// NewKey builds a collision-free blob key preserving the upload's extension.
func NewKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 10 {
		ext = ""
	}
	return uuid.New().String() + ext
}

// validKey rejects anything that could escape the upload directory.
func validKey(key string) bool {
	if key == "" || strings.ContainsAny(key, "/\\") {
		return false
	}
	return key == filepath.Base(key)
}
