// Package upload stores admin profile photos on the local filesystem and maps
// them to the static path prefix they are served under.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store writes uploaded files into a single directory. Replacement of an
// existing photo is delete-old-then-write-new and best effort, not atomic.
type Store struct {
	Dir        string
	PathPrefix string
}

// NewStore creates the upload directory if missing.
func NewStore(dir, pathPrefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{Dir: dir, PathPrefix: strings.TrimSuffix(pathPrefix, "/")}, nil
}

// Save writes the uploaded content under a generated filename and returns the
// public path the file is served at.
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	ext := filepath.Ext(originalName)
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return s.PathPrefix + "/" + name, nil
}

// Remove deletes the file behind a previously returned public path. A missing
// file is not an error.
func (s *Store) Remove(publicPath string) error {
	name := filepath.Base(publicPath)
	err := os.Remove(filepath.Join(s.Dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
