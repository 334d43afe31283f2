package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore persists uploaded product images and returns a public URL
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(url string) error
}

// LocalStore stores images on the local filesystem under a media
// directory served statically by the HTTP server.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates a local image store rooted at dir
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save writes the uploaded file under a random name, keeping the extension
func (s *LocalStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// Remove deletes a previously stored image. Unknown URLs are ignored.
func (s *LocalStore) Remove(url string) error {
	if url == "" || !strings.HasPrefix(url, s.baseURL+"/") {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(url, s.baseURL+"/"))
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
