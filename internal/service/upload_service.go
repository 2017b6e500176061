package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the path under which uploaded files are served.
const URLPrefix = "/uploads"

// UploadService stores uploaded chart images under a content root,
// addressed by a random filename that keeps the original extension.
// Content type and size are not validated.
type UploadService struct {
	dir string
}

// NewUploadService creates the upload root if needed
func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadService{dir: dir}, nil
}

// Dir returns the upload root, for static serving.
func (s *UploadService) Dir() string {
	return s.dir
}

// Save writes the content to disk and returns its serving path
func (s *UploadService) Save(_ context.Context, filename string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}

	return URLPrefix + "/" + name, nil
}
