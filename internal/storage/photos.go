// Package storage persists uploaded ID-card photos on local disk.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxPhotoSize is the upload ceiling for ID-card photos.
const MaxPhotoSize = 5 << 20 // 5 MB

// ErrTooLarge is returned when an upload exceeds MaxPhotoSize. It is a
// client error, not a server failure.
var ErrTooLarge = errors.New("photo exceeds the 5 MB upload limit")

// PhotoStore writes uploaded photos into a directory and returns the stored
// path, which is kept on the employee record as the photo reference.
type PhotoStore struct {
	dir string
}

func NewPhotoStore(dir string) (*PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", dir, err)
	}
	return &PhotoStore{dir: dir}, nil
}

// Save stores the uploaded file under a random name, preserving the original
// extension, and returns the path of the stored file.
func (p *PhotoStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxPhotoSize {
		return "", ErrTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	path := filepath.Join(p.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write photo file: %w", err)
	}
	return filepath.ToSlash(path), nil
}
