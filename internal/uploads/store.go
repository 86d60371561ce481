// Package uploads stores user-submitted media under a flat directory,
// addressed by generated filename. Callers persist the filename only.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	".mp4": true, ".webm": true, ".ogg": true,
	".pdf": true, ".ppt": true, ".pptx": true, ".doc": true, ".docx": true,
	".xls": true, ".xlsx": true, ".csv": true,
}

type Store struct {
	dir      string
	maxBytes int64
}

func NewStore(dir string, maxSizeMB int) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: int64(maxSizeMB) << 20}, nil
}

// Save writes the uploaded file under a fresh uuid-prefixed name and
// returns that name. The original filename only contributes its extension.
func (s *Store) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > s.maxBytes {
		return "", fmt.Errorf("file too large: %d bytes", fileHeader.Size)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExts[ext] {
		return "", fmt.Errorf("file type %q not allowed", ext)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

// Path resolves a stored filename, rejecting anything that escapes the
// upload directory.
func (s *Store) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	p := filepath.Join(s.dir, filename)
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return p, nil
}

func (s *Store) Dir() string { return s.dir }
