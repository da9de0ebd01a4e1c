package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Placeholder is the built-in image used whenever nothing was uploaded.
// It ships with the static assets and is never deleted.
const Placeholder = "default.jpg"

// Store writes uploaded images into one directory and hands back the
// generated filename to keep in the database.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// Path maps a stored reference back to its location on disk.
func (s *Store) Path(ref string) string {
	return filepath.Join(s.dir, ref)
}

// Save writes the uploaded file under a collision-resistant name:
// the context tokens, a timestamp and the sanitized original filename,
// joined by underscores. Пример: product_3_0_20230101_120000_cloak.jpg
func (s *Store) Save(fh *multipart.FileHeader, tokens ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" && ext != ".gif" {
		return "", fmt.Errorf("unsupported image format %q", ext)
	}

	name := fmt.Sprintf("%s_%s_%s",
		strings.Join(tokens, "_"),
		time.Now().Format("20060102_150405"),
		sanitize(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

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

// Remove deletes the backing file. The placeholder is exempt, and a file
// that is already gone is not an error.
func (s *Store) Remove(ref string) error {
	if ref == "" || ref == Placeholder {
		return nil
	}
	if err := os.Remove(s.Path(ref)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// sanitize strips anything that could escape the upload dir or break a
// URL: path components go, spaces and odd runes become underscores.
func sanitize(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.TrimLeft(b.String(), ".")
}
