// server/upload/upload.go
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrUnsupportedType = errors.New("unsupported image type")
var ErrTooLarge = errors.New("file exceeds size limit")

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Store writes uploaded team logos to a local directory. Filenames are
// prefixed with a UUID so two logos named "logo.png" never collide, and
// the overlay serves them straight off disk.
type Store struct {
	dir      string
	maxBytes int64
}

func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

// Save validates and writes one upload, returning the stored filename.
// Validation is extension allow-list plus a magic-byte sniff, so a
// renamed executable doesn't land in the overlay's static directory.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", ErrTooLarge
	}
	if !looksLikeImage(data) {
		return "", ErrUnsupportedType
	}

	name := uuid.NewString() + "-" + SanitizeFilename(originalName)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload %s: %w", name, err)
	}
	return name, nil
}

// looksLikeImage checks the magic bytes of the formats the extension
// allow-list admits.
func looksLikeImage(data []byte) bool {
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}): // JPEG
		return true
	case bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4E, 0x47}): // PNG
		return true
	case bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")):
		return true
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return true
	}
	return false
}

// SanitizeFilename strips path components and reduces the rest to a safe
// character set.
func SanitizeFilename(name string) string {
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
	out := b.String()
	if out == "" || strings.Trim(out, ".") == "" {
		out = "upload"
	}
	return out
}

// ContentTypeFor maps a stored filename to its MIME type for serving.
func ContentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// Path returns the on-disk path for a stored filename, refusing anything
// that tries to escape the upload directory.
func (s *Store) Path(filename string) (string, error) {
	if filename != filepath.Base(filename) || filename == "." || filename == ".." {
		return "", fmt.Errorf("invalid upload filename %q", filename)
	}
	return filepath.Join(s.dir, filename), nil
}

// FileInfo is what the cleanup sweep needs to know about one upload.
type FileInfo struct {
	Name    string
	ModTime time.Time
}

// ListFiles returns every stored upload with its modification time.
func (s *Store) ListFiles() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list upload directory: %w", err)
	}
	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{Name: entry.Name(), ModTime: info.ModTime()})
	}
	return files, nil
}

// Delete removes one stored upload.
func (s *Store) Delete(filename string) error {
	path, err := s.Path(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete upload %s: %w", filename, err)
	}
	return nil
}
