// server/upload/upload_test.go
package upload

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func newTestStore(t *testing.T, maxBytes int64) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), maxBytes)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestSaveAcceptsRealPNG(t *testing.T) {
	s := newTestStore(t, 1<<20)

	name, err := s.Save("logo.png", bytes.NewReader(append(pngHeader, 1, 2, 3)))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(name, "-logo.png") {
		t.Errorf("stored name = %q, want uuid prefix and original suffix", name)
	}

	path, err := s.Path(name)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
}

func TestSaveRejectsBadExtension(t *testing.T) {
	s := newTestStore(t, 1<<20)
	if _, err := s.Save("logo.svg", bytes.NewReader(pngHeader)); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestSaveRejectsMismatchedMagicBytes(t *testing.T) {
	s := newTestStore(t, 1<<20)
	// Valid extension but the content is a script, not an image.
	if _, err := s.Save("logo.png", strings.NewReader("#!/bin/sh\nrm -rf /\n")); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	s := newTestStore(t, 16)
	big := append(pngHeader, bytes.Repeat([]byte{0}, 32)...)
	if _, err := s.Save("logo.png", bytes.NewReader(big)); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestSaveStripsPathComponents(t *testing.T) {
	s := newTestStore(t, 1<<20)
	name, err := s.Save("../../etc/passwd.png", bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if strings.Contains(name, "/") || strings.Contains(name, "..") {
		t.Errorf("stored name %q keeps path components", name)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"logo.png", "logo.png"},
		{"my logo (1).png", "my_logo__1_.png"},
		{"../../x.png", "x.png"},
		{"ütf8 ñame.png", "_tf8__ame.png"},
		{"...", "upload"},
	}
	for _, c := range cases {
		if got := SanitizeFilename(c.in); got != c.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPathRefusesTraversal(t *testing.T) {
	s := newTestStore(t, 1<<20)
	for _, bad := range []string{"../secret.png", "a/b.png", "..", "."} {
		if _, err := s.Path(bad); err == nil {
			t.Errorf("Path(%q) accepted a traversal attempt", bad)
		}
	}
}

func TestContentTypeFor(t *testing.T) {
	if got := ContentTypeFor("x.WEBP"); got != "image/webp" {
		t.Errorf("ContentTypeFor(x.WEBP) = %q", got)
	}
	if got := ContentTypeFor("x.bin"); got != "application/octet-stream" {
		t.Errorf("ContentTypeFor(x.bin) = %q", got)
	}
}

func TestListAndDelete(t *testing.T) {
	s := newTestStore(t, 1<<20)
	name, err := s.Save("a.png", bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	files, err := s.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 1 || files[0].Name != name {
		t.Fatalf("ListFiles = %+v, want just %q", files, name)
	}

	if err := s.Delete(name); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	path, _ := s.Path(name)
	if _, err := os.Stat(filepath.Clean(path)); !os.IsNotExist(err) {
		t.Fatalf("file still present after delete: %v", err)
	}
}
