// server/cleanup/sweeper_test.go
package cleanup

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/streamkit/stream-manager/server/upload"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// recordingClearer remembers which filenames it was asked to scrub and
// can be made to fail every call.
type recordingClearer struct {
	cleared []string
	err     error
}

func (rc *recordingClearer) ClearLogoReferences(_ context.Context, filename string) error {
	rc.cleared = append(rc.cleared, filename)
	return rc.err
}

func saveUpload(t *testing.T, store *upload.Store, name string) string {
	t.Helper()
	stored, err := store.Save(name, bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("Save(%s): %v", name, err)
	}
	return stored
}

func backdate(t *testing.T, store *upload.Store, name string, age time.Duration) {
	t.Helper()
	path, err := store.Path(name)
	if err != nil {
		t.Fatalf("Path(%s): %v", name, err)
	}
	old := time.Now().Add(-age)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("Chtimes(%s): %v", name, err)
	}
}

func names(files []upload.FileInfo) map[string]bool {
	out := make(map[string]bool, len(files))
	for _, f := range files {
		out[f.Name] = true
	}
	return out
}

func TestSweepRemovesOnlyExpiredFiles(t *testing.T) {
	store, err := upload.NewStore(t.TempDir(), 1<<20)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	stale := saveUpload(t, store, "old.png")
	fresh := saveUpload(t, store, "new.png")
	backdate(t, store, stale, 25*time.Hour)

	clearer := &recordingClearer{}
	sweeper := NewSweeper(store, nil, 24*time.Hour, time.Hour, clearer)
	sweeper.Sweep(context.Background())

	remaining, err := store.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	got := names(remaining)
	if got[stale] {
		t.Errorf("stale upload %s survived the sweep", stale)
	}
	if !got[fresh] {
		t.Errorf("fresh upload %s was removed", fresh)
	}
	if len(clearer.cleared) != 1 || clearer.cleared[0] != stale {
		t.Errorf("cleared references = %v, want just %q", clearer.cleared, stale)
	}
}

func TestSweepContinuesPastClearerFailures(t *testing.T) {
	store, err := upload.NewStore(t.TempDir(), 1<<20)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	staleA := saveUpload(t, store, "a.png")
	staleB := saveUpload(t, store, "b.png")
	backdate(t, store, staleA, 48*time.Hour)
	backdate(t, store, staleB, 48*time.Hour)

	failing := &recordingClearer{err: errors.New("db unavailable")}
	working := &recordingClearer{}
	sweeper := NewSweeper(store, nil, 24*time.Hour, time.Hour, failing, working)
	sweeper.Sweep(context.Background())

	remaining, err := store.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("%d stale upload(s) survived after a clearer failure", len(remaining))
	}
	// Every file still reaches every clearer, failures included.
	if len(failing.cleared) != 2 {
		t.Errorf("failing clearer saw %d file(s), want 2", len(failing.cleared))
	}
	if len(working.cleared) != 2 {
		t.Errorf("working clearer saw %d file(s), want 2", len(working.cleared))
	}
}

func TestSweepKeepsFilesInsideRetentionWindow(t *testing.T) {
	store, err := upload.NewStore(t.TempDir(), 1<<20)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	recent := saveUpload(t, store, "recent.png")
	backdate(t, store, recent, 23*time.Hour)

	sweeper := NewSweeper(store, nil, 24*time.Hour, time.Hour)
	sweeper.Sweep(context.Background())

	remaining, err := store.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if !names(remaining)[recent] {
		t.Errorf("upload aged %s was removed before the 24h window", "23h")
	}
}
