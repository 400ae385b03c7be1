// server/webdeck/generator_test.go
package webdeck

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestToSnakeCase(t *testing.T) {
	cases := []struct{ in, want string }{
		{"D.Va", "dva"},
		{"Soldier: 76", "soldier_76"},
		{"King's Row", "kings_row"},
		{"Lúcio", "lucio"},
		{"Torbjörn", "torbjorn"},
		{"Wrecking Ball", "wrecking_ball"},
		{"Junker Queen", "junker_queen"},
	}
	for _, c := range cases {
		if got := toSnakeCase(c.in); got != c.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFilesContents(t *testing.T) {
	files := Files("http://localhost:8080", "abc-123")

	score, ok := files["score/left_plus.py"]
	if !ok {
		t.Fatal("missing score/left_plus.py")
	}
	for _, want := range []string{
		`BASE_URL = "http://localhost:8080"`,
		`SESSION_ID = "abc-123"`,
		`"team": "1"`,
		`"changeBy": 1`,
		"updateScore",
	} {
		if !strings.Contains(score, want) {
			t.Errorf("score/left_plus.py missing %q:\n%s", want, score)
		}
	}

	ban, ok := files["bans/right/ban_dva.py"]
	if !ok {
		t.Fatal("missing bans/right/ban_dva.py")
	}
	if !strings.Contains(ban, `"characterName": "D.Va"`) || !strings.Contains(ban, `"team": "2"`) {
		t.Errorf("ban script payload wrong:\n%s", ban)
	}

	clear, ok := files["bans/left/clear_ban.py"]
	if !ok {
		t.Fatal("missing bans/left/clear_ban.py")
	}
	if !strings.Contains(clear, `"characterName": None`) {
		t.Errorf("clear-ban script should send None:\n%s", clear)
	}

	mapPick, ok := files["maps/set_kings_row.py"]
	if !ok {
		t.Fatal("missing maps/set_kings_row.py")
	}
	if !strings.Contains(mapPick, `"mapName": "King's Row"`) {
		t.Errorf("map script payload wrong:\n%s", mapPick)
	}

	if _, ok := files["set_session_id.py"]; !ok {
		t.Fatal("missing set_session_id.py")
	}
}

func TestBuildZipRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := BuildZip(&buf, "http://localhost:8080", "abc-123"); err != nil {
		t.Fatalf("BuildZip: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}

	want := Files("http://localhost:8080", "abc-123")
	if len(zr.File) != len(want) {
		t.Fatalf("bundle has %d files, want %d", len(zr.File), len(want))
	}
	for _, f := range zr.File {
		expected, ok := want[f.Name]
		if !ok {
			t.Errorf("unexpected file %q in bundle", f.Name)
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		if string(data) != expected {
			t.Errorf("content mismatch for %s", f.Name)
		}
	}
}
