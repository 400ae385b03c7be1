// server/webdeck/generator.go
package webdeck

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/streamkit/stream-manager/shared/catalog"
)

// This package renders the macro-pad script bundle: one small python
// script per button (score up/down, each hero ban, each map pick), so a
// producer can drive the session from a WebDeck/StreamDeck layout without
// touching the dashboard.

const scriptHeader = `import requests

BASE_URL = "%s"
SESSION_ID = "%s"

`

// toSnakeCase turns a display name into a filename token: "D.Va" -> "dva",
// "Soldier: 76" -> "soldier_76", "King's Row" -> "kings_row".
func toSnakeCase(name string) string {
	name = strings.ToLower(name)
	name = accentReplacer.Replace(name)
	name = strings.ReplaceAll(name, ".", "")
	name = strings.ReplaceAll(name, "'", "")

	var b strings.Builder
	lastUnderscore := false
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastUnderscore = false
		} else if !lastUnderscore {
			b.WriteRune('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"ö", "o", "ü", "u", "ã", "a", "ç", "c",
)

func scoreScript(baseURL, sessionID, team string, delta int) string {
	return fmt.Sprintf(scriptHeader, baseURL, sessionID) + fmt.Sprintf(
		`requests.post(
    f"{BASE_URL}/api/sessions/{SESSION_ID}/updateScore",
    json={"team": %q, "changeBy": %d},
)
`, team, delta)
}

func banScript(baseURL, sessionID, team, character string) string {
	return fmt.Sprintf(scriptHeader, baseURL, sessionID) + fmt.Sprintf(
		`requests.post(
    f"{BASE_URL}/api/sessions/{SESSION_ID}/updateBan",
    json={"team": %q, "characterName": %q},
)
`, team, character)
}

func clearBanScript(baseURL, sessionID, team string) string {
	return fmt.Sprintf(scriptHeader, baseURL, sessionID) + fmt.Sprintf(
		`requests.post(
    f"{BASE_URL}/api/sessions/{SESSION_ID}/updateBan",
    json={"team": %q, "characterName": None},
)
`, team)
}

func mapScript(baseURL, sessionID, mapName string) string {
	return fmt.Sprintf(scriptHeader, baseURL, sessionID) + fmt.Sprintf(
		`requests.post(
    f"{BASE_URL}/api/sessions/{SESSION_ID}/updateMap",
    json={"mapName": %q},
)
`, mapName)
}

// sessionIDScript rewrites the SESSION_ID constant in every sibling
// script, so retargeting the whole deck at a new session is one edit.
func sessionIDScript() string {
	return `import pathlib
import sys

if len(sys.argv) != 2:
    sys.exit("usage: set_session_id.py <session-id>")

new_id = sys.argv[1]
root = pathlib.Path(__file__).resolve().parent
for script in root.rglob("*.py"):
    if script.name == "set_session_id.py":
        continue
    text = script.read_text()
    out = []
    for line in text.splitlines(keepends=True):
        if line.startswith("SESSION_ID = "):
            line = f'SESSION_ID = "{new_id}"\n'
        out.append(line)
    script.write_text("".join(out))
`
}

// Files returns every script in the bundle, keyed by archive path. The
// hero and map lists are the Overwatch catalogs; bans and map picks only
// exist for Overwatch sessions.
func Files(baseURL, sessionID string) map[string]string {
	files := map[string]string{
		"set_session_id.py":       sessionIDScript(),
		"score/left_plus.py":      scoreScript(baseURL, sessionID, "1", 1),
		"score/left_minus.py":     scoreScript(baseURL, sessionID, "1", -1),
		"score/right_plus.py":     scoreScript(baseURL, sessionID, "2", 1),
		"score/right_minus.py":    scoreScript(baseURL, sessionID, "2", -1),
		"bans/left/clear_ban.py":  clearBanScript(baseURL, sessionID, "1"),
		"bans/right/clear_ban.py": clearBanScript(baseURL, sessionID, "2"),
	}
	for _, c := range catalog.OverwatchCharacters {
		token := toSnakeCase(c.Name)
		files["bans/left/ban_"+token+".py"] = banScript(baseURL, sessionID, "1", c.Name)
		files["bans/right/ban_"+token+".py"] = banScript(baseURL, sessionID, "2", c.Name)
	}
	for _, m := range catalog.OverwatchMaps {
		files["maps/set_"+toSnakeCase(m.Name)+".py"] = mapScript(baseURL, sessionID, m.Name)
	}
	return files
}

// BuildZip writes the bundle as a zip archive.
func BuildZip(w io.Writer, baseURL, sessionID string) error {
	zw := zip.NewWriter(w)
	for path, content := range Files(baseURL, sessionID) {
		f, err := zw.Create(path)
		if err != nil {
			return fmt.Errorf("failed to add %s to bundle: %w", path, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			return fmt.Errorf("failed to write %s to bundle: %w", path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish bundle: %w", err)
	}
	return nil
}
