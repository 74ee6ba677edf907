package output

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ListPath returns <dir>/<id>.txt. Runes outside [A-Za-z0-9._-] in id become
// '_', so the file always lands directly inside dir.
func ListPath(dir, id string) (string, error) {
	base := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, strings.TrimSpace(id))

	if strings.Trim(base, ".") == "" {
		return "", fmt.Errorf("invalid cube id %q", id)
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, base+".txt"), nil
}
