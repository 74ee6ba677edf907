package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteTextFile replaces path with contents, creating parent directories.
func WriteTextFile(path string, contents string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
