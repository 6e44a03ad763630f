package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "spriteapp.yaml"

//go:embed spriteapp.yaml
var defaultData []byte

// Read returns the configuration bytes for path. An empty path prefers
// DefaultFile on disk and falls back to the embedded copy.
func Read(path string) ([]byte, string, error) {
	if path == "" {
		if data, err := os.ReadFile(DefaultFile); err == nil {
			return data, DefaultFile, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("config: read %s: %w", DefaultFile, err)
		}
		return defaultData, "", nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("config: read %s: %w", path, err)
	}
	return data, path, nil
}

// ModTime reports when the file at path last changed.
func ModTime(path string) (time.Time, bool) {
	if path == "" {
		return time.Time{}, false
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
