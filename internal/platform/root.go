package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNoConfig is returned by FindConfig when no config file exists above
// the start directory.
var ErrNoConfig = errors.New("config not found")

// FindConfig looks upwards from startDir for ConfigFileName and returns
// its absolute path.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ConfigFileName) {
			return filepath.Join(dir, ConfigFileName), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrNoConfig
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
