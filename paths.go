package ecfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// defaultDirName is the directory under the user's home that holds
	// configuration files when no explicit path is given.
	defaultDirName = ".empire"
	// fileExtension is appended to every configuration file name.
	fileExtension = ".ecfg"
)

// NormalizeName returns the canonical form of a configuration name:
// lower-cased with surrounding whitespace removed. Two raw names that
// normalize identically refer to the same registry entry.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ResolvePath returns the full file path for the named configuration.
// When dir is empty the default location {home}/.empire/{name}.ecfg is
// used; otherwise {dir}/{name}.ecfg. The directory is not created here;
// that happens on save.
func ResolvePath(name, dir string) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, defaultDirName, name+fileExtension), nil
	}
	return filepath.Join(dir, name+fileExtension), nil
}
