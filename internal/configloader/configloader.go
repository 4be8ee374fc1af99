package configloader

import (
	"errors"
	"os"
	"path/filepath"
)

// EnvConfig names the environment variable holding an explicit config path.
const EnvConfig = "PHONEBOOK_CONFIG"

// ErrNoConfig is returned when no config file could be located.
var ErrNoConfig = errors.New("no config file found")

// systemDir is a variable so tests can point it at a temporary directory.
var systemDir = "/etc/phonebook"

// ResolveConfigPath returns the best config path for the given filename.
// It checks, in order:
// 1. $PHONEBOOK_CONFIG if set (absolute path)
// 2. ~/.phonebook/<file>
// 3. /etc/phonebook/<file>
func ResolveConfigPath(file string) (string, error) {
	if env := os.Getenv(EnvConfig); env != "" {
		return env, nil
	}
	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".phonebook", file)
		if _, err := os.Stat(userPath); err == nil {
			return userPath, nil
		}
	}
	systemPath := filepath.Join(systemDir, file)
	if _, err := os.Stat(systemPath); err == nil {
		return systemPath, nil
	}
	return "", ErrNoConfig
}
