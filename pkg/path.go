package pkg

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Prefix returns the name of the running executable without its extension
// or leading dots. It names the per-user configuration and cache
// directories, so a renamed binary keeps its own settings.
// When no usable name remains, Prefix returns [Name].
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(func() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}

	return prefix(exe)
})

func prefix(exe string) string {
	base := strings.TrimLeft(filepath.Base(exe), ".")
	base = strings.TrimSuffix(base, filepath.Ext(base))

	if base == "" || base == string(filepath.Separator) {
		return Name
	}

	return base
}

// ConfigDir returns the directory holding the user's configuration, which
// may be overridden with the CURRY_CONFIG_DIR environment variable.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(func() string {
	return userDir("CONFIG_DIR", os.UserConfigDir, ".config")
})

// CacheDir returns the directory holding transient files such as the REPL
// history, which may be overridden with the CURRY_CACHE_DIR environment
// variable.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(func() string {
	return userDir("CACHE_DIR", os.UserCacheDir, ".cache")
})

// EnvVar returns the environment variable named by suffix in the curry
// namespace, e.g. CURRY_CONFIG_DIR.
func EnvVar(suffix string) string {
	return strings.ToUpper(Name) + "_" + suffix
}

// userDir resolves the override variable, then the platform directory, then
// hidden under the home directory, and finally the working directory.
func userDir(suffix string, platform func() (string, error), hidden string) string {
	if dir := os.Getenv(EnvVar(suffix)); dir != "" {
		return dir
	}

	if dir, err := platform(); err == nil {
		return filepath.Join(dir, Prefix())
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, hidden, Prefix())
	}

	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, hidden, Prefix())
	}

	return filepath.Join(".", hidden, Prefix())
}
