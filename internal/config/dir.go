// Package config locates the cowsay configuration directory and loads the
// optional settings file kept there.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the cowsay configuration directory.
//
// Resolution:
//   - $COWSAY_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/cowsay if set (respects XDG on any platform)
//   - %AppData%/cowsay on Windows
//   - ~/.config/cowsay on macOS and Linux
func Dir() string {
	if dir := os.Getenv("COWSAY_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cowsay")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "cowsay")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "cowsay")
}

// CowsDir returns the directory holding the user's own cowfiles, or "" when
// the configuration directory is unknown.
func CowsDir() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "cows")
}
