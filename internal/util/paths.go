package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir resolves the per-user configuration directory for app
// (~/.config/<app>, honoring XDG_CONFIG_HOME). The second return value is
// false when no home directory can be resolved; callers fall back to the
// working directory in that case.
func ConfigDir(app string) (string, bool) {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return filepath.Join(base, app), true
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", false
	}
	return filepath.Join(home, ".config", app), true
}
