// Package testutil provides common test helpers for the unlocker project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempConfigDir creates an empty profile directory and returns its path.
// The directory is automatically cleaned up when the test finishes.
func TempConfigDir(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "unlocker")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("TempConfigDir: mkdir failed: %v", err)
	}
	return dir
}

// WriteProfile writes <name>.toml with the given content into dir
// and returns its path.
func WriteProfile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name+".toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteProfile: write failed: %v", err)
	}
	return path
}

// SetupTestProfiles creates a profile directory with "work" and "vpn"
// profiles pre-configured. Returns the directory path.
func SetupTestProfiles(t *testing.T) string {
	t.Helper()

	dir := TempConfigDir(t)
	WriteProfile(t, dir, "work", `before = ["echo", "unlocking"]
after = ["echo", "locking"]
`)
	WriteProfile(t, dir, "vpn", `before = []
after = ["echo", "vpn-down"]
`)
	return dir
}
