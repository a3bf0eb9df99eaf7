// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads known key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "smtp-password", "  hunter2  \n")
				writeFile(t, dir, "contact-email", "curator@example.com")
				writeFile(t, dir, "smtp-username", "reviews@example.com\n")
				return dir
			},
			want: map[string]string{
				"smtp-password": "hunter2",
				"contact-email": "curator@example.com",
				"smtp-username": "reviews@example.com",
			},
		},
		{
			name: "ignores files that are not known keys",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "contact-email", "curator@example.com")
				writeFile(t, dir, "api-token", "not-a-known-key")
				writeFile(t, dir, ".gitkeep", "")
				return dir
			},
			want: map[string]string{
				"contact-email": "curator@example.com",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty and whitespace-only values",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "contact-email", "curator@example.com")
				writeFile(t, dir, "smtp-password", "")
				writeFile(t, dir, "smtp-username", "   \n\t  ")
				return dir
			},
			want: map[string]string{
				"contact-email": "curator@example.com",
			},
		},
		{
			name: "returns empty map for empty directory",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			assert.Equal(t, tt.want, Load(dir))
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "contact-email", "curator@example.com")

	// Create a known key file then remove read permission.
	badPath := filepath.Join(dir, "smtp-password")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	got := Load(dir)
	// The readable file is still returned; the bad file is skipped with a warning.
	assert.Equal(t, "curator@example.com", got["contact-email"])
	_, hasBad := got["smtp-password"]
	assert.False(t, hasBad, "unreadable file should not appear in result")
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
