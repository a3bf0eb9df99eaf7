// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads SMTP credentials and the upstream contact address
// from a directory of plain-text files. Each known key is read from the
// file of the same name; the trimmed file contents are the value.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// keys lists the secret files the CLI understands.
var keys = []string{
	"smtp-password",
	"smtp-username",
	"contact-email",
}

// Load reads the known key files from dir and returns a map of key name to
// trimmed value. Missing files (or a missing directory) are skipped
// silently; unreadable files produce a warning on stderr and are skipped.
// Other files in the directory are ignored.
func Load(dir string) map[string]string {
	secrets := make(map[string]string)
	for _, key := range keys {
		data, err := os.ReadFile(filepath.Join(dir, key))
		if err != nil {
			if !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", key, err)
			}
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[key] = value
		}
	}
	return secrets
}
