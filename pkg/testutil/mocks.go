package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vertti/featurecheck/pkg/check"
)

// ContainsDetail checks if any detail line contains the given substring.
func ContainsDetail(details []check.Line, substr string) bool {
	for _, d := range details {
		if strings.Contains(d.Text, substr) {
			return true
		}
	}
	return false
}

// WriteTree writes files (slash-separated relative path -> content) under root.
func WriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}
