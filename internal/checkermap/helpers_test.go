package checkermap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jokarl/checkmap/internal/jsonload"
)

func mustParse(t *testing.T, content string) *jsonload.Object {
	t.Helper()
	obj, err := jsonload.Parse([]byte(content))
	if err != nil {
		t.Fatalf("failed to parse test document: %v", err)
	}
	return obj
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
