package bundler

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("export default 1;\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestExpandPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.ts", "b.ts", "c.js", "notes.md")

	entries, err := ExpandPatterns([]string{filepath.Join(dir, "*.ts")})
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %v", len(entries), entries)
	}
}

func TestExpandPatternsDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.ts")

	pattern := filepath.Join(dir, "*.ts")
	entries, err := ExpandPatterns([]string{pattern, pattern, filepath.Join(dir, "a.*")})
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Errorf("Expected 1 deduplicated entry, got %d: %v", len(entries), entries)
	}
}

func TestExpandPatternsEmptyMatchIsNotAnError(t *testing.T) {
	entries, err := ExpandPatterns([]string{filepath.Join(t.TempDir(), "*.ts")})
	if err != nil {
		t.Fatalf("Empty match should not fail: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %v", entries)
	}
}

func TestListDirectoryFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "plugin.js", "helper.ts", "styles.css", "README.md", "sub/nested.js")

	entries, err := ListDirectory(dir, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries with default extensions, got %d: %v", len(entries), entries)
	}
	for _, entry := range entries {
		ext := filepath.Ext(entry)
		if ext != ".js" && ext != ".ts" {
			t.Errorf("Unexpected extension in %q", entry)
		}
	}
}

func TestListDirectoryCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jsx", "b.js")

	entries, err := ListDirectory(dir, []string{".jsx"})
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 || filepath.Base(entries[0]) != "a.jsx" {
		t.Errorf("Expected only a.jsx, got %v", entries)
	}
}

func TestResolveEntriesDirectoryModeWins(t *testing.T) {
	globDir := t.TempDir()
	writeFiles(t, globDir, "glob.ts")
	legacyDir := t.TempDir()
	writeFiles(t, legacyDir, "legacy.js")

	entries, err := ResolveEntries([]string{filepath.Join(globDir, "*.ts")}, legacyDir, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 || filepath.Base(entries[0]) != "legacy.js" {
		t.Errorf("Directory mode should win over patterns, got %v", entries)
	}
}

func TestResolveEntriesGlobModeWithoutDir(t *testing.T) {
	globDir := t.TempDir()
	writeFiles(t, globDir, "glob.ts")

	entries, err := ResolveEntries([]string{filepath.Join(globDir, "*.ts")}, "", nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 || filepath.Base(entries[0]) != "glob.ts" {
		t.Errorf("Expected glob entry, got %v", entries)
	}
}
