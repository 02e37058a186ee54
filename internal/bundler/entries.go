package bundler

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions is the allow-list used by the legacy directory entry
// mode when no explicit extensions are configured.
var DefaultExtensions = []string{".js", ".ts"}

// ExpandPatterns expands glob patterns against the working directory into
// an ordered, de-duplicated list of entry files. Zero matches is not an
// error: an empty entry set is a valid no-op build.
func ExpandPatterns(patterns []string) ([]string, error) {
	var entries []string
	seen := make(map[string]struct{})

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			entries = append(entries, match)
		}
	}

	return entries, nil
}

// ListDirectory lists the files of dir whose extension is in the
// allow-list. Subdirectories are not descended into.
func ListDirectory(dir string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var entries []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := allowed[ext]; !ok {
			continue
		}
		entries = append(entries, filepath.Join(dir, entry.Name()))
	}

	return entries, nil
}

// ResolveEntries picks between the glob mode and the legacy directory
// mode. Directory mode wins when both are supplied; this precedence is a
// compatibility behavior and must not change.
func ResolveEntries(patterns []string, dir string, extensions []string) ([]string, error) {
	if dir != "" {
		return ListDirectory(dir, extensions)
	}
	return ExpandPatterns(patterns)
}
