// Package discovery finds game files under a directory tree.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are the glob patterns a game file may match, relative to
// the search root. First match wins for type detection.
var DefaultPatterns = []string{
	"**/*.game.yaml",
	"**/*.game.yml",
	"**/*.game.json",
	"games/**/*.yaml",
	"games/**/*.yml",
	"games/**/*.json",
}

// File is a discovered game file.
type File struct {
	Path    string
	RelPath string
	Size    int64
}

// FileDiscovery manages game file discovery under a root directory.
type FileDiscovery struct {
	rootPath string
	patterns []string
}

// NewFileDiscovery creates a FileDiscovery using DefaultPatterns.
func NewFileDiscovery(rootPath string) *FileDiscovery {
	return &FileDiscovery{rootPath: rootPath, patterns: DefaultPatterns}
}

// NewFileDiscoveryWithPatterns creates a FileDiscovery with custom patterns.
func NewFileDiscoveryWithPatterns(rootPath string, patterns []string) *FileDiscovery {
	return &FileDiscovery{rootPath: rootPath, patterns: patterns}
}

// DiscoverFiles finds every game file under the root, deduplicated across
// patterns and sorted by relative path.
func (fd *FileDiscovery) DiscoverFiles() ([]File, error) {
	seen := make(map[string]bool)
	var files []File

	for _, pattern := range fd.patterns {
		matches, err := doublestar.Glob(os.DirFS(fd.rootPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			fullPath := filepath.Join(fd.rootPath, match)
			info, err := os.Stat(fullPath)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			files = append(files, File{
				Path:    fullPath,
				RelPath: match,
				Size:    info.Size(),
			})
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}

// IsGameFile reports whether a path looks like a game file by name alone.
func IsGameFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	for _, suffix := range []string{".game.yaml", ".game.yml", ".game.json"} {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

// ValidateFilePath checks that a path exists and is a readable regular file,
// resolving it to an absolute path.
func ValidateFilePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", absPath)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("permission denied: %s", absPath)
		}
		return "", fmt.Errorf("cannot access file: %s: %w", absPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", absPath)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("file is empty: %s", absPath)
	}

	return absPath, nil
}
