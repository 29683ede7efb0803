package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// mediaExtensions is the eligibility allow-list (lowercase, with leading
// dot). Matching is a case-insensitive suffix check on the basename.
var mediaExtensions = map[string]bool{
	".3g2":  true,
	".3gp":  true,
	".asf":  true,
	".avi":  true,
	".bmp":  true,
	".divx": true,
	".flv":  true,
	".gif":  true,
	".jfif": true,
	".jpg":  true,
	".jpeg": true,
	".m1v":  true,
	".mov":  true,
	".mp4":  true,
	".mpeg": true,
	".mpe":  true,
	".mpg":  true,
	".png":  true,
	".ram":  true,
	".rm":   true,
	".ts":   true,
	".viv":  true,
	".webm": true,
	".webp": true,
	".wmv":  true,
}

// Discover lists dir once (no recursion) and returns the basenames of
// regular files with eligible extensions, sorted lexicographically for
// deterministic processing order. Hidden (dot-prefixed) entries are
// ignored entirely; scanned counts every visible entry, directories
// included, eligible or not.
func Discover(dir string) (files []string, scanned int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, err
	}

	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		scanned++
		if e.IsDir() {
			continue
		}
		if !e.Type().IsRegular() {
			// Symlinks count as files when they point at a regular file.
			fi, statErr := os.Stat(filepath.Join(dir, name))
			if statErr != nil || !fi.Mode().IsRegular() {
				continue
			}
		}
		if mediaExtensions[strings.ToLower(filepath.Ext(name))] {
			files = append(files, name)
		}
	}

	sort.Strings(files)
	return files, scanned, nil
}
