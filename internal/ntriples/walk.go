package ntriples

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverFiles walks root recursively and returns every *.nt and *.nt.gz
// file found, sorted for deterministic ingestion order (spec §6: "Walks a
// directory for *.nt / *.nt.gz").
func DiscoverFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries, I/O errors on the walk itself are not fatal
		}
		if d.IsDir() {
			return nil
		}
		name := strings.ToLower(d.Name())
		if strings.HasSuffix(name, ".nt") || strings.HasSuffix(name, ".nt.gz") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
