package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// collectFiles expands roots into the list of .go files to scan. Roots must
// exist: a bad root is a usage error, not a finding. Directories are walked
// recursively in lexical order, so the file list is deterministic.
func collectFiles(roots []string) ([]string, error) {
	var out []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("check scan root: %w", err)
		}

		if !info.IsDir() {
			out = append(out, root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && skipDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if strings.HasSuffix(d.Name(), ".go") {
				out = append(out, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	return out, nil
}

// skipDir filters directories that never hold code to check: hidden ones,
// tool-generated ones, vendored dependencies, and test fixtures.
func skipDir(name string) bool {
	if name == "vendor" || name == "testdata" {
		return true
	}

	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
