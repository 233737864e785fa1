package registry

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/oceanbgc/boxpath/internal/core/identifier"
	"github.com/oceanbgc/boxpath/internal/domain"
)

// Discover scans base for subdirectories down to maxDepth levels
// (1 = immediate children only) and returns a mapping from normalized
// identifier to absolute path. Traversal is depth-first over sorted entry
// names, so identifiers (including collision suffixes) are deterministic
// for a given tree. Subdirectories that cannot be read are skipped.
func Discover(base string, maxDepth int) (map[string]string, error) {
	info, err := os.Stat(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, domain.ErrNotDirectory
	}

	discovered := make(map[string]string)
	uniquer := identifier.NewUniquer()
	scan(base, 1, maxDepth, uniquer, discovered)
	return discovered, nil
}

func scan(dir string, depth, maxDepth int, uniquer *identifier.Uniquer, out map[string]string) {
	if depth > maxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directories are not an error for discovery.
		return
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		out[uniquer.Claim(entry.Name())] = path
		scan(path, depth+1, maxDepth, uniquer, out)
	}
}

// Merge combines explicit and discovered mappings into a new map.
// Explicit entries always win over discovered ones.
func Merge(explicit, discovered map[string]string) map[string]string {
	merged := make(map[string]string, len(explicit)+len(discovered))
	for id, path := range discovered {
		merged[id] = path
	}
	for id, path := range explicit {
		merged[id] = path
	}
	return merged
}
