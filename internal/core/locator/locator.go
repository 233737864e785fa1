// Package locator finds the cloud-sync client's root directory for the
// group's shared folder. It searches a fixed, platform-dependent list of
// conventional locations and supports an explicit override that bypasses
// the search entirely.
package locator

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/oceanbgc/boxpath/internal/domain"
)

// EnvRoot names the environment variable holding a user-configured root
// candidate. When set, it is checked before the conventional locations.
const EnvRoot = "BOXPATH_ROOT"

// DefaultGroupFolder is the name of the group's shared folder as the sync
// client materializes it.
const DefaultGroupFolder = "Ocean_BGC_Group"

// Locator resolves the sync root for a given group folder name.
type Locator struct {
	// GroupFolder is the shared folder name to search for
	GroupFolder string
}

// New creates a Locator. An empty groupFolder selects DefaultGroupFolder.
func New(groupFolder string) *Locator {
	if groupFolder == "" {
		groupFolder = DefaultGroupFolder
	}
	return &Locator{GroupFolder: groupFolder}
}

// Candidates returns the conventional locations to search, in priority
// order. The order is fixed per platform and never depends on directory
// listing order. The EnvRoot variable, when set, comes first.
func (l *Locator) Candidates() []string {
	var candidates []string

	if env := os.Getenv(EnvRoot); env != "" {
		candidates = append(candidates, filepath.Clean(env))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return candidates
	}

	// Team folders appear either as "<name> Dropbox" directly under the
	// home directory or nested inside a personal Dropbox folder. macOS
	// additionally mounts sync clients under ~/Library/CloudStorage.
	if runtime.GOOS == "darwin" {
		candidates = append(candidates,
			filepath.Join(home, "Library", "CloudStorage", "Dropbox", l.GroupFolder))
	}
	candidates = append(candidates,
		filepath.Join(home, l.GroupFolder+" Dropbox"),
		filepath.Join(home, "Dropbox", l.GroupFolder),
	)

	return candidates
}

// Locate resolves the sync root. A non-empty override must exist and be a
// directory; it is returned unchanged and no search happens. Without an
// override, the first existing candidate directory wins. Failure is always
// a *domain.RootNotFoundError.
func (l *Locator) Locate(override string) (string, error) {
	if override != "" {
		if isDir(override) {
			return filepath.Clean(override), nil
		}
		return "", &domain.RootNotFoundError{
			Reason:   "override path missing",
			Override: override,
		}
	}

	candidates := l.Candidates()
	for _, candidate := range candidates {
		if isDir(candidate) {
			return candidate, nil
		}
	}

	return "", &domain.RootNotFoundError{
		Reason:     "no candidate found",
		Candidates: candidates,
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Resolver memoizes a Locate result for the life of the process. The
// underlying directory is not expected to change during a run, so the
// search runs at most once unless Invalidate is called.
type Resolver struct {
	locator  *Locator
	override string

	mu   sync.Mutex
	done bool
	root string
	err  error
}

// NewResolver creates a Resolver that will locate lazily on first use
func NewResolver(locator *Locator, override string) *Resolver {
	return &Resolver{locator: locator, override: override}
}

// Root returns the memoized sync root, locating it on first call
func (r *Resolver) Root() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.done {
		r.root, r.err = r.locator.Locate(r.override)
		r.done = true
	}
	return r.root, r.err
}

// Invalidate discards the memoized result so the next Root call searches again
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done = false
	r.root = ""
	r.err = nil
}
