//go:build darwin || linux

package status

import (
	"bytes"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/oceanbgc/boxpath/internal/domain"
)

// nativeStrategy returns the extended-attribute strategy on platforms
// where sync clients tag entries with xattrs.
func nativeStrategy() Strategy {
	return xattrStrategy{}
}

// xattrStrategy inspects extended attributes. Dropbox marks managed
// entries with com.dropbox.* attributes; a tagged file with near-zero
// local size is a placeholder that has not been downloaded.
type xattrStrategy struct{}

func (xattrStrategy) Classify(path string, info os.FileInfo) (domain.SyncState, error) {
	names, err := listxattr(path)
	if err != nil {
		// Unsupported filesystem or permission problem; let the
		// heuristic take over.
		return domain.StateUnknown, err
	}

	tagged := false
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), "dropbox") {
			tagged = true
			break
		}
	}

	// Directory placeholders still resolve their own entry; contents are
	// a per-child concern.
	if info.IsDir() {
		return domain.StateFullySynced, nil
	}

	if tagged && info.Size() < placeholderMaxSize {
		return domain.StateOnlineOnly, nil
	}
	return domain.StateFullySynced, nil
}

// listxattr returns all extended attribute names for path, growing the
// buffer on ERANGE (the attribute list can change between the size query
// and the read).
func listxattr(path string) ([]string, error) {
	size := 1024
	for {
		buf := make([]byte, size)
		n, err := unix.Listxattr(path, buf)
		if err == unix.ERANGE {
			size *= 2
			continue
		}
		if err != nil {
			return nil, err
		}

		var names []string
		for _, name := range bytes.Split(buf[:n], []byte{0}) {
			if len(name) > 0 {
				names = append(names, string(name))
			}
		}
		return names, nil
	}
}
