package registry

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/oceanbgc/boxpath/internal/domain"
	"github.com/oceanbgc/boxpath/internal/testutil"
)

// TestDiscoverNormalizesNames tests the end-to-end identifier mapping
func TestDiscoverNormalizesNames(t *testing.T) {
	base := testutil.TempDir(t)
	testutil.CreateDir(t, base, "2023_Results")
	testutil.CreateDir(t, base, "My Data")
	testutil.CreateDir(t, base, "####")
	testutil.CreateFile(t, base, "notes.txt", []byte("not a dir"))

	discovered, err := Discover(base, 1)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := map[string]string{
		"results_2023": filepath.Join(base, "2023_Results"),
		"my_data":      filepath.Join(base, "My Data"),
		"folder":       filepath.Join(base, "####"),
	}

	if len(discovered) != len(want) {
		t.Fatalf("discovered %d entries, want %d: %v", len(discovered), len(want), discovered)
	}
	for id, path := range want {
		if discovered[id] != path {
			t.Errorf("discovered[%q] = %q, want %q", id, discovered[id], path)
		}
	}
}

// TestDiscoverDepth tests that maxDepth bounds the scan
func TestDiscoverDepth(t *testing.T) {
	base := testutil.TempDir(t)
	testutil.CreateDir(t, base, filepath.Join("My Data", "Sub Folder", "Too Deep"))

	shallow, err := Discover(base, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := shallow["sub_folder"]; ok {
		t.Error("depth 1 scan should not contain grandchildren")
	}

	deep, err := Discover(base, 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := deep["sub_folder"]; !ok {
		t.Errorf("depth 2 scan missing sub_folder: %v", deep)
	}
	if _, ok := deep["too_deep"]; ok {
		t.Error("depth 2 scan should not contain great-grandchildren")
	}
}

// TestDiscoverCollisions tests that name collisions get deterministic suffixes
func TestDiscoverCollisions(t *testing.T) {
	base := testutil.TempDir(t)
	testutil.CreateDir(t, base, "My Data")
	testutil.CreateDir(t, base, "my data")

	discovered, err := Discover(base, 1)
	if err != nil {
		t.Fatal(err)
	}

	// Sorted traversal: "My Data" (uppercase sorts first) claims the bare
	// identifier, "my data" gets the suffix.
	if got := discovered["my_data"]; got != filepath.Join(base, "My Data") {
		t.Errorf("my_data = %q", got)
	}
	if got := discovered["my_data_2"]; got != filepath.Join(base, "my data") {
		t.Errorf("my_data_2 = %q", got)
	}
}

// TestDiscoverBadBase tests error mapping for unusable bases
func TestDiscoverBadBase(t *testing.T) {
	base := testutil.TempDir(t)

	if _, err := Discover(filepath.Join(base, "missing"), 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing base error = %v, want ErrNotFound", err)
	}

	file := testutil.CreateFile(t, base, "f", []byte("x"))
	if _, err := Discover(file, 1); !errors.Is(err, domain.ErrNotDirectory) {
		t.Errorf("file base error = %v, want ErrNotDirectory", err)
	}
}

// TestMergeExplicitWins tests precedence in the merge helper
func TestMergeExplicitWins(t *testing.T) {
	explicit := map[string]string{"data": "/proj/data", "src": "/proj/src"}
	discovered := map[string]string{"data": "/proj/Data Old", "extra": "/proj/extra"}

	merged := Merge(explicit, discovered)

	if merged["data"] != "/proj/data" {
		t.Errorf("explicit entry lost: %q", merged["data"])
	}
	if merged["src"] != "/proj/src" || merged["extra"] != "/proj/extra" {
		t.Errorf("merged = %v", merged)
	}
	if len(merged) != 3 {
		t.Errorf("merged has %d entries, want 3", len(merged))
	}

	// Inputs must not be mutated.
	if discovered["data"] != "/proj/Data Old" {
		t.Error("Merge mutated its input")
	}
}
