package locator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/oceanbgc/boxpath/internal/domain"
	"github.com/oceanbgc/boxpath/internal/testutil"
)

// isolateHome points the home directory at an empty temp dir so real sync
// folders on the test machine cannot leak into candidate resolution
func isolateHome(t *testing.T) string {
	t.Helper()
	home := testutil.TempDir(t)
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv(EnvRoot, "")
	return home
}

// TestLocateOverrideExisting tests that a valid override bypasses the search
func TestLocateOverrideExisting(t *testing.T) {
	isolateHome(t)
	dir := testutil.TempDir(t)

	got, err := New("").Locate(dir)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if got != filepath.Clean(dir) {
		t.Errorf("Locate = %q, want %q", got, dir)
	}
}

// TestLocateOverrideMissing tests that a bad override fails without searching
func TestLocateOverrideMissing(t *testing.T) {
	home := isolateHome(t)

	// A candidate exists, but the override must still fail.
	if err := os.MkdirAll(filepath.Join(home, "Dropbox", DefaultGroupFolder), 0755); err != nil {
		t.Fatal(err)
	}

	_, err := New("").Locate(filepath.Join(home, "no-such-dir"))
	if err == nil {
		t.Fatal("expected error for missing override")
	}

	var rootErr *domain.RootNotFoundError
	if !errors.As(err, &rootErr) {
		t.Fatalf("error type = %T, want *RootNotFoundError", err)
	}
	if rootErr.Reason != "override path missing" {
		t.Errorf("Reason = %q", rootErr.Reason)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Error("expected errors.Is(err, domain.ErrNotFound)")
	}
}

// TestLocateOverrideFile tests that an override pointing at a file fails
func TestLocateOverrideFile(t *testing.T) {
	isolateHome(t)
	dir := testutil.TempDir(t)
	file := testutil.CreateFile(t, dir, "not-a-dir", []byte("x"))

	if _, err := New("").Locate(file); err == nil {
		t.Fatal("expected error for file override")
	}
}

// TestLocateFirstCandidateWins tests fixed priority order
func TestLocateFirstCandidateWins(t *testing.T) {
	isolateHome(t)
	l := New("TestGroup")

	candidates := l.Candidates()
	if len(candidates) < 2 {
		t.Fatalf("unexpected candidate count: %d", len(candidates))
	}

	// Create the last two candidates; the earlier of the two must win.
	for _, c := range candidates[len(candidates)-2:] {
		if err := os.MkdirAll(c, 0755); err != nil {
			t.Fatal(err)
		}
	}

	got, err := l.Locate("")
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if want := candidates[len(candidates)-2]; got != want {
		t.Errorf("Locate = %q, want %q", got, want)
	}
}

// TestLocateEnvCandidateFirst tests that the env var is the first candidate
func TestLocateEnvCandidateFirst(t *testing.T) {
	isolateHome(t)
	envDir := testutil.TempDir(t)
	t.Setenv(EnvRoot, envDir)

	l := New("TestGroup")
	if got := l.Candidates()[0]; got != filepath.Clean(envDir) {
		t.Fatalf("first candidate = %q, want env dir %q", got, envDir)
	}

	got, err := l.Locate("")
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if got != filepath.Clean(envDir) {
		t.Errorf("Locate = %q, want env dir", got)
	}
}

// TestLocateEnvCandidateMissing tests that a stale env var is skipped, not fatal
func TestLocateEnvCandidateMissing(t *testing.T) {
	home := isolateHome(t)
	t.Setenv(EnvRoot, filepath.Join(home, "gone"))

	conventional := filepath.Join(home, "Dropbox", "TestGroup")
	if err := os.MkdirAll(conventional, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := New("TestGroup").Locate("")
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if got != conventional {
		t.Errorf("Locate = %q, want %q", got, conventional)
	}
}

// TestLocateNoCandidates tests the error lists every candidate in order
func TestLocateNoCandidates(t *testing.T) {
	isolateHome(t)
	l := New("TestGroup")

	_, err := l.Locate("")
	if err == nil {
		t.Fatal("expected error with no candidates present")
	}

	var rootErr *domain.RootNotFoundError
	if !errors.As(err, &rootErr) {
		t.Fatalf("error type = %T", err)
	}
	if rootErr.Reason != "no candidate found" {
		t.Errorf("Reason = %q", rootErr.Reason)
	}

	want := l.Candidates()
	if len(rootErr.Candidates) != len(want) {
		t.Fatalf("Candidates len = %d, want %d", len(rootErr.Candidates), len(want))
	}
	for i := range want {
		if rootErr.Candidates[i] != want[i] {
			t.Errorf("Candidates[%d] = %q, want %q", i, rootErr.Candidates[i], want[i])
		}
	}
}

// TestResolverMemoizes tests that the search runs once per process
func TestResolverMemoizes(t *testing.T) {
	home := isolateHome(t)
	dir := filepath.Join(home, "Dropbox", "TestGroup")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(New("TestGroup"), "")

	got, err := r.Root()
	if err != nil {
		t.Fatalf("Root failed: %v", err)
	}
	if got != dir {
		t.Fatalf("Root = %q, want %q", got, dir)
	}

	// Removing the directory must not change the memoized answer.
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	got, err = r.Root()
	if err != nil || got != dir {
		t.Errorf("memoized Root = %q, %v; want %q, nil", got, err, dir)
	}

	// Invalidate forces a fresh search, which now fails.
	r.Invalidate()
	if _, err := r.Root(); err == nil {
		t.Error("expected error after Invalidate with directory removed")
	}
}
