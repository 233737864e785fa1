// Package status classifies the cloud-sync condition of individual paths:
// fully synced, online-only placeholder, or mid-sync. Classification is
// read-only and per-call; the optional hydration request is the only side
// effect. Probes never return errors; failures are absorbed into the
// report so batch callers can continue past one bad path.
package status

import (
	"fmt"
	"io"
	"os"

	"github.com/oceanbgc/boxpath/internal/domain"
)

// placeholderMaxSize is the size below which a provider-tagged file is
// treated as an online-only placeholder. Placeholders keep minimal local
// presence; real content is almost always larger.
const placeholderMaxSize = 1024

// Strategy classifies the sync state of an existing path. An error means
// the platform metadata was inaccessible and the prober should fall back
// to the next strategy; it is never surfaced to callers directly.
type Strategy interface {
	Classify(path string, info os.FileInfo) (domain.SyncState, error)
}

// Prober runs a fixed strategy chain selected at construction time. The
// chain is a configuration fact, not a per-call discovery: the native
// platform strategy (if any) is tried first, then the read-probe
// heuristic. Probers are stateless and safe for concurrent use.
type Prober struct {
	strategies []Strategy
}

// New returns a Prober with the platform's default strategy chain
func New() *Prober {
	var chain []Strategy
	if native := nativeStrategy(); native != nil {
		chain = append(chain, native)
	}
	chain = append(chain, fallbackStrategy{})
	return &Prober{strategies: chain}
}

// NewWithStrategies returns a Prober using the given chain, tried in
// order. Intended for tests and for callers that need to force the
// heuristic.
func NewWithStrategies(strategies ...Strategy) *Prober {
	return &Prober{strategies: strategies}
}

// Option adjusts a single probe call
type Option func(*probeOptions)

type probeOptions struct {
	download bool
}

// WithDownload requests hydration when the path classifies as
// online-only. The request is fire-and-forget: the report's Downloaded
// flag means "requested", not "completed", and the call never blocks
// waiting for the transfer.
func WithDownload() Option {
	return func(o *probeOptions) { o.download = true }
}

// Probe classifies a single path. It never returns an error and never
// panics; an undeterminable status comes back as StateUnknown with a
// human-readable message in Err. Probing a directory classifies the
// directory entry itself, not its contents.
func (p *Prober) Probe(path string, opts ...Option) domain.StatusReport {
	var options probeOptions
	for _, opt := range opts {
		opt(&options)
	}

	report := domain.StatusReport{Path: path, State: domain.StateNotFound}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return report
		}
		report.State = domain.StateUnknown
		report.Err = err.Error()
		return report
	}

	report.Exists = true
	report.State, report.Err = p.classify(path, info)

	if options.download && report.State == domain.StateOnlineOnly {
		if requestHydration(path, info.IsDir()) {
			report.Downloaded = true
			// Hydration has been handed to the sync client; the entry
			// is no longer a plain placeholder.
			report.State = domain.StateSyncing
		}
	}

	return report
}

// classify runs the strategy chain. Panics inside a strategy degrade to
// StateUnknown rather than crashing the caller.
func (p *Prober) classify(path string, info os.FileInfo) (state domain.SyncState, errMsg string) {
	defer func() {
		if r := recover(); r != nil {
			state = domain.StateUnknown
			errMsg = fmt.Sprintf("sync status check failed: %v", r)
		}
	}()

	var lastErr error
	for _, strategy := range p.strategies {
		s, err := strategy.Classify(path, info)
		if err == nil {
			return s, ""
		}
		lastErr = err
	}

	if lastErr != nil {
		return domain.StateUnknown, lastErr.Error()
	}
	return domain.StateUnknown, "no sync status strategy available"
}

// requestHydration nudges the sync client to download an online-only
// entry. Reading a byte of a file or listing a directory is enough for
// every placeholder implementation we target; the transfer itself happens
// asynchronously outside this process.
func requestHydration(path string, isDir bool) bool {
	if isDir {
		_, err := os.ReadDir(path)
		return err == nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var buf [1]byte
	if _, err := f.Read(buf[:]); err != nil && err != io.EOF {
		return false
	}
	return true
}

// fallbackStrategy is the coarse heuristic used when platform metadata is
// unavailable: an entry that can be read end-to-first-byte (or listed) is
// treated as synced, one that errors on access as online-only. This is
// approximate (partially downloaded files may be misclassified), so the
// native strategies always run first.
type fallbackStrategy struct{}

func (fallbackStrategy) Classify(path string, info os.FileInfo) (domain.SyncState, error) {
	if info.IsDir() {
		if _, err := os.ReadDir(path); err != nil {
			return domain.StateOnlineOnly, nil
		}
		return domain.StateFullySynced, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.StateOnlineOnly, nil
	}
	defer f.Close()

	var buf [1]byte
	if _, err := f.Read(buf[:]); err != nil && err != io.EOF {
		return domain.StateOnlineOnly, nil
	}
	return domain.StateFullySynced, nil
}
