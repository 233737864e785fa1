//go:build !darwin && !linux && !windows

package status

// nativeStrategy returns nil on platforms without sync-state metadata;
// the read-probe heuristic is the whole chain there.
func nativeStrategy() Strategy {
	return nil
}
