package core

import (
	"github.com/bidiguard/bidiguard/internal/engine"
	"github.com/bidiguard/bidiguard/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Hit = types.Hit
type Result = engine.Result

// Scan is the stable entrypoint for other programs. It returns only the
// hits, in file walk order with in-file hits in offset order.
func Scan(cfg Config) ([]Hit, error) {
	res, err := engine.ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Hits, nil
}

// ScanWithStats runs a scan and returns hits along with timing and counts.
func ScanWithStats(cfg Config) (Result, error) {
	return engine.ScanWithStats(cfg)
}

// RuleIDs returns the list of registered rule IDs.
// This is exposed for convenience to avoid importing internals directly.
func RuleIDs() []string { return engine.RuleIDs() }
