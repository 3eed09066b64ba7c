// Package engine discovers candidate files and drives per-file scans,
// aggregating hits and scan statistics.
package engine

import (
	"path/filepath"
	"strings"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"
	xxhash "github.com/cespare/xxhash/v2"

	"github.com/bidiguard/bidiguard/internal/cache"
	"github.com/bidiguard/bidiguard/internal/detectors"
	"github.com/bidiguard/bidiguard/internal/ignore"
	"github.com/bidiguard/bidiguard/internal/scanner"
	"github.com/bidiguard/bidiguard/internal/types"
)

// Config controls scanning scope and filters.
type Config struct {
	Root         string
	IncludeGlobs string // comma-separated, doublestar semantics
	ExcludeGlobs string
	Extensions   string // extra allow-listed extensions, comma-separated
	MaxBytes     int64  // 0 means the default ceiling, negative means no limit
	EnableRules  string
	DisableRules string
	Staged       bool // scan staged blob contents instead of the working tree
	NoCache      bool
	Strict       bool // read errors abort the run instead of skip-with-warning
	Progress     func()
}

// defaultMaxBytes is the per-file size ceiling when none is configured.
const defaultMaxBytes = 1 << 20

// Result contains the hits and basic statistics for one run.
type Result struct {
	Hits         []types.Hit
	FilesScanned int
	FilesSkipped int
	ReadErrors   int
	Duration     time.Duration
}

// ScanWithStats runs a full scan. Hits within each file are in increasing
// offset order; files are visited in walk order, so the aggregate count is
// deterministic for a given tree.
func ScanWithStats(cfg Config) (Result, error) {
	var res Result
	if cfg.MaxBytes == 0 {
		cfg.MaxBytes = defaultMaxBytes
	}
	rules := detectors.Enabled(cfg.EnableRules, cfg.DisableRules)
	ign, _ := ignore.Load(filepath.Join(cfg.Root, ".bidiguardignore"))

	db := cache.DB{Entries: map[string]string{}}
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root)
	}
	updated := map[string]string{}

	started := time.Now()
	scanOne := func(p string, data []byte) {
		h := fastHash(data)
		// Only clean files are cached, so a cache match means no hits last
		// time with identical content. Files that had hits always rescan.
		if !cfg.NoCache && db.Entries[p] == h {
			res.FilesScanned++
			if cfg.Progress != nil {
				cfg.Progress()
			}
			return
		}
		hits := scanner.Scan(p, data, rules)
		res.Hits = append(res.Hits, hits...)
		res.FilesScanned++
		if cfg.Progress != nil {
			cfg.Progress()
		}
		if len(hits) == 0 && !cfg.NoCache {
			updated[p] = h
		}
	}

	var err error
	if cfg.Staged {
		err = scanStaged(cfg, ign, &res, scanOne)
	} else {
		err = Walk(cfg, ign, &res, scanOne)
	}
	if err != nil {
		return res, err
	}

	res.Duration = time.Since(started)
	if !cfg.NoCache && len(updated) > 0 {
		for k, v := range updated {
			db.Entries[k] = v
		}
		_ = cache.Save(cfg.Root, db)
	}
	return res, nil
}

func fastHash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}

// allowedByGlobs applies the comma-separated include/exclude globs. Includes
// act as a positive filter when present; excludes are subtracted last.
// Matching uses forward-slash semantics.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
			out = append(out, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}

// RuleIDs returns the IDs of every registered rule, for CLI help output.
func RuleIDs() []string {
	return detectors.IDs()
}

// EnabledRuleIDs resolves the enable/disable lists exactly as a scan does,
// so callers can report the active rule set for a given config.
func EnabledRuleIDs(enable, disable string) []string {
	rules := detectors.Enabled(enable, disable)
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.ID
	}
	return out
}
