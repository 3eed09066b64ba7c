package engine

import (
	"path/filepath"
	"strings"
)

// Directory names pruned at any depth: version control, build output,
// dependency trees, and virtual environments.
var defaultSkipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"target":       true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	".venv":        true,
	"venv":         true,
	"__pycache__":  true,
	"coverage":     true,
	"bin":          true,
	"obj":          true,
}

// Extensions scanned by default: source, config and markup file types where
// a hidden bidi control is either an attack or an accident worth flagging.
var defaultExtensions = map[string]bool{
	".rs":   true,
	".go":   true,
	".py":   true,
	".sh":   true,
	".ps1":  true,
	".ts":   true,
	".tsx":  true,
	".js":   true,
	".jsx":  true,
	".json": true,
	".toml": true,
	".yml":  true,
	".yaml": true,
	".md":   true,
}

// Exact file names never scanned: the tool's own artifacts, whose baseline
// keys embed the raw flagged characters, and machine-written lockfiles.
var defaultSkipFiles = map[string]bool{
	"bidiguard.baseline.json": true,
	".bidiguardcache.json":    true,
	"package-lock.json":       true,
	"pnpm-lock.yaml":          true,
}

// Exact match only: .github and friends hold workflow files that are prime
// injection targets and must stay scannable.
func isSkipDir(name string) bool {
	return defaultSkipDirs[name]
}

func isSkipFile(rel string) bool {
	base := strings.ToLower(filepath.Base(rel))
	return defaultSkipFiles[base] || strings.HasSuffix(base, ".lock")
}

// allowedExtension reports whether the file's extension is in the default
// allow-list or in the extra comma-separated list from config/flags.
func allowedExtension(relPath, extra string) bool {
	ext := strings.ToLower(filepath.Ext(relPath))
	if ext == "" {
		return false
	}
	if defaultExtensions[ext] {
		return true
	}
	for _, e := range strings.Split(extra, ",") {
		e = strings.TrimSpace(strings.ToLower(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if e == ext {
			return true
		}
	}
	return false
}

// hasSkipComponent reports whether any path component of rel is a
// skip-listed directory name, regardless of depth. Used for paths that do
// not come from the walker (staged blobs), which bypass SkipDir pruning.
func hasSkipComponent(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if isSkipDir(part) {
			return true
		}
	}
	return false
}
