package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bidiguard/bidiguard/internal/ignore"
)

// Walk traverses the working tree and invokes handle with the relative path
// and full content of each eligible file. Unreadable files are skipped with
// a warning (or abort the walk under cfg.Strict); the count is recorded so
// callers can surface it.
func Walk(cfg Config, ign ignore.Matcher, res *Result, handle func(path string, data []byte)) error {
	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if cfg.Strict {
				return fmt.Errorf("walk %s: %w", p, err)
			}
			res.ReadErrors++
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", p, err)
			return nil
		}
		if d.IsDir() {
			if p != cfg.Root && isSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if isSkipFile(rel) || !allowedExtension(rel, cfg.Extensions) {
			res.FilesSkipped++
			return nil
		}
		if !allowedByGlobs(rel, cfg) {
			res.FilesSkipped++
			return nil
		}
		if ign.Match(rel) {
			res.FilesSkipped++
			return nil
		}
		if info, err := d.Info(); err == nil && cfg.MaxBytes > 0 && info.Size() > cfg.MaxBytes {
			res.FilesSkipped++
			return nil
		}
		// Whole file in memory: targets are source-sized text files.
		b, err := os.ReadFile(p)
		if err != nil {
			if cfg.Strict {
				return fmt.Errorf("read %s: %w", p, err)
			}
			res.ReadErrors++
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", p, err)
			return nil
		}
		handle(filepath.ToSlash(rel), b)
		return nil
	})
}
