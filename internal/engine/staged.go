package engine

import (
	"github.com/bidiguard/bidiguard/internal/git"
	"github.com/bidiguard/bidiguard/internal/ignore"
)

// scanStaged feeds staged blob contents through the same filters as the
// working-tree walk. Paths come from git, not the walker, so skip-dir
// pruning is re-applied per component.
func scanStaged(cfg Config, ign ignore.Matcher, res *Result, handle func(path string, data []byte)) error {
	files, data, err := git.StagedFiles(cfg.Root)
	if err != nil {
		return err
	}
	for i, p := range files {
		if hasSkipComponent(p) || isSkipFile(p) || !allowedExtension(p, cfg.Extensions) {
			res.FilesSkipped++
			continue
		}
		if !allowedByGlobs(p, cfg) || ign.Match(p) {
			res.FilesSkipped++
			continue
		}
		if cfg.MaxBytes > 0 && int64(len(data[i])) > cfg.MaxBytes {
			res.FilesSkipped++
			continue
		}
		handle(p, data[i])
	}
	return nil
}
