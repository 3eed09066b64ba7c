// Package git provides the small amount of repository plumbing the scanner
// needs: staged blob contents and best-effort repo metadata.
package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// validateRoot validates and normalizes a git repository root path.
func validateRoot(root string) (string, error) {
	if strings.ContainsRune(root, 0) {
		return "", fmt.Errorf("invalid path: contains null byte")
	}
	abs, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot access path %q: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", root)
	}
	return abs, nil
}

// StagedFiles returns the paths and full staged contents of files in the
// index. Contents come from `git show :<path>` so the scan sees exactly what
// would be committed, not what is in the working tree.
func StagedFiles(root string) ([]string, [][]byte, error) {
	validRoot, err := validateRoot(root)
	if err != nil {
		return nil, nil, err
	}

	// -z: NUL-delimited, so paths with spaces survive the split
	cmd := exec.Command("git", "-C", validRoot, "diff", "--name-only", "--cached", "-z")
	out, err := cmd.Output()
	if err != nil {
		return nil, nil, fmt.Errorf("list staged files: %w", err)
	}
	var paths []string
	for _, p := range strings.Split(string(out), "\x00") {
		if p != "" {
			paths = append(paths, p)
		}
	}
	var data [][]byte
	for _, p := range paths {
		show := exec.Command("git", "-C", validRoot, "show", ":"+p)
		b, err := show.Output()
		if err != nil {
			// deleted in index; nothing to scan
			b = []byte{}
		}
		data = append(data, b)
	}
	return paths, data, nil
}
