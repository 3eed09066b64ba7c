// Package ignore matches paths against a .bidiguardignore file: one pattern
// per line, '#' comments, blank lines skipped. A pattern ending in '/'
// matches everything under that directory; patterns without a separator also
// match against the path's base name (so "*.pem" works at any depth).
package ignore

import (
	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type Matcher struct {
	patterns []string
}

// Load reads the ignore file at p. A missing file yields an empty matcher;
// callers treat that error as non-fatal.
func Load(p string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(p)
	if err != nil {
		return m, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// Match reports whether rel (forward or backward slashes) is ignored.
func (m Matcher) Match(rel string) bool {
	rp := filepath.ToSlash(rel)
	base := path.Base(rp)
	for _, pat := range m.patterns {
		if strings.HasSuffix(pat, "/") {
			dir := strings.TrimSuffix(pat, "/")
			if rp == dir || strings.HasPrefix(rp, dir+"/") {
				return true
			}
			continue
		}
		if ok, _ := path.Match(pat, rp); ok {
			return true
		}
		if !strings.Contains(pat, "/") {
			if ok, _ := path.Match(pat, base); ok {
				return true
			}
		}
	}
	return false
}
