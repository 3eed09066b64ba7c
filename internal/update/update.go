// Package update performs the latest-release lookup behind the scan banner.
// The answer is cached on disk for a day so repeated local runs stay quiet,
// and the check is a no-op in CI.
package update

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	semver "github.com/blang/semver/v4"
)

const (
	releaseURL    = "https://api.github.com/repos/bidiguard/bidiguard/releases/latest"
	stateFileName = "update.json"
	maxStateAge   = 24 * time.Hour
)

// checkState is the persisted result of the last successful lookup.
type checkState struct {
	LastChecked time.Time `json:"last_checked"`
	Latest      string    `json:"latest"`
}

func statePath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home == "" {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "bidiguard", stateFileName)
}

func readState() checkState {
	var s checkState
	p := statePath()
	if p == "" {
		return s
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return s
	}
	_ = json.Unmarshal(b, &s)
	return s
}

func writeState(s checkState) {
	p := statePath()
	if p == "" {
		return
	}
	_ = os.MkdirAll(filepath.Dir(p), 0755)
	b, _ := json.MarshalIndent(s, "", "  ")
	_ = os.WriteFile(p, b, 0644)
}

func fetchLatest() (string, error) {
	client := &http.Client{Timeout: 2 * time.Second}
	req, _ := http.NewRequest("GET", releaseURL, nil)
	req.Header.Set("User-Agent", "bidiguard-updater")
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	var obj struct {
		TagName string `json:"tag_name"`
		Name    string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		return "", err
	}
	if obj.TagName != "" {
		return obj.TagName, nil
	}
	return obj.Name, nil
}

// isNewer compares release tags as semantic versions. Anything that does not
// parse as a version never counts as newer.
func isNewer(latest, current string) bool {
	lv, err := semver.ParseTolerant(latest)
	if err != nil {
		return false
	}
	cv, err := semver.ParseTolerant(current)
	if err != nil {
		return false
	}
	return lv.GT(cv)
}

// Check returns the latest known release and whether it is newer than
// current. It consults the on-disk state when fresh and skips entirely in CI
// or when noNetwork is set.
func Check(current string, noNetwork bool) (string, bool, error) {
	if os.Getenv("CI") != "" || noNetwork {
		return "", false, nil
	}
	s := readState()
	if s.Latest == "" || time.Since(s.LastChecked) > maxStateAge {
		if v, err := fetchLatest(); err == nil {
			s.Latest = v
			s.LastChecked = time.Now()
			writeState(s)
		}
	}
	latest := strings.TrimPrefix(strings.TrimSpace(s.Latest), "v")
	return latest, isNewer(latest, current), nil
}
