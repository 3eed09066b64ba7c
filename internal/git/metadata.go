package git

import (
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// Metadata identifies the repository a scan ran against. All fields are
// best-effort and empty outside a git repository.
type Metadata struct {
	Repo   string // owner/name when derivable from the origin URL
	Commit string
	Branch string
}

// RepoMetadata reads HEAD and the origin remote via go-git. Failures return
// zero metadata rather than an error: reports stay useful in exported
// tarballs and shallow CI checkouts.
func RepoMetadata(root string) Metadata {
	var md Metadata
	validRoot, err := validateRoot(root)
	if err != nil {
		return md
	}
	repo, err := gogit.PlainOpenWithOptions(validRoot, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return md
	}

	if head, err := repo.Head(); err == nil {
		md.Commit = head.Hash().String()
		if head.Name().IsBranch() {
			md.Branch = head.Name().Short()
		}
	}
	if remote, err := repo.Remote("origin"); err == nil {
		urls := remote.Config().URLs
		if len(urls) > 0 {
			md.Repo = shortRepo(urls[0])
		}
	}
	return md
}

// shortRepo reduces a remote URL to owner/name where possible.
func shortRepo(url string) string {
	s := strings.TrimSuffix(strings.TrimSpace(url), ".git")
	if i := strings.Index(s, "github.com/"); i >= 0 {
		return s[i+len("github.com/"):]
	}
	if i := strings.LastIndex(s, ":"); i >= 0 {
		return s[i+1:]
	}
	return s
}
