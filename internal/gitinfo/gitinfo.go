// Package gitinfo collects repository metadata for scan reports.
package gitinfo

import (
	git "github.com/go-git/go-git/v5"

	"github.com/petrarca/gemfile-parser/internal/types"
)

// Collect retrieves git repository information for the given path. Returns
// nil when the path is not inside a git repository; a scan report simply
// omits the git section in that case.
func Collect(path string) *types.GitInfo {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}

	info := &types.GitInfo{}

	head, err := repo.Head()
	if err == nil {
		// Short hash (first 7 characters)
		info.Commit = head.Hash().String()[:7]
		if head.Name().IsBranch() {
			info.Branch = head.Name().Short()
		} else {
			info.Branch = "HEAD" // Detached HEAD
		}
	}

	worktree, err := repo.Worktree()
	if err == nil {
		if status, err := worktree.Status(); err == nil {
			info.IsDirty = !status.IsClean()
		}
	}

	config, err := repo.Config()
	if err == nil {
		if origin := config.Remotes["origin"]; origin != nil && len(origin.URLs) > 0 {
			info.RemoteURL = origin.URLs[0]
		}
	}

	return info
}
