package git

import (
	"errors"
	"strings"
)

// WalkOptions bounds an ancestry walk.
type WalkOptions struct {
	MaxCommits int // 0 walks to the root commit
}

// Walk follows first parents from start and returns the chain, newest first.
// An empty start (or "HEAD") begins at repo.Head(). Every emitted reference is
// recorded in lookup, so later duplicates of a label replace earlier ones.
// The walk ends at a root commit; merge commits' other parents are never visited.
func Walk(repo Repository, start string, lookup *CommitLookup, opts WalkOptions) (AncestryList, error) {
	var (
		current CommitInfo
		err     error
	)
	if start == "" || strings.EqualFold(start, "HEAD") {
		current, err = repo.Head()
	} else {
		current, err = repo.ResolveCommit(start)
	}
	if err != nil {
		return nil, err
	}

	var ancestry AncestryList
	seen := make(map[string]struct{})

	for {
		if _, ok := seen[current.SHA]; ok {
			break
		}
		seen[current.SHA] = struct{}{}

		ref := NewCommitRef(current)
		if lookup != nil {
			lookup.Set(ref.Label, ref.ID)
		}
		ancestry = append(ancestry, ref)

		if opts.MaxCommits > 0 && len(ancestry) >= opts.MaxCommits {
			break
		}

		parent, err := repo.FirstParent(current.SHA)
		if err != nil {
			var noParent *NoParentError
			if errors.As(err, &noParent) {
				break
			}
			return ancestry, err
		}
		current = parent
	}

	return ancestry, nil
}
