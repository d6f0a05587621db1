// Package history computes the set of files changed on the current branch
// relative to a base reference, by diffing the merge-base tree against HEAD.
package history

import (
	"context"
	"errors"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"deadexport/internal/errs"
)

type ChangeKind int

const (
	Added ChangeKind = iota
	Modified
	Deleted
	Renamed
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "A"
	case Modified:
		return "M"
	case Deleted:
		return "D"
	case Renamed:
		return "R"
	default:
		return "?"
	}
}

// ChangedFile is one entry of the change listing. Path is absolute.
type ChangedFile struct {
	Path string
	Kind ChangeKind
}

// ChangedFiles returns the files changed between the merge-base of HEAD and
// baseRef, and HEAD. Using the merge-base rather than baseRef itself means
// only changes made on the current branch are reported, no matter how far
// the base branch has moved since divergence. Every failure is fatal to this
// call and names the step that failed; the symbol graph is unaffected.
func ChangedFiles(repoPath, baseRef string) ([]ChangedFile, error) {
	repo, err := gogit.PlainOpenWithOptions(repoPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeGit, "failed to find git repository").
			WithContext(errs.CtxPath, repoPath)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return nil, errs.New(errs.CodeGit, "repository has no working directory (bare repository)").
				WithContext(errs.CtxPath, repoPath)
		}
		return nil, errs.Wrap(err, errs.CodeGit, "failed to open working tree").
			WithContext(errs.CtxPath, repoPath)
	}
	rootPath := worktree.Filesystem.Root()

	baseHash, err := repo.ResolveRevision(plumbing.Revision(baseRef))
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeGit, "could not resolve git reference").
			WithContext(errs.CtxRef, baseRef).
			WithContext(errs.CtxStep, "reference resolution")
	}
	baseCommit, err := repo.CommitObject(*baseHash)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeGit, "reference does not point to a commit").
			WithContext(errs.CtxRef, baseRef).
			WithContext(errs.CtxStep, "reference resolution")
	}

	headRef, err := repo.Head()
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeGit, "failed to get HEAD reference").
			WithContext(errs.CtxStep, "reference resolution")
	}
	headCommit, err := repo.CommitObject(headRef.Hash())
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeGit, "HEAD does not point to a commit").
			WithContext(errs.CtxStep, "reference resolution")
	}

	bases, err := headCommit.MergeBase(baseCommit)
	if err != nil || len(bases) == 0 {
		return nil, errs.Wrap(err, errs.CodeGit, "could not find merge-base between HEAD and base").
			WithContext(errs.CtxRef, baseRef).
			WithContext(errs.CtxStep, "merge-base lookup")
	}
	mergeBase := bases[0]

	baseTree, err := mergeBase.Tree()
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeGit, "failed to get tree from merge-base commit").
			WithContext(errs.CtxStep, "diff computation")
	}
	headTree, err := headCommit.Tree()
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeGit, "failed to get tree from HEAD commit").
			WithContext(errs.CtxStep, "diff computation")
	}

	changes, err := object.DiffTreeWithOptions(context.Background(), baseTree, headTree,
		object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, errs.Wrap(err, errs.CodeGit, "failed to compute diff between merge-base and HEAD").
			WithContext(errs.CtxStep, "diff computation")
	}

	changed := make([]ChangedFile, 0, len(changes))
	for _, change := range changes {
		kind, relPath, ok := classifyChange(change)
		if !ok {
			continue
		}
		changed = append(changed, ChangedFile{
			Path: filepath.Join(rootPath, filepath.FromSlash(relPath)),
			Kind: kind,
		})
	}

	return changed, nil
}

func classifyChange(change *object.Change) (ChangeKind, string, bool) {
	fromName := change.From.Name
	toName := change.To.Name

	switch {
	case fromName == "":
		// Copies are not detected separately; a copied file has no From
		// entry and is reported added.
		return Added, toName, toName != ""
	case toName == "":
		return Deleted, fromName, true
	case fromName != toName:
		// With rename detection enabled a rename surfaces as a single
		// change whose old and new paths differ.
		return Renamed, toName, true
	default:
		return Modified, toName, true
	}
}
