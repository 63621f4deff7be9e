package diffdoc

import "context"

// Source is the version-control layer, treated as a black box producing
// raw unified-diff text per changed file.
type Source interface {
	// Changes lists the files changed between two commits, in the order
	// the underlying diff listing reports them.
	Changes(ctx context.Context, from, to string) ([]RawChange, error)

	// FirstCommit resolves the root commit of the current branch.
	FirstCommit(ctx context.Context) (string, error)

	// Head resolves the current HEAD commit.
	Head(ctx context.Context) (string, error)
}
