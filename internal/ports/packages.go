package ports

import (
	"context"

	"devshell/internal/types"
)

// PackageClientPort locates every resolved dependency in the pinned
// repository snapshot.  Location failures surface unchanged; nothing is
// retried here.
type PackageClientPort interface {
	Locate(ctx context.Context, snapshot types.Snapshot, deps []types.ResolvedDependency) error
}
