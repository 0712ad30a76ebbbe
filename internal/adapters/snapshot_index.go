package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"devshell/internal/ports"
	"devshell/internal/types"
)

// SnapshotIndexAdapter is a file-backed package client: it checks each
// resolved dependency against the package inventory of the pinned
// snapshot.  Names only, no versions.
type SnapshotIndexAdapter struct {
	Path   string
	cached types.SnapshotIndexFile
	loaded bool
}

func NewSnapshotIndexAdapter(path string) *SnapshotIndexAdapter {
	return &SnapshotIndexAdapter{Path: path}
}

func (a *SnapshotIndexAdapter) Locate(ctx context.Context, snapshot types.Snapshot, deps []types.ResolvedDependency) error {
	index, err := a.load()
	if err != nil {
		return err
	}
	if index.Snapshot.Rev != "" && index.Snapshot.Rev != snapshot.Rev {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("snapshot index rev %s does not match pinned rev %s", index.Snapshot.Rev, snapshot.Rev))
	}
	available := map[string]struct{}{}
	for _, pkg := range index.Packages {
		available[pkg] = struct{}{}
	}
	for _, dep := range deps {
		if _, ok := available[dep.Package]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("unresolved external dependency: %s", dep.Package))
		}
	}
	log.Ctx(ctx).Debug().Int("packages", len(deps)).Msg("all dependencies located in snapshot")
	return nil
}

func (a *SnapshotIndexAdapter) load() (types.SnapshotIndexFile, error) {
	if a.loaded {
		return a.cached, nil
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return types.SnapshotIndexFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("snapshot index file not found").
			WithCause(err)
	}
	var index types.SnapshotIndexFile
	if err := yaml.Unmarshal(data, &index); err != nil {
		return types.SnapshotIndexFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse snapshot index yaml").
			WithCause(err)
	}
	a.cached = index
	a.loaded = true
	return index, nil
}

var _ ports.PackageClientPort = (*SnapshotIndexAdapter)(nil)
