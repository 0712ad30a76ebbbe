package ports

import "devshell/internal/types"

type OutputPort interface {
	WriteEnvScript(vars []types.EnvVar) error
	WriteDependencyManifest(entries []types.ResolvedDependency) error
}
