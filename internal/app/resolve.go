package app

import (
	"context"
	"runtime"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"devshell/internal/adapters"
	"devshell/internal/core"
	"devshell/internal/shared"
	"devshell/internal/types"
)

// Resolve loads and validates the descriptor, resolves it for the
// requested platform, locates the dependency set in the snapshot index
// when one is configured, and writes env.sh and deps.manifest.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	descriptor, platform, result, err := s.resolveDescriptor(ctx, req.DescriptorPath, req.Platform)
	if err != nil {
		return ResolveResult{}, err
	}

	outputDir := shared.FirstNonEmpty(req.OutputDir, descriptor.Defaults.Output)
	if outputDir == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}

	snapshotIndex := shared.FirstNonEmpty(req.SnapshotIndex, descriptor.Defaults.SnapshotIndex)
	if snapshotIndex != "" {
		client := adapters.NewSnapshotIndexAdapter(snapshotIndex)
		if err := client.Locate(ctx, descriptor.Snapshot, result.Dependencies); err != nil {
			return ResolveResult{}, err
		}
	}

	output := adapters.NewOutputFileAdapter(outputDir)
	if err := output.WriteEnvScript(result.Environment); err != nil {
		return ResolveResult{}, err
	}
	if err := output.WriteDependencyManifest(result.Dependencies); err != nil {
		return ResolveResult{}, err
	}

	return ResolveResult{
		Name:         descriptor.Metadata.Name,
		Platform:     platform,
		OutputDir:    outputDir,
		PackageCount: len(result.Dependencies),
	}, nil
}

// Export resolves the descriptor and returns the environment mapping
// without touching the filesystem.
func (s Service) Export(ctx context.Context, req ExportRequest) (ExportResult, error) {
	descriptor, platform, result, err := s.resolveDescriptor(ctx, req.DescriptorPath, req.Platform)
	if err != nil {
		return ExportResult{}, err
	}
	return ExportResult{
		Name:        descriptor.Metadata.Name,
		Platform:    platform,
		Environment: result.Environment,
	}, nil
}

// Deps resolves the descriptor and returns the ordered dependency set.
func (s Service) Deps(ctx context.Context, req DepsRequest) (DepsResult, error) {
	descriptor, platform, result, err := s.resolveDescriptor(ctx, req.DescriptorPath, req.Platform)
	if err != nil {
		return DepsResult{}, err
	}
	return DepsResult{
		Name:         descriptor.Metadata.Name,
		Platform:     platform,
		Dependencies: result.Dependencies,
	}, nil
}

func (s Service) resolveDescriptor(ctx context.Context, descriptorPath string, platformValue string) (types.Descriptor, types.PlatformKind, core.ResolveResult, error) {
	descriptorPath = strings.TrimSpace(descriptorPath)
	if descriptorPath == "" {
		return types.Descriptor{}, "", core.ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor path is required")
	}
	descriptor, err := s.Descriptor.LoadDescriptor(descriptorPath)
	if err != nil {
		return types.Descriptor{}, "", core.ResolveResult{}, err
	}
	compiler := core.NewSpecCompiler()
	if err := compiler.ValidateDescriptor(ctx, descriptor); err != nil {
		return types.Descriptor{}, "", core.ResolveResult{}, err
	}

	platform, err := s.selectPlatform(platformValue, descriptor)
	if err != nil {
		return types.Descriptor{}, "", core.ResolveResult{}, err
	}

	prior := s.HostEnv.Snapshot(externalNames(descriptor.Env))
	resolver := core.NewResolverCore()
	result, err := resolver.Resolve(ctx, platform, descriptor.Groups, descriptor.Env, prior)
	if err != nil {
		return types.Descriptor{}, "", core.ResolveResult{}, err
	}
	return descriptor, platform, result, nil
}

func (s Service) selectPlatform(value string, descriptor types.Descriptor) (types.PlatformKind, error) {
	selected := shared.FirstNonEmpty(value, descriptor.Defaults.Platform)
	if selected == "" {
		return core.DetectPlatform(runtime.GOOS), nil
	}
	return core.ParsePlatform(selected)
}

// externalNames lists the variables whose prior external value feeds an
// append rule.  Only those are snapshotted from the host.
func externalNames(rules []types.EnvRule) []string {
	var names []string
	for _, rule := range rules {
		if rule.AppendExternal {
			names = append(names, rule.Name)
		}
	}
	return names
}
