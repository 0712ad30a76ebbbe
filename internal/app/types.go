package app

import "devshell/internal/types"

type ValidateRequest struct {
	DescriptorPath string
}

type ValidateResult struct {
	Name string
}

type ResolveRequest struct {
	DescriptorPath string
	Platform       string
	OutputDir      string
	SnapshotIndex  string
}

type ResolveResult struct {
	Name         string
	Platform     types.PlatformKind
	OutputDir    string
	PackageCount int
}

type ExportRequest struct {
	DescriptorPath string
	Platform       string
}

type ExportResult struct {
	Name        string
	Platform    types.PlatformKind
	Environment []types.EnvVar
}

type DepsRequest struct {
	DescriptorPath string
	Platform       string
}

type DepsResult struct {
	Name         string
	Platform     types.PlatformKind
	Dependencies []types.ResolvedDependency
}

type InspectRequest struct {
	DescriptorPath string
}

type InspectGroupSummary struct {
	Name      string
	Condition types.GroupCondition
	Count     int
}

type InspectResult struct {
	Name     string
	Snapshot types.Snapshot
	Groups   []InspectGroupSummary
	EnvRules []string
}
