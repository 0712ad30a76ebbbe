package core

import (
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devshell/internal/types"
)

func sampleGroups() []types.DependencyGroup {
	return []types.DependencyGroup{
		{Name: "base", Condition: types.ConditionAlways, Packages: []string{"A", "B"}},
		{Name: "mac", Condition: types.ConditionMacOSOnly, Packages: []string{"C"}},
		{Name: "linux", Condition: types.ConditionLinuxOnly, Packages: []string{"D", "E"}},
	}
}

func packageNames(deps []types.ResolvedDependency) []string {
	var names []string
	for _, dep := range deps {
		names = append(names, dep.Package)
	}
	return names
}

func TestResolveGroupSelection(t *testing.T) {
	resolver := NewResolverCore()
	cases := []struct {
		platform types.PlatformKind
		want     []string
	}{
		{types.PlatformMacOS, []string{"A", "B", "C"}},
		{types.PlatformLinux, []string{"A", "B", "D", "E"}},
		{types.PlatformOther, []string{"A", "B"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.platform), func(t *testing.T) {
			result, err := resolver.Resolve(t.Context(), tc.platform, sampleGroups(), nil, nil)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, packageNames(result.Dependencies)); diff != "" {
				t.Fatalf("unexpected dependency set (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveUnknownPlatform(t *testing.T) {
	resolver := NewResolverCore()
	_, err := resolver.Resolve(t.Context(), types.PlatformKind("windows"), sampleGroups(), nil, nil)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "unknown platform")
}

func TestResolveEmptyGroupsYieldEmptySet(t *testing.T) {
	resolver := NewResolverCore()
	groups := []types.DependencyGroup{
		{Name: "base", Condition: types.ConditionAlways},
		{Name: "mac", Condition: types.ConditionMacOSOnly},
		{Name: "linux", Condition: types.ConditionLinuxOnly},
	}
	for _, platform := range []types.PlatformKind{types.PlatformMacOS, types.PlatformLinux, types.PlatformOther} {
		result, err := resolver.Resolve(t.Context(), platform, groups, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Dependencies)
	}
}

func TestResolveDeterministic(t *testing.T) {
	resolver := NewResolverCore()
	rules := []types.EnvRule{
		{Name: "PREFIX", Kind: types.EnvRuleLiteral, Value: "/opt/llvm"},
		{Name: "LIBS", Kind: types.EnvRulePathList, Paths: []string{"/opt/llvm/lib", "/usr/local/lib"}},
		{Name: "LD_LIBRARY_PATH", Kind: types.EnvRuleTemplate, Value: "${LIBS}", AppendExternal: true},
	}
	prior := map[string]string{"LD_LIBRARY_PATH": "/lib"}

	first, err := resolver.Resolve(t.Context(), types.PlatformLinux, sampleGroups(), rules, prior)
	require.NoError(t, err)
	second, err := resolver.Resolve(t.Context(), types.PlatformLinux, sampleGroups(), rules, prior)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("resolution is not deterministic (-first +second):\n%s", diff)
	}
}

func TestResolveLiteralAndTemplate(t *testing.T) {
	resolver := NewResolverCore()
	rules := []types.EnvRule{
		{Name: "LLVM_SYS_100_PREFIX", Kind: types.EnvRuleLiteral, Value: "/opt/toolchains/llvm-10"},
		{Name: "LLVM_BIN", Kind: types.EnvRuleTemplate, Value: "${LLVM_SYS_100_PREFIX}/bin"},
	}
	result, err := resolver.Resolve(t.Context(), types.PlatformLinux, nil, rules, nil)
	require.NoError(t, err)
	value, ok := types.LookupEnv(result.Environment, "LLVM_BIN")
	require.True(t, ok)
	assert.Equal(t, "/opt/toolchains/llvm-10/bin", value)
}

func TestResolveTemplateMissingSource(t *testing.T) {
	resolver := NewResolverCore()
	rules := []types.EnvRule{
		{Name: "LD_LIBRARY_PATH", Kind: types.EnvRuleTemplate, Value: "${LIBS}"},
	}
	_, err := resolver.Resolve(t.Context(), types.PlatformLinux, nil, rules, nil)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "LIBS")
	assert.Contains(t, err.Error(), "LD_LIBRARY_PATH")
}

func TestResolveTemplateOnlySeesEarlierRules(t *testing.T) {
	resolver := NewResolverCore()
	rules := []types.EnvRule{
		{Name: "EARLY", Kind: types.EnvRuleTemplate, Value: "${LATE}"},
		{Name: "LATE", Kind: types.EnvRuleLiteral, Value: "set"},
	}
	_, err := resolver.Resolve(t.Context(), types.PlatformLinux, nil, rules, nil)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}

func TestResolvePathAppendOrder(t *testing.T) {
	resolver := NewResolverCore()
	rules := []types.EnvRule{
		{Name: "PATH", Kind: types.EnvRuleLiteral, Value: "/extra/bin", AppendExternal: true},
	}
	result, err := resolver.Resolve(t.Context(), types.PlatformLinux, nil, rules, map[string]string{"PATH": "/usr/bin"})
	require.NoError(t, err)
	value, ok := types.LookupEnv(result.Environment, "PATH")
	require.True(t, ok)
	assert.Equal(t, "/usr/bin:/extra/bin", value)
}

func TestResolveAppendWithoutPriorValue(t *testing.T) {
	resolver := NewResolverCore()
	rules := []types.EnvRule{
		{Name: "PATH", Kind: types.EnvRuleLiteral, Value: "/extra/bin", AppendExternal: true},
	}
	result, err := resolver.Resolve(t.Context(), types.PlatformLinux, nil, rules, nil)
	require.NoError(t, err)
	value, _ := types.LookupEnv(result.Environment, "PATH")
	assert.Equal(t, "/extra/bin", value)
}

// Chained resolution accumulates one appended copy per call: append is
// not deduplicated.
func TestResolveChainedAppendAccumulates(t *testing.T) {
	resolver := NewResolverCore()
	rules := []types.EnvRule{
		{Name: "LIBS", Kind: types.EnvRulePathList, Paths: []string{"/opt/lib"}},
		{Name: "LD_LIBRARY_PATH", Kind: types.EnvRuleTemplate, Value: "${LIBS}", AppendExternal: true},
	}

	prior := map[string]string{}
	for i := 1; i <= 3; i++ {
		result, err := resolver.Resolve(t.Context(), types.PlatformLinux, nil, rules, prior)
		require.NoError(t, err)
		value, ok := types.LookupEnv(result.Environment, "LD_LIBRARY_PATH")
		require.True(t, ok)
		assert.Equal(t, i, countSegments(value, "/opt/lib"))
		prior = map[string]string{"LD_LIBRARY_PATH": value}
	}
}

func countSegments(value string, segment string) int {
	count := 0
	for _, part := range strings.Split(value, ":") {
		if part == segment {
			count++
		}
	}
	return count
}

func TestResolvePlatformRestrictedRuleIsEmptyElsewhere(t *testing.T) {
	resolver := NewResolverCore()
	rules := []types.EnvRule{
		{Name: "APPEND_LIBRARY_PATH", Kind: types.EnvRulePathList, Paths: []string{"/opt/lib"}, Platforms: []types.PlatformKind{types.PlatformLinux}},
		{Name: "LD_LIBRARY_PATH", Kind: types.EnvRuleTemplate, Value: "${APPEND_LIBRARY_PATH}", AppendExternal: true},
	}
	prior := map[string]string{"LD_LIBRARY_PATH": "/lib"}

	onLinux, err := resolver.Resolve(t.Context(), types.PlatformLinux, nil, rules, prior)
	require.NoError(t, err)
	linuxValue, _ := types.LookupEnv(onLinux.Environment, "LD_LIBRARY_PATH")
	assert.Equal(t, "/lib:/opt/lib", linuxValue)

	onMac, err := resolver.Resolve(t.Context(), types.PlatformMacOS, nil, rules, prior)
	require.NoError(t, err)
	macAppend, ok := types.LookupEnv(onMac.Environment, "APPEND_LIBRARY_PATH")
	require.True(t, ok)
	assert.Equal(t, "", macAppend)
	macValue, _ := types.LookupEnv(onMac.Environment, "LD_LIBRARY_PATH")
	assert.Equal(t, "/lib", macValue)
}

func TestResolveEnvironmentKeepsRuleOrder(t *testing.T) {
	resolver := NewResolverCore()
	rules := []types.EnvRule{
		{Name: "B", Kind: types.EnvRuleLiteral, Value: "2"},
		{Name: "A", Kind: types.EnvRuleLiteral, Value: "1"},
	}
	result, err := resolver.Resolve(t.Context(), types.PlatformOther, nil, rules, nil)
	require.NoError(t, err)
	want := []types.EnvVar{{Name: "B", Value: "2"}, {Name: "A", Value: "1"}}
	if diff := cmp.Diff(want, result.Environment); diff != "" {
		t.Fatalf("unexpected environment order (-want +got):\n%s", diff)
	}
}
