package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"devshell/internal/types"
)

// ResolverCore turns a validated descriptor into the final dependency
// set and environment mapping for one platform.  Resolution is a pure
// function of its arguments: the prior external environment is injected
// explicitly, never read from the process.
type ResolverCore struct{}

type ResolveResult struct {
	Dependencies []types.ResolvedDependency
	Environment  []types.EnvVar
}

func NewResolverCore() ResolverCore {
	return ResolverCore{}
}

var templateVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Resolve selects the dependency groups active on platform, concatenates
// them in declaration order, and evaluates the env rules in declaration
// order against prior, the externally observed values of append rules.
func (r ResolverCore) Resolve(
	ctx context.Context,
	platform types.PlatformKind,
	groups []types.DependencyGroup,
	rules []types.EnvRule,
	prior map[string]string,
) (ResolveResult, error) {
	if _, ok := validPlatforms[platform]; !ok {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown platform: %s", platform))
	}

	result := ResolveResult{}
	for _, group := range groups {
		if !conditionMatches(group.Condition, platform) {
			continue
		}
		for _, pkg := range group.Packages {
			result.Dependencies = append(result.Dependencies, types.ResolvedDependency{
				Group:   group.Name,
				Package: pkg,
			})
		}
	}

	sep := PathListSeparator(platform)
	resolved := map[string]string{}
	for _, rule := range rules {
		value, err := evaluateRule(rule, platform, sep, resolved)
		if err != nil {
			return ResolveResult{}, err
		}
		if rule.AppendExternal {
			value = appendToExternal(prior[rule.Name], value, sep)
		}
		resolved[rule.Name] = value
		result.Environment = append(result.Environment, types.EnvVar{
			Name:  rule.Name,
			Value: value,
		})
	}

	log.Ctx(ctx).Debug().
		Str("platform", string(platform)).
		Int("packages", len(result.Dependencies)).
		Int("variables", len(result.Environment)).
		Msg("resolver completed")
	return result, nil
}

func evaluateRule(rule types.EnvRule, platform types.PlatformKind, sep string, resolved map[string]string) (string, error) {
	if !rulePlatformMatches(rule, platform) {
		return "", nil
	}
	switch rule.Kind {
	case types.EnvRuleLiteral:
		return rule.Value, nil
	case types.EnvRuleTemplate:
		return expandTemplate(rule, resolved)
	case types.EnvRulePathList:
		return strings.Join(rule.Paths, sep), nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown env rule kind: %s (rule %s)", rule.Kind, rule.Name))
	}
}

func rulePlatformMatches(rule types.EnvRule, platform types.PlatformKind) bool {
	if len(rule.Platforms) == 0 {
		return true
	}
	for _, p := range rule.Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

func expandTemplate(rule types.EnvRule, resolved map[string]string) (string, error) {
	var missing string
	expanded := templateVarPattern.ReplaceAllStringFunc(rule.Value, func(match string) string {
		name := templateVarPattern.FindStringSubmatch(match)[1]
		value, ok := resolved[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return match
		}
		return value
	})
	if missing != "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("template references unresolved variable %s (rule %s)", missing, rule.Name))
	}
	return expanded, nil
}

// appendToExternal places the prior external value first and appends the
// computed value.  Appends only: the prior value is never rewritten, and
// repeated resolution with chained prior values accumulates one copy of
// the computed segment per call.
func appendToExternal(prior string, computed string, sep string) string {
	if prior == "" {
		return computed
	}
	if computed == "" {
		return prior
	}
	return prior + sep + computed
}
