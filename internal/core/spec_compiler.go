package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"devshell/internal/types"
)

type SpecCompiler struct{}

var validConditions = map[types.GroupCondition]struct{}{
	types.ConditionAlways:    {},
	types.ConditionMacOSOnly: {},
	types.ConditionLinuxOnly: {},
}

var validRuleKinds = map[types.EnvRuleKind]struct{}{
	types.EnvRuleLiteral:  {},
	types.EnvRuleTemplate: {},
	types.EnvRulePathList: {},
}

func NewSpecCompiler() SpecCompiler {
	return SpecCompiler{}
}

func (c SpecCompiler) ValidateDescriptor(ctx context.Context, descriptor types.Descriptor) error {
	assert.NotEmpty(ctx, descriptor.APIVersion, "api_version must be set")
	assert.NotEmpty(ctx, descriptor.Metadata.Name, "metadata.name must be set")
	assert.NotEmpty(ctx, descriptor.Snapshot.Rev, "snapshot.rev must be set")

	seenGroups := map[string]struct{}{}
	for _, group := range descriptor.Groups {
		if err := validateGroup(group); err != nil {
			return err
		}
		if _, ok := seenGroups[group.Name]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate group name: %s", group.Name))
		}
		seenGroups[group.Name] = struct{}{}
	}

	seenRules := map[string]struct{}{}
	for _, rule := range descriptor.Env {
		if err := validateEnvRule(rule); err != nil {
			return err
		}
		if _, ok := seenRules[rule.Name]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate env rule name: %s", rule.Name))
		}
		seenRules[rule.Name] = struct{}{}
	}

	log.Ctx(ctx).Debug().Str("descriptor", descriptor.Metadata.Name).Msg("descriptor validated")
	return nil
}

func validateGroup(group types.DependencyGroup) error {
	if strings.TrimSpace(group.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("groups.name must not be empty")
	}
	if group.Condition == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("group %s missing condition", group.Name))
	}
	if _, ok := validConditions[group.Condition]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("group %s has invalid condition %s", group.Name, group.Condition))
	}
	for _, pkg := range group.Packages {
		if strings.TrimSpace(pkg) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("group %s contains an empty package name", group.Name))
		}
	}
	return nil
}

func validateEnvRule(rule types.EnvRule) error {
	if strings.TrimSpace(rule.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("env.name must not be empty")
	}
	if _, ok := validRuleKinds[rule.Kind]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("env rule %s has invalid kind %s", rule.Name, rule.Kind))
	}
	switch rule.Kind {
	case types.EnvRulePathList:
		if len(rule.Paths) == 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("env rule %s is pathlist but has no paths", rule.Name))
		}
		if rule.Value != "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("env rule %s is pathlist but carries a value", rule.Name))
		}
	default:
		if rule.Value == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("env rule %s has no value", rule.Name))
		}
		if len(rule.Paths) > 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("env rule %s is %s but carries paths", rule.Name, rule.Kind))
		}
	}
	for _, platform := range rule.Platforms {
		if _, ok := validPlatforms[platform]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("env rule %s restricts to invalid platform %s", rule.Name, platform))
		}
	}
	return nil
}
