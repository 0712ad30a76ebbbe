package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"devshell/internal/core"
)

// Inspect summarizes a descriptor without resolving it: the snapshot
// pin, each group with its condition and package count, and the env
// rule names in evaluation order.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	descriptorPath := strings.TrimSpace(req.DescriptorPath)
	if descriptorPath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor path is required")
	}
	descriptor, err := s.Descriptor.LoadDescriptor(descriptorPath)
	if err != nil {
		return InspectResult{}, err
	}
	compiler := core.NewSpecCompiler()
	if err := compiler.ValidateDescriptor(ctx, descriptor); err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{
		Name:     descriptor.Metadata.Name,
		Snapshot: descriptor.Snapshot,
	}
	for _, group := range descriptor.Groups {
		result.Groups = append(result.Groups, InspectGroupSummary{
			Name:      group.Name,
			Condition: group.Condition,
			Count:     len(group.Packages),
		})
	}
	for _, rule := range descriptor.Env {
		result.EnvRules = append(result.EnvRules, rule.Name)
	}
	return result, nil
}
