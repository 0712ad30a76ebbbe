package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"devshell/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	descriptorPath := strings.TrimSpace(req.DescriptorPath)
	if descriptorPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor path is required")
	}
	descriptor, err := s.Descriptor.LoadDescriptor(descriptorPath)
	if err != nil {
		return ValidateResult{}, err
	}
	compiler := core.NewSpecCompiler()
	if err := compiler.ValidateDescriptor(ctx, descriptor); err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{Name: descriptor.Metadata.Name}, nil
}
