package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"devshell/internal/app"
)

type depsOptions struct {
	Descriptor string
	Platform   string
}

func newDepsCommand() *cobra.Command {
	opts := depsOptions{}
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Print the resolved dependency set in order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDeps(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Descriptor, "descriptor", "", "Descriptor file path")
	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Target platform (macos, linux, other; default: detect)")
	_ = viper.BindPFlag("descriptor", cmd.Flags().Lookup("descriptor"))
	_ = viper.BindPFlag("platform", cmd.Flags().Lookup("platform"))
	return cmd
}

func runDeps(ctx context.Context, cmd *cobra.Command, opts depsOptions) error {
	service := newAppService()
	result, err := service.Deps(ctx, app.DepsRequest{
		DescriptorPath: resolveString(cmd, opts.Descriptor, "descriptor", "descriptor"),
		Platform:       resolveString(cmd, opts.Platform, "platform", "platform"),
	})
	if err != nil {
		return err
	}
	for _, dep := range result.Dependencies {
		fmt.Printf("%s\t%s\n", dep.Group, dep.Package)
	}
	return nil
}
