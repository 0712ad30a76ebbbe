package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"devshell/internal/app"
	"devshell/internal/shared"
)

type envOptions struct {
	Descriptor string
	Platform   string
}

// env prints export lines to stdout so the invoking shell can do
// `eval "$(devshell env --descriptor shell.yaml)"`.
func newEnvCommand() *cobra.Command {
	opts := envOptions{}
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print resolved environment as shell export lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEnv(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Descriptor, "descriptor", "", "Descriptor file path")
	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Target platform (macos, linux, other; default: detect)")
	_ = viper.BindPFlag("descriptor", cmd.Flags().Lookup("descriptor"))
	_ = viper.BindPFlag("platform", cmd.Flags().Lookup("platform"))
	return cmd
}

func runEnv(ctx context.Context, cmd *cobra.Command, opts envOptions) error {
	service := newAppService()
	result, err := service.Export(ctx, app.ExportRequest{
		DescriptorPath: resolveString(cmd, opts.Descriptor, "descriptor", "descriptor"),
		Platform:       resolveString(cmd, opts.Platform, "platform", "platform"),
	})
	if err != nil {
		return err
	}
	for _, v := range result.Environment {
		fmt.Printf("export %s=%s\n", v.Name, shared.ShellQuote(v.Value))
	}
	return nil
}
