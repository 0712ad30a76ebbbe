package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"devshell/internal/app"
)

type inspectOptions struct {
	Descriptor string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a descriptor without resolving it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Descriptor, "descriptor", "", "Descriptor file path")
	_ = viper.BindPFlag("descriptor", cmd.Flags().Lookup("descriptor"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		DescriptorPath: resolveString(cmd, opts.Descriptor, "descriptor", "descriptor"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("descriptor: %s\n", result.Name)
	fmt.Printf("snapshot: rev=%s channel=%s\n", result.Snapshot.Rev, result.Snapshot.Channel)
	for _, group := range result.Groups {
		fmt.Printf("group %s (%s): %d packages\n", group.Name, group.Condition, group.Count)
	}
	fmt.Printf("env rules: %s\n", strings.Join(result.EnvRules, ", "))
	return nil
}
