package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"devshell/internal/app"
)

type resolveOptions struct {
	Descriptor    string
	Platform      string
	OutputDir     string
	SnapshotIndex string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a descriptor and materialize env.sh and deps.manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Descriptor, "descriptor", "", "Descriptor file path")
	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Target platform (macos, linux, other; default: detect)")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().StringVar(&opts.SnapshotIndex, "snapshot-index", "", "Snapshot index file (optional)")

	_ = viper.BindPFlag("descriptor", cmd.Flags().Lookup("descriptor"))
	_ = viper.BindPFlag("platform", cmd.Flags().Lookup("platform"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("snapshot_index", cmd.Flags().Lookup("snapshot-index"))

	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		DescriptorPath: resolveString(cmd, opts.Descriptor, "descriptor", "descriptor"),
		Platform:       resolveString(cmd, opts.Platform, "platform", "platform"),
		OutputDir:      resolveString(cmd, opts.OutputDir, "output", "output"),
		SnapshotIndex:  resolveString(cmd, opts.SnapshotIndex, "snapshot_index", "snapshot-index"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("resolved: %s (%s, %d packages) -> %s\n", result.Name, result.Platform, result.PackageCount, result.OutputDir)
	return nil
}
