package main

import (
	"errors"
	"log/slog"

	"github.com/gogpu/bmesh"
	"github.com/spf13/cobra"
)

// errCorrupt is returned by the check command when the mesh fails
// validation; it maps to exitCorrupt.
var errCorrupt = errors.New("mesh failed validation")

func exitCode(err error) int {
	if errors.Is(err, errCorrupt) {
		return exitCorrupt
	}
	return exitError
}

// options holds the global flag values.
type options struct {
	verbose bool
	lang    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "bmeshinfo",
		Short: "Inspect non-manifold meshes described in YAML",
		Long: `bmeshinfo builds a mesh from a YAML description, applies the removal
steps it lists and reports entity counts, edge classification and the
attribute schema, or validates every structural invariant.`,
		Version:       bmesh.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				bmesh.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log schema changes and attribute corrections to stderr")
	cmd.PersistentFlags().StringVar(&opts.lang, "lang", "en", "BCP 47 language tag used to format numbers in text reports")

	cmd.AddCommand(newStatsCmd(opts))
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
