// Package cli implements the formfill command-line interface.
//
// Two commands are exposed: fill runs an annotation document against a data
// tree and emits the resolved render instructions as JSON, and lint checks an
// annotation document for configuration defects without rendering anything.
// Both accept --verbose (-v) for debug-level logging; loggers travel through
// context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the formfill CLI against os.Args. It is the main entry point
// for the command binary.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "formfill-cli",
		Short:        "formfill fills tax forms from declarative annotations",
		Long:         `formfill-cli resolves an annotation document against a JSON data tree and emits positioned render instructions, reporting formatting, validation, and overflow errors per field.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newFillCmd())
	root.AddCommand(newLintCmd())

	return root.ExecuteContext(ctx)
}
