package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfill/pkg/annotation"
	"github.com/goliatone/go-formfill/pkg/pipeline"
)

// newLintCmd creates the lint command. It loads an annotation document and
// reports every configuration defect, including validation rule types no
// registered validator handles, without rendering anything.
func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <annotations>",
		Short: "Check an annotation document for configuration defects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args[0])
		},
	}
}

func runLint(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	logger.Debug("loading annotation document", "path", path)
	doc, err := annotation.NewLoader().Load(ctx, annotation.SourceFromFile(path))
	if err != nil {
		return reportIssues(cmd, err)
	}

	if issues := pipeline.New().ValidateDocument(doc); len(issues) > 0 {
		return reportIssues(cmd, &annotation.ValidationIssuesError{Issues: issues})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d field(s), no defects\n", path, len(doc.Fields))
	return nil
}
