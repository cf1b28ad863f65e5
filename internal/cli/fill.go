package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfill/pkg/annotation"
	"github.com/goliatone/go-formfill/pkg/datatree"
	"github.com/goliatone/go-formfill/pkg/pipeline"
)

// fillOpts holds the command-line flags for the fill command.
type fillOpts struct {
	output string // output file path (stdout if empty)
	strict bool   // abort at the first field error
	force  bool   // overwrite the output file without asking
	pretty bool   // indent the JSON output
}

// newFillCmd creates the fill command. It loads the annotation document and
// the data tree, runs one render pass, and writes the result as JSON.
func newFillCmd() *cobra.Command {
	var opts fillOpts

	cmd := &cobra.Command{
		Use:   "fill <annotations> <data>",
		Short: "Resolve an annotation document against a data tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill(cmd, args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "abort at the first field error")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite the output file without asking")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")

	return cmd
}

func runFill(cmd *cobra.Command, annotationPath, dataPath string, opts *fillOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	logger.Debug("loading annotation document", "path", annotationPath)
	doc, err := annotation.NewLoader().Load(ctx, annotation.SourceFromFile(annotationPath))
	if err != nil {
		return reportIssues(cmd, err)
	}

	logger.Debug("loading data tree", "path", dataPath)
	data, err := loadDataTree(dataPath)
	if err != nil {
		return err
	}

	var pipelineOpts []pipeline.Option
	if opts.strict {
		pipelineOpts = append(pipelineOpts, pipeline.WithStrict())
	}

	result, err := pipeline.New(pipelineOpts...).Render(ctx, doc, data)
	if err != nil {
		return reportIssues(cmd, err)
	}
	logger.Info("render pass complete",
		"fields", len(doc.Fields),
		"instructions", len(result.Instructions),
		"errors", len(result.Errors),
	)

	encoded, err := encodeResult(result, opts.pretty)
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}
	if err := confirmOverwrite(opts.output, opts.force); err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, append(encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("instructions written", "path", opts.output)
	return nil
}

// loadDataTree reads the JSON data file into an immutable data tree.
func loadDataTree(path string) (datatree.Value, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return datatree.Null(), fmt.Errorf("read data tree: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return datatree.Null(), fmt.Errorf("parse data tree %s: %w", path, err)
	}
	return datatree.FromGo(decoded), nil
}

func encodeResult(result pipeline.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// confirmOverwrite asks before clobbering an existing output file unless
// --force was given.
func confirmOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	overwrite := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s already exists. Overwrite?", path),
	}
	if err := survey.AskOne(prompt, &overwrite); err != nil {
		return err
	}
	if !overwrite {
		return errors.New("aborted, output file exists")
	}
	return nil
}

// reportIssues prints configuration defects one per line before returning the
// error, so a broken document reads as a lint report rather than a stack of
// wrapped messages.
func reportIssues(cmd *cobra.Command, err error) error {
	var issuesErr *annotation.ValidationIssuesError
	if !errors.As(err, &issuesErr) {
		return err
	}
	for _, issue := range issuesErr.Issues {
		fmt.Fprintln(cmd.ErrOrStderr(), issueLine(issue))
	}
	return fmt.Errorf("annotation document has %d configuration defect(s)", len(issuesErr.Issues))
}

func issueLine(issue annotation.Issue) string {
	switch {
	case issue.FieldID != "" && issue.Path != "":
		return fmt.Sprintf("  %s (%s): %s", issue.FieldID, issue.Path, issue.Message)
	case issue.FieldID != "":
		return fmt.Sprintf("  %s: %s", issue.FieldID, issue.Message)
	case issue.Path != "":
		return fmt.Sprintf("  %s: %s", issue.Path, issue.Message)
	default:
		return "  " + issue.Message
	}
}
