package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// RenderResult holds the rendered statement for one document.
type RenderResult struct {
	File string `json:"file"`
	SQL  string `json:"sql"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <document...>",
		Short: "Render query documents to SQL",
		Long: `Render one or more YAML query documents to SQL statement text.

Each document describes a single query (table, projection, equality filters,
order keys). Rendering is deterministic: the same document always produces
the same statement.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runRender(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	results := make([]RenderResult, 0, len(paths))
	for _, path := range paths {
		doc, err := LoadDocument(path)
		if err != nil {
			return outputCommandError(formatter, err)
		}

		q, err := doc.Query()
		if err != nil {
			return outputCommandError(formatter, err)
		}

		sql := q.Build()
		formatter.VerboseLog("rendered %s", path)
		results = append(results, RenderResult{File: path, SQL: sql})
	}

	if formatter.Format == "json" {
		return formatter.Success(results)
	}
	for _, r := range results {
		fmt.Fprintln(formatter.Writer, r.SQL)
	}
	return nil
}

// outputCommandError reports a load/build error in the configured format and
// returns an ExitError carrying the command-error exit code.
func outputCommandError(formatter *OutputFormatter, err error) error {
	code := ErrCodeGeneric
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		code = loadErr.Code
	}
	if outErr := formatter.Error(code, err.Error(), nil); outErr != nil {
		return outErr
	}
	return NewExitError(ExitCommandError, err.Error())
}
