package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/litezip/internal/files/scanner"
	"github.com/vvka-141/litezip/internal/validate"
	"github.com/vvka-141/litezip/pkg/litezip"
)

// errValidationFailed maps to ExitGeneralError once diagnostics are printed.
var errValidationFailed = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate <litezip_dir>",
	Short: "Validate identifiers and content of a litezip tree",
	Long: `Validate a litezip tree.

This command checks:
1. The collection and module identifiers (m##### / col#####)
2. collection.xml against the CollXML rules
3. Every index.cnxml against the CNXML rules

Each problem is reported as "path: message". Schema problems carry the
line and column of the offending element. The command exits with code 1
when any problem is found.

Examples:
  # Validate a tree
  litezip validate ./col11405

  # Validate with JSON output
  litezip validate ./col11405 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var validateJSON bool

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output validation results as JSON")
}

type validationReport struct {
	Root        string               `json:"root"`
	Valid       bool                 `json:"valid"`
	Total       int                  `json:"total"`
	Diagnostics []litezip.Diagnostic `json:"diagnostics"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	root := args[0]
	logger := newLogger(cmd)

	tree, err := scanner.NewScanner().WithLogger(logger).ParseLitezip(root)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", root, err)
	}

	diagnostics, err := validate.ValidateLitezip(tree)
	if err != nil {
		return fmt.Errorf("validation aborted: %w", err)
	}
	if diagnostics == nil {
		diagnostics = []litezip.Diagnostic{}
	}
	logger.Verbose("Validated %d content file(s)", len(tree.Modules)+1)

	if validateJSON {
		report := validationReport{
			Root:        tree.Root,
			Valid:       len(diagnostics) == 0,
			Total:       len(diagnostics),
			Diagnostics: diagnostics,
		}
		if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	} else {
		out := cmd.ErrOrStderr()
		printer := newPrinter(out)
		for _, d := range diagnostics {
			fmt.Fprintln(out, printer.Diagnostic(d))
		}
		fmt.Fprintln(out, printer.Summary(len(diagnostics)))
	}

	if len(diagnostics) > 0 {
		return errValidationFailed
	}
	return nil
}
