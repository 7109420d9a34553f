package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/litezip/internal/config"
	"github.com/vvka-141/litezip/internal/logging"
	"github.com/vvka-141/litezip/internal/tui"
	"github.com/vvka-141/litezip/pkg/litezip"
)

// envFile is loaded from the working directory before every command.
const envFile = ".env"

var rootCmd = &cobra.Command{
	Use:   "litezip",
	Short: "Parse, inspect and validate litezip content trees",
	Long: `litezip works on litezip content trees: a directory holding one
collection.xml plus module directories, each with an index.cnxml and
optional resource files.

It discovers the tree, extracts and updates the metadata embedded in each
content file, and validates the CNXML/CollXML content, reporting problems
as path: line:column -- error: message.

Configuration:
  litezip.yaml   optional, at the tree root (ignore: [glob...])
  .env           optional, in the working directory
  LITEZIP_VERBOSE=1 enables verbose logging, NO_COLOR disables styling

Exit Codes:
  0  - Success
  1  - General error (validation reported problems)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid litezip.yaml or environment
  14 - Content file not found
  15 - Content file is not well-formed XML
  16 - Metadata update names an immutable field`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
}

// env holds the settings read from the environment by loadEnv.
var env config.Env

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

func loadEnv(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadEnv(envFile)
	if err != nil {
		return err
	}
	env = loaded
	return nil
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose || env.Verbose
}

func newLogger(cmd *cobra.Command) litezip.Logger {
	return logging.NewConsoleLoggerWithWriter(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}

// newPrinter styles output only when it goes to a terminal.
func newPrinter(w io.Writer) *tui.Printer {
	return tui.NewPrinter(!env.NoColor && tui.ColorEnabled(w))
}
