package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/litezip/internal/checksum"
	"github.com/vvka-141/litezip/internal/files/scanner"
	"github.com/vvka-141/litezip/pkg/litezip"
)

var parseCmd = &cobra.Command{
	Use:   "parse <litezip_dir>",
	Short: "List the collection and modules of a litezip tree",
	Long: `Discover a litezip tree and list its contents.

Shows the collection followed by every module in discovery order, with
the resource files that accompany each content file and the checksums of
the content file (raw and whitespace/comment-insensitive).

Examples:
  # List a tree
  litezip parse ./col11405

  # List as JSON
  litezip parse ./col11405 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var parseJSON bool

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output tree contents as JSON")
}

type contentEntry struct {
	Kind               string   `json:"kind"`
	ID                 string   `json:"id"`
	File               string   `json:"file"`
	Resources          []string `json:"resources"`
	Checksum           string   `json:"checksum"`
	NormalizedChecksum string   `json:"normalized_checksum"`
}

type parseReport struct {
	Root     string         `json:"root"`
	Contents []contentEntry `json:"contents"`
}

func runParse(cmd *cobra.Command, args []string) error {
	root := args[0]

	tree, err := scanner.NewScanner().WithLogger(newLogger(cmd)).ParseLitezip(root)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", root, err)
	}

	calc := checksum.New()
	report := parseReport{Root: tree.Root}
	for _, c := range tree.Contents() {
		data, err := os.ReadFile(c.ContentFile())
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", c.ContentFile(), err)
		}
		report.Contents = append(report.Contents, contentEntry{
			Kind:               c.Kind().String(),
			ID:                 c.Identifier(),
			File:               c.ContentFile(),
			Resources:          c.ResourceFiles(),
			Checksum:           calc.CalculateRaw(data),
			NormalizedChecksum: calc.CalculateNormalized(data),
		})
	}

	if parseJSON {
		return writeJSON(cmd.OutOrStdout(), report)
	}

	out := cmd.OutOrStdout()
	printer := newPrinter(out)
	for i, e := range report.Contents {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, printer.Title(fmt.Sprintf("%s %s", e.Kind, e.ID)))
		fmt.Fprintln(out, "  "+printer.Field("file", e.File))
		fmt.Fprintln(out, "  "+printer.Field("checksum", e.Checksum))
		fmt.Fprintln(out, "  "+printer.Field("normalized", e.NormalizedChecksum))
		if len(e.Resources) == 0 {
			fmt.Fprintln(out, "  "+printer.Field("resources", printer.Muted("none")))
			continue
		}
		fmt.Fprintln(out, "  "+printer.Field("resources", ""))
		for _, r := range e.Resources {
			fmt.Fprintf(out, "    %s\n", r)
		}
	}
	return nil
}

// parseContentDir parses dir as a collection when it holds collection.xml,
// otherwise as a module.
func parseContentDir(cmd *cobra.Command, dir string) (litezip.Content, error) {
	s := scanner.NewScanner().WithLogger(newLogger(cmd))
	if info, err := os.Stat(filepath.Join(dir, litezip.CollectionFileName)); err == nil && !info.IsDir() {
		return s.ParseCollection(dir)
	}
	return s.ParseModule(dir)
}
