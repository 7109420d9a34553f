package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/litezip/internal/metadata"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Metadata operations for content files",
	Long: `Metadata commands for reading and updating the metadata block
embedded in index.cnxml and collection.xml.

A content directory is a module directory (holding index.cnxml) or the
tree root (holding collection.xml).

Available commands:
  show    Print the metadata of a content file
  set     Update mutable metadata fields in place
  fields  List the mutable metadata fields

Examples:
  # Show module metadata
  litezip metadata show ./col11405/m42304

  # Show collection metadata as JSON
  litezip metadata show ./col11405 --json

  # Assign a new identifier and version
  litezip metadata set ./col11405/m42304 id=m99999 version=1.9`,
}

var metadataShowCmd = &cobra.Command{
	Use:   "show <content_dir>",
	Short: "Print the metadata of a content file",
	Args:  cobra.ExactArgs(1),
	RunE:  runMetadataShow,
}

var metadataSetCmd = &cobra.Command{
	Use:   "set <content_dir> <field=value>...",
	Short: "Update mutable metadata fields in place",
	Long: `Update mutable metadata fields of a content file in place.

Only the named elements are rewritten; every other byte of the file is
preserved. The file is replaced atomically. Fields that are not mutable
are rejected before the file is read (exit code 16).

Examples:
  litezip metadata set ./col11405/m42304 version=2.0
  litezip metadata set ./col11405 id=col99999`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMetadataSet,
}

var metadataFieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the mutable metadata fields",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range metadata.MutableFields() {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
	},
}

var showJSON bool

func init() {
	rootCmd.AddCommand(metadataCmd)
	metadataCmd.AddCommand(metadataShowCmd)
	metadataCmd.AddCommand(metadataSetCmd)
	metadataCmd.AddCommand(metadataFieldsCmd)

	metadataShowCmd.Flags().BoolVar(&showJSON, "json", false, "Output metadata as JSON")
}

func runMetadataShow(cmd *cobra.Command, args []string) error {
	content, err := parseContentDir(cmd, args[0])
	if err != nil {
		return err
	}

	md, err := metadata.ExtractContent(content)
	if err != nil {
		return err
	}

	if showJSON {
		return writeJSON(cmd.OutOrStdout(), md)
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(md); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}

func runMetadataSet(cmd *cobra.Command, args []string) error {
	fields, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}

	content, err := parseContentDir(cmd, args[0])
	if err != nil {
		return err
	}

	if err := metadata.Update(content, fields); err != nil {
		return err
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.ErrOrStderr()
	printer := newPrinter(out)
	fmt.Fprintln(out, printer.Success(fmt.Sprintf("Updated %s in %s", strings.Join(names, ", "), content.ContentFile())))
	return nil
}

// parseAssignments turns field=value arguments into an update map.
// A later assignment of the same field wins.
func parseAssignments(args []string) (map[string]string, error) {
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid argument %q: expected field=value", arg)
		}
		fields[name] = value
	}
	return fields, nil
}
