package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edt-labs/edt/pkg/encoding/jsonutil"
)

func newFormatCommand() *cobra.Command {
	var format string
	var sortKeys, inPlace bool

	cmd := &cobra.Command{
		Use:   "format <file>...",
		Short: "Reformat data files for readability",
		Long:  "Parse each file and re-emit it in canonical form. The format is detected from the file extension unless --format is given.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				fileFormat := format
				if fileFormat == "" {
					fileFormat = formatFromExtension(path)
				}

				data, err := os.ReadFile(filepath.Clean(path))
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}

				formatted, err := formatDocument(string(data), fileFormat, sortKeys)
				if err != nil {
					return fmt.Errorf("formatting %s: %w", path, err)
				}

				if inPlace {
					if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
						return fmt.Errorf("writing %s: %w", path, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Formatted %s\n", path)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatted)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "File format: json, yaml, toml or hcl (detected from extension when empty)")
	cmd.Flags().BoolVar(&sortKeys, "sort-keys", false, "Sort map keys alphabetically")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "Write the result back to the input file")

	return cmd
}

func formatDocument(input, format string, sortKeys bool) (string, error) {
	decoded, err := decodeAs(format, input)
	if err != nil {
		return "", err
	}
	if format == "json" {
		return jsonutil.Encode(decoded, jsonutil.WithSortKeys(sortKeys))
	}
	return encodeAs(format, decoded)
}

// formatFromExtension maps a file extension to its format name.
func formatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".hcl", ".tf":
		return "hcl"
	default:
		return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
}
