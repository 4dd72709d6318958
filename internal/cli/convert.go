package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/edt-labs/edt/pkg/encoding/hclutil"
	"github.com/edt-labs/edt/pkg/encoding/jsonutil"
	"github.com/edt-labs/edt/pkg/encoding/tomlutil"
	"github.com/edt-labs/edt/pkg/encoding/yamlutil"
	"github.com/edt-labs/edt/pkg/export"
)

func newConvertCommand() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert data between serialization formats",
		Long:  "Decode the input as one of json, yaml, toml or hcl and re-encode it as another. Reads from stdin when no file is given or the file is '-'.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			out, err := convertData(input, from, to)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "json", "Input format: json, yaml, toml or hcl")
	cmd.Flags().StringVar(&to, "to", "yaml", "Output format: json, yaml, toml or hcl")

	return cmd
}

func convertData(input, from, to string) (string, error) {
	decoded, err := decodeAs(from, input)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", from, err)
	}

	out, err := encodeAs(to, export.MakeExportSafe(decoded))
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", to, err)
	}
	return out, nil
}

func decodeAs(format, data string) (any, error) {
	switch format {
	case "json":
		return jsonutil.Decode(data)
	case "yaml":
		return yamlutil.Decode(data)
	case "toml":
		return tomlutil.Decode(data)
	case "hcl":
		return hclutil.Decode(data)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func encodeAs(format string, v any) (string, error) {
	switch format {
	case "json":
		return jsonutil.Encode(v)
	case "yaml":
		return yamlutil.Encode(v)
	case "toml":
		m, ok := v.(map[string]any)
		if !ok {
			return "", fmt.Errorf("toml output requires a top-level table, got %T", v)
		}
		return tomlutil.Encode(m)
	case "hcl":
		m, ok := v.(map[string]any)
		if !ok {
			return "", fmt.Errorf("hcl output requires a top-level body, got %T", v)
		}
		return hclutil.Encode(m)
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

// readInput reads the positional file argument, or stdin when the
// argument is absent or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(filepath.Clean(args[0]))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}
