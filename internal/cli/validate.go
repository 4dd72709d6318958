package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that input parses as the given format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if _, err := decodeAs(format, input); err != nil {
				return fmt.Errorf("invalid %s: %w", format, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "valid %s\n", format)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Format to validate: json, yaml, toml or hcl")

	return cmd
}
