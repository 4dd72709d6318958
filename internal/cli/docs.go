package cli

import (
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/edt-labs/edt/internal/docs"
	"github.com/edt-labs/edt/pkg/encoding/jsonutil"
)

func newDocsCommand(getConfig func() *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Browse the documentation index",
	}

	cmd.AddCommand(newDocsIndexCommand(getConfig))
	cmd.AddCommand(newDocsShowCommand(getConfig))
	cmd.AddCommand(newDocsSearchCommand(getConfig))

	return cmd
}

func docsDirFor(getConfig func() *Config, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return getConfig().DocsDir
}

func newDocsIndexCommand(getConfig func() *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "index [dir]",
		Short: "Index a source tree and list every documented function",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := docsDirFor(getConfig, args)
			indexer, err := docs.IndexDirectory(dir)
			if err != nil {
				return err
			}

			all := indexer.Registry().All()
			slog.Debug("indexed source tree", "dir", dir, "functions", len(all))

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Function", "Package", "Category", "Signature"})
			for _, fn := range all {
				t.AppendRow(table.Row{fn.Name, fn.Package, fn.Category, fn.Signature})
			}
			t.Render()
			return nil
		},
	}
}

func newDocsShowCommand(getConfig func() *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show <function>",
		Short: "Print full documentation for one function as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indexer, err := docs.IndexDirectory(getConfig().DocsDir)
			if err != nil {
				return err
			}

			doc, ok := indexer.Get(args[0])
			if !ok {
				return fmt.Errorf("function %q not found", args[0])
			}

			out, err := jsonutil.Encode(doc)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newDocsSearchCommand(getConfig func() *Config) *cobra.Command {
	var category string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search documented functions by name or description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			if limit == 0 {
				limit = cfg.SearchLimit
			}

			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			indexer, err := docs.IndexDirectory(cfg.DocsDir)
			if err != nil {
				return err
			}

			results := docs.NewSearcher(indexer).Search(query, category, limit)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Score", "Function", "Category", "Description"})
			for _, r := range results {
				t.AppendRow(table.Row{fmt.Sprintf("%.2f", r.Score), r.FunctionID, r.Category, r.Description})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Restrict results to one category")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results")

	return cmd
}
