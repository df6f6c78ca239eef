// In file: cmd/toolhub/tools.go
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dileep-u-k/toolhub/internal/tools"
)

func newToolsCmd(a *app) *cobra.Command {
	var category, query string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List tools, optionally filtered by category and search text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := tools.ParseCategory(category)
			if err != nil {
				return err
			}
			matched := tools.Filter(a.catalog.Tools(), cat, query)
			if len(matched) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tools found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORY\tNAME\t")
			for _, d := range matched {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.Category, d.Name, badge(d))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category label or key (developer, designer, marketing, writing, seo, social)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "search text matched against name and description")
	return cmd
}

func badge(d tools.Descriptor) string {
	switch {
	case d.IsNew:
		return "new"
	case d.Featured:
		return "featured"
	default:
		return ""
	}
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List tool categories",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range a.catalog.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
		},
	}
}
