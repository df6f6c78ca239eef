// In file: cmd/toolhub/key.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dileep-u-k/toolhub/internal/session"
)

func newKeyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the custom API key used instead of GEMINI_API_KEY",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <api-key>",
		Short: "Save a custom API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.Set(cmd.Context(), session.LocalSessionID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Custom API key saved to %s\n", a.store.Path())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget the custom API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.Clear(cmd.Context(), session.LocalSessionID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Custom API key cleared.")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the saved custom API key, masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.store.Get(cmd.Context(), session.LocalSessionID)
			if err != nil {
				return err
			}
			if key == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No custom API key set.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), session.Mask(key))
			return nil
		},
	})

	return cmd
}
