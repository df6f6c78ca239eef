// In file: cmd/toolhub/run.go
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dileep-u-k/toolhub/internal/session"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <tool-id> [input...]",
		Short: "Run a tool on the given input",
		Long: `Run a tool on the given input. The input is taken from the remaining
arguments, or read from stdin when there are none.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, ok := a.catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown tool %q (see \"toolhub tools\")", args[0])
			}

			input := strings.Join(args[1:], " ")
			if input == "" {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				input = string(raw)
			}

			override, err := a.store.Get(cmd.Context(), session.LocalSessionID)
			if err != nil {
				return err
			}

			result, err := a.newGateway().Invoke(cmd.Context(), tool.InstructionTemplate, input, override)
			if err != nil {
				return err
			}

			if tool.OutputLabel != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s:\n", tool.OutputLabel)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
