// In file: cmd/toolhub/version.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dileep-u-k/toolhub/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of toolhub",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info("toolhub"))
		},
	}
}
