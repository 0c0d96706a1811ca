package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of statespace",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "statespace version %s\n", strings.TrimSpace(statespace.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
