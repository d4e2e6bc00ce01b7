package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X fpp-cli/cmd.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fpp-cli version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fpp-cli %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
