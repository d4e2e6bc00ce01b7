package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fpp-cli/internal/config"
)

var saveDevice bool

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the identity of a player",
	Long: `Queries system/info and prints the player's identity snapshot.
With --save the player becomes the default device for later commands.`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()
		info := api.Info

		if saveDevice {
			if err := config.SaveDevice(api.Config.Host, api.Config.APIKey); err != nil {
				logger.Error("saving device failed", "err", err)
				os.Exit(1)
			}
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(info); err != nil {
				logger.Error("encoding JSON failed", "err", err)
				os.Exit(1)
			}
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "HostName\t%s\n", info.HostName)
		fmt.Fprintf(w, "Description\t%s\n", info.HostDescription)
		fmt.Fprintf(w, "Platform\t%s\n", info.Platform)
		fmt.Fprintf(w, "Variant\t%s\n", info.Variant)
		fmt.Fprintf(w, "Version\t%s\n", info.Version)
		fmt.Fprintf(w, "Branch\t%s\n", info.Branch)
		fmt.Fprintf(w, "Mode\t%s\n", info.Mode)
		if info.OSVersion != "" {
			fmt.Fprintf(w, "OS\t%s\n", info.OSVersion)
		}
		if len(info.IPs) > 0 {
			fmt.Fprintf(w, "IPs\t%s\n", strings.Join(info.IPs, ", "))
		}
		if u := info.Utilization; u != nil {
			fmt.Fprintf(w, "CPU\t%.1f%%\n", u.CPU)
			fmt.Fprintf(w, "Memory\t%.1f%%\n", u.Memory)
			fmt.Fprintf(w, "Uptime\t%s\n", u.Uptime)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVar(&saveDevice, "save", false, "Remember this player as the default device")
}
