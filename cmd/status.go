package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the player's playback state",
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		status, err := api.GetStatus()
		if err != nil {
			logger.Error("status query failed", "err", err)
			os.Exit(1)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(status); err != nil {
				logger.Error("encoding JSON failed", "err", err)
				os.Exit(1)
			}
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Daemon\t%s\n", status.Fppd)
		fmt.Fprintf(w, "Status\t%s\n", status.StatusName)
		fmt.Fprintf(w, "Mode\t%s\n", status.ModeName)
		fmt.Fprintf(w, "Volume\t%d\n", status.Volume)
		if status.CurrentPlaylist.Playlist != "" {
			fmt.Fprintf(w, "Playlist\t%s (%s/%s)\n",
				status.CurrentPlaylist.Playlist,
				status.CurrentPlaylist.Index,
				status.CurrentPlaylist.Count)
		}
		if status.CurrentSequence != "" {
			fmt.Fprintf(w, "Sequence\t%s\n", status.CurrentSequence)
		}
		if status.SecondsPlayed != "" {
			fmt.Fprintf(w, "Played\t%ss\n", status.SecondsPlayed)
		}
		if status.SecondsRemaining != "" {
			fmt.Fprintf(w, "Remaining\t%ss\n", status.SecondsRemaining)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
