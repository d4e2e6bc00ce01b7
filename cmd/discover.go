package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/enbility/zeroconf/v3"
	"github.com/spf13/cobra"
)

// Variables to hold flag values
var (
	discoverWait time.Duration
	discoverType string
)

// foundPlayer is one mDNS announcement seen during a discovery scan.
type foundPlayer struct {
	Name string
	Host string
	Addr string
	Port int
}

// browsePlayers browses mDNS until ctx expires and returns each announced
// service once. The library closes both channels when the context ends, so
// removals must be drained even though a one-shot scan ignores them.
func browsePlayers(ctx context.Context, serviceType string) []foundPlayer {
	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	go func() {
		if err := zeroconf.Browse(ctx, serviceType, "local.", entries, removed); err != nil {
			logger.Error("mDNS browse failed", "err", err)
		}
	}()

	var players []foundPlayer
	seen := make(map[string]bool)
	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return players
			}
			if entry == nil || seen[entry.Instance] {
				continue
			}
			seen[entry.Instance] = true

			addr := ""
			if len(entry.AddrIPv4) > 0 {
				addr = entry.AddrIPv4[0].String()
			}
			players = append(players, foundPlayer{
				Name: entry.Instance,
				Host: entry.HostName,
				Addr: addr,
				Port: entry.Port,
			})
		case _, ok := <-removed:
			if !ok {
				removed = nil
			}
		case <-ctx.Done():
			return players
		}
	}
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find Falcon Players on the local network",
	Long: `Browses mDNS for players announcing themselves and prints each one that
is found. The advertised service type differs between FPP releases; override
it with --type if the default finds nothing.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), discoverWait)
		defer cancel()

		players := browsePlayers(ctx, discoverType)
		if len(players) == 0 {
			fmt.Println("No players found.")
			os.Exit(1)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tHOST\tIP\tPORT")
		fmt.Fprintln(w, "----\t----\t--\t----")
		for _, p := range players {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", p.Name, p.Host, p.Addr, p.Port)
		}
		w.Flush()

		logger.Info("discovery finished", "players", len(players))
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)

	discoverCmd.Flags().DurationVar(&discoverWait, "wait", 5*time.Second, "How long to browse before giving up")
	discoverCmd.Flags().StringVar(&discoverType, "type", "_fppd._udp", "mDNS service type players announce")
}
