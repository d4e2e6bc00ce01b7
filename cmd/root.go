package cmd

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fpp-cli/internal/client"
	"fpp-cli/internal/config"
	"fpp-cli/internal/logging"
)

// Persistent flag values
var (
	cfgFile    string
	playerIP   string
	apiKey     string
	timeout    time.Duration
	logDir     string
	debug      bool
	jsonOutput bool
	insecure   bool
)

// logger is built once per invocation by the root PersistentPreRun and
// handed to every component; there is no process-global logging state.
var logger *slog.Logger

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fpp-cli",
	Short: "Send commands to a Falcon Player (FPP)",
	Long: `Query and control a Falcon Player over its local REST API:
list the endpoints a player exposes, inspect one, or invoke it directly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(logDir, debug)
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.InitConfig(cfgFile) })

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fpp-cli.yaml)")
	rootCmd.PersistentFlags().StringVar(&playerIP, "ip", "", "IP address of the player")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key sent as x-api-key (optional)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 3*time.Second, "Timeout per request")
	rootCmd.PersistentFlags().StringVar(&logDir, "log", ".", "Directory for the rolling log file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Verbose logging, including HTTP request/response dumps")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification (self-signed devices)")
}

// clientConfig resolves the target player from flags, falling back to the
// last saved device. Exits on a malformed address.
func clientConfig() client.ClientConfig {
	ip := playerIP
	if ip == "" {
		ip = viper.GetString("ip")
	}
	key := apiKey
	if key == "" {
		key = viper.GetString("api_key")
	}

	if !validIPv4(ip) {
		logger.Error("invalid IP address", "ip", ip)
		os.Exit(1)
	}

	return client.ClientConfig{
		Host:     ip,
		APIKey:   key,
		Timeout:  timeout,
		Insecure: insecure,
		Debug:    debug,
	}
}

// setupClient connects to the player and exits on failure; commands never
// see a half-connected handle.
func setupClient() *client.FPPClient {
	cfg := clientConfig()
	api, err := client.Connect(cfg, logger)
	if err != nil {
		logger.Error("connect failed", "ip", cfg.Host, "err", err)
		os.Exit(1)
	}
	return api
}

// validIPv4 accepts dotted-quad IPv4 only, the form fppd binds to.
func validIPv4(s string) bool {
	if strings.Contains(s, ":") {
		return false
	}
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil && strings.Count(s, ".") == 3
}
