package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fpp-cli/pkg/models"
)

// Variables to hold flag values
var (
	listFilter     string
	endpointName   string
	endpointParams string
	endpointData   string
	endpointMethod string
)

var endpointListCmd = &cobra.Command{
	Use:   "endpoint-list",
	Short: "List API endpoints the player exposes",
	Long:  `Fetches the player's endpoint catalog and prints one row per (path, method) pair.`,
	Example: `  fpp-cli endpoint-list --ip 192.168.1.50
  fpp-cli endpoint-list --ip 192.168.1.50 --filter playlist`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		records, err := api.ListEndpoints(listFilter)
		if err != nil {
			logger.Error("endpoint listing failed", "err", err)
			os.Exit(1)
		}

		printEndpoints(records)
	},
}

var endpointDetailCmd = &cobra.Command{
	Use:     "endpoint-detail",
	Short:   "Show the methods of one endpoint path",
	Example: `  fpp-cli endpoint-detail --ip 192.168.1.50 --endpoint-name /api/system/info`,
	Run: func(cmd *cobra.Command, args []string) {
		api := setupClient()

		records, err := api.GetEndpointDetail(endpointName)
		if err != nil {
			logger.Error("endpoint detail failed", "path", endpointName, "err", err)
			os.Exit(1)
		}
		if len(records) == 0 {
			logger.Error("no endpoint found", "path", endpointName)
			os.Exit(1)
		}

		printEndpoints(records)
	},
}

var endpointRunCmd = &cobra.Command{
	Use:   "endpoint-run",
	Short: "Invoke an endpoint on the player",
	Long: `Invokes an arbitrary endpoint from the catalog. Parameters are passed as
key=value pairs, the request body as a JSON document.`,
	Example: `  fpp-cli endpoint-run --ip 192.168.1.50 --endpoint-name /api/system/fppd/restart --endpoint-method POST
  fpp-cli endpoint-run --ip 192.168.1.50 --endpoint-name /api/playlists --endpoint-params "merge=true"`,
	Run: func(cmd *cobra.Command, args []string) {
		var body any
		if endpointData != "" {
			if err := json.Unmarshal([]byte(endpointData), &body); err != nil {
				logger.Error("invalid --endpoint-data", "err", err)
				os.Exit(1)
			}
		}

		api := setupClient()

		res, err := api.RunEndpoint(endpointName, parseParams(endpointParams), body, endpointMethod)
		if err != nil {
			logger.Error("endpoint run failed", "path", endpointName,
				"method", endpointMethod, "err", err)
			os.Exit(1)
		}

		printResult(res)
	},
}

func printEndpoints(records []models.Endpoint) {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			logger.Error("encoding JSON failed", "err", err)
			os.Exit(1)
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "PATH\tMETHOD\tDESCRIPTION")
	fmt.Fprintln(w, "----\t------\t-----------")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Path, r.Method, r.Description)
	}
	w.Flush()
}

func printResult(res *models.Result) {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			logger.Error("encoding JSON failed", "err", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("%d %s\n", res.StatusCode, res.Message)
	out, err := json.MarshalIndent(res.Data, "", "  ")
	if err != nil {
		logger.Error("encoding payload failed", "err", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// parseParams splits "key=value,key=value" into a query map, dropping empty
// pairs and surrounding whitespace.
func parseParams(s string) map[string]string {
	params := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		params[k] = v
	}
	return params
}

func init() {
	rootCmd.AddCommand(endpointListCmd)
	rootCmd.AddCommand(endpointDetailCmd)
	rootCmd.AddCommand(endpointRunCmd)

	endpointListCmd.Flags().StringVar(&listFilter, "filter", "", "Only list endpoints whose path contains this substring")

	endpointDetailCmd.Flags().StringVar(&endpointName, "endpoint-name", "", "Exact endpoint path, as shown by endpoint-list")
	_ = endpointDetailCmd.MarkFlagRequired("endpoint-name")

	endpointRunCmd.Flags().StringVar(&endpointName, "endpoint-name", "", "Endpoint path to invoke")
	endpointRunCmd.Flags().StringVar(&endpointParams, "endpoint-params", "", "Query parameters as comma separated key=value pairs")
	endpointRunCmd.Flags().StringVar(&endpointData, "endpoint-data", "", "Request body as a JSON document")
	endpointRunCmd.Flags().StringVar(&endpointMethod, "endpoint-method", "GET", "HTTP method: GET, POST or DELETE")
	_ = endpointRunCmd.MarkFlagRequired("endpoint-name")
}
