package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/kardianos/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"fpp-cli/internal/client"
)

// Variables to hold flag values
var (
	expPort       string
	serviceAction string // "install", "uninstall", "start", "stop"
)

// --- SERVICE WRAPPER ---

// program implements the kardianos/service interface
type program struct {
	exit   chan struct{}
	server *http.Server
	cfg    client.ClientConfig
}

func (p *program) Start(s service.Service) error {
	// Start should not block. Do the actual work async.
	p.exit = make(chan struct{})
	go p.run()
	return nil
}

func (p *program) run() {
	registry := prometheus.NewRegistry()
	collector := &FPPCollector{Config: p.cfg}
	registry.MustRegister(collector)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	addr := fmt.Sprintf(":%s", expPort)
	p.server = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	log.Printf("FPP exporter for %s listening on %s", p.cfg.Host, addr)

	if err := p.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("HTTP server error: %v", err)
	}
}

func (p *program) Stop(s service.Service) error {
	// Stop should not block. Signal the app to stop.
	log.Println("Stopping exporter...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if p.server != nil {
		if err := p.server.Shutdown(ctx); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}
	close(p.exit)
	return nil
}

// --- COLLECTOR ---

// FPPCollector scrapes one player per Prometheus collect. The mutex keeps
// at most one outstanding request against the player at a time.
type FPPCollector struct {
	Config client.ClientConfig
	Mutex  sync.Mutex
}

var (
	upDesc = prometheus.NewDesc(
		"fpp_up", "Was the last scrape successful.", nil, nil,
	)
	scrapeDurationDesc = prometheus.NewDesc(
		"fpp_scrape_duration_seconds", "Time taken to scrape the player.", nil, nil,
	)
	infoDesc = prometheus.NewDesc(
		"fpp_info", "Player identity, always 1.", []string{"hostname", "version", "platform", "mode"}, nil,
	)
	cpuDesc = prometheus.NewDesc(
		"fpp_cpu_usage_percent", "CPU utilization reported by the player.", nil, nil,
	)
	memoryDesc = prometheus.NewDesc(
		"fpp_memory_usage_percent", "Memory utilization reported by the player.", nil, nil,
	)
	diskFreeDesc = prometheus.NewDesc(
		"fpp_disk_free_bytes", "Free disk space per volume.", []string{"volume"}, nil,
	)
	statusDesc = prometheus.NewDesc(
		"fpp_player_status", "Player status code, labeled with its name.", []string{"status_name"}, nil,
	)
	volumeDesc = prometheus.NewDesc(
		"fpp_volume", "Player output volume.", nil, nil,
	)
	secondsPlayedDesc = prometheus.NewDesc(
		"fpp_seconds_played", "Seconds played of the current item.", nil, nil,
	)
	uptimeDesc = prometheus.NewDesc(
		"fpp_uptime_seconds", "Player uptime.", nil, nil,
	)
)

func (c *FPPCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- upDesc
	ch <- scrapeDurationDesc
	ch <- infoDesc
	ch <- cpuDesc
	ch <- memoryDesc
	ch <- diskFreeDesc
	ch <- statusDesc
	ch <- volumeDesc
	ch <- secondsPlayedDesc
	ch <- uptimeDesc
}

func (c *FPPCollector) Collect(ch chan<- prometheus.Metric) {
	c.Mutex.Lock()
	defer c.Mutex.Unlock()
	start := time.Now()
	success := 1.0

	// A fresh client per scrape keeps the identity snapshot current.
	api := client.New(c.Config, logger)

	if info, err := api.GetSystemInfo(); err == nil {
		ch <- prometheus.MustNewConstMetric(infoDesc, prometheus.GaugeValue, 1,
			info.HostName, info.Version, info.Platform, info.Mode)
		if u := info.Utilization; u != nil {
			ch <- prometheus.MustNewConstMetric(cpuDesc, prometheus.GaugeValue, u.CPU)
			ch <- prometheus.MustNewConstMetric(memoryDesc, prometheus.GaugeValue, u.Memory)
			for vol, d := range u.Disk {
				ch <- prometheus.MustNewConstMetric(diskFreeDesc, prometheus.GaugeValue, float64(d.Free), vol)
			}
		}
	} else {
		success = 0.0
		log.Printf("Error scraping system info: %v", err)
	}

	if status, err := api.GetStatus(); err == nil {
		ch <- prometheus.MustNewConstMetric(statusDesc, prometheus.GaugeValue, float64(status.Status), status.StatusName)
		ch <- prometheus.MustNewConstMetric(volumeDesc, prometheus.GaugeValue, float64(status.Volume))
		ch <- prometheus.MustNewConstMetric(uptimeDesc, prometheus.GaugeValue, float64(status.UptimeSeconds))
		if played, err := strconv.ParseFloat(status.SecondsPlayed, 64); err == nil {
			ch <- prometheus.MustNewConstMetric(secondsPlayedDesc, prometheus.GaugeValue, played)
		}
	} else {
		success = 0.0
		log.Printf("Error scraping player status: %v", err)
	}

	ch <- prometheus.MustNewConstMetric(upDesc, prometheus.GaugeValue, success)
	ch <- prometheus.MustNewConstMetric(scrapeDurationDesc, prometheus.GaugeValue, time.Since(start).Seconds())
}

// --- COMMAND ---

var exporterCmd = &cobra.Command{
	Use:   "exporter",
	Short: "Start a Prometheus exporter for a player",
	Long: `Starts a long-running HTTP server that exposes player status and
utilization metrics. Can be installed as a system service.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := clientConfig()

		svcConfig := &service.Config{
			Name:        "fpp-exporter",
			DisplayName: "Falcon Player Prometheus Exporter",
			Description: "Exposes Falcon Player metrics to Prometheus",
			// Arguments passed to the binary when run as a service
			Arguments: []string{
				"exporter",
				"--ip", cfg.Host,
				"--port", expPort,
				"--timeout", timeout.String(),
			},
		}
		if cfg.APIKey != "" {
			svcConfig.Arguments = append(svcConfig.Arguments, "--api-key", cfg.APIKey)
		}

		prg := &program{cfg: cfg}

		s, err := service.New(prg, svcConfig)
		if err != nil {
			log.Fatal(err)
		}

		// Handle service control actions (install, start, stop, uninstall)
		if serviceAction != "" {
			if err := service.Control(s, serviceAction); err != nil {
				log.Fatalf("Failed to %s service: %v", serviceAction, err)
			}
			fmt.Printf("Service action '%s' completed successfully.\n", serviceAction)
			return
		}

		// Run blocking, either under the service manager or interactively.
		svcLogger, err := s.Logger(nil)
		if err != nil {
			log.Fatal(err)
		}
		if err = s.Run(); err != nil {
			_ = svcLogger.Error(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exporterCmd)

	exporterCmd.Flags().StringVar(&expPort, "port", "9135", "Port to listen on")
	exporterCmd.Flags().StringVar(&serviceAction, "service", "", "Service action: install, uninstall, start, stop")
}
