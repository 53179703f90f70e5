package cmd

import (
	"fmt"
	"net"
	"strconv"

	"github.com/alexiusacademia/goinertia/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the section engine over HTTP",
	Long: `Start an HTTP API over the section engine.

Endpoints:
  GET  /api/v1/health
  POST /api/v1/sections/compute   section definition (JSON) -> result (JSON)
  POST /api/v1/sections/report    section definition (JSON) -> PDF report
  POST /api/v1/sections/diagram   section definition (JSON) -> PNG diagram

Query parameters: angles=math|clockwise, check=true (compute only).

The server shuts down gracefully on SIGINT or SIGTERM.

Examples:
  goinertia serve
  goinertia serve --host 0.0.0.0 --port 9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (default from config, 127.0.0.1)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (default from config, 8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	host, port := cfg.Server.Host, cfg.Server.Port
	if serveHost != "" {
		host = serveHost
	}
	if servePort != 0 {
		port = servePort
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port %d", port)
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	fmt.Fprintf(cmd.OutOrStdout(), "  goinertia API listening on http://%s (Ctrl+C to stop)\n", addr)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		ReportTitle:     cfg.Report.Title,
		ReportAuthor:    cfg.Report.Author,
		DiagramWidth:    cfg.Diagram.Width,
		DiagramHeight:   cfg.Diagram.Height,
	})
	return api.Start(cmd.Context())
}
