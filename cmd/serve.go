package cmd

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis API over HTTP",
	Long: `Start an HTTP server exposing beam analysis as a JSON API.

Routes:
  GET  /api/health       server status
  POST /api/analyze      beam definition in, full result out
  POST /api/diagram      stacked diagrams (?format=png|svg|pdf)
  POST /api/report/pdf   PDF summary report
  POST /api/report/xlsx  XLSX workbook
  GET  /api/convert      ?quantity=&value=&from=&to=

Settings come from the [server] section of the config file and may be
overridden by GOBEAM_ADDR, GOBEAM_RATE and GOBEAM_BURST, read from the
environment or a .env file.

Examples:
  gobeam serve
  gobeam serve --addr :9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Reading .env file")
	}

	if v := os.Getenv("GOBEAM_ADDR"); v != "" {
		cfg.ServerAddr = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("GOBEAM_RATE"), 64); err == nil && v > 0 {
		cfg.ServerRate = v
	}
	if v, err := strconv.Atoi(os.Getenv("GOBEAM_BURST")); err == nil && v > 0 {
		cfg.ServerBurst = v
	}
	if serveAddr != "" {
		cfg.ServerAddr = serveAddr
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return server.New(cfg).ListenAndServe(ctx)
}
