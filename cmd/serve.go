package cmd

import (
	"fmt"
	"os"

	"uacast/internal/server"

	"github.com/spf13/cobra"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the forecast engine over HTTP",
	Long: "Expose the engine as a small JSON API:\n" +
		"  POST /v1/forecast  evaluate a scenario\n" +
		"  GET  /v1/status    uptime and evaluation count",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "127.0.0.1:8787", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Listening on http://%s\n", flagServeAddr)
	}
	return server.New().ListenAndServe(flagServeAddr)
}
