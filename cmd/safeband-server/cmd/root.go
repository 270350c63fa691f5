package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/safeband/internal/config"
	"github.com/oshokin/safeband/internal/service/server"
	"github.com/oshokin/safeband/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// stateFile path where the session is persisted.
	stateFile string

	// rootCmd represents the base command for running the safeband daemon.
	rootCmd = &cobra.Command{
		Use:   "safeband-server [listen-address]",
		Short: "Run the safeband daemon: fall detection, escalation and the session gRPC API.",
		Long: `Starts the safeband daemon that watches motion samples for falls, runs the
escalation countdown and serves the session state over gRPC.

The server listens on the specified address or uses settings from configuration file.
Only the port from server_addr config is used for listening (e.g., :8080).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:8080).
The session is persisted to JSON file so a restart keeps an ongoing incident.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				StateFile:     stateFile,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the safeband-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		StringVarP(&stateFile, "state-file", "s", config.DefaultStateFilename, "path to persist the session")
}
