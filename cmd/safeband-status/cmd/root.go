package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/safeband/internal/config"
	"github.com/oshokin/safeband/internal/service/status"
	"github.com/oshokin/safeband/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// pollInterval between session state checks.
	pollInterval time.Duration
	// follow switches to the live session stream.
	follow bool

	// rootCmd represents the base command for the status display client.
	rootCmd = &cobra.Command{
		Use:   "safeband-status [server-address]",
		Short: "Display the safety-check session state and heart rate.",
		Long: `Connects to the safeband server and displays the session phase, the
escalation countdown and the latest heart-rate reading.

Server address can be provided as argument to override config (e.g., 127.0.0.1:8080).
By default the state is polled on an interval; with --follow the client
subscribes to the live stream and prints every state change.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var serverAddress string
			if len(args) > 0 {
				serverAddress = args[0]
			}

			options := &status.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				PollInterval:  pollInterval,
				Follow:        follow,
			}

			return status.Run(ctx, options)
		},
	}
)

// Execute runs the safeband-status CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().DurationVarP(&pollInterval, "interval", "i", status.DefaultPollInterval,
		"interval between session state checks")
	rootCmd.Flags().BoolVarP(&follow, "follow", "f", false, "follow the live session stream")
}
