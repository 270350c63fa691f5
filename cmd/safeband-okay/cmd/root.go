package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/safeband/internal/config"
	"github.com/oshokin/safeband/internal/service/okay"
	"github.com/oshokin/safeband/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// rearm re-arms monitoring after confirming.
	rearm bool

	// rootCmd represents the base command for the "I'm okay" button.
	rootCmd = &cobra.Command{
		Use:   "safeband-okay [server-address]",
		Short: "Confirm the wearer is okay and stop an ongoing escalation.",
		Long: `Connects to the safeband server and confirms the wearer is safe, which stops
the alarm and the escalation countdown.

Server address can be provided as argument to override config (e.g., 127.0.0.1:8080).
With --rearm the confirmation immediately starts a fresh monitoring session.
The command retries until the server accepts the confirmation.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var serverAddress string
			if len(args) > 0 {
				serverAddress = args[0]
			}

			options := &okay.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				Rearm:         rearm,
			}

			return okay.Run(ctx, options)
		},
	}
)

// Execute runs the safeband-okay CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().BoolVarP(&rearm, "rearm", "r", false, "start a fresh monitoring session after confirming")
}
