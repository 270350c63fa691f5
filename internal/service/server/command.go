package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"

	api "github.com/oshokin/safeband/internal/api/grpc/safetycheck"
	"github.com/oshokin/safeband/internal/config"
	"github.com/oshokin/safeband/internal/logger"
	pb "github.com/oshokin/safeband/internal/pb/v1"
	repository "github.com/oshokin/safeband/internal/repository/state"
	"github.com/oshokin/safeband/internal/service/alert"
	"github.com/oshokin/safeband/internal/service/common"
	"github.com/oshokin/safeband/internal/service/events"
	"github.com/oshokin/safeband/internal/service/monitor"
	"github.com/oshokin/safeband/internal/service/sensor"
)

// ProcessName is the executable name used by the single-instance guard.
const ProcessName = "safeband-server"

// Options controls the safeband-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// StateFile specifies the path to persist the session JSON.
	StateFile string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the monitor controller and the gRPC server and blocks until the
// context is canceled or the server stops.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "safeband-server")

	if err := common.EnsureSingleInstance(ProcessName); err != nil {
		return err
	}

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	stateFile := settings.StateFile
	if opts.StateFile != "" {
		stateFile = opts.StateFile
	}

	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	repo := repository.NewFileRepository(stateFile)

	publisher, err := buildPublisher(ctx, settings)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			logger.ErrorKV(ctx, "Failed to close event publisher", "error", closeErr)
		}
	}()

	svc, err := monitor.NewService(
		ctx,
		monitorOptions(settings),
		repo,
		buildNotifier(settings),
		buildDialer(settings),
		publisher,
		buildMotionSource(ctx, settings),
		sensor.NewSimulatedHeartRate(settings.HeartRateInterval, heartRateSeed()),
	)
	if err != nil {
		return fmt.Errorf("initialise monitor: %w", err)
	}

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterSafetyCheckServiceServer(grpcServer, api.NewServer(svc))

	logger.InfoKV(ctx, "Safeband server listening",
		"listen_address", listenAddress,
		"state_file", stateFile,
		"fall_threshold", settings.FallThreshold,
		"total_duration", settings.TotalDuration)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		if runErr := svc.Run(ctx); runErr != nil {
			logger.ErrorKV(ctx, "Monitor stopped", "error", runErr)
		}
	}()

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()
		close(done)
	}()

	if err = grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	wg.Wait()
	logger.Info(ctx, "Safeband server stopped")

	return nil
}

// monitorOptions maps configuration onto controller knobs.
func monitorOptions(settings *config.Config) monitor.Options {
	return monitor.Options{
		FallThreshold:     settings.FallThreshold,
		TotalDuration:     settings.TotalDuration,
		TickStep:          settings.TickStep,
		ContactDelay:      settings.ContactDelay,
		SensorStallWindow: settings.SensorStallWindow,
		EmergencyNumber:   settings.EmergencyNumber,
	}
}

// buildNotifier picks the exec-based notifier when any command is configured
// and the logging fallback otherwise.
func buildNotifier(settings *config.Config) alert.Notifier {
	if settings.AlarmCommand == "" && settings.AlarmStopCommand == "" && settings.DisplayCommand == "" {
		return alert.NewLogNotifier()
	}

	return alert.NewExecNotifier(settings.AlarmCommand, settings.AlarmStopCommand, settings.DisplayCommand)
}

// buildDialer picks the exec-based dialer when a dial command is configured.
func buildDialer(settings *config.Config) alert.Dialer {
	if settings.DialCommand == "" {
		return alert.NewLogDialer()
	}

	return alert.NewExecDialer(settings.DialCommand)
}

// buildPublisher creates the Redis event publisher when one is configured.
func buildPublisher(ctx context.Context, settings *config.Config) (events.Publisher, error) {
	if settings.Redis == nil {
		return events.NopPublisher{}, nil
	}

	publisher := events.NewRedisPublisher(settings.Redis.Address, settings.Redis.Stream)
	if err := publisher.Ping(ctx); err != nil {
		return nil, fmt.Errorf("connect event publisher: %w", err)
	}

	logger.InfoKV(ctx, "Publishing session events",
		"redis_address", settings.Redis.Address, "stream", settings.Redis.Stream)

	return publisher, nil
}

// buildMotionSource attaches the JSONL replay source when one is configured;
// otherwise motion samples arrive through the gRPC API only.
func buildMotionSource(ctx context.Context, settings *config.Config) sensor.MotionSource {
	if settings.MotionReplayFile == "" {
		logger.Info(ctx, "No motion replay file configured, expecting samples over gRPC")

		return nil
	}

	logger.InfoKV(ctx, "Replaying motion samples",
		"file", settings.MotionReplayFile, "interval", settings.MotionSampleInterval)

	return sensor.NewReplaySource(settings.MotionReplayFile, settings.MotionSampleInterval, true)
}

// heartRateSeed seeds the simulated heart-rate walk per process start.
func heartRateSeed() int64 {
	return time.Now().UnixNano()
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	return ":" + port, nil
}
