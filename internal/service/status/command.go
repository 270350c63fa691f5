package status

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oshokin/safeband/internal/config"
	"github.com/oshokin/safeband/internal/logger"
	pb "github.com/oshokin/safeband/internal/pb/v1"
	"github.com/oshokin/safeband/internal/service/common"
)

// Options controls the status client behavior and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// PollInterval defines the interval between session state checks.
	PollInterval time.Duration
	// Follow switches from polling to the live session stream.
	Follow bool
}

// DefaultPollInterval defines the fixed polling interval for state checks.
const DefaultPollInterval = 2 * time.Second

// Run displays session state either by polling or by following the stream.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "safeband-status")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	actor, err := common.DetectIdentity(cfg.DeviceID, cfg.Wearer)
	if err != nil {
		return fmt.Errorf("detect identity: %w", err)
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	defer func() {
		_ = client.Close()
	}()

	if opts.Follow {
		logger.InfoKV(ctx, "Following session stream", "server_address", serverAddress)

		return follow(ctx, client, actor)
	}

	logger.InfoKV(ctx, "Polling session state",
		"server_address", serverAddress, "interval", opts.PollInterval.String())

	return poll(ctx, client, actor, opts.PollInterval)
}

// poll fetches and logs the session state on a fixed interval.
func poll(ctx context.Context, client *common.Client, actor *pb.WearerIdentity, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")

			return nil
		case <-ticker.C:
			state, err := client.GetSessionState(ctx, actor)
			if err != nil {
				logger.ErrorKV(ctx, "Get session state failed", "error", err)

				continue
			}

			logger.Info(ctx, FormatState(state))
		}
	}
}

// follow logs every snapshot from the live stream until it ends.
func follow(ctx context.Context, client *common.Client, actor *pb.WearerIdentity) error {
	stream, err := client.WatchSession(ctx, actor)
	if err != nil {
		return err
	}

	for {
		state, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				logger.Info(ctx, "Stream closed, exiting")

				return nil
			}

			return fmt.Errorf("receive session state: %w", err)
		}

		logger.Info(ctx, FormatState(state))
	}
}

// FormatState renders one session snapshot as a single display line.
func FormatState(state *pb.SessionState) string {
	if state == nil {
		return "<nil state>"
	}

	line := fmt.Sprintf("phase=%s remaining=%.1fs", phaseName(state.GetPhase()), state.GetRemainingSeconds())

	if state.GetHeartRateBpm() > 0 {
		line += fmt.Sprintf(" heart_rate=%.0fbpm", state.GetHeartRateBpm())
	}

	if state.GetFallDetected() {
		line += " fall_detected"
	}

	if state.GetContactShown() {
		line += " contact_shown"
	}

	if state.GetDegraded() {
		line += " degraded"
	}

	return line
}

// phaseName converts the protobuf phase to a readable string.
func phaseName(phase pb.SessionPhase) string {
	switch phase {
	case pb.SessionPhase_SESSION_PHASE_IDLE:
		return "idle"
	case pb.SessionPhase_SESSION_PHASE_MONITORING:
		return "monitoring"
	case pb.SessionPhase_SESSION_PHASE_ALERTING:
		return "alerting"
	case pb.SessionPhase_SESSION_PHASE_ESCALATED:
		return "escalated"
	case pb.SessionPhase_SESSION_PHASE_RESOLVED:
		return "resolved"
	case pb.SessionPhase_SESSION_PHASE_UNSPECIFIED:
		return "unspecified"
	default:
		return "unknown"
	}
}
