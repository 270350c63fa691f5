package okay

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/safeband/internal/config"
	"github.com/oshokin/safeband/internal/logger"
	pb "github.com/oshokin/safeband/internal/pb/v1"
	"github.com/oshokin/safeband/internal/service/common"
)

// Options configures the "I'm okay" confirmation.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string

	// Rearm re-arms monitoring in the same call after confirming.
	Rearm bool
}

// defaultPushInterval defines retry delay when pushing the confirmation.
const defaultPushInterval = 1 * time.Second

// Run confirms the wearer is safe with retry logic until success or cancellation.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "safeband-okay")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	actor, err := common.DetectIdentity(cfg.DeviceID, cfg.Wearer)
	if err != nil {
		return err
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Confirming wearer is safe",
		"server_address", serverAddress,
		"rearm", opts.Rearm)

	// attempt tries once to confirm, returns (completed, error).
	attempt := func() (bool, error) {
		resp, err := client.AcknowledgeSafe(ctx, actor, opts.Rearm)
		if err != nil {
			// Log error but continue retrying for transient failures.
			logger.ErrorKV(ctx, "AcknowledgeSafe failed", "error", err)

			return false, nil
		}

		if confirmed(resp, opts.Rearm) {
			logger.Infof(ctx, "Session updated: %s", formatState(resp))

			return true, nil
		}

		return false, nil
	}

	// Attempt immediately before starting retry loop.
	if done, err := attempt(); err != nil {
		return err
	} else if done {
		return nil
	}

	ticker := time.NewTicker(defaultPushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			done, err := attempt()
			if err != nil {
				return err
			}

			if done {
				return nil
			}
		}
	}
}

// confirmed reports whether the server reached the expected phase.
func confirmed(state *pb.SessionState, rearm bool) bool {
	if state == nil {
		return false
	}

	if rearm {
		return state.GetPhase() == pb.SessionPhase_SESSION_PHASE_MONITORING
	}

	return state.GetPhase() == pb.SessionPhase_SESSION_PHASE_RESOLVED
}

// formatState converts a session state to a readable log message.
func formatState(state *pb.SessionState) string {
	if state == nil {
		return "<nil state>"
	}

	timestamp := "<unknown>"
	if t := state.GetUpdatedAt(); t != nil {
		timestamp = t.AsTime().Format(time.RFC3339)
	}

	actor := "<unknown>"
	if state.GetLastActor() != nil {
		actor = fmt.Sprintf("%s@%s", state.GetLastActor().GetWearer(), state.GetLastActor().GetDeviceId())
	}

	return fmt.Sprintf("%s by %s (%s)", phaseName(state.GetPhase()), actor, timestamp)
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
