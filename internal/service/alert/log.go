package alert

import (
	"context"
	"time"

	"github.com/oshokin/safeband/internal/logger"
)

// LogNotifier is the fallback Notifier used when no commands are configured.
// It keeps every escalation visible in the logs.
type LogNotifier struct{}

// NewLogNotifier creates the logging fallback notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// StartAlarm logs the alarm pattern instead of playing it.
func (n *LogNotifier) StartAlarm(ctx context.Context, loopCount int, loopDuration time.Duration) error {
	logger.WarnKV(ctx, "alarm started (no alarm command configured)",
		"loop_count", loopCount,
		"loop_duration", loopDuration)

	return nil
}

// StopAlarm logs the silencing instead of performing it.
func (n *LogNotifier) StopAlarm(ctx context.Context) error {
	logger.Info(ctx, "alarm stopped")

	return nil
}

// KeepDisplayAwake logs the display request instead of performing it.
func (n *LogNotifier) KeepDisplayAwake(ctx context.Context, awake bool) error {
	logger.InfoKV(ctx, "display wake state changed", "awake", awake)

	return nil
}

// LogDialer is the fallback Dialer used when no dial command is configured.
type LogDialer struct{}

// NewLogDialer creates the logging fallback dialer.
func NewLogDialer() *LogDialer {
	return &LogDialer{}
}

// Dial logs the emergency call instead of placing it.
func (d *LogDialer) Dial(ctx context.Context, number string) error {
	logger.WarnKV(ctx, "emergency call requested (no dial command configured)", "number", number)

	return nil
}
