package alert

import (
	"context"
	"time"
)

// Notifier drives the wearer-facing alarm: sound/vibration and the display.
// Implementations may block while the alarm plays; callers invoke them off
// the state-transition path.
type Notifier interface {
	// StartAlarm plays the alarm pattern loopCount times, each loop lasting
	// loopDuration.
	StartAlarm(ctx context.Context, loopCount int, loopDuration time.Duration) error
	// StopAlarm silences a running alarm.
	StopAlarm(ctx context.Context) error
	// KeepDisplayAwake pins or releases the device display.
	KeepDisplayAwake(ctx context.Context, awake bool) error
}

// Dialer places the emergency call once the escalation fires.
type Dialer interface {
	Dial(ctx context.Context, number string) error
}
