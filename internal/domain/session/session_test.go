package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testTotalDuration = 120.0
	testFallThreshold = 10.0
	testTickStep      = 0.1
)

// newTestSession returns a monitoring session with the default tuning.
func newTestSession(t *testing.T) *Session {
	t.Helper()

	s := New(testTotalDuration, testFallThreshold)
	require.NotEmpty(t, s.ID)
	require.Equal(t, PhaseMonitoring, s.Phase)
	require.False(t, s.IsRunning)
	require.False(t, s.FallDetected)

	return s
}

// TestVectorMagnitude checks the halved Euclidean norm.
func TestVectorMagnitude(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 10.5, Vector{Z: 21}.Magnitude(), 1e-12)
	require.InDelta(t, 0, Vector{}.Magnitude(), 1e-12)
	require.InDelta(t, 1.5, Vector{X: 3}.Magnitude(), 1e-12)
	require.InDelta(t, 3.5, Vector{X: 3, Y: 2, Z: 6}.Magnitude(), 1e-12)
}

// TestReportMotionSample_DetectsFall checks that a sample above the
// threshold arms the countdown at full duration.
func TestReportMotionSample_DetectsFall(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	require.True(t, s.ReportMotionSample(Vector{Z: 21}))
	require.Equal(t, PhaseAlerting, s.Phase)
	require.True(t, s.FallDetected)
	require.True(t, s.IsRunning)
	require.InDelta(t, testTotalDuration, s.RemainingTime, 1e-12)
}

// TestReportMotionSample_BelowThreshold checks that calm samples,
// including one exactly at the threshold, are ignored.
func TestReportMotionSample_BelowThreshold(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	require.False(t, s.ReportMotionSample(Vector{Z: 19.6}))
	require.False(t, s.ReportMotionSample(Vector{Z: 20}))
	require.Equal(t, PhaseMonitoring, s.Phase)
	require.False(t, s.FallDetected)
	require.False(t, s.IsRunning)
}

// TestReportMotionSample_OncePerSession checks that a second fall within
// the same session does not restart the countdown.
func TestReportMotionSample_OncePerSession(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	require.True(t, s.ReportMotionSample(Vector{Z: 21}))

	for i := 0; i < 50; i++ {
		require.False(t, s.Tick(testTickStep))
	}

	remaining := s.RemainingTime

	require.False(t, s.ReportMotionSample(Vector{Z: 30}))
	require.InDelta(t, remaining, s.RemainingTime, 1e-12)
}

// TestTick_CountsDownAndEscalates checks that exactly 1200 steps of 0.1
// seconds drain the full 120-second countdown and escalate the session.
func TestTick_CountsDownAndEscalates(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	s.ReportMotionSample(Vector{Z: 21})

	for i := 0; i < 1199; i++ {
		require.False(t, s.Tick(testTickStep))
	}

	require.InDelta(t, testTickStep, s.RemainingTime, 1e-6)
	require.Equal(t, PhaseAlerting, s.Phase)

	require.True(t, s.Tick(testTickStep))
	require.Zero(t, s.RemainingTime)
	require.Equal(t, PhaseEscalated, s.Phase)
	require.False(t, s.IsRunning)
}

// TestTick_IdempotentAfterExpiry checks that ticking past zero changes nothing.
func TestTick_IdempotentAfterExpiry(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	s.ReportMotionSample(Vector{Z: 21})

	for i := 0; i < 1200; i++ {
		s.Tick(testTickStep)
	}

	require.False(t, s.Tick(testTickStep))
	require.Zero(t, s.RemainingTime)
	require.Equal(t, PhaseEscalated, s.Phase)
}

// TestTick_RequiresRunningCountdown checks that ticks are no-ops before a fall.
func TestTick_RequiresRunningCountdown(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	require.False(t, s.Tick(testTickStep))
	require.InDelta(t, testTotalDuration, s.RemainingTime, 1e-12)
	require.Equal(t, PhaseMonitoring, s.Phase)
}

// TestTick_ClampsOvershoot checks that a large final delta lands exactly on zero.
func TestTick_ClampsOvershoot(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	s.ReportMotionSample(Vector{Z: 21})

	require.True(t, s.Tick(testTotalDuration+5))
	require.Zero(t, s.RemainingTime)
	require.Equal(t, PhaseEscalated, s.Phase)
}

// TestAcknowledgeSafe checks resolution from every non-terminal phase
// and rejection from terminal ones.
func TestAcknowledgeSafe(t *testing.T) {
	t.Parallel()

	actor := &Actor{DeviceID: "band-01", Wearer: "Alice"}

	t.Run("while monitoring", func(t *testing.T) {
		t.Parallel()

		s := newTestSession(t)

		require.True(t, s.AcknowledgeSafe(actor))
		require.Equal(t, PhaseResolved, s.Phase)
		require.Equal(t, actor.DeviceID, s.LastActor.DeviceID)
	})

	t.Run("while alerting", func(t *testing.T) {
		t.Parallel()

		s := newTestSession(t)
		s.ReportMotionSample(Vector{Z: 21})
		s.Tick(testTickStep)

		require.True(t, s.AcknowledgeSafe(actor))
		require.Equal(t, PhaseResolved, s.Phase)
		require.False(t, s.IsRunning)
	})

	t.Run("after escalation", func(t *testing.T) {
		t.Parallel()

		s := newTestSession(t)
		s.ReportMotionSample(Vector{Z: 21})
		s.Tick(testTotalDuration)

		require.False(t, s.AcknowledgeSafe(actor))
		require.Equal(t, PhaseEscalated, s.Phase)
	})

	t.Run("already resolved", func(t *testing.T) {
		t.Parallel()

		s := newTestSession(t)
		require.True(t, s.AcknowledgeSafe(actor))
		require.False(t, s.AcknowledgeSafe(actor))
	})
}

// TestRearm checks that re-arming yields a fresh monitoring session with
// a new ID while keeping the tuning knobs.
func TestRearm(t *testing.T) {
	t.Parallel()

	actor := &Actor{DeviceID: "band-01", Wearer: "Alice"}

	s := newTestSession(t)
	s.ReportMotionSample(Vector{Z: 21})
	s.Tick(testTotalDuration)
	s.ShowContact()

	oldID := s.ID

	s.Rearm(actor)

	require.NotEqual(t, oldID, s.ID)
	require.Equal(t, PhaseMonitoring, s.Phase)
	require.InDelta(t, testTotalDuration, s.RemainingTime, 1e-12)
	require.False(t, s.FallDetected)
	require.False(t, s.ContactShown)
	require.False(t, s.IsRunning)

	// The fresh session detects falls again.
	require.True(t, s.ReportMotionSample(Vector{Z: 21}))
}

// TestShowContact checks the single advance to the contact-display stage.
func TestShowContact(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	require.False(t, s.ShowContact())

	s.ReportMotionSample(Vector{Z: 21})
	s.Tick(testTotalDuration)

	require.True(t, s.ShowContact())
	require.True(t, s.ContactShown)
	require.False(t, s.ShowContact())
}

// TestMarkDegraded checks that the flag reports actual changes only.
func TestMarkDegraded(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)

	require.False(t, s.MarkDegraded(false))
	require.True(t, s.MarkDegraded(true))
	require.True(t, s.Degraded)
	require.False(t, s.MarkDegraded(true))
	require.True(t, s.MarkDegraded(false))
}

// TestClone checks that clones do not share the actor pointer.
func TestClone(t *testing.T) {
	t.Parallel()

	s := newTestSession(t)
	s.AcknowledgeSafe(&Actor{DeviceID: "band-01", Wearer: "Alice"})

	cloned := s.Clone()
	cloned.LastActor.Wearer = "Bob"

	require.Equal(t, "Alice", s.LastActor.Wearer)
}
