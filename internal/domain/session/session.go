package session

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Phase is the lifecycle phase of a safety-check session.
type Phase int

const (
	// PhaseIdle means no countdown is active and the motion sensor is disarmed.
	PhaseIdle Phase = iota
	// PhaseMonitoring means the motion sensor is armed and no fall was seen yet.
	PhaseMonitoring
	// PhaseAlerting means a fall was detected and the countdown is running.
	PhaseAlerting
	// PhaseEscalated means the countdown expired without user confirmation.
	PhaseEscalated
	// PhaseResolved means the user confirmed being safe.
	PhaseResolved
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMonitoring:
		return "monitoring"
	case PhaseAlerting:
		return "alerting"
	case PhaseEscalated:
		return "escalated"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends this session instance.
// The user may still re-arm a fresh session from a terminal phase.
func (p Phase) Terminal() bool {
	return p == PhaseEscalated || p == PhaseResolved
}

// Vector is a single 3-axis acceleration sample.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// Magnitude returns the halved Euclidean norm of the sample,
// the unit the fall threshold is expressed in.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X+v.Y*v.Y+v.Z*v.Z) / 2
}

// Actor identifies the wearable device and wearer that caused a transition.
type Actor struct {
	// DeviceID is the unique identifier of the wearable device.
	DeviceID string
	// Wearer is the display name of the person wearing the device.
	Wearer string
}

// Clone returns a deep copy of the actor.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// timeEpsilon absorbs float drift so the countdown lands exactly on zero.
const timeEpsilon = 1e-9

// Session is the safety-check state machine: a countdown armed by a fall
// event, resolved by user confirmation or escalated on expiry.
type Session struct {
	// ID uniquely identifies this session instance.
	ID string
	// Phase is the current lifecycle phase.
	Phase Phase
	// RemainingTime is the countdown left before escalation, in seconds.
	RemainingTime float64
	// TotalDuration is the full countdown window, in seconds.
	TotalDuration float64
	// FallThreshold is the halved magnitude a sample must exceed to count as a fall.
	FallThreshold float64
	// IsRunning indicates whether the countdown decrements on tick.
	IsRunning bool
	// FallDetected becomes true once per session and never resets within it.
	FallDetected bool
	// ContactShown indicates the escalation advanced to the contact-display stage.
	ContactShown bool
	// Degraded reports a stalled motion source while monitoring.
	Degraded bool
	// UpdatedAt is when the session state last changed.
	UpdatedAt time.Time
	// LastActor is the identity that caused the last explicit transition.
	LastActor *Actor
}

// New creates a monitoring session with a fresh ID and a full countdown.
// The total duration is expressed in seconds.
func New(totalDuration, fallThreshold float64) *Session {
	return &Session{
		ID:            uuid.NewString(),
		Phase:         PhaseMonitoring,
		RemainingTime: totalDuration,
		TotalDuration: totalDuration,
		FallThreshold: fallThreshold,
		UpdatedAt:     time.Now(),
	}
}

// ReportMotionSample applies one accelerometer sample to the session.
// It returns true only when this sample newly detected a fall: the magnitude
// exceeds the threshold, the sensor is armed and no fall was seen yet this
// session. On detection the countdown starts at full duration.
func (s *Session) ReportMotionSample(v Vector) bool {
	if s.Phase != PhaseMonitoring || s.FallDetected {
		return false
	}

	if v.Magnitude() <= s.FallThreshold {
		return false
	}

	s.FallDetected = true
	s.Phase = PhaseAlerting
	s.RemainingTime = s.TotalDuration
	s.IsRunning = true
	s.touch()

	return true
}

// Tick advances the countdown by delta seconds while it is running.
// It returns true exactly when this tick caused the countdown to expire;
// the session then escalates and further ticks are no-ops.
func (s *Session) Tick(delta float64) bool {
	if !s.IsRunning || s.Phase != PhaseAlerting {
		return false
	}

	s.RemainingTime -= delta
	if s.RemainingTime > timeEpsilon {
		s.touch()

		return false
	}

	s.RemainingTime = 0
	s.IsRunning = false
	s.Phase = PhaseEscalated
	s.touch()

	return true
}

// AcknowledgeSafe resolves the session from any non-terminal phase.
// It returns false when the session already reached a terminal phase.
func (s *Session) AcknowledgeSafe(actor *Actor) bool {
	if s.Phase.Terminal() {
		return false
	}

	s.Phase = PhaseResolved
	s.IsRunning = false
	s.LastActor = actor.Clone()
	s.touch()

	return true
}

// Rearm replaces the session values with a fresh monitoring session,
// keeping the tuning knobs. Allowed from any phase; the countdown, fall
// flag and escalation stage are all reset.
func (s *Session) Rearm(actor *Actor) {
	s.ID = uuid.NewString()
	s.Phase = PhaseMonitoring
	s.RemainingTime = s.TotalDuration
	s.IsRunning = false
	s.FallDetected = false
	s.ContactShown = false
	s.LastActor = actor.Clone()
	s.touch()
}

// ShowContact advances an escalated session to the contact-display stage.
// It returns false when the session is not escalated or already advanced.
func (s *Session) ShowContact() bool {
	if s.Phase != PhaseEscalated || s.ContactShown {
		return false
	}

	s.ContactShown = true
	s.touch()

	return true
}

// MarkDegraded records whether the motion source stalled.
// It returns true when the flag actually changed.
func (s *Session) MarkDegraded(degraded bool) bool {
	if s.Degraded == degraded {
		return false
	}

	s.Degraded = degraded
	s.touch()

	return true
}

// Clone returns a copy of the session to avoid leaking internal references.
func (s *Session) Clone() *Session {
	cloned := *s
	cloned.LastActor = s.LastActor.Clone()

	return &cloned
}

// touch refreshes the modification timestamp.
func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
