package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oshokin/safeband/internal/domain/session"
	"github.com/oshokin/safeband/internal/logger"
	repo "github.com/oshokin/safeband/internal/repository/state"
	"github.com/oshokin/safeband/internal/service/alert"
	"github.com/oshokin/safeband/internal/service/events"
	"github.com/oshokin/safeband/internal/service/sensor"
)

// Default alarm loop pattern played on fall detection.
const (
	DefaultAlarmLoopCount    = 10
	DefaultAlarmLoopDuration = 3 * time.Second
)

// eventQueueSize bounds the apply queue; producers block when it is full so
// ordering is preserved.
const eventQueueSize = 256

// watcherBufferSize bounds each subscriber channel; slow subscribers lose
// intermediate snapshots rather than stalling the controller.
const watcherBufferSize = 16

// Options are the tuning knobs of the controller.
type Options struct {
	// FallThreshold is the halved acceleration magnitude that counts as a fall.
	FallThreshold float64
	// TotalDuration is the full escalation countdown.
	TotalDuration time.Duration
	// TickStep is the countdown resolution.
	TickStep time.Duration
	// ContactDelay is how long an escalation waits before auto-advancing to
	// the contact-display stage.
	ContactDelay time.Duration
	// SensorStallWindow marks the session degraded when the attached motion
	// source is silent for longer than this while monitoring.
	SensorStallWindow time.Duration
	// EmergencyNumber is dialed exactly once per escalation.
	EmergencyNumber string
	// AlarmLoopCount and AlarmLoopDuration describe the alarm pattern.
	AlarmLoopCount    int
	AlarmLoopDuration time.Duration
}

// Snapshot is a point-in-time copy of the controller state handed to readers
// and stream subscribers.
type Snapshot struct {
	// Session is a deep copy of the current session.
	Session *session.Session
	// HeartRate is the last heart-rate reading in BPM, 0 until the first one.
	HeartRate float64
}

// event is one unit of work for the apply loop.
type event struct {
	// apply mutates the controller state.
	apply func(ctx context.Context)
	// done, when non-nil, is closed after apply returns.
	done chan struct{}
}

// Service applies all state mutations on a single goroutine fed by one
// event channel, so motion samples, ticks and commands take effect in
// arrival order.
type Service struct {
	// opts holds the tuning knobs.
	opts Options
	// repo persists session snapshots across restarts.
	repo repo.Repository
	// notifier drives the alarm and display sinks.
	notifier alert.Notifier
	// dialer places the emergency call.
	dialer alert.Dialer
	// publisher emits phase-change events.
	publisher events.Publisher
	// motion is the optional attached motion source.
	motion sensor.MotionSource
	// heart is the optional attached heart-rate source.
	heart sensor.HeartRateSource

	// eventQueue feeds the apply loop.
	eventQueue chan *event

	// mu protects the fields below.
	mu sync.RWMutex
	// sess is the current session state machine.
	sess *session.Session
	// heartRate is the last heart-rate reading.
	heartRate float64
	// lastMotionAt is when the last motion sample arrived.
	lastMotionAt time.Time
	// watchers are the active stream subscribers.
	watchers map[uint64]chan *Snapshot
	// nextWatcherID is the next subscriber handle.
	nextWatcherID uint64
}

// NewService creates the controller, restoring the persisted session when one
// exists so a restart during an escalation does not discard the incident.
func NewService(
	ctx context.Context,
	opts Options,
	repository repo.Repository,
	notifier alert.Notifier,
	dialer alert.Dialer,
	publisher events.Publisher,
	motion sensor.MotionSource,
	heart sensor.HeartRateSource,
) (*Service, error) {
	if opts.AlarmLoopCount <= 0 {
		opts.AlarmLoopCount = DefaultAlarmLoopCount
	}

	if opts.AlarmLoopDuration <= 0 {
		opts.AlarmLoopDuration = DefaultAlarmLoopDuration
	}

	s := &Service{
		opts:         opts,
		repo:         repository,
		notifier:     notifier,
		dialer:       dialer,
		publisher:    publisher,
		motion:       motion,
		heart:        heart,
		eventQueue:   make(chan *event, eventQueueSize),
		sess:         session.New(opts.TotalDuration.Seconds(), opts.FallThreshold),
		lastMotionAt: time.Now(),
		watchers:     make(map[uint64]chan *Snapshot),
	}

	if repository == nil {
		return s, nil
	}

	restored, err := repository.Load(ctx)
	switch {
	case err == nil:
		if restored != nil {
			// Tuning knobs are configuration, not state.
			restored.TotalDuration = opts.TotalDuration.Seconds()
			restored.FallThreshold = opts.FallThreshold
			s.sess = restored

			logger.InfoKV(ctx, "Restored persisted session",
				"session_id", restored.ID, "phase", restored.Phase.String())
		}
	case errors.Is(err, repo.ErrNotFound):
		// Fresh session.
	default:
		return nil, fmt.Errorf("load session: %w", err)
	}

	return s, nil
}

// Run starts the clock and sensor producers and processes events until the
// context is canceled.
func (s *Service) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		s.runClock(ctx)
	}()

	if s.motion != nil {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if err := s.motion.Run(ctx, func(v session.Vector) {
				s.enqueue(ctx, func(ctx context.Context) {
					s.applyMotion(ctx, nil, v)
				})
			}); err != nil {
				logger.ErrorKV(ctx, "Motion source stopped", "error", err)
			}
		}()
	}

	if s.heart != nil {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if err := s.heart.Run(ctx, func(bpm float64) {
				s.enqueue(ctx, func(ctx context.Context) {
					s.applyHeartRate(ctx, bpm)
				})
			}); err != nil {
				logger.ErrorKV(ctx, "Heart-rate source stopped", "error", err)
			}
		}()
	}

	s.applyLoop(ctx)
	wg.Wait()

	return nil
}

// applyLoop drains the event queue in arrival order.
func (s *Service) applyLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.eventQueue:
			ev.apply(ctx)

			if ev.done != nil {
				close(ev.done)
			}
		}
	}
}

// runClock produces a tick event every TickStep.
func (s *Service) runClock(ctx context.Context) {
	ticker := time.NewTicker(s.opts.TickStep)
	defer ticker.Stop()

	delta := s.opts.TickStep.Seconds()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.enqueue(ctx, func(ctx context.Context) {
				s.applyTick(ctx, delta)
			})
		}
	}
}

// enqueue submits a fire-and-forget event.
func (s *Service) enqueue(ctx context.Context, apply func(ctx context.Context)) {
	select {
	case s.eventQueue <- &event{apply: apply}:
	case <-ctx.Done():
	}
}

// do submits an event and waits until the apply loop has processed it.
func (s *Service) do(ctx context.Context, apply func(ctx context.Context)) error {
	done := make(chan struct{})

	select {
	case s.eventQueue <- &event{apply: apply, done: done}:
	case <-ctx.Done():
		return fmt.Errorf("submit command: %w", ctx.Err())
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("await command: %w", ctx.Err())
	}
}

// GetState returns a snapshot of the current session and heart rate.
func (s *Service) GetState(_ context.Context) *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// ReportMotionSample feeds one accelerometer sample through the apply loop
// and reports whether it newly detected a fall.
func (s *Service) ReportMotionSample(
	ctx context.Context,
	actor *session.Actor,
	v session.Vector,
) (bool, *Snapshot, error) {
	var (
		fall     bool
		snapshot *Snapshot
	)

	err := s.do(ctx, func(ctx context.Context) {
		fall, snapshot = s.applyMotion(ctx, actor, v)
	})
	if err != nil {
		return false, nil, err
	}

	return fall, snapshot, nil
}

// AcknowledgeSafe resolves the session from any non-terminal phase and
// optionally re-arms monitoring in the same step. It reports whether the
// acknowledgement applied.
func (s *Service) AcknowledgeSafe(
	ctx context.Context,
	actor *session.Actor,
	rearm bool,
) (bool, *Snapshot, error) {
	var (
		applied  bool
		snapshot *Snapshot
	)

	err := s.do(ctx, func(ctx context.Context) {
		applied, snapshot = s.applyAcknowledge(ctx, actor, rearm)
	})
	if err != nil {
		return false, nil, err
	}

	return applied, snapshot, nil
}

// Rearm replaces the session with a fresh monitoring one.
func (s *Service) Rearm(ctx context.Context, actor *session.Actor) (*Snapshot, error) {
	var snapshot *Snapshot

	err := s.do(ctx, func(ctx context.Context) {
		snapshot = s.applyRearm(ctx, actor)
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// Subscribe registers a stream subscriber and returns its handle and channel.
// The channel receives state snapshots; slow subscribers lose intermediate
// ones.
func (s *Service) Subscribe() (uint64, <-chan *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextWatcherID
	s.nextWatcherID++

	ch := make(chan *Snapshot, watcherBufferSize)
	s.watchers[id] = ch

	return id, ch
}

// Unsubscribe removes a stream subscriber.
func (s *Service) Unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.watchers[id]; ok {
		delete(s.watchers, id)
		close(ch)
	}
}

// applyMotion records one motion sample: it feeds the fall trigger, refreshes
// the stall watchdog and fires the alarm side effects on a new fall.
func (s *Service) applyMotion(ctx context.Context, actor *session.Actor, v session.Vector) (bool, *Snapshot) {
	s.mu.Lock()

	s.lastMotionAt = time.Now()
	degradedCleared := s.sess.MarkDegraded(false)

	fall := s.sess.ReportMotionSample(v)
	if fall && actor != nil {
		s.sess.LastActor = actor.Clone()
	}

	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if degradedCleared {
		logger.Info(ctx, "Motion data resumed, session no longer degraded")
	}

	if fall {
		logger.WarnKV(ctx, "Fall detected, escalation countdown started",
			"magnitude", v.Magnitude(),
			"remaining_seconds", snapshot.Session.RemainingTime)

		go s.startAlarm(ctx)
		go s.setDisplayAwake(ctx, true)

		s.persistAndPublish(ctx, snapshot)
		s.notifyWatchers(snapshot)
	} else if degradedCleared {
		s.notifyWatchers(snapshot)
	}

	return fall, snapshot
}

// applyTick advances the countdown and runs the stall watchdog. Expiry
// triggers the escalation side effects.
func (s *Service) applyTick(ctx context.Context, delta float64) {
	s.mu.Lock()

	expired := s.sess.Tick(delta)

	var stalled bool
	if s.motion != nil && s.sess.Phase == session.PhaseMonitoring &&
		time.Since(s.lastMotionAt) > s.opts.SensorStallWindow {
		stalled = s.sess.MarkDegraded(true)
	}

	ticking := s.sess.Phase == session.PhaseAlerting && s.sess.IsRunning
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if stalled {
		logger.WarnKV(ctx, "Motion source stalled, session degraded",
			"stall_window", s.opts.SensorStallWindow)
		s.notifyWatchers(snapshot)
	}

	if ticking {
		s.notifyWatchers(snapshot)
	}

	if expired {
		s.escalate(ctx, snapshot)
	}
}

// escalate runs the side effects of a countdown expiry: the alarm stops, the
// display may sleep, the emergency number is dialed once and the
// contact-display advance is scheduled.
func (s *Service) escalate(ctx context.Context, snapshot *Snapshot) {
	logger.WarnKV(ctx, "Countdown expired without confirmation, escalating",
		"session_id", snapshot.Session.ID,
		"emergency_number", s.opts.EmergencyNumber)

	go s.stopAlarm(ctx)
	go s.setDisplayAwake(ctx, false)

	go func() {
		if err := s.dialer.Dial(ctx, s.opts.EmergencyNumber); err != nil {
			logger.ErrorKV(ctx, "Failed to place emergency call",
				"number", s.opts.EmergencyNumber, "error", err)
		}
	}()

	sessionID := snapshot.Session.ID

	time.AfterFunc(s.opts.ContactDelay, func() {
		s.enqueue(ctx, func(ctx context.Context) {
			s.applyShowContact(ctx, sessionID)
		})
	})

	s.persistAndPublish(ctx, snapshot)
	s.notifyWatchers(snapshot)
}

// applyShowContact advances an escalated session to the contact-display
// stage unless the session changed in the meantime.
func (s *Service) applyShowContact(ctx context.Context, sessionID string) {
	s.mu.Lock()

	if s.sess.ID != sessionID {
		s.mu.Unlock()

		return
	}

	advanced := s.sess.ShowContact()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if !advanced {
		return
	}

	logger.InfoKV(ctx, "Escalation advanced to emergency contact display",
		"emergency_number", s.opts.EmergencyNumber)

	s.persistAndPublish(ctx, snapshot)
	s.notifyWatchers(snapshot)
}

// applyAcknowledge resolves the session and optionally re-arms it.
func (s *Service) applyAcknowledge(ctx context.Context, actor *session.Actor, rearm bool) (bool, *Snapshot) {
	s.mu.Lock()

	applied := s.sess.AcknowledgeSafe(actor)

	rearmed := false
	if rearm {
		s.sess.Rearm(actor)
		s.lastMotionAt = time.Now()
		rearmed = true
	}

	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if applied {
		logger.InfoKV(ctx, "Wearer confirmed safe", "actor", snapshot.Session.LastActor)

		go s.stopAlarm(ctx)
		go s.setDisplayAwake(ctx, false)
	}

	if rearmed {
		logger.InfoKV(ctx, "Monitoring re-armed", "session_id", snapshot.Session.ID)
	}

	if applied || rearmed {
		s.persistAndPublish(ctx, snapshot)
		s.notifyWatchers(snapshot)
	}

	return applied, snapshot
}

// applyRearm replaces the session with a fresh monitoring one.
func (s *Service) applyRearm(ctx context.Context, actor *session.Actor) *Snapshot {
	s.mu.Lock()

	s.sess.Rearm(actor)
	s.lastMotionAt = time.Now()

	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	logger.InfoKV(ctx, "Monitoring re-armed", "session_id", snapshot.Session.ID)

	go s.stopAlarm(ctx)

	s.persistAndPublish(ctx, snapshot)
	s.notifyWatchers(snapshot)

	return snapshot
}

// applyHeartRate stores the latest heart-rate reading for display.
func (s *Service) applyHeartRate(_ context.Context, bpm float64) {
	s.mu.Lock()
	s.heartRate = bpm
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notifyWatchers(snapshot)
}

// snapshotLocked builds a snapshot; callers hold at least the read lock.
func (s *Service) snapshotLocked() *Snapshot {
	return &Snapshot{
		Session:   s.sess.Clone(),
		HeartRate: s.heartRate,
	}
}

// startAlarm plays the configured alarm pattern.
func (s *Service) startAlarm(ctx context.Context) {
	err := s.notifier.StartAlarm(ctx, s.opts.AlarmLoopCount, s.opts.AlarmLoopDuration)
	if err != nil && !errors.Is(err, alert.ErrNoCommand) {
		logger.ErrorKV(ctx, "Failed to start alarm", "error", err)
	}
}

// stopAlarm silences the alarm.
func (s *Service) stopAlarm(ctx context.Context) {
	err := s.notifier.StopAlarm(ctx)
	if err != nil && !errors.Is(err, alert.ErrNoCommand) {
		logger.ErrorKV(ctx, "Failed to stop alarm", "error", err)
	}
}

// setDisplayAwake pins or releases the display.
func (s *Service) setDisplayAwake(ctx context.Context, awake bool) {
	err := s.notifier.KeepDisplayAwake(ctx, awake)
	if err != nil && !errors.Is(err, alert.ErrNoCommand) {
		logger.ErrorKV(ctx, "Failed to change display wake state", "awake", awake, "error", err)
	}
}

// persistAndPublish saves the snapshot and emits the phase-change event.
// Failures are logged, not fatal: the in-memory session stays authoritative.
func (s *Service) persistAndPublish(ctx context.Context, snapshot *Snapshot) {
	if s.repo != nil {
		if err := s.repo.Save(ctx, snapshot.Session); err != nil {
			logger.ErrorKV(ctx, "Failed to persist session", "error", err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishPhaseChange(ctx, snapshot.Session); err != nil {
			logger.WarnKV(ctx, "Failed to publish phase change", "error", err)
		}
	}
}

// notifyWatchers fans a snapshot out to stream subscribers without blocking.
func (s *Service) notifyWatchers(snapshot *Snapshot) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ch := range s.watchers {
		select {
		case ch <- snapshot:
		default:
			// Slow subscriber, drop this snapshot.
		}
	}
}
