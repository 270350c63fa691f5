package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/safeband/internal/domain/session"
	repo "github.com/oshokin/safeband/internal/repository/state"
	"github.com/oshokin/safeband/internal/service/events"
	"github.com/oshokin/safeband/internal/service/sensor"
)

var errTestLoad = errors.New("test load error")

// memoryRepository is a minimal in-memory Repository implementation for tests.
type memoryRepository struct {
	// mu protects the fields below.
	mu sync.Mutex
	// sess is the session to return from Load operations.
	sess *session.Session
	// loadErr is the error to return from Load operations.
	loadErr error
	// saves counts Save operations.
	saves int
}

// Load retrieves the stored session.
func (m *memoryRepository) Load(context.Context) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadErr != nil {
		return nil, m.loadErr
	}

	if m.sess == nil {
		return nil, repo.ErrNotFound
	}

	return m.sess.Clone(), nil
}

// Save stores the provided session and counts the call.
func (m *memoryRepository) Save(_ context.Context, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sess = s.Clone()
	m.saves++

	return nil
}

// saveCount returns how many times Save was called.
func (m *memoryRepository) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saves
}

// recordingNotifier records alarm and display commands.
type recordingNotifier struct {
	mu     sync.Mutex
	starts int
	stops  int
	awake  []bool
}

func (n *recordingNotifier) StartAlarm(context.Context, int, time.Duration) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.starts++

	return nil
}

func (n *recordingNotifier) StopAlarm(context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stops++

	return nil
}

func (n *recordingNotifier) KeepDisplayAwake(_ context.Context, awake bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.awake = append(n.awake, awake)

	return nil
}

// counts returns the recorded start/stop totals.
func (n *recordingNotifier) counts() (starts, stops int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.starts, n.stops
}

// recordingDialer records emergency calls.
type recordingDialer struct {
	mu      sync.Mutex
	numbers []string
}

func (d *recordingDialer) Dial(_ context.Context, number string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.numbers = append(d.numbers, number)

	return nil
}

// dialed returns a copy of the recorded numbers.
func (d *recordingDialer) dialed() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.numbers...)
}

// channelMotionSource emits samples pushed through a channel.
type channelMotionSource struct {
	samples chan session.Vector
}

func (s *channelMotionSource) Run(ctx context.Context, emit func(v session.Vector)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case v, ok := <-s.samples:
			if !ok {
				return nil
			}

			emit(v)
		}
	}
}

// testOptions returns fast knobs so scenarios finish in milliseconds.
func testOptions() Options {
	return Options{
		FallThreshold:     10.0,
		TotalDuration:     200 * time.Millisecond,
		TickStep:          10 * time.Millisecond,
		ContactDelay:      30 * time.Millisecond,
		SensorStallWindow: 50 * time.Millisecond,
		EmergencyNumber:   "112",
	}
}

// startService boots the controller apply loop for the test duration.
func startService(
	t *testing.T,
	opts Options,
	repository repo.Repository,
	notifier *recordingNotifier,
	dialer *recordingDialer,
	motion *channelMotionSource,
) *Service {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var motionSource sensor.MotionSource
	if motion != nil {
		motionSource = motion
	}

	svc, err := NewService(ctx, opts, repository, notifier, dialer, events.NopPublisher{}, motionSource, nil)
	require.NoError(t, err)

	go func() {
		_ = svc.Run(ctx)
	}()

	return svc
}

const (
	eventuallyTimeout = 3 * time.Second
	eventuallyStep    = 5 * time.Millisecond
)

// TestService_FallEscalatesAndDialsOnce drives the full incident: fall,
// countdown expiry, a single emergency call and contact display.
func TestService_FallEscalatesAndDialsOnce(t *testing.T) {
	t.Parallel()

	repository := new(memoryRepository)
	notifier := new(recordingNotifier)
	dialer := new(recordingDialer)
	svc := startService(t, testOptions(), repository, notifier, dialer, nil)

	ctx := context.Background()

	fall, snapshot, err := svc.ReportMotionSample(ctx, nil, session.Vector{Z: 21})
	require.NoError(t, err)
	require.True(t, fall)
	require.Equal(t, session.PhaseAlerting, snapshot.Session.Phase)
	require.InDelta(t, 0.2, snapshot.Session.RemainingTime, 1e-9)

	require.Eventually(t, func() bool {
		return svc.GetState(ctx).Session.Phase == session.PhaseEscalated
	}, eventuallyTimeout, eventuallyStep)

	require.Eventually(t, func() bool {
		return len(dialer.dialed()) == 1
	}, eventuallyTimeout, eventuallyStep)
	require.Equal(t, []string{"112"}, dialer.dialed())

	require.Eventually(t, func() bool {
		return svc.GetState(ctx).Session.ContactShown
	}, eventuallyTimeout, eventuallyStep)

	// Further ticks never dial again.
	time.Sleep(100 * time.Millisecond)
	require.Len(t, dialer.dialed(), 1)

	state := svc.GetState(ctx).Session
	require.Zero(t, state.RemainingTime)
	require.False(t, state.IsRunning)
	require.Positive(t, repository.saveCount())
}

// TestService_AcknowledgeStopsEscalation confirms a timely "I'm okay"
// resolves the session, silences the alarm and prevents the call.
func TestService_AcknowledgeStopsEscalation(t *testing.T) {
	t.Parallel()

	notifier := new(recordingNotifier)
	dialer := new(recordingDialer)

	opts := testOptions()
	opts.TotalDuration = 5 * time.Second

	svc := startService(t, opts, new(memoryRepository), notifier, dialer, nil)
	ctx := context.Background()
	actor := &session.Actor{DeviceID: "band-01", Wearer: "Alice"}

	fall, _, err := svc.ReportMotionSample(ctx, actor, session.Vector{Z: 21})
	require.NoError(t, err)
	require.True(t, fall)

	applied, snapshot, err := svc.AcknowledgeSafe(ctx, actor, false)
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, session.PhaseResolved, snapshot.Session.Phase)
	require.False(t, snapshot.Session.IsRunning)
	require.Equal(t, actor, snapshot.Session.LastActor)

	require.Eventually(t, func() bool {
		_, stops := notifier.counts()

		return stops >= 1
	}, eventuallyTimeout, eventuallyStep)

	time.Sleep(50 * time.Millisecond)
	require.Empty(t, dialer.dialed())

	// Acknowledging a resolved session does not apply again.
	applied, _, err = svc.AcknowledgeSafe(ctx, actor, false)
	require.NoError(t, err)
	require.False(t, applied)
}

// TestService_AcknowledgeWithRearm resolves and immediately re-arms.
func TestService_AcknowledgeWithRearm(t *testing.T) {
	t.Parallel()

	svc := startService(t, testOptions(), new(memoryRepository), new(recordingNotifier), new(recordingDialer), nil)
	ctx := context.Background()
	actor := &session.Actor{DeviceID: "band-01", Wearer: "Alice"}

	oldID := svc.GetState(ctx).Session.ID

	applied, snapshot, err := svc.AcknowledgeSafe(ctx, actor, true)
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, session.PhaseMonitoring, snapshot.Session.Phase)
	require.NotEqual(t, oldID, snapshot.Session.ID)
	require.False(t, snapshot.Session.FallDetected)
}

// TestService_RearmAfterEscalation checks the explicit re-arm path.
func TestService_RearmAfterEscalation(t *testing.T) {
	t.Parallel()

	dialer := new(recordingDialer)

	opts := testOptions()
	opts.TotalDuration = 20 * time.Millisecond

	svc := startService(t, opts, new(memoryRepository), new(recordingNotifier), dialer, nil)
	ctx := context.Background()

	_, _, err := svc.ReportMotionSample(ctx, nil, session.Vector{Z: 21})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return svc.GetState(ctx).Session.Phase == session.PhaseEscalated
	}, eventuallyTimeout, eventuallyStep)

	snapshot, err := svc.Rearm(ctx, &session.Actor{DeviceID: "band-01", Wearer: "Alice"})
	require.NoError(t, err)
	require.Equal(t, session.PhaseMonitoring, snapshot.Session.Phase)
	require.False(t, snapshot.Session.FallDetected)
	require.InDelta(t, opts.TotalDuration.Seconds(), snapshot.Session.RemainingTime, 1e-9)

	// The fresh session detects falls again.
	fall, _, err := svc.ReportMotionSample(ctx, nil, session.Vector{Z: 21})
	require.NoError(t, err)
	require.True(t, fall)
}

// TestService_RestoresPersistedSession verifies a restart keeps the incident.
func TestService_RestoresPersistedSession(t *testing.T) {
	t.Parallel()

	persisted := session.New(120, 10)
	persisted.ReportMotionSample(session.Vector{Z: 21})
	persisted.Tick(120)

	repository := &memoryRepository{sess: persisted}
	svc := startService(t, testOptions(), repository, new(recordingNotifier), new(recordingDialer), nil)

	state := svc.GetState(context.Background()).Session
	require.Equal(t, session.PhaseEscalated, state.Phase)
	require.Equal(t, persisted.ID, state.ID)
}

// TestNewService_LoadError surfaces repository failures at startup.
func TestNewService_LoadError(t *testing.T) {
	t.Parallel()

	_, err := NewService(
		context.Background(),
		testOptions(),
		&memoryRepository{loadErr: errTestLoad},
		new(recordingNotifier),
		new(recordingDialer),
		events.NopPublisher{},
		nil,
		nil,
	)
	require.ErrorIs(t, err, errTestLoad)
}

// TestService_StallWatchdog marks the session degraded when the attached
// motion source goes silent and clears it when data resumes.
func TestService_StallWatchdog(t *testing.T) {
	t.Parallel()

	motion := &channelMotionSource{samples: make(chan session.Vector)}
	svc := startService(t, testOptions(), new(memoryRepository), new(recordingNotifier), new(recordingDialer), motion)
	ctx := context.Background()

	require.Eventually(t, func() bool {
		return svc.GetState(ctx).Session.Degraded
	}, eventuallyTimeout, eventuallyStep)

	motion.samples <- session.Vector{Z: 5}

	require.Eventually(t, func() bool {
		return !svc.GetState(ctx).Session.Degraded
	}, eventuallyTimeout, eventuallyStep)
}

// TestService_SubscribeReceivesTransitions verifies stream subscribers see
// phase changes and unsubscribe closes the channel.
func TestService_SubscribeReceivesTransitions(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.TotalDuration = 5 * time.Second

	svc := startService(t, opts, new(memoryRepository), new(recordingNotifier), new(recordingDialer), nil)
	ctx := context.Background()

	id, ch := svc.Subscribe()

	_, _, err := svc.ReportMotionSample(ctx, nil, session.Vector{Z: 21})
	require.NoError(t, err)

	select {
	case snapshot := <-ch:
		require.Equal(t, session.PhaseAlerting, snapshot.Session.Phase)
	case <-time.After(eventuallyTimeout):
		t.Fatal("no snapshot received")
	}

	svc.Unsubscribe(id)

	// Drain until closed.
	require.Eventually(t, func() bool {
		for {
			select {
			case _, ok := <-ch:
				if !ok {
					return true
				}
			default:
				return false
			}
		}
	}, eventuallyTimeout, eventuallyStep)
}
