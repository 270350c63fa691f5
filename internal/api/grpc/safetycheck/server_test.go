package safetycheck

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/safeband/internal/domain/session"
	pb "github.com/oshokin/safeband/internal/pb/v1"
	"github.com/oshokin/safeband/internal/service/monitor"
)

var errTestService = errors.New("test service error")

// fakeService is a canned Service implementation for handler tests.
type fakeService struct {
	// snapshot is returned from every operation.
	snapshot *monitor.Snapshot
	// fall is returned from ReportMotionSample.
	fall bool
	// err is returned from mutating operations.
	err error
	// lastActor records the actor passed to the last operation.
	lastActor *session.Actor
	// lastVector records the sample passed to ReportMotionSample.
	lastVector session.Vector
	// lastRearm records the rearm flag passed to AcknowledgeSafe.
	lastRearm bool
}

func (f *fakeService) GetState(context.Context) *monitor.Snapshot {
	return f.snapshot
}

func (f *fakeService) ReportMotionSample(
	_ context.Context,
	actor *session.Actor,
	v session.Vector,
) (bool, *monitor.Snapshot, error) {
	f.lastActor = actor
	f.lastVector = v

	return f.fall, f.snapshot, f.err
}

func (f *fakeService) AcknowledgeSafe(
	_ context.Context,
	actor *session.Actor,
	rearm bool,
) (bool, *monitor.Snapshot, error) {
	f.lastActor = actor
	f.lastRearm = rearm

	return true, f.snapshot, f.err
}

func (f *fakeService) Rearm(_ context.Context, actor *session.Actor) (*monitor.Snapshot, error) {
	f.lastActor = actor

	return f.snapshot, f.err
}

func (f *fakeService) Subscribe() (uint64, <-chan *monitor.Snapshot) {
	ch := make(chan *monitor.Snapshot)
	close(ch)

	return 0, ch
}

func (f *fakeService) Unsubscribe(uint64) {}

// testSnapshot returns a populated controller snapshot.
func testSnapshot() *monitor.Snapshot {
	return &monitor.Snapshot{
		Session: &session.Session{
			ID:            "session-1",
			Phase:         session.PhaseAlerting,
			RemainingTime: 73.5,
			TotalDuration: 120,
			IsRunning:     true,
			FallDetected:  true,
			UpdatedAt:     time.Unix(1700000000, 0),
			LastActor: &session.Actor{
				DeviceID: "band-01",
				Wearer:   "Alice",
			},
		},
		HeartRate: 82.5,
	}
}

// TestGetSessionState maps the snapshot onto the protobuf response.
func TestGetSessionState(t *testing.T) {
	t.Parallel()

	server := NewServer(&fakeService{snapshot: testSnapshot()})

	resp, err := server.GetSessionState(context.Background(), &pb.GetSessionStateRequest{})
	require.NoError(t, err)
	require.Equal(t, "session-1", resp.GetSessionId())
	require.Equal(t, pb.SessionPhase_SESSION_PHASE_ALERTING, resp.GetPhase())
	require.InDelta(t, 73.5, resp.GetRemainingSeconds(), 1e-9)
	require.InDelta(t, 120.0, resp.GetTotalSeconds(), 1e-9)
	require.True(t, resp.GetIsRunning())
	require.True(t, resp.GetFallDetected())
	require.InDelta(t, 82.5, resp.GetHeartRateBpm(), 1e-9)
	require.Equal(t, "band-01", resp.GetLastActor().GetDeviceId())
	require.Equal(t, int64(1700000000), resp.GetUpdatedAt().AsTime().Unix())
}

// TestAcknowledgeSafe_Validation rejects missing request and actor.
func TestAcknowledgeSafe_Validation(t *testing.T) {
	t.Parallel()

	server := NewServer(&fakeService{snapshot: testSnapshot()})

	_, err := server.AcknowledgeSafe(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = server.AcknowledgeSafe(context.Background(), &pb.AcknowledgeSafeRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestAcknowledgeSafe_PassesActorAndRearm forwards request fields to the service.
func TestAcknowledgeSafe_PassesActorAndRearm(t *testing.T) {
	t.Parallel()

	svc := &fakeService{snapshot: testSnapshot()}
	server := NewServer(svc)

	resp, err := server.AcknowledgeSafe(context.Background(), &pb.AcknowledgeSafeRequest{
		Actor: &pb.WearerIdentity{DeviceId: "band-01", Wearer: "Alice"},
		Rearm: true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.True(t, svc.lastRearm)
	require.Equal(t, &session.Actor{DeviceID: "band-01", Wearer: "Alice"}, svc.lastActor)
}

// TestRearm covers validation and the happy path.
func TestRearm(t *testing.T) {
	t.Parallel()

	svc := &fakeService{snapshot: testSnapshot()}
	server := NewServer(svc)

	_, err := server.Rearm(context.Background(), &pb.RearmRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := server.Rearm(context.Background(), &pb.RearmRequest{
		Actor: &pb.WearerIdentity{DeviceId: "band-01"},
	})
	require.NoError(t, err)
	require.Equal(t, "session-1", resp.GetSessionId())
}

// TestReportMotionSample forwards the vector and maps the fall flag.
func TestReportMotionSample(t *testing.T) {
	t.Parallel()

	svc := &fakeService{snapshot: testSnapshot(), fall: true}
	server := NewServer(svc)

	_, err := server.ReportMotionSample(context.Background(), &pb.ReportMotionSampleRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := server.ReportMotionSample(context.Background(), &pb.ReportMotionSampleRequest{
		Sample: &pb.MotionSample{X: 1, Y: 2, Z: 21},
	})
	require.NoError(t, err)
	require.True(t, resp.GetFallDetected())
	require.Equal(t, session.Vector{X: 1, Y: 2, Z: 21}, svc.lastVector)
	require.Nil(t, svc.lastActor)
}

// TestServiceErrorsMapToInternal hides service failures behind codes.Internal.
func TestServiceErrorsMapToInternal(t *testing.T) {
	t.Parallel()

	svc := &fakeService{snapshot: testSnapshot(), err: errTestService}
	server := NewServer(svc)
	actor := &pb.WearerIdentity{DeviceId: "band-01"}

	_, err := server.AcknowledgeSafe(context.Background(), &pb.AcknowledgeSafeRequest{Actor: actor})
	require.Equal(t, codes.Internal, status.Code(err))

	_, err = server.Rearm(context.Background(), &pb.RearmRequest{Actor: actor})
	require.Equal(t, codes.Internal, status.Code(err))

	_, err = server.ReportMotionSample(context.Background(), &pb.ReportMotionSampleRequest{
		Sample: &pb.MotionSample{Z: 21},
	})
	require.Equal(t, codes.Internal, status.Code(err))
}
