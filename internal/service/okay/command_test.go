package okay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/oshokin/safeband/internal/pb/v1"
)

// TestConfirmed matches the expected phase per mode.
func TestConfirmed(t *testing.T) {
	t.Parallel()

	resolved := &pb.SessionState{Phase: pb.SessionPhase_SESSION_PHASE_RESOLVED}
	monitoring := &pb.SessionState{Phase: pb.SessionPhase_SESSION_PHASE_MONITORING}

	require.True(t, confirmed(resolved, false))
	require.False(t, confirmed(resolved, true))
	require.True(t, confirmed(monitoring, true))
	require.False(t, confirmed(monitoring, false))
	require.False(t, confirmed(nil, false))
}

// TestFormatState renders phase, actor and timestamp with fallbacks.
func TestFormatState(t *testing.T) {
	t.Parallel()

	require.Equal(t, "<nil state>", formatState(nil))

	ts := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	state := &pb.SessionState{
		Phase:     pb.SessionPhase_SESSION_PHASE_RESOLVED,
		UpdatedAt: timestamppb.New(ts),
		LastActor: &pb.WearerIdentity{DeviceId: "band-01", Wearer: "Alice"},
	}

	require.Equal(t, "resolved by Alice@band-01 (2026-08-31T12:00:00Z)", formatState(state))

	bare := &pb.SessionState{Phase: pb.SessionPhase_SESSION_PHASE_ESCALATED}
	require.Equal(t, "escalated by <unknown> (<unknown>)", formatState(bare))
}
