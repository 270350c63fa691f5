package status

import (
	"testing"

	"github.com/stretchr/testify/require"

	pb "github.com/oshokin/safeband/internal/pb/v1"
)

// TestFormatState covers the display line composition.
func TestFormatState(t *testing.T) {
	t.Parallel()

	require.Equal(t, "<nil state>", FormatState(nil))

	calm := &pb.SessionState{
		Phase:            pb.SessionPhase_SESSION_PHASE_MONITORING,
		RemainingSeconds: 120,
		HeartRateBpm:     72.4,
	}
	require.Equal(t, "phase=monitoring remaining=120.0s heart_rate=72bpm", FormatState(calm))

	incident := &pb.SessionState{
		Phase:            pb.SessionPhase_SESSION_PHASE_ALERTING,
		RemainingSeconds: 73.52,
		FallDetected:     true,
	}
	require.Equal(t, "phase=alerting remaining=73.5s fall_detected", FormatState(incident))

	escalated := &pb.SessionState{
		Phase:        pb.SessionPhase_SESSION_PHASE_ESCALATED,
		FallDetected: true,
		ContactShown: true,
		Degraded:     true,
	}
	require.Equal(t, "phase=escalated remaining=0.0s fall_detected contact_shown degraded", FormatState(escalated))
}
