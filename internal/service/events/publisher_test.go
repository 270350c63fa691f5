package events

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/safeband/internal/domain/session"
)

// TestRedisPublisher_PublishPhaseChange verifies the event lands on the
// stream with the session snapshot.
func TestRedisPublisher_PublishPhaseChange(t *testing.T) {
	t.Parallel()

	server := miniredis.RunT(t)
	publisher := NewRedisPublisher(server.Addr(), "safeband:events")

	t.Cleanup(func() {
		require.NoError(t, publisher.Close())
	})

	ctx := context.Background()
	require.NoError(t, publisher.Ping(ctx))

	s := session.New(120, 10)
	s.ReportMotionSample(session.Vector{Z: 21})

	require.NoError(t, publisher.PublishPhaseChange(ctx, s))

	entries, err := server.Stream("safeband:events")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	values := streamValues(t, entries[0].Values)
	require.Equal(t, s.ID, values["session_id"])
	require.Equal(t, "alerting", values["phase"])
	require.Equal(t, "120", values["remaining_seconds"])
	require.Equal(t, "true", values["fall_detected"])
	require.Equal(t, "false", values["degraded"])
	require.NotEmpty(t, values["event_id"])
}

// TestNopPublisher covers the disabled-events path.
func TestNopPublisher(t *testing.T) {
	t.Parallel()

	var publisher NopPublisher

	require.NoError(t, publisher.PublishPhaseChange(context.Background(), session.New(120, 10)))
	require.NoError(t, publisher.Close())
}

// streamValues converts a flat field/value list into a map.
func streamValues(t *testing.T, flat []string) map[string]string {
	t.Helper()
	require.Zero(t, len(flat)%2)

	values := make(map[string]string, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		values[flat[i]] = flat[i+1]
	}

	return values
}
