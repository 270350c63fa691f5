package sensor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/safeband/internal/domain/session"
)

// writeReplayFile writes a JSONL recording and returns its path.
func writeReplayFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "motion.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

// TestReplaySource_PlaysRecording verifies samples arrive in file order.
func TestReplaySource_PlaysRecording(t *testing.T) {
	t.Parallel()

	path := writeReplayFile(t, `{"x":0,"y":0,"z":19.6}
{"x":1,"y":2,"z":3}

{"x":0,"y":0,"z":21}
`)

	source := NewReplaySource(path, time.Millisecond, false)

	var samples []session.Vector

	err := source.Run(context.Background(), func(v session.Vector) {
		samples = append(samples, v)
	})
	require.NoError(t, err)
	require.Equal(t, []session.Vector{
		{Z: 19.6},
		{X: 1, Y: 2, Z: 3},
		{Z: 21},
	}, samples)
}

// TestReplaySource_Loop verifies loop mode repeats the recording until cancel.
func TestReplaySource_Loop(t *testing.T) {
	t.Parallel()

	path := writeReplayFile(t, `{"x":0,"y":0,"z":19.6}
`)

	ctx, cancel := context.WithCancel(context.Background())
	source := NewReplaySource(path, time.Millisecond, true)

	var count int

	err := source.Run(ctx, func(session.Vector) {
		count++
		if count >= 3 {
			cancel()
		}
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, count, 3)
}

// TestReplaySource_Errors covers the missing file and malformed line cases.
func TestReplaySource_Errors(t *testing.T) {
	t.Parallel()

	missing := NewReplaySource(filepath.Join(t.TempDir(), "missing.jsonl"), time.Millisecond, false)
	require.Error(t, missing.Run(context.Background(), func(session.Vector) {}))

	malformed := NewReplaySource(writeReplayFile(t, "not json\n"), time.Millisecond, false)
	require.Error(t, malformed.Run(context.Background(), func(session.Vector) {}))
}

// TestSimulatedHeartRate_StaysInBounds checks readings remain plausible.
func TestSimulatedHeartRate_StaysInBounds(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	source := NewSimulatedHeartRate(time.Millisecond, 42)

	var readings []float64

	err := source.Run(ctx, func(bpm float64) {
		readings = append(readings, bpm)
		if len(readings) >= 50 {
			cancel()
		}
	})
	require.NoError(t, err)
	require.Len(t, readings, 50)

	for _, bpm := range readings {
		require.GreaterOrEqual(t, bpm, simulatedMinBPM)
		require.LessOrEqual(t, bpm, simulatedMaxBPM)
	}
}
