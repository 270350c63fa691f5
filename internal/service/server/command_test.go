package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/safeband/internal/config"
	"github.com/oshokin/safeband/internal/service/alert"
	"github.com/oshokin/safeband/internal/service/events"
)

// TestResolveListenAddress covers override, config extraction, and error cases.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	addr, err := resolveListenAddress("server.example.com:9090", "")
	require.NoError(t, err)
	require.Equal(t, ":9090", addr)

	addr, err = resolveListenAddress("server.example.com:9090", ":7000")
	require.NoError(t, err)
	require.Equal(t, ":7000", addr)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("no-port-here", "")
	require.Error(t, err)
}

// TestBuildNotifierAndDialer picks exec sinks only when commands exist.
func TestBuildNotifierAndDialer(t *testing.T) {
	t.Parallel()

	bare := &config.Config{}
	require.IsType(t, &alert.LogNotifier{}, buildNotifier(bare))
	require.IsType(t, &alert.LogDialer{}, buildDialer(bare))

	configured := &config.Config{
		AlarmCommand: "aplay alarm.wav",
		DialCommand:  "dial {number}",
	}
	require.IsType(t, &alert.ExecNotifier{}, buildNotifier(configured))
	require.IsType(t, &alert.ExecDialer{}, buildDialer(configured))
}

// TestBuildPublisher_Disabled returns the no-op publisher without Redis config.
func TestBuildPublisher_Disabled(t *testing.T) {
	t.Parallel()

	publisher, err := buildPublisher(context.Background(), &config.Config{})
	require.NoError(t, err)
	require.IsType(t, events.NopPublisher{}, publisher)
}

// TestMonitorOptions maps configuration knobs one-to-one.
func TestMonitorOptions(t *testing.T) {
	t.Parallel()

	settings := &config.Config{
		FallThreshold:     12.5,
		TotalDuration:     90 * time.Second,
		TickStep:          50 * time.Millisecond,
		ContactDelay:      7 * time.Second,
		SensorStallWindow: 3 * time.Second,
		EmergencyNumber:   "911",
	}

	opts := monitorOptions(settings)
	require.InDelta(t, 12.5, opts.FallThreshold, 1e-12)
	require.Equal(t, 90*time.Second, opts.TotalDuration)
	require.Equal(t, 50*time.Millisecond, opts.TickStep)
	require.Equal(t, 7*time.Second, opts.ContactDelay)
	require.Equal(t, 3*time.Second, opts.SensorStallWindow)
	require.Equal(t, "911", opts.EmergencyNumber)
}
