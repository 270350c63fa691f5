package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields and default filling for Config.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing socket.
	cfg := new(Config)

	err := Validate(cfg)
	require.Error(t, err)

	// Bad socket.
	cfg = &Config{
		ServerAddress: "bad:address",
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Okay, defaults applied.
	cfg = &Config{
		ServerAddress: "127.0.0.1:0",
	}

	err = Validate(cfg)
	require.NoError(t, err)
	require.Equal(t, DefaultTimeout, cfg.Timeout)
	require.Equal(t, DefaultStateFilename, cfg.StateFile)
	require.InEpsilon(t, DefaultFallThreshold, cfg.FallThreshold, 1e-9)
	require.Equal(t, DefaultTotalDuration, cfg.TotalDuration)
	require.Equal(t, DefaultTickStep, cfg.TickStep)
	require.Equal(t, DefaultEmergencyNumber, cfg.EmergencyNumber)
}

// TestValidate_Redis verifies the optional redis section requirements.
func TestValidate_Redis(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		ServerAddress: "127.0.0.1:0",
		Redis:         &RedisConfig{},
	}

	err := Validate(cfg)
	require.Error(t, err)

	cfg.Redis.Address = "127.0.0.1:6379"

	err = Validate(cfg)
	require.NoError(t, err)
	require.Equal(t, DefaultRedisStream, cfg.Redis.Stream)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		ServerAddress:   "127.0.0.1:50051",
		EmergencyNumber: "+1-555-0100",
		TotalDuration:   90 * time.Second,
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.ServerAddress, loaded.ServerAddress)
	require.Equal(t, cfg.EmergencyNumber, loaded.EmergencyNumber)
	require.Equal(t, 90*time.Second, loaded.TotalDuration)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}
