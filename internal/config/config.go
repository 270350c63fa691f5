package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// RedisConfig holds optional Redis Streams settings for escalation events.
type RedisConfig struct {
	// Address is the Redis server address (host:port).
	Address string `yaml:"address"`
	// Stream is the Redis stream key escalation events are appended to.
	Stream string `yaml:"stream"`
}

// Config holds settings shared by the safeband binaries.
type Config struct {
	// ServerAddress is the gRPC server address for safety-check connections.
	ServerAddress string `yaml:"server_addr"`
	// StateFile is the path to the JSON file storing the session snapshot.
	StateFile string `yaml:"state_file"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`

	// DeviceID identifies this wearable; defaults to the hostname at runtime.
	DeviceID string `yaml:"device_id"`
	// Wearer is the display name of the person wearing the device.
	Wearer string `yaml:"wearer"`

	// FallThreshold is the halved acceleration magnitude that counts as a fall.
	FallThreshold float64 `yaml:"fall_threshold"`
	// TotalDuration is the countdown window between fall and escalation.
	TotalDuration time.Duration `yaml:"total_duration"`
	// TickStep is the countdown decrement interval.
	TickStep time.Duration `yaml:"tick_step"`
	// ContactDelay is how long an escalation waits before advancing to the
	// emergency-contact display stage.
	ContactDelay time.Duration `yaml:"contact_delay"`
	// SensorStallWindow marks the session degraded when no motion sample
	// arrives within it while monitoring.
	SensorStallWindow time.Duration `yaml:"sensor_stall_window"`

	// EmergencyNumber is dialed exactly once per escalation.
	EmergencyNumber string `yaml:"emergency_number"`
	// DialCommand is an optional executable invoked with the emergency number.
	DialCommand string `yaml:"dial_command"`
	// AlarmCommand is an optional executable starting the alarm sound.
	AlarmCommand string `yaml:"alarm_command"`
	// AlarmStopCommand is an optional executable stopping the alarm sound.
	AlarmStopCommand string `yaml:"alarm_stop_command"`
	// DisplayCommand is an optional executable toggling keep-display-awake.
	DisplayCommand string `yaml:"display_command"`

	// MotionReplayFile is an optional JSONL file replayed as the motion source.
	MotionReplayFile string `yaml:"motion_replay_file"`
	// MotionSampleInterval is the replay delivery interval (~60Hz by default).
	MotionSampleInterval time.Duration `yaml:"motion_sample_interval"`
	// HeartRateInterval is the cadence of simulated heart-rate observations.
	HeartRateInterval time.Duration `yaml:"heart_rate_interval"`

	// Redis enables publishing escalation events to a Redis stream when set.
	Redis *RedisConfig `yaml:"redis,omitempty"`
}

const (
	// DefaultConfigFilename is the default filename for connection settings.
	DefaultConfigFilename = "safeband-settings.yaml"

	// DefaultStateFilename is the default filename for the session snapshot JSON.
	DefaultStateFilename = "safeband-session.json"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// DefaultFallThreshold is the halved magnitude a fall must exceed.
	DefaultFallThreshold = 10.0

	// DefaultTotalDuration is the countdown window before escalation.
	DefaultTotalDuration = 120 * time.Second

	// DefaultTickStep is the countdown decrement interval.
	DefaultTickStep = 100 * time.Millisecond

	// DefaultContactDelay is the pause before the contact-display stage.
	DefaultContactDelay = 5 * time.Second

	// DefaultSensorStallWindow is the motion-source watchdog window.
	DefaultSensorStallWindow = 2 * time.Second

	// DefaultEmergencyNumber is the fallback emergency contact number.
	DefaultEmergencyNumber = "112"

	// DefaultMotionSampleInterval approximates a 60Hz accelerometer.
	DefaultMotionSampleInterval = 16 * time.Millisecond

	// DefaultHeartRateInterval is the cadence of heart-rate observations.
	DefaultHeartRateInterval = time.Second

	// DefaultRedisStream is the stream key for escalation events.
	DefaultRedisStream = "safeband:events"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
	// errRedisAddressRequired is returned when the redis section lacks an address.
	errRedisAddressRequired = errors.New("redis address must be provided")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields
// and fills missing values with defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	applyDefaults(cfg)

	if cfg.Redis != nil {
		if cfg.Redis.Address == "" {
			return errRedisAddressRequired
		}

		if cfg.Redis.Stream == "" {
			cfg.Redis.Stream = DefaultRedisStream
		}
	}

	return nil
}

// applyDefaults fills zero values with the documented defaults.
func applyDefaults(cfg *Config) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.StateFile == "" {
		cfg.StateFile = DefaultStateFilename
	}

	if cfg.FallThreshold <= 0 {
		cfg.FallThreshold = DefaultFallThreshold
	}

	if cfg.TotalDuration <= 0 {
		cfg.TotalDuration = DefaultTotalDuration
	}

	if cfg.TickStep <= 0 {
		cfg.TickStep = DefaultTickStep
	}

	if cfg.ContactDelay <= 0 {
		cfg.ContactDelay = DefaultContactDelay
	}

	if cfg.SensorStallWindow <= 0 {
		cfg.SensorStallWindow = DefaultSensorStallWindow
	}

	if cfg.EmergencyNumber == "" {
		cfg.EmergencyNumber = DefaultEmergencyNumber
	}

	if cfg.MotionSampleInterval <= 0 {
		cfg.MotionSampleInterval = DefaultMotionSampleInterval
	}

	if cfg.HeartRateInterval <= 0 {
		cfg.HeartRateInterval = DefaultHeartRateInterval
	}
}
