package sensor

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/oshokin/safeband/internal/domain/session"
)

// replaySample is one line of the replay file.
type replaySample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ReplaySource feeds accelerometer samples from a JSONL recording, one sample
// per line, paced at a fixed interval. With Loop enabled the recording
// repeats until the context is canceled, which approximates a live sensor.
type ReplaySource struct {
	// path is the location of the JSONL recording.
	path string
	// interval is the pacing between samples.
	interval time.Duration
	// loop restarts the recording at EOF.
	loop bool
}

// NewReplaySource creates a replay source over the given recording.
func NewReplaySource(path string, interval time.Duration, loop bool) *ReplaySource {
	return &ReplaySource{
		path:     path,
		interval: interval,
		loop:     loop,
	}
}

// Run streams the recording through emit. It returns nil when the recording
// ends (or the context is canceled in loop mode) and an error when the file
// cannot be read or parsed.
func (s *ReplaySource) Run(ctx context.Context, emit func(v session.Vector)) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.replayOnce(ctx, ticker, emit); err != nil {
			return err
		}

		if !s.loop {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}
}

// replayOnce plays the recording a single time.
func (s *ReplaySource) replayOnce(
	ctx context.Context,
	ticker *time.Ticker,
	emit func(v session.Vector),
) error {
	file, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open replay file: %w", err)
	}
	defer file.Close() //nolint:errcheck // Read-only file.

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var sample replaySample
		if err = json.Unmarshal(line, &sample); err != nil {
			return fmt.Errorf("decode replay sample: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		emit(session.Vector{X: sample.X, Y: sample.Y, Z: sample.Z})
	}

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("read replay file: %w", err)
	}

	return nil
}
