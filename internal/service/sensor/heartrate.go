package sensor

import (
	"context"
	"math/rand"
	"time"
)

// Heart-rate simulation bounds, in beats per minute.
const (
	simulatedRestingBPM = 72.0
	simulatedMinBPM     = 45.0
	simulatedMaxBPM     = 160.0
	simulatedMaxStep    = 2.5
)

// SimulatedHeartRate generates a plausible heart-rate walk around a resting
// baseline. The daemon owns no real biometric sensor; the readings exist for
// the status display only.
type SimulatedHeartRate struct {
	// interval is the pacing between readings.
	interval time.Duration
	// rng drives the walk; seeded explicitly so tests are reproducible.
	rng *rand.Rand
}

// NewSimulatedHeartRate creates a generator emitting one reading per interval.
func NewSimulatedHeartRate(interval time.Duration, seed int64) *SimulatedHeartRate {
	return &SimulatedHeartRate{
		interval: interval,
		rng:      rand.New(rand.NewSource(seed)), //nolint:gosec // Simulation, not cryptography.
	}
}

// Run emits readings until the context is canceled.
func (s *SimulatedHeartRate) Run(ctx context.Context, emit func(bpm float64)) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	bpm := simulatedRestingBPM

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		bpm += (s.rng.Float64()*2 - 1) * simulatedMaxStep
		if bpm < simulatedMinBPM {
			bpm = simulatedMinBPM
		}

		if bpm > simulatedMaxBPM {
			bpm = simulatedMaxBPM
		}

		emit(bpm)
	}
}
