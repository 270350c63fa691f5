package sensor

import (
	"context"

	"github.com/oshokin/safeband/internal/domain/session"
)

// MotionSource delivers 3-axis acceleration samples until the context is
// canceled or the source is exhausted.
type MotionSource interface {
	Run(ctx context.Context, emit func(v session.Vector)) error
}

// HeartRateSource delivers heart-rate observations in beats per minute.
type HeartRateSource interface {
	Run(ctx context.Context, emit func(bpm float64)) error
}
