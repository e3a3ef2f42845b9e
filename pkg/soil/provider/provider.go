// Package provider turns uploaded soil reports into structured readings.
// None of this is part of the scoring core; the recommendation service only
// sees the Provider interface.
package provider

import (
	"context"
	"errors"

	"cropadvisor/entities"
)

var (
	ErrUnsupported = errors.New("unsupported soil report format")
	ErrNoReadings  = errors.New("no soil measurements found in report")
)

type Provider interface {
	Analyze(ctx context.Context, a entities.Artifact) (entities.SoilReading, error)
}

// Func adapts a plain function to Provider.
type Func func(ctx context.Context, a entities.Artifact) (entities.SoilReading, error)

func (f Func) Analyze(ctx context.Context, a entities.Artifact) (entities.SoilReading, error) {
	return f(ctx, a)
}

// Fixed always returns the same reading; used for manual entry.
func Fixed(s entities.SoilReading) Provider {
	return Func(func(ctx context.Context, _ entities.Artifact) (entities.SoilReading, error) {
		if err := ctx.Err(); err != nil {
			return entities.SoilReading{}, err
		}
		return s, nil
	})
}
