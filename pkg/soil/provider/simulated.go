package provider

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"cropadvisor/entities"
)

// Simulated fabricates a plausible soil-health-card reading after a short
// delay. It stands in for OCR until a real extractor is configured.
type Simulated struct {
	Delay time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{Delay: delay, rnd: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))}
}

// NewSimulatedSeeded is deterministic for a given seed.
func NewSimulatedSeeded(delay time.Duration, seed uint64) *Simulated {
	return &Simulated{Delay: delay, rnd: rand.New(rand.NewPCG(seed, seed^0x5eed))}
}

func (s *Simulated) Analyze(ctx context.Context, _ entities.Artifact) (entities.SoilReading, error) {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return entities.SoilReading{}, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return entities.SoilReading{}, err
	}

	s.mu.Lock()
	r := func() float64 { return s.rnd.Float64() }
	reading := entities.SoilReading{
		PH:            entities.Float(round2(6.2 + (r()-0.5)*1.5)),
		Nitrogen:      entities.Float(round2(150 + r()*100)),
		Phosphorus:    entities.Float(round2(20 + r()*15)),
		Potassium:     entities.Float(round2(180 + r()*80)),
		OrganicMatter: entities.Float(round2(1.5 + r()*1.0)),
		Moisture:      entities.Float(round2(15 + r()*10)),
	}
	s.mu.Unlock()
	return reading, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
