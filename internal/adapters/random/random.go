package random

import (
	"math/rand/v2"

	"github.com/alejandrodnm/betplay/internal/domain"
)

// Uniform draws match outcomes uniformly — every outcome stays reachable.
type Uniform struct{}

// NewUniform creates the production outcome source.
func NewUniform() Uniform { return Uniform{} }

// Draw picks one of the three outcomes with equal probability.
func (Uniform) Draw() domain.Outcome {
	return domain.Outcomes[rand.IntN(len(domain.Outcomes))]
}

// Fixed replays a predetermined outcome sequence. For tests that need exact
// settlement math; wraps around when exhausted.
type Fixed struct {
	seq []domain.Outcome
	i   int
}

// NewFixed creates a deterministic source. Panics on an empty sequence.
func NewFixed(seq ...domain.Outcome) *Fixed {
	if len(seq) == 0 {
		panic("random.NewFixed: empty sequence")
	}
	return &Fixed{seq: seq}
}

// Draw returns the next outcome in the sequence.
func (f *Fixed) Draw() domain.Outcome {
	out := f.seq[f.i%len(f.seq)]
	f.i++
	return out
}
