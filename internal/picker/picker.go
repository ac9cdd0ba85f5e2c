// Package picker draws quiz questions from a fact source.
package picker

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/muniquiz/internal/facts"
)

// Picker selects facts uniformly at random.
type Picker struct {
	rnd *rand.Rand
}

// New returns a Picker seeded with the current time.
func New() *Picker {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Picker with a fixed seed, for reproducible sessions.
func NewSeeded(seed int64) *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly chosen fact. src must not be empty.
func (p *Picker) Pick(src facts.Source) facts.Fact {
	return src.At(p.rnd.Intn(src.Len()))
}
