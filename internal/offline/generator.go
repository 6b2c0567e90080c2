// Package offline synthesizes content locally when no remote provider is usable.
// Every operation succeeds; randomness comes from an injectable seeded source.
package offline

import (
	"math/rand"
	"sync"
	"time"

	"shulelink/internal/domain"
)

// VariationPolicy controls the "(Part N)" qualifier added once a question
// archetype has cycled through its content pack.
type VariationPolicy struct {
	// MaxVariations caps N. Zero means unbounded. Past the cap the
	// qualifier wraps back to 2 and earlier variants repeat.
	MaxVariations int
}

// Generator is safe for concurrent use.
type Generator struct {
	mu     sync.Mutex
	rng    *rand.Rand
	policy VariationPolicy
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator deterministic.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a random source directly.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

func WithVariationPolicy(p VariationPolicy) Option {
	return func(g *Generator) {
		g.policy = p
	}
}

// New creates a Generator. Without WithSeed or WithRand it is seeded from the clock.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// intn draws from the shared source under the lock.
func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

func (g *Generator) perm(n int) []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Perm(n)
}

// Float64 exposes the seeded source to callers that make their own random
// choices, keeping one seed per pipeline.
func (g *Generator) Float64() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

// Quote picks uniformly from the built-in quote table.
func (g *Generator) Quote() domain.Quote {
	q := quotes[g.intn(len(quotes))]
	q.Source = domain.TierOffline
	return q
}
