package sequence

import "math/rand"

// DefaultSeed is the fixed seed used by the CLI. Generation is for
// reproducibility, not security.
const DefaultSeed int64 = 0

// DefaultMaxSize bounds a single generation request. Requests beyond the
// limit return a recoverable SIZE_LIMIT error instead of letting the
// runtime abort on the allocation.
const DefaultMaxSize = 1 << 31

// Generator produces deterministic bounded integer sequences.
//
// Each Generator owns its own rand source; there is no process-wide
// generator state to reseed, so independent Generators never interfere.
// A single Generator is not safe for concurrent Generate calls - use one
// per goroutine.
type Generator struct {
	seed int64
	rng  *rand.Rand

	// MaxSize bounds a single request. Zero means DefaultMaxSize.
	MaxSize int
}

// New creates a Generator with the given seed.
func New(seed int64) *Generator {
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate returns a new sequence of exactly size elements, each in
// [0, size). The source is reset to the generator's seed first, so equal
// sizes always yield equal output, regardless of prior calls.
func (g *Generator) Generate(size int) ([]int64, error) {
	if size < 1 {
		return nil, NewInvalidSizeError(size)
	}
	limit := g.MaxSize
	if limit == 0 {
		limit = DefaultMaxSize
	}
	if size > limit {
		return nil, NewSizeLimitError(size, limit)
	}

	g.rng.Seed(g.seed)

	seq := make([]int64, size)
	for i := range seq {
		seq[i] = g.rng.Int63n(int64(size))
	}
	return seq, nil
}
