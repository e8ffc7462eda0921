// Package allocator picks the (base name, format) pairs of a generation run.
package allocator

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/hailam/doccraft/internal/ports"
	"github.com/hailam/doccraft/internal/vocabulary"
)

var (
	ErrInvalidCount  = errors.New("count must be positive")
	ErrNoFormats     = errors.New("no formats requested")
	ErrNameExhausted = errors.New("insufficient unique names")
)

// Allocator hands out base names without repetition within one Allocate call.
type Allocator struct {
	vocab *vocabulary.Vocabulary
	rng   *rand.Rand
}

// New returns an Allocator drawing from vocab using rng. A nil rng gets a
// randomly seeded source.
func New(vocab *vocabulary.Vocabulary, rng *rand.Rand) *Allocator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Allocator{vocab: vocab, rng: rng}
}

// Allocate returns count pairs with pairwise distinct base names. The
// vocabulary is shuffled once and consumed in order; each format is drawn
// uniformly from formats.
func (a *Allocator) Allocate(count int, formats []ports.FileType) ([]ports.Allocation, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if len(formats) == 0 {
		return nil, ErrNoFormats
	}
	if count > a.vocab.Len() {
		return nil, fmt.Errorf("%w: requested %d files but the vocabulary has %d names", ErrNameExhausted, count, a.vocab.Len())
	}

	names := a.vocab.Names()
	a.rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	out := make([]ports.Allocation, count)
	for i := range out {
		out[i] = ports.Allocation{
			BaseName: names[i],
			Format:   formats[a.rng.IntN(len(formats))],
		}
	}
	return out, nil
}
