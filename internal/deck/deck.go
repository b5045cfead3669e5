package deck

import (
	"github.com/tinkergames/tinkerdeck/internal/dependencies/random"
)

// Identifiable is the only requirement the deck engine places on its
// items: a stable identity that survives zone moves
type Identifiable interface {
	UniqueID() string
}

// Position selects which end of the draw pile an item is inserted at
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
)

// Deck owns two ordered zones, a draw pile and a discard pile, and moves
// items between them and the caller. The front of the draw pile is the next
// item to draw; the end of the discard pile is its top. Every operation
// except Draw conserves the total item count across the two zones.
type Deck[T Identifiable] struct {
	random      random.Random
	drawPile    []T
	discardPile []T
}

// New creates an empty deck using the given randomness source for shuffles
func New[T Identifiable](rnd random.Random) *Deck[T] {
	return &Deck[T]{random: rnd}
}

// AddToDeck inserts an item into the draw pile at the given end
func (d *Deck[T]) AddToDeck(item T, pos Position) {
	if pos == PositionTop {
		d.drawPile = append([]T{item}, d.drawPile...)
		return
	}
	d.drawPile = append(d.drawPile, item)
}

// Draw removes up to count items from the front of the draw pile and
// returns them in draw order. A short pile yields a partial result and an
// empty pile yields an empty slice; the discard pile is never recycled
// implicitly.
func (d *Deck[T]) Draw(count int) []T {
	if count <= 0 || len(d.drawPile) == 0 {
		return nil
	}
	if count > len(d.drawPile) {
		count = len(d.drawPile)
	}
	drawn := make([]T, count)
	copy(drawn, d.drawPile[:count])
	d.drawPile = append(d.drawPile[:0:0], d.drawPile[count:]...)
	return drawn
}

// Discard appends an item to the top of the discard pile. The item must not
// already be tracked in either pile; that is a caller bug, not a checked
// condition.
func (d *Deck[T]) Discard(item T) {
	d.discardPile = append(d.discardPile, item)
}

// Shuffle applies a uniform Fisher-Yates permutation to the draw pile
func (d *Deck[T]) Shuffle() {
	for i := len(d.drawPile) - 1; i > 0; i-- {
		j := d.random.Intn(i + 1)
		d.drawPile[i], d.drawPile[j] = d.drawPile[j], d.drawPile[i]
	}
}

// RecycleDiscard moves every discarded item back into the draw pile and
// shuffles. This is the sole path by which discarded items return to
// circulation.
func (d *Deck[T]) RecycleDiscard() {
	d.drawPile = append(d.drawPile, d.discardPile...)
	d.discardPile = nil
	d.Shuffle()
}

// DrawPileSize returns the number of items awaiting draw
func (d *Deck[T]) DrawPileSize() int {
	return len(d.drawPile)
}

// DiscardPileSize returns the number of discarded items
func (d *Deck[T]) DiscardPileSize() int {
	return len(d.discardPile)
}

// DrawPile returns a copy of the draw pile, front first
func (d *Deck[T]) DrawPile() []T {
	out := make([]T, len(d.drawPile))
	copy(out, d.drawPile)
	return out
}

// DiscardPile returns a copy of the discard pile, bottom first
func (d *Deck[T]) DiscardPile() []T {
	out := make([]T, len(d.discardPile))
	copy(out, d.discardPile)
	return out
}
