package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/tinkergames/tinkerdeck/internal/dependencies/mocks"
	"github.com/tinkergames/tinkerdeck/internal/dependencies/random"
)

type testItem struct {
	id string
}

func (t *testItem) UniqueID() string {
	return t.id
}

func item(id string) *testItem {
	return &testItem{id: id}
}

func ids(items []*testItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}

func sortedIDs(items []*testItem) []string {
	out := ids(items)
	sort.Strings(out)
	return out
}

type DeckSuite struct {
	suite.Suite
	random *mocks.MockRandom
	deck   *Deck[*testItem]
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckSuite))
}

func (s *DeckSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.deck = New[*testItem](s.random)
}

func (s *DeckSuite) TestAddToDeckTopAndBottom() {
	s.deck.AddToDeck(item("a"), PositionBottom)
	s.deck.AddToDeck(item("b"), PositionBottom)
	s.deck.AddToDeck(item("c"), PositionTop)

	s.Equal([]string{"c", "a", "b"}, ids(s.deck.DrawPile()))
}

func (s *DeckSuite) TestDrawReturnsFrontInOrder() {
	s.deck.AddToDeck(item("a"), PositionBottom)
	s.deck.AddToDeck(item("b"), PositionBottom)
	s.deck.AddToDeck(item("c"), PositionBottom)

	drawn := s.deck.Draw(2)

	s.Equal([]string{"a", "b"}, ids(drawn))
	s.Equal([]string{"c"}, ids(s.deck.DrawPile()))
}

func (s *DeckSuite) TestPartialDraw() {
	s.deck.AddToDeck(item("a"), PositionBottom)
	s.deck.AddToDeck(item("b"), PositionBottom)

	drawn := s.deck.Draw(5)

	s.Len(drawn, 2)
	s.Equal(0, s.deck.DrawPileSize())
}

func (s *DeckSuite) TestDrawFromEmptyPile() {
	s.Empty(s.deck.Draw(3))
}

func (s *DeckSuite) TestDrawDoesNotRecycleDiscard() {
	s.deck.AddToDeck(item("a"), PositionBottom)
	s.deck.Discard(item("b"))

	drawn := s.deck.Draw(2)

	s.Equal([]string{"a"}, ids(drawn))
	s.Equal(1, s.deck.DiscardPileSize())
}

func (s *DeckSuite) TestDiscardAppendsToTop() {
	s.deck.Discard(item("a"))
	s.deck.Discard(item("b"))

	s.Equal([]string{"a", "b"}, ids(s.deck.DiscardPile()))
}

func (s *DeckSuite) TestShuffleIsPermutation() {
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		s.deck.AddToDeck(item(id), PositionBottom)
	}
	before := sortedIDs(s.deck.DrawPile())

	s.random.QueueIntn(3, 1, 0, 1)
	s.deck.Shuffle()

	s.Equal(before, sortedIDs(s.deck.DrawPile()))
	s.Equal(5, s.deck.DrawPileSize())
}

func (s *DeckSuite) TestShuffleDeterministicWithPinnedRandom() {
	s.deck.AddToDeck(item("a"), PositionBottom)
	s.deck.AddToDeck(item("b"), PositionBottom)
	s.deck.AddToDeck(item("c"), PositionBottom)

	// Fisher-Yates visits i=2 then i=1 with the queued js
	s.random.QueueIntn(0, 0)
	s.deck.Shuffle()

	s.Equal([]string{"b", "c", "a"}, ids(s.deck.DrawPile()))
}

func (s *DeckSuite) TestRecycleDiscardRoundTrip() {
	s.deck.Discard(item("a"))
	s.deck.Discard(item("b"))
	s.deck.Discard(item("c"))

	s.deck.RecycleDiscard()

	s.Equal(0, s.deck.DiscardPileSize())
	s.Equal(3, s.deck.DrawPileSize())

	drawn := s.deck.Draw(3)
	s.Equal([]string{"a", "b", "c"}, sortedIDs(drawn))
}

func (s *DeckSuite) TestConservationAcrossOperations() {
	for _, id := range []string{"a", "b", "c", "d"} {
		s.deck.AddToDeck(item(id), PositionBottom)
	}

	held := s.deck.Draw(2)
	s.deck.Discard(held[0])
	s.deck.Shuffle()
	s.deck.RecycleDiscard()
	s.deck.AddToDeck(held[1], PositionTop)

	all := append(s.deck.DrawPile(), s.deck.DiscardPile()...)
	s.Equal([]string{"a", "b", "c", "d"}, sortedIDs(all))
}

// TestShuffleUniformity drives the real randomness source through many
// shuffles and checks every item lands in every position at roughly equal
// frequency. Bounds are wide enough that a correct shuffle fails with
// negligible probability.
func TestShuffleUniformity(t *testing.T) {
	const trials = 2000
	items := []string{"a", "b", "c", "d"}
	counts := make(map[string][]int, len(items))
	for _, id := range items {
		counts[id] = make([]int, len(items))
	}

	rnd := random.New()
	for trial := 0; trial < trials; trial++ {
		d := New[*testItem](rnd)
		for _, id := range items {
			d.AddToDeck(item(id), PositionBottom)
		}
		d.Shuffle()
		for pos, it := range d.DrawPile() {
			counts[it.id][pos]++
		}
	}

	// Expected count per cell is trials/4 = 500; allow a generous band
	for id, positions := range counts {
		for pos, count := range positions {
			assert.Greater(t, count, 350, "item %s at position %d", id, pos)
			assert.Less(t, count, 650, "item %s at position %d", id, pos)
		}
	}
}
