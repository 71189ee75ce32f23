package shuffle

import (
	"slices"

	"github.com/lox/mersenne/mt64"
)

// Deck is a shuffled sequence of items dealt from the top.
type Deck struct {
	items []string
	next  int
	rng   *mt64.Generator // random source for deterministic shuffling
}

// NewDeck creates a deck holding a copy of items and shuffles it with rng.
func NewDeck(items []string, rng *mt64.Generator) (*Deck, error) {
	d := &Deck{
		items: append([]string(nil), items...),
		rng:   rng,
	}
	if err := d.Shuffle(); err != nil {
		return nil, err
	}
	return d, nil
}

// Shuffle reshuffles every item and returns all of them to the deck.
func (d *Deck) Shuffle() error {
	d.next = 0
	return Shuffle(d.rng, d.items)
}

// Deal deals n items from the deck, or nil if fewer than n remain. The
// returned slice is a copy and is not affected by later shuffles.
func (d *Deck) Deal(n int) []string {
	if n < 0 || d.next+n > len(d.items) {
		return nil
	}
	items := slices.Clone(d.items[d.next : d.next+n])
	d.next += n
	return items
}

// DealOne deals a single item from the deck
func (d *Deck) DealOne() (string, bool) {
	if d.next >= len(d.items) {
		return "", false
	}
	item := d.items[d.next]
	d.next++
	return item, true
}

// Reset resets and reshuffles the deck
func (d *Deck) Reset() error {
	return d.Shuffle()
}

// Remaining returns the number of items left in the deck
func (d *Deck) Remaining() int {
	return len(d.items) - d.next
}
