package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"comboplay/pkg/card"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrUnknownCard is returned when a deck list names a card missing from the catalog
var ErrUnknownCard = errors.New("unknown card")

// List is a deck list: how many copies of each catalog card go into the deck
type List map[string]int

// Size returns the number of cards in the list
func (l List) Size() int {
	n := 0
	for _, count := range l {
		if count > 0 {
			n += count
		}
	}

	return n
}

// Names returns the card names in sorted order
func (l List) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Deck represents a draw pile
type Deck struct {
	Cards   []card.Card `json:"cards"`
	list    List
	catalog card.Catalog
	seed    int64
	rng     *rand.Rand
}

// New returns a new deck built from the list.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(list List, catalog card.Catalog) (*Deck, error) {
	for _, name := range list.Names() {
		if _, ok := catalog.Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCard, name)
		}
	}

	d := &Deck{
		list:    list,
		catalog: catalog,
		seed:    -1,
	}

	d.buildDeck()
	return d, nil
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed)) // nolint:gosec
}

func (d *Deck) buildDeck() {
	cards := make([]card.Card, 0, d.list.Size())
	for _, name := range d.list.Names() {
		c, _ := d.catalog.Lookup(name)
		for i := 0; i < d.list[name]; i++ {
			cards = append(cards, c)
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// You can manually specify the seed, or you can leave it as 0.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck
	if len(d.Cards) != d.list.Size() || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.SetSeed(seed)

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, c := range d.Cards {
		_, _ = hash.Write([]byte(c.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a zero card.
func (d *Deck) Draw() (card.Card, error) {
	if len(d.Cards) <= 0 {
		return card.Card{}, ErrEndOfDeck
	}

	c := d.Cards[0]
	d.Cards = d.Cards[1:]

	return c, nil
}

// DrawHand draws n cards. If fewer than n cards remain, nothing is drawn and ErrEndOfDeck is returned.
func (d *Deck) DrawHand(n int) (card.Hand, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	hand := make(card.Hand, n)
	copy(hand, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return hand, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
