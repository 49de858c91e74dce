package agent

import (
	"comboplay/internal/rng"
	"comboplay/pkg/deck"
	"comboplay/pkg/rules"
)

// Options are options for creating a new agent
type Options struct {
	// DivisiveThreshold is the current total below which divisive plays are also searched.
	// DefaultOptions sets -15; the zero value searches them whenever the current total is negative.
	DivisiveThreshold float64

	// MaxHandSize caps the affordable cards searched per turn, 0 searches the whole hand.
	// DefaultOptions sets 7: seven cards of one kind already give 13,699 plays and ten give 9,864,100.
	MaxHandSize int

	// Deck is used as-is when set, otherwise SelectDeck picks one of DeckOptions
	Deck        deck.List
	DeckOptions []deck.List

	Apply   rules.ApplyFunc    // Default: rules.ApplyCard
	CanPlay rules.PlayableFunc // Default: rules.CanPlay
	RNG     rng.Generator      // Default: rng.Crypto
}

// DefaultOptions returns the default options for an agent
func DefaultOptions() Options {
	return Options{
		DivisiveThreshold: -15,
		MaxHandSize:       7,
		Apply:             rules.ApplyCard,
		CanPlay:           rules.CanPlay,
		RNG:               rng.Crypto{},
	}
}

func (o Options) withDefaults() Options {
	if o.Apply == nil {
		o.Apply = rules.ApplyCard
	}

	if o.CanPlay == nil {
		o.CanPlay = rules.CanPlay
	}

	if o.RNG == nil {
		o.RNG = rng.Crypto{}
	}

	return o
}
