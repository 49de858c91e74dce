package agent

import (
	"math"
	"testing"

	"comboplay/internal/snapshot"
	"comboplay/pkg/card"
	"comboplay/pkg/deck"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

var (
	c1  = card.New(card.Additive, 1, 1)
	c3  = card.New(card.Multiplicative, 3, 2)
	c5  = card.New(card.Additive, 5, 3)
	c10 = card.New(card.Multiplicative, 10, 3)
	d5  = card.New(card.Divisive, 5, 2)
	d10 = card.New(card.Divisive, 10, 3)
)

type fixedRNG int

func (f fixedRNG) Intn(n int) int {
	return int(f) % n
}

func newAgent(opts Options) *Agent {
	return New(logrus.StandardLogger(), opts)
}

func TestAgent_PlayTurn_Additive(t *testing.T) {
	a := newAgent(DefaultOptions())
	hand := card.Hand{c1, c3, c5, c10}

	assert.Equal(t, card.Play{c5, c3}, a.PlayTurn(hand, 5, 0, 0))
	assert.Equal(t, card.Play{c5}, a.PlayTurn(hand, 3, 0, 0))
	assert.Equal(t, card.Play{c1}, a.PlayTurn(hand, 1, 0, 0))

	// only c1 and c3 are affordable and together they cost too much
	assert.Equal(t, card.Play{c1}, a.PlayTurn(hand, 2, 0, 0))
}

func TestAgent_PlayTurn_Multiplicative(t *testing.T) {
	a := newAgent(DefaultOptions())
	hand := card.Hand{c1, c3, c5, c10}

	assert.Equal(t, card.Play{c3, c10}, a.PlayTurn(hand, 5, 0, 2))
}

func TestAgent_PlayTurn_LengthCap(t *testing.T) {
	a := newAgent(DefaultOptions())
	hand := card.Hand{c1, c3, c5, c10}

	// [c5, c3] scores best but a deficit of 5 only allows single cards
	assert.Equal(t, []card.Play{{c5}, {c5}, {c1}, {c1}}, a.Candidates(hand, 5, 0, -5))
	assert.Equal(t, card.Play{c5}, a.PlayTurn(hand, 5, 0, -5))
}

func TestAgent_PlayTurn_Divisive(t *testing.T) {
	a := newAgent(DefaultOptions())
	hand := card.Hand{c1, c3, d5, d10}

	assert.Equal(t, []card.Play{
		{d5, d10},
		{d10, d5},
		{d10, c1},
		{d10},
		{d5, c1},
		{d5},
		{c1, c3},
		{c1},
		{c1},
	}, a.Candidates(hand, 5, 0, -20))
	assert.Equal(t, card.Play{d5, d10}, a.PlayTurn(hand, 5, 0, -20))

	// above the threshold divisive cards are never considered
	assert.Equal(t, card.Play{c1, c3}, a.PlayTurn(hand, 5, 0, -10))

	opts := DefaultOptions()
	opts.DivisiveThreshold = -30
	assert.Equal(t, card.Play{c1, c3}, newAgent(opts).PlayTurn(hand, 5, 0, -20))
}

func TestAgent_PlayTurn_Pass(t *testing.T) {
	a := newAgent(DefaultOptions())
	assert.Equal(t, card.Play{}, a.PlayTurn(card.Hand{}, 5, 0, 0))
	assert.Equal(t, card.Play{}, a.PlayTurn(card.Hand{c1, c3}, 0, 0, 0))

	opts := DefaultOptions()
	opts.CanPlay = func(play card.Play, energy int) bool {
		return false
	}
	assert.Equal(t, card.Play{}, newAgent(opts).PlayTurn(card.Hand{c1, c3, c5, c10}, 5, 0, 0))
}

func TestAgent_PlayTurn_CanPlayIsConsulted(t *testing.T) {
	opts := DefaultOptions()
	opts.CanPlay = func(play card.Play, energy int) bool {
		return len(play) == 1
	}

	a := newAgent(opts)
	assert.Equal(t, card.Play{c5}, a.PlayTurn(card.Hand{c1, c3, c5, c10}, 5, 0, 0))
}

func TestAgent_PlayTurn_CustomApply(t *testing.T) {
	opts := DefaultOptions()
	// every card is worth its cost
	opts.Apply = func(c card.Card, locked, current float64) (float64, float64) {
		return locked + float64(c.Cost), current
	}

	a := newAgent(opts)
	assert.Equal(t, card.Play{c1, c10}, a.PlayTurn(card.Hand{c1, c3, c5, c10}, 4, 0, 0))
}

func TestAgent_MaxHandSize(t *testing.T) {
	logger, hook := test.NewNullLogger()
	opts := DefaultOptions()
	opts.MaxHandSize = 2

	a := New(logger, opts)
	assert.Equal(t, card.Play{c1, c3}, a.PlayTurn(card.Hand{c1, c3, c5, c10}, 5, 0, 0))

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, "hand too large to search, ignoring extra cards", entry.Message)
		assert.Equal(t, 4, entry.Data["playable"])
		assert.Equal(t, 2, entry.Data["max"])
		assert.NotEmpty(t, entry.Data["decision"])
	}
}

func TestAgent_SelectDeck(t *testing.T) {
	first := deck.List{"plus1": 10}
	second := deck.List{"mult3": 10}

	opts := DefaultOptions()
	opts.DeckOptions = []deck.List{first, second}
	opts.RNG = fixedRNG(1)
	assert.Equal(t, second, newAgent(opts).SelectDeck())

	opts.RNG = fixedRNG(2)
	assert.Equal(t, first, newAgent(opts).SelectDeck())

	opts.Deck = deck.List{"plus5": 3}
	assert.Equal(t, deck.List{"plus5": 3}, newAgent(opts).SelectDeck())

	assert.Nil(t, newAgent(DefaultOptions()).SelectDeck())
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, -15.0, opts.DivisiveThreshold)
	assert.Equal(t, 7, opts.MaxHandSize)
}

func TestAgent_ZeroOptionsThreshold(t *testing.T) {
	hand := card.Hand{c1, c3, d5, d10}

	// without DefaultOptions the threshold is 0, so any negative current total brings in divisive plays
	a := New(nil, Options{})
	assert.Equal(t, card.Play{d10, c1}, a.PlayTurn(hand, 5, 0, -10))
	assert.Equal(t, card.Play{c1, c3}, newAgent(DefaultOptions()).PlayTurn(hand, 5, 0, -10))
}

func TestNew_Defaults(t *testing.T) {
	a := New(nil, Options{})
	assert.NotNil(t, a.logger)
	assert.NotNil(t, a.options.Apply)
	assert.NotNil(t, a.options.CanPlay)
	assert.NotNil(t, a.options.RNG)
}

func TestMaxPlayLength(t *testing.T) {
	_, ok := MaxPlayLength(0)
	assert.False(t, ok)

	_, ok = MaxPlayLength(math.Inf(-1))
	assert.False(t, ok)

	n, ok := MaxPlayLength(-9)
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	n, _ = MaxPlayLength(-8.5)
	assert.Equal(t, 1, n)

	n, _ = MaxPlayLength(-5)
	assert.Equal(t, 1, n)

	n, _ = MaxPlayLength(-0.5)
	assert.Equal(t, 1, n)

	n, _ = MaxPlayLength(-99)
	assert.Equal(t, 3, n)

	n, _ = MaxPlayLength(-20)
	assert.Equal(t, 2, n)
}

func playStrings(plays []card.Play) []string {
	s := make([]string, len(plays))
	for i, p := range plays {
		s[i] = p.String()
	}

	return s
}

func TestAgent_CandidatesSnapshot(t *testing.T) {
	a := newAgent(DefaultOptions())

	snapshot.ValidateSnapshot(t, playStrings(a.Candidates(card.Hand{c1, c3, c5, c10}, 5, 0, 0)), 0)
	snapshot.ValidateSnapshot(t, playStrings(a.Candidates(card.Hand{c1, c3, d5, d10}, 5, 0, -20)), 0)
}
