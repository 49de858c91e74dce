package agent

import (
	"math"

	"comboplay/pkg/card"
	"comboplay/pkg/combo"
	"comboplay/pkg/deck"
	"comboplay/pkg/rules"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Agent picks the cards to play each turn
type Agent struct {
	logger  logrus.FieldLogger
	options Options
}

// New returns a new agent
func New(logger logrus.FieldLogger, opts Options) *Agent {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Agent{
		logger:  logger,
		options: opts.withDefaults(),
	}
}

// SelectDeck returns the deck list to bring to a match.
// A configured deck always wins; otherwise one of the deck options is chosen at random.
// nil is returned when there is nothing to choose from.
func (a *Agent) SelectDeck() deck.List {
	if len(a.options.Deck) > 0 {
		return a.options.Deck
	}

	if len(a.options.DeckOptions) == 0 {
		return nil
	}

	return a.options.DeckOptions[a.options.RNG.Intn(len(a.options.DeckOptions))]
}

// Candidates returns every play worth considering this turn, best first.
// The energy check is not applied here; PlayTurn does that.
func (a *Agent) Candidates(hand card.Hand, energy int, locked, current float64) []card.Play {
	return a.candidates(a.logger, hand, energy, locked, current)
}

func (a *Agent) candidates(log logrus.FieldLogger, hand card.Hand, energy int, locked, current float64) []card.Play {
	playable := rules.Affordable(hand, energy)
	if limit := a.options.MaxHandSize; limit > 0 && len(playable) > limit {
		log.WithFields(logrus.Fields{
			"playable": len(playable),
			"max":      limit,
		}).Warn("hand too large to search, ignoring extra cards")
		playable = playable[:limit]
	}

	score := rules.SimulatedTotalWith(a.options.Apply, locked, current)

	op := card.Additive
	if current > 0 {
		op = card.Multiplicative
	}

	plays := combo.Possible(score, op, energy, playable)
	if current < a.options.DivisiveThreshold {
		plays = append(plays, combo.Possible(score, card.Divisive, energy, playable)...)
		combo.SortByScore(plays, score)
	}

	log.WithFields(logrus.Fields{
		"operator":   op.Name(),
		"playable":   len(playable),
		"candidates": len(plays),
	}).Debug("enumerated plays")

	if maxLen, ok := MaxPlayLength(rules.Total(locked, current)); ok {
		plays = filterLength(plays, maxLen)
	}

	return plays
}

// PlayTurn returns the best play for the turn, or an empty play to pass
func (a *Agent) PlayTurn(hand card.Hand, energy int, locked, current float64) card.Play {
	log := a.logger.WithFields(logrus.Fields{
		"decision": uuid.New().String(),
		"energy":   energy,
		"locked":   locked,
		"current":  current,
	})

	for _, play := range a.candidates(log, hand, energy, locked, current) {
		if a.options.CanPlay(play, energy) {
			log.WithField("play", play.String()).Debug("playing")
			return play
		}
	}

	log.Debug("nothing playable, passing")
	return card.Play{}
}

// MaxPlayLength returns how many cards a play may hold when the combined total is negative.
// Small deficits are not worth long plays: the cap is log10(1-total)+1, so it grows with the
// number of digits in the deficit. The second return value is false when no cap applies.
func MaxPlayLength(total float64) (int, bool) {
	if total >= 0 || math.IsInf(total, -1) || math.IsNaN(total) {
		return 0, false
	}

	n := 1
	for math.Pow(10, float64(n)) <= 1-total {
		n++
	}

	return n, true
}

func filterLength(plays []card.Play, maxLen int) []card.Play {
	filtered := make([]card.Play, 0, len(plays))
	for _, p := range plays {
		if len(p) <= maxLen {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
