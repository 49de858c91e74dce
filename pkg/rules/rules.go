// Package rules simulates how cards change the locked and current totals.
// Nothing here mutates game state; every function returns new values.
package rules

import (
	"comboplay/pkg/card"
)

// Scorer ranks a candidate play. Higher is better.
type Scorer func(play card.Play) float64

// ApplyFunc simulates playing a single card against the locked and current totals
type ApplyFunc func(c card.Card, locked, current float64) (newLocked, newCurrent float64)

// PlayableFunc reports whether a play can be afforded with the energy available
type PlayableFunc func(play card.Play, energy int) bool

// ApplyCard simulates playing c.
// An additive card locks in the current term and starts a new one; multiplicative and
// divisive cards scale the current term.
func ApplyCard(c card.Card, locked, current float64) (float64, float64) {
	switch c.Operator {
	case card.Additive:
		return locked + current, float64(c.Magnitude)
	case card.Multiplicative:
		return locked, current * float64(c.Magnitude)
	case card.Divisive:
		if c.Magnitude == 0 {
			return locked, current
		}

		return locked, current / float64(c.Magnitude)
	default:
		return locked, current
	}
}

// Total returns the combined value of both terms
func Total(locked, current float64) float64 {
	return locked + current
}

// Simulate applies every card of the play in order and returns the resulting terms
func Simulate(apply ApplyFunc, play card.Play, locked, current float64) (float64, float64) {
	if apply == nil {
		apply = ApplyCard
	}

	for _, c := range play {
		locked, current = apply(c, locked, current)
	}

	return locked, current
}

// SimulatedTotal returns a Scorer that ranks a play by the combined total after playing it
// from the given starting terms
func SimulatedTotal(locked, current float64) Scorer {
	return SimulatedTotalWith(ApplyCard, locked, current)
}

// SimulatedTotalWith is SimulatedTotal with a custom card effect
func SimulatedTotalWith(apply ApplyFunc, locked, current float64) Scorer {
	return func(play card.Play) float64 {
		return Total(Simulate(apply, play, locked, current))
	}
}

// Affordable returns the cards in the hand that could each be played with the energy available
func Affordable(hand card.Hand, energy int) card.Hand {
	return hand.Filter(func(c card.Card) bool {
		return c.Cost <= energy
	})
}

// CanPlay returns true if the whole play can be paid for with the energy available
func CanPlay(play card.Play, energy int) bool {
	return play.TotalCost() <= energy
}
