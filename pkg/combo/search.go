package combo

import (
	"sort"

	"comboplay/pkg/card"
	"comboplay/pkg/rules"

	"gonum.org/v1/gonum/stat/combin"
)

// pairing is one choice of additive cards and other cards to be ordered into plays
type pairing struct {
	additive []card.Card
	other    []card.Card
}

func (p pairing) cost() int {
	return card.TotalCost(p.additive) + card.TotalCost(p.other)
}

// Possible returns every legal play for the requested operator, best first.
//
// The cards are split into the additive pool and the pool of the operator's partner (see
// card.RuleFor). Subsets of each pool are paired up, pairings costing more than budget are
// discarded, and every surviving pairing is expanded into its orderings. The plays are ranked by
// score, highest first; plays with equal scores keep their enumeration order. A nil score leaves
// the plays in enumeration order.
//
// An empty slice is returned when nothing can be played. The number of plays grows
// factorially with the size of the pools, so callers should keep hands small.
func Possible(score rules.Scorer, op card.Operator, budget int, cards []card.Card) []card.Play {
	rule, ok := card.RuleFor(op)
	if !ok || len(cards) == 0 {
		return []card.Play{}
	}

	hand := card.Hand(cards)
	additivePool := hand.OfOperator(card.Additive)
	otherPool := hand.OfOperator(rule.Partner)

	additiveOptions := subsets(additivePool, rule.AdditiveArity)
	otherOptions := subsets(otherPool, len(otherPool))

	pairings := make([]pairing, 0)
	if len(additiveOptions) > 0 && len(otherOptions) > 0 {
		for _, a := range additiveOptions {
			for _, o := range otherOptions {
				p := pairing{additive: a, other: o}
				if p.cost() <= budget {
					pairings = append(pairings, p)
				}
			}
		}
	}

	if len(additiveOptions) > 0 {
		for _, a := range additiveOptions {
			p := pairing{additive: a}
			if p.cost() <= budget {
				pairings = append(pairings, p)
			}
		}
	}

	if len(otherOptions) > 0 {
		for _, o := range otherOptions {
			p := pairing{other: o}
			if p.cost() <= budget {
				pairings = append(pairings, p)
			}
		}
	}

	plays := make([]card.Play, 0)
	for _, p := range pairings {
		plays = append(plays, orderings(rule.AdditiveLeads, p.additive, p.other)...)
	}

	SortByScore(plays, score)
	return plays
}

// subsets returns the distinct non-empty subsets of pool with at most maxSize cards.
// Subsets are ordered by size, then lexicographically by position in pool. Cards inside a subset
// keep their pool order; a subset equal card-for-card to an earlier one is dropped.
func subsets(pool []card.Card, maxSize int) [][]card.Card {
	if maxSize > len(pool) {
		maxSize = len(pool)
	}

	seen := make(map[string]bool)
	result := make([][]card.Card, 0)
	for k := 1; k <= maxSize; k++ {
		for _, indexes := range combin.Combinations(len(pool), k) {
			subset := make([]card.Card, k)
			for i, idx := range indexes {
				subset[i] = pool[idx]
			}

			key := card.CardsToString(subset)
			if seen[key] {
				continue
			}

			seen[key] = true
			result = append(result, subset)
		}
	}

	return result
}

type scoredPlay struct {
	play  card.Play
	score float64
}

// SortByScore sorts plays in place by score, highest first.
// The sort is stable and each play is scored exactly once. A nil score is a no-op.
func SortByScore(plays []card.Play, score rules.Scorer) {
	if score == nil || len(plays) < 2 {
		return
	}

	scored := make([]scoredPlay, len(plays))
	for i, p := range plays {
		scored[i] = scoredPlay{play: p, score: score(p)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	for i := range scored {
		plays[i] = scored[i].play
	}
}
