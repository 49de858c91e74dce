package combo

import (
	"comboplay/pkg/card"

	"gonum.org/v1/gonum/stat/combin"
)

// MaxTrailingAdditive is the number of additive cards that may close a play when additive
// cards do not lead
const MaxTrailingAdditive = 1

// OneSet returns every ordering of a single (additive, other) pairing.
//
// When additiveLeads is true, one additive card opens the play, the other cards follow in every
// order and any remaining additive cards close it. With no other cards, each additive card is
// returned on its own. With no additive cards there is nothing to anchor the play and the result
// is empty.
//
// When additiveLeads is false, the other cards are permuted and the additive card, if any, is
// appended at the end.
//
// Permutations are produced in lexicographic order of input positions and identical cards are
// not collapsed: two equal cards yield two equal orderings.
func OneSet(additiveLeads bool, additive, other []card.Card) ([]card.Play, error) {
	limit := MaxTrailingAdditive
	if additiveLeads {
		limit = card.MaxAdditiveArity
	}

	if len(additive) > limit {
		return nil, ArityError{Leads: additiveLeads, Max: limit, Got: len(additive)}
	}

	return orderings(additiveLeads, additive, other), nil
}

// orderings assumes the additive arity has already been checked
func orderings(additiveLeads bool, additive, other []card.Card) []card.Play {
	if additiveLeads {
		if len(additive) == 0 {
			return []card.Play{}
		}

		if len(other) == 0 {
			plays := make([]card.Play, len(additive))
			for i, a := range additive {
				plays[i] = card.Play{a}
			}

			return plays
		}

		additivePerms := permutations(len(additive))
		otherPerms := permutations(len(other))
		plays := make([]card.Play, 0, len(additivePerms)*len(otherPerms))
		for _, ap := range additivePerms {
			for _, op := range otherPerms {
				play := make(card.Play, 0, len(additive)+len(other))
				play = append(play, additive[ap[0]])
				for _, i := range op {
					play = append(play, other[i])
				}
				for _, i := range ap[1:] {
					play = append(play, additive[i])
				}

				plays = append(plays, play)
			}
		}

		return plays
	}

	otherPerms := permutations(len(other))
	plays := make([]card.Play, 0, len(otherPerms))
	for _, op := range otherPerms {
		play := make(card.Play, 0, len(other)+len(additive))
		for _, i := range op {
			play = append(play, other[i])
		}
		if len(additive) > 0 {
			play = append(play, additive[0])
		}

		plays = append(plays, play)
	}

	return plays
}

// permutations returns every ordering of the indexes 0..n-1 in lexicographic order.
// There is exactly one permutation of zero elements: the empty one.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}

	return combin.Permutations(n, n)
}
