package card

// Hand represents the cards available to a player this turn
type Hand []Card

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h)
}

// TotalCost returns the sum of the cost of every card in the hand
func (h Hand) TotalCost() int {
	return TotalCost(h)
}

// Filter returns the cards that match the predicate, preserving order
func (h Hand) Filter(keep func(Card) bool) Hand {
	filtered := make(Hand, 0, len(h))
	for _, c := range h {
		if keep(c) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}

// OfOperator returns the cards in the hand with the given operator
func (h Hand) OfOperator(op Operator) Hand {
	return h.Filter(func(c Card) bool {
		return c.Operator == op
	})
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// Play is one candidate move: an ordered sequence of cards
type Play []Card

// TotalCost returns the sum of the cost of every card in the play
func (p Play) TotalCost() int {
	return TotalCost(p)
}

// Equal returns true if both plays hold the same cards in the same order
func (p Play) Equal(other Play) bool {
	if len(p) != len(other) {
		return false
	}

	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

func (p Play) String() string {
	return "[" + CardsToString(p) + "]"
}
