package card

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Card is an individual card. Cards are values and are never mutated once dealt.
type Card struct {
	Operator  Operator `json:"operator" yaml:"operator"`
	Magnitude int      `json:"magnitude" yaml:"magnitude"`
	Cost      int      `json:"cost" yaml:"cost"`
}

// New returns a new card
func New(op Operator, magnitude, cost int) Card {
	return Card{
		Operator:  op,
		Magnitude: magnitude,
		Cost:      cost,
	}
}

// String returns the card in the format of <operator><magnitude>:<cost>, i.e., +5:3
func (c Card) String() string {
	return fmt.Sprintf("%s%d:%d", c.Operator, c.Magnitude, c.Cost)
}

// IsAdditive returns true if the card adds to the running total
func (c Card) IsAdditive() bool {
	return c.Operator == Additive
}

var cardRx = regexp.MustCompile(`^([+*/])(-?[0-9]+):([0-9]+)\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <operator><magnitude>:<cost> where operator is one of [+*/]
func CardFromString(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	op, err := ParseOperator(match[1])
	if err != nil {
		// should never be hit due to the regexp
		return Card{}, err
	}

	magnitude, err := strconv.Atoi(match[2])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}

	cost, err := strconv.Atoi(match[3])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}

	if op == Divisive && magnitude == 0 {
		return Card{}, fmt.Errorf("%w: %q: cannot divide by zero", ErrInvalidCard, s)
	}

	return New(op, magnitude, cost), nil
}

// CardsFromString parses a comma separated list of cards, i.e., +1:1,*3:2
func CardsFromString(s string) (Hand, error) {
	if strings.TrimSpace(s) == "" {
		return Hand{}, nil
	}

	parts := strings.Split(s, ",")
	cards := make(Hand, len(parts))
	for i, part := range parts {
		c, err := CardFromString(part)
		if err != nil {
			return nil, err
		}

		cards[i] = c
	}

	return cards, nil
}

// CardsToString will convert a slice of cards to a string in the format of +1:1,*3:2,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}

// TotalCost returns the sum of the cost of every card
func TotalCost(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Cost
	}

	return total
}
