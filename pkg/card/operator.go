package card

import (
	"errors"
	"fmt"
)

// ErrUnknownOperator is returned when an operator symbol cannot be parsed
var ErrUnknownOperator = errors.New("unknown operator")

// Operator is the arithmetic operation a card applies to the running totals
type Operator string

// operator constants
const (
	Additive       Operator = "+"
	Multiplicative Operator = "*"
	Divisive       Operator = "/"
)

// MaxAdditiveArity is the largest additive arity of any rule
const MaxAdditiveArity = 2

// Operators returns every operator in the closed set
func Operators() []Operator {
	return []Operator{Additive, Multiplicative, Divisive}
}

// ParseOperator returns the operator for the symbol s
func ParseOperator(s string) (Operator, error) {
	op := Operator(s)
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperator, s)
	}

	return op, nil
}

// Valid returns true if the operator is a member of the closed set
func (o Operator) Valid() bool {
	_, ok := rules[o]
	return ok
}

func (o Operator) String() string {
	return string(o)
}

// Name returns a human readable name of the operator
func (o Operator) Name() string {
	switch o {
	case Additive:
		return "additive"
	case Multiplicative:
		return "multiplicative"
	case Divisive:
		return "divisive"
	default:
		return "unknown"
	}
}

// Rule describes how a search for a requested operator groups cards
type Rule struct {
	// Partner is the operator whose cards form the "other" pool
	Partner Operator

	// AdditiveArity is the largest number of additive cards a single play may hold
	AdditiveArity int

	// AdditiveLeads is true when an additive card opens the play, false when it trails
	AdditiveLeads bool
}

// rules is the pairing table between a requested operator and the cards it may be combined with.
// Additive plays pair with multiplicative cards; every other operator pools cards of its own kind.
var rules = map[Operator]Rule{
	Additive: {
		Partner:       Multiplicative,
		AdditiveArity: MaxAdditiveArity,
		AdditiveLeads: true,
	},
	Multiplicative: {
		Partner:       Multiplicative,
		AdditiveArity: 1,
	},
	Divisive: {
		Partner:       Divisive,
		AdditiveArity: 1,
	},
}

// RuleFor returns the grouping rule for the requested operator
func RuleFor(op Operator) (Rule, bool) {
	r, ok := rules[op]
	return r, ok
}
