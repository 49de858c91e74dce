package card

import (
	"fmt"
	"sort"
)

// Catalog maps a card name used in deck lists (i.e., plus5) to the card it produces
type Catalog map[string]Card

// DefaultCatalog returns the standard set of card kinds
func DefaultCatalog() Catalog {
	return Catalog{
		"plus1":  New(Additive, 1, 1),
		"plus5":  New(Additive, 5, 3),
		"plus10": New(Additive, 10, 5),
		"mult3":  New(Multiplicative, 3, 2),
		"mult10": New(Multiplicative, 10, 3),
		"div5":   New(Divisive, 5, 2),
		"div10":  New(Divisive, 10, 3),
	}
}

// Lookup returns the card with the given name
func (c Catalog) Lookup(name string) (Card, bool) {
	card, ok := c[name]
	return card, ok
}

// Names returns the card names in sorted order
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Validate returns an error if any card in the catalog is malformed
func (c Catalog) Validate() error {
	for _, name := range c.Names() {
		card := c[name]
		if !card.Operator.Valid() {
			return fmt.Errorf("catalog card %s: %w: %q", name, ErrUnknownOperator, card.Operator)
		}

		if card.Cost < 0 {
			return fmt.Errorf("catalog card %s: %w: negative cost", name, ErrInvalidCard)
		}

		if card.Operator == Divisive && card.Magnitude == 0 {
			return fmt.Errorf("catalog card %s: %w: cannot divide by zero", name, ErrInvalidCard)
		}
	}

	return nil
}
