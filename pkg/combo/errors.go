package combo

import (
	"errors"
	"fmt"
)

// ErrAdditiveArity is returned when more additive cards are supplied than an ordering can place
var ErrAdditiveArity = errors.New("too many additive cards")

// ArityError is an error on the number of additive cards handed to OneSet
type ArityError struct {
	Leads bool
	Max   int
	Got   int
}

func (a ArityError) Error() string {
	placement := "trailing"
	if a.Leads {
		placement = "leading"
	}

	return fmt.Sprintf("%s: expected at most %d %s, got %d", ErrAdditiveArity, a.Max, placement, a.Got)
}

// Unwrap allows errors.Is(err, ErrAdditiveArity)
func (a ArityError) Unwrap() error {
	return ErrAdditiveArity
}
