package solver

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every *DomainError via errors.Is.
var ErrDomain = errors.New("degenerate input angle")

// DomainError reports an angle set for which the construction is undefined.
type DomainError struct {
	// Op is the operation that failed, "solve" or "derive points".
	Op string

	// Term names the offending quantity, e.g. "sin(a2)".
	Term string

	// Value is the offending value.
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s: %s = %g", e.Op, ErrDomain, e.Term, e.Value)
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}
