package flags

import (
	"errors"
	"fmt"
)

// ErrCurrencyMismatch is matched by every CurrencyMismatchError via errors.Is.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// CurrencyMismatchError reports that an indicator was asked to compare two
// monetary values expressed in different currencies.
type CurrencyMismatchError struct {
	// Indicator is the ID of the indicator that detected the mismatch.
	Indicator string
	// Estimated is the currency of the tender estimate.
	Estimated string
	// Winning is the currency of the winning bid.
	Winning string
}

func (e CurrencyMismatchError) Error() string {
	return fmt.Sprintf("%s - trying to compare estimated price (%q) and winning bid (%q) w/ different currencies",
		e.Indicator, e.Estimated, e.Winning)
}

// Is makes errors.Is(err, ErrCurrencyMismatch) succeed.
func (e CurrencyMismatchError) Is(target error) bool {
	return target == ErrCurrencyMismatch
}
