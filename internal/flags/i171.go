package flags

import (
	"math"

	"github.com/agbru/redflags/internal/ocds"
)

// I171ID identifies the "bid is too close to budget, estimate or preferred
// solution" indicator.
const I171ID = "i171"

// I171 flags releases whose winning bid lies within threshold (as a fraction
// of the estimate) of the tender's estimated price.
type I171 struct {
	resolver WinningBidResolver
}

// NewI171 creates the indicator. A nil resolver selects ActiveAwardResolver.
func NewI171(resolver WinningBidResolver) *I171 {
	if resolver == nil {
		resolver = ActiveAwardResolver{}
	}
	return &I171{resolver: resolver}
}

// ID implements Indicator.
func (*I171) ID() string { return I171ID }

// Description implements Indicator.
func (*I171) Description() string {
	return "Bid is too close to budget, estimate or preferred solution"
}

// Calculate returns Flagged when |(estimated - winning) / estimated| <= threshold.
// It returns NotApplicable when the tender value or the winning bid is
// missing, or when the estimate is zero, and a CurrencyMismatchError when the
// two prices use different currencies.
func (c *I171) Calculate(release *ocds.Release, threshold float64) (Result, error) {
	ev, err := c.Evaluate(release, threshold)
	if err != nil {
		return NotApplicable, err
	}
	return ev.Result, nil
}

// Evaluate implements Indicator.
func (c *I171) Evaluate(release *ocds.Release, threshold float64) (Evaluation, error) {
	estimated := release.EstimatedPrice()
	if estimated == nil {
		return Evaluation{Result: NotApplicable, Reason: ReasonNoTenderValue}, nil
	}
	est := *estimated
	ev := Evaluation{EstimatedPrice: &est}

	winning := c.resolver.WinningBid(release)
	if winning == nil {
		ev.Result, ev.Reason = NotApplicable, ReasonNoWinningBid
		return ev, nil
	}
	win := *winning
	ev.WinningBid = &win

	if est.Currency != win.Currency {
		return Evaluation{}, CurrencyMismatchError{
			Indicator: I171ID,
			Estimated: est.Currency,
			Winning:   win.Currency,
		}
	}
	// The ratio is undefined for a zero estimate.
	if est.Amount == 0 {
		ev.Result, ev.Reason = NotApplicable, ReasonZeroEstimate
		return ev, nil
	}

	ev.PercentDiff = math.Abs((est.Amount - win.Amount) / est.Amount)
	ev.Result = ResultOf(ev.PercentDiff <= threshold)
	return ev, nil
}
