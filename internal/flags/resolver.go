//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks

package flags

import "github.com/agbru/redflags/internal/ocds"

// WinningBidResolver extracts the value of the winning bid from a release.
// Implementations must not mutate the release. A nil result means no usable
// winning bid exists.
type WinningBidResolver interface {
	WinningBid(release *ocds.Release) *ocds.Money
}

// WinningBidResolverFunc adapts a plain function to WinningBidResolver.
type WinningBidResolverFunc func(release *ocds.Release) *ocds.Money

// WinningBid calls f(release).
func (f WinningBidResolverFunc) WinningBid(release *ocds.Release) *ocds.Money {
	return f(release)
}

// ActiveAwardResolver returns the value of the first award whose status is
// "active". Only the first active award is considered: if it carries no value
// the result is nil, even when later awards are active too.
type ActiveAwardResolver struct{}

// WinningBid implements WinningBidResolver.
func (ActiveAwardResolver) WinningBid(release *ocds.Release) *ocds.Money {
	if release == nil {
		return nil
	}
	for i := range release.Awards {
		award := &release.Awards[i]
		if award.Status != ocds.AwardStatusActive {
			continue
		}
		if award.Value == nil {
			return nil
		}
		value := *award.Value
		return &value
	}
	return nil
}
