package flags

import (
	"fmt"
	"sort"
	"sync"

	"github.com/agbru/redflags/internal/ocds"
)

// Reasons attached to a NotApplicable evaluation.
const (
	ReasonNoTenderValue = "no tender value"
	ReasonNoWinningBid  = "no winning bid"
	ReasonZeroEstimate  = "zero estimated amount"
)

// Evaluation is the detailed outcome of an indicator over one release.
type Evaluation struct {
	// Result is the tri-state outcome.
	Result Result
	// Reason explains a NotApplicable result. Empty otherwise.
	Reason string
	// EstimatedPrice is the tender estimate, when present.
	EstimatedPrice *ocds.Money
	// WinningBid is the resolved winning bid, when present.
	WinningBid *ocds.Money
	// PercentDiff is the relative distance between the two prices.
	// Only meaningful when Result is applicable.
	PercentDiff float64
}

// Indicator is a red-flag test over a single release.
type Indicator interface {
	// ID returns the indicator identifier (e.g. "i171").
	ID() string
	// Description returns a one-line human-readable summary.
	Description() string
	// Evaluate computes the indicator. The threshold is compared as given.
	Evaluate(release *ocds.Release, threshold float64) (Evaluation, error)
}

// Registry maps indicator IDs to implementations.
type Registry struct {
	mu         sync.RWMutex
	indicators map[string]Indicator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{indicators: make(map[string]Indicator)}
}

// NewDefaultRegistry returns a registry holding every built-in indicator,
// wired to the given winning-bid resolver.
func NewDefaultRegistry(resolver WinningBidResolver) *Registry {
	r := NewRegistry()
	r.Register(NewI171(resolver))
	return r
}

// Register adds or replaces an indicator.
func (r *Registry) Register(ind Indicator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indicators[ind.ID()] = ind
}

// Get returns the indicator registered under id.
func (r *Registry) Get(id string) (Indicator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ind, ok := r.indicators[id]
	if !ok {
		return nil, fmt.Errorf("unknown indicator %q", id)
	}
	return ind, nil
}

// MustGet is like Get but panics on unknown IDs.
func (r *Registry) MustGet(id string) Indicator {
	ind, err := r.Get(id)
	if err != nil {
		panic(err)
	}
	return ind
}

// List returns the registered IDs in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.indicators))
	for id := range r.indicators {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
