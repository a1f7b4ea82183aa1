package cli

import (
	"time"

	"github.com/agbru/redflags/internal/flags"
	"github.com/agbru/redflags/internal/ocds"
)

// Report is the serialisable outcome of one indicator over one release.
type Report struct {
	Indicator      string       `json:"indicator"`
	OCID           string       `json:"ocid,omitempty"`
	ReleaseID      string       `json:"releaseId,omitempty"`
	Result         flags.Result `json:"result"`
	Reason         string       `json:"reason,omitempty"`
	Threshold      float64      `json:"threshold"`
	PercentDiff    *float64     `json:"percentDiff,omitempty"`
	EstimatedPrice *ocds.Money  `json:"estimatedPrice,omitempty"`
	WinningBid     *ocds.Money  `json:"winningBid,omitempty"`
	GeneratedAt    time.Time    `json:"generatedAt"`
}

// NewReport assembles a report from an evaluation.
// PercentDiff is only set when the result is applicable.
func NewReport(indicator string, release *ocds.Release, threshold float64, ev flags.Evaluation, now time.Time) Report {
	r := Report{
		Indicator:      indicator,
		Result:         ev.Result,
		Reason:         ev.Reason,
		Threshold:      threshold,
		EstimatedPrice: ev.EstimatedPrice,
		WinningBid:     ev.WinningBid,
		GeneratedAt:    now.UTC(),
	}
	if release != nil {
		r.OCID, r.ReleaseID = release.OCID, release.ID
	}
	if ev.Result.Applicable() {
		diff := ev.PercentDiff
		r.PercentDiff = &diff
	}
	return r
}
