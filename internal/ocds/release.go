package ocds

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Award statuses defined by the OCDS award status codelist.
const (
	AwardStatusPending      = "pending"
	AwardStatusActive       = "active"
	AwardStatusCancelled    = "cancelled"
	AwardStatusUnsuccessful = "unsuccessful"
)

// ErrEmptyRelease is returned by DecodeRelease when the input holds no JSON value.
var ErrEmptyRelease = errors.New("ocds: empty release input")

// Money is a monetary value with its ISO 4217 currency code.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// String renders the value as "<amount> <currency>".
func (m Money) String() string {
	return fmt.Sprintf("%g %s", m.Amount, m.Currency)
}

// Tender is the pre-award phase of a contracting process.
type Tender struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	// Value is the estimated price. Nil when the publisher omitted it.
	Value *Money `json:"value,omitempty"`
}

// Award records the decision on the winner of a tender.
type Award struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
	Value  *Money `json:"value,omitempty"`
}

// Release is one OCDS record describing a stage of a contracting process.
type Release struct {
	OCID   string  `json:"ocid,omitempty"`
	ID     string  `json:"id,omitempty"`
	Date   string  `json:"date,omitempty"`
	Tender *Tender `json:"tender,omitempty"`
	Awards []Award `json:"awards,omitempty"`
}

// EstimatedPrice returns the tender value, or nil if the release has none.
func (r *Release) EstimatedPrice() *Money {
	if r == nil || r.Tender == nil {
		return nil
	}
	return r.Tender.Value
}

// DecodeRelease reads exactly one JSON release object from r.
// Trailing values after the first object are rejected.
func DecodeRelease(r io.Reader) (*Release, error) {
	dec := json.NewDecoder(r)
	var release Release
	if err := dec.Decode(&release); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRelease
		}
		return nil, fmt.Errorf("ocds: decode release: %w", err)
	}
	if dec.More() {
		return nil, errors.New("ocds: unexpected data after release object")
	}
	return &release, nil
}
