package flags

import (
	"encoding/json"
	"fmt"
)

// Result is the tri-state outcome of an indicator.
type Result uint8

const (
	// NotApplicable means the release lacks the data the indicator needs.
	// Callers should skip the release for this indicator.
	NotApplicable Result = iota
	// Clear means the indicator was computed and did not fire.
	Clear
	// Flagged means the indicator was computed and fired.
	Flagged
)

// ResultOf maps a boolean indicator value onto Clear or Flagged.
func ResultOf(flagged bool) Result {
	if flagged {
		return Flagged
	}
	return Clear
}

// Applicable reports whether the indicator produced a definite answer.
func (r Result) Applicable() bool { return r == Clear || r == Flagged }

// Bool returns the boolean value and whether it is defined.
func (r Result) Bool() (value, ok bool) {
	return r == Flagged, r.Applicable()
}

// String returns "flagged", "clear" or "not_applicable".
func (r Result) String() string {
	switch r {
	case Flagged:
		return "flagged"
	case Clear:
		return "clear"
	case NotApplicable:
		return "not_applicable"
	default:
		return fmt.Sprintf("Result(%d)", uint8(r))
	}
}

// MarshalJSON encodes the result as true, false or null.
func (r Result) MarshalJSON() ([]byte, error) {
	switch r {
	case Flagged:
		return []byte("true"), nil
	case Clear:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes true, false or null.
func (r *Result) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("flags: invalid result %s: %w", data, err)
	}
	if v == nil {
		*r = NotApplicable
		return nil
	}
	*r = ResultOf(*v)
	return nil
}
