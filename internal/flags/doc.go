// Package flags implements corruption-risk red-flag indicators computed over
// a single OCDS release.
//
// Indicators are pure: they read the release and a caller-supplied threshold,
// never mutate either, and keep no state between calls. Each indicator
// produces a tri-state [Result] so that "not applicable" (insufficient data)
// is distinguishable from a definite answer, and reports data-quality
// problems such as [CurrencyMismatchError] as errors.
package flags
