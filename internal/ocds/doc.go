// Package ocds models the subset of the Open Contracting Data Standard release
// schema read by the red-flag indicators: the tender estimate and the award
// records with their status and value.
package ocds
