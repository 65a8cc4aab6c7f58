// Package core holds the domain model and the pure aggregation and
// filtering logic of the tracker.
//
// This file contains the permissive amount parser used at the system
// boundary when decoding backend payloads.
package core

import (
	"strconv"
	"strings"
)

// ParseAmount converts a raw amount string to a float64.
//
// The backend stores amounts as either JSON numbers or decimal strings, and
// malformed values do occur. Aggregation must never fail on a single bad
// record, so anything that does not parse contributes 0. Both dot (12.34)
// and comma (12,34) decimal separators are accepted.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34
//	ParseAmount("12,34") -> 12.34
//	ParseAmount("-5")    -> -5
//	ParseAmount("oops")  -> 0
//	ParseAmount("")      -> 0
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
