// Package filter provides composable attribute predicates for close-approach
// queries. A Filter is a plain value (field, operator, bound) evaluated by a
// single Matches method; a query combines filters with logical AND. The
// package also provides Limit, a lazy bound on any sequence.
package filter

import (
	"time"

	"github.com/orbitalmech/neoscope/internal/neo"
)

// Field selects the attribute a Filter compares, either on the approach
// itself or on its linked NEO.
type Field int

const (
	FieldDate      Field = iota // calendar date of the approach time
	FieldDistance               // approach distance, au
	FieldVelocity               // approach velocity, km/s
	FieldDiameter               // NEO diameter, km
	FieldHazardous              // NEO hazardous flag
)

// Op is a comparison operator.
type Op int

const (
	OpEq Op = iota
	OpGE
	OpLE
)

// Filter is a single comparison against one attribute of a close approach.
// Exactly one of the bound fields is meaningful, determined by Field:
// Date for FieldDate, Bool for FieldHazardous, Value otherwise.
type Filter struct {
	Field Field
	Op    Op
	Value float64
	Date  time.Time
	Bool  bool
}

// Matches reports whether the approach satisfies the filter. Comparisons
// against an unknown (NaN) diameter are false, so approaches of NEOs with
// no measured diameter never pass a diameter bound.
func (f Filter) Matches(ca *neo.CloseApproach) bool {
	switch f.Field {
	case FieldDate:
		return compareDates(dateOnly(ca.Time), dateOnly(f.Date), f.Op)
	case FieldDistance:
		return compareFloats(ca.Distance, f.Value, f.Op)
	case FieldVelocity:
		return compareFloats(ca.Velocity, f.Value, f.Op)
	case FieldDiameter:
		return compareFloats(ca.NEO.Diameter, f.Value, f.Op)
	case FieldHazardous:
		return ca.NEO.Hazardous == f.Bool
	}
	return false
}

// MatchesAll reports whether the approach satisfies every filter. An empty
// filter set matches everything.
func MatchesAll(filters []Filter, ca *neo.CloseApproach) bool {
	for _, f := range filters {
		if !f.Matches(ca) {
			return false
		}
	}
	return true
}

func compareFloats(got, bound float64, op Op) bool {
	switch op {
	case OpEq:
		return got == bound
	case OpGE:
		return got >= bound
	case OpLE:
		return got <= bound
	}
	return false
}

func compareDates(got, bound time.Time, op Op) bool {
	switch op {
	case OpEq:
		return got.Equal(bound)
	case OpGE:
		return !got.Before(bound)
	case OpLE:
		return !got.After(bound)
	}
	return false
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
