// Package filter narrows record collections by a composable predicate. The
// aggregation engine is re-run over the filtered output, so derived charts for
// a filtered view follow exactly the same rules as the full-dataset stats.
package filter

import (
	"strings"
	"time"

	"lindash/internal/dates"
	"lindash/internal/models"
)

// Predicate is the conjunction of an optional inclusive date range and any
// number of field clauses. Clause order does not matter, and filtering an
// already-filtered set with the same predicate is a no-op.
type Predicate struct {
	DateField  string
	DateLayout string
	Start      *time.Time
	End        *time.Time

	// Equals matches trimmed field values exactly (case-sensitive).
	Equals map[string]string
	// NonEmpty requires a field to be non-empty (true) or empty (false)
	// after trimming.
	NonEmpty map[string]bool
	// Contains matches a case-insensitive substring of the field value.
	Contains map[string]string
}

// HasDateRange reports whether a date-range clause is active.
func (p Predicate) HasDateRange() bool {
	return p.Start != nil || p.End != nil
}

// Match evaluates all clauses against one record. A record with no parseable
// date fails an active date-range clause but is unaffected when none is set.
func (p Predicate) Match(r models.Record) bool {
	if p.HasDateRange() {
		t, ok := dates.Parse(r[p.DateField], p.DateLayout)
		if !ok {
			return false
		}
		if p.Start != nil && t.Before(*p.Start) {
			return false
		}
		if p.End != nil && t.After(*p.End) {
			return false
		}
	}

	for field, want := range p.Equals {
		if r.Field(field) != want {
			return false
		}
	}

	for field, wantNonEmpty := range p.NonEmpty {
		if r.HasField(field) != wantNonEmpty {
			return false
		}
	}

	for field, sub := range p.Contains {
		if !strings.Contains(strings.ToLower(r.Field(field)), strings.ToLower(sub)) {
			return false
		}
	}

	return true
}

// Apply returns the records matching the predicate. The input is never
// mutated; each pass produces a fresh slice.
func Apply(records []models.Record, p Predicate) []models.Record {
	matched := []models.Record{}
	for _, r := range records {
		if p.Match(r) {
			matched = append(matched, r)
		}
	}
	return matched
}
