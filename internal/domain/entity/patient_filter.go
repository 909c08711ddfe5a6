package entity

import "time"

// PatientFilter bounds patient queries by visit date. Both ends are
// inclusive and either may be nil.
// Used by repository layer to avoid coupling with delivery DTOs.
type PatientFilter struct {
	VisitFrom *time.Time
	VisitTo   *time.Time
}

// IsEmpty reports whether the filter selects every record.
func (f PatientFilter) IsEmpty() bool {
	return f.VisitFrom == nil && f.VisitTo == nil
}

// TruncateDay drops the clock part of t, keeping the calendar date as UTC midnight.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
