package entity

import (
	"testing"
	"time"
)

func TestPatientFilterIsEmpty(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if !(PatientFilter{}).IsEmpty() {
		t.Error("zero filter should be empty")
	}
	if (PatientFilter{VisitFrom: &day}).IsEmpty() {
		t.Error("filter with a start bound is not empty")
	}
	if (PatientFilter{VisitTo: &day}).IsEmpty() {
		t.Error("filter with an end bound is not empty")
	}
}

func TestTruncateDay(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	got := TruncateDay(time.Date(2024, 3, 5, 23, 30, 0, 0, jakarta))
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("TruncateDay = %v, want %v", got, want)
	}
}
