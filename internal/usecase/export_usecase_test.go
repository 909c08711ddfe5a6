package usecase

import (
	"context"
	"errors"
	"testing"

	"medinote/internal/delivery/dto"
	"medinote/internal/testutil"
	"medinote/pkg/validator"
)

func seedVisits(t *testing.T, repo *testutil.PatientRepo, visits ...string) {
	t.Helper()
	uc := NewPatientUsecase(testutil.NewLogger(), repo, validator.NewValidator())
	for _, v := range visits {
		req := &dto.PatientRequest{Name: "P " + v, BirthDate: "1980-01-01", VisitDate: v}
		if _, err := uc.CreatePatient(context.Background(), req); err != nil {
			t.Fatalf("seed %s: %v", v, err)
		}
	}
}

func TestExportPatients_InclusiveRange(t *testing.T) {
	repo := testutil.NewPatientRepo()
	seedVisits(t, repo, "2024-01-31", "2024-02-01", "2024-02-15", "2024-02-29", "2024-03-01")
	uc := NewExportUsecase(testutil.NewLogger(), repo, validator.NewValidator())

	export, err := uc.ExportPatients(context.Background(), dto.DateRangeQuery{StartDate: "2024-02-01", EndDate: "2024-02-29"})
	if err != nil {
		t.Fatalf("ExportPatients: %v", err)
	}

	if export.Filename != "patients_2024-02-01_2024-02-29.xlsx" {
		t.Errorf("Filename = %q", export.Filename)
	}
	if len(export.Table.Header) != 7 || export.Table.Header[0] != "ID" {
		t.Errorf("unexpected header: %v", export.Table.Header)
	}

	got := map[string]bool{}
	for _, row := range export.Table.Rows {
		got[row[3].(string)] = true
	}
	want := []string{"2024-02-01", "2024-02-15", "2024-02-29"}
	if len(export.Table.Rows) != len(want) {
		t.Fatalf("got %d rows, want %d: %v", len(export.Table.Rows), len(want), got)
	}
	for _, w := range want {
		if !got[w] {
			t.Errorf("missing visit %s", w)
		}
	}
}

func TestExportPatients_NoFilterExportsAll(t *testing.T) {
	repo := testutil.NewPatientRepo()
	seedVisits(t, repo, "2023-05-01", "2024-05-01")
	uc := NewExportUsecase(testutil.NewLogger(), repo, validator.NewValidator())

	export, err := uc.ExportPatients(context.Background(), dto.DateRangeQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if len(export.Table.Rows) != 2 {
		t.Errorf("got %d rows, want 2", len(export.Table.Rows))
	}
	if export.Filename != "patients.xlsx" {
		t.Errorf("Filename = %q", export.Filename)
	}
}

func TestExportPatients_InvalidRange(t *testing.T) {
	uc := NewExportUsecase(testutil.NewLogger(), testutil.NewPatientRepo(), validator.NewValidator())

	_, err := uc.ExportPatients(context.Background(), dto.DateRangeQuery{StartDate: "2024-03-01", EndDate: "2024-02-01"})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}

	_, err = uc.ExportPatients(context.Background(), dto.DateRangeQuery{StartDate: "yesterday"})
	if _, ok := AsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %v", err)
	}
}
