package usecase

import (
	"context"
	"errors"
	"testing"

	"medinote/internal/delivery/dto"
	"medinote/internal/testutil"
	"medinote/pkg/validator"
)

func newTestPatientUsecase() (PatientUsecase, *testutil.PatientRepo) {
	repo := testutil.NewPatientRepo()
	return NewPatientUsecase(testutil.NewLogger(), repo, validator.NewValidator()), repo
}

func validPatientRequest() *dto.PatientRequest {
	return &dto.PatientRequest{
		Name:      "Siti Aminah",
		BirthDate: "1985-07-12",
		VisitDate: "2024-03-05",
		Diagnosis: "Hypertension",
		Procedure: "Blood pressure check",
		Doctor:    "dr. Budi",
	}
}

func TestCreatePatient_ThenGetReturnsSameFields(t *testing.T) {
	uc, _ := newTestPatientUsecase()
	ctx := context.Background()

	created, err := uc.CreatePatient(ctx, validPatientRequest())
	if err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}

	got, err := uc.GetPatient(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetPatient: %v", err)
	}

	want := dto.PatientResponse{
		ID:        created.ID,
		Name:      "Siti Aminah",
		BirthDate: "1985-07-12",
		VisitDate: "2024-03-05",
		Diagnosis: "Hypertension",
		Procedure: "Blood pressure check",
		Doctor:    "dr. Budi",
	}
	if *got != want {
		t.Errorf("got %+v, want %+v", *got, want)
	}
}

func TestCreatePatient_OptionalFieldsStayEmpty(t *testing.T) {
	uc, repo := newTestPatientUsecase()

	req := validPatientRequest()
	req.Diagnosis, req.Procedure, req.Doctor = "", "  ", ""

	created, err := uc.CreatePatient(context.Background(), req)
	if err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}

	stored := repo.Patients[created.ID]
	if stored.Diagnosis != nil || stored.Procedure != nil || stored.Doctor != nil {
		t.Errorf("expected optional fields to be nil, got %+v", stored)
	}
}

func TestCreatePatient_Validation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*dto.PatientRequest)
		field string
	}{
		{"missing name", func(r *dto.PatientRequest) { r.Name = "   " }, "name"},
		{"missing birth date", func(r *dto.PatientRequest) { r.BirthDate = "" }, "birth_date"},
		{"malformed visit date", func(r *dto.PatientRequest) { r.VisitDate = "05/03/2024" }, "visit_date"},
		{"impossible date", func(r *dto.PatientRequest) { r.BirthDate = "2023-02-30" }, "birth_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newTestPatientUsecase()
			req := validPatientRequest()
			tt.edit(req)

			_, err := uc.CreatePatient(context.Background(), req)
			vErr, ok := AsValidationError(err)
			if !ok {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := vErr.Fields[tt.field]; !ok {
				t.Errorf("expected error on %q, got %v", tt.field, vErr.Fields)
			}
			if len(repo.Patients) != 0 {
				t.Error("invalid patient must not be stored")
			}
		})
	}
}

func TestDeletePatient_ThenGetIsNotFound(t *testing.T) {
	uc, _ := newTestPatientUsecase()
	ctx := context.Background()

	created, err := uc.CreatePatient(ctx, validPatientRequest())
	if err != nil {
		t.Fatal(err)
	}

	if err := uc.DeletePatient(ctx, created.ID); err != nil {
		t.Fatalf("DeletePatient: %v", err)
	}

	if _, err := uc.GetPatient(ctx, created.ID); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestDeletePatient_Unknown(t *testing.T) {
	uc, _ := newTestPatientUsecase()
	if err := uc.DeletePatient(context.Background(), 42); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestUpdatePatient(t *testing.T) {
	uc, _ := newTestPatientUsecase()
	ctx := context.Background()

	created, err := uc.CreatePatient(ctx, validPatientRequest())
	if err != nil {
		t.Fatal(err)
	}

	req := validPatientRequest()
	req.Diagnosis = "Type 2 diabetes"
	req.VisitDate = "2024-04-01"
	req.Doctor = ""

	updated, err := uc.UpdatePatient(ctx, created.ID, req)
	if err != nil {
		t.Fatalf("UpdatePatient: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("id changed from %d to %d", created.ID, updated.ID)
	}

	got, _ := uc.GetPatient(ctx, created.ID)
	if got.Diagnosis != "Type 2 diabetes" || got.VisitDate != "2024-04-01" || got.Doctor != "" {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestUpdatePatient_Unknown(t *testing.T) {
	uc, _ := newTestPatientUsecase()
	_, err := uc.UpdatePatient(context.Background(), 7, validPatientRequest())
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestUpdatePatient_InvalidKeepsRecord(t *testing.T) {
	uc, _ := newTestPatientUsecase()
	ctx := context.Background()

	created, err := uc.CreatePatient(ctx, validPatientRequest())
	if err != nil {
		t.Fatal(err)
	}

	req := validPatientRequest()
	req.VisitDate = "not-a-date"
	if _, err := uc.UpdatePatient(ctx, created.ID, req); err == nil {
		t.Fatal("expected validation error")
	}

	got, _ := uc.GetPatient(ctx, created.ID)
	if got.VisitDate != "2024-03-05" {
		t.Errorf("record changed after failed update: %+v", got)
	}
}
