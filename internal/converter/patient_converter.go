package converter

import (
	"time"

	"medinote/internal/delivery/dto"
	"medinote/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		BirthDate: patient.BirthDate.Format(entity.DateLayout),
		VisitDate: patient.VisitDate.Format(entity.DateLayout),
		Diagnosis: derefString(patient.Diagnosis),
		Procedure: derefString(patient.Procedure),
		Doctor:    derefString(patient.Doctor),
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// ApplyPatientRequest copies a validated request onto patient. Dates must
// already have passed validation; a parse failure is still returned.
func ApplyPatientRequest(patient *entity.Patient, req *dto.PatientRequest) error {
	birthDate, err := time.Parse(entity.DateLayout, req.BirthDate)
	if err != nil {
		return err
	}
	visitDate, err := time.Parse(entity.DateLayout, req.VisitDate)
	if err != nil {
		return err
	}

	patient.Name = req.Name
	patient.BirthDate = birthDate
	patient.VisitDate = visitDate
	patient.Diagnosis = optionalString(req.Diagnosis)
	patient.Procedure = optionalString(req.Procedure)
	patient.Doctor = optionalString(req.Doctor)
	return nil
}

// PatientExportHeader is the header row of the patient spreadsheet.
var PatientExportHeader = []string{"ID", "Name", "Birth Date", "Visit Date", "Diagnosis", "Procedure", "Doctor"}

// PatientToRow converts a Patient entity to a spreadsheet row matching PatientExportHeader
func PatientToRow(patient *entity.Patient) []interface{} {
	return []interface{}{
		patient.ID,
		patient.Name,
		patient.BirthDate.Format(entity.DateLayout),
		patient.VisitDate.Format(entity.DateLayout),
		derefString(patient.Diagnosis),
		derefString(patient.Procedure),
		derefString(patient.Doctor),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
