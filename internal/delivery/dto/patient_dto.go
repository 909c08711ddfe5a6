package dto

import "strings"

// Request DTOs

// PatientRequest carries the editable fields of a patient. The same shape is
// bound from the HTML forms and decoded from import payloads.
type PatientRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"` // Format: YYYY-MM-DD
	VisitDate string `json:"visit_date" validate:"required,datetime=2006-01-02"` // Format: YYYY-MM-DD
	Diagnosis string `json:"diagnosis" validate:"omitempty"`
	Procedure string `json:"procedure" validate:"omitempty"`
	Doctor    string `json:"doctor" validate:"omitempty,max=255"`
}

// Normalize trims surrounding whitespace from every field.
func (r *PatientRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.BirthDate = strings.TrimSpace(r.BirthDate)
	r.VisitDate = strings.TrimSpace(r.VisitDate)
	r.Diagnosis = strings.TrimSpace(r.Diagnosis)
	r.Procedure = strings.TrimSpace(r.Procedure)
	r.Doctor = strings.TrimSpace(r.Doctor)
}

// Response DTOs

type PatientResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	VisitDate string `json:"visit_date"`
	Diagnosis string `json:"diagnosis,omitempty"`
	Procedure string `json:"procedure,omitempty"`
	Doctor    string `json:"doctor,omitempty"`
}
