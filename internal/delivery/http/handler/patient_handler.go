package handler

import (
	"errors"
	"net/http"

	"medinote/internal/delivery/dto"
	"medinote/internal/delivery/http/middleware"
	"medinote/internal/delivery/http/view"
	"medinote/internal/usecase"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	dashboard      *DashboardHandler
	renderer       *view.Renderer
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, dashboard *DashboardHandler, renderer *view.Renderer) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		dashboard:      dashboard,
		renderer:       renderer,
	}
}

// Add handles the add-patient form on the dashboard
func (h *PatientHandler) Add(w http.ResponseWriter, r *http.Request) {
	req := patientRequestFromForm(r)

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		if vErr, ok := usecase.AsValidationError(err); ok {
			h.dashboard.render(w, r, http.StatusBadRequest, dto.DateRangeQuery{}, view.Page{
				Errors: vErr.Fields,
				Form:   req,
			})
			return
		}
		h.renderError(w, r, http.StatusInternalServerError, "Failed to add patient")
		return
	}

	setFlash(w, "Patient "+patient.Name+" added")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *PatientHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := patientIDFromPath(r)
	if !ok {
		h.renderError(w, r, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		h.handleLookupError(w, r, err, "Failed to get patient")
		return
	}

	h.renderEdit(w, r, http.StatusOK, patient, patientResponseToForm(patient), nil)
}

func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := patientIDFromPath(r)
	if !ok {
		h.renderError(w, r, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	req := patientRequestFromForm(r)
	patient, err := h.patientUsecase.UpdatePatient(r.Context(), id, &req)
	if err != nil {
		if vErr, ok := usecase.AsValidationError(err); ok {
			h.renderEdit(w, r, http.StatusBadRequest, &dto.PatientResponse{ID: id}, req, vErr.Fields)
			return
		}
		h.handleLookupError(w, r, err, "Failed to update patient")
		return
	}

	setFlash(w, "Patient "+patient.Name+" updated")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := patientIDFromPath(r)
	if !ok {
		h.renderError(w, r, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), id); err != nil {
		h.handleLookupError(w, r, err, "Failed to delete patient")
		return
	}

	setFlash(w, "Patient deleted")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *PatientHandler) handleLookupError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if errors.Is(err, usecase.ErrPatientNotFound) {
		h.renderError(w, r, http.StatusNotFound, "Patient not found")
		return
	}
	h.renderError(w, r, http.StatusInternalServerError, fallback)
}

func (h *PatientHandler) renderEdit(w http.ResponseWriter, r *http.Request, status int, patient *dto.PatientResponse, form dto.PatientRequest, errs map[string]string) {
	principal, _ := middleware.GetPrincipalFromContext(r.Context())
	h.renderer.Render(w, status, view.PageEdit, view.Page{
		Title:     "Edit patient",
		Principal: principal,
		Patient:   patient,
		Form:      form,
		Errors:    errs,
	})
}

func (h *PatientHandler) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	principal, _ := middleware.GetPrincipalFromContext(r.Context())
	h.renderer.RenderError(w, status, principal, msg)
}
