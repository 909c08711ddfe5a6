package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medinote/internal/usecase"
	"medinote/pkg/response"
)

type ImportHandler struct {
	importUsecase usecase.ImportUsecase
	maxBytes      int64
}

func NewImportHandler(importUsecase usecase.ImportUsecase, maxBytes int64) *ImportHandler {
	return &ImportHandler{
		importUsecase: importUsecase,
		maxBytes:      maxBytes,
	}
}

// ImportPatientsJSON handles bulk import from a JSON array
// @Summary Import patients
// @Description Insert each valid patient of a JSON array; invalid entries are reported by index
// @Tags Patients
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/import/patients/json [post]
func (h *ImportHandler) ImportPatientsJSON(w http.ResponseWriter, r *http.Request) {
	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	var records []json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, http.StatusRequestEntityTooLarge, "Request body too large", nil)
			return
		}
		response.ValidationError(w, map[string]string{"body": "body must be a JSON array of patients"})
		return
	}

	result, err := h.importUsecase.ImportPatients(r.Context(), records)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyImport):
			response.ValidationError(w, map[string]string{"body": "body must contain at least one patient"})
		default:
			response.InternalServerError(w, "Failed to import patients")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patients imported", result)
}
