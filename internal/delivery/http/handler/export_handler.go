package handler

import (
	"fmt"
	"net/http"

	"medinote/internal/delivery/http/middleware"
	"medinote/internal/delivery/http/view"
	"medinote/internal/usecase"
	"medinote/pkg/spreadsheet"

	"github.com/sirupsen/logrus"
)

type ExportHandler struct {
	exportUsecase usecase.ExportUsecase
	renderer      *view.Renderer
	log           *logrus.Logger
}

func NewExportHandler(exportUsecase usecase.ExportUsecase, renderer *view.Renderer, log *logrus.Logger) *ExportHandler {
	return &ExportHandler{
		exportUsecase: exportUsecase,
		renderer:      renderer,
		log:           log,
	}
}

// ExportPatientsExcel streams the filtered patient list as an .xlsx download
func (h *ExportHandler) ExportPatientsExcel(w http.ResponseWriter, r *http.Request) {
	principal, _ := middleware.GetPrincipalFromContext(r.Context())

	export, err := h.exportUsecase.ExportPatients(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		if dateRangeErrors(err) != nil {
			h.renderer.RenderError(w, http.StatusBadRequest, principal, "Invalid export date range")
			return
		}
		h.renderer.RenderError(w, http.StatusInternalServerError, principal, "Failed to export patients")
		return
	}

	w.Header().Set("Content-Type", spreadsheet.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)

	if err := spreadsheet.Write(w, export.Table); err != nil {
		// Headers are gone already; all that is left is to log it.
		h.log.Warnf("Failed to write export: %+v", err)
	}
}
