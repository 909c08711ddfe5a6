package handler

import (
	"errors"
	"net/http"

	"medinote/internal/delivery/dto"
	"medinote/internal/delivery/http/middleware"
	"medinote/internal/delivery/http/view"
	"medinote/internal/usecase"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	renderer         *view.Renderer
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, renderer *view.Renderer) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		renderer:         renderer,
	}
}

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	page := view.Page{Flash: popFlash(w, r)}
	h.render(w, r, http.StatusOK, dateRangeFromQuery(r), page)
}

// render loads the dashboard for query into page. A bad filter is shown as
// a form error above the unfiltered list.
func (h *DashboardHandler) render(w http.ResponseWriter, r *http.Request, status int, query dto.DateRangeQuery, page view.Page) {
	principal, _ := middleware.GetPrincipalFromContext(r.Context())
	page.Title = "Dashboard"
	page.Principal = principal
	page.Filter = query

	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context(), query)
	if filterErr := dateRangeErrors(err); filterErr != nil {
		if page.Errors == nil {
			page.Errors = map[string]string{}
		}
		for k, v := range filterErr {
			page.Errors[k] = v
		}
		status = http.StatusBadRequest
		dashboard, err = h.dashboardUsecase.GetDashboard(r.Context(), dto.DateRangeQuery{})
	}
	if err != nil {
		h.renderer.RenderError(w, http.StatusInternalServerError, principal, "Failed to load dashboard")
		return
	}

	page.Dashboard = dashboard
	h.renderer.Render(w, status, view.PageDashboard, page)
}

// dateRangeErrors converts a filter problem into form messages, or nil
// when err is not about the filter.
func dateRangeErrors(err error) map[string]string {
	if errors.Is(err, usecase.ErrInvalidDateRange) {
		return map[string]string{"date_range": "Start date must not be after end date"}
	}
	if vErr, ok := usecase.AsValidationError(err); ok {
		return vErr.Fields
	}
	return nil
}
