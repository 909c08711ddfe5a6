package http

import (
	"net/http"

	"medinote/internal/delivery/http/handler"
	"medinote/internal/delivery/http/middleware"
	"medinote/internal/domain/entity"
	"medinote/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router               *mux.Router
	log                  *logrus.Logger
	authHandler          *handler.AuthHandler
	dashboardHandler     *handler.DashboardHandler
	patientHandler       *handler.PatientHandler
	importHandler        *handler.ImportHandler
	exportHandler        *handler.ExportHandler
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	headersMiddleware    *middleware.HeadersMiddleware
}

func NewRouter(
	log *logrus.Logger,
	authHandler *handler.AuthHandler,
	dashboardHandler *handler.DashboardHandler,
	patientHandler *handler.PatientHandler,
	importHandler *handler.ImportHandler,
	exportHandler *handler.ExportHandler,
	authMiddleware *middleware.AuthMiddleware,
	permissionMiddleware *middleware.PermissionMiddleware,
	headersMiddleware *middleware.HeadersMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		log:                  log,
		authHandler:          authHandler,
		dashboardHandler:     dashboardHandler,
		patientHandler:       patientHandler,
		importHandler:        importHandler,
		exportHandler:        exportHandler,
		authMiddleware:       authMiddleware,
		permissionMiddleware: permissionMiddleware,
		headersMiddleware:    headersMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public pages
	r.router.HandleFunc("/", r.authHandler.Root).Methods(http.MethodGet)
	r.router.HandleFunc("/login", r.authHandler.ShowLogin).Methods(http.MethodGet)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// JSON API (protected)
	api := r.router.PathPrefix("/api").Subrouter()
	api.Use(r.authMiddleware.AuthenticateAPI)
	api.NotFoundHandler = http.HandlerFunc(r.apiNotFound)
	api.Handle("/import/patients/json",
		r.require(entity.PermissionPatientImport, r.importHandler.ImportPatientsJSON),
	).Methods(http.MethodPost)

	// Browser pages (protected)
	web := r.router.NewRoute().Subrouter()
	web.Use(r.authMiddleware.Authenticate)
	web.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)
	web.Handle("/dashboard", r.require(entity.PermissionPatientRead, r.dashboardHandler.Show)).Methods(http.MethodGet)
	web.Handle("/edit/{id}", r.require(entity.PermissionPatientRead, r.patientHandler.Edit)).Methods(http.MethodGet)
	web.Handle("/add", r.require(entity.PermissionPatientWrite, r.patientHandler.Add)).Methods(http.MethodPost)
	web.Handle("/update/{id}", r.require(entity.PermissionPatientWrite, r.patientHandler.Update)).Methods(http.MethodPost)
	web.Handle("/delete/{id}", r.require(entity.PermissionPatientWrite, r.patientHandler.Delete)).Methods(http.MethodPost)
	web.Handle("/export/patients/excel", r.require(entity.PermissionPatientExport, r.exportHandler.ExportPatientsExcel)).Methods(http.MethodGet)

	r.router.Use(middleware.RequestLogger(r.log))
	r.router.Use(r.headersMiddleware.Handle)

	return r.router
}

func (r *Router) require(perm entity.Permission, h http.HandlerFunc) http.Handler {
	return r.permissionMiddleware.Require(perm)(h)
}

func (r *Router) apiNotFound(w http.ResponseWriter, req *http.Request) {
	response.NotFound(w, "Endpoint not found")
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
