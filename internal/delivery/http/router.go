package http

import (
	"net/http"

	"pharmacenter-api/internal/delivery/http/handler"
	"pharmacenter-api/internal/delivery/http/middleware"
	"pharmacenter-api/pkg/response"

	"github.com/gorilla/mux"
)

type RouterConfig struct {
	AuthMiddleware        *middleware.AuthMiddleware
	AuthHandler           *handler.AuthHandler
	AvailabilityHandler   *handler.AvailabilityHandler
	AppointmentHandler    *handler.AppointmentHandler
	ICalHandler           *handler.ICalHandler
	DoctorHandler         *handler.DoctorHandler
	SpecialtyHandler      *handler.SpecialtyHandler
	ProductHandler        *handler.ProductHandler
	ContactMessageHandler *handler.ContactMessageHandler
	AssistantHandler      *handler.AssistantHandler
}

func NewRouter(cfg RouterConfig) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.CORS)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, "ok", nil)
	}).Methods(http.MethodGet)

	// Calendar feeds live outside the API prefix so subscription URLs stay
	// short and stable.
	router.HandleFunc("/ical/calendar.ics", cfg.ICalHandler.GetFeed).Methods(http.MethodGet)
	router.HandleFunc("/ical/doctor/{id}/calendar.ics", cfg.ICalHandler.GetDoctorFeed).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", cfg.AuthHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", cfg.AuthHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", cfg.AuthHandler.RefreshToken).Methods(http.MethodPost)
	api.HandleFunc("/availability", cfg.AvailabilityHandler.GetAvailability).Methods(http.MethodGet)
	api.HandleFunc("/doctors", cfg.DoctorHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", cfg.DoctorHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/specialties", cfg.SpecialtyHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/specialties/{id}", cfg.SpecialtyHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/products", cfg.ProductHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", cfg.ProductHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/contact", cfg.ContactMessageHandler.Info).Methods(http.MethodGet)
	api.HandleFunc("/contact", cfg.ContactMessageHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/assistant/chat", cfg.AssistantHandler.Chat).Methods(http.MethodPost)

	// Authenticated routes
	authed := api.NewRoute().Subrouter()
	authed.Use(cfg.AuthMiddleware.Authenticate)
	authed.HandleFunc("/auth/logout", cfg.AuthHandler.Logout).Methods(http.MethodPost)
	authed.HandleFunc("/auth/me", cfg.AuthHandler.Me).Methods(http.MethodGet)
	authed.HandleFunc("/appointments", cfg.AppointmentHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/appointments/me", cfg.AppointmentHandler.GetMine).Methods(http.MethodGet)
	authed.HandleFunc("/appointments/{id}/status", cfg.AppointmentHandler.UpdateStatus).Methods(http.MethodPatch)

	// Back office, staff and admin only
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(cfg.AuthMiddleware.Authenticate, middleware.RequireStaff)
	admin.HandleFunc("/appointments", cfg.AppointmentHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/doctors", cfg.DoctorHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/doctors", cfg.DoctorHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id}", cfg.DoctorHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}/active", cfg.DoctorHandler.SetActive).Methods(http.MethodPatch)
	admin.HandleFunc("/specialties", cfg.SpecialtyHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/specialties/{id}", cfg.SpecialtyHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/products", cfg.ProductHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", cfg.ProductHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", cfg.ProductHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/messages", cfg.ContactMessageHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/messages/{id}/read", cfg.ContactMessageHandler.MarkRead).Methods(http.MethodPatch)
	admin.HandleFunc("/messages/{id}", cfg.ContactMessageHandler.Delete).Methods(http.MethodDelete)

	// Admin only
	users := api.PathPrefix("/admin/users").Subrouter()
	users.Use(cfg.AuthMiddleware.Authenticate, middleware.RequireAdmin)
	users.HandleFunc("", cfg.AuthHandler.ListUsers).Methods(http.MethodGet)
	users.HandleFunc("/{id}/active", cfg.AuthHandler.SetUserActive).Methods(http.MethodPatch)

	return router
}
