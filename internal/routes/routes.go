package routes

import (
	"net/http"

	"studyshare/internal/handlers"
	"studyshare/internal/middleware"
	"studyshare/internal/models"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Content     *handlers.ContentHandler
	Moderation  *handlers.ModerationHandler
	Leaderboard *handlers.LeaderboardHandler
	Health      *handlers.HealthHandler
}

func InitRoutes(router *mux.Router, jwtSecret string, h Handlers) {
	router.Use(middleware.RequestID, middleware.Recoverer, middleware.Logging, middleware.Metrics)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", h.Health.Health).Methods(http.MethodGet)

	auth := middleware.JWTAuth(jwtSecret)
	onlyAdmin := middleware.OnlyRole(models.RoleAdmin)
	anyUser := middleware.AnyRole(models.RoleStudent, models.RoleAdmin)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/register", h.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/content", h.Content.ListApproved).Methods(http.MethodGet)
	api.HandleFunc("/content/{id}", h.Content.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", h.Leaderboard.Top).Methods(http.MethodGet)

	// --- Защищённые JWT ---
	api.Handle("/profile", auth(http.HandlerFunc(h.Auth.Profile))).Methods(http.MethodGet)
	api.Handle("/content", auth(anyUser(http.HandlerFunc(h.Content.Create)))).Methods(http.MethodPost)

	// Модерация живёт рядом с /content, но только для админа
	api.Handle("/content/{id}/approve", auth(onlyAdmin(http.HandlerFunc(h.Moderation.Approve)))).Methods(http.MethodPut)
	api.Handle("/content/{id}/reject", auth(onlyAdmin(http.HandlerFunc(h.Moderation.Reject)))).Methods(http.MethodPut)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(auth, onlyAdmin)
	admin.HandleFunc("/content", h.Content.AdminList).Methods(http.MethodGet)
	admin.HandleFunc("/content/{id}", h.Content.Delete).Methods(http.MethodDelete)
}
