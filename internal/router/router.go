package router

import (
	"net/http"

	"storefront/internal/backend"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/session"
	"storefront/internal/views"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

func SetupRouter(client *backend.Client, sessions *session.Manager, renderer *views.Renderer, logger zerolog.Logger) *mux.Router {
	authHandler := handlers.NewAuthHandler(client, sessions, renderer, logger)
	catalogHandler := handlers.NewCatalogHandler(client, renderer, logger)
	storeHandler := handlers.NewStoreHandler(client, renderer, logger)
	dashboardHandler := handlers.NewDashboardHandler(client, renderer, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(10), 20)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())
	r.Use(middleware.Sessions(sessions))

	r.HandleFunc("/", authHandler.LoginPage).Methods("GET")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/register", authHandler.RegisterPage).Methods("GET")
	r.HandleFunc("/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/logout", authHandler.Logout).Methods("GET")

	user := r.PathPrefix("").Subrouter()
	user.Use(middleware.RequireRole(string(models.RoleUser)))
	user.HandleFunc("/dashboard", dashboardHandler.Dashboard).Methods("GET")
	user.HandleFunc("/store", storeHandler.Store).Methods("GET")
	user.HandleFunc("/store/cart", storeHandler.AddToCart).Methods("POST")

	admin := r.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireRole(string(models.RoleAdmin)))
	admin.HandleFunc("/products", catalogHandler.Products).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(authHandler.NotFound)

	return r
}
