package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"myvoice/internal/cache"
	"myvoice/internal/repository"
	"myvoice/internal/service"
	"myvoice/internal/transport/rest/handler"
)

// CORSConfig carries the header values the CORS middleware emits.
type CORSConfig struct {
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// Container holds all dependencies for the router
type Container struct {
	IntakeService *service.IntakeService
	ReportService *service.ReportService
	Store         repository.ResponseStore
	Cache         cache.ResponseCache
	CORS          CORSConfig
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	questionnaireHandler := handler.NewQuestionnaireHandler(c.IntakeService)
	responseHandler := handler.NewResponseHandler(c.IntakeService, c.ReportService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	healthHandler := handler.NewHealthHandler(c.Store, c.Cache)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.CORS))

	// Health check
	r.HandleFunc("/health", healthHandler.Get).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/questionnaire", questionnaireHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/responses", responseHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/responses", responseHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/responses/export", responseHandler.Export).Methods("GET", "OPTIONS")
	v1.HandleFunc("/reports", reportHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/reports/questions/{questionID}", reportHandler.GetQuestion).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(cfg CORSConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
