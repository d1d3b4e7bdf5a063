package server

import (
	"net/http"
	"time"

	"persianas-backend/internal/handlers"
	"persianas-backend/internal/httpx"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, log *logrus.Logger) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		// Lightweight DB check (SELECT 1) – detailed errors stay out of the body
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Product catalog. List/Create via /products; the rest via explicit
	// subpaths with ?id= for simplicity.
	ph := handlers.NewProductHandler(db)
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			ph.List(w, r)
		case http.MethodPost:
			ph.Create(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	})
	mux.HandleFunc("/products/get", ph.Get)
	mux.HandleFunc("/products/update", ph.Update)
	mux.HandleFunc("/products/delete", ph.Delete)
	mux.HandleFunc("/products/seed", ph.Seed)

	// Business configuration singleton.
	cfgHandler := handlers.NewConfigHandler(db)
	mux.HandleFunc("/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			cfgHandler.Get(w, r)
		case http.MethodPut, http.MethodPost:
			cfgHandler.Put(w, r)
		default:
			w.Header().Set("Allow", "GET,PUT,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	})

	// Quotes and their PDF exports.
	qh := handlers.NewQuoteHandler(db)
	mux.HandleFunc("/quotes", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			qh.List(w, r)
		case http.MethodPost:
			qh.Create(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	})
	mux.HandleFunc("/quotes/get", qh.Get)
	mux.HandleFunc("/quotes/delete", qh.Delete)
	mux.HandleFunc("/quotes/pdf", qh.PDF)
	mux.HandleFunc("/quotes/pdf/both", qh.PDFBoth)

	// Root placeholder.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("API de Cotización de Persianas Enrollables"))
	})

	return withRecover(withLogging(log, mux))
}

func withLogging(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request")
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
