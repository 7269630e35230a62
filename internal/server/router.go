package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nguyentantai21042004/tubescribe/internal/logger"
)

// NewRouter wires the API routes
func NewRouter(h *Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	router.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Get("/status", h.Status)
		apiRouter.Post("/transcribe", h.Transcribe)
		apiRouter.Get("/transcribe/ws", h.TranscribeStream)
		apiRouter.Post("/export/docx", h.ExportDOCX)
	})

	return router
}

// requestLogger copies chi's request id into the context key our logger reads
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
