package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/creditvision/riskd/internal/config"
	"github.com/creditvision/riskd/internal/events"
	"github.com/creditvision/riskd/internal/modelinfo"
	"github.com/creditvision/riskd/internal/ocr"
	"github.com/creditvision/riskd/internal/risk"
	"github.com/creditvision/riskd/internal/store"
)

func NewRouter(scorer *risk.Scorer, recognizer ocr.Recognizer, s store.Store, ev events.Client, provider *modelinfo.Provider, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	predict := NewPredictHandler(scorer, s, ev, logger)
	documents := NewDocumentsHandler(recognizer, cfg.OCRTimeout(), cfg.OCR.MaxFileBytes, cfg.OCR.AllowedTypes, ev, logger)
	batchH := NewBatchHandler(scorer, s, logger)
	model := NewModelHandler(provider)
	assessments := NewAssessmentsHandler(s)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/predict", instrument("predict", predict.Predict))
		r.Post("/predict/batch", instrument("predict_batch", batchH.Process))
		r.Post("/documents/extract", instrument("documents_extract", documents.Extract))
		r.Get("/model", model.Info)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.Server.AdminToken))
			r.Get("/assessments", assessments.List)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h(w, r)
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
