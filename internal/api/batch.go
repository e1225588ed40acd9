package api

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/creditvision/riskd/internal/batch"
	"github.com/creditvision/riskd/internal/risk"
	"github.com/creditvision/riskd/internal/store"
)

type BatchHandler struct {
	scorer *risk.Scorer
	store  store.Store
	logger *slog.Logger
}

func NewBatchHandler(scorer *risk.Scorer, s store.Store, logger *slog.Logger) *BatchHandler {
	return &BatchHandler{scorer: scorer, store: s, logger: logger}
}

func (h *BatchHandler) Process(w http.ResponseWriter, r *http.Request) {
	var reader io.Reader

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file provided"})
			return
		}
		defer file.Close()
		reader = file
	} else {
		reader = r.Body
	}

	result, err := batch.Process(reader, h.scorer)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if h.store != nil {
		for _, row := range result.Rows {
			if row.Error != "" {
				continue
			}
			a := &store.Assessment{
				Input:              row.Record,
				DefaultProbability: row.DefaultProbability,
				RiskLevel:          row.RiskLevel,
				ApprovalStatus:     row.Decision,
				SuggestedRate:      row.SuggestedRate,
				Confidence:         risk.Confidence(row.Record),
				Source:             store.SourceBatch,
			}
			if err := h.store.RecordAssessment(r.Context(), a); err != nil {
				h.logger.Warn("failed to record batch assessment", "row", row.Row, "error", err)
				break
			}
		}
	}

	for _, row := range result.Rows {
		if row.Error == "" {
			predictionsTotal.WithLabelValues(row.RiskLevel).Inc()
		}
	}

	writeJSON(w, http.StatusOK, result)
}
