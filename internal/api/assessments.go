package api

import (
	"net/http"
	"strconv"

	"github.com/creditvision/riskd/internal/store"
)

type AssessmentsHandler struct {
	store store.Store
}

func NewAssessmentsHandler(s store.Store) *AssessmentsHandler {
	return &AssessmentsHandler{store: s}
}

func (h *AssessmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "assessment history disabled"})
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	list, err := h.store.ListAssessments(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list assessments"})
		return
	}
	if list == nil {
		list = []*store.Assessment{}
	}
	writeJSON(w, http.StatusOK, list)
}
