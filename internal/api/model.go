package api

import (
	"net/http"

	"github.com/creditvision/riskd/internal/modelinfo"
)

type ModelHandler struct {
	provider *modelinfo.Provider
}

func NewModelHandler(provider *modelinfo.Provider) *ModelHandler {
	return &ModelHandler{provider: provider}
}

func (h *ModelHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.provider.Info())
}
