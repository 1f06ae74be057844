package api

import (
	"net/http"

	"github.com/okian/quickmed/internal/domain/types"
)

// CalculatorsHandler handles catalog requests.
type CalculatorsHandler struct {
	deps CatalogDependencies
}

// NewCalculatorsHandler creates a new catalog handler.
func NewCalculatorsHandler(deps CatalogDependencies) *CalculatorsHandler {
	return &CalculatorsHandler{deps: deps}
}

// HandleListCalculators handles GET /calculators?q=name requests.
func (h *CalculatorsHandler) HandleListCalculators(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	infos := h.deps.Calculators(r.URL.Query().Get("q"))
	out := make([]types.CalculatorInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, types.NewCalculatorInfo(info))
	}
	writeJSON(w, http.StatusOK, out)
}
