package api

import (
	"log/slog"
	"net/http"

	"github.com/nmarkovic/magacin/internal/importer"
	"github.com/nmarkovic/magacin/internal/warehouse"
)

// ImportHandler handles bulk CSV import (admin only).
type ImportHandler struct {
	Store *warehouse.Store
}

type importResponse struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// Import handles POST /api/import. The body is a CSV or tab-separated export;
// each usable row becomes one delivery. Rows the store rejects are reported
// but do not abort the rest of the import.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	candidates, err := importer.Parse(r.Body)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := importResponse{}
	for _, cand := range candidates {
		if _, err := h.Store.RecordDelivery(r.Context(), cand); err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, cand.Code+": "+err.Error())
			continue
		}
		resp.Imported++
	}

	slog.Info("import finished", "imported", resp.Imported, "failed", resp.Failed)
	jsonResponse(w, http.StatusOK, resp)
}
