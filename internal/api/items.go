package api

import (
	"net/http"

	"github.com/nmarkovic/magacin/internal/model"
	"github.com/nmarkovic/magacin/internal/warehouse"
)

// ItemsHandler handles the item registry endpoints. Creating an item is
// recording a supplier delivery: the store merges it into an existing row
// when the (code, name) pair already exists.
type ItemsHandler struct {
	Store *warehouse.Store
}

// deliveryRequest mirrors the intake form of the original dataset, including
// the Serbian field names for the hardware subtype columns. "input" carries
// the delivered quantity.
type deliveryRequest struct {
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	Project           string  `json:"project"`
	Location          string  `json:"lokacija"`
	Supplier          string  `json:"supplier"`
	Price             float64 `json:"price"`
	Quantity          int     `json:"input"`
	OkovName          string  `json:"okov_ime"`
	OkovPrice         float64 `json:"okov_cena"`
	OkovQty           int     `json:"okov_kom"`
	PloceName         string  `json:"ploce_ime"`
	PlocePrice        float64 `json:"ploce_cena"`
	PloceQty          int     `json:"ploce_kom"`
	LowStockThreshold int     `json:"low_stock_threshold"`
}

func (req *deliveryRequest) candidate() warehouse.DeliveryCandidate {
	return warehouse.DeliveryCandidate{
		Code:              req.Code,
		Name:              req.Name,
		Project:           req.Project,
		Location:          req.Location,
		Supplier:          req.Supplier,
		Price:             req.Price,
		Quantity:          req.Quantity,
		OkovName:          req.OkovName,
		OkovPrice:         req.OkovPrice,
		OkovQty:           req.OkovQty,
		PloceName:         req.PloceName,
		PlocePrice:        req.PlocePrice,
		PloceQty:          req.PloceQty,
		LowStockThreshold: req.LowStockThreshold,
	}
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.Store.Items()
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// LowStock handles GET /api/items/low-stock.
func (h *ItemsHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	items := h.Store.LowStock()
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	item := h.Store.Item(id)
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	// Return the delivery history alongside the row.
	deliveries := h.Store.ItemDeliveries(id)
	if deliveries == nil {
		deliveries = []model.Delivery{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"item":       item,
		"deliveries": deliveries,
	})
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req deliveryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Store.RecordDelivery(r.Context(), req.candidate())
	if err != nil {
		storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Update handles PUT /api/items/{id}. Derived stock fields in the body are
// ignored; reconciliation rewrites them.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.Item
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.ID = r.PathValue("id")

	item, err := h.Store.UpdateItem(r.Context(), req)
	if err != nil {
		storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteItem(r.Context(), r.PathValue("id")); err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusNoContent, nil)
}

// GetDeliveries handles GET /api/items/{id}/deliveries.
func (h *ItemsHandler) GetDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries := h.Store.ItemDeliveries(r.PathValue("id"))
	if deliveries == nil {
		deliveries = []model.Delivery{}
	}
	jsonResponse(w, http.StatusOK, deliveries)
}

// ListDeliveries handles GET /api/deliveries.
func (h *ItemsHandler) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries := h.Store.Deliveries()
	if deliveries == nil {
		deliveries = []model.Delivery{}
	}
	jsonResponse(w, http.StatusOK, deliveries)
}

// Refresh handles POST /api/refresh, forcing a full reconciliation pass.
func (h *ItemsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.RefreshAll(r.Context()); err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"status": "refreshed"})
}
