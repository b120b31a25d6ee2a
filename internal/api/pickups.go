package api

import (
	"net/http"

	"github.com/nmarkovic/magacin/internal/model"
	"github.com/nmarkovic/magacin/internal/warehouse"
)

// PickupsHandler handles the pickup log endpoints.
type PickupsHandler struct {
	Store *warehouse.Store
}

type createPickupRequest struct {
	ItemID           string `json:"item_id"`
	Quantity         int    `json:"quantity"`
	PickedUpBy       string `json:"picked_up_by"`
	ConfirmationCode string `json:"confirmation_code"`
	Notes            string `json:"notes"`
}

// List handles GET /api/pickups.
func (h *PickupsHandler) List(w http.ResponseWriter, r *http.Request) {
	pickups := h.Store.Pickups()
	if pickups == nil {
		pickups = []model.Pickup{}
	}
	jsonResponse(w, http.StatusOK, pickups)
}

// Create handles POST /api/pickups. The picker defaults to the authenticated
// user; a pickup submitted without a confirmation code is recorded but stays
// unconfirmed and does not count toward output.
func (h *PickupsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPickupRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.PickedUpBy == "" {
		if claims := GetClaims(r.Context()); claims != nil {
			req.PickedUpBy = claims.Name
		}
	}

	pickup, err := h.Store.RecordPickup(r.Context(), req.ItemID, req.Quantity, req.PickedUpBy, req.ConfirmationCode, req.Notes)
	if err != nil {
		storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, pickup)
}
