package api

import (
	"net/http"

	"github.com/nmarkovic/magacin/internal/model"
	"github.com/nmarkovic/magacin/internal/warehouse"
)

// ReservationsHandler handles the reservation log endpoints.
type ReservationsHandler struct {
	Store *warehouse.Store
}

type createReservationRequest struct {
	ItemID     string `json:"item_id"`
	Quantity   int    `json:"quantity"`
	ReservedBy string `json:"reserved_by"`
	Notes      string `json:"notes"`
}

// List handles GET /api/reservations.
func (h *ReservationsHandler) List(w http.ResponseWriter, r *http.Request) {
	reservations := h.Store.Reservations()
	if reservations == nil {
		reservations = []model.Reservation{}
	}
	jsonResponse(w, http.StatusOK, reservations)
}

// Create handles POST /api/reservations. The reserving user defaults to the
// authenticated one.
func (h *ReservationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ReservedBy == "" {
		if claims := GetClaims(r.Context()); claims != nil {
			req.ReservedBy = claims.Name
		}
	}

	res, err := h.Store.Reserve(r.Context(), req.ItemID, req.Quantity, req.ReservedBy, req.Notes)
	if err != nil {
		storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, res)
}
