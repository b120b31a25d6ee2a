package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/nmarkovic/magacin/internal/warehouse"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("error encoding response: %v", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// storeError maps warehouse errors to HTTP responses: not-found to 404,
// validation rejections to 400, everything else to 500.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, warehouse.ErrItemNotFound),
		errors.Is(err, warehouse.ErrUserNotFound),
		errors.Is(err, warehouse.ErrProjectNotFound):
		jsonError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, warehouse.ErrCodeNameRequired),
		errors.Is(err, warehouse.ErrBothAttributeGroups),
		errors.Is(err, warehouse.ErrQuantityNotPositive),
		errors.Is(err, warehouse.ErrUnknownPicker),
		errors.Is(err, warehouse.ErrCodeLength),
		errors.Is(err, warehouse.ErrCodeMismatch),
		errors.Is(err, warehouse.ErrInvalidRole),
		errors.Is(err, warehouse.ErrEmailTaken):
		jsonError(w, http.StatusBadRequest, err.Error())
	default:
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}
