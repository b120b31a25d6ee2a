package warehouse

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/nmarkovic/magacin/internal/model"
)

// Reserve appends a reservation against an item's name pool. Availability is
// not checked: over-reserving succeeds and surfaces as negative available,
// which lets operators see oversubscription.
func (s *Store) Reserve(ctx context.Context, itemID string, quantity int, reservedBy, notes string) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return nil, ErrQuantityNotPositive
	}

	var name string
	found := false
	for i := range s.items {
		if s.items[i].ID == itemID {
			name = s.items[i].Name
			found = true
			break
		}
	}
	if !found {
		return nil, ErrItemNotFound
	}

	code, err := newReservationCode()
	if err != nil {
		return nil, fmt.Errorf("generating reservation code: %w", err)
	}

	res := model.Reservation{
		ID:         model.NewID(),
		ItemID:     itemID,
		Quantity:   quantity,
		ReservedBy: reservedBy,
		ReservedAt: s.now(),
		Code:       code,
		Notes:      notes,
	}
	s.reservations = append(s.reservations, res)

	s.reconcileName(name)
	if err := s.save(ctx, colItems, colReservations); err != nil {
		return nil, err
	}
	return &res, nil
}

// RecordPickup appends a pickup. The picker must be a known user holding a
// pickup-capable role with an assigned code; a supplied confirmation code
// must be exactly 6 characters and match that code (case-insensitive) or the
// mutation is rejected. A pickup recorded without a code stays unconfirmed
// and never counts toward output; there is no later-confirmation operation.
func (s *Store) RecordPickup(ctx context.Context, itemID string, quantity int, pickedUpBy, confirmationCode, notes string) (*model.Pickup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return nil, ErrQuantityNotPositive
	}

	var name string
	found := false
	for i := range s.items {
		if s.items[i].ID == itemID {
			name = s.items[i].Name
			found = true
			break
		}
	}
	if !found {
		return nil, ErrItemNotFound
	}

	user := s.findUserByName(pickedUpBy)
	if user == nil || !user.CanPickUp() || user.UserCode == "" {
		return nil, ErrUnknownPicker
	}
	if confirmationCode != "" {
		if len(confirmationCode) != 6 {
			return nil, ErrCodeLength
		}
		if !user.CodeMatches(confirmationCode) {
			return nil, ErrCodeMismatch
		}
	}

	now := s.now()
	pickup := model.Pickup{
		ID:               model.NewID(),
		ItemID:           itemID,
		Quantity:         quantity,
		PickedUpBy:       pickedUpBy,
		PickedUpAt:       now,
		ConfirmationCode: confirmationCode,
		Notes:            notes,
	}
	if len(confirmationCode) == 6 {
		at := now
		pickup.ConfirmedAt = &at
	}
	s.pickups = append(s.pickups, pickup)

	s.reconcileName(name)
	if err := s.save(ctx, colItems, colPickups); err != nil {
		return nil, err
	}
	return &pickup, nil
}

// newReservationCode generates a short random token in the original
// dataset's style: nine lowercase alphanumeric characters.
func newReservationCode() (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	result := make([]byte, 9)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[n.Int64()]
	}
	return string(result), nil
}
