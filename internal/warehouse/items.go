package warehouse

import (
	"context"
	"strings"

	"github.com/nmarkovic/magacin/internal/model"
)

// DeliveryCandidate is one incoming supplier delivery, the input to the
// create-or-merge path. The importer produces the same shape from tabular
// rows.
type DeliveryCandidate struct {
	Code              string
	Name              string
	Project           string
	Location          string
	Supplier          string
	Price             float64
	Quantity          int
	OkovName          string
	OkovPrice         float64
	OkovQty           int
	PloceName         string
	PlocePrice        float64
	PloceQty          int
	LowStockThreshold int
}

func (c *DeliveryCandidate) sanitize() {
	c.Code = strings.TrimSpace(c.Code)
	c.Name = strings.TrimSpace(c.Name)
	c.Price = finiteOrZero(c.Price)
	c.OkovPrice = finiteOrZero(c.OkovPrice)
	c.PlocePrice = finiteOrZero(c.PlocePrice)
}

// RecordDelivery applies one supplier delivery. If an item with the same
// trimmed (code, name) already exists the delivery is appended against it and
// its static attributes are refreshed from the candidate; otherwise a new
// item row is created. Reconciliation of the name pool runs before return.
func (s *Store) RecordDelivery(ctx context.Context, cand DeliveryCandidate) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cand.sanitize()
	if cand.Code == "" || cand.Name == "" {
		return nil, ErrCodeNameRequired
	}

	now := s.now()
	existing := s.findByCodeName(cand.Code, cand.Name)

	if existing != nil {
		merged := *existing
		merged.Supplier = cand.Supplier
		merged.Price = cand.Price
		merged.Project = cand.Project
		if cand.Location != "" {
			merged.Location = cand.Location
		}
		// Attribute names and prices are overwritten when supplied; the
		// quantity sub-fields accumulate across deliveries.
		if cand.OkovName != "" {
			merged.OkovName = cand.OkovName
		}
		if cand.OkovPrice > 0 {
			merged.OkovPrice = cand.OkovPrice
		}
		merged.OkovQty += cand.OkovQty
		if cand.PloceName != "" {
			merged.PloceName = cand.PloceName
		}
		if cand.PlocePrice > 0 {
			merged.PlocePrice = cand.PlocePrice
		}
		merged.PloceQty += cand.PloceQty
		merged.UpdatedAt = now

		if merged.HasOkov() && merged.HasPloce() {
			return nil, ErrBothAttributeGroups
		}

		*existing = merged
		s.deliveries = append(s.deliveries, model.Delivery{
			ID:         model.NewID(),
			ItemID:     existing.ID,
			Quantity:   cand.Quantity,
			Price:      cand.Price,
			Supplier:   cand.Supplier,
			ReceivedAt: now,
		})

		s.reconcileName(existing.Name)
		if err := s.save(ctx, colItems, colDeliveries); err != nil {
			return nil, err
		}
		cp := *existing
		return &cp, nil
	}

	item := model.Item{
		ID:                model.NewID(),
		Code:              cand.Code,
		Name:              cand.Name,
		Project:           cand.Project,
		Location:          cand.Location,
		Supplier:          cand.Supplier,
		Price:             cand.Price,
		Input:             cand.Quantity,
		Stock:             cand.Quantity,
		Available:         cand.Quantity,
		OkovName:          cand.OkovName,
		OkovPrice:         cand.OkovPrice,
		OkovQty:           cand.OkovQty,
		PloceName:         cand.PloceName,
		PlocePrice:        cand.PlocePrice,
		PloceQty:          cand.PloceQty,
		LowStockThreshold: cand.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if item.HasOkov() && item.HasPloce() {
		return nil, ErrBothAttributeGroups
	}

	s.items = append(s.items, item)
	s.deliveries = append(s.deliveries, model.Delivery{
		ID:         model.NewID(),
		ItemID:     item.ID,
		Quantity:   cand.Quantity,
		Price:      cand.Price,
		Supplier:   cand.Supplier,
		ReceivedAt: now,
	})

	s.reconcileName(item.Name)
	if err := s.save(ctx, colItems, colDeliveries); err != nil {
		return nil, err
	}
	cp := s.items[len(s.items)-1]
	return &cp, nil
}

// UpdateItem replaces an item's static fields wholesale. Derived fields are
// rewritten by the reconciliation pass that follows, so whatever the caller
// put in them is ignored.
func (s *Store) UpdateItem(ctx context.Context, updated model.Item) (*model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	if updated.HasOkov() && updated.HasPloce() {
		return nil, ErrBothAttributeGroups
	}

	it := &s.items[idx]
	oldName := it.Name

	it.Code = updated.Code
	it.Name = updated.Name
	it.Project = updated.Project
	it.Location = updated.Location
	it.Supplier = updated.Supplier
	it.Price = finiteOrZero(updated.Price)
	it.OkovName = updated.OkovName
	it.OkovPrice = finiteOrZero(updated.OkovPrice)
	it.OkovQty = updated.OkovQty
	it.PloceName = updated.PloceName
	it.PlocePrice = finiteOrZero(updated.PlocePrice)
	it.PloceQty = updated.PloceQty
	it.LowStockThreshold = updated.LowStockThreshold
	it.UpdatedAt = s.now()

	// A rename moves the item between pools; both must be recomputed.
	s.reconcileName(oldName)
	if it.Name != oldName {
		s.reconcileName(it.Name)
	}

	if err := s.save(ctx, colItems); err != nil {
		return nil, err
	}
	cp := s.items[idx]
	return &cp, nil
}

// DeleteItem removes an item and cascade-deletes every event referencing it,
// then reconciles the remaining members of its former name pool. Deleting an
// unknown id is a no-op.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var name string
	found := false
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID == id {
			name = it.Name
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return nil
	}
	s.items = kept

	keptDeliveries := s.deliveries[:0]
	for _, d := range s.deliveries {
		if d.ItemID != id {
			keptDeliveries = append(keptDeliveries, d)
		}
	}
	s.deliveries = keptDeliveries

	keptReservations := s.reservations[:0]
	for _, r := range s.reservations {
		if r.ItemID != id {
			keptReservations = append(keptReservations, r)
		}
	}
	s.reservations = keptReservations

	keptPickups := s.pickups[:0]
	for _, p := range s.pickups {
		if p.ItemID != id {
			keptPickups = append(keptPickups, p)
		}
	}
	s.pickups = keptPickups

	// Pooled totals of the surviving rows shrink.
	s.reconcileName(name)

	return s.save(ctx, colItems, colDeliveries, colReservations, colPickups)
}

// findByCodeName matches on trimmed (code, name). Callers must hold the lock
// and pass already-trimmed values.
func (s *Store) findByCodeName(code, name string) *model.Item {
	for i := range s.items {
		if strings.TrimSpace(s.items[i].Code) == code && strings.TrimSpace(s.items[i].Name) == name {
			return &s.items[i]
		}
	}
	return nil
}
