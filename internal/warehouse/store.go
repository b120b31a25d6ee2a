// Package warehouse holds the inventory core: the item registry, the three
// append-only event logs (deliveries, reservations, pickups) and the
// reconciliation engine that derives every item's stock figures from them.
//
// The Store is the single writer. Every mutation runs to completion under one
// lock: validate, apply, reconcile the affected name pools, then hand the
// full replacement collections to the persistence collaborator.
package warehouse

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nmarkovic/magacin/internal/model"
	"github.com/nmarkovic/magacin/internal/persist"
)

// Collection names. These match the original dataset keys so previously
// stored data remains loadable.
const (
	colItems        = "warehouse_items"
	colDeliveries   = "warehouse_input_history"
	colReservations = "warehouse_reservations"
	colPickups      = "warehouse_pickups"
	colUsers        = "warehouse_users"
	colProjects     = "warehouse_projects"
)

// Seed supplies initial collections for a first run, used only for
// collections the persister has nothing stored under.
type Seed struct {
	Items        []model.Item
	Deliveries   []model.Delivery
	Reservations []model.Reservation
	Pickups      []model.Pickup
	Users        []model.User
	Projects     []model.Project
}

// Store holds the registry and event logs in memory and persists them as
// named JSON collections after every mutation.
type Store struct {
	mu        sync.RWMutex
	persister persist.Persister
	now       func() time.Time

	items        []model.Item
	deliveries   []model.Delivery
	reservations []model.Reservation
	pickups      []model.Pickup
	users        []model.User
	projects     []model.Project
}

// Open loads all collections from the persister, falling back to seed data
// for collections with nothing stored, runs a full reconciliation pass and
// persists the result.
func Open(ctx context.Context, p persist.Persister, seed Seed) (*Store, error) {
	s := &Store{persister: p, now: time.Now}

	if err := loadCollection(ctx, p, colItems, &s.items, seed.Items); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, p, colDeliveries, &s.deliveries, seed.Deliveries); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, p, colReservations, &s.reservations, seed.Reservations); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, p, colPickups, &s.pickups, seed.Pickups); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, p, colUsers, &s.users, seed.Users); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, p, colProjects, &s.projects, seed.Projects); err != nil {
		return nil, err
	}

	// Load-time reconciliation over whatever was persisted.
	s.reconcileAll()

	if err := s.save(ctx, colItems, colDeliveries, colReservations, colPickups, colUsers, colProjects); err != nil {
		return nil, err
	}
	return s, nil
}

func loadCollection[T any](ctx context.Context, p persist.Persister, name string, dst *[]T, fallback []T) error {
	data, err := p.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("loading collection %q: %w", name, err)
	}
	if data == nil {
		*dst = append([]T(nil), fallback...)
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decoding collection %q: %w", name, err)
	}
	return nil
}

// save hands the named collections to the persister as full replacements.
// Callers must hold the write lock.
func (s *Store) save(ctx context.Context, names ...string) error {
	for _, name := range names {
		var v any
		switch name {
		case colItems:
			v = s.items
		case colDeliveries:
			v = s.deliveries
		case colReservations:
			v = s.reservations
		case colPickups:
			v = s.pickups
		case colUsers:
			v = s.users
		case colProjects:
			v = s.projects
		default:
			return fmt.Errorf("unknown collection %q", name)
		}

		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding collection %q: %w", name, err)
		}
		if err := s.persister.Save(ctx, name, data); err != nil {
			return fmt.Errorf("persisting collection %q: %w", name, err)
		}
	}
	return nil
}

// RefreshAll re-runs reconciliation over every name pool and persists the
// registry. The manual "refresh" signal.
func (s *Store) RefreshAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reconcileAll()
	return s.save(ctx, colItems)
}

// Items returns a copy of the item registry.
func (s *Store) Items() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Item(nil), s.items...)
}

// Item returns the item with the given id, or nil if absent.
func (s *Store) Item(id string) *model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			cp := s.items[i]
			return &cp
		}
	}
	return nil
}

// LowStock returns items whose pooled stock is at or below their threshold.
func (s *Store) LowStock() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var low []model.Item
	for i := range s.items {
		if s.items[i].Stock <= s.items[i].LowStockThreshold {
			low = append(low, s.items[i])
		}
	}
	return low
}

// Deliveries returns a copy of the delivery log.
func (s *Store) Deliveries() []model.Delivery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Delivery(nil), s.deliveries...)
}

// ItemDeliveries returns the delivery history for one item.
func (s *Store) ItemDeliveries(itemID string) []model.Delivery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Delivery
	for _, d := range s.deliveries {
		if d.ItemID == itemID {
			out = append(out, d)
		}
	}
	return out
}

// Reservations returns a copy of the reservation log.
func (s *Store) Reservations() []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Reservation(nil), s.reservations...)
}

// Pickups returns a copy of the pickup log.
func (s *Store) Pickups() []model.Pickup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Pickup(nil), s.pickups...)
}

// Users returns a copy of the user registry.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.User(nil), s.users...)
}

// UserByEmail returns the user with the given email, or nil if absent.
func (s *Store) UserByEmail(email string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			cp := s.users[i]
			return &cp
		}
	}
	return nil
}

// Projects returns a copy of the project registry.
func (s *Store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Project(nil), s.projects...)
}

// findUserByName returns the user with the given display name. Callers must
// hold the lock.
func (s *Store) findUserByName(name string) *model.User {
	for i := range s.users {
		if s.users[i].Name == name {
			return &s.users[i]
		}
	}
	return nil
}
