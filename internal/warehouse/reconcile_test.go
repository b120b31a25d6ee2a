package warehouse

import (
	"context"
	"testing"
	"time"

	"github.com/nmarkovic/magacin/internal/model"
	"github.com/nmarkovic/magacin/internal/persist"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(context.Background(), persist.NewMemory(), Seed{})
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	return s
}

// addPicker registers a pickup-capable user with the assigned code "ABC123".
func addPicker(t *testing.T, s *Store, name string) *model.User {
	t.Helper()

	u, err := s.CreateUser(context.Background(), model.User{
		Name:     name,
		Email:    name + "@example.com",
		Role:     model.RolePickup,
		UserCode: "ABC123",
	})
	if err != nil {
		t.Fatalf("creating picker: %v", err)
	}
	return u
}

func TestNamePoolScenario(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	addPicker(t, s, "Marko")

	a, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C1", Name: "Wood", Quantity: 100})
	b, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C2", Name: "Wood", Quantity: 50})

	if _, err := s.Reserve(ctx, a.ID, 30, "Ana", ""); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if _, err := s.RecordPickup(ctx, b.ID, 20, "Marko", "ABC123", ""); err != nil {
		t.Fatalf("RecordPickup: %v", err)
	}

	for _, id := range []string{a.ID, b.ID} {
		it := s.Item(id)
		if it.Stock != 130 {
			t.Errorf("item %s: expected stock 130, got %d", it.Code, it.Stock)
		}
		if it.Reserved != 30 {
			t.Errorf("item %s: expected reserved 30, got %d", it.Code, it.Reserved)
		}
		if it.Available != 100 {
			t.Errorf("item %s: expected available 100, got %d", it.Code, it.Available)
		}
		if it.Output != 20 {
			t.Errorf("item %s: expected output 20, got %d", it.Code, it.Output)
		}
	}

	if got := s.Item(a.ID).Input; got != 100 {
		t.Errorf("expected input(A) 100, got %d", got)
	}
	if got := s.Item(b.ID).Input; got != 50 {
		t.Errorf("expected input(B) 50, got %d", got)
	}
}

func TestPoolingInvariant(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	addPicker(t, s, "Marko")

	a, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C1", Name: "Screws", Quantity: 10})
	s.RecordDelivery(ctx, DeliveryCandidate{Code: "C2", Name: "Screws", Quantity: 7})
	s.RecordDelivery(ctx, DeliveryCandidate{Code: "C3", Name: "Screws", Quantity: 3})
	s.Reserve(ctx, a.ID, 5, "Ana", "")
	s.RecordPickup(ctx, a.ID, 2, "Marko", "ABC123", "")

	var pool []model.Item
	for _, it := range s.Items() {
		if it.Name == "Screws" {
			pool = append(pool, it)
		}
	}
	if len(pool) != 3 {
		t.Fatalf("expected 3 pool members, got %d", len(pool))
	}
	for _, it := range pool[1:] {
		if it.Stock != pool[0].Stock || it.Reserved != pool[0].Reserved ||
			it.Available != pool[0].Available || it.Output != pool[0].Output {
			t.Errorf("pooled fields differ within name pool: %+v vs %+v", pool[0], it)
		}
	}

	// Conservation: stock = input - output, available = stock - reserved.
	if pool[0].Stock != 20-2 {
		t.Errorf("expected stock 18, got %d", pool[0].Stock)
	}
	if pool[0].Available != 18-5 {
		t.Errorf("expected available 13, got %d", pool[0].Available)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	addPicker(t, s, "Marko")

	a, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C1", Name: "Glue", Quantity: 40})
	s.Reserve(ctx, a.ID, 10, "Ana", "")
	s.RecordPickup(ctx, a.ID, 5, "Marko", "ABC123", "")

	if err := s.RefreshAll(ctx); err != nil {
		t.Fatalf("RefreshAll: %v", err)
	}
	first := s.Items()

	if err := s.RefreshAll(ctx); err != nil {
		t.Fatalf("RefreshAll: %v", err)
	}
	second := s.Items()

	for i := range first {
		a, b := first[i], second[i]
		if a.Input != b.Input || a.Output != b.Output || a.Stock != b.Stock ||
			a.Reserved != b.Reserved || a.Available != b.Available ||
			a.LastReservedBy != b.LastReservedBy || a.LastPickedUpBy != b.LastPickedUpBy {
			t.Errorf("reconcile not idempotent: %+v vs %+v", a, b)
		}
	}
}

func TestUnconfirmedPickupNeverCountsTowardOutput(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	addPicker(t, s, "Marko")

	it, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C1", Name: "Tape", Quantity: 10})

	// A legacy event with a 5-character code can only exist in the log as
	// unconfirmed; it must never affect output.
	s.pickups = append(s.pickups, model.Pickup{
		ID:               model.NewID(),
		ItemID:           it.ID,
		Quantity:         4,
		PickedUpBy:       "Marko",
		PickedUpAt:       time.Now(),
		ConfirmationCode: "AB123",
	})
	if err := s.RefreshAll(ctx); err != nil {
		t.Fatalf("RefreshAll: %v", err)
	}

	if got := s.Item(it.ID).Output; got != 0 {
		t.Errorf("expected output 0 with unconfirmed pickup, got %d", got)
	}

	// The identical quantity through a valid 6-character code counts.
	if _, err := s.RecordPickup(ctx, it.ID, 4, "Marko", "ABC123", ""); err != nil {
		t.Fatalf("RecordPickup: %v", err)
	}
	if got := s.Item(it.ID).Output; got != 4 {
		t.Errorf("expected output 4, got %d", got)
	}
	if got := s.Item(it.ID).Stock; got != 6 {
		t.Errorf("expected stock 6, got %d", got)
	}
}

func TestNegativeAvailabilityAllowed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	it, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C1", Name: "Paint", Quantity: 10})

	if _, err := s.Reserve(ctx, it.ID, 20, "Ana", ""); err != nil {
		t.Fatalf("expected over-reservation to succeed, got %v", err)
	}
	if got := s.Item(it.ID).Available; got != -10 {
		t.Errorf("expected available -10, got %d", got)
	}
}

func TestLastActorFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	addPicker(t, s, "Marko")

	// Stepping clock so consecutive events get strictly increasing timestamps.
	base := time.Now()
	step := 0
	s.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}

	it, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C1", Name: "Wire", Quantity: 50})

	if got := s.Item(it.ID); got.LastReservedBy != "" || got.LastPickedUpBy != "" {
		t.Errorf("expected empty last-actor fields, got %+v", got)
	}

	res, _ := s.Reserve(ctx, it.ID, 5, "Ana", "")
	s.Reserve(ctx, it.ID, 3, "Ivana", "")
	s.RecordPickup(ctx, it.ID, 2, "Marko", "ABC123", "")

	got := s.Item(it.ID)
	if got.LastReservedBy != "Ivana" {
		t.Errorf("expected last reserver Ivana, got %q", got.LastReservedBy)
	}
	if got.LastReservationCode == res.Code {
		t.Errorf("last reservation code should come from the newest reservation")
	}
	if got.LastPickedUpBy != "Marko" {
		t.Errorf("expected last picker Marko, got %q", got.LastPickedUpBy)
	}
	if got.LastPickupCode != "ABC123" {
		t.Errorf("expected last pickup code ABC123, got %q", got.LastPickupCode)
	}
	if got.LastReservedAt == nil || got.LastPickedUpAt == nil {
		t.Error("expected last-actor timestamps to be set")
	}
}

func TestReconcileEmptyPoolIsNoop(t *testing.T) {
	s := newTestStore(t)

	// Events referencing ids no item points to must not blow up.
	s.deliveries = append(s.deliveries, model.Delivery{ID: model.NewID(), ItemID: "gone", Quantity: 5})
	if err := s.RefreshAll(context.Background()); err != nil {
		t.Fatalf("RefreshAll: %v", err)
	}
}
