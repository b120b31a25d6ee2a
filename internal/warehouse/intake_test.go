package warehouse

import (
	"context"
	"testing"

	"github.com/nmarkovic/magacin/internal/model"
)

func TestReserveGeneratesCode(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	it, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C1", Name: "Wood", Quantity: 10})

	res, err := s.Reserve(ctx, it.ID, 3, "Ana", "za hodnik")
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if len(res.Code) != 9 {
		t.Errorf("expected 9-character reservation code, got %q", res.Code)
	}
	if res.ReservedAt.IsZero() {
		t.Error("expected reservation timestamp")
	}
	if res.Notes != "za hodnik" {
		t.Errorf("expected notes preserved, got %q", res.Notes)
	}
}

func TestReserveUnknownItem(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Reserve(context.Background(), "missing", 3, "Ana", ""); err != ErrItemNotFound {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestReserveRejectsNonPositiveQuantity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	it, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C1", Name: "Wood", Quantity: 10})

	if _, err := s.Reserve(ctx, it.ID, 0, "Ana", ""); err != ErrQuantityNotPositive {
		t.Errorf("expected ErrQuantityNotPositive, got %v", err)
	}
}

func TestPickupUnknownPickerRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	it, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C1", Name: "Wood", Quantity: 10})

	if _, err := s.RecordPickup(ctx, it.ID, 2, "Nobody", "ABC123", ""); err != ErrUnknownPicker {
		t.Errorf("expected ErrUnknownPicker, got %v", err)
	}
	if len(s.Pickups()) != 0 {
		t.Error("rejected pickup was recorded")
	}
}

func TestPickupUserWithoutCodeRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.CreateUser(ctx, model.User{Name: "Jovan", Email: "jovan@example.com", Role: model.RolePickup})
	it, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C1", Name: "Wood", Quantity: 10})

	if _, err := s.RecordPickup(ctx, it.ID, 2, "Jovan", "ABC123", ""); err != ErrUnknownPicker {
		t.Errorf("expected ErrUnknownPicker for user without assigned code, got %v", err)
	}
}

func TestPickupCodeLengthRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	addPicker(t, s, "Marko")

	it, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C1", Name: "Wood", Quantity: 10})

	if _, err := s.RecordPickup(ctx, it.ID, 2, "Marko", "ABC12", ""); err != ErrCodeLength {
		t.Errorf("expected ErrCodeLength, got %v", err)
	}
}

func TestPickupCodeMismatchRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	addPicker(t, s, "Marko")

	it, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C1", Name: "Wood", Quantity: 10})

	if _, err := s.RecordPickup(ctx, it.ID, 2, "Marko", "XYZ999", ""); err != ErrCodeMismatch {
		t.Errorf("expected ErrCodeMismatch, got %v", err)
	}
	if len(s.Pickups()) != 0 {
		t.Error("rejected pickup was recorded")
	}
}

func TestPickupCodeCaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	addPicker(t, s, "Marko")

	it, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C1", Name: "Wood", Quantity: 10})

	p, err := s.RecordPickup(ctx, it.ID, 2, "Marko", "abc123", "")
	if err != nil {
		t.Fatalf("RecordPickup: %v", err)
	}
	if !p.Confirmed() {
		t.Error("expected pickup confirmed")
	}
	if got := s.Item(it.ID).Output; got != 2 {
		t.Errorf("expected output 2, got %d", got)
	}
}

func TestPickupWithoutCodeStaysUnconfirmed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	addPicker(t, s, "Marko")

	it, _ := s.RecordDelivery(ctx, DeliveryCandidate{Code: "C1", Name: "Wood", Quantity: 10})

	p, err := s.RecordPickup(ctx, it.ID, 2, "Marko", "", "")
	if err != nil {
		t.Fatalf("RecordPickup: %v", err)
	}
	if p.Confirmed() {
		t.Error("expected pickup unconfirmed without a code")
	}

	// Recorded, but no output effect. There is no later-confirmation path.
	if len(s.Pickups()) != 1 {
		t.Fatalf("expected 1 recorded pickup, got %d", len(s.Pickups()))
	}
	if got := s.Item(it.ID).Output; got != 0 {
		t.Errorf("expected output 0, got %d", got)
	}
}

func TestPickupUnknownItem(t *testing.T) {
	s := newTestStore(t)
	addPicker(t, s, "Marko")

	if _, err := s.RecordPickup(context.Background(), "missing", 2, "Marko", "ABC123", ""); err != ErrItemNotFound {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}
