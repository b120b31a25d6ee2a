package persist

import (
	"context"
	"testing"
)

func TestSQLiteRoundTrip(t *testing.T) {
	p := NewTestSQLite(t)
	ctx := context.Background()

	if err := p.Save(ctx, "warehouse_items", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := p.Load(ctx, "warehouse_items")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != `[{"id":"a"}]` {
		t.Errorf("unexpected data: %s", data)
	}
}

func TestSQLiteSaveReplaces(t *testing.T) {
	p := NewTestSQLite(t)
	ctx := context.Background()

	p.Save(ctx, "warehouse_items", []byte(`[1]`))
	p.Save(ctx, "warehouse_items", []byte(`[1,2]`))

	data, err := p.Load(ctx, "warehouse_items")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != `[1,2]` {
		t.Errorf("expected replacement, got %s", data)
	}
}

func TestSQLiteLoadAbsent(t *testing.T) {
	p := NewTestSQLite(t)

	data, err := p.Load(context.Background(), "warehouse_reservations")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil for absent collection, got %s", data)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	p := NewMemory()
	ctx := context.Background()

	if data, _ := p.Load(ctx, "warehouse_pickups"); data != nil {
		t.Errorf("expected nil for absent collection, got %s", data)
	}

	p.Save(ctx, "warehouse_pickups", []byte(`[]`))
	data, err := p.Load(ctx, "warehouse_pickups")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != `[]` {
		t.Errorf("unexpected data: %s", data)
	}
}

func TestEnsureJWTSecretStable(t *testing.T) {
	p := NewMemory()
	ctx := context.Background()

	first, err := EnsureJWTSecret(ctx, p)
	if err != nil {
		t.Fatalf("EnsureJWTSecret: %v", err)
	}
	if first == "" {
		t.Fatal("empty secret")
	}

	second, err := EnsureJWTSecret(ctx, p)
	if err != nil {
		t.Fatalf("EnsureJWTSecret: %v", err)
	}
	if second != first {
		t.Errorf("secret changed between calls: %q vs %q", first, second)
	}
}
