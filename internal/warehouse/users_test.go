package warehouse

import (
	"context"
	"testing"

	"github.com/nmarkovic/magacin/internal/model"
)

func TestCreateUserValidatesRole(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateUser(context.Background(), model.User{Name: "X", Email: "x@example.com", Role: "SUPERVISOR"})
	if err != ErrInvalidRole {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.CreateUser(ctx, model.User{Name: "A", Email: "a@example.com", Role: model.RoleAdmin})

	_, err := s.CreateUser(ctx, model.User{Name: "B", Email: "a@example.com", Role: model.RolePickup})
	if err != ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdateUserKeepsPasswordUnlessReplaced(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, _ := s.CreateUser(ctx, model.User{Name: "A", Email: "a@example.com", Role: model.RoleAdmin, PasswordHash: "hash1"})

	updated, err := s.UpdateUser(ctx, u.ID, model.User{Name: "A2", Email: "a@example.com", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if updated.PasswordHash != "hash1" {
		t.Errorf("expected password hash kept, got %q", updated.PasswordHash)
	}
	if updated.Name != "A2" {
		t.Errorf("expected name updated, got %q", updated.Name)
	}
}

func TestDeleteUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, _ := s.CreateUser(ctx, model.User{Name: "A", Email: "a@example.com", Role: model.RoleReservation})

	if err := s.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if s.UserByEmail("a@example.com") != nil {
		t.Error("expected user removed")
	}

	if err := s.DeleteUser(ctx, "missing"); err != nil {
		t.Errorf("expected no-op for unknown id, got %v", err)
	}
}

func TestProjectLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p, err := s.CreateProject(ctx, model.Project{Name: "Hala 2", StartDate: "2026-01-01", EndDate: "2026-06-30", Color: "#ff0000"})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if got := s.ProjectByName("Hala 2"); got == nil || got.ID != p.ID {
		t.Fatalf("ProjectByName: got %+v", got)
	}

	updated, err := s.UpdateProject(ctx, p.ID, model.Project{Name: "Hala 2", StartDate: "2026-01-01", EndDate: "2026-09-30", Color: "#00ff00"})
	if err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	if updated.EndDate != "2026-09-30" || updated.Color != "#00ff00" {
		t.Errorf("project not updated: %+v", updated)
	}

	if err := s.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if len(s.Projects()) != 0 {
		t.Error("expected project removed")
	}
}
