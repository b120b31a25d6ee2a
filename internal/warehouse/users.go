package warehouse

import (
	"context"

	"github.com/nmarkovic/magacin/internal/model"
)

// CreateUser adds a dashboard user. Emails must be unique since login looks
// users up by email.
func (s *Store) CreateUser(ctx context.Context, u model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !model.ValidRole(u.Role) {
		return nil, ErrInvalidRole
	}
	for i := range s.users {
		if s.users[i].Email == u.Email {
			return nil, ErrEmailTaken
		}
	}

	u.ID = model.NewID()
	s.users = append(s.users, u)

	if err := s.save(ctx, colUsers); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser replaces a user's fields. The password hash is kept unless a
// new one is supplied.
func (s *Store) UpdateUser(ctx context.Context, id string, updated model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !model.ValidRole(updated.Role) {
		return nil, ErrInvalidRole
	}

	idx := -1
	for i := range s.users {
		if s.users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrUserNotFound
	}
	for i := range s.users {
		if i != idx && s.users[i].Email == updated.Email {
			return nil, ErrEmailTaken
		}
	}

	u := &s.users[idx]
	u.Name = updated.Name
	u.Email = updated.Email
	u.Role = updated.Role
	u.UserCode = updated.UserCode
	if updated.PasswordHash != "" {
		u.PasswordHash = updated.PasswordHash
	}

	if err := s.save(ctx, colUsers); err != nil {
		return nil, err
	}
	cp := *u
	return &cp, nil
}

// DeleteUser removes a user. Deleting an unknown id is a no-op.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.users[:0]
	found := false
	for _, u := range s.users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	s.users = kept
	if !found {
		return nil
	}

	return s.save(ctx, colUsers)
}
