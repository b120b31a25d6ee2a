package warehouse

import (
	"context"

	"github.com/nmarkovic/magacin/internal/model"
)

// CreateProject adds a project.
func (s *Store) CreateProject(ctx context.Context, p model.Project) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p.ID = model.NewID()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.projects = append(s.projects, p)

	if err := s.save(ctx, colProjects); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProject replaces a project's fields.
func (s *Store) UpdateProject(ctx context.Context, id string, updated model.Project) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.projects {
		if s.projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrProjectNotFound
	}

	p := &s.projects[idx]
	p.Name = updated.Name
	p.StartDate = updated.StartDate
	p.EndDate = updated.EndDate
	p.Color = updated.Color
	p.PDFDocument = updated.PDFDocument
	p.PDFURL = updated.PDFURL
	p.UpdatedAt = s.now()

	if err := s.save(ctx, colProjects); err != nil {
		return nil, err
	}
	cp := *p
	return &cp, nil
}

// DeleteProject removes a project. Deleting an unknown id is a no-op.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.projects[:0]
	found := false
	for _, p := range s.projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	s.projects = kept
	if !found {
		return nil
	}

	return s.save(ctx, colProjects)
}

// ProjectByName returns the project with the given name, or nil if absent.
func (s *Store) ProjectByName(name string) *model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.projects {
		if s.projects[i].Name == name {
			cp := s.projects[i]
			return &cp
		}
	}
	return nil
}
