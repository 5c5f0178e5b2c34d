package service

import (
	"context"
	"sort"
	"sync"

	"github.com/clinica/patient-admin/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byLogin   map[string]*domain.User
	nextID    int64
	createErr error
	findErr   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byLogin: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	if _, exists := r.byLogin[u.Login]; exists {
		return 0, domain.ErrDuplicateLogin
	}
	r.nextID++
	clone := *u
	clone.ID = r.nextID
	r.byLogin[u.Login] = &clone
	return clone.ID, nil
}

func (r *stubUserRepo) FindByLogin(_ context.Context, login string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byLogin[login]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubPatientRepo struct {
	byID      map[int64]*domain.Patient
	nextID    int64
	createErr error
	updateErr error
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{byID: make(map[int64]*domain.Patient)}
}

func (r *stubPatientRepo) Create(_ context.Context, p *domain.Patient) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.nextID++
	clone := *p
	clone.ID = r.nextID
	r.byID[clone.ID] = &clone
	return clone.ID, nil
}

func (r *stubPatientRepo) List(_ context.Context) ([]domain.Patient, error) {
	out := make([]domain.Patient, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id int64) (*domain.Patient, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPatientRepo) UpdateStatus(_ context.Context, id int64, status domain.PatientStatus) (int64, error) {
	if r.updateErr != nil {
		return 0, r.updateErr
	}
	p, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	p.Status = status
	return 1, nil
}

func (r *stubPatientRepo) Update(_ context.Context, in *domain.Patient) (int64, error) {
	if r.updateErr != nil {
		return 0, r.updateErr
	}
	if _, ok := r.byID[in.ID]; !ok {
		return 0, nil
	}
	clone := *in
	r.byID[in.ID] = &clone
	return 1, nil
}

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Claims
	saveErr  error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Claims)}
}

func (s *stubSessionStore) Save(_ context.Context, token string, claims domain.Claims) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = claims
	return nil
}

func (s *stubSessionStore) Load(_ context.Context, token string) (*domain.Claims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &c, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *stubSessionStore) Ping(context.Context) error { return nil }

type stubRecorder struct {
	events []domain.AuditEvent
}

func (r *stubRecorder) Record(e domain.AuditEvent) {
	r.events = append(r.events, e)
}
