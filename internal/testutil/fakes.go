// Package testutil holds in-memory stand-ins for the storage interfaces.
package testutil

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"medinote/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type PatientRepo struct {
	mu        sync.Mutex
	nextID    int64
	Patients  map[int64]entity.Patient
	CreateErr error
}

func NewPatientRepo() *PatientRepo {
	return &PatientRepo{Patients: map[int64]entity.Patient{}}
}

func (r *PatientRepo) Create(_ context.Context, p *entity.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.nextID++
	p.ID = r.nextID
	r.Patients[p.ID] = *p
	return nil
}

func (r *PatientRepo) FindByID(_ context.Context, id int64) (*entity.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.Patients[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PatientRepo) FindAll(_ context.Context, filter entity.PatientFilter) ([]entity.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Patient
	for _, p := range r.Patients {
		if inVisitRange(filter, p.VisitDate) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].VisitDate.Equal(out[j].VisitDate) {
			return out[i].VisitDate.After(out[j].VisitDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// inVisitRange mirrors the inclusive date bounds the gorm repository applies.
func inVisitRange(filter entity.PatientFilter, visit time.Time) bool {
	d := entity.TruncateDay(visit)
	if filter.VisitFrom != nil && d.Before(entity.TruncateDay(*filter.VisitFrom)) {
		return false
	}
	if filter.VisitTo != nil && d.After(entity.TruncateDay(*filter.VisitTo)) {
		return false
	}
	return true
}

func (r *PatientRepo) Count(ctx context.Context, filter entity.PatientFilter) (int64, error) {
	all, _ := r.FindAll(ctx, filter)
	return int64(len(all)), nil
}

func (r *PatientRepo) CountByVisitDate(ctx context.Context, day time.Time) (int64, error) {
	return r.Count(ctx, entity.PatientFilter{VisitFrom: &day, VisitTo: &day})
}

func (r *PatientRepo) Update(_ context.Context, p *entity.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Patients[p.ID] = *p
	return nil
}

func (r *PatientRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Patients[id]; !ok {
		return 0, nil
	}
	delete(r.Patients, id)
	return 1, nil
}

type UserRepo struct {
	mu    sync.Mutex
	Users map[string]entity.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{Users: map[string]entity.User{}}
}

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = uuid.New()
	r.Users[u.Username] = *u
	return nil
}

func (r *UserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.Users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

type SessionStore struct {
	mu       sync.Mutex
	Sessions map[string]bool
}

func NewSessionStore() *SessionStore {
	return &SessionStore{Sessions: map[string]bool{}}
}

func (s *SessionStore) Save(_ context.Context, userID uuid.UUID, sessionID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sessions[userID.String()+":"+sessionID] = true
	return nil
}

func (s *SessionStore) Exists(_ context.Context, userID uuid.UUID, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Sessions[userID.String()+":"+sessionID], nil
}

func (s *SessionStore) Delete(_ context.Context, userID uuid.UUID, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Sessions, userID.String()+":"+sessionID)
	return nil
}
