package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/portaria-app/gatekeeper-api/internal/domain"
	"github.com/portaria-app/gatekeeper-api/internal/domain/entity"
	"github.com/portaria-app/gatekeeper-api/internal/domain/repository"
)

// Fakes em memória dos portos de persistência. Reproduzem a semântica dos
// adaptadores Postgres: mutações condicionais, filtros por prefixo de data e
// erros de domínio.

// ── users ─────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id string, patch repository.UserPatch) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if patch.Username != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Username == *patch.Username {
				return domain.ErrUsernameExists
			}
		}
		u.Username = *patch.Username
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// ── visitors ──────────────────────────────────────────────────────────────────

type fakeVisitorRepo struct {
	visitors map[string]*entity.VisitorEntry
}

func newFakeVisitorRepo() *fakeVisitorRepo {
	return &fakeVisitorRepo{visitors: make(map[string]*entity.VisitorEntry)}
}

func (r *fakeVisitorRepo) Create(_ context.Context, v *entity.VisitorEntry) error {
	cp := *v
	r.visitors[v.ID] = &cp
	return nil
}

func (r *fakeVisitorRepo) List(_ context.Context, filter repository.VisitorFilter) ([]*entity.VisitorEntry, error) {
	out := make([]*entity.VisitorEntry, 0, len(r.visitors))
	for _, v := range r.visitors {
		if filter.Date != "" && !strings.HasPrefix(v.EntryTime, filter.Date) {
			continue
		}
		if filter.ActiveOnly && v.ExitTime != nil {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EntryTime > out[j].EntryTime })
	return out, nil
}

func (r *fakeVisitorRepo) CheckOut(_ context.Context, id, exitTime string) error {
	v, ok := r.visitors[id]
	if !ok || v.ExitTime != nil {
		return domain.ErrAlreadyCheckedOut
	}
	v.ExitTime = &exitTime
	return nil
}

func (r *fakeVisitorRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, v := range r.visitors {
		if v.ExitTime == nil {
			n++
		}
	}
	return n, nil
}

func (r *fakeVisitorRepo) CountByEntryDate(_ context.Context, date string) (int64, error) {
	var n int64
	for _, v := range r.visitors {
		if strings.HasPrefix(v.EntryTime, date) {
			n++
		}
	}
	return n, nil
}

// ── schedules ─────────────────────────────────────────────────────────────────

type fakeScheduleRepo struct {
	schedules map[string]*entity.ScheduledVisit
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[string]*entity.ScheduledVisit)}
}

func (r *fakeScheduleRepo) Create(_ context.Context, s *entity.ScheduledVisit) error {
	cp := *s
	r.schedules[s.ID] = &cp
	return nil
}

func (r *fakeScheduleRepo) List(_ context.Context, date string) ([]*entity.ScheduledVisit, error) {
	out := make([]*entity.ScheduledVisit, 0, len(r.schedules))
	for _, s := range r.schedules {
		if date != "" && s.VisitDate != date {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VisitDate < out[j].VisitDate })
	return out, nil
}

func (r *fakeScheduleRepo) ListPendingByDate(_ context.Context, date string) ([]*entity.ScheduledVisit, error) {
	out := make([]*entity.ScheduledVisit, 0)
	for _, s := range r.schedules {
		if s.VisitDate == date && s.Status == entity.ScheduleStatusPending {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VisitTime < out[j].VisitTime })
	return out, nil
}

func (r *fakeScheduleRepo) Complete(_ context.Context, id string) error {
	s, ok := r.schedules[id]
	if !ok {
		return domain.ErrScheduleNotFound
	}
	s.Status = entity.ScheduleStatusCompleted
	return nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.schedules[id]; !ok {
		return domain.ErrScheduleNotFound
	}
	delete(r.schedules, id)
	return nil
}

func (r *fakeScheduleRepo) CountPendingByDate(_ context.Context, date string) (int64, error) {
	var n int64
	for _, s := range r.schedules {
		if s.VisitDate == date && s.Status == entity.ScheduleStatusPending {
			n++
		}
	}
	return n, nil
}

// ── fleet ─────────────────────────────────────────────────────────────────────

type fakeFleetRepo struct {
	trips map[string]*entity.FleetTrip
}

func newFakeFleetRepo() *fakeFleetRepo {
	return &fakeFleetRepo{trips: make(map[string]*entity.FleetTrip)}
}

func (r *fakeFleetRepo) Create(_ context.Context, t *entity.FleetTrip) error {
	cp := *t
	r.trips[t.ID] = &cp
	return nil
}

func (r *fakeFleetRepo) List(_ context.Context, filter repository.FleetFilter) ([]*entity.FleetTrip, error) {
	out := make([]*entity.FleetTrip, 0, len(r.trips))
	for _, t := range r.trips {
		if filter.Date != "" && !strings.HasPrefix(t.CreatedAt, filter.Date) {
			continue
		}
		if filter.ActiveOnly && t.Status != entity.TripStatusInProgress {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (r *fakeFleetRepo) Return(_ context.Context, id string, arrivalKM decimal.Decimal) (decimal.Decimal, error) {
	t, ok := r.trips[id]
	if !ok {
		return decimal.Decimal{}, domain.ErrTripNotFound
	}
	if t.Status != entity.TripStatusInProgress {
		return decimal.Decimal{}, domain.ErrAlreadyReturned
	}
	distance := arrivalKM.Sub(t.DepartureKM)
	t.ArrivalKM = &arrivalKM
	t.Distance = &distance
	t.Status = entity.TripStatusReturned
	return distance, nil
}

func (r *fakeFleetRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, t := range r.trips {
		if t.Status == entity.TripStatusInProgress {
			n++
		}
	}
	return n, nil
}

func (r *fakeFleetRepo) CountByCreatedDate(_ context.Context, date string) (int64, error) {
	var n int64
	for _, t := range r.trips {
		if strings.HasPrefix(t.CreatedAt, date) {
			n++
		}
	}
	return n, nil
}
