package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fixedClock pins the service clock to a single instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time   { return c.now }
func (c fixedClock) Today() time.Time { return domain.DateOf(c.now) }

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User
	nextNo int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	clone := *u
	r.users[u.ID] = &clone
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return nil, domain.ErrUserExists
		}
	}
	if u.ID == "" {
		u.ID = "user-" + strconv.Itoa(len(r.users)+1)
	}
	return r.add(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// List applies the same filters and ordering the real Mongo repo would use.
func (r *stubUserRepo) List(_ context.Context, f ports.UserFilter) ([]*domain.User, error) {
	var matched []*domain.User
	for _, u := range r.users {
		if f.ActiveOnly && !u.IsActive {
			continue
		}
		if f.ExcludeSuperusers && u.IsSuperuser {
			continue
		}
		if f.ExcludeViewers && u.IsViewer {
			continue
		}
		clone := *u
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		if a.FirstName != b.FirstName {
			return a.FirstName < b.FirstName
		}
		return a.Username < b.Username
	})
	return matched, nil
}

func (r *stubUserRepo) NextUserNo(_ context.Context) (int, error) {
	r.nextNo++
	return r.nextNo, nil
}

type stubProjectRepo struct {
	projects map[string]*domain.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) add(p *domain.Project) *domain.Project {
	clone := *p
	r.projects[p.ID] = &clone
	return &clone
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	if p.ID == "" {
		p.ID = "project-" + strconv.Itoa(len(r.projects)+1)
	}
	return r.add(p), nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Project, error) {
	out := make(map[string]*domain.Project, len(ids))
	for _, id := range ids {
		if p, ok := r.projects[id]; ok {
			clone := *p
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *stubProjectRepo) List(_ context.Context, f ports.ProjectListFilter) ([]*domain.Project, error) {
	var matched []*domain.Project
	for _, p := range r.projects {
		if f.ViewerID != "" && p.CreatedByID != f.ViewerID && p.AssignedTo.ID != f.ViewerID {
			continue
		}
		if f.AssignedToID != "" && p.AssignedTo.ID != f.AssignedToID {
			continue
		}
		if f.Completed != nil && p.IsCompleted != *f.Completed {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}
	switch f.SortBy {
	case ports.SortByCreatedAt:
		sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	default:
		sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	}
	return matched, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

type stubScheduleRepo struct {
	schedules    map[string]*domain.Schedule
	statusWrites int
	updateErr    error // if set, UpdateStatus returns this error
}

func newStubScheduleRepo() *stubScheduleRepo {
	return &stubScheduleRepo{schedules: make(map[string]*domain.Schedule)}
}

func (r *stubScheduleRepo) add(s *domain.Schedule) *domain.Schedule {
	clone := *s
	r.schedules[s.ID] = &clone
	return &clone
}

func (r *stubScheduleRepo) Create(_ context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	if s.ID == "" {
		s.ID = "schedule-" + strconv.Itoa(len(r.schedules)+1)
	}
	return r.add(s), nil
}

func (r *stubScheduleRepo) FindByID(_ context.Context, id string) (*domain.Schedule, error) {
	s, ok := r.schedules[id]
	if !ok {
		return nil, domain.ErrScheduleNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubScheduleRepo) FindByProject(_ context.Context, projectID string) ([]*domain.Schedule, error) {
	var matched []*domain.Schedule
	for _, s := range r.schedules {
		if s.ProjectID == projectID {
			clone := *s
			matched = append(matched, &clone)
		}
	}
	sortByStart(matched)
	return matched, nil
}

func (r *stubScheduleRepo) FindOverlapping(_ context.Context, from, to time.Time) ([]*domain.Schedule, error) {
	var matched []*domain.Schedule
	for _, s := range r.schedules {
		if !s.StartDate.After(to) && !s.EndDate.Before(from) {
			clone := *s
			matched = append(matched, &clone)
		}
	}
	sortByStart(matched)
	return matched, nil
}

func (r *stubScheduleRepo) FindAll(_ context.Context) ([]*domain.Schedule, error) {
	var all []*domain.Schedule
	for _, s := range r.schedules {
		clone := *s
		all = append(all, &clone)
	}
	sortByStart(all)
	return all, nil
}

func (r *stubScheduleRepo) Update(_ context.Context, s *domain.Schedule) error {
	if _, ok := r.schedules[s.ID]; !ok {
		return domain.ErrScheduleNotFound
	}
	clone := *s
	r.schedules[s.ID] = &clone
	return nil
}

func (r *stubScheduleRepo) UpdateStatus(_ context.Context, id string, status domain.ScheduleStatus, completedAt *time.Time) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	s, ok := r.schedules[id]
	if !ok {
		return domain.ErrScheduleNotFound
	}
	s.Status = status
	s.CompletedAt = completedAt
	r.statusWrites++
	return nil
}

func (r *stubScheduleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.schedules[id]; !ok {
		return domain.ErrScheduleNotFound
	}
	delete(r.schedules, id)
	return nil
}

func (r *stubScheduleRepo) ExistsByProject(_ context.Context, projectID string) (bool, error) {
	for _, s := range r.schedules {
		if s.ProjectID == projectID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubScheduleRepo) ExistsByField(_ context.Context, fieldID string) (bool, error) {
	for _, s := range r.schedules {
		if s.FieldID == fieldID {
			return true, nil
		}
	}
	return false, nil
}

func sortByStart(schedules []*domain.Schedule) {
	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].StartDate.Before(schedules[j].StartDate)
	})
}

type stubFieldRepo struct {
	fields map[string]*domain.Field
}

func newStubFieldRepo() *stubFieldRepo {
	return &stubFieldRepo{fields: make(map[string]*domain.Field)}
}

func (r *stubFieldRepo) Create(_ context.Context, f *domain.Field) (*domain.Field, error) {
	if f.ID == "" {
		f.ID = "field-" + strconv.Itoa(len(r.fields)+1)
	}
	clone := *f
	r.fields[f.ID] = &clone
	return &clone, nil
}

func (r *stubFieldRepo) FindByID(_ context.Context, id string) (*domain.Field, error) {
	f, ok := r.fields[id]
	if !ok {
		return nil, domain.ErrFieldNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFieldRepo) List(_ context.Context) ([]*domain.Field, error) {
	var all []*domain.Field
	for _, f := range r.fields {
		clone := *f
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (r *stubFieldRepo) Update(_ context.Context, f *domain.Field) error {
	if _, ok := r.fields[f.ID]; !ok {
		return domain.ErrFieldNotFound
	}
	clone := *f
	r.fields[f.ID] = &clone
	return nil
}

func (r *stubFieldRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.fields[id]; !ok {
		return domain.ErrFieldNotFound
	}
	delete(r.fields, id)
	return nil
}

// ---------------------------------------------------------------------------
// Shared fixture helpers
// ---------------------------------------------------------------------------

func fixtureUser(id string, userNo int) *domain.User {
	return &domain.User{
		ID:       id,
		UserNo:   userNo,
		Username: id,
		IsActive: true,
	}
}

func fixtureProject(id, createdBy string, assignee *domain.User) *domain.Project {
	return &domain.Project{
		ID:          id,
		Name:        id,
		CreatedByID: createdBy,
		AssignedTo:  domain.RefFor(assignee),
	}
}
