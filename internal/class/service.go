package class

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"gymslot/internal/apperr"
	"gymslot/internal/directory"
	"gymslot/internal/logger"
	"gymslot/internal/metrics"
	"gymslot/internal/schedule"
	"gymslot/internal/store"
)

// Service manages class definitions and their weekly schedules.
type Service interface {
	DefineClass(ctx context.Context, req DefineClassRequest) (*Class, error)
	UpdateClass(ctx context.Context, id string, patch ClassPatch) (*Class, error)
	DeleteClass(ctx context.Context, id string) error
	ListClasses(ctx context.Context) ([]ClassView, error)
	GetClass(ctx context.Context, id string) (*ClassView, error)
}

type service struct {
	repo      Repository
	directory directory.Service
	now       func() time.Time
}

func NewService(repo Repository, dir directory.Service) Service {
	return &service{repo: repo, directory: dir, now: time.Now}
}

func (s *service) DefineClass(ctx context.Context, req DefineClassRequest) (*Class, error) {
	const op = "class.DefineClass"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation(op, "name is required")
	}
	if err := validate(op, req.Schedule, req.Capacity); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	c := &Class{
		ID:        uuid.NewString(),
		Name:      name,
		StaffID:   req.StaffID,
		GymID:     req.GymID,
		Schedule:  req.Schedule.Clone(),
		Capacity:  req.Capacity,
		Occupants: []Occupancy{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if c.Schedule == nil {
		c.Schedule = schedule.Weekly{}
	}

	err := s.repo.Write(ctx, func(tx *store.Tx[Class]) error {
		tx.Put(c.Clone())
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("class defined", "class_id", c.ID, "name", c.Name, "capacity", c.Capacity)
	return c, nil
}

// UpdateClass applies the patch. Existing occupants are kept even when the
// new capacity is lower than their count or their interval was removed.
func (s *service) UpdateClass(ctx context.Context, id string, patch ClassPatch) (*Class, error) {
	const op = "class.UpdateClass"

	if patch.Empty() {
		return nil, apperr.Validation(op, "no fields to update")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperr.Validation(op, "name must not be empty")
	}

	var updated *Class
	err := s.repo.Write(ctx, func(tx *store.Tx[Class]) error {
		current, ok := tx.Peek(id)
		if !ok {
			return apperr.NotFound(op, "class %q not found", id)
		}

		weekly, capacity := current.Schedule, current.Capacity
		if patch.Schedule != nil {
			weekly = *patch.Schedule
		}
		if patch.Capacity != nil {
			capacity = *patch.Capacity
		}
		if err := validate(op, weekly, capacity); err != nil {
			return err
		}

		c, _ := tx.Get(id)
		if patch.Name != nil {
			c.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.StaffID != nil {
			c.StaffID = *patch.StaffID
		}
		if patch.GymID != nil {
			c.GymID = *patch.GymID
		}
		if patch.Schedule != nil {
			c.Schedule = patch.Schedule.Clone()
			if c.Schedule == nil {
				c.Schedule = schedule.Weekly{}
			}
		}
		c.Capacity = capacity
		c.UpdatedAt = s.now().UTC()
		updated = c.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("class updated", "class_id", id)
	return updated, nil
}

// DeleteClass removes the class together with all of its registrations.
func (s *service) DeleteClass(ctx context.Context, id string) error {
	const op = "class.DeleteClass"

	var dropped int
	err := s.repo.Write(ctx, func(tx *store.Tx[Class]) error {
		c, ok := tx.Peek(id)
		if !ok {
			return apperr.NotFound(op, "class %q not found", id)
		}
		dropped = len(c.Occupants)
		tx.Delete(id)
		return nil
	})
	if err != nil {
		return err
	}

	metrics.ForgetClass(id)
	logger.Info("class deleted", "class_id", id, "registrations_dropped", dropped)
	return nil
}

func (s *service) ListClasses(ctx context.Context) ([]ClassView, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	names := newNameResolver(s.directory)
	views := make([]ClassView, 0, len(classes))
	for _, c := range classes {
		views = append(views, names.view(ctx, c))
	}
	sort.Slice(views, func(i, j int) bool {
		if views[i].Name != views[j].Name {
			return views[i].Name < views[j].Name
		}
		return views[i].ID < views[j].ID
	})
	return views, nil
}

func (s *service) GetClass(ctx context.Context, id string) (*ClassView, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	view := newNameResolver(s.directory).view(ctx, c)
	return &view, nil
}

func validate(op string, weekly schedule.Weekly, capacity int) error {
	if capacity <= 0 {
		return apperr.Validation(op, "capacity must be greater than zero, got %d", capacity)
	}
	return weekly.Validate()
}

// nameResolver memoises directory lookups for one listing. Lookup failures
// render as empty names.
type nameResolver struct {
	dir    directory.Service
	people map[string]string
	gyms   map[string]string
}

func newNameResolver(dir directory.Service) *nameResolver {
	return &nameResolver{dir: dir, people: map[string]string{}, gyms: map[string]string{}}
}

func (r *nameResolver) view(ctx context.Context, c *Class) ClassView {
	return ClassView{Class: *c, StaffName: r.person(ctx, c.StaffID), GymName: r.gym(ctx, c.GymID)}
}

func (r *nameResolver) person(ctx context.Context, id string) string {
	if name, ok := r.people[id]; ok {
		return name
	}
	var name string
	if p, err := r.dir.FindByID(ctx, id); err == nil {
		name = p.Name
	} else {
		logger.Debug("staff name unavailable", "staff_id", id, "error", err)
	}
	r.people[id] = name
	return name
}

func (r *nameResolver) gym(ctx context.Context, id string) string {
	if name, ok := r.gyms[id]; ok {
		return name
	}
	var name string
	if g, err := r.dir.GetGym(ctx, id); err == nil {
		name = g.Name
	} else {
		logger.Debug("gym name unavailable", "gym_id", id, "error", err)
	}
	r.gyms[id] = name
	return name
}
