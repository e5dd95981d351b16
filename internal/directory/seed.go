package directory

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Seed is a directory snapshot read from YAML, used to populate the
// people and gyms tables or an in-memory directory.
type Seed struct {
	Gyms   []Gym    `yaml:"gyms"`
	People []Person `yaml:"people"`
}

func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory seed: %w", err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse directory seed: %w", err)
	}
	for i, p := range seed.People {
		role, err := ParseRole(string(p.Role))
		if err != nil {
			return nil, fmt.Errorf("person %s: %w", p.ID, err)
		}
		seed.People[i].Role = role
	}
	return &seed, nil
}

// MemoryRepository serves the directory from process memory.
type MemoryRepository struct {
	mu     sync.RWMutex
	people map[string]Person
	gyms   map[string]Gym
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		people: make(map[string]Person),
		gyms:   make(map[string]Gym),
	}
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.people[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &p, nil
}

func (r *MemoryRepository) FindByName(ctx context.Context, name string) (*Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var found *Person
	for _, p := range r.people {
		if p.Name != name {
			continue
		}
		if found == nil || p.ID < found.ID {
			p := p
			found = &p
		}
	}
	if found == nil {
		return nil, sql.ErrNoRows
	}
	return found, nil
}

func (r *MemoryRepository) ListMembersByGym(ctx context.Context, gymID string) ([]Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	people := []Person{}
	for _, p := range r.people {
		if p.GymID == gymID && p.Role == RoleMember {
			people = append(people, p)
		}
	}
	sort.Slice(people, func(i, j int) bool { return people[i].ID < people[j].ID })
	return people, nil
}

func (r *MemoryRepository) GetGym(ctx context.Context, id string) (*Gym, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.gyms[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &g, nil
}

func (r *MemoryRepository) Import(ctx context.Context, seed *Seed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range seed.Gyms {
		r.gyms[g.ID] = g
	}
	for _, p := range seed.People {
		r.people[p.ID] = p
	}
	return nil
}
