package directory

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type SQLRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

const personColumns = `id, name, email, role, COALESCE(gym_id, '') AS gym_id, activity`

func (r *SQLRepository) FindByID(ctx context.Context, id string) (*Person, error) {
	query := r.db.Rebind(`
		SELECT ` + personColumns + `
		FROM people
		WHERE id = ?
	`)

	var p Person
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLRepository) FindByName(ctx context.Context, name string) (*Person, error) {
	query := r.db.Rebind(`
		SELECT ` + personColumns + `
		FROM people
		WHERE name = ?
		ORDER BY id
		LIMIT 1
	`)

	var p Person
	if err := r.db.GetContext(ctx, &p, query, name); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLRepository) ListMembersByGym(ctx context.Context, gymID string) ([]Person, error) {
	query := r.db.Rebind(`
		SELECT ` + personColumns + `
		FROM people
		WHERE gym_id = ? AND role = ?
		ORDER BY id
	`)

	people := []Person{}
	if err := r.db.SelectContext(ctx, &people, query, gymID, RoleMember); err != nil {
		return nil, err
	}
	return people, nil
}

func (r *SQLRepository) GetGym(ctx context.Context, id string) (*Gym, error) {
	query := r.db.Rebind(`
		SELECT id, name, location
		FROM gyms
		WHERE id = ?
	`)

	var g Gym
	if err := r.db.GetContext(ctx, &g, query, id); err != nil {
		return nil, err
	}
	return &g, nil
}

// Import upserts every gym and person of the seed in one transaction.
func (r *SQLRepository) Import(ctx context.Context, seed *Seed) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	upsertGym := r.db.Rebind(`
		INSERT INTO gyms (id, name, location)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET name = excluded.name, location = excluded.location
	`)
	for _, g := range seed.Gyms {
		if _, err := tx.ExecContext(ctx, upsertGym, g.ID, g.Name, g.Location); err != nil {
			return fmt.Errorf("import gym %s: %w", g.ID, err)
		}
	}

	upsertPerson := r.db.Rebind(`
		INSERT INTO people (id, name, email, role, gym_id, activity)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			role = excluded.role,
			gym_id = excluded.gym_id,
			activity = excluded.activity
	`)
	for _, p := range seed.People {
		var gymID any
		if p.GymID != "" {
			gymID = p.GymID
		}
		if _, err := tx.ExecContext(ctx, upsertPerson, p.ID, p.Name, p.Email, p.Role, gymID, p.Activity); err != nil {
			return fmt.Errorf("import person %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}
