package class

import (
	"encoding/json"
	"fmt"
	"time"

	"gymslot/internal/schedule"
	"gymslot/internal/store"
)

const schemaVersion = 2

type record struct {
	SchemaVersion int               `json:"schema_version"`
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	StaffID       string            `json:"staff_id"`
	GymID         string            `json:"gym_id"`
	Schedule      schedule.Weekly   `json:"schedule"`
	Capacity      int               `json:"capacity"`
	Occupants     []occupancyRecord `json:"occupants"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type occupancyRecord struct {
	MemberID     string            `json:"member_id"`
	Day          schedule.Weekday  `json:"day"`
	Interval     schedule.Interval `json:"interval"`
	RegisteredAt time.Time         `json:"registered_at"`
}

// Codec persists classes as schema_version 2 records.
var Codec = store.Codec[Class]{
	Kind:   store.KindClasses,
	ID:     func(c *Class) string { return c.ID },
	Clone:  (*Class).Clone,
	Encode: encode,
	Decode: decode,
}

func encode(c *Class) (store.Record, error) {
	rec := record{
		SchemaVersion: schemaVersion,
		ID:            c.ID,
		Name:          c.Name,
		StaffID:       c.StaffID,
		GymID:         c.GymID,
		Schedule:      c.Schedule,
		Capacity:      c.Capacity,
		Occupants:     make([]occupancyRecord, 0, len(c.Occupants)),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if rec.Schedule == nil {
		rec.Schedule = schedule.Weekly{}
	}
	for _, o := range c.Occupants {
		rec.Occupants = append(rec.Occupants, occupancyRecord(o))
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var r store.Record
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	return r, nil
}

func decode(r store.Record) (*Class, error) {
	r, err := upgrade(r)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var rec record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("class %q: %w", r.String("id"), err)
	}
	if rec.ID == "" {
		return nil, fmt.Errorf("class record without id")
	}

	c := &Class{
		ID:        rec.ID,
		Name:      rec.Name,
		StaffID:   rec.StaffID,
		GymID:     rec.GymID,
		Schedule:  rec.Schedule,
		Capacity:  rec.Capacity,
		Occupants: make([]Occupancy, 0, len(rec.Occupants)),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if c.Schedule == nil {
		c.Schedule = schedule.Weekly{}
	}
	for _, o := range rec.Occupants {
		c.Occupants = append(c.Occupants, Occupancy(o))
	}
	if err := validate("class.decode", c.Schedule, c.Capacity); err != nil {
		return nil, fmt.Errorf("class %q: %w", c.ID, err)
	}
	return c, nil
}

// upgrade migrates a version 1 record in one step. Version 1 used
// camelCase keys, could omit occupants, stored capacity as a string,
// capitalised weekdays and labelled an occupancy's interval "time".
// Weekday case is absorbed by the case-insensitive weekday parser.
func upgrade(r store.Record) (store.Record, error) {
	version, err := r.Int("schema_version")
	if err != nil {
		version = 1
	}
	if version >= schemaVersion {
		return r, nil
	}

	out, err := r.Clone()
	if err != nil {
		return nil, err
	}
	rename(out, "staffId", "staff_id")
	rename(out, "gymId", "gym_id")
	rename(out, "createdAt", "created_at")
	rename(out, "updatedAt", "updated_at")

	capacity, err := out.Int("capacity")
	if err != nil {
		return nil, fmt.Errorf("class %q capacity: %w", out.String("id"), err)
	}
	out["capacity"] = capacity

	if out["schedule"] == nil {
		out["schedule"] = map[string]any{}
	}

	occupants := []any{}
	if list, ok := out["occupants"].([]any); ok {
		for _, item := range list {
			o, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("class %q: malformed occupant %v", out.String("id"), item)
			}
			occ := store.Record(o)
			rename(occ, "memberId", "member_id")
			rename(occ, "time", "interval")
			rename(occ, "registeredAt", "registered_at")
			occupants = append(occupants, map[string]any(occ))
		}
	}
	out["occupants"] = occupants
	out["schema_version"] = schemaVersion
	return out, nil
}

func rename(r store.Record, from, to string) {
	if v, ok := r[from]; ok {
		if _, exists := r[to]; !exists {
			r[to] = v
		}
		delete(r, from)
	}
}
