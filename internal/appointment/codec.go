package appointment

import (
	"encoding/json"
	"fmt"
	"time"

	"gymslot/internal/schedule"
	"gymslot/internal/store"
)

const schemaVersion = 2

type record struct {
	SchemaVersion int            `json:"schema_version"`
	ID            string         `json:"id"`
	MemberID      string         `json:"member_id"`
	StaffID       string         `json:"staff_id"`
	Date          schedule.Date  `json:"date"`
	Time          schedule.Clock `json:"time"`
	CostCents     int64          `json:"cost_cents"`
	Status        Status         `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

var Codec = store.Codec[Appointment]{
	Kind:   store.KindAppointments,
	ID:     func(a *Appointment) string { return a.ID },
	Clone:  (*Appointment).Clone,
	Encode: encode,
	Decode: decode,
}

func encode(a *Appointment) (store.Record, error) {
	b, err := json.Marshal(record{
		SchemaVersion: schemaVersion,
		ID:            a.ID,
		MemberID:      a.MemberID,
		StaffID:       a.StaffID,
		Date:          a.Date,
		Time:          a.Time,
		CostCents:     a.CostCents,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}
	var r store.Record
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	return r, nil
}

func decode(r store.Record) (*Appointment, error) {
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
		return nil, fmt.Errorf("appointment %q: %w", r.String("id"), err)
	}
	if rec.ID == "" {
		return nil, fmt.Errorf("appointment record without id")
	}
	status, err := ParseStatus(string(rec.Status))
	if err != nil {
		return nil, fmt.Errorf("appointment %q: %w", rec.ID, err)
	}

	return &Appointment{
		ID:        rec.ID,
		MemberID:  rec.MemberID,
		StaffID:   rec.StaffID,
		Date:      rec.Date,
		Time:      rec.Time,
		CostCents: rec.CostCents,
		Status:    status,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}

// upgrade migrates a version 1 record. Version 1 used camelCase keys,
// stored the cost as a string under "cost" and had no status.
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
	rename(out, "memberId", "member_id")
	rename(out, "staffId", "staff_id")
	rename(out, "cost", "cost_cents")
	rename(out, "costCents", "cost_cents")
	rename(out, "createdAt", "created_at")
	rename(out, "updatedAt", "updated_at")

	if out.Has("cost_cents") {
		cost, err := out.Int("cost_cents")
		if err != nil {
			return nil, fmt.Errorf("appointment %q cost: %w", out.String("id"), err)
		}
		out["cost_cents"] = cost
	}
	if out.String("status") == "" {
		out["status"] = string(StatusPending)
	}
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
