package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Collection kinds.
const (
	KindClasses      = "classes"
	KindAppointments = "appointments"
)

// Record is one persisted entity as a flat key/value map.
type Record map[string]any

// Store persists whole collections by kind. Save replaces the collection.
type Store interface {
	Load(ctx context.Context, kind string) ([]Record, error)
	Save(ctx context.Context, kind string, records []Record) error
}

func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Int reads numbers that went through JSON (float64) as well as legacy
// numeric strings.
func (r Record) Int(key string) (int, error) {
	switch v := r[key].(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		return int(n), err
	case string:
		return strconv.Atoi(v)
	case nil:
		return 0, fmt.Errorf("missing %q", key)
	default:
		return 0, fmt.Errorf("%q has unexpected type %T", key, v)
	}
}

func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Clone copies the record through JSON so nested values are not shared.
func (r Record) Clone() (Record, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var out Record
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
