package appointment

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PriceTable maps a staff member's activity to the cost of one appointment.
type PriceTable struct {
	DefaultCents int64            `yaml:"default_cents"`
	Activities   map[string]int64 `yaml:"activities"`
}

func DefaultPriceTable() *PriceTable {
	return &PriceTable{
		DefaultCents: 3000,
		Activities: map[string]int64{
			"nutrition": 4500,
		},
	}
}

// LoadPriceTable reads a YAML price table. An empty path yields the
// built-in table.
func LoadPriceTable(path string) (*PriceTable, error) {
	if path == "" {
		return DefaultPriceTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read price table: %w", err)
	}
	return ParsePriceTable(data)
}

func ParsePriceTable(data []byte) (*PriceTable, error) {
	var pt PriceTable
	if err := yaml.Unmarshal(data, &pt); err != nil {
		return nil, fmt.Errorf("parse price table: %w", err)
	}
	if pt.DefaultCents <= 0 {
		return nil, fmt.Errorf("price table: default_cents must be positive")
	}

	normalized := make(map[string]int64, len(pt.Activities))
	for activity, cents := range pt.Activities {
		if cents <= 0 {
			return nil, fmt.Errorf("price table: %q must cost more than zero", activity)
		}
		normalized[normalize(activity)] = cents
	}
	pt.Activities = normalized
	return &pt, nil
}

// PriceFor returns the activity tier, falling back to the default.
func (p *PriceTable) PriceFor(activity string) int64 {
	if cents, ok := p.Activities[normalize(activity)]; ok {
		return cents
	}
	return p.DefaultCents
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
