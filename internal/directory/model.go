package directory

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleMember         Role = "member"
	RoleTrainingStaff  Role = "training_staff"
	RoleWellbeingStaff Role = "wellbeing_staff"
	RoleAdmin          Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleMember, RoleTrainingStaff, RoleWellbeingStaff, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// IsStaff reports whether the role can be booked for appointments.
func (r Role) IsStaff() bool {
	return r == RoleTrainingStaff || r == RoleWellbeingStaff
}

type Person struct {
	ID       string `db:"id" json:"id" yaml:"id"`
	Name     string `db:"name" json:"name" yaml:"name"`
	Email    string `db:"email" json:"email" yaml:"email"`
	Role     Role   `db:"role" json:"role" yaml:"role"`
	GymID    string `db:"gym_id" json:"gym_id" yaml:"gym_id"`
	Activity string `db:"activity" json:"activity,omitempty" yaml:"activity"`
}

type Gym struct {
	ID       string `db:"id" json:"id" yaml:"id"`
	Name     string `db:"name" json:"name" yaml:"name"`
	Location string `db:"location" json:"location" yaml:"location"`
}
