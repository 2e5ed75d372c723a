package models

import (
	"strings"
	"time"

	"github.com/donghyun81/daily-glow-up-compass/internal/errors"
)

// GoalID identifies a goal. Preset goals use fixed ids; any other
// non-empty string is a custom goal.
type GoalID string

type AgeBracket string

const (
	AgeUnset AgeBracket = ""
	AgeTeens AgeBracket = "10s"
	Age20s   AgeBracket = "20s"
	Age30s   AgeBracket = "30s"
	Age40s   AgeBracket = "40s"
	Age50s   AgeBracket = "50s+"
)

// AgeBrackets lists the selectable brackets in display order.
var AgeBrackets = []AgeBracket{AgeTeens, Age20s, Age30s, Age40s, Age50s}

func (a AgeBracket) Valid() bool {
	if a == AgeUnset {
		return true
	}
	for _, b := range AgeBrackets {
		if a == b {
			return true
		}
	}
	return false
}

// Genders lists the options offered by the profile wizard. Gender is free
// text in storage.
var Genders = []string{"male", "female", "other"}

type Profile struct {
	Name      string     `json:"name,omitempty"`
	Age       AgeBracket `json:"age,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	Goals     []GoalID   `json:"goals"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (p *Profile) Validate() error {
	if !p.Age.Valid() {
		return errors.NewValidation("age", "unknown age bracket %q", p.Age)
	}

	seen := make(map[GoalID]bool, len(p.Goals))
	for i, g := range p.Goals {
		if strings.TrimSpace(string(g)) == "" {
			return errors.NewValidation("goals", "goal at position %d is empty", i+1)
		}
		if seen[g] {
			return errors.NewValidation("goals", "duplicate goal %q", g)
		}
		seen[g] = true
	}

	return nil
}

// HasGoal reports whether id is in the profile's goal list.
func (p *Profile) HasGoal(id GoalID) bool {
	return p.GoalIndex(id) >= 0
}

// GoalIndex returns the position of id in the goal list, or -1.
func (p *Profile) GoalIndex(id GoalID) int {
	for i, g := range p.Goals {
		if g == id {
			return i
		}
	}
	return -1
}

// AddGoal appends id unless it is already present. It returns false for
// duplicates and blank ids.
func (p *Profile) AddGoal(id GoalID) bool {
	id = GoalID(strings.TrimSpace(string(id)))
	if id == "" || p.HasGoal(id) {
		return false
	}
	p.Goals = append(p.Goals, id)
	return true
}

// RemoveGoal drops id, keeping the order of the remaining goals.
func (p *Profile) RemoveGoal(id GoalID) bool {
	idx := p.GoalIndex(id)
	if idx < 0 {
		return false
	}
	p.Goals = append(p.Goals[:idx:idx], p.Goals[idx+1:]...)
	return true
}
