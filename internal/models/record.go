package models

import (
	"slices"
	"strings"
	"time"
)

// DayRecord is everything written for one civil day. Notes and Photos are
// sparse: a goal with no entry simply has no key.
type DayRecord struct {
	Date              string              `json:"date"` // YYYY-MM-DD format
	Notes             map[GoalID]string   `json:"notes"`
	Photos            map[GoalID][]string `json:"photos"`
	OverallReflection string              `json:"overallReflection"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// NewDayRecord returns an empty record for date with initialised maps.
func NewDayRecord(date string) DayRecord {
	return DayRecord{
		Date:   date,
		Notes:  make(map[GoalID]string),
		Photos: make(map[GoalID][]string),
	}
}

// Normalize replaces nil maps with empty ones.
func (r *DayRecord) Normalize() {
	if r.Notes == nil {
		r.Notes = make(map[GoalID]string)
	}
	if r.Photos == nil {
		r.Photos = make(map[GoalID][]string)
	}
}

// SetNote stores text for goal. Blank text removes the note.
func (r *DayRecord) SetNote(goal GoalID, text string) {
	r.Normalize()
	if strings.TrimSpace(text) == "" {
		delete(r.Notes, goal)
		return
	}
	r.Notes[goal] = text
}

// AddPhotos appends handles for goal in argument order.
func (r *DayRecord) AddPhotos(goal GoalID, handles ...string) {
	r.Normalize()
	for _, h := range handles {
		if h == "" {
			continue
		}
		r.Photos[goal] = append(r.Photos[goal], h)
	}
}

// RemovePhoto deletes the photo at index for goal.
func (r *DayRecord) RemovePhoto(goal GoalID, index int) bool {
	photos := r.Photos[goal]
	if index < 0 || index >= len(photos) {
		return false
	}
	photos = append(photos[:index:index], photos[index+1:]...)
	if len(photos) == 0 {
		delete(r.Photos, goal)
	} else {
		r.Photos[goal] = photos
	}
	return true
}

// RecordedGoals returns the goals with a non-blank note, sorted by id.
func (r *DayRecord) RecordedGoals() []GoalID {
	var goals []GoalID
	for g, note := range r.Notes {
		if strings.TrimSpace(note) != "" {
			goals = append(goals, g)
		}
	}
	slices.Sort(goals)
	return goals
}

// IsRecorded reports whether goal has a non-blank note.
func (r *DayRecord) IsRecorded(goal GoalID) bool {
	return strings.TrimSpace(r.Notes[goal]) != ""
}

// Clone returns a deep copy.
func (r DayRecord) Clone() DayRecord {
	out := r
	out.Notes = make(map[GoalID]string, len(r.Notes))
	for k, v := range r.Notes {
		out.Notes[k] = v
	}
	out.Photos = make(map[GoalID][]string, len(r.Photos))
	for k, v := range r.Photos {
		out.Photos[k] = slices.Clone(v)
	}
	return out
}
