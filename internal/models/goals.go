package models

// Goal is a preset goal offered by the profile wizard.
type Goal struct {
	ID    GoalID
	Label string
	Emoji string
}

const (
	GoalExercise   GoalID = "exercise"
	GoalReading    GoalID = "reading"
	GoalWriting    GoalID = "writing"
	GoalDiet       GoalID = "diet"
	GoalStudy      GoalID = "study"
	GoalMeditation GoalID = "meditation"
)

// DefaultGoalEmoji is shown for custom goals.
const DefaultGoalEmoji = "🎯"

// PresetGoals in wizard order.
var PresetGoals = []Goal{
	{ID: GoalExercise, Label: "Exercise", Emoji: "💪"},
	{ID: GoalReading, Label: "Reading", Emoji: "📚"},
	{ID: GoalWriting, Label: "Writing", Emoji: "✍️"},
	{ID: GoalDiet, Label: "Diet", Emoji: "🥗"},
	{ID: GoalStudy, Label: "Study", Emoji: "📖"},
	{ID: GoalMeditation, Label: "Meditation", Emoji: "🧘"},
}

// PresetGoal looks up a preset by id.
func PresetGoal(id GoalID) (Goal, bool) {
	for _, g := range PresetGoals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// IsPreset reports whether id names a preset goal.
func IsPreset(id GoalID) bool {
	_, ok := PresetGoal(id)
	return ok
}

// Labeler resolves display labels for goal ids. Overrides win over preset
// labels; an unknown id is displayed as itself.
type Labeler struct {
	overrides map[GoalID]string
}

func NewLabeler(overrides map[GoalID]string) *Labeler {
	l := &Labeler{overrides: make(map[GoalID]string, len(overrides))}
	for id, label := range overrides {
		if label != "" {
			l.overrides[id] = label
		}
	}
	return l
}

func (l *Labeler) Label(id GoalID) string {
	if l != nil {
		if label, ok := l.overrides[id]; ok {
			return label
		}
	}
	if g, ok := PresetGoal(id); ok {
		return g.Label
	}
	return string(id)
}

func (l *Labeler) Emoji(id GoalID) string {
	if g, ok := PresetGoal(id); ok {
		return g.Emoji
	}
	return DefaultGoalEmoji
}

// Display returns "<emoji> <label>".
func (l *Labeler) Display(id GoalID) string {
	return l.Emoji(id) + " " + l.Label(id)
}
