// Package feedback turns computed scores into encouraging display text.
package feedback

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/donghyun81/daily-glow-up-compass/internal/constants"
	"github.com/donghyun81/daily-glow-up-compass/internal/models"
	"github.com/donghyun81/daily-glow-up-compass/internal/stats"
)

// Generator produces feedback text. Implementations may be swapped, for
// example for a remote text generator.
type Generator interface {
	// ForScore returns a one-line reaction to a 0..100 score, prefixed by
	// label when it is non-empty.
	ForScore(score int, label string) string
	// Daily comments on one day's record.
	Daily(p models.Profile, rec *models.DayRecord, score int) string
	// Insight summarises goal completion over a longer window.
	Insight(goals []stats.GoalStat, recordedDays int) string
}

// TemplateGenerator picks from fixed templates. Randomness comes from an
// injectable source so output is reproducible in tests.
type TemplateGenerator struct {
	rng    *rand.Rand
	labels *models.Labeler
}

type Option func(*TemplateGenerator)

func WithRand(r *rand.Rand) Option {
	return func(g *TemplateGenerator) {
		if r != nil {
			g.rng = r
		}
	}
}

func WithLabeler(l *models.Labeler) Option {
	return func(g *TemplateGenerator) {
		g.labels = l
	}
}

func NewTemplateGenerator(opts ...Option) *TemplateGenerator {
	seed := uint64(time.Now().UnixNano())
	g := &TemplateGenerator{
		rng: rand.New(rand.NewPCG(seed, seed>>1)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var _ Generator = (*TemplateGenerator)(nil)

func (g *TemplateGenerator) pick(options []string) string {
	return options[g.rng.IntN(len(options))]
}

func (g *TemplateGenerator) ForScore(score int, label string) string {
	var msg string
	switch {
	case score >= constants.SimplePerfectMin:
		msg = simplePerfect
	case score >= constants.SimpleGreatMin:
		msg = simpleGreat
	case score >= constants.SimpleGoodMin:
		msg = simpleGood
	case score >= constants.SimpleFairMin:
		msg = simpleFair
	default:
		msg = simpleLow
	}
	if label == "" {
		return msg
	}
	return label + ": " + msg
}

// Daily builds headline, praise, suggestion and encouragement. A goal
// recorded today scores 100 and an unrecorded one 0, so the best goal is
// the first recorded goal in profile order and the suggestion targets the
// first unrecorded preset goal.
func (g *TemplateGenerator) Daily(p models.Profile, rec *models.DayRecord, score int) string {
	if !stats.HasContent(rec) {
		return noRecordMessage
	}

	var parts []string
	switch {
	case score >= constants.HeadlineExcellentMin:
		parts = append(parts, headlineExcellent)
	case score >= constants.HeadlineGoodMin:
		parts = append(parts, headlineGood)
	default:
		parts = append(parts, headlineOther)
	}

	if best, ok := firstRecorded(p, rec); ok {
		if praise := goalPraise(best, 100); praise != "" {
			parts = append(parts, praise)
		}
	}

	if score >= constants.SuggestionMin {
		for _, goal := range p.Goals {
			if rec.IsRecorded(goal) {
				continue
			}
			if tpl, ok := presetTemplates[goal]; ok {
				parts = append(parts, g.pick(tpl.suggestions))
				break
			}
		}
	}

	parts = append(parts, g.pick(encouragements))
	return strings.Join(parts, " ")
}

func firstRecorded(p models.Profile, rec *models.DayRecord) (models.GoalID, bool) {
	for _, goal := range p.Goals {
		if rec.IsRecorded(goal) {
			return goal, true
		}
	}
	return "", false
}

// goalPraise returns the preset template for goal at score, or "" when the
// score is below the praise threshold or the goal has no templates.
func goalPraise(goal models.GoalID, score int) string {
	tpl, ok := presetTemplates[goal]
	if !ok || score < constants.PraiseMin {
		return ""
	}
	if score >= constants.PraiseExcellentMin {
		return tpl.excellent(score)
	}
	return tpl.good(score)
}

// GoalNudge is the preset "needs improvement" line for goal, or a generic
// line for custom goals.
func (g *TemplateGenerator) GoalNudge(goal models.GoalID) string {
	if tpl, ok := presetTemplates[goal]; ok {
		return tpl.needsImprovement
	}
	return fmt.Sprintf("%s could use a little more attention.", g.labels.Label(goal))
}

func (g *TemplateGenerator) Insight(goals []stats.GoalStat, recordedDays int) string {
	best, worst, ok := stats.Extremes(goals)
	if !ok {
		return noGoalsInsight
	}

	lines := []string{
		fmt.Sprintf("You have recorded %d day(s) so far.", recordedDays),
		fmt.Sprintf("%s is your strongest goal at %d%%.", g.labels.Display(best.Goal), best.Percent),
	}
	if worst.Goal != best.Goal {
		lines = append(lines, fmt.Sprintf("%s is at %d%%. %s", g.labels.Display(worst.Goal), worst.Percent, g.GoalNudge(worst.Goal)))
	}
	lines = append(lines, g.pick(encouragements))
	return strings.Join(lines, "\n")
}

// Badge classifies a goal completion percentage for the goal cards.
func Badge(percent int) constants.ScoreBand {
	switch {
	case percent >= constants.BadgeExcellentMin:
		return constants.BandExcellent
	case percent >= constants.BadgeGoodMin:
		return constants.BandGood
	default:
		return constants.BandNeedsImprovement
	}
}

// BadgeText is the display label for a band.
func BadgeText(b constants.ScoreBand) string {
	switch b {
	case constants.BandExcellent:
		return "Excellent"
	case constants.BandGood:
		return "Good"
	default:
		return "Needs work"
	}
}
