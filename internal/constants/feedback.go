package constants

// ScoreBand names a feedback tier.
type ScoreBand string

const (
	// Daily headline thresholds (percent of goals recorded).
	HeadlineExcellentMin = 80
	HeadlineGoodMin      = 60

	// Best goal praise thresholds.
	PraiseMin          = 70
	PraiseExcellentMin = 85

	// Improvement suggestions are only offered on days at or above this score.
	SuggestionMin = 50

	// Simple score feedback thresholds, highest first.
	SimplePerfectMin = 90
	SimpleGreatMin   = 75
	SimpleGoodMin    = 60
	SimpleFairMin    = 40

	// Goal card badge thresholds
	BadgeExcellentMin = 80
	BadgeGoodMin      = 60

	BandExcellent        ScoreBand = "excellent"
	BandGood             ScoreBand = "good"
	BandNeedsImprovement ScoreBand = "needs_improvement"
)

func init() {
	if HeadlineGoodMin >= HeadlineExcellentMin || BadgeGoodMin >= BadgeExcellentMin {
		panic("feedback thresholds must be strictly decreasing")
	}
}
