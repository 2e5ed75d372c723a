package feedback

import (
	"fmt"

	"github.com/donghyun81/daily-glow-up-compass/internal/models"
)

type goalTemplates struct {
	excellent        func(score int) string
	good             func(score int) string
	needsImprovement string
	suggestions      []string
}

var presetTemplates = map[models.GoalID]goalTemplates{
	models.GoalExercise: {
		excellent: func(score int) string {
			return fmt.Sprintf("You really put in the work on exercise! %d%% is impressive. 💪", score)
		},
		good: func(score int) string {
			return fmt.Sprintf("Your exercise habit is looking steady. %d%% is a solid result!", score)
		},
		needsImprovement: "Exercise was a bit light today. Try to be a little more active tomorrow.",
		suggestions: []string{
			"How about walking ten more minutes tomorrow?",
			"Take the stairs or start with some stretching.",
			"Put on music you like and try a light workout.",
		},
	},
	models.GoalReading: {
		excellent:        func(int) string { return "You read a lot today! Your knowledge is piling up. 📚" },
		good:             func(int) string { return "Your reading habit is impressive. Keep it going!" },
		needsImprovement: "Not much reading today, but even a few pages count.",
		suggestions: []string{
			"Set aside ten minutes for reading before bed.",
			"Start with a short piece on a topic you enjoy.",
			"Use your commute to read an e-book.",
		},
	},
	models.GoalWriting: {
		excellent:        func(int) string { return "Great writing today! You are getting better at putting thoughts into words. ✍️" },
		good:             func(int) string { return "Steady writing is becoming a good habit." },
		needsImprovement: "Writing fell short today. Try a short journal entry.",
		suggestions: []string{
			"Write even one line about what happened today.",
			"How about listing three things you are grateful for?",
			"Jot down whatever comes to mind.",
		},
	},
	models.GoalDiet: {
		excellent:        func(int) string { return "Perfect eating today! Your healthy choices are shining. 🥗" },
		good:             func(int) string { return "You are keeping up healthy eating habits nicely." },
		needsImprovement: "Meals were a bit off today. Start with one small change.",
		suggestions: []string{
			"Start by drinking a little more water.",
			"How about fruit instead of a snack?",
			"Try to keep regular meal times.",
		},
	},
	models.GoalStudy: {
		excellent:        func(int) string { return "You studied hard today! You can see yourself growing. 📖" },
		good:             func(int) string { return "Your consistent study attitude is impressive." },
		needsImprovement: "Study time was short today. Keep going bit by bit.",
		suggestions: []string{
			"Learn something new for just fifteen minutes.",
			"How about finding an online course you are curious about?",
			"Explain something you learned today to someone else.",
		},
	},
	models.GoalMeditation: {
		excellent:        func(int) string { return "You practiced mindfulness well! You are finding your inner calm. 🧘" },
		good:             func(int) string { return "You are taking good care of rest and meditation." },
		needsImprovement: "A busy day, but take a moment to check in with yourself.",
		suggestions: []string{
			"Take five minutes to breathe deeply.",
			"Rest for a while listening to nature sounds.",
			"Clear your mind by recalling things you are thankful for.",
		},
	},
}

var encouragements = []string{
	"Recording every day is an achievement in itself!",
	"Small changes add up to big growth.",
	"It doesn't have to be perfect. Consistency matters more.",
	"You worked for yourself again today. That's great!",
	"Your growth is truly impressive.",
	"It's good to see you improving day by day!",
}

const (
	noRecordMessage = "Thanks for today! Tomorrow, take a small step toward your goals. 😊"
	noGoalsInsight  = "Add some goals to your profile to see insights."

	headlineExcellent = "What an amazing day! ✨"
	headlineGood      = "Great to see your steady effort today! 👍"
	headlineOther     = "Thanks for recording your day."

	simplePerfect = "A perfect day! Days like this add up to real change. 🌟"
	simpleGreat   = "You're doing really well! Consistency is the key to success. 💪"
	simpleGood    = "Nice momentum! You're moving forward little by little. 👍"
	simpleFair    = "A bit short today, but recording it still means something. You've got this tomorrow! 😊"
	simpleLow     = "It's okay not to be perfect. A small start is the first step to big change. 🌱"
)
