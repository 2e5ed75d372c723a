package profiles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/donghyun81/daily-glow-up-compass/internal/models"
)

// SetupForm holds the wizard answers.
type SetupForm struct {
	Name   string
	Age    models.AgeBracket
	Gender string
	Goals  []models.GoalID
	Custom string
}

// NewSetupForm prefills the wizard from an existing profile, if any.
func NewSetupForm(existing *models.Profile) *SetupForm {
	fm := &SetupForm{}
	if existing == nil {
		return fm
	}
	fm.Name = existing.Name
	fm.Age = existing.Age
	fm.Gender = existing.Gender
	var custom []string
	for _, g := range existing.Goals {
		if models.IsPreset(g) {
			fm.Goals = append(fm.Goals, g)
		} else {
			custom = append(custom, string(g))
		}
	}
	fm.Custom = strings.Join(custom, ", ")
	return fm
}

// Apply copies the answers onto p. Preset goals come first in preset
// order, then custom goals in the order typed.
func (fm *SetupForm) Apply(p *models.Profile) error {
	p.Name = strings.TrimSpace(fm.Name)
	p.Age = fm.Age
	p.Gender = fm.Gender

	p.Goals = nil
	for _, preset := range models.PresetGoals {
		for _, g := range fm.Goals {
			if g == preset.ID {
				p.AddGoal(g)
			}
		}
	}
	for _, c := range strings.Split(fm.Custom, ",") {
		p.AddGoal(models.GoalID(c))
	}
	if len(p.Goals) == 0 {
		return fmt.Errorf("choose at least one goal")
	}
	return p.Validate()
}

func (fm *SetupForm) Form() *huh.Form {
	ageOptions := []huh.Option[models.AgeBracket]{huh.NewOption("Prefer not to say", models.AgeUnset)}
	for _, a := range models.AgeBrackets {
		ageOptions = append(ageOptions, huh.NewOption(string(a), a))
	}

	genderOptions := []huh.Option[string]{huh.NewOption("Prefer not to say", "")}
	for _, g := range models.Genders {
		genderOptions = append(genderOptions, huh.NewOption(g, g))
	}

	goalOptions := make([]huh.Option[models.GoalID], 0, len(models.PresetGoals))
	for _, g := range models.PresetGoals {
		goalOptions = append(goalOptions, huh.NewOption(g.Emoji+" "+g.Label, g.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("What should glowup call you?").
				Value(&fm.Name),
			huh.NewSelect[models.AgeBracket]().
				Title("Age").
				Options(ageOptions...).
				Value(&fm.Age),
			huh.NewSelect[string]().
				Title("Gender").
				Options(genderOptions...).
				Value(&fm.Gender),
		),
		huh.NewGroup(
			huh.NewMultiSelect[models.GoalID]().
				Title("Goals").
				Description("Pick the habits you want to track").
				Options(goalOptions...).
				Value(&fm.Goals),
			huh.NewInput().
				Title("Custom goals").
				Description("Comma separated, e.g. guitar, journaling").
				Value(&fm.Custom),
		),
	).WithTheme(huh.ThemeDracula())
}
