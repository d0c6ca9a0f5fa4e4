package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/JeffryGonzalez/timer/internal/clock"
	"github.com/JeffryGonzalez/timer/internal/config"
	"github.com/JeffryGonzalez/timer/internal/deadline"
	"github.com/JeffryGonzalez/timer/internal/timer"
)

// WizardChoice carries the raw form answers before they become a Selection.
type WizardChoice struct {
	Kind          string // "preset", "custom", "shortcut"
	PresetMinutes int
	CustomMinutes string
}

// BuildDurationForm builds the pre-launch duration wizard. The choice struct
// receives the answers when the form completes.
func BuildDurationForm(cfg *config.Config, choice *WizardChoice) *huh.Form {
	presetOptions := make([]huh.Option[int], 0, len(cfg.PresetsMinutes))
	for _, m := range cfg.PresetsMinutes {
		presetOptions = append(presetOptions, huh.NewOption(fmt.Sprintf("%d minutes", m), m))
	}

	shortcutLabel := fmt.Sprintf("Until %02d:%02d %s",
		cfg.Shortcut.Hour, cfg.Shortcut.Minute, shortcutZoneLabel(cfg))

	kindGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Break length").
			Description("Pick a preset, type your own minutes, or stop at a set time.").
			Key("kind").
			Options(
				huh.NewOption("Preset", "preset"),
				huh.NewOption("Custom minutes", "custom"),
				huh.NewOption(shortcutLabel, "shortcut"),
			).
			Value(&choice.Kind),
	)

	presetGroup := huh.NewGroup(
		huh.NewSelect[int]().
			Title("Preset").
			Key("preset_minutes").
			Options(presetOptions...).
			Value(&choice.PresetMinutes),
	).WithHideFunc(func() bool { return choice.Kind != "preset" })

	customGroup := huh.NewGroup(
		huh.NewInput().
			Title("Minutes").
			Description("A whole number greater than zero.").
			Key("custom_minutes").
			Validate(func(s string) error {
				_, err := timer.ParseMinutes(s)
				return err
			}).
			Value(&choice.CustomMinutes),
	).WithHideFunc(func() bool { return choice.Kind != "custom" })

	return huh.NewForm(kindGroup, presetGroup, customGroup)
}

// RunDurationWizard runs the wizard and converts the answers into a
// selection. Aborting the form returns the error from huh unchanged.
func RunDurationWizard(cfg *config.Config, clk clock.Clock) (timer.Selection, error) {
	choice := WizardChoice{Kind: "preset"}
	if len(cfg.PresetsMinutes) > 0 {
		choice.PresetMinutes = cfg.PresetsMinutes[0]
	}

	if err := BuildDurationForm(cfg, &choice).Run(); err != nil {
		return timer.Selection{}, err
	}
	return SelectionFromChoice(cfg, choice, clk)
}

// SelectionFromChoice validates wizard answers into a Selection. Invalid
// answers yield the zero selection and an error; the caller treats that as
// "nothing chosen".
func SelectionFromChoice(cfg *config.Config, choice WizardChoice, clk clock.Clock) (timer.Selection, error) {
	switch choice.Kind {
	case "preset":
		sel := timer.Preset(choice.PresetMinutes)
		if !sel.Valid() {
			return timer.Selection{}, fmt.Errorf("preset %d is not a positive minute count", choice.PresetMinutes)
		}
		return sel, nil
	case "custom":
		minutes, err := timer.ParseMinutes(choice.CustomMinutes)
		if err != nil {
			return timer.Selection{}, err
		}
		return timer.Custom(minutes), nil
	case "shortcut":
		at, err := deadline.ResolveZonedWallClock(clk.Now(), cfg.Shortcut.Zone, cfg.Shortcut.Hour, cfg.Shortcut.Minute)
		if err != nil {
			return timer.Selection{}, err
		}
		return timer.Exact(at), nil
	default:
		return timer.Selection{}, fmt.Errorf("unknown wizard choice %q", choice.Kind)
	}
}

func shortcutZoneLabel(cfg *config.Config) string {
	if z := deadline.FindZone(deadline.USZones, cfg.Shortcut.Zone); z != nil {
		return z.Label
	}
	return cfg.Shortcut.Zone
}
