package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JeffryGonzalez/timer/internal/clock"
	"github.com/JeffryGonzalez/timer/internal/config"
	"github.com/JeffryGonzalez/timer/internal/timer"
	"github.com/JeffryGonzalez/timer/internal/tui"
	"github.com/JeffryGonzalez/timer/internal/ui"
)

type tuiFlags struct {
	configPath string
	minutes    int
	wizard     bool
	cliMode    bool
}

func newTUICmd() *cobra.Command {
	flags := &tuiFlags{}
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the break timer dashboard",
		Long: `Launch the interactive dashboard. Pick a duration with the preset keys,
type custom minutes, or jump to the configured wall-clock shortcut; the
countdown and the per-zone expiry table update live.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Config file path (default: user config dir)")
	cmd.Flags().IntVar(&flags.minutes, "minutes", 0, "Start counting down immediately with this many minutes")
	cmd.Flags().BoolVar(&flags.wizard, "wizard", false, "Run the duration wizard before opening the dashboard")
	cmd.Flags().BoolVar(&flags.cliMode, "cli", false, "Force non-interactive output (print a preview, no TUI)")

	return cmd
}

func runTUI(flags *tuiFlags) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	clk := clock.Real{}

	var initial timer.Selection
	if flags.minutes != 0 {
		n, err := timer.ParseMinutes(fmt.Sprintf("%d", flags.minutes))
		if err != nil {
			return err
		}
		initial = timer.Custom(n)
	}
	if flags.wizard {
		initial, err = ui.RunDurationWizard(cfg, clk)
		if err != nil {
			return err
		}
	}

	if flags.cliMode {
		if !initial.Valid() {
			return fmt.Errorf("nothing to preview: pass --minutes or --wizard with --cli")
		}
		now := clk.Now()
		fmt.Fprintln(os.Stdout, ui.RenderPreview(initial, initial.Resolve(now), now, cfg.DisplayZones()))
		return nil
	}

	return tui.Run(cfg, initial)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	return config.LoadConfig(path, true)
}
