package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/JeffryGonzalez/timer/internal/clock"
	"github.com/JeffryGonzalez/timer/internal/ui"
)

type whenFlags struct {
	configPath string
	minutes    int
	at         string
	zone       string
	copy       bool
}

func newWhenCmd() *cobra.Command {
	flags := &whenFlags{}
	cmd := &cobra.Command{
		Use:   "when",
		Short: "Resolve a break deadline and show it across U.S. timezones",
		Long: `Compute when a break would end without starting a countdown. Give either a
relative duration (--minutes) or a wall-clock target (--at HH:MM with --zone);
the next future occurrence of a wall-clock target is used, DST included.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhen(flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Config file path (default: user config dir)")
	cmd.Flags().IntVar(&flags.minutes, "minutes", 0, "Relative break length in minutes")
	cmd.Flags().StringVar(&flags.at, "at", "", "Wall-clock target, 24-hour HH:MM")
	cmd.Flags().StringVar(&flags.zone, "zone", "America/New_York", "IANA zone for --at")
	cmd.Flags().BoolVar(&flags.copy, "copy", false, "Copy the per-zone summary to the clipboard")

	return cmd
}

func runWhen(flags *whenFlags) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	clk := clock.Real{}
	now := clk.Now()

	sel, err := selectionFromFlags(now, flags.minutes, flags.at, flags.zone)
	if err != nil {
		return err
	}

	expiresAt := sel.Resolve(now)
	zones := cfg.DisplayZones()
	fmt.Fprintln(os.Stdout, ui.RenderPreview(sel, expiresAt, now, zones))

	if flags.copy {
		if err := clipboard.WriteAll(ui.ZoneSummary(expiresAt, zones)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stdout, "Copied to clipboard.")
	}
	return nil
}
