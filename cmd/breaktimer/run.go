package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/JeffryGonzalez/timer/internal/clock"
	"github.com/JeffryGonzalez/timer/internal/deadline"
	"github.com/JeffryGonzalez/timer/internal/logging"
	"github.com/JeffryGonzalez/timer/internal/timer"
)

type runFlags struct {
	configPath string
	minutes    int
	at         string
	zone       string
	logLevel   string
	logFile    string
}

func newRunCmd() *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Count down in the terminal without the dashboard",
		Long: `Run a countdown headless, printing the remaining time once a second. With
auto_stop enabled in the config the command exits when the break ends;
otherwise it keeps reporting overdue time until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadless(flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Config file path (default: user config dir)")
	cmd.Flags().IntVar(&flags.minutes, "minutes", 0, "Break length in minutes")
	cmd.Flags().StringVar(&flags.at, "at", "", "Wall-clock target, 24-hour HH:MM")
	cmd.Flags().StringVar(&flags.zone, "zone", "America/New_York", "IANA zone for --at")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Override configured log level")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Override configured log file")

	return cmd
}

func runHeadless(flags *runFlags) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	logFile := cfg.Logging.LogFile
	if flags.logFile != "" {
		logFile = flags.logFile
	}
	logger, err := logging.NewLogger(logging.ParseLevel(level), logFile)
	if err != nil {
		return err
	}
	defer logger.Close()

	clk := clock.Real{}
	machine := timer.NewMachine(clk, cfg.AutoStop)

	sel, err := selectionFromFlags(clk.Now(), flags.minutes, flags.at, flags.zone)
	if err != nil {
		return err
	}

	machine.Choose(sel)
	if !machine.Confirm() {
		return fmt.Errorf("no valid selection to start")
	}

	startedAt, expiresAt, _ := machine.Run()
	logger.LogRunStart(startedAt, expiresAt, cfg.AutoStop)

	var lastLine string
	runner := timer.NewRunner(clk, machine, time.Second, func(now time.Time, remaining time.Duration, state timer.State) {
		line := deadline.FormatClock(remaining)
		if remaining < 0 {
			line += " (overdue)"
		}
		if line != lastLine {
			logger.Info("%s", line)
			lastLine = line
		}
	})

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)

	runner.Start()

	finished := make(chan struct{})
	go func() {
		runner.Wait()
		close(finished)
	}()

	select {
	case <-interrupted:
		runner.Stop()
		overdueBy := -machine.Remaining(clk.Now())
		machine.Cancel()
		logger.LogRunEnd("cancelled", overdueBy)
	case <-finished:
		logger.LogRunEnd("expired", 0)
	}
	return nil
}
