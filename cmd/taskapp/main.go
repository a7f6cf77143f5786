package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/board"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/board/i18n"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/config"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/images"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/pomodoro"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/settings"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/store"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/store/file"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/store/gormstore"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/ui"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:           "taskapp",
	Short:         "Kanban task board with per-task pomodoro timers",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskapp %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func run() error {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// Log to a file; stdout belongs to the TUI
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewJSONHandler(logFile, nil))

	team, err := config.LoadTeam(cfg.DataDir)
	if err != nil {
		return err
	}

	prefs, err := settings.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening settings: %w", err)
	}
	defer prefs.Close()

	var gw store.Gateway
	switch cfg.Backend {
	case "sqlite":
		db, err := gormstore.Open(cfg.DatabaseDSN)
		if err != nil {
			return fmt.Errorf("opening sqlite store: %w", err)
		}
		gw = db
	default:
		fs, err := file.New(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("opening file store: %w", err)
		}
		gw = fs
	}

	ctx := context.Background()
	co := board.New(gw, logger, i18n.New(prefsLocale(prefs, cfg)))
	if err := co.Load(ctx); err != nil {
		return fmt.Errorf("loading board data: %w", err)
	}

	timerCfg := pomodoro.Config{
		WorkDuration:   time.Duration(prefs.GetInt(settings.KeyWorkMinutes, cfg.WorkMinutes)) * time.Minute,
		ShortBreak:     time.Duration(cfg.ShortBreakMinutes) * time.Minute,
		LongBreak:      time.Duration(cfg.LongBreakMinutes) * time.Minute,
		AutoStartBreak: prefs.GetBool(settings.KeyAutoStartBreak, cfg.AutoStartBreak),
		SoundEnabled:   prefs.GetBool(settings.KeySoundEnabled, cfg.SoundEnabled),
	}
	timers := pomodoro.NewTimerSet(timerCfg)

	blobs, err := images.NewBlobStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening image store: %w", err)
	}

	app := ui.NewApp(ctx, co, timers, team, prefs, blobs)
	p := tea.NewProgram(app, tea.WithAltScreen())

	logger.Info("starting", "version", version, "backend", cfg.Backend)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}

// prefsLocale lets the stored preference override the environment
func prefsLocale(prefs *settings.DB, cfg config.Config) string {
	if v, err := prefs.Get(settings.KeyLocale); err == nil && v != "" {
		return v
	}
	return cfg.Locale
}

func main() {
	rootCmd.AddCommand(versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
