package commands

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/headless"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/prefs"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/tui"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootOptions struct {
	dbPath string
	store  string
	plain  bool
	theme  string
	mode   string
	debug  bool
	focus  int
	short  int
	long   int
	auto   bool
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Pomodoro countdown timer for the terminal",
		Long: `pomo alternates focus and break countdowns, rings the terminal bell when
one finishes and remembers your durations and completed pomodoros.`,
		Version:      tui.VersionLabel(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.dbPath, "db", "", "Settings file path (default in the data dir)")
	flags.StringVar(&opts.store, "store", config.StoreSQLite, "Settings store: sqlite, yaml or memory")
	flags.BoolVar(&opts.debug, "debug", false, "Write logs to "+config.LogFileName)

	rootCmd.Flags().BoolVar(&opts.plain, "plain", false, "Print the countdown line by line instead of the full-screen UI")
	rootCmd.Flags().StringVar(&opts.theme, "theme", "", "Color theme: "+strings.Join(tui.ThemeOrder, ", "))
	rootCmd.Flags().StringVar(&opts.mode, "mode", "", "Mode to start in: focus, short or long")
	rootCmd.Flags().IntVar(&opts.focus, "focus", 0, "Focus minutes for this and later runs")
	rootCmd.Flags().IntVar(&opts.short, "short", 0, "Short break minutes")
	rootCmd.Flags().IntVar(&opts.long, "long", 0, "Long break minutes")
	rootCmd.Flags().BoolVar(&opts.auto, "auto", false, "Start the next countdown automatically")

	rootCmd.AddCommand(newConfigCommand(opts))
	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// validate rejects flag values that would otherwise be replaced silently.
func (o *rootOptions) validate() (models.Mode, error) {
	if err := checkStoreKind(o.store); err != nil {
		return "", err
	}
	if o.theme != "" {
		if _, ok := tui.Themes[o.theme]; !ok {
			return "", fmt.Errorf("unknown theme %q (want %s)", o.theme, strings.Join(tui.ThemeOrder, ", "))
		}
	}
	if o.mode == "" {
		return "", nil
	}
	mode, ok := models.ParseMode(o.mode)
	if !ok {
		return "", fmt.Errorf("unknown mode %q", o.mode)
	}
	return mode, nil
}

func (o *rootOptions) run(cmd *cobra.Command) error {
	startMode, err := o.validate()
	if err != nil {
		return err
	}

	useTUI := !o.plain && term.IsTerminal(int(os.Stdout.Fd()))
	if useTUI {
		closeLog, err := o.setupTUILogging()
		if err != nil {
			return err
		}
		defer closeLog()
	}

	store, closeStore, err := openStore(cmd.Context(), o.store, o.dbPath)
	if err != nil {
		log.Printf("settings store unavailable, using memory: %v", err)
		store = prefs.NewMemoryStore()
	}
	defer func() { util.LogError("close store", closeStore()) }()

	ctrl, err := prefs.NewSession(store, timer.SystemClock)
	util.LogError("load settings", err)
	if o.applyOverrides(cmd, ctrl) {
		util.LogError("save settings", prefs.Save(store, ctrl.Config()))
	}
	if startMode != "" {
		ctrl.ResetTo(startMode)
	}

	if useTUI {
		return o.runTUI(ctrl, store)
	}
	return o.runHeadless(cmd, ctrl)
}

// applyOverrides configures ctrl from the flags set on the command line.
func (o *rootOptions) applyOverrides(cmd *cobra.Command, ctrl *timer.Controller) bool {
	cfg := ctrl.Config()
	changed := false
	flags := cmd.Flags()
	if flags.Changed("focus") {
		cfg.FocusMinutes, changed = o.focus, true
	}
	if flags.Changed("short") {
		cfg.ShortBreakMinutes, changed = o.short, true
	}
	if flags.Changed("long") {
		cfg.LongBreakMinutes, changed = o.long, true
	}
	if flags.Changed("auto") {
		cfg.AutoAdvance, changed = o.auto, true
	}
	if !changed {
		return false
	}
	if err := ctrl.Configure(cfg); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "adjusted: %v\n", err)
	}
	return true
}

func (o *rootOptions) setupTUILogging() (func(), error) {
	if !o.debug && os.Getenv("POMO_DEBUG") == "" {
		util.SilenceLogs()
		return func() {}, nil
	}
	path := filepath.Join(util.DataDir(config.AppName), config.LogFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, config.AppName)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func (o *rootOptions) runTUI(ctrl *timer.Controller, store prefs.Store) error {
	theme := o.theme
	if theme == "" {
		theme = prefs.LoadTheme(store)
	} else {
		util.LogError("save theme", prefs.SaveTheme(store, theme))
	}
	model := tui.NewModel(ctrl, store, tui.Options{Theme: theme, Bell: os.Stderr})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func (o *rootOptions) runHeadless(cmd *cobra.Command, ctrl *timer.Controller) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	frames, stopTicker := headless.Ticker(config.FrameInterval)
	defer stopTicker()
	return headless.NewRunner(ctrl, cmd.OutOrStdout()).Run(ctx, frames)
}
