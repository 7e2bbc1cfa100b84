package commands

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/prefs"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/tui"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type settingsDoc struct {
	FocusMinutes      int    `yaml:"focus_minutes"`
	ShortBreakMinutes int    `yaml:"short_break_minutes"`
	LongBreakMinutes  int    `yaml:"long_break_minutes"`
	AutoAdvance       bool   `yaml:"auto_advance"`
	CompletedCycles   int    `yaml:"completed_cycles"`
	Theme             string `yaml:"theme"`
}

func newConfigCommand(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the stored settings",
	}
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective settings as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withStore(cmd, opts, runConfigShow)
			},
		},
		&cobra.Command{
			Use:   "set key=value...",
			Short: "Change settings (focus, short, long, auto, theme)",
			Long: `Change one or more settings. Durations are in minutes and are clamped
to their allowed range; invalid values fall back to the defaults.`,
			Args: cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd, opts, func(cmd *cobra.Command, store prefs.Store) error {
					return runConfigSet(cmd, store, args)
				})
			},
		},
		&cobra.Command{
			Use:   "reset-cycles",
			Short: "Reset the completed pomodoro counter",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withStore(cmd, opts, func(cmd *cobra.Command, store prefs.Store) error {
					if err := prefs.ResetCycles(store); err != nil {
						return fmt.Errorf("reset cycles: %w", err)
					}
					fmt.Fprintln(cmd.OutOrStdout(), "Completed pomodoros reset")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print where the settings are stored",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withStore(cmd, opts, func(cmd *cobra.Command, store prefs.Store) error {
					fmt.Fprintln(cmd.OutOrStdout(), storeLocation(store))
					return nil
				})
			},
		},
	)
	return configCmd
}

func withStore(cmd *cobra.Command, opts *rootOptions, fn func(*cobra.Command, prefs.Store) error) error {
	store, closeStore, err := openStore(cmd.Context(), opts.store, opts.dbPath)
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	defer func() { util.LogError("close store", closeStore()) }()
	return fn(cmd, store)
}

func runConfigShow(cmd *cobra.Command, store prefs.Store) error {
	cfg, err := prefs.Load(store)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	doc := settingsDoc{
		FocusMinutes:      cfg.FocusMinutes,
		ShortBreakMinutes: cfg.ShortBreakMinutes,
		LongBreakMinutes:  cfg.LongBreakMinutes,
		AutoAdvance:       cfg.AutoAdvance,
		CompletedCycles:   prefs.LoadCycles(store),
		Theme:             prefs.LoadTheme(store),
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func runConfigSet(cmd *cobra.Command, store prefs.Store, args []string) error {
	cfg, err := prefs.Load(store)
	util.LogError("load settings", err)
	theme := ""
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected key=value, got %q", arg)
		}
		if key == "theme" {
			if _, ok := tui.Themes[value]; !ok {
				return fmt.Errorf("unknown theme %q", value)
			}
			theme = value
			continue
		}
		if err := applySetting(&cfg, key, value); err != nil {
			return err
		}
	}

	normalized, err := timer.Normalize(cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "adjusted: %v\n", err)
	}
	if err := prefs.Save(store, normalized); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if theme != "" {
		if err := prefs.SaveTheme(store, theme); err != nil {
			return fmt.Errorf("save theme: %w", err)
		}
	}
	return runConfigShow(cmd, store)
}

func applySetting(cfg *models.SessionConfig, key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "auto" || key == "auto_advance" {
		b, ok := util.ParseBool(value)
		if !ok {
			return fmt.Errorf("invalid boolean %q for %s", value, key)
		}
		cfg.AutoAdvance = b
		return nil
	}

	var target *int
	switch key {
	case "focus", "focus_minutes":
		target = &cfg.FocusMinutes
	case "short", "short_break", "short_break_minutes":
		target = &cfg.ShortBreakMinutes
	case "long", "long_break", "long_break_minutes":
		target = &cfg.LongBreakMinutes
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	n, ok := util.ParseInt(value)
	if !ok {
		return fmt.Errorf("invalid number %q for %s", value, key)
	}
	*target = n
	return nil
}
