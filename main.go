package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"breakpoint-indicator/app"
	"breakpoint-indicator/breakpoint"
	"breakpoint-indicator/config"
	"breakpoint-indicator/inspect"
	"breakpoint-indicator/log"
	"breakpoint-indicator/source"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version         = "0.1.0"
	stylesheetFlag  string
	setFlag         map[string]string
	watchFlag       bool
	noColorFlag     bool
	noAnimationFlag bool
	unitFlag        string
	rootCmd         = &cobra.Command{
		Use:   "breakpoint-indicator",
		Short: "Breakpoint Indicator - Show which responsive breakpoint the terminal width falls into.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize(false)
			defer log.Close()

			settings, err := loadSettings()
			if err != nil {
				return err
			}
			return app.Run(ctx, settings)
		},
	}

	checkCmd = &cobra.Command{
		Use:   "check [width]",
		Short: "Print the badge text for a width (defaults to the current terminal width)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(true)
			defer log.Close()

			settings, err := loadSettings()
			if err != nil {
				return err
			}

			width, err := checkWidth(args)
			if err != nil {
				return err
			}

			set := breakpoint.Build(settings.Config.Candidates, app.Sources(settings.Config, settings.Overrides))
			d := set.Describe(width, settings.Config.Options())
			fmt.Fprintln(cmd.OutOrStdout(), d.Text)
			return nil
		},
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the resolved breakpoints in evaluation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(true)
			defer log.Close()

			settings, err := loadSettings()
			if err != nil {
				return err
			}

			set := breakpoint.Build(settings.Config.Candidates, app.Sources(settings.Config, settings.Overrides))
			if set.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "no breakpoints configured")
				return nil
			}
			printTable(cmd, set, settings.Config.Options())
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths and the last inspect snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			return writeDebug(cmd.OutOrStdout())
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of breakpoint-indicator",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "breakpoint-indicator version %s\n", version)
		},
	}
)

// writeDebug prints the config, log locations and, when BPI_INSPECT=1, the
// snapshot left by the last run.
func writeDebug(out io.Writer) error {
	cfg := config.LoadConfig()

	configDir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	configJson, _ := json.MarshalIndent(cfg, "", "  ")

	fmt.Fprintf(out, "Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
	fmt.Fprintf(out, "Log: %s\n", log.FileName())
	fmt.Fprintf(out, "Debug log: %s\n", log.DebugFileName())

	path := inspect.GetInspectFile()
	if path == "" {
		fmt.Fprintln(out, "Inspect: off (set BPI_INSPECT=1)")
		return nil
	}
	fmt.Fprintf(out, "Inspect: %s\n", path)

	snap, err := inspect.ReadSnapshot(path)
	if err != nil {
		fmt.Fprintf(out, "No snapshot yet: %v\n", err)
		return nil
	}
	fmt.Fprint(out, snap.ToText())
	return nil
}

// loadSettings merges the config file with command line flags.
func loadSettings() (app.Settings, error) {
	cfg := config.LoadConfig()

	if stylesheetFlag != "" {
		cfg.Stylesheet = stylesheetFlag
	}
	if watchFlag {
		cfg.Watch = true
	}
	if unitFlag != "" {
		cfg.Unit = unitFlag
	}
	if noColorFlag {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	overrides := make(source.Map, len(setFlag))
	for name, value := range setFlag {
		threshold, ok := source.ParseThreshold(value)
		if !ok {
			return app.Settings{}, fmt.Errorf("invalid threshold for %s: %q (must be a positive integer)", name, value)
		}
		overrides[name] = threshold
	}

	return app.Settings{
		Config:      cfg,
		Overrides:   overrides,
		NoAnimation: noAnimationFlag,
	}, nil
}

func checkWidth(args []string) (int, error) {
	if len(args) == 1 {
		width, err := strconv.Atoi(args[0])
		if err != nil || width < 0 {
			return 0, fmt.Errorf("invalid width: %q", args[0])
		}
		return width, nil
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, fmt.Errorf("failed to read terminal width (pass one explicitly): %w", err)
	}
	return width, nil
}

func printTable(cmd *cobra.Command, set *breakpoint.Set, opts breakpoint.Options) {
	nameWidth := runewidth.StringWidth("NAME")
	for _, bp := range set.All() {
		if w := runewidth.StringWidth(breakpoint.TitleCase(bp.Name)); w > nameWidth {
			nameWidth = w
		}
	}

	unit := opts.Unit
	if unit == "" {
		unit = breakpoint.DefaultUnit
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s  %s\n", runewidth.FillRight("NAME", nameWidth), runewidth.FillLeft("UP TO", 10), "THEME")
	for _, bp := range set.All() {
		threshold := strconv.Itoa(bp.Threshold) + unit
		fmt.Fprintf(out, "%s  %s  %s\n",
			runewidth.FillRight(breakpoint.TitleCase(bp.Name), nameWidth),
			runewidth.FillLeft(threshold, 10),
			bp.Theme)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&stylesheetFlag, "stylesheet", "s", "",
		"CSS file declaring --breakpoint-{name} properties on :root")
	rootCmd.PersistentFlags().StringToStringVar(&setFlag, "set", nil,
		"Override a threshold, e.g. --set small=80 (repeatable)")
	rootCmd.PersistentFlags().StringVar(&unitFlag, "unit", "",
		"Unit suffix shown after widths (default \"px\")")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Render without colours")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false,
		"Reload breakpoints when the stylesheet changes")
	rootCmd.Flags().BoolVar(&noAnimationFlag, "no-animation", false,
		"Switch badge colours without fading")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
