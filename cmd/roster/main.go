package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/san-kum/roster/internal/config"
	"github.com/san-kum/roster/internal/fixed"
	"github.com/san-kum/roster/internal/roster"
	"github.com/san-kum/roster/internal/stats"
	"github.com/san-kum/roster/internal/tui"
	"github.com/san-kum/roster/internal/viz"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
)

var (
	configFile string
	separator  string
	theme      string
	plain      bool
	verbose    bool
	noPrompts  bool

	cfg = config.DefaultConfig()
)

// main wires the roster commands. Input problems are reported but the exit
// status stays 0; only cobra usage errors exit 1.
func main() {
	rootCmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "roster",
		Short:             "classroom roster on a fixed-length dynamic array",
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := roster.Exercise(in, out, exerciseOptions()); err != nil {
				reportInputError(errOut, err)
			}
			return nil
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&separator, "sep", config.DefaultSeparator, "separator between students")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.BoolVar(&plain, "plain", false, "disable colors")
	pf.BoolVar(&verbose, "verbose", false, "verbose logging")
	pf.BoolVar(&noPrompts, "no-prompts", false, "do not print input prompts")

	presetCmd := &cobra.Command{
		Use:   "preset [name]",
		Short: "run the exercise on a built-in class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			first := config.GetPreset(args[0])
			if first == nil {
				return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
			}
			logger.Verbose("using preset " + args[0])
			opts := exerciseOptions()
			roster.PrintClass(out, opts, opts.FirstLabel, first)
			roster.Build(first, out, opts)
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in classes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Fprintf(out, "  %-8s %s\n", name, viz.Muted(config.GetPreset(name).ToText(cfg.Separator)))
			}
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "read a class and summarize its standards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var prompt io.Writer
			if cfg.Prompts {
				prompt = out
			}
			first, err := roster.NewReader(in, prompt).Class(cfg.Labels.First)
			if err != nil {
				reportInputError(errOut, err)
				return nil
			}
			if cfg.Prompts {
				fmt.Fprintln(out)
			}
			printStats(out, roster.Standards(first))
			return nil
		},
	}

	arrayCmd := &cobra.Command{
		Use:   "array",
		Short: "fixed-size array walkthrough",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fixed.Walkthrough(out, errOut)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "enter a class in an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := tui.RunEntry(cfg.Separator)
			if err != nil {
				return err
			}
			if res == nil {
				logger.Info("entry cancelled")
				return nil
			}
			opts := exerciseOptions()
			roster.PrintClass(out, opts, opts.CopyLabel, res.Copy)
			roster.PrintClass(out, opts, opts.MergedLabel, res.Merged)
			return nil
		},
	}

	rootCmd.AddCommand(presetCmd, presetsCmd, statsCmd, arrayCmd, tuiCmd)
	return rootCmd
}

// loadConfig layers the yaml file (if any) under explicitly set flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config %s: %w", configFile, err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("sep") {
		cfg.Separator = separator
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("plain") {
		cfg.Plain = plain
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("no-prompts") {
		cfg.Prompts = !noPrompts
	}

	if cfg.Verbose {
		logger.SetLogLevel(logger.LogLevelVerbose)
	} else {
		logger.SetLogLevel(logger.LogLevelInfo)
	}
	viz.SetPlain(cfg.Plain)
	if !viz.SetTheme(cfg.Theme) {
		logger.Info(fmt.Sprintf("unknown theme %q, using %s (available: %s)",
			cfg.Theme, viz.CurrentTheme.Name, strings.Join(viz.ThemeNames(), ", ")))
	}

	if configFile != "" {
		logger.Verbose("loaded config " + configFile)
	}
	return nil
}

func exerciseOptions() roster.Options {
	return roster.Options{
		Sep:         cfg.Separator,
		FirstLabel:  cfg.Labels.First,
		CopyLabel:   cfg.Labels.Copy,
		MergedLabel: cfg.Labels.Merged,
		Prompts:     cfg.Prompts,
		Heading:     viz.Heading,
	}
}

func printStats(out io.Writer, standards []int) {
	summary, err := stats.Summarize(standards)
	if err != nil {
		fmt.Fprintln(out, viz.Muted("no students"))
		return
	}
	fmt.Fprintln(out, viz.Heading("standards"))
	fmt.Fprintln(out, viz.Separator(30))
	fmt.Fprintf(out, "  %s %d\n", viz.Label("count"), summary.Count)
	fmt.Fprintf(out, "  %s %.0f\n", viz.Label("sum  "), summary.Sum)
	fmt.Fprintf(out, "  %s %.2f\n", viz.Label("mean "), summary.Mean)
	fmt.Fprintf(out, "  %s %.0f\n", viz.Label("min  "), summary.Min)
	fmt.Fprintf(out, "  %s %.0f\n", viz.Label("max  "), summary.Max)
	fmt.Fprintf(out, "  %s %s\n", viz.Label("trend"), viz.Sparkline(stats.Floats(standards)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.Chart(stats.Floats(standards), cfg.ChartHeight, "standard by position"))
}

func reportInputError(errOut io.Writer, err error) {
	logger.Verbose("input rejected: " + err.Error())
	fmt.Fprintln(errOut, viz.ErrorText(err.Error()))
}
