// Package main provides the CLI entry point for roster-go.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/roster-go/internal/config"
	"github.com/ukaji3/roster-go/internal/logging"
	"github.com/ukaji3/roster-go/internal/watch"
	"github.com/ukaji3/roster-go/pkg/roster"
	"github.com/ukaji3/roster-go/pkg/roster/output"
	"github.com/ukaji3/roster-go/pkg/roster/render"
)

var (
	configPath string
	outputDir  string
	pretty     bool
	toStdout   bool
	plain      bool

	cfg *config.Config
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Convert weekly shift roster spreadsheets to JSON",
		Long: `roster-go reads a weekly shift roster workbook (.xlsx), finds the day
blocks on every roster sheet and writes a normalized JSON schedule in which
each person is marked as assigned (yellow cell) or requested (plain cell).`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file path")

	parseCmd := &cobra.Command{
		Use:   "parse [file-or-folder]",
		Short: "Parse a roster workbook and write Roster.json plus a dated copy",
		Long: `Parse a roster workbook. When given a folder (or nothing, meaning the
configured roster folder) the most recently modified spreadsheet in it is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}
	parseCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the current document (default: roster folder)")
	parseCmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	parseCmd.Flags().BoolVar(&toStdout, "stdout", false, "Print JSON to stdout instead of writing files")

	showCmd := &cobra.Command{
		Use:   "show [file-or-folder]",
		Short: "Print a parsed roster to the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().BoolVar(&plain, "plain", false, "Disable colors and borders")

	watchCmd := &cobra.Command{
		Use:   "watch [folder]",
		Short: "Parse every new spreadsheet dropped into the roster folder",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWatch,
	}
	watchCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the current document (default: roster folder)")

	rootCmd.AddCommand(parseCmd, showCmd, watchCmd)
	return rootCmd
}

// setup loads .env and config, then configures logging with a per-run id.
func setup(cmd *cobra.Command, args []string) error {
	envErr := godotenv.Load()

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	logging.Setup(cfg.Logging.Level, cfg.Logging.Env)
	log.Logger = log.With().Str("run_id", uuid.NewString()).Logger()

	// report on .env only once logging is configured
	if envErr == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found; proceeding with existing environment variables.")
	}
	return nil
}

func options() roster.Options {
	opts := roster.DefaultOptions()
	opts.Parser = cfg.ParserConfig()
	opts.Pretty = cfg.Output.Pretty
	opts.Writer = cfg.Writer(outputDir)
	return opts
}

// resolveInput maps an optional argument to a spreadsheet path. Folders
// resolve to their newest spreadsheet.
func resolveInput(args []string) (string, error) {
	path := cfg.Roster.Folder
	if len(args) > 0 {
		path = args[0]
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", roster.ErrFileNotFound, path)
		}
		return "", err
	}
	if !info.IsDir() {
		return path, nil
	}

	latest, err := output.LatestSpreadsheet(path)
	if err != nil {
		return "", err
	}
	log.Info().Str("path", latest).Msg("Using latest roster file")
	return latest, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	inputPath, err := resolveInput(args)
	if err != nil {
		return err
	}

	opts := options()
	if cmd.Flags().Changed("pretty") {
		opts.Pretty = pretty
	}

	if toStdout {
		weeks, err := roster.ParseFile(inputPath, opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		jsonData, err := output.ToJSON(weeks, opts.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	}

	if _, err := roster.Run(inputPath, opts); err != nil {
		return err
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	inputPath, err := resolveInput(args)
	if err != nil {
		return err
	}

	weeks, err := roster.ParseFile(inputPath, options())
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if len(weeks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No roster data found")
		return nil
	}

	styles := render.DefaultStyles()
	if plain {
		styles = render.PlainStyles()
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Weeks(weeks, styles))
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := cfg.Roster.Folder
	if len(args) > 0 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create roster folder: %w", err)
	}

	debounce, err := cfg.DebounceDuration()
	if err != nil {
		return err
	}

	opts := options()
	w, err := watch.New(dir, debounce, func(ctx context.Context, path string) error {
		_, err := roster.Run(path, opts)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	<-ctx.Done()
	w.Stop()

	stats := w.Stats()
	log.Info().
		Int("runs", stats.Runs).
		Int("failures", stats.Failures).
		Msg("Watcher stopped")
	return nil
}
