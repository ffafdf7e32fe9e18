// Package main provides the CLI entrypoint for tuitrace.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/verte-zerg/tuitrace/internal/alphabet"
	"github.com/verte-zerg/tuitrace/internal/audio"
	"github.com/verte-zerg/tuitrace/internal/config"
	"github.com/verte-zerg/tuitrace/internal/content"
	"github.com/verte-zerg/tuitrace/internal/difficulty"
	"github.com/verte-zerg/tuitrace/internal/generator"
	"github.com/verte-zerg/tuitrace/internal/model"
	"github.com/verte-zerg/tuitrace/internal/scoreboard"
	"github.com/verte-zerg/tuitrace/internal/sheet"
	"github.com/verte-zerg/tuitrace/internal/stats"
	"github.com/verte-zerg/tuitrace/internal/statsui"
	"github.com/verte-zerg/tuitrace/internal/store"
	"github.com/verte-zerg/tuitrace/internal/strokes"
	"github.com/verte-zerg/tuitrace/internal/tui"
)

const (
	defaultLang        = alphabet.Hebrew
	defaultDifficulty  = string(difficulty.Easy)
	defaultOrder       = model.OrderSequential
	defaultCanvas      = 300.0
	defaultPlayer      = "paplay"
	defaultWeakWindow  = 20
	defaultCurveWindow = 20
	defaultWeakTop     = 5
)

// LogLevelEnv selects the slog level (debug, info, warn, error).
const LogLevelEnv = "TUITRACE_LOG_LEVEL"

var (
	traceLang       string
	traceDifficulty string
	traceOrder      string
	traceCanvas     float64
	traceLetter     string
	traceNoSound    bool

	lettersLang string

	statsLang        string
	statsSince       string
	statsLast        int
	statsCurveWindow int
	statsPlain       bool

	sheetLetter     string
	sheetOut        string
	sheetSize       int
	sheetDifficulty string

	browseKind   string
	browseUILang string
	browseLang   string

	resetLang string
)

func main() {
	slog.SetDefault(newLogger(os.Getenv(LogLevelEnv)))
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(level)}))
}

// screenLogger routes logs to the log file while a full-screen program owns
// the terminal, since stderr output would draw over it. Without a usable log
// file, logs are dropped. The returned func restores the previous default.
func screenLogger() (*slog.Logger, func()) {
	logger, restore, err := fileLogger(config.DefaultLogPath(), os.Getenv(LogLevelEnv))
	if err != nil {
		slog.Warn("logging disabled while the UI runs", slog.String("error", err.Error()))
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	return logger, restore
}

// fileLogger installs a default logger appending to path.
func fileLogger(path, level string) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	prev := slog.Default()
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: parseLogLevel(level)}))
	slog.SetDefault(logger)
	return logger, func() {
		slog.SetDefault(prev)
		if cerr := f.Close(); cerr != nil {
			// Best-effort close of the log file.
			_ = cerr
		}
	}, nil
}

func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn
	}
	return level
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuitrace",
		Short:         "TUI letter tracing trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTraceCmd,
	}

	rootCmd.Flags().StringVar(&traceLang, "lang", defaultLang, "alphabet ("+strings.Join(alphabet.Languages(), ", ")+")")
	rootCmd.Flags().StringVar(&traceDifficulty, "difficulty", defaultDifficulty, "difficulty level (easy, medium, hard)")
	rootCmd.Flags().StringVar(&traceOrder, "order", defaultOrder, "letter order ("+strings.Join(model.Orders(), ", ")+")")
	rootCmd.Flags().Float64Var(&traceCanvas, "canvas", defaultCanvas, "canvas size in pixels used for hit-testing")
	rootCmd.Flags().StringVar(&traceLetter, "letter", "", "start with this letter")
	rootCmd.Flags().BoolVar(&traceNoSound, "no-sound", false, "disable sound")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLettersCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newSheetCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newResetCmd())

	return rootCmd
}

// resolveTraceConfig merges the config file under the command line flags.
func resolveTraceConfig(cmd *cobra.Command, fileCfg config.FileConfig) (model.Config, error) {
	sound := true
	player := defaultPlayer
	soundsDir := config.DefaultSoundsDir()
	packsDir := config.DefaultPacksDir()
	weakWindow := defaultWeakWindow
	url, child := "", ""

	applyStringConfig(cmd, "lang", &traceLang, fileCfg.Trace.Lang)
	applyStringConfig(cmd, "difficulty", &traceDifficulty, fileCfg.Trace.Difficulty)
	applyStringConfig(cmd, "order", &traceOrder, fileCfg.Trace.Order)
	applyFloatConfig(cmd, "canvas", &traceCanvas, fileCfg.Trace.Canvas)
	applyValue(&sound, fileCfg.Trace.Sound)
	applyValue(&player, fileCfg.Trace.Player)
	applyValue(&soundsDir, fileCfg.Trace.SoundsDir)
	applyValue(&packsDir, fileCfg.Trace.PacksDir)
	applyValue(&weakWindow, fileCfg.Trace.WeakWindow)
	applyValue(&url, fileCfg.Scoreboard.URL)
	applyValue(&child, fileCfg.Scoreboard.Child)
	if traceNoSound {
		sound = false
	}

	level, err := difficulty.Parse(traceDifficulty)
	if err != nil {
		return model.Config{}, err
	}
	cfg := model.Config{
		Lang:          strings.ToLower(strings.TrimSpace(traceLang)),
		Difficulty:    level,
		Order:         strings.ToLower(strings.TrimSpace(traceOrder)),
		CanvasSize:    traceCanvas,
		Letter:        traceLetter,
		Sound:         sound,
		Player:        player,
		SoundsDir:     soundsDir,
		PacksDir:      packsDir,
		WeakWindow:    weakWindow,
		ScoreboardURL: url,
		Child:         child,
	}
	if err := cfg.Validate(); err != nil {
		return model.Config{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func runTraceCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger, restoreLog := screenLogger()
	defer restoreLog()

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := resolveTraceConfig(cmd, fileCfg)
	if err != nil {
		return err
	}

	registry := loadRegistry(ctx, cfg.PacksDir, logger)

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st, logger)

	traced := store.LoadTracedLetters(ctx, st, logger)

	ids, err := alphabet.Letters(cfg.Lang)
	if err != nil {
		return err
	}
	traceable := alphabet.Filter(ids, registry.Has)
	if len(traceable) == 0 {
		return fmt.Errorf("no traceable letters for %q", cfg.Lang)
	}
	gen := generator.New(traceable, cfg.Order)
	if cfg.Order == model.OrderWeak {
		gen.SetFocus(focusLetters(ctx, st, traced, cfg, traceable, logger), generator.DefaultWeakFactor)
	}

	deps := tui.Deps{
		Registry:  registry,
		Generator: gen,
		Traced:    traced,
		Sessions:  st,
		Logger:    logger,
	}
	if cfg.Sound {
		player := audio.NewManager(cfg.SoundsDir, audio.ExecRunner(cfg.Player), logger)
		defer func() {
			if cerr := player.Close(); cerr != nil {
				// Best-effort stop of the last clip.
				_ = cerr
			}
		}()
		deps.Player = player
	}
	if cfg.ScoreboardURL != "" {
		client, err := scoreboard.New(cfg.ScoreboardURL, nil)
		if err != nil {
			return err
		}
		deps.Scoreboard = client
	}

	m := tui.NewModel(cfg, deps)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadRegistry merges the user's stroke packs over the built-in letters.
// Broken packs are logged and skipped.
func loadRegistry(ctx context.Context, dir string, logger *slog.Logger) *strokes.Registry {
	packs, err := strokes.LoadPacks(ctx, dir)
	if err != nil {
		logger.Warn("failed to load stroke packs", slog.String("dir", dir), slog.String("error", err.Error()))
	}
	if len(packs) == 0 {
		return strokes.Default()
	}
	return strokes.NewRegistry(strokes.Builtin(), strokes.Letters(packs))
}

// focusLetters picks the letters the weighted order favors: the weakest
// recent letters plus those never traced.
func focusLetters(ctx context.Context, st *store.Store, traced *store.TracedLetters, cfg model.Config, letters []string, logger *slog.Logger) []string {
	var focus []string
	aggs, err := st.GetWeakLetters(ctx, cfg.WeakWindow, cfg.Lang)
	if err != nil {
		logger.Warn("failed to load weak letters", slog.String("error", err.Error()))
	} else {
		focus = stats.SelectWeakLetters(aggs, defaultWeakTop)
	}
	for _, id := range letters {
		if !traced.Has(cfg.Lang, id) {
			focus = append(focus, id)
		}
	}
	return focus
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLettersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "letters",
		Short: "List letters with traceable/traced marks",
		Args:  cobra.NoArgs,
		RunE:  runLettersCmd,
	}
	cmd.Flags().StringVar(&lettersLang, "lang", defaultLang, "alphabet")
	return cmd
}

func runLettersCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := slog.Default()
	ids, err := alphabet.Letters(lettersLang)
	if err != nil {
		return err
	}
	lang := strings.ToLower(strings.TrimSpace(lettersLang))

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	packsDir := config.DefaultPacksDir()
	applyValue(&packsDir, fileCfg.Trace.PacksDir)
	registry := loadRegistry(ctx, packsDir, logger)

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st, logger)
	traced := store.LoadTracedLetters(ctx, st, logger)

	out := cmd.OutOrStdout()
	for _, id := range ids {
		if _, err := fmt.Fprintln(out, letterLine(id, registry.Has(id), traced.Has(lang, id))); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	_, err = fmt.Fprintf(out, "Traced %d/%d\n", traced.Count(lang), len(ids))
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func letterLine(id string, traceable, traced bool) string {
	state := "traceable"
	if !traceable {
		state = "missing"
	}
	mark := " "
	if traced {
		mark = "✓"
	}
	return fmt.Sprintf("%s %s  %s", mark, id, state)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show tracing progress",
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsLang, "lang", "", "alphabet filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a text report instead of opening the UI")
	return cmd
}

func parseSince(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --since value: %w", err)
	}
	return &parsed, nil
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := slog.Default()
	since, err := parseSince(statsSince)
	if err != nil {
		return err
	}
	cfg := model.StatsConfig{
		Lang:        strings.ToLower(strings.TrimSpace(statsLang)),
		Since:       since,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid stats filters: %w", err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st, logger)

	if statsPlain {
		report, err := stats.BuildReport(ctx, st, cfg)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		return writePlainReport(cmd, report, cfg.CurveWindow)
	}

	traced := store.LoadTracedLetters(ctx, st, logger)
	m := statsui.NewModel(st, traced, strokes.Default(), cfg)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func writePlainReport(cmd *cobra.Command, report stats.Report, window int) error {
	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, report.Sessions); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderCurves(out, report.Sessions, window); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderLetterTable(out, report.LetterAggsWindow); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newSheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Write a printable tracing sheet for a letter",
		Args:  cobra.NoArgs,
		RunE:  runSheetCmd,
	}
	cmd.Flags().StringVar(&sheetLetter, "letter", "", "letter to draw")
	cmd.Flags().StringVar(&sheetOut, "out", "", "output PNG path (default <letter>.png)")
	cmd.Flags().IntVar(&sheetSize, "size", sheet.DefaultSize, "image side in pixels")
	cmd.Flags().StringVar(&sheetDifficulty, "difficulty", defaultDifficulty, "difficulty level controlling hints")
	_ = cmd.MarkFlagRequired("letter")
	return cmd
}

func runSheetCmd(cmd *cobra.Command, _ []string) error {
	id := alphabet.Normalize(sheetLetter)
	letter, ok := strokes.Default().Lookup(id)
	if !ok {
		return fmt.Errorf("no stroke data for %q", id)
	}
	level, err := difficulty.Parse(sheetDifficulty)
	if err != nil {
		return err
	}
	preset := difficulty.Get(level)
	opts := sheet.Options{
		Size:        sheetSize,
		StrokeWidth: preset.StrokeWidth,
		Checkpoints: preset.ShowAllCheckpoints,
		Numbers:     preset.ShowNextCheckpoint,
	}
	out := sheetOut
	if out == "" {
		out = id + ".png"
	}
	if err := sheet.Save(out, letter, opts); err != nil {
		return fmt.Errorf("failed to write sheet: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
	return err
}

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List content catalog items",
		Args:  cobra.NoArgs,
		RunE:  runBrowseCmd,
	}
	cmd.Flags().StringVar(&browseKind, "kind", "", "content kind ("+kindNames()+"), default all")
	cmd.Flags().StringVar(&browseUILang, "ui-lang", "", "label language (default from $LANG)")
	cmd.Flags().StringVar(&browseLang, "lang", defaultLang, "alphabet for letters")
	return cmd
}

func kindNames() string {
	names := make([]string, 0, len(content.Kinds()))
	for _, k := range content.Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	kinds := content.Kinds()
	if browseKind != "" {
		kind, err := content.ParseKind(browseKind)
		if err != nil {
			return err
		}
		kinds = []content.Kind{kind}
	}
	pref := browseUILang
	if pref == "" {
		pref = uiLangFromEnv(os.Getenv("LANG"))
	}
	tag := content.MatchLanguage(pref)
	registry := strokes.Default()

	out := cmd.OutOrStdout()
	for _, kind := range kinds {
		items, err := content.Items(kind, browseLang)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s\n", kind); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		for _, it := range items {
			if _, err := fmt.Fprintln(out, itemLine(it, tag, registry)); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	return nil
}

// uiLangFromEnv turns a POSIX locale such as "he_IL.UTF-8" into a BCP 47 tag.
func uiLangFromEnv(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}

func itemLine(it content.Item, tag language.Tag, registry *strokes.Registry) string {
	line := "  " + content.Title(it, tag)
	if detail := content.Detail(it); detail != "" {
		line += "  " + detail
	}
	if id, ok := content.StrokeID(it); ok && registry.Has(id) {
		line += "  [trace]"
	}
	return line
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget traced letters",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().StringVar(&resetLang, "lang", "", "alphabet to reset (default all)")
	return cmd
}

func runResetCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := slog.Default()
	lang := strings.ToLower(strings.TrimSpace(resetLang))
	if lang != "" {
		if _, err := alphabet.Letters(lang); err != nil {
			return err
		}
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st, logger)

	traced := store.LoadTracedLetters(ctx, st, logger)
	traced.Clear(ctx, lang)
	scope := lang
	if scope == "" {
		scope = "all alphabets"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cleared traced letters for %s\n", scope)
	return err
}

func closeStore(st *store.Store, logger *slog.Logger) {
	if cerr := st.Close(); cerr != nil {
		logger.Warn("failed to close db", slog.String("error", cerr.Error()))
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

// applyValue copies a config file value that has no command line flag.
func applyValue[T any](target, value *T) {
	if value != nil {
		*target = *value
	}
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuitrace configuration
# Uncomment a value to enable it. CLI flags override config values.

[trace]
# lang = %q  # Alphabet: %s
# difficulty = %q  # easy | medium | hard
# order = %q  # sequential | random | weak
# canvas = %.0f  # Canvas size in pixels used for hit-testing
# sound = true
# player = %q  # Command that plays a .wav file
# sounds-dir = ""  # Clip directory (default %s)
# packs-dir = ""  # Stroke pack directory (default %s)
# weak-window = %d  # Recent sessions used by the weak order

[scoreboard]
# url = ""  # POST completed letters to this URL
# child = ""  # Name sent with scoreboard entries
`,
		defaultLang,
		strings.Join(alphabet.Languages(), " | "),
		defaultDifficulty,
		defaultOrder,
		defaultCanvas,
		defaultPlayer,
		config.DefaultSoundsDir(),
		config.DefaultPacksDir(),
		defaultWeakWindow,
	)
}
