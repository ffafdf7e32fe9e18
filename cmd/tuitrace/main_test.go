package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/tuitrace/internal/config"
	"github.com/verte-zerg/tuitrace/internal/content"
	"github.com/verte-zerg/tuitrace/internal/difficulty"
	"github.com/verte-zerg/tuitrace/internal/strokes"
)

func strPtr(s string) *string { return &s }

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg.Trace.Lang != nil || cfg.Scoreboard.URL != nil {
		t.Fatalf("expected all values commented out")
	}
}

func TestResolveTraceConfigFlagsOverrideFile(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("lang", "en"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	sound := false
	fileCfg := config.FileConfig{
		Trace: config.TraceConfig{
			Lang:       strPtr("ru"),
			Difficulty: strPtr("hard"),
			Sound:      &sound,
		},
		Scoreboard: config.ScoreboardConfig{Child: strPtr("noa")},
	}
	cfg, err := resolveTraceConfig(cmd, fileCfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Lang != "en" {
		t.Fatalf("expected flag lang, got %q", cfg.Lang)
	}
	if cfg.Difficulty != difficulty.Hard {
		t.Fatalf("expected file difficulty, got %q", cfg.Difficulty)
	}
	if cfg.Sound {
		t.Fatalf("expected sound disabled by file")
	}
	if cfg.Child != "noa" || cfg.CanvasSize != defaultCanvas {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestResolveTraceConfigRejectsUnknownValues(t *testing.T) {
	cmd := newRootCmd()
	if _, err := resolveTraceConfig(cmd, config.FileConfig{Trace: config.TraceConfig{Order: strPtr("backwards")}}); err == nil {
		t.Fatalf("expected order error")
	}
	cmd = newRootCmd()
	if _, err := resolveTraceConfig(cmd, config.FileConfig{Trace: config.TraceConfig{Difficulty: strPtr("expert")}}); err == nil {
		t.Fatalf("expected difficulty error")
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelWarn,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"nope":  slog.LevelWarn,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Fatalf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseSince(t *testing.T) {
	since, err := parseSince("")
	if err != nil || since != nil {
		t.Fatalf("expected no filter")
	}
	since, err = parseSince("2024-02-03")
	if err != nil || since.Day() != 3 {
		t.Fatalf("unexpected since: %v %v", since, err)
	}
	if _, err := parseSince("03/02/2024"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestUILangFromEnv(t *testing.T) {
	if got := uiLangFromEnv("he_IL.UTF-8"); got != "he-IL" {
		t.Fatalf("unexpected tag %q", got)
	}
	if got := uiLangFromEnv("ru_RU@euro"); got != "ru-RU" {
		t.Fatalf("unexpected tag %q", got)
	}
}

func TestLetterLine(t *testing.T) {
	if got := letterLine("א", true, true); got != "✓ א  traceable" {
		t.Fatalf("unexpected line %q", got)
	}
	if got := letterLine("Q", false, false); got != "  Q  missing" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestItemLineMarksTraceable(t *testing.T) {
	tag := content.MatchLanguage("en")
	line := itemLine(content.Number{Value: 3}, tag, strokes.Default())
	if !strings.Contains(line, "[trace]") {
		t.Fatalf("expected digit to be traceable: %q", line)
	}
	line = itemLine(content.Color{Name: "red", Hex: "#E53935"}, tag, strokes.Default())
	if strings.Contains(line, "[trace]") || !strings.Contains(line, "#E53935") {
		t.Fatalf("unexpected color line: %q", line)
	}
}

func TestFileLoggerWritesToFileAndRestores(t *testing.T) {
	prev := slog.Default()
	path := filepath.Join(t.TempDir(), "logs", "tuitrace.log")
	logger, restore, err := fileLogger(path, "info")
	if err != nil {
		t.Fatalf("file logger: %v", err)
	}
	if slog.Default() != logger {
		t.Fatalf("expected file logger to be the default while the UI runs")
	}
	logger.Warn("failed to insert session", slog.String("error", "disk full"))
	slog.Debug("below level")
	restore()
	if slog.Default() != prev {
		t.Fatalf("expected previous default logger to be restored")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "failed to insert session") || !strings.Contains(out, "disk full") {
		t.Fatalf("expected warning in log file, got %q", out)
	}
	if strings.Contains(out, "below level") {
		t.Fatalf("expected debug record to be filtered, got %q", out)
	}
}

func TestFileLoggerFailsOnUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	prev := slog.Default()
	if _, _, err := fileLogger(filepath.Join(blocker, "tuitrace.log"), ""); err == nil {
		t.Fatalf("expected error when the log dir is a file")
	}
	if slog.Default() != prev {
		t.Fatalf("expected default logger to stay unchanged on failure")
	}
}
