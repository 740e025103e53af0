package initializer

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/brioches/storefront/pkg/config"
)

func setupLogger(cfg *config.Log) *slog.Logger {
	styles := log.DefaultStyles()

	levelColors := map[log.Level]struct {
		badge string
		color string
	}{
		log.DebugLevel: {"🐛", "#7E57C2"},
		log.InfoLevel:  {"ℹ️", "#04B575"},
		log.WarnLevel:  {"⚠️", "#EE6FF8"},
		log.ErrorLevel: {"❌", "#FF6B6B"},
	}
	for level, lc := range levelColors {
		color := lipgloss.AdaptiveColor{Light: lc.color, Dark: lc.color}
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(lc.badge).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
	}

	accent := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}
	for _, key := range []string{"error", "prefix", "caller", "time", "source", "endpoint"} {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(accent)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formatter := log.TextFormatter
	if cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}
