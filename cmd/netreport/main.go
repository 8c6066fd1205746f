// Command netreport loads the 4G and 5G per-cell KPI spreadsheets,
// normalizes and merges them, and renders the multi-page PDF report.
package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tblacerda/dayafter/internal/config"
	"github.com/tblacerda/dayafter/internal/kpi"
	"github.com/tblacerda/dayafter/internal/report"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	outPath := flag.String("out", "", "output PDF path (overrides config)")
	groupsFlag := flag.String("groups", "", "comma-separated group list (default: every group found)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg.Logging)

	if *outPath != "" {
		cfg.Output.PDF = *outPath
	}
	if *groupsFlag != "" {
		cfg.Report.Groups = nil
		for _, g := range strings.Split(*groupsFlag, ",") {
			if g = strings.TrimSpace(g); g != "" {
				cfg.Report.Groups = append(cfg.Report.Groups, strings.ToUpper(g))
			}
		}
	}

	runID := uuid.NewString()[:8]
	start := time.Now()
	logger := slog.Default().With("run_id", runID)

	logger.Info("loading input data",
		"dir_4g", cfg.Input.Dir4G,
		"dir_5g", cfg.Input.Dir5G,
	)

	rows4G, err := kpi.LoadTechData(cfg.Input.Dir4G, config.Spec4G(), logger)
	if err != nil {
		logger.Error("Failed to load 4G data", "error", err)
		os.Exit(1)
	}
	rows5G, err := kpi.LoadTechData(cfg.Input.Dir5G, config.Spec5G(), logger)
	if err != nil {
		logger.Error("Failed to load 5G data", "error", err)
		os.Exit(1)
	}

	// Debug artifact: the normalized 4G table, written before the merge.
	if cfg.Output.Intermediate != "" {
		if err := kpi.WriteWorkbook(rows4G, cfg.Output.Intermediate); err != nil {
			logger.Error("Failed to write intermediate workbook", "error", err)
			os.Exit(1)
		}
		logger.Info("wrote intermediate workbook", "path", cfg.Output.Intermediate)
	}

	merged := kpi.Merge(rows4G, rows5G)
	working := kpi.DropIncomplete(merged)
	logger.Info("merged dataset ready",
		"merged_rows", len(merged),
		"working_rows", len(working),
		"groups", len(kpi.Groups(working)),
	)

	composer := report.NewComposer(report.DefaultStyle(), logger)
	pages, err := composer.Generate(working, cfg.Report.Groups, cfg.Output.PDF, runID)
	if err != nil {
		logger.Error("Failed to generate report", "error", err)
		os.Exit(1)
	}

	logger.Info("report generated",
		"path", cfg.Output.PDF,
		"pages", pages,
		"duration", time.Since(start).Round(time.Millisecond),
	)
}

func setupLogging(cfg config.LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
