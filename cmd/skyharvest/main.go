package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/skyharvest/pkg/analysis"
	"github.com/umputun/skyharvest/pkg/config"
	"github.com/umputun/skyharvest/pkg/domain"
	"github.com/umputun/skyharvest/pkg/harvest"
	"github.com/umputun/skyharvest/pkg/nasa"
	"github.com/umputun/skyharvest/pkg/repository"
	"github.com/umputun/skyharvest/pkg/service"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"path to configuration file"`
	DB     string `long:"db" env:"DB" description:"database file, overrides database.dsn"`
	APIKey string `long:"api-key" env:"NASA_API_KEY" description:"api key, overrides nasa.api_key"`

	APOD    struct{} `command:"apod" description:"harvest pictures of the day"`
	NEO     struct{} `command:"neo" description:"harvest near-earth objects and close approaches"`
	All     struct{} `command:"all" description:"run both pipelines, one after another"`
	Analyze struct{} `command:"analyze" description:"print weekly keyword mentions against approach counts"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	parser.SubcommandsOptional = true
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, cfg.NASA.APIKey)
	log.Printf("[DEBUG] starting skyharvest version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	command := "all"
	if parser.Active != nil {
		command = parser.Active.Name
	}

	err = run(ctx, cfg, command, os.Stdout)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %s failed: %v", command, err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the command against the store described by cfg, progress goes to out
func run(ctx context.Context, cfg *config.Config, command string, out io.Writer) error {
	fetcher := nasa.New(nasa.Config{
		APIKey:  cfg.NASA.APIKey,
		APODURL: cfg.NASA.APODURL,
		FeedURL: cfg.NASA.FeedURL,
		Timeout: cfg.NASA.Timeout,
	})

	switch command {
	case "apod":
		return runPipeline(ctx, cfg, domain.PipelineAPOD, fetcher, out)
	case "neo":
		return runPipeline(ctx, cfg, domain.PipelineNEO, fetcher, out)
	case "all":
		if err := runPipeline(ctx, cfg, domain.PipelineAPOD, fetcher, out); err != nil {
			return err
		}
		return runPipeline(ctx, cfg, domain.PipelineNEO, fetcher, out)
	case "analyze":
		return runAnalyze(ctx, cfg, out)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// runPipeline opens the store for a single pipeline invocation and closes it when done
func runPipeline(ctx context.Context, cfg *config.Config, p domain.Pipeline, fetcher harvest.Fetcher, out io.Writer) error {
	repos, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close store: %v", err)
		}
	}()

	params := harvest.Params{
		Store:    service.NewHarvestService(repos),
		Fetcher:  fetcher,
		Planner:  harvest.NewPlanner(harvest.PlannerConfig{Epoch: cfg.EpochDate(), WindowDays: cfg.Harvest.WindowDays}),
		MaxItems: cfg.Harvest.MaxItems,
		Out:      out,
	}

	harvest.Header(out, p)
	var res domain.RunResult
	switch p {
	case domain.PipelineAPOD:
		res, err = harvest.NewAPOD(params).Run(ctx)
	case domain.PipelineNEO:
		res, err = harvest.NewNEO(params).Run(ctx)
	default:
		return fmt.Errorf("unknown pipeline %q", p)
	}
	if err != nil {
		return err
	}
	harvest.Report(out, res)
	return nil
}

// runAnalyze prints keyword mentions of stored pictures against approach counts per week
func runAnalyze(ctx context.Context, cfg *config.Config, out io.Writer) error {
	repos, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	pictures, err := repos.Picture.ListPictures(ctx)
	if err != nil {
		return fmt.Errorf("load pictures: %w", err)
	}
	approaches, err := repos.Asteroid.ApproachCountsByDate(ctx)
	if err != nil {
		return fmt.Errorf("load approaches: %w", err)
	}

	analyzer := analysis.New(cfg.Harvest.Keywords)
	stats, err := analyzer.Weekly(pictures, approaches)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	if len(stats) == 0 {
		fmt.Fprintln(out, "nothing to analyze, run apod and neo first")
		return nil
	}
	return analyzer.Print(out, stats)
}

func openStore(ctx context.Context, cfg *config.Config) (*repository.Repositories, error) {
	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return repos, nil
}

// loadConfig reads config file if set, or uses defaults, and applies CLI overrides
func loadConfig(opts Opts) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}

	if opts.DB != "" {
		cfg.Database.DSN = "file:" + opts.DB + "?mode=rwc&_txlock=immediate&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}
	if opts.APIKey != "" {
		cfg.NASA.APIKey = opts.APIKey
	}
	return cfg, nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
