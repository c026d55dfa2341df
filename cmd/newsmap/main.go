package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"newsmap/pkg/aggregator"
	"newsmap/pkg/classify"
	"newsmap/pkg/config"
	"newsmap/pkg/feed"
	"newsmap/pkg/translate"
	"newsmap/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" description:"config file (built-in defaults when omitted)"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address override"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
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

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, cfg.Translate.OpenAI.APIKey)

	log.Printf("[INFO] starting newsmap version %s, %d sources, %d cities",
		revision, len(cfg.Sources), len(cfg.Cities))

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	srv := server.New(cfg, makeAggregator(cfg), revision, opts.Debug)

	err = srv.Run(ctx)
	cancel()

	if err != nil {
		log.Printf("[ERROR] server failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// loadConfig reads the config file or falls back to built-in defaults
func loadConfig(opts Opts) (*config.Config, error) {
	if opts.Config == "" {
		cfg := config.Default()
		if opts.Listen != "" {
			cfg.Server.Listen = opts.Listen
		}
		return cfg, nil
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", opts.Config, err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	return cfg, nil
}

// makeAggregator wires the pipeline from the configuration
func makeAggregator(cfg *config.Config) *aggregator.Aggregator {
	parser := feed.NewParser(cfg.Fetch.Timeout, cfg.Fetch.UserAgent, cfg.Fetch.ItemsPerFeed)
	classifier := classify.New(cfg.Cities, classify.DefaultRules(), classify.DefaultKeywords())

	var translator translate.Translator = translate.NewGoogle(cfg.Translate.Timeout)
	if cfg.Translate.OpenAI.Enabled {
		translator = &translate.Fallback{
			Primary:   translator,
			Secondary: translate.NewOpenAI(cfg.Translate.OpenAI.APIKey, cfg.Translate.OpenAI.Model, cfg.Translate.OpenAI.Timeout),
		}
	}

	return aggregator.New(aggregator.Params{
		Sources:       cfg.Sources,
		Fetcher:       parser,
		Classifier:    classifier,
		Translator:    translate.NewCache(translator, cfg.Translate.CacheTTL),
		Limit:         cfg.Aggregate.Limit,
		MaxConcurrent: cfg.Aggregate.MaxConcurrent,
	})
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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

	secrets := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
