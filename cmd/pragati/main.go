package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dm/pragati/internal/config"
	"github.com/dm/pragati/internal/engine"
	"github.com/dm/pragati/internal/logging"
	"github.com/dm/pragati/internal/model"
	"github.com/dm/pragati/internal/tui"
)

// options holds the parsed command line. Zero values mean "not given";
// set tracks which flags were passed explicitly.
type options struct {
	configPath string
	headless   bool
	duration   time.Duration
	tick       time.Duration
	reveal     time.Duration
	seed       int64
	logFile    string
	logLevel   string
	logFormat  string
	set        map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("pragati", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.BoolVar(&opts.headless, "headless", false, "run one analysis without the UI and print the report as JSON")
	fs.DurationVar(&opts.duration, "duration", 0, "analysis duration (default 13.5s)")
	fs.DurationVar(&opts.tick, "tick", 0, "progress tick interval (default 50ms)")
	fs.DurationVar(&opts.reveal, "reveal", 0, "delay between 100% and the report (default 700ms)")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed for the mock vitals (0 = random)")
	fs.StringVar(&opts.logFile, "log-file", "", "write logs to this file (default: logging off)")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&opts.logFormat, "log-format", "", "log format: json or console")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: pragati [flags]\n\n")
		fmt.Fprintf(stderr, "examples:\n")
		fmt.Fprintf(stderr, "  pragati\n")
		fmt.Fprintf(stderr, "  pragati --config pragati.yaml --log-file /tmp/pragati.log\n")
		fmt.Fprintf(stderr, "  pragati --headless --duration 2s --seed 42\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// resolveConfig loads the config file and applies explicit flags on top.
func resolveConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.set["duration"] {
		cfg.Analysis.Duration = opts.duration.String()
	}
	if opts.set["tick"] {
		cfg.Analysis.TickInterval = opts.tick.String()
	}
	if opts.set["reveal"] {
		cfg.Analysis.RevealDelay = opts.reveal.String()
	}
	if opts.set["seed"] {
		cfg.Seed = opts.seed
	}
	if opts.set["log-file"] {
		cfg.Log.File = opts.logFile
	}
	if opts.set["log-level"] {
		cfg.Log.Level = opts.logLevel
	}
	if opts.set["log-format"] {
		cfg.Log.Format = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	timing, err := cfg.Timing()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	gen, err := engine.NewGenerator(engine.NewRand(cfg.Seed), model.Baselines)
	if err != nil {
		return err
	}
	d := engine.NewDriver(timing, gen, engine.WithLogger(log))
	log.Info("starting",
		zap.Bool("headless", opts.headless),
		zap.Duration("duration", timing.Duration),
		zap.Duration("tick_interval", timing.TickInterval),
		zap.Int64("seed", cfg.Seed),
	)

	if opts.headless {
		return runHeadless(ctx, d, stdout, stderr)
	}

	app := tui.NewApp(d, engine.NewRand(0), log)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	d.Stop()
	return nil
}

// runHeadless drives one analysis on the engine's own timers. Progress goes
// to progressOut at most once per whole percent; the report is written to
// out as indented JSON.
func runHeadless(ctx context.Context, d *engine.Driver, out, progressOut io.Writer) error {
	updates := make(chan int)
	g, gctx := errgroup.WithContext(ctx)

	var rep *model.Report
	g.Go(func() error {
		defer close(updates)
		last := -1
		r, err := d.Run(gctx, func(run engine.Run) {
			pct := int(run.Progress)
			if pct == last {
				return
			}
			last = pct
			select {
			case updates <- pct:
			case <-gctx.Done():
			}
		})
		rep = r
		return err
	})
	g.Go(func() error {
		for pct := range updates {
			if _, err := fmt.Fprintf(progressOut, "analyzing... %3d%%\n", pct); err != nil {
				return err
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
