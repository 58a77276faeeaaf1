// Command randmst estimates the expected MST weight of pruned random graphs.
//
// Usage:
//
//	randmst -model direct -sizes 128..4096 -reps 5
//	randmst -model euclidean -dim 4 -sizes 128,256 -format yaml
//	randmst -config sweep.yaml -trial-workers 8 -metrics-addr :9090
//
// Flags given on the command line override values from -config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/randmst/builder"
	"github.com/katalvlaran/randmst/config"
	"github.com/katalvlaran/randmst/metrics"
	"github.com/katalvlaran/randmst/report"
	"github.com/katalvlaran/randmst/trial"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// maxUnprunedSize caps n when the threshold keeps every edge: an unpruned
// graph holds n(n-1)/2 edges in memory.
const maxUnprunedSize = 4096

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	configPath   string
	model        string
	dim          int
	sizes        string
	reps         int
	seed         int64
	scale        float64
	exponent     float64
	trialWorkers int
	genWorkers   int
	format       string
	verbose      bool
	dumpConfig   bool
	logLevel     string
	logFormat    string
	metricsAddr  string
}

func parseFlags(args []string, stderr io.Writer) (options, map[string]bool, error) {
	var o options
	fs := flag.NewFlagSet("randmst", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.configPath, "config", "", "YAML sweep configuration file")
	fs.StringVar(&o.model, "model", "direct", "Weight model: direct or euclidean")
	fs.IntVar(&o.dim, "dim", 4, "Coordinate dimension for the euclidean model")
	fs.StringVar(&o.sizes, "sizes", "", "Graph sizes, e.g. 128,256 or 128..262144 (powers of two)")
	fs.IntVar(&o.reps, "reps", trial.DefaultRepetitions, "Trials per size")
	fs.Int64Var(&o.seed, "seed", config.DefaultSeed, "Base random seed (0 means 1)")
	fs.Float64Var(&o.scale, "scale", 0, "Pruning threshold scale (default: model preset)")
	fs.Float64Var(&o.exponent, "exponent", 0, "Pruning threshold exponent (default: model preset)")
	fs.IntVar(&o.trialWorkers, "trial-workers", 1, "Concurrent trials")
	fs.IntVar(&o.genWorkers, "gen-workers", 1, "Goroutines per euclidean graph generation")
	fs.StringVar(&o.format, "format", "table", "Output format: table, yaml or json")
	fs.BoolVar(&o.verbose, "verbose", false, "Include per-trial rows in table output")
	fs.BoolVar(&o.dumpConfig, "dump-config", false, "Print the resolved configuration as YAML and exit")
	fs.StringVar(&o.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&o.logFormat, "log-format", "console", "Log format: console or json")
	fs.StringVar(&o.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running")

	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}
	if fs.NArg() > 0 {
		return o, nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	return o, set, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, set, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "randmst:", err)
		return exitUsage
	}

	logger, err := newLogger(o.logLevel, o.logFormat, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "randmst:", err)
		return exitUsage
	}
	defer func() { _ = logger.Sync() }()

	file, err := resolveConfig(o, set)
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return exitUsage
	}
	if o.dumpConfig {
		if err := file.Encode(stdout); err != nil {
			logger.Error("encode configuration", zap.Error(err))
			return exitError
		}
		return exitOK
	}
	cfg, err := file.TrialConfig()
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return exitUsage
	}
	format, err := report.ParseFormat(o.format)
	if err != nil {
		logger.Error("invalid output format", zap.Error(err))
		return exitUsage
	}

	reg := newMetricsRegistry()
	if o.metricsAddr != "" {
		shutdown, err := serveMetrics(o.metricsAddr, reg, logger)
		if err != nil {
			logger.Error("metrics listener", zap.Error(err))
			return exitError
		}
		defer shutdown()
	}

	rep, err := trial.Run(ctx, cfg, trial.WithLogger(logger), trial.WithMetrics(reg))
	if err != nil {
		logger.Error("sweep failed", zap.Error(err))
		return exitError
	}

	if format == report.FormatTable {
		err = report.WriteTable(stdout, rep, o.verbose)
	} else {
		err = report.Encode(stdout, rep, format)
	}
	if err != nil {
		logger.Error("write report", zap.Error(err))
		return exitError
	}

	return exitOK
}

// resolveConfig starts from -config (or the model's defaults) and applies
// every flag given explicitly.
func resolveConfig(o options, set map[string]bool) (config.File, error) {
	var file config.File
	if o.configPath != "" {
		f, err := config.Load(o.configPath)
		if err != nil {
			return config.File{}, err
		}
		file = f
	} else {
		m, err := builder.ParseModel(o.model)
		if err != nil {
			return config.File{}, err
		}
		file = config.Default(m)
		// Presets follow the final model and dimension.
		file.Threshold = nil
		if m == builder.CoordinateDistance {
			file.Dimension = o.dim
		}
	}

	if set["model"] && o.configPath != "" {
		m, err := builder.ParseModel(o.model)
		if err != nil {
			return config.File{}, err
		}
		file.Model = m
	}
	if set["dim"] {
		file.Dimension = o.dim
	}
	if set["sizes"] {
		sizes, err := config.ParseSizes(o.sizes)
		if err != nil {
			return config.File{}, err
		}
		file.Sizes = sizes
	}
	if set["reps"] {
		if o.reps < 1 {
			return config.File{}, fmt.Errorf("-reps=%d: must be at least 1: %w", o.reps, config.ErrInvalidConfig)
		}
		reps := o.reps
		file.Repetitions = &reps
	}
	if set["seed"] {
		file.Seed = o.seed
	}
	if set["scale"] || set["exponent"] {
		th := file.ResolvedThreshold()
		if set["scale"] {
			th.Scale = o.scale
		}
		if set["exponent"] {
			th.Exponent = o.exponent
		}
		file.Threshold = &th
	}
	if set["trial-workers"] {
		file.TrialWorkers = o.trialWorkers
	}
	if set["gen-workers"] {
		file.GenWorkers = o.genWorkers
	}
	if err := file.Validate(); err != nil {
		return config.File{}, err
	}
	if err := checkUnpruned(file); err != nil {
		return config.File{}, err
	}

	return file, nil
}

// checkUnpruned refuses sizes above maxUnprunedSize when no pruning applies,
// e.g. a euclidean dimension without a preset and no -scale.
func checkUnpruned(file config.File) error {
	th := file.ResolvedThreshold()
	if !math.IsInf(th.Scale, 1) {
		return nil
	}
	for _, n := range file.Sizes {
		if n > maxUnprunedSize {
			return fmt.Errorf("size %d with no pruning (model %s, dimension %d) exceeds %d; pass -scale/-exponent or smaller -sizes: %w",
				n, file.Model, file.Dimension, maxUnprunedSize, config.ErrInvalidConfig)
		}
	}

	return nil
}

// newLogger builds a zap logger writing to w.
func newLogger(level, format string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var encCfg zapcore.EncoderConfig
	var enc zapcore.Encoder
	switch format {
	case "json":
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	case "console":
		encCfg = zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("log format %q: want console or json", format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))

	return zap.New(core), nil
}

// newMetricsRegistry returns the sweep metrics plus Go runtime and process
// collectors for the /metrics endpoint.
func newMetricsRegistry() *metrics.Registry {
	reg := metrics.NewRegistry()
	reg.GetPrometheusRegistry().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// serveMetrics starts a /metrics listener and returns its shutdown func.
func serveMetrics(addr string, reg *metrics.Registry, logger *zap.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", reg.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", zap.Error(err))
		}
	}()
	logger.Info("serving metrics", zap.String("addr", ln.Addr().String()))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
