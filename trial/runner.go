package trial

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/randmst/builder"
	"github.com/katalvlaran/randmst/prim_kruskal"
	"github.com/katalvlaran/randmst/rng"
)

// Run executes the sweep described by cfg and returns its Report.
//
// Steps:
//  1. Validate cfg (nothing runs on an invalid configuration).
//  2. For each size in order, run Repetitions trials on at most TrialWorkers
//     goroutines. Trial (n, rep) draws from rng.Derive(Seed, rng.Stream(n, rep)),
//     so the Report does not depend on scheduling.
//  3. Summarize each size; incomplete trials are counted, not averaged.
//
// Cancelling ctx stops scheduling new trials; Run then returns ctx.Err().
func Run(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	// 1) Validate.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}
	rc := newRunConfig(opts...)

	rep := &Report{
		RunID:       uuid.NewString(),
		Model:       cfg.Model,
		Dimension:   cfg.Dimension,
		Threshold:   cfg.Threshold,
		Repetitions: cfg.Repetitions,
		Seed:        cfg.Seed,
		Sizes:       make([]SizeSummary, 0, len(cfg.Sizes)),
	}
	log := rc.logger.With(zap.String("run_id", rep.RunID), zap.Stringer("model", cfg.Model))
	log.Info("sweep started",
		zap.Ints("sizes", cfg.Sizes),
		zap.Int("repetitions", cfg.Repetitions),
		zap.Stringer("threshold", cfg.Threshold),
		zap.Int("dimension", cfg.Dimension),
		zap.Int64("seed", cfg.Seed),
		zap.Int("trial_workers", cfg.trialWorkers()),
	)

	start := rc.clock()
	r := &runner{cfg: cfg, rc: rc, log: log, builderOpts: cfg.builderOptions()}

	// 2) Sizes run in order; trials within a size run concurrently.
	for _, n := range cfg.Sizes {
		if err := ctx.Err(); err != nil {
			log.Warn("sweep cancelled", zap.Int("n", n), zap.Error(err))
			return nil, err
		}
		summary, err := r.runSize(ctx, n)
		if err != nil {
			return nil, err
		}
		rep.Sizes = append(rep.Sizes, summary)
	}
	rep.Elapsed = rc.clock().Sub(start)

	log.Info("sweep finished", zap.Duration("elapsed", rep.Elapsed))

	return rep, nil
}

type runner struct {
	cfg         Config
	rc          runConfig
	log         *zap.Logger
	builderOpts []builder.BuilderOption

	mu sync.Mutex // serializes observer calls
}

// runSize runs every repetition of size n and summarizes them.
func (r *runner) runSize(ctx context.Context, n int) (SizeSummary, error) {
	started := r.rc.clock()
	results := make([]TrialResult, r.cfg.Repetitions)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.trialWorkers())
	for rep := range r.cfg.Repetitions {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.runTrial(n, rep)
			if err != nil {
				return err
			}
			results[rep] = res
			r.finish(res)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SizeSummary{}, err
	}
	if err := ctx.Err(); err != nil {
		return SizeSummary{}, err
	}

	// 3) Summarize.
	s := Summarize(n, results)
	s.Elapsed = r.rc.clock().Sub(started)

	fields := []zap.Field{
		zap.Int("n", n),
		zap.Float64("mean", s.Mean),
		zap.Float64("stddev", s.StdDev),
		zap.Float64("mean_max_weight", s.MeanMaxWeight),
		zap.Int("incomplete", s.Incomplete),
		zap.Duration("elapsed", s.Elapsed),
	}
	if s.AllComplete {
		r.log.Info("size finished", fields...)
	} else {
		r.log.Warn("size finished with incomplete trials", fields...)
	}
	if r.rc.metrics != nil && s.Incomplete < len(results) {
		r.rc.metrics.SetSizeWeight(r.cfg.Model.String(), n, s.Mean)
	}

	return s, nil
}

// runTrial generates one graph on its own stream and solves it.
func (r *runner) runTrial(n, rep int) (TrialResult, error) {
	src := rng.Derive(r.cfg.Seed, rng.Stream(n, rep))
	opts := append([]builder.BuilderOption{builder.WithSource(src)}, r.builderOpts...)

	t0 := r.rc.clock()
	g, err := builder.Generate(n, r.cfg.Model, r.cfg.Threshold, opts...)
	if err != nil {
		return TrialResult{}, fmt.Errorf("%s: n=%d rep=%d: %w", methodRun, n, rep, err)
	}
	t1 := r.rc.clock()
	res, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return TrialResult{}, fmt.Errorf("%s: n=%d rep=%d: %w", methodRun, n, rep, err)
	}
	t2 := r.rc.clock()

	return TrialResult{
		N:            n,
		Rep:          rep,
		Result:       res,
		Retained:     g.EdgeCount(),
		Threshold:    r.cfg.Threshold.At(n),
		GenerateTime: t1.Sub(t0),
		SolveTime:    t2.Sub(t1),
	}, nil
}

// finish logs, records and observes a finished trial.
func (r *runner) finish(t TrialResult) {
	fields := []zap.Field{
		zap.Int("n", t.N),
		zap.Int("rep", t.Rep),
		zap.Int("retained", t.Retained),
		zap.Float64("weight", t.Result.TotalWeight),
		zap.Float64("max_weight", t.Result.MaxWeight),
		zap.Bool("complete", t.Result.Complete),
	}
	if t.Result.Complete {
		r.log.Debug("trial finished", fields...)
	} else {
		r.log.Warn("trial incomplete: retained edges do not span the graph",
			append(fields, zap.Int("mst_edges", t.Result.Edges))...)
	}
	if r.rc.metrics != nil {
		r.rc.metrics.RecordTrial(r.cfg.Model.String(), t.Result.Complete, t.Retained, t.GenerateTime, t.SolveTime)
	}
	if r.rc.observer != nil {
		r.mu.Lock()
		r.rc.observer(t)
		r.mu.Unlock()
	}
}
