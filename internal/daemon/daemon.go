// Package daemon runs pageforge as a long-lived process: it watches a page
// configuration file, regenerates artifacts on change (debounced), optionally
// regenerates on a fixed interval, serves the output directory for preview
// and publishes generation events to NATS when configured.
package daemon

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/pageforge/pageforge/internal/components"
	"github.com/pageforge/pageforge/internal/config"
	pferrors "github.com/pageforge/pageforge/internal/errors"
	"github.com/pageforge/pageforge/internal/generator"
	"github.com/pageforge/pageforge/internal/history"
	"github.com/pageforge/pageforge/internal/library"
	"github.com/pageforge/pageforge/internal/logfields"
	"github.com/pageforge/pageforge/internal/metrics"
	"github.com/pageforge/pageforge/internal/templates"
)

// Options configures a daemon instance.
type Options struct {
	ConfigPath    string
	OutputDir     string
	ComponentsDir string        // extra component definitions, empty skips loading
	Interval      time.Duration // 0 disables scheduled regeneration
	Debounce      time.Duration // file-change debounce, defaults to 2s
	PreviewAddr   string        // listen address, empty disables the preview server
	NATSURL       string        // empty disables event publishing
	HistoryPath   string        // SQLite file, empty disables the history store
}

// Daemon regenerates a page whenever its configuration changes.
type Daemon struct {
	opts      Options
	gen       *generator.Generator
	registry  *prometheus.Registry
	publisher *EventPublisher
	store     history.Store
	status    *runStatus

	genMu sync.Mutex // one regeneration at a time
}

// New wires a daemon from options. The NATS connection and history store are
// opened eagerly so misconfiguration fails before the watch loop starts.
func New(opts Options) (*Daemon, error) {
	if opts.ConfigPath == "" {
		return nil, errors.New("daemon requires a configuration path")
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "dist"
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 2 * time.Second
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var engine *templates.Engine
	if opts.ComponentsDir != "" {
		defs, err := library.LoadDir(opts.ComponentsDir)
		if err != nil {
			return nil, err
		}
		lib := components.NewStandardLibrary()
		library.RegisterAll(lib, defs)
		engine = templates.NewEngine(lib)
	}

	d := &Daemon{
		opts:     opts,
		gen:      generator.New(engine).SetRecorder(metrics.NewPrometheusRecorder(registry)),
		registry: registry,
		status:   &runStatus{},
	}

	if opts.NATSURL != "" {
		pub, err := NewEventPublisher(opts.NATSURL)
		if err != nil {
			return nil, err
		}
		d.publisher = pub
	}

	if opts.HistoryPath != "" {
		store, err := history.NewSQLiteStore(opts.HistoryPath)
		if err != nil {
			return nil, err
		}
		d.store = store
	}

	return d, nil
}

// Run blocks until ctx is cancelled. It performs an initial generation, then
// starts the watcher, the optional schedule and the optional preview server.
func (d *Daemon) Run(ctx context.Context) error {
	slog.Info("Starting daemon",
		logfields.Path(d.opts.ConfigPath),
		slog.String("output", d.opts.OutputDir))

	// Initial generation. Failures are recorded but do not abort the daemon;
	// the watcher picks up the next configuration fix.
	if err := d.regenerate(ctx); err != nil {
		slog.Error("Initial generation failed", logfields.Error(err))
	}

	watcher, err := NewConfigWatcher(d.opts.ConfigPath, d.opts.Debounce, d.regenerate)
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}

	var scheduler *Scheduler
	if d.opts.Interval > 0 {
		scheduler, err = NewScheduler()
		if err != nil {
			return err
		}
		if _, err := scheduler.ScheduleRegeneration(d.opts.Interval, func() {
			if err := d.regenerate(ctx); err != nil {
				slog.Error("Scheduled generation failed", logfields.Error(err))
			}
		}); err != nil {
			return err
		}
		scheduler.Start()
	}

	var preview *PreviewServer
	if d.opts.PreviewAddr != "" {
		preview = NewPreviewServer(d.opts.PreviewAddr, d.opts.OutputDir, d.status, d.registry)
		if err := preview.Start(); err != nil {
			return err
		}
	}

	<-ctx.Done()
	slog.Info("Shutting down daemon")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	watcher.Stop()
	if scheduler != nil {
		if err := scheduler.Stop(); err != nil {
			slog.Warn("Scheduler shutdown error", logfields.Error(err))
		}
	}
	if preview != nil {
		if err := preview.Stop(shutdownCtx); err != nil {
			slog.Warn("Preview server shutdown error", logfields.Error(err))
		}
	}
	if d.publisher != nil {
		if err := d.publisher.Close(); err != nil {
			slog.Warn("Event publisher close error", logfields.Error(err))
		}
	}
	if d.store != nil {
		if err := d.store.Close(); err != nil {
			slog.Warn("History store close error", logfields.Error(err))
		}
	}
	return nil
}

// regenerate loads the configuration, generates and persists the artifacts,
// then records the run in history and publishes an event.
func (d *Daemon) regenerate(ctx context.Context) error {
	d.genMu.Lock()
	defer d.genMu.Unlock()

	cfg, err := config.Load(d.opts.ConfigPath)
	if err != nil {
		d.status.setError(err)
		return err
	}

	out, genErr := d.gen.Generate(cfg)
	if genErr != nil {
		d.status.setError(genErr)
		d.recordRun(ctx, cfg, nil, genErr)
		return genErr
	}

	if _, err := generator.WriteOutput(out, d.opts.OutputDir); err != nil {
		d.status.setError(err)
		d.recordRun(ctx, cfg, out, err)
		return err
	}

	d.status.setSuccess()
	d.recordRun(ctx, cfg, out, nil)
	slog.Info("Artifacts regenerated",
		logfields.Page(cfg.PageSettings.Name),
		slog.String("output", d.opts.OutputDir))
	return nil
}

// recordRun appends a history record and publishes a generation event. Both
// sinks are optional and best effort.
func (d *Daemon) recordRun(ctx context.Context, cfg *config.PageConfiguration, out *generator.Output, runErr error) {
	rec := history.FromOutput(out, "")
	rec.PageType = string(cfg.PageSettings.Type)
	if rec.PageName == "" {
		rec.PageName = cfg.PageSettings.Name
	}
	switch {
	case runErr == nil:
		rec.Outcome = history.OutcomeSuccess
	case pferrors.IsValidationError(runErr):
		rec.Outcome = history.OutcomeInvalid
	default:
		rec.Outcome = history.OutcomeFailed
	}

	if d.store != nil {
		if err := d.store.Append(ctx, rec); err != nil {
			slog.Warn("Failed to append history record", logfields.Error(err))
		}
	}
	if d.publisher != nil {
		event := GenerationEvent{
			PageName:  rec.PageName,
			PageType:  rec.PageType,
			Framework: rec.Framework,
			Outcome:   rec.Outcome,
			TotalSize: rec.TotalSize,
			Score:     rec.Score,
		}
		if err := d.publisher.PublishGeneration(event); err != nil {
			slog.Warn("Failed to publish generation event", logfields.Error(err))
		}
	}
}

// runStatus tracks the most recent generation outcome for health reporting.
type runStatus struct {
	mu      sync.RWMutex
	lastErr error
	lastRun time.Time
	runs    int
	hasGood bool
}

func (rs *runStatus) setError(err error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.lastErr = err
	rs.lastRun = time.Now()
	rs.runs++
}

func (rs *runStatus) setSuccess() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.lastErr = nil
	rs.lastRun = time.Now()
	rs.runs++
	rs.hasGood = true
}

func (rs *runStatus) snapshot() (lastErr error, lastRun time.Time, runs int, hasGood bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.lastErr, rs.lastRun, rs.runs, rs.hasGood
}
