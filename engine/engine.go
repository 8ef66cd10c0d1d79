// Package engine implements the input-to-action mapping core: it polls the
// sensor once per tick, classifies button transitions, normalizes axis
// deflections and resolves both into a rate-limited stream of HID actions.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/Alia5/NAVCHUK/sensor"
)

// Sink consumes the resolved actions of one tick. Actions for tick N are
// fully emitted before tick N+1's sensor fetch begins.
type Sink interface {
	Emit(actions []Action) error
}

// Engine owns the read → map → resolve → emit pipeline. All mutable state
// lives on the single goroutine running the loop.
type Engine struct {
	reader   sensor.Reader
	sink     Sink
	tracker  *Tracker
	mapper   Mapper
	resolver *Resolver
	tuning   Tuning
	clock    clock.Clock
	logger   *slog.Logger

	fetchErrs uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// New returns an Engine polling reader and emitting to sink with the given
// tuning.
func New(reader sensor.Reader, sink Sink, tuning Tuning, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		reader:   reader,
		sink:     sink,
		tracker:  NewTracker(tuning.TapThreshold),
		mapper:   NewMapper(tuning.Deadzone),
		resolver: NewResolver(tuning),
		tuning:   tuning,
		clock:    clock.New(),
		logger:   logger,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Mode reports the navigation mode selected by the most recent tick.
func (e *Engine) Mode() Mode {
	return e.resolver.Mode()
}

// FetchErrors reports how many ticks were skipped due to sensor errors.
func (e *Engine) FetchErrors() uint64 {
	return e.fetchErrs
}

// Run executes the polling loop until ctx is cancelled. A sensor fetch
// error skips the tick and keeps all button state; an emit error stops the
// loop and is returned, since the engine never retries an emission.
func (e *Engine) Run(ctx context.Context) error {
	ticker := e.clock.Ticker(e.tuning.PollInterval)
	defer ticker.Stop()

	e.logger.Info("engine started",
		"interval", e.tuning.PollInterval,
		"deadzone", e.tuning.Deadzone,
		"tapThreshold", e.tuning.TapThreshold)

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("engine stopped", "fetchErrors", e.fetchErrs)
			return nil
		case now := <-ticker.C:
			if err := e.Tick(now); err != nil {
				return err
			}
		}
	}
}

// Tick runs a single fetch → map → resolve → emit cycle at the given time.
// Exported so the loop body is testable without a real ticker.
func (e *Engine) Tick(now time.Time) error {
	sample, err := e.reader.Read()
	if err != nil {
		e.fetchErrs++
		if errors.Is(err, sensor.ErrFetch) {
			e.logger.Debug("sensor fetch failed, skipping tick", "error", err)
			return nil
		}
		return fmt.Errorf("read sensor: %w", err)
	}

	mods := e.tracker.Update(sample.ButtonC, sample.ButtonZ, now)
	intent := e.mapper.Map(sample)
	actions := e.resolver.Resolve(intent, mods)
	if len(actions) == 0 {
		return nil
	}

	if err := e.sink.Emit(actions); err != nil {
		return fmt.Errorf("emit actions: %w", err)
	}
	return nil
}
