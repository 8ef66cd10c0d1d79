package engine_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/NAVCHUK/engine"
	"github.com/Alia5/NAVCHUK/sensor"
)

// scriptReader replays a fixed sequence of samples and errors.
type scriptReader struct {
	mu    sync.Mutex
	steps []func() (sensor.Sample, error)
	reads int
}

func (r *scriptReader) Read() (sensor.Sample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.reads >= len(r.steps) {
		r.reads++
		return centered(), nil
	}
	step := r.steps[r.reads]
	r.reads++
	return step()
}

func (r *scriptReader) Reads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads
}

func sampleStep(s sensor.Sample) func() (sensor.Sample, error) {
	return func() (sensor.Sample, error) { return s, nil }
}

func errStep(err error) func() (sensor.Sample, error) {
	return func() (sensor.Sample, error) { return sensor.Sample{}, err }
}

func centered() sensor.Sample {
	return sensor.Sample{JoyX: 127, JoyY: 127, AccelX: 512, AccelY: 512, AccelZ: 512}
}

// captureSink records every emitted batch.
type captureSink struct {
	mu      sync.Mutex
	batches [][]engine.Action
	err     error
}

func (s *captureSink) Emit(actions []engine.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.batches = append(s.batches, actions)
	return nil
}

func (s *captureSink) Batches() [][]engine.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]engine.Action(nil), s.batches...)
}

func testTuning() engine.Tuning {
	return engine.Tuning{
		PollInterval:     10 * time.Millisecond,
		TapThreshold:     300 * time.Millisecond,
		Deadzone:         0.2,
		DragSensitivity:  15,
		OrbitSensitivity: 12,
		ZoomSteps:        3,
		PanSteps:         3,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTickEmitsResolvedActions(t *testing.T) {
	deflected := centered()
	deflected.JoyX = 255

	reader := &scriptReader{steps: []func() (sensor.Sample, error){sampleStep(deflected)}}
	sink := &captureSink{}
	e := engine.New(reader, sink, testTuning(), discardLogger())

	require.NoError(t, e.Tick(time.Now()))

	batches := sink.Batches()
	require.Len(t, batches, 1)
	require.Len(t, batches[0], 1)
	assert.Equal(t, engine.PanStep{Steps: 3}, batches[0][0])
}

func TestTickSkipsOnFetchErrorAndKeepsButtonState(t *testing.T) {
	pressed := centered()
	pressed.ButtonZ = true

	reader := &scriptReader{steps: []func() (sensor.Sample, error){
		sampleStep(pressed),
		errStep(fmt.Errorf("%w: bus glitch", sensor.ErrFetch)),
		sampleStep(centered()),
	}}
	sink := &captureSink{}
	e := engine.New(reader, sink, testTuning(), discardLogger())

	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, e.Tick(t0))
	require.NoError(t, e.Tick(t0.Add(10*time.Millisecond)))
	assert.Empty(t, sink.Batches(), "a failed fetch must not emit")
	assert.EqualValues(t, 1, e.FetchErrors())

	// The release on the third tick still completes the tap, proving the
	// press state survived the failed tick.
	require.NoError(t, e.Tick(t0.Add(20*time.Millisecond)))
	batches := sink.Batches()
	require.Len(t, batches, 1)
	assert.Contains(t, batches[0], engine.KeyPress{Code: engine.DropKey})
	assert.Contains(t, batches[0], engine.KeyRelease{Code: engine.DropKey})
}

func TestTickFailsOnNonTransientReadError(t *testing.T) {
	reader := &scriptReader{steps: []func() (sensor.Sample, error){
		errStep(errors.New("device vanished")),
	}}
	e := engine.New(reader, &captureSink{}, testTuning(), discardLogger())

	err := e.Tick(time.Now())
	require.Error(t, err)
}

func TestTickPropagatesEmitError(t *testing.T) {
	deflected := centered()
	deflected.JoyY = 255

	reader := &scriptReader{steps: []func() (sensor.Sample, error){sampleStep(deflected)}}
	sink := &captureSink{err: errors.New("endpoint closed")}
	e := engine.New(reader, sink, testTuning(), discardLogger())

	err := e.Tick(time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "emit actions")
}

func TestTickEmitsNothingWhenIdle(t *testing.T) {
	reader := &scriptReader{}
	sink := &captureSink{}
	e := engine.New(reader, sink, testTuning(), discardLogger())

	for i := 0; i < 5; i++ {
		require.NoError(t, e.Tick(time.Now()))
	}
	assert.Empty(t, sink.Batches())
}

func TestRunStopsOnContextCancel(t *testing.T) {
	mock := clock.NewMock()
	reader := &scriptReader{}
	sink := &captureSink{}
	e := engine.New(reader, sink, testTuning(), discardLogger(), engine.WithClock(mock))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	// Let the loop reach its select before driving the mock ticker.
	time.Sleep(20 * time.Millisecond)
	mock.Add(30 * time.Millisecond)

	assert.Eventually(t, func() bool { return reader.Reads() >= 1 },
		time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("engine did not stop on cancel")
	}
}
