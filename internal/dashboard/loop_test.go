package dashboard

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CtrlAltSam/NecoMind/internal/errors"
	"github.com/CtrlAltSam/NecoMind/internal/terminal"
)

func newTestLoop(in Input, r Renderer, src *fakeSource, clock *stepClock) *Loop {
	return NewLoop(LoopConfig{
		Input:    in,
		Renderer: r,
		Source:   src,
		Now:      clock.Now,
		Stats:    "OS: test",
	})
}

func TestLoop_QuitKeyReturnsNil(t *testing.T) {
	src := &fakeSource{}
	r := &recordingRenderer{}
	in := &scriptedInput{events: []pollResult{key(KeyQuit)}}

	err := newTestLoop(in, r, src, newClock(time.Millisecond)).Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, r.frames, "quit should win before any refresh or render")
	assert.Zero(t, src.cpuRefreshes)
}

func TestLoop_QuitIgnoresRefreshState(t *testing.T) {
	src := &fakeSource{}
	r := &recordingRenderer{}

	// 5s per iteration means every iteration is due for a refresh.
	err := newTestLoop(quitAfter(3), r, src, newClock(5*time.Second)).Run(context.Background())

	require.NoError(t, err)
	assert.Len(t, r.frames, 3)
	assert.Equal(t, 3, src.cpuRefreshes)
}

func TestLoop_OtherEventsAreInert(t *testing.T) {
	src := &fakeSource{}
	r := &recordingRenderer{}
	in := &scriptedInput{events: []pollResult{
		key('Q'),
		key(0x03),
		{ev: terminal.Event{Kind: terminal.EventMouse}, ok: true},
		{ev: terminal.Event{Kind: terminal.EventUnknown}, ok: true},
		key(KeyQuit),
	}}

	err := newTestLoop(in, r, src, newClock(time.Millisecond)).Run(context.Background())

	require.NoError(t, err)
	assert.Len(t, r.frames, 4)
}

func TestLoop_RefreshCadence(t *testing.T) {
	src := &fakeSource{cpu: []float64{10, 20, 30, 40}}
	r := &recordingRenderer{}

	// 250ms per iteration: refreshes land on iterations 0, 4 and 8.
	err := newTestLoop(quitAfter(10), r, src, newClock(250*time.Millisecond)).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, src.cpuRefreshes)
	assert.Equal(t, 3, src.memRefreshes)
	require.Len(t, r.frames, 10)

	var cpu []int
	for _, f := range r.frames {
		cpu = append(cpu, f.CPU)
	}
	assert.Equal(t, []int{10, 10, 10, 10, 20, 20, 20, 20, 30, 30}, cpu)
}

func TestLoop_RedrawsBetweenRefreshes(t *testing.T) {
	src := &fakeSource{cpu: []float64{12}}
	r := &recordingRenderer{}

	err := newTestLoop(quitAfter(5), r, src, newClock(10*time.Millisecond)).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, src.cpuRefreshes)
	assert.Len(t, r.frames, 5)
	for _, f := range r.frames {
		assert.Equal(t, "OS: test", f.Stats)
	}
}

func TestLoop_RefreshErrorKeepsPreviousSnapshot(t *testing.T) {
	src := &fakeSource{cpu: []float64{42}, memUsed: 4, memTotal: 8}
	r := &recordingRenderer{}
	l := newTestLoop(&scriptedInput{}, r, src, newClock(2*time.Second))

	done, err := l.Step(context.Background())
	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, 42, l.Usage().CPUGauge())
	assert.Equal(t, 50, l.Usage().MemoryPercent())

	src.cpuErr = stderrors.New("cpu: permission denied")
	src.memErr = stderrors.New("meminfo: no such file")
	src.current = 99
	src.memUsed = 8

	done, err = l.Step(context.Background())
	require.NoError(t, err, "refresh failures are never fatal")
	require.False(t, done)

	assert.Equal(t, 42, l.Usage().CPUGauge())
	assert.Equal(t, 50, l.Usage().MemoryPercent())
	assert.Equal(t, 2, src.cpuRefreshes)
	require.Len(t, r.frames, 2)
	assert.Equal(t, r.frames[0], r.frames[1])
}

func TestLoop_RenderErrorIsFatal(t *testing.T) {
	renderErr := errors.New(errors.ErrRender, "broken pipe", "")
	r := &recordingRenderer{err: renderErr}
	in := &scriptedInput{}

	err := newTestLoop(in, r, &fakeSource{}, newClock(time.Millisecond)).Run(context.Background())

	require.ErrorIs(t, err, renderErr)
	assert.Len(t, r.frames, 1, "no retry after a failed render")
	assert.Equal(t, 1, in.polls)
}

func TestLoop_PollErrorIsFatal(t *testing.T) {
	pollErr := errors.New(errors.ErrInput, "stdin closed", "")
	r := &recordingRenderer{}
	in := &scriptedInput{events: []pollResult{{err: pollErr}}}

	err := newTestLoop(in, r, &fakeSource{}, newClock(time.Millisecond)).Run(context.Background())

	require.ErrorIs(t, err, pollErr)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
	assert.Empty(t, r.frames)
}

func TestLoop_CancelledContextReturnsNil(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &recordingRenderer{}

	err := newTestLoop(&scriptedInput{}, r, &fakeSource{}, newClock(time.Millisecond)).Run(ctx)

	require.NoError(t, err)
	assert.Empty(t, r.frames)
}

func TestLoop_Defaults(t *testing.T) {
	l := NewLoop(LoopConfig{Input: &scriptedInput{}, Renderer: &recordingRenderer{}, Source: &fakeSource{}})

	assert.Equal(t, DefaultTickInterval, l.opts.TickInterval)
	assert.Equal(t, DefaultPollTimeout, l.opts.PollTimeout)
	assert.NotNil(t, l.logger)
	assert.NotNil(t, l.now)
}
