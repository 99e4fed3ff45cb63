package dashboard

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/CtrlAltSam/NecoMind/internal/terminal"
)

// fakeTerminal records lifecycle calls in order.
type fakeTerminal struct {
	enterErr error
	leaveErr error
	cols     int
	rows     int
	calls    []string
}

func (t *fakeTerminal) Enter() error {
	t.calls = append(t.calls, "enter")
	return t.enterErr
}

func (t *fakeTerminal) Leave() error {
	t.calls = append(t.calls, "leave")
	return t.leaveErr
}

func (t *fakeTerminal) Size() (int, int, error) {
	return t.cols, t.rows, nil
}

// scriptedInput replays a fixed sequence of poll results, then reports no
// input forever.
type scriptedInput struct {
	events []pollResult
	polls  int
}

type pollResult struct {
	ev  terminal.Event
	ok  bool
	err error
}

func (in *scriptedInput) Poll(time.Duration) (terminal.Event, bool, error) {
	in.polls++
	if len(in.events) == 0 {
		return terminal.Event{}, false, nil
	}
	next := in.events[0]
	in.events = in.events[1:]
	return next.ev, next.ok, next.err
}

func key(r rune) pollResult {
	return pollResult{ev: terminal.Event{Kind: terminal.EventKey, Rune: r}, ok: true}
}

func idle(n int) []pollResult {
	return make([]pollResult, n)
}

// quitAfter returns an input that idles for n polls and then presses q.
func quitAfter(n int) *scriptedInput {
	return &scriptedInput{events: append(idle(n), key(KeyQuit))}
}

type recordingRenderer struct {
	frames []Frame
	err    error
	onTerm *fakeTerminal
}

func (r *recordingRenderer) Render(f Frame) error {
	r.frames = append(r.frames, f)
	if r.onTerm != nil {
		r.onTerm.calls = append(r.onTerm.calls, "render")
	}
	return r.err
}

type panickingRenderer struct{}

func (panickingRenderer) Render(Frame) error {
	panic("layout overflow")
}

// fakeSource hands out readings from a list, one per refresh.
type fakeSource struct {
	cpu       []float64
	memUsed   uint64
	memTotal  uint64
	swapUsed  uint64
	swapTotal uint64

	cpuErr error
	memErr error

	cpuRefreshes int
	memRefreshes int
	current      float64
}

func (s *fakeSource) RefreshCPU() error {
	s.cpuRefreshes++
	if s.cpuErr != nil {
		return s.cpuErr
	}
	if len(s.cpu) > 0 {
		s.current = s.cpu[0]
		s.cpu = s.cpu[1:]
	}
	return nil
}

func (s *fakeSource) RefreshMemory() error {
	s.memRefreshes++
	return s.memErr
}

func (s *fakeSource) CPUUsage() float64 { return s.current }

func (s *fakeSource) Memory() (uint64, uint64) { return s.memUsed, s.memTotal }

func (s *fakeSource) Swap() (uint64, uint64) { return s.swapUsed, s.swapTotal }

type fakeIdentity struct{}

func (fakeIdentity) OSName() (string, error)        { return "Arch Linux", nil }
func (fakeIdentity) HostName() (string, error)      { return "neko", nil }
func (fakeIdentity) KernelVersion() (string, error) { return "6.9.1-arch1-1", nil }
func (fakeIdentity) Uptime() (time.Duration, error) { return 3*time.Hour + 25*time.Minute, nil }
func (fakeIdentity) CPUBrand() (string, error)      { return "", stderrors.New("no cpuinfo") }

type fixedGPU string

func (g fixedGPU) Resolve(context.Context) string { return string(g) }

// stepClock advances by step on every call.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

func newClock(step time.Duration) *stepClock {
	return &stepClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), step: step}
}
