package terminal

import (
	stderrors "errors"
	"os"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/CtrlAltSam/NecoMind/internal/errors"
)

// Session is the guard around full-screen terminal use. Enter acquires the
// terminal; Leave restores whatever Enter managed to change and may be called
// on every exit path, including after a failed Enter.
type Session struct {
	in  *os.File
	out *os.File

	output   *termenv.Output
	state    *term.State
	keyboard *Keyboard
	screen   *Screen

	altScreen bool
	mouse     bool
}

// NewSession prepares a session on the given input and output files.
func NewSession(in, out *os.File) *Session {
	s := &Session{
		in:     in,
		out:    out,
		output: termenv.NewOutput(out),
	}
	s.screen = NewScreen(out, s.Size)
	return s
}

// Enter switches to raw input, the alternate screen and mouse capture, then
// starts the keyboard reader.
func (s *Session) Enter() error {
	fd := int(s.in.Fd())
	if !term.IsTerminal(fd) {
		return errors.New(errors.ErrTerminal,
			"stdin is not a terminal",
			"Run necomind from an interactive terminal, or use 'necomind info'")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't enable raw mode",
			"Run necomind from an interactive terminal")
	}
	s.state = state

	s.output.AltScreen()
	s.altScreen = true
	s.output.EnableMouseCellMotion()
	s.mouse = true
	s.output.HideCursor()
	s.output.ClearScreen()

	kb, err := NewKeyboard(s.in)
	if err != nil {
		return err
	}
	s.keyboard = kb
	return nil
}

// Leave stops the keyboard, disables mouse capture, leaves the alternate
// screen, shows the cursor and restores the saved terminal mode, in that order.
// Every step runs even when an earlier one fails.
func (s *Session) Leave() error {
	var errs []error

	if s.keyboard != nil {
		if err := s.keyboard.Close(); err != nil {
			errs = append(errs, err)
		}
		s.keyboard = nil
	}

	if s.mouse {
		s.output.DisableMouseCellMotion()
		s.mouse = false
	}
	if s.altScreen {
		s.output.ExitAltScreen()
		s.altScreen = false
	}
	s.output.ShowCursor()

	if s.state != nil {
		if err := term.Restore(int(s.in.Fd()), s.state); err != nil {
			errs = append(errs, err)
		}
		s.state = nil
	}

	if len(errs) > 0 {
		return errors.WrapWithCode(stderrors.Join(errs...), errors.ErrTerminal,
			"Couldn't fully restore the terminal",
			"Run 'reset' to recover your terminal")
	}
	return nil
}

// Size reports the output terminal's size in cells.
func (s *Session) Size() (int, int, error) {
	return term.GetSize(int(s.out.Fd()))
}

// Poll reads one event from the keyboard; see Keyboard.Poll.
func (s *Session) Poll(timeout time.Duration) (Event, bool, error) {
	if s.keyboard == nil {
		return Event{}, false, errors.New(errors.ErrInput,
			"Keyboard polled before the terminal session started", "")
	}
	return s.keyboard.Poll(timeout)
}

// Screen returns the frame writer bound to this session's output.
func (s *Session) Screen() *Screen {
	return s.screen
}
