package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/CtrlAltSam/NecoMind/internal/errors"
)

// SizeFunc reports the terminal size in cells.
type SizeFunc func() (width, height int, err error)

// Screen paints full frames onto an already-prepared terminal.
type Screen struct {
	w    io.Writer
	size SizeFunc
}

// NewScreen creates a screen writing to w.
func NewScreen(w io.Writer, size SizeFunc) *Screen {
	return &Screen{w: w, size: size}
}

// Size reports the terminal dimensions in cells.
func (s *Screen) Size() (int, int, error) {
	if s.size == nil {
		return 0, 0, errors.New(errors.ErrTerminal, "Terminal size unavailable", "")
	}
	w, h, err := s.size()
	if err != nil {
		return 0, 0, errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't read the terminal size", "")
	}
	return w, h, nil
}

// Draw homes the cursor and writes frame in a single write. Each line clears
// to its right and everything below the frame is erased, so shrinking frames
// leave no residue. Raw mode needs explicit carriage returns.
func (s *Screen) Draw(frame string) error {
	var b strings.Builder
	b.WriteString(termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, 1, 1))

	lines := strings.Split(frame, "\n")
	for i, line := range lines {
		b.WriteString(line)
		b.WriteString(termenv.CSI + termenv.EraseLineRightSeq)
		if i < len(lines)-1 {
			b.WriteString("\r\n")
		}
	}
	b.WriteString(termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 0))

	if _, err := io.WriteString(s.w, b.String()); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Couldn't draw the dashboard frame",
			"The terminal may have been closed")
	}
	return nil
}
