package terminal

import (
	stderrors "errors"
	"io"
	"sync"
	"time"

	"github.com/muesli/cancelreader"

	"github.com/CtrlAltSam/NecoMind/internal/errors"
)

// Keyboard reads raw input in the background and hands it out one event per Poll.
type Keyboard struct {
	reader cancelreader.CancelReader

	chunks  chan []byte
	quit    chan struct{}
	done    chan struct{}
	readErr error

	pending []Event
	once    sync.Once
}

// NewKeyboard starts reading from r. Call Close to stop the reader goroutine.
func NewKeyboard(r io.Reader) (*Keyboard, error) {
	cr, err := cancelreader.NewReader(r)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrInput,
			"Couldn't open keyboard input",
			"Check that stdin is a terminal")
	}

	k := &Keyboard{
		reader: cr,
		chunks: make(chan []byte, 16),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go k.readLoop()
	return k, nil
}

func (k *Keyboard) readLoop() {
	defer close(k.done)
	defer close(k.chunks)

	buf := make([]byte, 256)
	for {
		n, err := k.reader.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case k.chunks <- chunk:
			case <-k.quit:
				return
			}
		}
		if err != nil {
			if !stderrors.Is(err, cancelreader.ErrCanceled) {
				k.readErr = err
			}
			return
		}
	}
}

// Poll waits up to timeout for input and returns at most one event.
// ok is false when nothing arrived in time.
func (k *Keyboard) Poll(timeout time.Duration) (ev Event, ok bool, err error) {
	if ev, ok := k.next(); ok {
		return ev, true, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case chunk, open := <-k.chunks:
		if !open {
			return Event{}, false, k.closedErr()
		}
		k.pending = append(k.pending, Decode(chunk)...)
		ev, ok := k.next()
		return ev, ok, nil
	case <-timer.C:
		return Event{}, false, nil
	}
}

func (k *Keyboard) next() (Event, bool) {
	if len(k.pending) == 0 {
		return Event{}, false
	}
	ev := k.pending[0]
	k.pending = k.pending[1:]
	return ev, true
}

func (k *Keyboard) closedErr() error {
	cause := k.readErr
	if cause == nil {
		cause = io.EOF
	}
	return errors.WrapWithCode(cause, errors.ErrInput,
		"Keyboard input closed",
		"necomind needs an interactive stdin")
}

// Close stops the reader goroutine and waits for it to exit.
func (k *Keyboard) Close() error {
	var err error
	k.once.Do(func() {
		k.reader.Cancel()
		close(k.quit)
		<-k.done
		err = k.reader.Close()
	})
	return err
}
