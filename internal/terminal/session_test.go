package terminal

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CtrlAltSam/NecoMind/internal/errors"
)

func pipeSession(t *testing.T) *Session {
	t.Helper()
	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	outR, outW, err := os.Pipe()
	require.NoError(t, err)

	t.Cleanup(func() {
		for _, f := range []*os.File{inR, inW, outR, outW} {
			_ = f.Close()
		}
	})
	return NewSession(inR, outW)
}

func TestSession_EnterRequiresTerminal(t *testing.T) {
	s := pipeSession(t)

	err := s.Enter()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTerminal))

	// Nothing was acquired, so leaving is a clean no-op.
	assert.NoError(t, s.Leave())
}

func TestSession_LeaveIsRepeatable(t *testing.T) {
	s := pipeSession(t)

	assert.NoError(t, s.Leave())
	assert.NoError(t, s.Leave())
}

func TestSession_PollBeforeEnter(t *testing.T) {
	s := pipeSession(t)

	_, ok, err := s.Poll(10 * time.Millisecond)
	assert.False(t, ok)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
}

func TestSession_Screen(t *testing.T) {
	s := pipeSession(t)
	require.NotNil(t, s.Screen())

	// A pipe has no window size.
	_, _, err := s.Screen().Size()
	assert.Error(t, err)
}
