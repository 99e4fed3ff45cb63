package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Event
	}{
		{
			name:  "single key",
			input: "q",
			want:  []Event{{Kind: EventKey, Rune: 'q'}},
		},
		{
			name:  "several keys",
			input: "aq",
			want:  []Event{{Kind: EventKey, Rune: 'a'}, {Kind: EventKey, Rune: 'q'}},
		},
		{
			name:  "multibyte rune",
			input: "é",
			want:  []Event{{Kind: EventKey, Rune: 'é'}},
		},
		{
			name:  "ctrl+c is just a key",
			input: "\x03",
			want:  []Event{{Kind: EventKey, Rune: 0x03}},
		},
		{
			name:  "lone escape",
			input: "\x1b",
			want:  []Event{{Kind: EventKey, Rune: 0x1b}},
		},
		{
			name:  "x10 mouse report then key",
			input: "\x1b[M #!q",
			want:  []Event{{Kind: EventMouse}, {Kind: EventKey, Rune: 'q'}},
		},
		{
			name:  "sgr mouse report",
			input: "\x1b[<0;12;7M",
			want:  []Event{{Kind: EventMouse}},
		},
		{
			name:  "arrow key is not a key event",
			input: "\x1b[A",
			want:  []Event{{Kind: EventUnknown}},
		},
		{
			name:  "ss3 function key",
			input: "\x1bOP",
			want:  []Event{{Kind: EventUnknown}},
		},
		{
			name:  "alt+q does not quit",
			input: "\x1bq",
			want:  []Event{{Kind: EventUnknown}},
		},
		{
			name:  "truncated csi",
			input: "\x1b[1;5",
			want:  []Event{{Kind: EventUnknown}},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode([]byte(tt.input)))
		})
	}
}

func TestEvent_IsKey(t *testing.T) {
	assert.True(t, Event{Kind: EventKey, Rune: 'q'}.IsKey('q'))
	assert.False(t, Event{Kind: EventKey, Rune: 'Q'}.IsKey('q'))
	assert.False(t, Event{Kind: EventMouse, Rune: 'q'}.IsKey('q'))
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "key", EventKey.String())
	assert.Equal(t, "mouse", EventMouse.String())
	assert.Equal(t, "unknown", EventUnknown.String())
	assert.Equal(t, "unknown", EventKind(42).String())
}
