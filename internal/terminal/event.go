package terminal

import "unicode/utf8"

// EventKind classifies decoded input.
type EventKind int

const (
	EventKey EventKind = iota
	EventMouse
	EventUnknown
)

func (k EventKind) String() string {
	switch k {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	default:
		return "unknown"
	}
}

// Event is one decoded input report.
type Event struct {
	Kind EventKind
	Rune rune
}

// IsKey reports whether e is a key press of r.
func (e Event) IsKey(r rune) bool {
	return e.Kind == EventKey && e.Rune == r
}

const esc = 0x1b

// Decode splits a chunk of raw terminal input into events. Printable and
// control bytes become key events; escape sequences become a single mouse or
// unknown event so they can't be mistaken for key presses.
func Decode(b []byte) []Event {
	var events []Event
	for len(b) > 0 {
		if b[0] == esc {
			ev, n := decodeEscape(b)
			events = append(events, ev)
			b = b[n:]
			continue
		}

		r, n := utf8.DecodeRune(b)
		events = append(events, Event{Kind: EventKey, Rune: r})
		b = b[n:]
	}
	return events
}

func decodeEscape(b []byte) (Event, int) {
	if len(b) == 1 {
		return Event{Kind: EventKey, Rune: esc}, 1
	}

	switch b[1] {
	case '[':
		// X10 mouse: ESC [ M Cb Cx Cy
		if len(b) >= 3 && b[2] == 'M' {
			n := 6
			if len(b) < n {
				n = len(b)
			}
			return Event{Kind: EventMouse}, n
		}
		// SGR mouse: ESC [ < Cb ; Cx ; Cy (M|m)
		if len(b) >= 3 && b[2] == '<' {
			for i := 3; i < len(b); i++ {
				if b[i] == 'M' || b[i] == 'm' {
					return Event{Kind: EventMouse}, i + 1
				}
			}
			return Event{Kind: EventMouse}, len(b)
		}
		return Event{Kind: EventUnknown}, csiLength(b)
	case 'O':
		// SS3: ESC O <final>
		n := 3
		if len(b) < n {
			n = len(b)
		}
		return Event{Kind: EventUnknown}, n
	default:
		// Alt+key
		_, n := utf8.DecodeRune(b[1:])
		return Event{Kind: EventUnknown}, 1 + n
	}
}

// csiLength returns the length of the CSI sequence at the start of b,
// ending at the first final byte in 0x40-0x7E.
func csiLength(b []byte) int {
	for i := 2; i < len(b); i++ {
		if b[i] >= 0x40 && b[i] <= 0x7e {
			return i + 1
		}
	}
	return len(b)
}
