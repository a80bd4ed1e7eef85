package cellui

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key is the symbolic code of a key press.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // printable character, see KeyEvent.Rune
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyDelete
	KeyInsert
	KeyCtrl // Ctrl+letter, the lowercase letter is in KeyEvent.Rune
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyEscape:    "escape",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDn:      "pgdn",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyCtrl:      "ctrl",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// KeyEvent is a single key press: a symbolic code plus the typed character
// for KeyRune and KeyCtrl.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// RuneKey returns the event for typing r.
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// CtrlKey returns the event for Ctrl plus the letter r.
func CtrlKey(r rune) KeyEvent {
	return KeyEvent{Key: KeyCtrl, Rune: unicode.ToLower(r)}
}

// Matches reports whether e is the same key as other. Characters compare
// case-insensitively, so a hotkey 'c' fires on both "c" and "C".
// KeyNone never matches anything.
func (e KeyEvent) Matches(other KeyEvent) bool {
	if e.Key == KeyNone || e.Key != other.Key {
		return false
	}
	switch e.Key {
	case KeyRune, KeyCtrl:
		return unicode.ToLower(e.Rune) == unicode.ToLower(other.Rune)
	default:
		return true
	}
}

func (e KeyEvent) String() string {
	switch e.Key {
	case KeyRune:
		return string(e.Rune)
	case KeyCtrl:
		return "ctrl+" + string(e.Rune)
	default:
		return e.Key.String()
	}
}

// Escape sequences emitted by common terminals (xterm, VT100 and the
// Linux console).
var sequences = map[string]KeyEvent{
	"\x1b[A":  {Key: KeyUp},
	"\x1b[B":  {Key: KeyDown},
	"\x1b[C":  {Key: KeyRight},
	"\x1b[D":  {Key: KeyLeft},
	"\x1bOA":  {Key: KeyUp},
	"\x1bOB":  {Key: KeyDown},
	"\x1bOC":  {Key: KeyRight},
	"\x1bOD":  {Key: KeyLeft},
	"\x1b[H":  {Key: KeyHome},
	"\x1b[F":  {Key: KeyEnd},
	"\x1b[1~": {Key: KeyHome},
	"\x1b[4~": {Key: KeyEnd},
	"\x1b[2~": {Key: KeyInsert},
	"\x1b[3~": {Key: KeyDelete},
	"\x1b[5~": {Key: KeyPgUp},
	"\x1b[6~": {Key: KeyPgDn},
	"\x1b[Z":  {Key: KeyBacktab},

	"\x1bOP":   {Key: KeyF1},
	"\x1bOQ":   {Key: KeyF2},
	"\x1bOR":   {Key: KeyF3},
	"\x1bOS":   {Key: KeyF4},
	"\x1b[15~": {Key: KeyF5},
	"\x1b[17~": {Key: KeyF6},
	"\x1b[18~": {Key: KeyF7},
	"\x1b[19~": {Key: KeyF8},
	"\x1b[20~": {Key: KeyF9},
	"\x1b[21~": {Key: KeyF10},
	"\x1b[23~": {Key: KeyF11},
	"\x1b[24~": {Key: KeyF12},
}

// ParseKeys decodes raw terminal input into key events. A single read may
// hold several keys (pasted text, fast typing). Escape sequences that are
// not recognized are skipped.
func ParseKeys(data []byte) []KeyEvent {
	var events []KeyEvent
	s := string(data)

	for len(s) > 0 {
		if s[0] == '\x1b' {
			ev, n := parseEscape(s)
			if n > 0 {
				if ev.Key != KeyNone {
					events = append(events, ev)
				}
				s = s[n:]
				continue
			}
		}

		b := s[0]
		switch {
		case b == '\r' || b == '\n':
			events = append(events, KeyEvent{Key: KeyEnter})
		case b == '\t':
			events = append(events, KeyEvent{Key: KeyTab})
		case b == 0x7f || b == '\b':
			events = append(events, KeyEvent{Key: KeyBackspace})
		case b == '\x1b':
			events = append(events, KeyEvent{Key: KeyEscape})
		case b >= 0x01 && b <= 0x1a:
			events = append(events, CtrlKey(rune('a'+b-1)))
		case b < 0x20:
			// other control bytes carry no key
		default:
			r, size := utf8.DecodeRuneInString(s)
			events = append(events, RuneKey(r))
			s = s[size:]
			continue
		}
		s = s[1:]
	}

	return events
}

// parseEscape decodes the escape sequence at the start of s. It returns the
// number of bytes consumed, or 0 when s starts with a lone Escape.
func parseEscape(s string) (KeyEvent, int) {
	if len(s) < 2 {
		return KeyEvent{}, 0
	}

	for seq, ev := range sequences {
		if strings.HasPrefix(s, seq) {
			return ev, len(seq)
		}
	}

	switch s[1] {
	case '[':
		// Unknown CSI: parameters up to the final byte in 0x40..0x7e.
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return KeyEvent{}, i + 1
			}
		}
		return KeyEvent{}, len(s)
	case 'O':
		if len(s) >= 3 {
			return KeyEvent{}, 3
		}
	}
	return KeyEvent{}, 0
}
