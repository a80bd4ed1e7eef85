package cellui

import (
	"strconv"
	"strings"
)

const (
	ESC = "\x1b"
	CSI = ESC + "["
)

// MoveCursor returns the ANSI code to move the cursor to (x, y).
// ANSI uses 1-based coordinates.
func MoveCursor(x, y int) string {
	return CSI + strconv.Itoa(y+1) + ";" + strconv.Itoa(x+1) + "H"
}

// HideCursor returns the ANSI code to hide the cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor returns the ANSI code to show the cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// ClearScreen returns the ANSI code to clear the screen and home the cursor.
func ClearScreen() string {
	return CSI + "2J" + CSI + "H"
}

// Reset returns the ANSI code resetting all attributes.
func Reset() string {
	return CSI + "0m"
}

// ColorPrefix returns the 24-bit escape selecting c as the foreground
// (isFg) or background color.
func ColorPrefix(c Color, isFg bool) string {
	var sb strings.Builder
	writeColorPrefix(&sb, c, isFg)
	return sb.String()
}

func writeColorPrefix(sb *strings.Builder, c Color, isFg bool) {
	sb.WriteString(CSI)
	if isFg {
		sb.WriteString("38;2;")
	} else {
		sb.WriteString("48;2;")
	}
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.B)))
	sb.WriteByte('m')
}
