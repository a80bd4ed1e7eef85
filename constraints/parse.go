package constraints

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownToken is returned for tokens outside the constraint vocabulary.
	ErrUnknownToken = errors.New("unknown constraint token")
	// ErrMalformedNumber is returned when a numeric argument cannot be parsed.
	ErrMalformedNumber = errors.New("malformed numeric argument")
)

var groupPattern = regexp.MustCompile(`\[([^\]]*)\]`)

// tokens strips whitespace, lowercases and splits on commas.
func tokens(s string) []string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
	return strings.Split(stripped, ",")
}

// ParseContainer parses container constraints such as "wrap2".
func ParseContainer(s string) (Container, error) {
	var c Container
	for _, tok := range tokens(s) {
		switch {
		case tok == "":
		case strings.HasPrefix(tok, "wrap"):
			n, err := strconv.Atoi(strings.TrimPrefix(tok, "wrap"))
			if err != nil || n < 0 {
				return Container{}, errors.Wrapf(ErrMalformedNumber, "container token %q", tok)
			}
			c.AutoWrapAfter = n
		default:
			return Container{}, errors.Wrapf(ErrUnknownToken, "container token %q", tok)
		}
	}
	return c, nil
}

// ParseColumns parses column constraints such as "[grow, fill][right]".
func ParseColumns(s string) (Axis, error) {
	return parseAxis(s, "column", map[string]Alignment{
		"left":  Start,
		"right": End,
	})
}

// ParseRows parses row constraints such as "[grow][bottom]".
func ParseRows(s string) (Axis, error) {
	return parseAxis(s, "row", map[string]Alignment{
		"top":    Start,
		"bottom": End,
	})
}

func parseAxis(s, kind string, sides map[string]Alignment) (Axis, error) {
	groups := groupPattern.FindAllStringSubmatch(s, -1)
	axis := Axis{
		grow:  make([]bool, len(groups)),
		align: make([]Alignment, len(groups)),
	}

	for i, group := range groups {
		for _, tok := range tokens(group[1]) {
			if a, ok := sides[tok]; ok {
				axis.align[i] = a
				continue
			}
			switch tok {
			case "grow":
				axis.grow[i] = true
			case "fill":
				axis.align[i] = Fill
			case "center":
				axis.align[i] = Center
			case "":
			default:
				return Axis{}, errors.Wrapf(ErrUnknownToken, "%s %d token %q", kind, i, tok)
			}
		}
	}

	return axis, nil
}

// ParseComponent parses per-child constraints, starting from the given
// default alignments.
func ParseComponent(s string, defaultX, defaultY Alignment) (Component, error) {
	c := Component{X: defaultX, Y: defaultY}
	for _, tok := range tokens(s) {
		switch tok {
		case "fill":
			c.X, c.Y = Fill, Fill
		case "fillx":
			c.X = Fill
		case "filly":
			c.Y = Fill
		case "center":
			c.X, c.Y = Center, Center
		case "centerx":
			c.X = Center
		case "centery":
			c.Y = Center
		case "left":
			c.X = Start
		case "right":
			c.X = End
		case "top":
			c.Y = Start
		case "bottom":
			c.Y = End
		case "":
		default:
			return Component{}, errors.Wrapf(ErrUnknownToken, "component token %q", tok)
		}
	}
	return c, nil
}

// MustParseColumns is like ParseColumns but panics on error.
func MustParseColumns(s string) Axis {
	a, err := ParseColumns(s)
	if err != nil {
		panic("constraints: " + err.Error())
	}
	return a
}

// MustParseRows is like ParseRows but panics on error.
func MustParseRows(s string) Axis {
	a, err := ParseRows(s)
	if err != nil {
		panic("constraints: " + err.Error())
	}
	return a
}
