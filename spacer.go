package cellui

// Spacer is an invisible component of fixed size. It reserves room in a
// grid cell without drawing anything.
type Spacer struct {
	Box

	W, H int
}

// NewSpacer creates a transparent spacer.
func NewSpacer(width, height int) *Spacer {
	s := &Spacer{Box: NewBox(), W: width, H: height}
	s.Opaque = false
	return s
}

func (s *Spacer) ContentWidth() int { return max(s.W, 0) }

func (s *Spacer) ContentHeight() int { return max(s.H, 0) }

func (s *Spacer) RenderContent(*RenderBuffer) {}
