package cellui

// Terminal is the device a Scheduler draws on and reads keys from.
type Terminal interface {
	// Init prepares the terminal, e.g. switching it to raw mode.
	Init() error
	// Fini restores the terminal to the state before Init.
	Fini()
	// Size returns the drawable area in cells.
	Size() (width, height int)
	// ReadKey blocks until the next key press. It returns io.EOF once no
	// more input will arrive.
	ReadKey() (KeyEvent, error)
	// Draw replaces the screen content with a root buffer.
	Draw(buf *RenderBuffer) error
}

// Tick redraws if a redraw was requested or the terminal size changed since
// the last frame. Reports whether a frame was drawn.
func (s *Scheduler) Tick() (bool, error) {
	w, h := s.term.Size()
	resized := w != s.lastW || h != s.lastH
	if !s.dirty.Swap(false) && !resized {
		return false, nil
	}
	s.lastW, s.lastH = w, h

	if err := s.RenderFrame(); err != nil {
		s.logs.Error("draw frame: %v", err)
		return true, err
	}
	return true, nil
}

// RenderFrame draws every root, bottom to top, and the log panel if shown,
// into a fresh buffer the size of the terminal and hands it to the terminal.
func (s *Scheduler) RenderFrame() error {
	buf := s.Frame()
	return s.term.Draw(buf)
}

// Frame renders the current stack into a new root buffer without drawing it.
func (s *Scheduler) Frame() *RenderBuffer {
	w, h := s.term.Size()
	buf := NewRenderBuffer(w, h)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, root := range s.roots {
		Render(root, buf)
	}
	if s.logShown {
		Render(s.logRoot, buf)
	}
	return buf
}
