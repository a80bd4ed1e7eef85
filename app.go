package cellui

import (
	"context"
	"io"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// DefaultFrameInterval is the refresh period of Run (60 frames per second).
const DefaultFrameInterval = time.Second / 60

// Options configures a Scheduler.
type Options struct {
	// FrameInterval is the refresh period. Defaults to DefaultFrameInterval.
	FrameInterval time.Duration
	// Logs receives lifecycle and error messages. When set, Ctrl+L toggles a
	// panel showing them over all roots and Ctrl+K clears them while it is
	// shown. The panel never takes input.
	Logs *LogCapture
	// LogLines is the height of the log panel. Defaults to 8.
	LogLines int
}

// Scheduler drives a terminal UI: it owns the stack of roots, the lock
// serializing every tree mutation, the input loop and the refresh loop.
// Create one per terminal.
//
// Everything touching a component tree after Run has started must happen
// with the lock held: inside Update, or inside input handling, which runs
// under the lock already.
type Scheduler struct {
	mu    sync.Mutex
	roots []*Root

	term          Terminal
	frameInterval time.Duration
	dirty         atomic.Bool
	lastW, lastH  int

	logs     *LogCapture
	logRoot  *Root
	logShown bool

	done     chan struct{}
	quitOnce sync.Once
}

// NewScheduler creates a scheduler drawing on term.
func NewScheduler(term Terminal, opts Options) *Scheduler {
	s := &Scheduler{
		term:          term,
		frameInterval: opts.FrameInterval,
		logs:          opts.Logs,
		done:          make(chan struct{}),
	}
	if s.frameInterval <= 0 {
		s.frameInterval = DefaultFrameInterval
	}
	if s.logs != nil {
		s.logRoot = newLogRoot(s.logs, opts.LogLines)
		s.logRoot.sched = s
	}
	s.dirty.Store(true)
	return s
}

// Push puts root on top of the stack. Only the top root receives input;
// all roots are drawn bottom to top.
func (s *Scheduler) Push(root *Root) {
	s.mu.Lock()
	s.push(root)
	s.mu.Unlock()
}

func (s *Scheduler) push(root *Root) {
	root.sched = s
	s.roots = append(s.roots, root)
	s.Invalidate()
}

// Remove takes root off the stack. Reports whether it was there.
func (s *Scheduler) Remove(root *Root) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(root)
}

func (s *Scheduler) remove(root *Root) bool {
	i := slices.Index(s.roots, root)
	if i < 0 {
		return false
	}
	s.roots = slices.Delete(s.roots, i, i+1)
	root.sched = nil
	s.Invalidate()
	return true
}

// Top returns the root receiving input, or nil.
func (s *Scheduler) Top() *Root {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.roots) == 0 {
		return nil
	}
	return s.roots[len(s.roots)-1]
}

// Roots returns a copy of the stack, bottom first.
func (s *Scheduler) Roots() []*Root {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.roots)
}

// Invalidate requests a redraw on the next tick. Requests coalesce and
// it is safe to call with or without the lock.
func (s *Scheduler) Invalidate() {
	s.dirty.Store(true)
}

// Dirty reports whether a redraw is pending.
func (s *Scheduler) Dirty() bool {
	return s.dirty.Load()
}

// Update runs fn with the lock held and requests a redraw. Use it for every
// change made to a tree from outside input handling.
func (s *Scheduler) Update(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
	s.Invalidate()
}

// Dispatch hands a key press to the top root.
//
// Ctrl+C quits. With logs configured, Ctrl+L toggles the log panel and
// Ctrl+K clears the logs while the panel is shown.
func (s *Scheduler) Dispatch(ev KeyEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.Invalidate()

	switch {
	case ev.Matches(CtrlKey('c')):
		s.Quit()
		return
	case s.logs != nil && ev.Matches(CtrlKey('l')):
		s.toggleLogs()
		return
	case s.logShown && ev.Matches(CtrlKey('k')):
		s.logs.Clear()
		return
	}

	if len(s.roots) > 0 {
		s.roots[len(s.roots)-1].HandleInput(ev)
	}
}

func (s *Scheduler) toggleLogs() {
	s.logShown = !s.logShown
	if s.logShown {
		s.logs.OnMessage(s.Invalidate)
	} else {
		s.logs.OnMessage(nil)
	}
}

// Logs returns the capture the scheduler logs to, or nil.
func (s *Scheduler) Logs() *LogCapture {
	if s == nil {
		return nil
	}
	return s.logs
}

// LogsShown reports whether the log panel is drawn.
func (s *Scheduler) LogsShown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logShown
}

// Run initializes the terminal and services input and redraws until ctx is
// done, Quit is called, or reading input fails. The terminal is restored
// before Run returns. End of input stops the input loop only.
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.term.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer s.term.Fini()

	s.logs.Info("scheduler started")
	defer s.logs.Info("scheduler stopped")

	inputErr := make(chan error, 1)
	go s.readInput(inputErr)

	ticker := time.NewTicker(s.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case err := <-inputErr:
			return errors.Wrap(err, "read input")
		case <-ticker.C:
			if _, err := s.Tick(); err != nil {
				return errors.Wrap(err, "draw frame")
			}
		}
	}
}

func (s *Scheduler) readInput(errc chan<- error) {
	for {
		ev, err := s.term.ReadKey()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				errc <- err
			}
			return
		}

		select {
		case <-s.done:
			return
		default:
		}
		s.Dispatch(ev)
	}
}

// Quit stops Run. Safe to call more than once and from any goroutine.
func (s *Scheduler) Quit() {
	s.quitOnce.Do(func() { close(s.done) })
}

// Done is closed once Quit has been called.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}
