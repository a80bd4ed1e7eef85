package cellui

import (
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
)

// openURL is replaced in tests.
var openURL = OpenURL

// NewLink creates a label button opening url in the system browser.
// Failures are logged to the scheduler's log capture.
func NewLink(text, url string) *Button {
	b := NewLabelButton(text, nil)
	b.Foreground = CornflowerBlue
	b.FocusedForeground = CornflowerBlue
	b.Action = func() {
		if err := openURL(url); err != nil {
			var sched *Scheduler
			if root := RootOf(b); root != nil {
				sched = root.Scheduler()
			}
			sched.Logs().Error("open %s: %v", url, err)
		}
	}
	return b
}

// OpenURL starts the platform's URL opener without waiting for it.
func OpenURL(url string) error {
	name, args := openCommand(runtime.GOOS, url)
	return errors.Wrap(exec.Command(name, args...).Start(), "open url")
}

func openCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "cmd", []string{"/c", "start", url}
	default:
		return "xdg-open", []string{url}
	}
}
