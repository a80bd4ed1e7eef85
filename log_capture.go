package cellui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// LogLevel represents the severity of a log message
type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

// LogMessage represents a captured log message
type LogMessage struct {
	Timestamp time.Time
	Level     LogLevel
	Message   string
}

// LogCapture keeps a bounded list of log messages for display in the UI.
// It can also capture stdout and stderr while the UI owns the terminal.
//
// All methods are safe on a nil *LogCapture, which discards everything.
type LogCapture struct {
	mu          sync.Mutex
	messages    []LogMessage
	maxMessages int
	onMessage   func()

	// Original stdout/stderr for restoration
	origStdout *os.File
	origStderr *os.File

	stdoutReader *os.File
	stdoutWriter *os.File
	stderrReader *os.File
	stderrWriter *os.File

	now func() time.Time
}

// NewLogCapture creates a log capture keeping at most maxMessages messages
// (1000 if maxMessages <= 0).
func NewLogCapture(maxMessages int) *LogCapture {
	if maxMessages <= 0 {
		maxMessages = 1000
	}
	return &LogCapture{
		maxMessages: maxMessages,
		now:         time.Now,
	}
}

// Start begins capturing stdout and stderr
func (lc *LogCapture) Start() error {
	if lc == nil {
		return nil
	}
	lc.mu.Lock()
	defer lc.mu.Unlock()

	lc.origStdout = os.Stdout
	lc.origStderr = os.Stderr

	var err error
	lc.stdoutReader, lc.stdoutWriter, err = os.Pipe()
	if err != nil {
		return errors.Wrap(err, "create stdout pipe")
	}

	lc.stderrReader, lc.stderrWriter, err = os.Pipe()
	if err != nil {
		lc.stdoutReader.Close()
		lc.stdoutWriter.Close()
		return errors.Wrap(err, "create stderr pipe")
	}

	os.Stdout = lc.stdoutWriter
	os.Stderr = lc.stderrWriter

	go lc.readPipe(lc.stdoutReader, LogLevelInfo)
	go lc.readPipe(lc.stderrReader, LogLevelError)

	return nil
}

// readPipe turns everything written to a pipe into messages until the pipe
// is closed by Stop.
func (lc *LogCapture) readPipe(reader *os.File, level LogLevel) {
	buf := make([]byte, 4096)
	for {
		n, err := reader.Read(buf)
		if n > 0 {
			lc.addMessage(level, strings.TrimRight(string(buf[:n]), "\n"))
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
				lc.mu.Lock()
				orig := lc.origStderr
				lc.mu.Unlock()
				if orig != nil {
					fmt.Fprintf(orig, "LogCapture read error: %v\n", err)
				}
			}
			return
		}
	}
}

// Stop stops capturing and restores original stdout/stderr
func (lc *LogCapture) Stop() {
	if lc == nil {
		return
	}
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if lc.origStdout != nil {
		os.Stdout = lc.origStdout
		lc.origStdout = nil
	}
	if lc.origStderr != nil {
		os.Stderr = lc.origStderr
		lc.origStderr = nil
	}

	for _, f := range []**os.File{&lc.stdoutWriter, &lc.stdoutReader, &lc.stderrWriter, &lc.stderrReader} {
		if *f != nil {
			(*f).Close()
			*f = nil
		}
	}
}

// OnMessage sets a function called after every new message, or removes it
// when fn is nil.
func (lc *LogCapture) OnMessage(fn func()) {
	if lc == nil {
		return
	}
	lc.mu.Lock()
	lc.onMessage = fn
	lc.mu.Unlock()
}

func (lc *LogCapture) addMessage(level LogLevel, message string) {
	lc.mu.Lock()
	lc.messages = append(lc.messages, LogMessage{
		Timestamp: lc.now(),
		Level:     level,
		Message:   message,
	})
	if len(lc.messages) > lc.maxMessages {
		lc.messages = lc.messages[len(lc.messages)-lc.maxMessages:]
	}
	notify := lc.onMessage
	lc.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Log logs a message at the specified level
func (lc *LogCapture) Log(level LogLevel, format string, args ...any) {
	if lc == nil {
		return
	}
	lc.addMessage(level, fmt.Sprintf(format, args...))
}

// Debug logs a debug message
func (lc *LogCapture) Debug(format string, args ...any) {
	lc.Log(LogLevelDebug, format, args...)
}

// Info logs an info message
func (lc *LogCapture) Info(format string, args ...any) {
	lc.Log(LogLevelInfo, format, args...)
}

// Warn logs a warning message
func (lc *LogCapture) Warn(format string, args ...any) {
	lc.Log(LogLevelWarn, format, args...)
}

// Error logs an error message
func (lc *LogCapture) Error(format string, args ...any) {
	lc.Log(LogLevelError, format, args...)
}

// Messages returns a copy of the current messages.
func (lc *LogCapture) Messages() []LogMessage {
	if lc == nil {
		return nil
	}
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return append([]LogMessage(nil), lc.messages...)
}

// LastMessages returns the last n messages.
func (lc *LogCapture) LastMessages(n int) []LogMessage {
	msgs := lc.Messages()
	if len(msgs) <= n {
		return msgs
	}
	return msgs[len(msgs)-n:]
}

// Len returns the number of kept messages.
func (lc *LogCapture) Len() int {
	if lc == nil {
		return 0
	}
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return len(lc.messages)
}

// Clear clears all captured messages
func (lc *LogCapture) Clear() {
	if lc == nil {
		return
	}
	lc.mu.Lock()
	lc.messages = nil
	lc.mu.Unlock()
}

// FormatMessage formats a log message for display
func FormatMessage(msg LogMessage) string {
	timeStr := msg.Timestamp.Format("15:04:05.000")
	return fmt.Sprintf("[%s] %-5s %s", timeStr, msg.Level, msg.Message)
}

// OriginalStdout returns stdout as it was before Start.
func (lc *LogCapture) OriginalStdout() *os.File {
	if lc == nil {
		return os.Stdout
	}
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if lc.origStdout != nil {
		return lc.origStdout
	}
	return os.Stdout
}
