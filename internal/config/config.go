// Package config loads the settings of the demo binary from flags and the
// environment. Flags win over environment variables.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Supported backends.
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Config captures runtime configuration for the demo.
type Config struct {
	Backend  string
	FPS      int
	Logs     bool
	LogLines int
	Debug    bool
	Args     []string
}

// FrameInterval returns the refresh period for FPS.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

const (
	envBackend  = "CELLUI_BACKEND"
	envFPS      = "CELLUI_FPS"
	envLogs     = "CELLUI_LOGS"
	envLogLines = "CELLUI_LOG_LINES"
	envDebug    = "CELLUI_DEBUG"
)

// ErrInvalid is wrapped by every validation error of LoadArgs.
var ErrInvalid = errors.New("invalid configuration")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("cellui-demo", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	backend := fs.String("backend", envOrDefault(env, envBackend, BackendTcell), "terminal backend: ansi or tcell")
	fps := fs.Int("fps", envOrInt(env, envFPS, 60), "frames per second")
	logs := fs.Bool("logs", envOrBool(env, envLogs, true), "capture stdout/stderr into the log panel (Ctrl+L)")
	logLines := fs.Int("log-lines", envOrInt(env, envLogLines, 8), "height of the log panel")
	debug := fs.Bool("debug", envOrBool(env, envDebug, false), "draw component sizes")

	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}

	switch *backend {
	case BackendANSI, BackendTcell:
	default:
		return Config{}, errors.Wrapf(ErrInvalid, "unknown backend %q", *backend)
	}
	if *fps <= 0 || *fps > 1000 {
		return Config{}, errors.Wrapf(ErrInvalid, "fps must be in 1..1000 (got %d)", *fps)
	}
	if *logLines < 1 {
		return Config{}, errors.Wrapf(ErrInvalid, "log-lines must be >= 1 (got %d)", *logLines)
	}

	return Config{
		Backend:  *backend,
		FPS:      *fps,
		Logs:     *logs,
		LogLines: *logLines,
		Debug:    *debug,
		Args:     fs.Args(),
	}, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && v != "" {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}
