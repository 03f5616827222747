// internal/script/script.go
package script

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jpicht/py3status/internal/format"
	"github.com/jpicht/py3status/internal/notify"
	"github.com/jpicht/py3status/internal/protocol"
)

// Runner abstracts the command execution the adapter needs.
// Running the command is the only operation that may block a cycle.
type Runner interface {
	Run(ctx context.Context, script string, localize bool) (string, error)
}

// Mode selects the output interpretation. Fixed at build time,
// never re-checked per field.
type Mode uint8

const (
	ModeText Mode = iota
	ModeI3bar
)

// Config is the minimal runtime config one adapter instance needs.
type Config struct {
	Name       string
	ScriptPath string
	Mode       Mode

	// Display options. Ignored in i3bar mode.
	Format         string
	Localize       bool
	StripOutput    bool
	ConvertNumbers bool
	NotifyButton   int

	CacheTimeout time.Duration
}

// Adapter turns one external script into a status-line segment.
type Adapter struct {
	cfg      Config
	runner   Runner
	engine   *format.Engine
	notifier notify.Notifier
	interval time.Duration

	// Raw output of the last successful execution. Replaced atomically
	// each cycle; the click path only ever reads a complete value.
	last atomic.Value

	// Advisory flag consumed by the run loop: skip the next tick.
	suppress atomic.Bool
}

// New creates an adapter with immutable config.
func New(cfg Config, runner Runner, engine *format.Engine, notifier notify.Notifier) (*Adapter, error) {
	if cfg.Name == "" {
		return nil, errors.New("script: module name required")
	}
	if cfg.ScriptPath == "" {
		return nil, errors.New("script: script path required")
	}
	if cfg.Mode != ModeText && cfg.Mode != ModeI3bar {
		return nil, errors.New("script: unknown input mode")
	}
	if cfg.CacheTimeout < 0 {
		return nil, errors.New("script: cache timeout must be >= 0")
	}
	if runner == nil {
		return nil, errors.New("script: runner required")
	}
	if engine == nil {
		engine = format.NewEngine()
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}

	interval := cfg.CacheTimeout
	if interval < time.Second {
		interval = time.Second
	}

	return &Adapter{
		cfg:      cfg,
		runner:   runner,
		engine:   engine,
		notifier: notifier,
		interval: interval,
	}, nil
}

// Name returns the configured module name.
func (a *Adapter) Name() string { return a.cfg.Name }

// RefreshOnce performs exactly one refresh cycle.
// A failed cycle carries an error and no segment; the previous
// successful output stays available for notifications.
func (a *Adapter) RefreshOnce(ctx context.Context) Update {
	u := Update{Name: a.cfg.Name, At: time.Now()}

	out, err := a.runner.Run(ctx, a.cfg.ScriptPath, a.cfg.Localize)
	if err != nil {
		u.Err = err
		return u
	}

	a.last.Store(out)

	if a.cfg.Mode == ModeI3bar {
		if _, err := protocol.ParseItem(out); err != nil {
			u.Err = err
			return u
		}
		// Pass through verbatim. Format, localize, strip, convert and
		// click notification options do not apply in this mode.
		u.Rendered = protocol.Rendered{Raw: []byte(strings.TrimSpace(out))}
		return u
	}

	u.Rendered = protocol.Rendered{Item: a.parseText(out)}
	return u
}

var colorLine = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// parseText interprets free-text output: line 1 is the displayed value,
// line 2 is the segment color when it is a hex color code.
func (a *Adapter) parseText(out string) *protocol.Item {
	lines := splitLines(out)

	it := &protocol.Item{Name: a.cfg.Name}
	if len(lines) > 1 && colorLine.MatchString(lines[1]) {
		it.Color = lines[1]
	}

	var output any = ""
	if len(lines) > 0 {
		text := lines[0]
		if a.cfg.StripOutput {
			text = strings.TrimSpace(text)
		}
		output = text
		if a.cfg.ConvertNumbers {
			output = convertNumber(text)
		}
	}

	it.FullText = a.engine.Substitute(a.cfg.Format, map[string]any{
		"output": output,
		"lines":  len(lines),
	})
	it.CachedUntil = time.Now().Add(a.cfg.CacheTimeout)

	return it
}

// splitLines splits captured output into lines. Empty output has no
// lines, and a single trailing newline does not add an empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// convertNumber returns the first successful interpretation of s:
// strict base-10 integer, then float, then s unchanged.
func convertNumber(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
