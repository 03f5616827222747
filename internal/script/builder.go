// internal/script/builder.go
package script

import (
	"time"

	cfg "github.com/jpicht/py3status/internal/config"
	"github.com/jpicht/py3status/internal/format"
	"github.com/jpicht/py3status/internal/notify"
	"github.com/jpicht/py3status/internal/script/shell"
)

// Build constructs an Adapter from its bar configuration.
// Expects validated, normalized config.
func Build(m cfg.Module, notifier notify.Notifier) (*Adapter, error) {
	mode := ModeText
	if m.InputFormat == cfg.InputFormatI3bar {
		mode = ModeI3bar
	}

	var cacheTimeout time.Duration
	if m.CacheTimeout != nil {
		cacheTimeout = time.Duration(*m.CacheTimeout * float64(time.Second))
	}

	return New(
		Config{
			Name:           m.Name,
			ScriptPath:     m.ScriptPath,
			Mode:           mode,
			Format:         m.Format,
			Localize:       m.Localize == nil || *m.Localize,
			StripOutput:    m.StripOutput,
			ConvertNumbers: m.ConvertNumbers == nil || *m.ConvertNumbers,
			NotifyButton:   m.NotifyButton,
			CacheTimeout:   cacheTimeout,
		},
		shell.New(),
		format.NewEngine(),
		notifier,
	)
}
