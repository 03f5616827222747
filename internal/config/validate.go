// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
)

// Fatal configuration errors.
var (
	ErrMissingScriptPath  = errors.New("missing script_path")
	ErrInvalidInputFormat = errors.New("invalid input format")
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if len(cfg.Bar.Modules) == 0 {
		return errors.New("config: no modules defined")
	}

	seen := make(map[string]struct{})

	for _, m := range cfg.Bar.Modules {
		if m.Name == "" {
			return errors.New("config: module without a name")
		}
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("config: duplicate module name %q", m.Name)
		}
		seen[m.Name] = struct{}{}

		if m.ScriptPath == "" {
			return fmt.Errorf("module %q: %w", m.Name, ErrMissingScriptPath)
		}

		switch m.InputFormat {
		case "", InputFormatText, InputFormatI3bar:
		default:
			return fmt.Errorf("module %q: %w: %q", m.Name, ErrInvalidInputFormat, m.InputFormat)
		}

		if m.CacheTimeout != nil && *m.CacheTimeout < 0 {
			return fmt.Errorf("module %q: cache_timeout must be >= 0", m.Name)
		}

		if m.NotifyButton < 0 {
			return fmt.Errorf("module %q: button_show_notification must be >= 0", m.Name)
		}
	}

	return nil
}
