// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultFormat              = "{output}"
	DefaultCacheTimeoutSeconds = 15
	DefaultNotifyApp           = "extscript"
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Bar.NotifyApp == "" {
		cfg.Bar.NotifyApp = DefaultNotifyApp
	}

	for i := range cfg.Bar.Modules {
		m := &cfg.Bar.Modules[i]

		if m.InputFormat == "" {
			m.InputFormat = InputFormatText
		}
		if m.Format == "" {
			m.Format = DefaultFormat
		}
		if m.CacheTimeout == nil {
			v := float64(DefaultCacheTimeoutSeconds)
			m.CacheTimeout = &v
		}
		if m.Localize == nil {
			v := true
			m.Localize = &v
		}
		if m.ConvertNumbers == nil {
			v := true
			m.ConvertNumbers = &v
		}
	}
}
