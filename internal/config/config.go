// internal/config/config.go
package config

type Config struct {
	Bar BarConfig `yaml:"bar"`
}

// ---- BAR ----

type BarConfig struct {
	ClickEvents bool   `yaml:"click_events" env:"EXTSCRIPT_CLICK_EVENTS"`
	NotifyApp   string `yaml:"notify_app" env:"EXTSCRIPT_NOTIFY_APP"`

	Modules []Module `yaml:"modules"`
}

// ---- MODULE ----

// Input formats a module may declare.
const (
	InputFormatText  = "text"
	InputFormatI3bar = "i3bar"
)

// Module is one external-script instance on the bar.
// Optional booleans are pointers so "absent" and "false" stay distinct
// until Normalize resolves defaults.
type Module struct {
	Name        string `yaml:"name"`
	ScriptPath  string `yaml:"script_path"`
	InputFormat string `yaml:"input_format"`
	Format      string `yaml:"format"`

	CacheTimeout   *float64 `yaml:"cache_timeout"` // seconds
	Localize       *bool    `yaml:"localize"`
	StripOutput    bool     `yaml:"strip_output"`
	ConvertNumbers *bool    `yaml:"convert_numbers"`

	// NotifyButton is the pointer button that triggers a notification
	// with the full script output. 0 disables the feature.
	NotifyButton int `yaml:"button_show_notification"`
}
