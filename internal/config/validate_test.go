// internal/config/validate_test.go
package config

import (
	"errors"
	"testing"
)

// helper to build a config quickly
func barWith(modules ...Module) *Config {
	return &Config{Bar: BarConfig{Modules: modules}}
}

func module(name, path, inputFormat string) Module {
	return Module{Name: name, ScriptPath: path, InputFormat: inputFormat}
}

// ---- tests ----

func TestValidate_OK(t *testing.T) {
	cfg := barWith(
		module("whoami", "/usr/bin/whoami", "text"),
		module("k8s", "/home/user/bin/k8s_status", "i3bar"),
		module("plain", "date", ""),
	)

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_NoModules(t *testing.T) {
	if err := Validate(barWith()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestValidate_MissingScriptPath(t *testing.T) {
	err := Validate(barWith(module("m1", "", "text")))
	if !errors.Is(err, ErrMissingScriptPath) {
		t.Fatalf("expected ErrMissingScriptPath, got %v", err)
	}
}

func TestValidate_InvalidInputFormat(t *testing.T) {
	err := Validate(barWith(module("m1", "date", "xml")))
	if !errors.Is(err, ErrInvalidInputFormat) {
		t.Fatalf("expected ErrInvalidInputFormat, got %v", err)
	}
}

func TestValidate_DuplicateNames(t *testing.T) {
	err := Validate(barWith(
		module("m1", "date", "text"),
		module("m1", "uptime", "text"),
	))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestValidate_NegativeCacheTimeout(t *testing.T) {
	m := module("m1", "date", "text")
	v := -1.0
	m.CacheTimeout = &v

	if err := Validate(barWith(m)); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestValidate_NegativeButton(t *testing.T) {
	m := module("m1", "date", "text")
	m.NotifyButton = -2

	if err := Validate(barWith(m)); err == nil {
		t.Fatal("expected error, got nil")
	}
}
