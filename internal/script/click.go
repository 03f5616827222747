// internal/script/click.go
package script

import "github.com/jpicht/py3status/internal/protocol"

// HandleClick reacts to one pointer event. Clicks are independent of
// refresh cycles and of each other; the only state they read is the
// last successful raw output.
func (a *Adapter) HandleClick(ev protocol.ClickEvent) error {
	if a.cfg.Mode == ModeI3bar {
		return nil
	}
	if a.cfg.NotifyButton == 0 || ev.Button != a.cfg.NotifyButton {
		return nil
	}

	err := a.notifier.Notify(a.LastOutput())

	// Keep the notification visible: without this the next scheduled
	// cycle would immediately replace it.
	a.SuppressNextRefresh()

	return err
}

// LastOutput returns the raw output of the last successful execution,
// or the empty string when no cycle has succeeded yet.
func (a *Adapter) LastOutput() string {
	if v, ok := a.last.Load().(string); ok {
		return v
	}
	return ""
}

// SuppressNextRefresh marks the next scheduled refresh to be skipped.
// Advisory only: an in-flight command is not cancelled.
func (a *Adapter) SuppressNextRefresh() {
	a.suppress.Store(true)
}

// SuppressionPending reports whether the next refresh will be skipped.
func (a *Adapter) SuppressionPending() bool {
	return a.suppress.Load()
}
