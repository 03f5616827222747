// internal/notify/notify.go
package notify

// Notifier delivers a user-facing notification.
type Notifier interface {
	Notify(text string) error
}

// Nop discards notifications. Used when no notification transport
// is available so click handling stays side-effect free.
type Nop struct{}

func (Nop) Notify(string) error { return nil }
