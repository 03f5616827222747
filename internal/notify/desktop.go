// internal/notify/desktop.go
package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notifyService   = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyInterface = "org.freedesktop.Notifications.Notify"
)

// Desktop sends notifications over the D-Bus session bus.
type Desktop struct {
	app  string
	conn *dbus.Conn
}

// NewDesktop connects to the session bus. Fails when no session bus is
// reachable; callers should fall back to Nop.
func NewDesktop(app string) (*Desktop, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("notify: session bus: %w", err)
	}
	return &Desktop{app: app, conn: conn}, nil
}

func (d *Desktop) Notify(text string) error {
	obj := d.conn.Object(notifyService, notifyPath)
	call := obj.Call(notifyInterface, 0,
		d.app,              // app_name
		uint32(0),          // replaces_id
		"",                 // app_icon
		d.app,              // summary
		text,               // body
		[]string{},         // actions
		map[string]dbus.Variant{}, // hints
		int32(-1),          // expire_timeout: server default
	)
	if call.Err != nil {
		return fmt.Errorf("notify: %w", call.Err)
	}
	return nil
}

func (d *Desktop) Close() error {
	return d.conn.Close()
}
