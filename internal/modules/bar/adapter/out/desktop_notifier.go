package out

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// DesktopNotifier raises freedesktop notifications over the session bus
// when a session runs to completion.
type DesktopNotifier struct {
	conn *dbus.Conn
}

func NewDesktopNotifier() (*DesktopNotifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	return &DesktopNotifier{conn: conn}, nil
}

func (n *DesktopNotifier) Close() error {
	return n.conn.Close()
}

func (n *DesktopNotifier) Notify(summary, body string) error {
	obj := n.conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		"pombar",             // app_name
		uint32(0),            // replaces_id
		"dialog-information", // app_icon
		summary,
		body,
		[]string{}, // actions
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(byte(1)),
		},
		int32(10000), // expire_timeout ms
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}
