// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=transport.go -destination=../mock/notify_transport_mock.go -package=mock

package notify

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/MKhiriev/go-pass-search/models"
)

// Transport sends one notification to the desktop.
type Transport interface {
	Send(ctx context.Context, n models.Notification) error
}

const (
	notificationsName      = "org.freedesktop.Notifications"
	notificationsPath      = dbus.ObjectPath("/org/freedesktop/Notifications")
	notificationsNotify    = notificationsName + ".Notify"
	notificationsHintTrans = "transient"
)

// DBusTransport calls org.freedesktop.Notifications.Notify.
type DBusTransport struct {
	obj dbus.BusObject
}

// NewDBusTransport returns a transport using the notification daemon on
// conn, normally the session bus.
func NewDBusTransport(conn *dbus.Conn) *DBusTransport {
	return &DBusTransport{obj: conn.Object(notificationsName, notificationsPath)}
}

// Send implements Transport.
func (t *DBusTransport) Send(ctx context.Context, n models.Notification) error {
	var id uint32
	call := t.obj.CallWithContext(ctx, notificationsNotify, 0, notifyArgs(n)...)
	if err := call.Store(&id); err != nil {
		return fmt.Errorf("%w: %w", ErrNotification, err)
	}
	return nil
}

// notifyArgs builds the Notify arguments: app_name, replaces_id, app_icon,
// summary, body, actions, hints, expire_timeout (ms).
func notifyArgs(n models.Notification) []any {
	hints := map[string]dbus.Variant{}
	if n.Transient {
		hints[notificationsHintTrans] = dbus.MakeVariant(true)
	}

	return []any{
		n.AppName,
		uint32(0),
		n.Icon,
		n.Summary,
		n.Body,
		[]string{},
		hints,
		int32(n.Timeout.Milliseconds()),
	}
}
