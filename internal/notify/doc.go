// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify delivers transient desktop notifications.
//
// A [Sink] is best effort: delivery is bounded by a timeout and failures are
// logged and dropped, so reporting an outcome can never fail an activation.
// [DBusTransport] speaks org.freedesktop.Notifications on the session bus.
package notify
