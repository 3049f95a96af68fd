// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import "errors"

// ErrNotification wraps delivery failures of a Transport.
var ErrNotification = errors.New("notification error")
