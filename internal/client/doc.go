// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the application runtimes.
//
// App serves the search provider on the session bus. SearchApp runs the
// terminal search surface. Both wire the same store, clipboard session,
// notification sink and search service, and run them together with the
// store watcher until a signal arrives.
package client
