// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secret holds decrypted passwords and generated one-time codes in
// scoped buffers.
//
// A [Buffer] is backed by an anonymous mmap region outside the Go heap, so the
// garbage collector never copies it. Where the process is allowed to, the
// region is also locked into RAM and excluded from core dumps. Close
// zero-fills and unmaps the region; every owner must Close the buffers it
// receives on every exit path.
//
// Strings are immutable in Go, so [Buffer.String] necessarily makes a heap
// copy. Call it only at API boundaries that require a string (clipboard
// writes, URL parsing).
package secret
