// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store reads a passage-style password store: a directory tree of
// age-encrypted files, one per entry, decrypted with the identities listed
// in an identities file.
//
// An entry's name is its path relative to the store root with the ".age"
// suffix removed, using '/' as separator. Hidden files and directories
// (".git", ".age-recipients") are not entries.
//
// Enumeration results are cached in an [Index]. A [Watcher] invalidates the
// index when the tree changes.
package store
