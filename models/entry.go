// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Entry is one credential in the password store.
type Entry struct {
	// Name is the unique identifier of the entry: its path relative to the
	// store root, '/'-separated, without the encrypted-file suffix
	// (e.g. "github.com" or "work/gitlab.com"). It is both the search
	// result id and its display label.
	Name string

	// Path is the location of the encrypted payload on disk.
	Path string
}

// FindEntry returns the entry whose Name equals name exactly.
func FindEntry(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
