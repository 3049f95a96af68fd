// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=writer.go -destination=../mock/clipboard_writer_mock.go -package=mock

package clipboard

import (
	"github.com/atotto/clipboard"
)

// Writer replaces the clipboard content.
type Writer interface {
	WriteAll(text string) error
}

// System returns the Writer backed by the OS clipboard (xclip, xsel,
// wl-copy or termux on Linux).
func System() Writer {
	return systemWriter{}
}

type systemWriter struct{}

func (systemWriter) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard utility was found on this system.
func Available() bool {
	return !clipboard.Unsupported
}
