// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secret

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sys/unix"
)

// Buffer is a zero-on-close container for secret material. A Buffer must not
// be copied after creation. Reading from a closed Buffer panics.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	length int
	mapped bool
	locked bool
	closed bool
}

// New allocates a zero-filled buffer of the given size. A size of zero yields
// an empty buffer that owns no memory.
func New(size int) (*Buffer, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if size == 0 {
		return &Buffer{}, nil
	}

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("secret: mmap failed: %w", err)
	}

	b := &Buffer{data: data, length: size, mapped: true}

	// RLIMIT_MEMLOCK is often tiny inside desktop sessions; an unlocked
	// buffer is still zeroed on Close.
	if err := unix.Mlock(data); err == nil {
		b.locked = true
	}
	_ = unix.Madvise(data, unix.MADV_DONTDUMP)

	return b, nil
}

// NewFromBytes copies source into a new buffer and zeroes source in place.
func NewFromBytes(source []byte) (*Buffer, error) {
	b, err := New(len(source))
	if err != nil {
		Zero(source)
		return nil, err
	}

	copy(b.data, source)
	Zero(source)

	return b, nil
}

// NewFromReader reads at most limit bytes from r straight into a new buffer.
// The buffer's length is the number of bytes actually read. Reading more
// than limit bytes is an error.
func NewFromReader(r io.Reader, limit int) (*Buffer, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit %d", ErrInvalidSize, limit)
	}

	// one extra byte detects oversized input
	b, err := New(limit + 1)
	if err != nil {
		return nil, err
	}

	n, err := io.ReadFull(r, b.data)
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
	case err != nil:
		b.Close()
		return nil, fmt.Errorf("secret: read: %w", err)
	default:
		b.Close()
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}

	b.length = n
	return b, nil
}

// Bytes returns the secret data. The slice aliases the buffer's memory and
// must not outlive the Buffer.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.mustBeOpen()
	return b.data[:b.length]
}

// String returns a heap copy of the secret data.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.mustBeOpen()
	return string(b.data[:b.length])
}

// Len returns the size of the secret data.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.length
}

// Locked reports whether the memory is pinned in RAM.
func (b *Buffer) Locked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.locked
}

// Closed reports whether Close has been called.
func (b *Buffer) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.closed
}

// Slice copies data[start:end] into a new buffer owned by the caller.
func (b *Buffer) Slice(start, end int) (*Buffer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.mustBeOpen()
	if start < 0 || end > b.length || start > end {
		return nil, fmt.Errorf("%w: [%d:%d] of %d", ErrOutOfRange, start, end, b.length)
	}

	out, err := New(end - start)
	if err != nil {
		return nil, err
	}
	copy(out.data, b.data[start:end])
	return out, nil
}

// FirstLine copies the content up to the first line break (CRLF aware) into
// a new buffer. A buffer without a line break is copied whole.
func (b *Buffer) FirstLine() (*Buffer, error) {
	data := b.Bytes()

	end := bytes.IndexByte(data, '\n')
	if end < 0 {
		end = len(data)
	}
	if end > 0 && data[end-1] == '\r' {
		end--
	}

	return b.Slice(0, end)
}

// Close zeroes the buffer and releases its memory. Close is idempotent.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	Zero(b.data)

	var err error
	if b.locked {
		if unlockErr := unix.Munlock(b.data); unlockErr != nil {
			err = fmt.Errorf("secret: munlock failed: %w", unlockErr)
		}
	}
	if b.mapped {
		if unmapErr := unix.Munmap(b.data); unmapErr != nil && err == nil {
			err = fmt.Errorf("secret: munmap failed: %w", unmapErr)
		}
	}

	b.data = nil
	b.length = 0
	return err
}

func (b *Buffer) mustBeOpen() {
	if b.closed {
		panic("secret: read from closed buffer")
	}
}

// Zero overwrites data with zero bytes.
func Zero(data []byte) {
	clear(data)
}
