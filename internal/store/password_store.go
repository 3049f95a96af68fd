// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"filippo.io/age"
	"filippo.io/age/armor"

	"github.com/MKhiriev/go-pass-search/internal/logger"
	"github.com/MKhiriev/go-pass-search/internal/secret"
	"github.com/MKhiriev/go-pass-search/internal/validators"
	"github.com/MKhiriev/go-pass-search/models"
)

const (
	// EntrySuffix marks encrypted entry files.
	EntrySuffix = ".age"

	// MaxSecretSize caps the plaintext of one entry.
	MaxSecretSize = 64 << 10
)

// PasswordStore is the age-backed store rooted at a directory.
type PasswordStore struct {
	dir            string
	identitiesFile string
	index          *Index
	validator      validators.Validator
	logger         *logger.Logger
}

// NewPasswordStore returns a store rooted at dir that decrypts with the
// identities in identitiesFile. With cache set, enumerations are kept in an
// Index until it is invalidated.
//
// A symlinked dir is resolved once here, since neither the walk nor the
// watcher descend through a symlinked root.
func NewPasswordStore(dir, identitiesFile string, cache bool, log *logger.Logger) *PasswordStore {
	p := &PasswordStore{
		dir:            resolveRoot(dir),
		identitiesFile: identitiesFile,
		validator:      validators.NewEntryValidator(),
		logger:         log,
	}
	p.index = NewIndex(p.walk, cache)
	return p
}

// resolveRoot follows symlinks in dir. A dir that cannot be resolved yet,
// for example one that does not exist, is used as given.
func resolveRoot(dir string) string {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return filepath.Clean(dir)
	}
	return resolved
}

// Dir returns the resolved store root.
func (p *PasswordStore) Dir() string { return p.dir }

// Index returns the entry cache.
func (p *PasswordStore) Index() *Index { return p.index }

// ListEntries returns every entry in lexical path order.
func (p *PasswordStore) ListEntries(ctx context.Context) ([]models.Entry, error) {
	return p.index.Entries(ctx)
}

// ReadSecret decrypts the entry called name into a buffer owned by the
// caller.
func (p *PasswordStore) ReadSecret(ctx context.Context, name string) (*secret.Buffer, error) {
	path, err := p.entryPath(ctx, name)
	if err != nil {
		return nil, err
	}

	identities, err := p.loadIdentities()
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	defer f.Close()

	r, err := age.Decrypt(dearmor(f), identities...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	buf, err := secret.NewFromReader(r, MaxSecretSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	p.logger.Debug().Str("entry", name).Msg("entry decrypted")
	return buf, nil
}

// entryPath maps a name to its file. Names that could not have come from
// an enumeration are not found.
func (p *PasswordStore) entryPath(ctx context.Context, name string) (string, error) {
	if err := p.validator.Validate(ctx, name); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEntryNotFound, err)
	}

	return filepath.Join(p.dir, filepath.FromSlash(name)+EntrySuffix), nil
}

func (p *PasswordStore) loadIdentities() ([]age.Identity, error) {
	f, err := os.Open(p.identitiesFile)
	if err != nil {
		return nil, fmt.Errorf("%w: identities: %w", ErrDecrypt, err)
	}
	defer f.Close()

	identities, err := age.ParseIdentities(f)
	if err != nil {
		return nil, fmt.Errorf("%w: identities: %w", ErrDecrypt, err)
	}

	return identities, nil
}

// walk enumerates the store. filepath.WalkDir visits in lexical order.
func (p *PasswordStore) walk(ctx context.Context) ([]models.Entry, error) {
	entries := make([]models.Entry, 0)

	err := filepath.WalkDir(p.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if path != p.dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), EntrySuffix) {
			return nil
		}

		rel, err := filepath.Rel(p.dir, path)
		if err != nil {
			return err
		}
		entry := models.Entry{
			Name: strings.TrimSuffix(filepath.ToSlash(rel), EntrySuffix),
			Path: path,
		}
		if err := p.validator.Validate(ctx, entry); err != nil {
			p.logger.Debug().Err(err).Str("path", path).Msg("skipping entry")
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	p.logger.Debug().Int("entries", len(entries)).Msg("store enumerated")
	return entries, nil
}

// dearmor unwraps ASCII-armored files and passes binary ones through.
func dearmor(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(armor.Header))
	if string(head) == armor.Header {
		return armor.NewReader(br)
	}
	return br
}
