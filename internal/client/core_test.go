// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"filippo.io/age"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-search/internal/app"
	"github.com/MKhiriev/go-pass-search/internal/clock"
	"github.com/MKhiriev/go-pass-search/internal/config"
	"github.com/MKhiriev/go-pass-search/internal/logger"
	"github.com/MKhiriev/go-pass-search/internal/mock"
	"github.com/MKhiriev/go-pass-search/internal/workers"
	"github.com/MKhiriev/go-pass-search/models"
)

const testOtpURL = "otpauth://totp/Bank:me?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=Bank"

// notifications records what the sink delivers.
type notifications struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (n *notifications) Send(_ context.Context, note models.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.sent = append(n.sent, note)
	return nil
}

func (n *notifications) all() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]models.Notification(nil), n.sent...)
}

func writeEntry(t *testing.T, dir string, recipient age.Recipient, name, plaintext string) {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name)+".age")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w, err := age.Encrypt(f, recipient)
	require.NoError(t, err)
	_, err = io.WriteString(w, plaintext)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func newTestConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()

	identity, err := age.GenerateX25519Identity()
	require.NoError(t, err)

	root := t.TempDir()
	dir := filepath.Join(root, "store")
	identities := filepath.Join(root, "identities")
	require.NoError(t, os.WriteFile(identities, []byte(identity.String()+"\n"), 0o600))

	writeEntry(t, dir, identity.Recipient(), "mail/work", "s3cret\nuser: me\n")
	writeEntry(t, dir, identity.Recipient(), "bank", "hunter2\n"+testOtpURL+"\n")

	return &config.StructuredConfig{
		Home: root,
		Store: config.Store{
			Dir:            dir,
			IdentitiesFile: identities,
			NoWatch:        true,
		},
		Clipboard: config.Clipboard{ClearDelay: 40 * time.Second},
		Notify: config.Notify{
			AppName:     "Pass",
			Icon:        "dialog-password",
			Timeout:     4 * time.Second,
			SendTimeout: time.Second,
		},
	}
}

func newTestCore(t *testing.T) (*core, *mock.MockWriter, *notifications, *clock.FakeClock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	writer := mock.NewMockWriter(ctrl)
	notes := &notifications{}
	clk := clock.Fake(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))

	return newCore(newTestConfig(t), writer, notes, clk, logger.Nop()), writer, notes, clk
}

func TestCore_PasswordActivation(t *testing.T) {
	c, writer, notes, clk := newTestCore(t)
	ctx := context.Background()
	search := c.services.Search

	ids := search.InitialResultSet(ctx, []string{"mail"})
	require.Equal(t, []string{"mail/work"}, ids)
	assert.Equal(t, []models.ResultMeta{{ID: "mail/work", Name: "mail/work"}}, search.ResultMetas(ctx, ids))

	writer.EXPECT().WriteAll("s3cret").Return(nil)
	search.ActivateResult(ctx, "mail/work", []string{"mail"}, 0)
	search.Wait()

	sent := notes.all()
	require.Len(t, sent, 1)
	assert.Equal(t, models.Notification{
		AppName:   "Pass",
		Icon:      "dialog-password",
		Summary:   "mail/work",
		Body:      app.MsgPasswordCopied,
		Transient: true,
		Timeout:   4 * time.Second,
	}, sent[0])

	writer.EXPECT().WriteAll("").Return(nil)
	clk.Advance(40 * time.Second)
	require.NoError(t, c.close())
}

func TestCore_OtpActivation(t *testing.T) {
	c, writer, notes, _ := newTestCore(t)
	ctx := context.Background()
	search := c.services.Search

	ids := search.InitialResultSet(ctx, []string{"otp", "ban"})
	require.Equal(t, []string{"bank"}, ids)

	var code string
	writer.EXPECT().WriteAll(gomock.Any()).DoAndReturn(func(v string) error {
		code = v
		return nil
	})
	search.ActivateResult(ctx, "bank", []string{"otp", "ban"}, 0)
	search.Wait()

	assert.Regexp(t, `^[0-9]{6}$`, code)
	sent := notes.all()
	require.Len(t, sent, 1)
	assert.Equal(t, "bank", sent[0].Summary)
	assert.Equal(t, app.MsgOtpCopied, sent[0].Body)

	// Closing with a live copy clears it at once.
	writer.EXPECT().WriteAll("").Return(nil)
	require.NoError(t, c.close())
}

func TestCore_Workers(t *testing.T) {
	cfg := newTestConfig(t)
	clk := clock.Fake(time.Now())
	noop := workers.Func(func(context.Context) error { return nil })

	unwatched := newCore(cfg, nil, &notifications{}, clk, logger.Nop())
	assert.Nil(t, unwatched.watcher)
	assert.Equal(t, 1, unwatched.workers(noop).Len())

	cfg.Store.NoWatch = false
	watched := newCore(cfg, nil, &notifications{}, clk, logger.Nop())
	require.NotNil(t, watched.watcher)
	assert.Equal(t, 2, watched.workers(noop).Len())
}

func TestCore_WaitForClear(t *testing.T) {
	t.Run("nothing pending", func(t *testing.T) {
		c, _, _, _ := newTestCore(t)
		var out bytes.Buffer

		c.waitForClear(context.Background(), &out)
		assert.Empty(t, out.String())
	})

	t.Run("returns when the clear is due", func(t *testing.T) {
		c, writer, _, clk := newTestCore(t)

		writer.EXPECT().WriteAll("abc").Return(nil)
		_, err := c.session.CopyWithExpiry("abc", 0)
		require.NoError(t, err)
		clk.Advance(10 * time.Second)

		var out bytes.Buffer
		done := make(chan struct{})
		go func() {
			defer close(done)
			c.waitForClear(context.Background(), &out)
		}()
		require.Eventually(t, func() bool { return clk.PendingCount() == 2 }, time.Second, time.Millisecond)

		writer.EXPECT().WriteAll("").Return(nil)
		clk.Advance(30 * time.Second)
		<-done

		assert.Equal(t, "Clipboard will be cleared in 30s\n", out.String())
		require.NoError(t, c.close())
	})

	t.Run("interrupted", func(t *testing.T) {
		c, writer, _, _ := newTestCore(t)

		writer.EXPECT().WriteAll("abc").Return(nil)
		_, err := c.session.CopyWithExpiry("abc", 0)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c.waitForClear(ctx, io.Discard)

		writer.EXPECT().WriteAll("").Return(nil)
		require.NoError(t, c.close())
	})
}
