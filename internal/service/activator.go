// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-pass-search/internal/app"
	"github.com/MKhiriev/go-pass-search/internal/logger"
	"github.com/MKhiriev/go-pass-search/internal/secret"
	"github.com/MKhiriev/go-pass-search/internal/store"
	"github.com/MKhiriev/go-pass-search/internal/utils"
	"github.com/MKhiriev/go-pass-search/models"
)

// outcome is the notification reporting one activation.
type outcome struct {
	summary string
	body    string
}

func notFound() outcome {
	return outcome{summary: app.MsgNotFoundSummary, body: app.MsgNotFoundBody}
}

func failure(summary string, err error) outcome {
	return outcome{summary: summary, body: err.Error()}
}

// valueFailure reports a decrypted entry that yields nothing to copy.
func valueFailure(mode models.Mode, err error) outcome {
	if mode == models.ModeOTP {
		return failure(app.MsgOtpErrorSummary, err)
	}
	return failure(app.MsgPasswordErrorSummary, err)
}

func copied(id string, mode models.Mode) outcome {
	if mode == models.ModeOTP {
		return outcome{summary: id, body: app.MsgOtpCopied}
	}
	return outcome{summary: id, body: app.MsgPasswordCopied}
}

type activationController struct {
	vault      SecretVault
	extractor  OtpExtractor
	clipboard  ClipboardSession
	sink       NotificationSink
	clearDelay time.Duration
	ids        *utils.UUIDGenerator

	logger *logger.Logger
}

// NewActivationController returns an ActivationController copying values
// that are cleared from the clipboard after clearDelay.
func NewActivationController(
	vault SecretVault,
	extractor OtpExtractor,
	clipboard ClipboardSession,
	sink NotificationSink,
	clearDelay time.Duration,
	logger *logger.Logger,
) ActivationController {
	return &activationController{
		vault:      vault,
		extractor:  extractor,
		clipboard:  clipboard,
		sink:       sink,
		clearDelay: clearDelay,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// Activate implements ActivationController. Every secret buffer is closed
// before the notification is sent.
func (a *activationController) Activate(ctx context.Context, id string, terms []string, timestamp uint32) {
	log := a.logger.WithActivation(a.ids.Generate(), id)
	ctx = log.WithContext(ctx)

	query := models.ParseQuery(terms)
	log.Info().Stringer("mode", query.Mode).Uint32("timestamp", timestamp).Msg("activating result")

	result := a.deliverRecovered(ctx, log, id, query.Mode)

	a.sink.Notify(ctx, result.summary, result.body)
}

// deliverRecovered turns a panic in deliver into a failure outcome so the
// activation still ends in a notification. The buffers deliver opened are
// closed by its deferred calls while the panic unwinds.
func (a *activationController) deliverRecovered(ctx context.Context, log *logger.Logger, id string, mode models.Mode) (result outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("activation panicked")
			result = outcome{summary: app.MsgReadErrorSummary, body: app.MsgUnexpectedErrorBody}
		}
	}()

	return a.deliver(ctx, log, id, mode)
}

func (a *activationController) deliver(ctx context.Context, log *logger.Logger, id string, mode models.Mode) outcome {
	entries, err := a.vault.ListEntries(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to enumerate password store")
		return notFound()
	}

	entry, ok := models.FindEntry(entries, id)
	if !ok {
		log.Info().Msg("entry not found")
		return notFound()
	}

	material, err := a.vault.ReadSecret(ctx, entry.Name)
	if err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			log.Info().Msg("entry removed before it could be read")
			return notFound()
		}
		log.Error().Err(err).Msg("failed to read entry")
		return failure(app.MsgReadErrorSummary, err)
	}
	defer closeSecret(log, material)

	value, err := a.valueFor(material, mode)
	if err != nil {
		log.Error().Err(err).Msg("failed to produce value")
		return valueFailure(mode, err)
	}
	defer closeSecret(log, value)

	ticket, err := a.clipboard.CopyWithExpiry(value.String(), a.clearDelay)
	if err != nil {
		log.Error().Err(err).Msg("failed to copy to clipboard")
		return failure(app.MsgClipboardErrorSummary, err)
	}

	log.Info().
		Uint64("generation", ticket.Generation).
		Time("clear_at", ticket.Deadline()).
		Msg("value copied")

	return copied(id, mode)
}

// valueFor returns a new buffer with what goes on the clipboard: the code
// in OTP mode, the first line of the entry otherwise.
func (a *activationController) valueFor(material *secret.Buffer, mode models.Mode) (*secret.Buffer, error) {
	if mode == models.ModeOTP {
		return a.extractor.Extract(material)
	}
	return material.FirstLine()
}

func closeSecret(log *logger.Logger, b *secret.Buffer) {
	if err := b.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to release secret buffer")
	}
}
