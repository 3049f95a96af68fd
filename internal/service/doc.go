// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the secret-delivery pipeline behind the search
// surfaces.
//
// A [CredentialMatcher] filters the store by the search terms. An
// [ActivationController] handles a selected result: it reads the entry,
// copies the password or a freshly generated TOTP code to the clipboard,
// closes every secret buffer and sends exactly one notification. A
// [SearchService] puts both behind the three calls a search host makes and
// runs each activation as a tracked background task.
package service
