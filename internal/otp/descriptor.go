// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package otp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	scheme   = "otpauth"
	typeTOTP = "totp"

	defaultDigits = 6
	defaultPeriod = 30
	maxDigits     = 10
)

// Supported hash algorithm names as they appear in the algorithm parameter.
const (
	AlgorithmSHA1   = "SHA1"
	AlgorithmSHA256 = "SHA256"
	AlgorithmSHA512 = "SHA512"
)

// Descriptor is a parsed TOTP provisioning URL. The shared secret stays
// inside the parsed key and is only read when a code is generated.
type Descriptor struct {
	Issuer    string
	Account   string
	Algorithm string
	Digits    int
	Period    uint

	key *otp.Key
}

// ParseDescriptor parses raw as an otpauth://totp/ URL. Scheme, type and a
// non-empty secret parameter are required; digits and period fall back to 6
// and 30 when absent. The algorithm is recorded as given and checked only
// by [Descriptor.Code].
func ParseDescriptor(raw string) (*Descriptor, error) {
	key, err := otp.NewKeyFromURL(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOtpURL, err)
	}

	u, err := url.Parse(key.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOtpURL, err)
	}
	if u.Scheme != scheme {
		return nil, fmt.Errorf("%w: unexpected scheme %q", ErrInvalidOtpURL, u.Scheme)
	}
	if key.Type() != typeTOTP {
		return nil, fmt.Errorf("%w: unsupported type %q", ErrInvalidOtpURL, key.Type())
	}

	q := u.Query()
	if q.Get("secret") == "" {
		return nil, fmt.Errorf("%w: missing secret", ErrInvalidOtpURL)
	}

	digits := defaultDigits
	if v := q.Get("digits"); v != "" {
		digits, err = strconv.Atoi(v)
		if err != nil || digits < 1 || digits > maxDigits {
			return nil, fmt.Errorf("%w: digits %q", ErrInvalidOtpURL, v)
		}
	}

	period := uint(defaultPeriod)
	if v := q.Get("period"); v != "" {
		p, err := strconv.ParseUint(v, 10, 32)
		if err != nil || p == 0 {
			return nil, fmt.Errorf("%w: period %q", ErrInvalidOtpURL, v)
		}
		period = uint(p)
	}

	algorithm := strings.ToUpper(q.Get("algorithm"))
	if algorithm == "" {
		algorithm = AlgorithmSHA1
	}

	return &Descriptor{
		Issuer:    key.Issuer(),
		Account:   key.AccountName(),
		Algorithm: algorithm,
		Digits:    digits,
		Period:    period,
		key:       key,
	}, nil
}

// Code returns the code valid at t.
func (d *Descriptor) Code(t time.Time) (string, error) {
	algorithm, err := hashAlgorithm(d.Algorithm)
	if err != nil {
		return "", err
	}

	code, err := totp.GenerateCodeCustom(d.key.Secret(), t, totp.ValidateOpts{
		Period:    d.Period,
		Digits:    otp.Digits(d.Digits),
		Algorithm: algorithm,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCodeGeneration, err)
	}

	return code, nil
}

func hashAlgorithm(name string) (otp.Algorithm, error) {
	switch name {
	case AlgorithmSHA1:
		return otp.AlgorithmSHA1, nil
	case AlgorithmSHA256:
		return otp.AlgorithmSHA256, nil
	case AlgorithmSHA512:
		return otp.AlgorithmSHA512, nil
	default:
		return 0, fmt.Errorf("%w: unsupported algorithm %q", ErrCodeGeneration, name)
	}
}
