// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package recaptcha verifies reCAPTCHA tokens against the Google
// siteverify endpoint. Verification fails closed: a transport error is
// reported as a failed check, never as success.
package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the Google siteverify URL. Tests point the verifier
// at an httptest server instead.
const DefaultEndpoint = "https://www.google.com/recaptcha/api/siteverify"

const verifyTimeout = 5 * time.Second

// TokenVerifier checks a client-supplied captcha token. Handlers depend
// on this interface so tests can substitute a stub.
type TokenVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) Result
}

// Result carries the outcome of a token check. Bypass is set when
// verification is disabled and the token was waved through.
type Result struct {
	Success      bool      `json:"success"`
	Bypass       bool      `json:"bypass,omitempty"`
	ChallengeTS  time.Time `json:"challenge_ts,omitzero"`
	Hostname     string    `json:"hostname,omitempty"`
	ErrorCodes   []string  `json:"error_codes,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

// Verifier validates tokens against a siteverify endpoint.
type Verifier struct {
	secret   string
	enabled  bool
	endpoint string
	client   *http.Client
}

// New builds a Verifier. With enabled false or an empty secret every
// token passes with the bypass marker set.
func New(secret string, enabled bool) *Verifier {
	return &Verifier{
		secret:   secret,
		enabled:  enabled,
		endpoint: DefaultEndpoint,
		client:   &http.Client{Timeout: verifyTimeout},
	}
}

// WithEndpoint overrides the siteverify URL. Used by tests.
func (v *Verifier) WithEndpoint(endpoint string) *Verifier {
	v.endpoint = endpoint
	return v
}

// Verify checks a token with the siteverify endpoint. An empty token is
// rejected outright; any transport or decode failure yields a failed
// Result with a connection-error code.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) Result {
	if !v.enabled || v.secret == "" {
		return Result{Success: true, Bypass: true}
	}
	if token == "" {
		return Result{Success: false, ErrorCodes: []string{"missing-input-response"}}
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return connectionError(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return connectionError(err)
	}
	defer resp.Body.Close()

	var body struct {
		Success     bool      `json:"success"`
		ChallengeTS time.Time `json:"challenge_ts"`
		Hostname    string    `json:"hostname"`
		ErrorCodes  []string  `json:"error-codes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return connectionError(err)
	}

	return Result{
		Success:     body.Success,
		ChallengeTS: body.ChallengeTS,
		Hostname:    body.Hostname,
		ErrorCodes:  body.ErrorCodes,
	}
}

func connectionError(err error) Result {
	return Result{
		Success:      false,
		ErrorCodes:   []string{"connection-error"},
		ErrorMessage: fmt.Sprintf("siteverify request failed: %v", err),
	}
}
