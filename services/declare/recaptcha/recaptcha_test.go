// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package recaptcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyBypass(t *testing.T) {
	t.Run("disabled verifier passes everything", func(t *testing.T) {
		v := New("secret", false)
		result := v.Verify(context.Background(), "", "")
		assert.True(t, result.Success)
		assert.True(t, result.Bypass)
	})

	t.Run("empty secret passes everything", func(t *testing.T) {
		v := New("", true)
		result := v.Verify(context.Background(), "any-token", "")
		assert.True(t, result.Success)
		assert.True(t, result.Bypass)
	})
}

func TestVerifyMissingToken(t *testing.T) {
	v := New("secret", true)
	result := v.Verify(context.Background(), "", "")
	assert.False(t, result.Success)
	assert.False(t, result.Bypass)
	assert.Equal(t, []string{"missing-input-response"}, result.ErrorCodes)
}

func TestVerifyAgainstEndpoint(t *testing.T) {
	t.Run("success response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "secret", r.PostFormValue("secret"))
			assert.Equal(t, "tok-123", r.PostFormValue("response"))
			assert.Equal(t, "203.0.113.7", r.PostFormValue("remoteip"))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success":  true,
				"hostname": "declare.example.org",
			})
		}))
		defer srv.Close()

		v := New("secret", true).WithEndpoint(srv.URL)
		result := v.Verify(context.Background(), "tok-123", "203.0.113.7")
		assert.True(t, result.Success)
		assert.False(t, result.Bypass)
		assert.Equal(t, "declare.example.org", result.Hostname)
	})

	t.Run("rejection response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success":     false,
				"error-codes": []string{"invalid-input-response"},
			})
		}))
		defer srv.Close()

		v := New("secret", true).WithEndpoint(srv.URL)
		result := v.Verify(context.Background(), "bad-token", "")
		assert.False(t, result.Success)
		assert.Equal(t, []string{"invalid-input-response"}, result.ErrorCodes)
	})

	t.Run("transport failure fails closed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		v := New("secret", true).WithEndpoint(srv.URL)
		result := v.Verify(context.Background(), "tok-123", "")
		assert.False(t, result.Success)
		assert.Equal(t, []string{"connection-error"}, result.ErrorCodes)
		assert.NotEmpty(t, result.ErrorMessage)
	})

	t.Run("malformed body fails closed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		v := New("secret", true).WithEndpoint(srv.URL)
		result := v.Verify(context.Background(), "tok-123", "")
		assert.False(t, result.Success)
		assert.Equal(t, []string{"connection-error"}, result.ErrorCodes)
	})
}
