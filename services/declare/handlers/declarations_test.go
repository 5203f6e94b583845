// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianDeclare/services/declare/recaptcha"
	"github.com/AleutianAI/AleutianDeclare/services/declare/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubVerifier returns a fixed captcha result.
type stubVerifier struct {
	result recaptcha.Result
}

func (s stubVerifier) Verify(ctx context.Context, token, remoteIP string) recaptcha.Result {
	return s.result
}

func passVerifier() recaptcha.TokenVerifier {
	return stubVerifier{result: recaptcha.Result{Success: true, Bypass: true}}
}

func failVerifier() recaptcha.TokenVerifier {
	return stubVerifier{result: recaptcha.Result{
		Success: false, ErrorCodes: []string{"invalid-input-response"}}}
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func declarationRouter(st *store.Store, verifier recaptcha.TokenVerifier) *gin.Engine {
	router := gin.New()
	router.POST("/v1/declarations", CreateDeclaration(st, verifier))
	router.PUT("/v1/declarations/:id", UpdateDeclaration(st))
	router.GET("/v1/declarations/:id", GetDeclaration(st))
	router.GET("/v1/catalog", GetCatalog())
	return router
}

func declarationBody() map[string]any {
	return map[string]any{
		"selected_checklist_ids": []string{"q1"},
		"usage_types":            []string{"draft"},
		"ai_tool_name":           "ChatGPT",
		"ai_tool_version":        "GPT-4",
		"ai_tool_provider":       "OpenAI",
		"ai_tool_date_month":     3,
		"ai_tool_date_year":      2024,
		"specific_purpose":       "Generación del borrador inicial de la introducción.",
		"prompts": []map[string]string{
			{"description": "Redacta una introducción sobre mi tema de tesis"},
		},
		"content_use_modes":  []string{"Reescrito sustancialmente"},
		"human_review_level": 4,
		"reviewer_name":      "Dra. Pérez",
		"reviewer_role":      "Directora",
		"license":            "CC BY 4.0",
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateDeclaration(t *testing.T) {
	t.Run("final declaration is sealed", func(t *testing.T) {
		st := newTestStore(t)
		router := declarationRouter(st, passVerifier())

		w := doJSON(t, router, http.MethodPost, "/v1/declarations", declarationBody())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp struct {
			ID             string          `json:"id"`
			ValidationHash string          `json:"validation_hash"`
			IsDraft        bool            `json:"is_draft"`
			Text           string          `json:"text"`
			Declaration    json.RawMessage `json:"declaration"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.ID, 8)
		assert.Len(t, resp.ValidationHash, 16)
		assert.False(t, resp.IsDraft)
		assert.Contains(t, resp.Text, "Hash de Validación: "+resp.ValidationHash)

		stored, err := st.GetDeclaration(resp.ID)
		require.NoError(t, err)
		assert.Equal(t, resp.ValidationHash, stored.ValidationHash)
	})

	t.Run("draft skips captcha and hashing", func(t *testing.T) {
		st := newTestStore(t)
		router := declarationRouter(st, failVerifier())

		body := map[string]any{"is_draft": true}
		w := doJSON(t, router, http.MethodPost, "/v1/declarations", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["is_draft"])
		assert.Equal(t, "pending", resp["validation_hash"])
	})

	t.Run("captcha failure rejects final submissions", func(t *testing.T) {
		st := newTestStore(t)
		router := declarationRouter(st, failVerifier())

		w := doJSON(t, router, http.MethodPost, "/v1/declarations", declarationBody())
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("validation failure yields 400", func(t *testing.T) {
		st := newTestStore(t)
		router := declarationRouter(st, passVerifier())

		body := declarationBody()
		body["human_review_level"] = 9
		w := doJSON(t, router, http.MethodPost, "/v1/declarations", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "human_review_level")
	})

	t.Run("malformed json yields 400", func(t *testing.T) {
		st := newTestStore(t)
		router := declarationRouter(st, passVerifier())

		req, _ := http.NewRequest(http.MethodPost, "/v1/declarations",
			bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateDeclaration(t *testing.T) {
	createDraft := func(t *testing.T, router *gin.Engine) string {
		w := doJSON(t, router, http.MethodPost, "/v1/declarations",
			map[string]any{"is_draft": true})
		require.Equal(t, http.StatusCreated, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp["id"].(string)
	}

	t.Run("draft can be updated", func(t *testing.T) {
		st := newTestStore(t)
		router := declarationRouter(st, passVerifier())
		id := createDraft(t, router)

		body := declarationBody()
		body["is_draft"] = true
		w := doJSON(t, router, http.MethodPut, "/v1/declarations/"+id, body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		stored, err := st.GetDeclaration(id)
		require.NoError(t, err)
		assert.Equal(t, "ChatGPT", stored.AIToolName)
		assert.True(t, stored.IsDraft)
		assert.Empty(t, stored.ValidationHash)
	})

	t.Run("finalizing a draft seals it", func(t *testing.T) {
		st := newTestStore(t)
		router := declarationRouter(st, passVerifier())
		id := createDraft(t, router)

		w := doJSON(t, router, http.MethodPut, "/v1/declarations/"+id, declarationBody())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		stored, err := st.GetDeclaration(id)
		require.NoError(t, err)
		assert.Len(t, stored.ValidationHash, 16)
	})

	t.Run("finalized declaration is immutable", func(t *testing.T) {
		st := newTestStore(t)
		router := declarationRouter(st, passVerifier())
		id := createDraft(t, router)

		w := doJSON(t, router, http.MethodPut, "/v1/declarations/"+id, declarationBody())
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodPut, "/v1/declarations/"+id, declarationBody())
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		st := newTestStore(t)
		router := declarationRouter(st, passVerifier())
		w := doJSON(t, router, http.MethodPut, "/v1/declarations/NOPE0000", declarationBody())
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetDeclaration(t *testing.T) {
	st := newTestStore(t)
	router := declarationRouter(st, passVerifier())

	w := doJSON(t, router, http.MethodPost, "/v1/declarations", declarationBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)

	t.Run("spanish by default", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/v1/declarations/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "DECLARACIÓN DE USO DE INTELIGENCIA ARTIFICIAL")
	})

	t.Run("english via lang query", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/v1/declarations/"+id+"?lang=en", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ARTIFICIAL INTELLIGENCE USAGE DECLARATION")
	})

	t.Run("unknown id yields 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/v1/declarations/MISSING1", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetCatalog(t *testing.T) {
	st := newTestStore(t)
	router := declarationRouter(st, passVerifier())

	w := doJSON(t, router, http.MethodGet, "/v1/catalog?lang=en", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "en", resp["lang"])
	assert.Len(t, resp["usage_types"], 9)
	assert.Len(t, resp["content_modes"], 6)
	assert.Len(t, resp["review_levels"], 6)
	assert.Len(t, resp["checklist"], 7)
	assert.Len(t, resp["licenses"], 7)
	assert.NotEmpty(t, resp["presets"])
	assert.NotEmpty(t, resp["glossary"])
	assert.NotEmpty(t, resp["ai_tools"])
	assert.Len(t, resp["step_labels"], 4)
	assert.Len(t, resp["months_es"], 12)
	assert.NotEmpty(t, resp["field_limits"])
}
