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
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/AleutianDeclare/services/declare/datatypes"
	"github.com/AleutianAI/AleutianDeclare/services/declare/hashing"
	"github.com/AleutianAI/AleutianDeclare/services/declare/i18n"
	"github.com/AleutianAI/AleutianDeclare/services/declare/middleware"
	"github.com/AleutianAI/AleutianDeclare/services/declare/recaptcha"
	"github.com/AleutianAI/AleutianDeclare/services/declare/render"
	"github.com/AleutianAI/AleutianDeclare/services/declare/store"
)

// DeclarationRequest is the submission body. The embedded record fields
// bind directly; the captcha token is consumed here and never persisted.
type DeclarationRequest struct {
	datatypes.Declaration
	RecaptchaToken string `json:"recaptcha_token"`
}

// CreateDeclaration handles POST /v1/declarations.
//
// # Description
//
// Validates the submission, persists it, and for non-draft submissions
// seals it: the declaration text is rendered without a hash, hashed, and
// the hash stored. Drafts skip both the captcha check and hashing.
//
// # Outputs
//
//   - 201 with the registry ID, validation hash, and both renderings
//   - 400 on malformed JSON or failed validation
//   - 403 when the captcha check fails
func CreateDeclaration(st *store.Store, verifier recaptcha.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeclarationRequest
		if err := c.BindJSON(&req); err != nil {
			slog.Error("Failed to bind declaration JSON", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if !req.IsDraft {
			result := verifier.Verify(c.Request.Context(), req.RecaptchaToken, c.ClientIP())
			if !result.Success {
				captchaFailures.Inc()
				slog.Warn("Captcha verification failed", "error_codes", result.ErrorCodes)
				c.JSON(http.StatusForbidden, gin.H{
					"error":       "Captcha verification failed",
					"error_codes": result.ErrorCodes,
				})
				return
			}
		}

		d := req.Declaration
		d.ID = 0
		d.ValidationHash = ""
		d.Normalize()
		if err := d.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id, err := datatypes.NewPublicID()
		if err != nil {
			slog.Error("Failed to generate declaration ID", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save declaration"})
			return
		}
		d.DeclarationID = id
		err = st.CreateDeclaration(&d)
		if errors.Is(err, store.ErrDuplicate) {
			// An 8-character ID over a 36-symbol alphabet collides
			// rarely but not never. Retry once with a fresh ID.
			if id, err = datatypes.NewPublicID(); err != nil {
				slog.Error("Failed to generate declaration ID", "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save declaration"})
				return
			}
			d.DeclarationID = id
			err = st.CreateDeclaration(&d)
		}
		if err != nil {
			slog.Error("Failed to create declaration", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save declaration"})
			return
		}

		lang := requestLang(c)
		if !d.IsDraft {
			if err := sealDeclaration(st, &d, lang); err != nil {
				slog.Error("Failed to seal declaration", "id", d.DeclarationID, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize declaration"})
				return
			}
		}

		declarationsCreated.WithLabelValues(draftLabel(d.IsDraft)).Inc()
		slog.Info("Declaration created", "id", d.DeclarationID, "draft", d.IsDraft)
		respondWithRenders(c, http.StatusCreated, &d, lang)
	}
}

// UpdateDeclaration handles PUT /v1/declarations/:id. Only drafts may be
// updated; a finalized declaration is immutable and answers 409. Setting
// is_draft to false in the update finalizes the record.
func UpdateDeclaration(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		existing, err := st.GetDeclaration(c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Declaration not found"})
				return
			}
			slog.Error("Failed to load declaration", "id", c.Param("id"), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load declaration"})
			return
		}
		if !existing.IsDraft {
			c.JSON(http.StatusConflict, gin.H{"error": "Declaration is finalized and cannot be modified"})
			return
		}

		var req DeclarationRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		d := req.Declaration
		d.ID = existing.ID
		d.DeclarationID = existing.DeclarationID
		d.CreatedAt = existing.CreatedAt
		d.ValidationHash = ""
		d.Normalize()
		if err := d.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := st.UpdateDeclaration(&d); err != nil {
			slog.Error("Failed to update declaration", "id", d.DeclarationID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update declaration"})
			return
		}

		lang := requestLang(c)
		if !d.IsDraft {
			if err := sealDeclaration(st, &d, lang); err != nil {
				slog.Error("Failed to seal declaration", "id", d.DeclarationID, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize declaration"})
				return
			}
			slog.Info("Declaration finalized", "id", d.DeclarationID)
		}

		respondWithRenders(c, http.StatusOK, &d, lang)
	}
}

// GetDeclaration handles GET /v1/declarations/:id.
func GetDeclaration(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		d, err := st.GetDeclaration(c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Declaration not found"})
				return
			}
			slog.Error("Failed to load declaration", "id", c.Param("id"), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load declaration"})
			return
		}
		respondWithRenders(c, http.StatusOK, d, requestLang(c))
	}
}

// sealDeclaration computes and stores the validation hash. The hash
// covers the text rendering in the request language, produced without a
// footer; the stored hash is what later appears in that footer.
func sealDeclaration(st *store.Store, d *datatypes.Declaration, lang i18n.Lang) error {
	text := render.Text(d, "", lang)
	hash := hashing.DeclarationHash(text)
	if err := st.FinalizeHash(d.DeclarationID, hash); err != nil {
		return err
	}
	d.ValidationHash = hash
	return nil
}

func respondWithRenders(c *gin.Context, status int, d *datatypes.Declaration, lang i18n.Lang) {
	text := render.Text(d, d.ValidationHash, lang)
	payload, err := render.JSON(d, d.ValidationHash, lang)
	if err != nil {
		slog.Error("Failed to render declaration JSON", "id", d.DeclarationID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render declaration"})
		return
	}
	c.JSON(status, gin.H{
		"id":              d.DeclarationID,
		"validation_hash": orPending(d.ValidationHash),
		"is_draft":        d.IsDraft,
		"text":            text,
		"declaration":     json.RawMessage(payload),
	})
}

func orPending(hash string) string {
	if hash == "" {
		return render.PendingHash
	}
	return hash
}

func draftLabel(isDraft bool) string {
	if isDraft {
		return "draft"
	}
	return "final"
}

// requestLang resolves the display language: the lang query parameter
// wins, then the configured service default, then Spanish.
func requestLang(c *gin.Context) i18n.Lang {
	lang := c.Query("lang")
	if lang == "" {
		lang = c.GetString(middleware.LangKey)
	}
	return i18n.Normalize(lang)
}
