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
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/AleutianDeclare/services/declare/datatypes"
	"github.com/AleutianAI/AleutianDeclare/services/declare/recaptcha"
	"github.com/AleutianAI/AleutianDeclare/services/declare/store"
)

// SignerRequest is the registration body for the public commitment list.
type SignerRequest struct {
	datatypes.SignerInput
	RecaptchaToken string `json:"recaptcha_token"`
}

// publicSignerView is the projection exposed on the public list and the
// verification endpoint. Email never leaves the database through these.
type publicSignerView struct {
	SignerID      string    `json:"signer_id"`
	FullName      string    `json:"full_name"`
	ORCID         string    `json:"orcid"`
	ORCIDVerified bool      `json:"orcid_verified"`
	Country       string    `json:"country"`
	CountryFlag   string    `json:"country_flag"`
	Affiliation   string    `json:"affiliation"`
	Discipline    string    `json:"discipline"`
	ProfileURL    string    `json:"profile_url"`
	Declaration   string    `json:"declaration"`
	HashShort     string    `json:"hash_short"`
	CreatedAt     time.Time `json:"created_at"`
}

func signerView(sg *datatypes.Signer) publicSignerView {
	return publicSignerView{
		SignerID:      sg.SignerID,
		FullName:      sg.FullName,
		ORCID:         sg.ORCID,
		ORCIDVerified: sg.ORCIDVerified,
		Country:       sg.Country,
		CountryFlag:   sg.CountryFlag(),
		Affiliation:   sg.Affiliation,
		Discipline:    sg.Discipline,
		ProfileURL:    sg.ProfileURL,
		Declaration:   sg.Declaration,
		HashShort:     sg.HashShort,
		CreatedAt:     sg.CreatedAt,
	}
}

// CreateSigner handles POST /v1/signers.
//
// # Description
//
// Registers a signer on the public commitment list. The identity
// fingerprint is computed exactly once here, at creation, and never
// recomputed. Registering the same identity again yields a new
// fingerprint because the creation timestamp participates in it.
func CreateSigner(st *store.Store, verifier recaptcha.TokenVerifier, siteDomain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignerRequest
		if err := c.BindJSON(&req); err != nil {
			slog.Error("Failed to bind signer JSON", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

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

		sg, err := datatypes.NewSigner(req.SignerInput)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := st.CreateSigner(sg); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				c.JSON(http.StatusConflict, gin.H{"error": "Signer already registered"})
				return
			}
			slog.Error("Failed to create signer", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save signer"})
			return
		}

		signersRegistered.Inc()
		slog.Info("Signer registered", "signer_id", sg.SignerID, "hash_short", sg.HashShort)
		c.JSON(http.StatusCreated, gin.H{
			"signer":           signerView(sg),
			"verification_url": sg.VerificationURL(c.GetHeader("Origin"), siteDomain),
		})
	}
}

// ListSigners handles GET /v1/signers. Only signers who opted into the
// public listing appear.
func ListSigners(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		signers, err := st.ListPublicSigners()
		if err != nil {
			slog.Error("Failed to list signers", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list signers"})
			return
		}
		views := make([]publicSignerView, 0, len(signers))
		for i := range signers {
			views = append(views, signerView(&signers[i]))
		}
		c.JSON(http.StatusOK, gin.H{"signers": views, "count": len(views)})
	}
}

// VerifySigner handles GET /v1/signers/verify/:hash. The short hash is
// the public verification handle printed next to a signature.
func VerifySigner(st *store.Store, siteDomain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sg, err := st.GetSignerByHashShort(c.Param("hash"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No signer matches this hash"})
				return
			}
			slog.Error("Failed to verify signer", "hash", c.Param("hash"), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify signer"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"signer":           signerView(sg),
			"verification_url": sg.VerificationURL(c.GetHeader("Origin"), siteDomain),
		})
	}
}
