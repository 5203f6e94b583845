// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/AleutianAI/AleutianDeclare/services/declare/catalog"
	"github.com/AleutianAI/AleutianDeclare/services/declare/hashing"
	"github.com/go-playground/validator/v10"
)

// =============================================================================
// Shared Validator Instance
// =============================================================================

// signerValidate is the validator instance for signer registration.
// Initialized in init() with the custom ORCID validator.
var signerValidate *validator.Validate

// orcidPattern matches the ORCID iD format NNNN-NNNN-NNNN-NNNN. The last
// character is an ISO 7064 11-2 check digit and may be "X".
var orcidPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

func init() {
	signerValidate = validator.New()
	_ = signerValidate.RegisterValidation("orcid", validateORCID)
}

// validateORCID validates the NNNN-NNNN-NNNN-NNNN ORCID format.
func validateORCID(fl validator.FieldLevel) bool {
	return orcidPattern.MatchString(fl.Field().String())
}

// =============================================================================
// Signer Record
// =============================================================================

// Signer is a registered individual's public commitment record,
// independent of any specific declaration.
//
// ValidationHash and HashShort form the identity fingerprint: computed
// exactly once at creation from name + email + ORCID + affiliation +
// creation timestamp, in that order, and never recomputed. Editing
// identity fields afterwards silently desynchronizes the fingerprint;
// that is an accepted property, since recomputation would invalidate
// previously distributed verification links.
type Signer struct {
	ID             uint   `gorm:"primaryKey" json:"-"`
	SignerID       string `gorm:"size:20;uniqueIndex" json:"signer_id"`
	ValidationHash string `gorm:"size:64;uniqueIndex" json:"validation_hash"`
	HashShort      string `gorm:"size:8" json:"hash_short"`

	// Identity
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	ORCID    string `gorm:"size:19" json:"orcid"`
	Country  string `gorm:"size:100" json:"country"`

	// Professional
	Affiliation      string `gorm:"size:300" json:"affiliation"`
	AffiliationRORID string `gorm:"size:200" json:"affiliation_ror_id"`
	Discipline       string `gorm:"size:100" json:"discipline"`
	ProfileURL       string `json:"profile_url"`
	Declaration      string `gorm:"size:280" json:"declaration"`

	// ORCID verification
	ORCIDVerified       bool   `json:"orcid_verified"`
	ORCIDRegisteredName string `gorm:"size:200" json:"orcid_registered_name"`

	// Consents
	AgreedToTerms bool `json:"agreed_to_terms"`
	PublicListing bool `json:"public_listing"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SignerInput carries the user-supplied registration fields.
type SignerInput struct {
	FullName         string `json:"full_name" validate:"required,max=200"`
	Email            string `json:"email" validate:"required,email"`
	ORCID            string `json:"orcid" validate:"required,orcid"`
	Country          string `json:"country" validate:"omitempty,max=100"`
	Affiliation      string `json:"affiliation" validate:"required,max=300"`
	AffiliationRORID string `json:"affiliation_ror_id" validate:"omitempty,max=200"`
	Discipline       string `json:"discipline" validate:"required,max=100"`
	ProfileURL       string `json:"profile_url" validate:"omitempty,url"`
	Declaration      string `json:"declaration" validate:"omitempty,max=280"`
	AgreedToTerms    bool   `json:"agreed_to_terms" validate:"eq=true"`
	PublicListing    bool   `json:"public_listing"`
}

// NewSigner validates the input and builds a Signer with its public ID
// and identity fingerprint.
//
// The creation timestamp is captured exactly once and used for both the
// persisted CreatedAt and the hash input, so concurrent creates can never
// race between "now" reads.
func NewSigner(input SignerInput) (*Signer, error) {
	if err := signerValidate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	signerID, err := NewPublicID()
	if err != nil {
		return nil, err
	}
	createdAt := time.Now().UTC()
	hashInput := input.FullName + input.Email + input.ORCID + input.Affiliation + createdAt.String()
	full, short := hashing.IdentityHash(hashInput)
	return &Signer{
		SignerID:         signerID,
		ValidationHash:   full,
		HashShort:        short,
		FullName:         input.FullName,
		Email:            input.Email,
		ORCID:            input.ORCID,
		Country:          input.Country,
		Affiliation:      input.Affiliation,
		AffiliationRORID: input.AffiliationRORID,
		Discipline:       input.Discipline,
		ProfileURL:       input.ProfileURL,
		Declaration:      input.Declaration,
		AgreedToTerms:    input.AgreedToTerms,
		PublicListing:    input.PublicListing,
		CreatedAt:        createdAt,
	}, nil
}

// CountryFlag returns the flag emoji for the signer's country, with the
// catalog's globe fallback for unknown or missing countries.
func (s *Signer) CountryFlag() string {
	return catalog.CountryFlag(s.Country)
}

// VerificationPath is the relative public verification path for a short
// hash.
func VerificationPath(hashShort string) string {
	return "/v1/signers/verify/" + hashShort
}

// VerificationURL builds the signer's public verification link.
// Preference order: the request-scoped origin, then the statically
// configured site domain, then the bare relative path.
func (s *Signer) VerificationURL(origin string, siteDomain string) string {
	rel := VerificationPath(s.HashShort)
	if origin != "" {
		return strings.TrimRight(origin, "/") + rel
	}
	if siteDomain != "" {
		return strings.TrimRight(siteDomain, "/") + rel
	}
	return rel
}
