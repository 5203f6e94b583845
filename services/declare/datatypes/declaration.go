// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes holds the persistent records of the declaration
// service and their validation rules.
//
// Validation rejects bad writes before persistence; it never coerces.
// Lookup-type mismatches against retired catalog entries are a rendering
// concern and are deliberately NOT validated here for stored legacy
// values, only for new canonical fields.
package datatypes

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AleutianAI/AleutianDeclare/services/declare/catalog"
)

// ErrValidation wraps all record validation failures so handlers can map
// them to a 400-class response without inspecting messages.
var ErrValidation = errors.New("validation failed")

// Prompt is one prompt entry recorded by the author. Only entries with a
// non-blank description are rendered.
type Prompt struct {
	Description string `json:"description"`
}

// Blank reports whether the prompt has no usable description.
func (p Prompt) Blank() bool {
	return strings.TrimSpace(p.Description) == ""
}

// Declaration is a structured record describing one instance of
// AI-assisted academic work and its disclosure.
//
// DeclarationID is assigned once at creation and immutable thereafter.
// ValidationHash is computed from the rendered canonical text (not raw
// fields) and only finalized once the declaration is no longer a draft.
type Declaration struct {
	ID             uint   `gorm:"primaryKey" json:"-"`
	DeclarationID  string `gorm:"size:20;uniqueIndex" json:"id"`
	ValidationHash string `gorm:"size:64" json:"validation_hash"`

	// Diagnostic / traceability
	SelectedChecklistIDs []string `gorm:"serializer:json" json:"selected_checklist_ids"`

	// Usage classification
	UsageTypes      []string `gorm:"serializer:json" json:"usage_types"`
	CustomUsageType string   `json:"custom_usage_type"`

	// AI tool information
	AIToolName      string `gorm:"size:200" json:"ai_tool_name"`
	AIToolVersion   string `gorm:"size:100" json:"ai_tool_version"`
	AIToolProvider  string `gorm:"size:200" json:"ai_tool_provider"`
	AIToolDateMonth int    `json:"ai_tool_date_month"`
	AIToolDateYear  int    `json:"ai_tool_date_year"`

	// Purpose and prompts
	SpecificPurpose string   `json:"specific_purpose"`
	Prompts         []Prompt `gorm:"serializer:json" json:"prompts"`

	// Content integration
	ContentUseModes      []string `gorm:"serializer:json" json:"content_use_modes"`
	CustomContentUseMode string   `json:"custom_content_use_mode"`
	ContentUseContext    string   `json:"content_use_context"`

	// Human review
	HumanReviewLevel int    `json:"human_review_level"`
	ReviewerName     string `gorm:"size:200" json:"reviewer_name"`
	ReviewerRole     string `gorm:"size:200" json:"reviewer_role"`

	// License
	License string `gorm:"size:50;default:None" json:"license"`

	// Draft status: drafts may omit required-for-final fields and never
	// receive a finalized hash.
	IsDraft bool `json:"is_draft"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasUsageType reports whether the declaration carries the given
// canonical usage key.
func (d *Declaration) HasUsageType(value catalog.UsageType) bool {
	for _, ut := range d.UsageTypes {
		if ut == string(value) {
			return true
		}
	}
	return false
}

// ValidPrompts returns the prompts with non-blank descriptions, in
// original order.
func (d *Declaration) ValidPrompts() []Prompt {
	out := make([]Prompt, 0, len(d.Prompts))
	for _, p := range d.Prompts {
		if !p.Blank() {
			out = append(out, p)
		}
	}
	return out
}

// Normalize applies value canonicalization that is safe before
// validation: an unset license becomes the LicenseNone sentinel.
func (d *Declaration) Normalize() {
	if d.License == "" {
		d.License = catalog.LicenseNone
	}
}

// Validate checks the record against the write-time rules. Range and
// membership violations are rejected for drafts too; only the
// required-for-final checks are relaxed while IsDraft is set.
//
// All failures wrap ErrValidation.
func (d *Declaration) Validate() error {
	var problems []string

	// Always enforced, draft or not.
	if d.HumanReviewLevel < catalog.HumanReviewMin || d.HumanReviewLevel > catalog.HumanReviewMax {
		problems = append(problems, fmt.Sprintf(
			"human_review_level must be between %d and %d",
			catalog.HumanReviewMin, catalog.HumanReviewMax))
	}
	if !catalog.ValidLicense(d.License) {
		problems = append(problems, fmt.Sprintf("unknown license %q", d.License))
	}
	for _, ut := range d.UsageTypes {
		if !catalog.ValidUsageType(ut) {
			problems = append(problems, fmt.Sprintf("unknown usage type %q", ut))
		}
	}
	if d.AIToolDateMonth != 0 && (d.AIToolDateMonth < 1 || d.AIToolDateMonth > 12) {
		problems = append(problems, "ai_tool_date_month must be between 1 and 12")
	}
	problems = append(problems, d.lengthProblems()...)

	// Required for final declarations only.
	if !d.IsDraft {
		if len(d.UsageTypes) == 0 {
			problems = append(problems, "usage_types must not be empty")
		}
		if d.HasUsageType(catalog.UsageOther) && strings.TrimSpace(d.CustomUsageType) == "" {
			problems = append(problems, "custom_usage_type is required when usage_types includes \"other\"")
		}
		if strings.TrimSpace(d.AIToolName) == "" {
			problems = append(problems, "ai_tool_name is required")
		}
		if d.AIToolDateMonth == 0 {
			problems = append(problems, "ai_tool_date_month is required")
		}
		if d.AIToolDateYear == 0 {
			problems = append(problems, "ai_tool_date_year is required")
		}
		if strings.TrimSpace(d.SpecificPurpose) == "" {
			problems = append(problems, "specific_purpose is required")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

// lengthProblems checks the catalog field limits for every free-text
// field that carries a value. Empty fields are checked by the
// required-for-final rules, not here.
func (d *Declaration) lengthProblems() []string {
	var problems []string
	check := func(field, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		limit, ok := catalog.FieldLimits[field]
		if !ok {
			return
		}
		n := len([]rune(value))
		if n < limit.Min || n > limit.Max {
			problems = append(problems, fmt.Sprintf(
				"%s must be between %d and %d characters", field, limit.Min, limit.Max))
		}
	}
	check("specific_purpose", d.SpecificPurpose)
	check("custom_usage_type", d.CustomUsageType)
	check("custom_content_use_mode", d.CustomContentUseMode)
	check("content_use_context", d.ContentUseContext)
	for _, p := range d.Prompts {
		if !p.Blank() {
			check("prompt_description", p.Description)
		}
	}
	return problems
}
