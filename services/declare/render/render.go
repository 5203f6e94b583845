// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package render turns a Declaration snapshot into its canonical text and
// JSON representations.
//
// Both renderers are pure functions of (declaration, hash, language): no
// I/O, no side effects, byte-identical output for identical inputs. The
// caller owns the hash protocol: render the text without a hash, digest
// it, then render again with the hash — or pass an empty hash to get the
// draft form ("pending" in JSON, no footer in text). Both renderers must
// see the same snapshot of the record to stay consistent.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/AleutianAI/AleutianDeclare/services/declare/catalog"
	"github.com/AleutianAI/AleutianDeclare/services/declare/datatypes"
	"github.com/AleutianAI/AleutianDeclare/services/declare/i18n"
)

// Versioned public contract of the JSON payload. Changing a field name or
// type is a breaking change requiring a SchemaVersion bump.
const (
	DeclarationType = "academic-ai-transparency"
	SchemaVersion   = "1.0.0"
	SoftwareVersion = "1.1.0"
)

// PendingHash is the placeholder emitted in JSON when no hash has been
// computed yet (drafts).
const PendingHash = "pending"

const separatorWidth = 65

// Text renders the human-readable declaration block.
//
// hash may be empty: the footer (registry ID + validation hash) is only
// emitted when a hash is supplied. lang selects the label language.
func Text(d *datatypes.Declaration, hash string, lang i18n.Lang) string {
	var b strings.Builder

	usageText := strings.Join(usageLabels(d, lang), "; ")
	reviewInfo, reviewOK := i18n.ReviewLevel(d.HumanReviewLevel, lang)
	licenseLabel := i18n.LicenseLabel(d.License)
	modesText := strings.Join(
		i18n.ContentModeLabels(d.ContentUseModes, d.CustomContentUseMode, lang), ", ")
	dateStr := fmt.Sprintf("%02d/%d", d.AIToolDateMonth, d.AIToolDateYear)

	// Title
	b.WriteString(i18n.T("decl_title", lang) + "\n")
	b.WriteString(strings.Repeat("═", separatorWidth) + "\n\n")

	// Diagnostic / traceability
	b.WriteString(i18n.T("decl_section_0", lang) + "\n")
	b.WriteString(diagnosticBlock(d, lang))
	b.WriteString("\n")

	// Usage types
	b.WriteString(i18n.T("decl_section_1", lang) + "\n")
	b.WriteString("   " + strings.ToUpper(usageText) + "\n\n")

	// Tool information
	b.WriteString(i18n.T("decl_section_2", lang) + "\n")
	b.WriteString("   " + i18n.T("decl_tool_name", lang) + ": " +
		orPlaceholder(d.AIToolName, i18n.T("decl_not_specified", lang)) + "\n")
	b.WriteString("   " + i18n.T("decl_tool_version", lang) + ": " +
		orPlaceholder(d.AIToolVersion, "—") + "\n")
	b.WriteString("   " + i18n.T("decl_tool_provider", lang) + ": " +
		orPlaceholder(d.AIToolProvider, "—") + "\n")
	b.WriteString("   " + i18n.T("decl_tool_date", lang) + ": " + dateStr + "\n\n")

	// Purpose
	b.WriteString(i18n.T("decl_section_3", lang) + "\n")
	b.WriteString("   " + orPlaceholder(d.SpecificPurpose, i18n.T("decl_not_described", lang)) + "\n\n")

	// Prompts: only non-blank descriptions count, and numbering skips
	// excluded entries.
	if prompts := d.ValidPrompts(); len(prompts) > 0 {
		b.WriteString(i18n.T("decl_section_4", lang) + "\n")
		for i, p := range prompts {
			b.WriteString(fmt.Sprintf("   %d. %q\n", i+1, p.Description))
		}
		b.WriteString("\n")
	}

	// Content integration
	if len(d.ContentUseModes) > 0 {
		b.WriteString(i18n.T("decl_section_5", lang) + "\n")
		b.WriteString("   " + i18n.T("decl_content_mode", lang) + ": " + modesText + "\n")
		if d.ContentUseContext != "" {
			b.WriteString("   " + i18n.T("decl_content_context", lang) + ": " + d.ContentUseContext + "\n")
		}
		b.WriteString("\n")
	}

	// Human review
	b.WriteString(i18n.T("decl_section_6", lang) + "\n")
	if reviewOK {
		b.WriteString(fmt.Sprintf("   %s %d: %s\n",
			i18n.T("decl_review_level", lang), d.HumanReviewLevel, shortReviewLabel(reviewInfo.Label)))
		b.WriteString("   " + i18n.T("decl_review_description", lang) + ": " + reviewInfo.Description + "\n")
	} else {
		// Unreachable given the 0-5 write invariant; emit the raw level.
		b.WriteString(fmt.Sprintf("   %s %d\n", i18n.T("decl_review_level", lang), d.HumanReviewLevel))
	}
	if d.HumanReviewLevel > 0 {
		if d.ReviewerName != "" {
			b.WriteString("   " + i18n.T("decl_reviewed_by", lang) + ": " + d.ReviewerName + "\n")
		}
		if d.ReviewerRole != "" {
			b.WriteString("   " + i18n.T("decl_reviewer_role", lang) + ": " + d.ReviewerRole + "\n")
		}
	}

	// License (suppressed for the None sentinel)
	if d.License != "" && d.License != catalog.LicenseNone {
		b.WriteString("\n" + i18n.T("decl_section_7", lang) + "\n")
		b.WriteString("   • " + licenseLabel + "\n")
	}

	// Hash footer
	if hash != "" {
		b.WriteString("\n" + strings.Repeat("-", separatorWidth) + "\n")
		b.WriteString(i18n.T("decl_id_registry", lang) + ": " + d.DeclarationID + "\n")
		b.WriteString(i18n.T("decl_hash_validation", lang) + ": " + hash + "\n")
	}

	return b.String()
}

// diagnosticBlock renders the checked checklist lines in the record's
// stored ID order. IDs with no matching checklist entry are silently
// skipped; with no selection at all, a single placeholder line is emitted
// instead.
func diagnosticBlock(d *datatypes.Declaration, lang i18n.Lang) string {
	if len(d.SelectedChecklistIDs) == 0 {
		return "   (" + i18n.T("decl_manual_selection", lang) + ")\n"
	}
	checklist := i18n.Checklist(lang)
	var b strings.Builder
	for _, id := range d.SelectedChecklistIDs {
		for _, item := range checklist {
			if item.ID == id {
				b.WriteString("   [x] " + item.Question + "\n")
				break
			}
		}
	}
	return b.String()
}

// shortReviewLabel strips the "Nivel N:" prefix from a review label,
// returning the whole label when it carries no colon.
func shortReviewLabel(label string) string {
	if _, after, found := strings.Cut(label, ":"); found {
		return strings.TrimSpace(after)
	}
	return label
}

func usageLabels(d *datatypes.Declaration, lang i18n.Lang) []string {
	labels := make([]string, 0, len(d.UsageTypes))
	for _, ut := range d.UsageTypes {
		labels = append(labels, i18n.UsageLabel(ut, d.CustomUsageType, lang))
	}
	return labels
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// =============================================================================
// JSON Payload
// =============================================================================

// Every optional field serializes as an explicit null rather than being
// omitted; consumers rely on key presence.

type jsonPayload struct {
	DeclarationType string           `json:"declarationType"`
	SchemaVersion   string           `json:"schemaVersion"`
	SoftwareVersion string           `json:"softwareVersion"`
	Version         string           `json:"version"`
	GeneratedAt     *string          `json:"generatedAt"`
	ID              string           `json:"id"`
	ValidationHash  string           `json:"validationHash"`
	License         *string          `json:"license"`
	Traceability    jsonTraceability `json:"traceability"`
	Usage           jsonUsage        `json:"usage"`
	Tool            jsonTool         `json:"tool"`
	Purpose         string           `json:"purpose"`
	Prompts         []string         `json:"prompts"`
	Integration     jsonIntegration  `json:"integration"`
	HumanReview     jsonHumanReview  `json:"humanReview"`
}

type jsonTraceability struct {
	DiagnosticIDs []string `json:"diagnosticIds"`
}

type jsonUsage struct {
	Types             []string `json:"types"`
	Labels            []string `json:"labels"`
	CustomDescription *string  `json:"customDescription"`
}

type jsonTool struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Provider string `json:"provider"`
	Date     string `json:"date"`
}

type jsonIntegration struct {
	Modes   []string `json:"modes"`
	Context *string  `json:"context"`
}

type jsonHumanReview struct {
	Level        int     `json:"level"`
	Label        *string `json:"label"`
	Description  *string `json:"description"`
	ReviewerName *string `json:"reviewerName"`
	ReviewerRole *string `json:"reviewerRole"`
}

// JSON renders the machine-readable declaration payload as an indented
// JSON string. hash may be empty, in which case the validationHash field
// carries the "pending" placeholder.
func JSON(d *datatypes.Declaration, hash string, lang i18n.Lang) (string, error) {
	reviewInfo, reviewOK := i18n.ReviewLevel(d.HumanReviewLevel, lang)

	promptTexts := []string{}
	for _, p := range d.ValidPrompts() {
		promptTexts = append(promptTexts, p.Description)
	}

	var customDescription *string
	if d.HasUsageType(catalog.UsageOther) {
		customDescription = &d.CustomUsageType
	}

	payload := jsonPayload{
		DeclarationType: DeclarationType,
		SchemaVersion:   SchemaVersion,
		SoftwareVersion: SoftwareVersion,
		Version:         SoftwareVersion,
		GeneratedAt:     timestampOrNil(d.CreatedAt),
		ID:              d.DeclarationID,
		ValidationHash:  orPlaceholder(hash, PendingHash),
		License:         licenseOrNil(d.License),
		Traceability: jsonTraceability{
			DiagnosticIDs: nonNil(d.SelectedChecklistIDs),
		},
		Usage: jsonUsage{
			Types:             nonNil(d.UsageTypes),
			Labels:            usageLabels(d, lang),
			CustomDescription: customDescription,
		},
		Tool: jsonTool{
			Name:     d.AIToolName,
			Version:  d.AIToolVersion,
			Provider: d.AIToolProvider,
			Date:     fmt.Sprintf("%d-%02d", d.AIToolDateYear, d.AIToolDateMonth),
		},
		Purpose: d.SpecificPurpose,
		Prompts: promptTexts,
		Integration: jsonIntegration{
			Modes:   nonNil(i18n.ContentModeLabels(d.ContentUseModes, d.CustomContentUseMode, lang)),
			Context: nilIfBlank(d.ContentUseContext),
		},
		HumanReview: jsonHumanReview{
			Level:        d.HumanReviewLevel,
			Label:        labelOrNil(reviewInfo.Label, reviewOK),
			Description:  labelOrNil(reviewInfo.Description, reviewOK),
			ReviewerName: nilIfBlank(d.ReviewerName),
			ReviewerRole: nilIfBlank(d.ReviewerRole),
		},
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return "", fmt.Errorf("encode declaration payload: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func timestampOrNil(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func licenseOrNil(license string) *string {
	if license == "" || license == catalog.LicenseNone {
		return nil
	}
	return &license
}

func labelOrNil(s string, ok bool) *string {
	if !ok {
		return nil
	}
	return &s
}

func nilIfBlank(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nonNil normalizes a nil slice to an empty one so it serializes as []
// rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
