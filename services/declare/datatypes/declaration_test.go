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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianDeclare/services/declare/catalog"
)

// validDeclaration builds a final declaration that passes all write-time
// rules. Tests mutate single fields from this baseline.
func validDeclaration() Declaration {
	return Declaration{
		SelectedChecklistIDs: []string{"q1", "q6"},
		UsageTypes:           []string{"draft", "writing-support"},
		AIToolName:           "ChatGPT",
		AIToolVersion:        "GPT-4",
		AIToolProvider:       "OpenAI",
		AIToolDateMonth:      3,
		AIToolDateYear:       2024,
		SpecificPurpose:      "Redacción del borrador inicial del marco teórico.",
		Prompts: []Prompt{
			{Description: "Redacta una introducción sobre trazabilidad académica"},
		},
		ContentUseModes:  []string{"Reescrito sustancialmente"},
		HumanReviewLevel: 4,
		ReviewerName:     "Dra. Pérez",
		ReviewerRole:     "Directora de tesis",
		License:          "CC BY 4.0",
	}
}

func TestDeclarationValidate(t *testing.T) {
	t.Run("baseline passes", func(t *testing.T) {
		d := validDeclaration()
		d.Normalize()
		require.NoError(t, d.Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Declaration)
		wantErr string
	}{
		{
			name:    "review level above five",
			mutate:  func(d *Declaration) { d.HumanReviewLevel = 6 },
			wantErr: "human_review_level",
		},
		{
			name:    "negative review level",
			mutate:  func(d *Declaration) { d.HumanReviewLevel = -1 },
			wantErr: "human_review_level",
		},
		{
			name:    "unknown license",
			mutate:  func(d *Declaration) { d.License = "GPL-3.0" },
			wantErr: "unknown license",
		},
		{
			name:    "unknown usage type",
			mutate:  func(d *Declaration) { d.UsageTypes = []string{"draft", "hologram"} },
			wantErr: "unknown usage type",
		},
		{
			name:    "month out of range",
			mutate:  func(d *Declaration) { d.AIToolDateMonth = 13 },
			wantErr: "ai_tool_date_month",
		},
		{
			name:    "purpose too short",
			mutate:  func(d *Declaration) { d.SpecificPurpose = "Corto" },
			wantErr: "specific_purpose",
		},
		{
			name: "purpose too long",
			mutate: func(d *Declaration) {
				d.SpecificPurpose = strings.Repeat("x", 501)
			},
			wantErr: "specific_purpose",
		},
		{
			name: "prompt too short",
			mutate: func(d *Declaration) {
				d.Prompts = []Prompt{{Description: "corto"}}
			},
			wantErr: "prompt_description",
		},
		{
			name:    "final without usage types",
			mutate:  func(d *Declaration) { d.UsageTypes = nil },
			wantErr: "usage_types",
		},
		{
			name:    "final without tool name",
			mutate:  func(d *Declaration) { d.AIToolName = "  " },
			wantErr: "ai_tool_name",
		},
		{
			name:    "final without month",
			mutate:  func(d *Declaration) { d.AIToolDateMonth = 0 },
			wantErr: "ai_tool_date_month",
		},
		{
			name:    "final without year",
			mutate:  func(d *Declaration) { d.AIToolDateYear = 0 },
			wantErr: "ai_tool_date_year",
		},
		{
			name:    "final without purpose",
			mutate:  func(d *Declaration) { d.SpecificPurpose = "" },
			wantErr: "specific_purpose",
		},
		{
			name: "other usage without custom text",
			mutate: func(d *Declaration) {
				d.UsageTypes = []string{"other"}
				d.CustomUsageType = ""
			},
			wantErr: "custom_usage_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDeclaration()
			tt.mutate(&d)
			d.Normalize()
			err := d.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDeclarationValidateDraft(t *testing.T) {
	t.Run("draft may omit required-for-final fields", func(t *testing.T) {
		d := Declaration{IsDraft: true}
		d.Normalize()
		assert.NoError(t, d.Validate())
	})

	t.Run("draft still rejects range violations", func(t *testing.T) {
		d := Declaration{IsDraft: true, HumanReviewLevel: 9}
		d.Normalize()
		err := d.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "human_review_level")
	})

	t.Run("draft still rejects unknown catalog values", func(t *testing.T) {
		d := Declaration{IsDraft: true, UsageTypes: []string{"hologram"}}
		d.Normalize()
		require.Error(t, d.Validate())
	})
}

func TestDeclarationNormalize(t *testing.T) {
	d := Declaration{}
	d.Normalize()
	assert.Equal(t, catalog.LicenseNone, d.License)

	d = Declaration{License: "CC0 1.0"}
	d.Normalize()
	assert.Equal(t, "CC0 1.0", d.License)
}

func TestValidPrompts(t *testing.T) {
	d := Declaration{
		Prompts: []Prompt{
			{Description: "Primer prompt con contenido"},
			{Description: "   "},
			{Description: ""},
			{Description: "Segundo prompt con contenido"},
		},
	}
	got := d.ValidPrompts()
	require.Len(t, got, 2)
	assert.Equal(t, "Primer prompt con contenido", got[0].Description)
	assert.Equal(t, "Segundo prompt con contenido", got[1].Description)
}

func TestHasUsageType(t *testing.T) {
	d := Declaration{UsageTypes: []string{"draft", "other"}}
	assert.True(t, d.HasUsageType(catalog.UsageOther))
	assert.False(t, d.HasUsageType(catalog.UsageCoding))
}

func TestNewPublicID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := NewPublicID()
		require.NoError(t, err)
		require.Len(t, id, PublicIDLen)
		for _, r := range id {
			assert.Contains(t, publicIDAlphabet, string(r))
		}
		seen[id] = true
	}
	// 100 draws from a 36^8 space should never collide.
	assert.Len(t, seen, 100)
}
