// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package i18n

import (
	"strings"

	"github.com/AleutianAI/AleutianDeclare/services/declare/catalog"
)

// T resolves a UI string key for the given language. Fallback chain:
// requested language -> Spanish -> the key itself.
func T(key string, lang Lang) string {
	if table, ok := uiStrings[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := uiStrings[ES][key]; ok {
		return s
	}
	return key
}

// UsageLabel resolves a stored usage-type value to its label in lang.
//
// The "other" sentinel substitutes the record's custom free text, falling
// back to the localized "other" label when the custom text is blank.
// Unknown values fall back down the chain lang -> Spanish -> raw value.
func UsageLabel(value string, custom string, lang Lang) string {
	if value == string(catalog.UsageOther) {
		if strings.TrimSpace(custom) != "" {
			return custom
		}
		return T("usage_other", lang)
	}
	if table, ok := usageLabels[lang]; ok {
		if label, ok := table[catalog.UsageType(value)]; ok {
			return label
		}
	}
	if label, ok := usageLabels[ES][catalog.UsageType(value)]; ok {
		return label
	}
	return value
}

// ContentModeLabels resolves the stored content-use mode strings of a
// record to labels in lang.
//
// Records historically store the canonical Spanish literals
// (catalog.ContentModesES). Each stored string is resolved as follows:
//
//  1. the literal "Otro" or the lang table's "other" entry substitutes
//     the record's custom mode text (fallback: the "other" entry);
//  2. a canonical Spanish literal maps to its positional key and from
//     there to the lang table;
//  3. anything else (including strings already in the lang table)
//     passes through unchanged.
func ContentModeLabels(modes []string, custom string, lang Lang) []string {
	translated, ok := contentModeLabels[lang]
	if !ok {
		translated = contentModeLabels[ES]
	}
	otherLabel := translated[catalog.ContentModeCount-1]
	resolved := make([]string, 0, len(modes))
	for _, mode := range modes {
		switch {
		case mode == "Otro" || mode == otherLabel:
			if strings.TrimSpace(custom) != "" {
				resolved = append(resolved, custom)
			} else {
				resolved = append(resolved, otherLabel)
			}
		default:
			if idx, ok := spanishModeIndex(mode); ok {
				resolved = append(resolved, translated[idx])
			} else {
				resolved = append(resolved, mode)
			}
		}
	}
	return resolved
}

// spanishModeIndex returns the position of a canonical Spanish mode
// literal, mirroring the stable key order of catalog.ContentModeKeys.
func spanishModeIndex(mode string) (int, bool) {
	for i, m := range catalog.ContentModesES {
		if m == mode {
			return i, true
		}
	}
	return 0, false
}

// ReviewLevel returns the localized review-level info for a 0-5 level.
// Out-of-range levels report false; callers degrade per the renderer's
// edge policy rather than failing.
func ReviewLevel(level int, lang Lang) (catalog.ReviewLevelInfo, bool) {
	if level < catalog.HumanReviewMin || level > catalog.HumanReviewMax {
		return catalog.ReviewLevelInfo{}, false
	}
	labels, ok := reviewLevelLabels[lang]
	if !ok {
		labels = reviewLevelLabels[ES]
	}
	descriptions, ok := reviewLevelDescriptions[lang]
	if !ok {
		descriptions = reviewLevelDescriptions[ES]
	}
	return catalog.ReviewLevelInfo{
		Level:       level,
		Label:       labels[level],
		Description: descriptions[level],
	}, true
}

// LicenseLabel resolves a license value to its display label, passing the
// raw value through on a miss. License labels are shared across languages.
func LicenseLabel(value string) string {
	if lic, ok := catalog.LicenseByValue(value); ok {
		return lic.Label
	}
	return value
}

// UsageTypes returns the usage taxonomy with labels localized for lang.
// Hints and examples stay in their canonical form.
func UsageTypes(lang Lang) []catalog.UsageTypeInfo {
	out := make([]catalog.UsageTypeInfo, len(catalog.UsageTypes))
	for i, ut := range catalog.UsageTypes {
		out[i] = ut
		out[i].Label = UsageLabel(string(ut.Value), "", lang)
	}
	return out
}

// ContentModes returns the localized content-mode label list in canonical
// order.
func ContentModes(lang Lang) []string {
	table, ok := contentModeLabels[lang]
	if !ok {
		table = contentModeLabels[ES]
	}
	out := make([]string, catalog.ContentModeCount)
	copy(out, table[:])
	return out
}

// ReviewLevels returns the localized 0-5 review ladder.
func ReviewLevels(lang Lang) []catalog.ReviewLevelInfo {
	out := make([]catalog.ReviewLevelInfo, catalog.HumanReviewMax+1)
	for level := range out {
		info, _ := ReviewLevel(level, lang)
		out[level] = info
	}
	return out
}

// Checklist returns the diagnostic checklist with questions localized for
// lang. IDs, suggested types and priorities stay canonical.
func Checklist(lang Lang) []catalog.ChecklistItem {
	questions, ok := checklistQuestions[lang]
	if !ok {
		questions = checklistQuestions[ES]
	}
	out := make([]catalog.ChecklistItem, len(catalog.Checklist))
	for i, item := range catalog.Checklist {
		out[i] = item
		if q, ok := questions[item.ID]; ok {
			out[i].Question = q
		}
	}
	return out
}
