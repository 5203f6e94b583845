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
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/AleutianDeclare/services/declare/catalog"
	"github.com/AleutianAI/AleutianDeclare/services/declare/i18n"
)

// GetCatalog handles GET /v1/catalog. It returns everything a form
// frontend needs to render itself: usage types, content modes, review
// levels, the diagnostic checklist, licenses, presets, the glossary, the
// AI tool catalog, the wizard step labels, the month names, and the
// field length limits. Labels follow the lang query parameter.
func GetCatalog() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		c.JSON(http.StatusOK, gin.H{
			"lang":          string(lang),
			"usage_types":   i18n.UsageTypes(lang),
			"content_modes": i18n.ContentModes(lang),
			"review_levels": i18n.ReviewLevels(lang),
			"checklist":     i18n.Checklist(lang),
			"licenses":      catalog.Licenses,
			"presets":       catalog.Presets,
			"glossary":      catalog.Glossary,
			"ai_tools":      catalog.AIToolsCatalog,
			"step_labels":   catalog.StepLabels,
			"months_es":     catalog.MonthsES,
			"field_limits":  catalog.FieldLimits,
		})
	}
}
