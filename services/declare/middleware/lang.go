// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package middleware

import (
	"github.com/gin-gonic/gin"
)

// LangKey is the gin context key carrying the service-wide default
// language for requests that specify none.
const LangKey = "default_lang"

// DefaultLang stores the configured fallback language in the request
// context. Handlers consult it when the lang query parameter is absent.
func DefaultLang(lang string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LangKey, lang)
		c.Next()
	}
}
