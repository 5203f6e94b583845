// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianDeclare/services/declare/catalog"
	"github.com/AleutianAI/AleutianDeclare/services/declare/i18n"
	"github.com/AleutianAI/AleutianDeclare/services/declare/render"
)

var catalogLang string

// catalogCmd dumps the form catalog as JSON, localized to --lang. The
// output matches what GET /v1/catalog serves.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Dump the declaration form catalog as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang := i18n.Normalize(catalogLang)
		out := map[string]any{
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
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

// versionCmd reports the schema and software versions stamped into
// every rendered payload.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print payload schema and software versions",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("schema version:   %s\n", render.SchemaVersion)
		fmt.Printf("software version: %s\n", render.SoftwareVersion)
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogLang, "lang", "es", "display language (es or en)")
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}
