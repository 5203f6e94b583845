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

	"github.com/AleutianAI/AleutianDeclare/services/declare/datatypes"
	"github.com/AleutianAI/AleutianDeclare/services/declare/hashing"
	"github.com/AleutianAI/AleutianDeclare/services/declare/i18n"
	"github.com/AleutianAI/AleutianDeclare/services/declare/render"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	renderLang   string // Display language (es or en)
	renderJSON   bool   // Emit the JSON payload instead of text
	renderSealed bool   // Compute and embed the validation hash
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// renderCmd renders a declaration record from a JSON file.
//
// # Description
//
// The input file holds a declaration record in the same shape the API
// accepts (snake_case field names). The record is validated, then
// rendered as the human-readable text block or, with --json, as the
// machine-readable payload.
//
// With --sealed the validation hash is computed the way the server
// does on finalization: the text is rendered without a footer, hashed,
// and rendered again with the hash embedded.
//
// # Examples
//
//	declarectl render declaration.json
//	declarectl render declaration.json --lang en
//	declarectl render declaration.json --sealed --json
var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a declaration record from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read declaration file: %w", err)
		}

		var d datatypes.Declaration
		if err := json.Unmarshal(data, &d); err != nil {
			return fmt.Errorf("parse declaration file: %w", err)
		}
		d.Normalize()
		if err := d.Validate(); err != nil {
			return err
		}

		lang := i18n.Normalize(renderLang)
		hash := d.ValidationHash
		if renderSealed && hash == "" {
			hash = hashing.DeclarationHash(render.Text(&d, "", lang))
		}

		if renderJSON {
			payload, err := render.JSON(&d, hash, lang)
			if err != nil {
				return err
			}
			fmt.Println(payload)
			return nil
		}
		fmt.Print(render.Text(&d, hash, lang))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderLang, "lang", "es", "display language (es or en)")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "emit the JSON payload instead of text")
	renderCmd.Flags().BoolVar(&renderSealed, "sealed", false, "compute and embed the validation hash")
	rootCmd.AddCommand(renderCmd)
}
