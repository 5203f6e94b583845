// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianDeclare/services/declare/datatypes"
	"github.com/AleutianAI/AleutianDeclare/services/declare/hashing"
	"github.com/AleutianAI/AleutianDeclare/services/declare/i18n"
)

// grammarlyDeclaration mirrors a typical style-assistance disclosure.
func grammarlyDeclaration() *datatypes.Declaration {
	return &datatypes.Declaration{
		DeclarationID:        "AB12CD34",
		SelectedChecklistIDs: []string{"q6"},
		UsageTypes:           []string{"writing-support"},
		AIToolName:           "Grammarly",
		AIToolVersion:        "Premium",
		AIToolProvider:       "Grammarly Inc.",
		AIToolDateMonth:      3,
		AIToolDateYear:       2024,
		SpecificPurpose:      "Corrección de estilo del capítulo de metodología.",
		Prompts: []datatypes.Prompt{
			{Description: "Mejora la redacción de este párrafo"},
		},
		ContentUseModes:  []string{"Editado parcialmente (ajustes menores)"},
		HumanReviewLevel: 2,
		ReviewerName:     "Luis Romero",
		ReviewerRole:     "Autor",
		License:          "CC BY 4.0",
		CreatedAt:        time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
	}
}

func TestTextSpanish(t *testing.T) {
	d := grammarlyDeclaration()
	text := Text(d, "", i18n.ES)

	t.Run("title and separator", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(text,
			"DECLARACIÓN DE USO DE INTELIGENCIA ARTIFICIAL\n"+strings.Repeat("═", 65)+"\n\n"))
	})

	t.Run("checked checklist lines", func(t *testing.T) {
		assert.Contains(t, text, "0. DIAGNÓSTICO DE TRAZABILIDAD:")
		assert.Contains(t, text, "   [x] ¿Solo mejoró la redacción, el vocabulario o la ortografía?")
	})

	t.Run("usage types upper-cased", func(t *testing.T) {
		assert.Contains(t, text, "1. TIPO DE USO DECLARADO:")
		assert.Contains(t, text, "   ASISTENCIA DE ESTILO Y REDACCIÓN")
	})

	t.Run("tool block with zero-padded date", func(t *testing.T) {
		assert.Contains(t, text, "   Nombre: Grammarly")
		assert.Contains(t, text, "   Versión: Premium")
		assert.Contains(t, text, "   Proveedor: Grammarly Inc.")
		assert.Contains(t, text, "   Fecha de uso: 03/2024")
	})

	t.Run("prompts are numbered and quoted", func(t *testing.T) {
		assert.Contains(t, text, "4. PROMPTS PRINCIPALES UTILIZADOS:")
		assert.Contains(t, text, `   1. "Mejora la redacción de este párrafo"`)
	})

	t.Run("integration mode", func(t *testing.T) {
		assert.Contains(t, text, "5. INTEGRACIÓN DEL CONTENIDO:")
		assert.Contains(t, text, "   Modo: Editado parcialmente (ajustes menores)")
	})

	t.Run("review block with short label", func(t *testing.T) {
		assert.Contains(t, text, "6. SUPERVISIÓN HUMANA:")
		assert.Contains(t, text, "   Nivel 2: Revisión Gramatical")
		assert.Contains(t, text, "   Descripción: Corrección de errores tipográficos")
		assert.Contains(t, text, "   Revisado por: Luis Romero")
		assert.Contains(t, text, "   Rol del revisor: Autor")
	})

	t.Run("license bullet", func(t *testing.T) {
		assert.Contains(t, text, "7. LICENCIA DE USO:")
		assert.Contains(t, text, "   • CC BY (Atribución)")
	})

	t.Run("no footer without hash", func(t *testing.T) {
		assert.NotContains(t, text, "ID de Registro")
		assert.NotContains(t, text, "Hash de Validación")
	})
}

func TestTextEnglish(t *testing.T) {
	d := grammarlyDeclaration()
	text := Text(d, "", i18n.EN)

	assert.Contains(t, text, "ARTIFICIAL INTELLIGENCE USAGE DECLARATION")
	assert.Contains(t, text, "   STYLE AND WRITING ASSISTANCE")
	assert.Contains(t, text, "   Date of use: 03/2024")
	assert.Contains(t, text, "   Mode: Partially edited (minor adjustments)")
	assert.Contains(t, text, "   Level 2: Grammar Review")
}

func TestTextFooter(t *testing.T) {
	d := grammarlyDeclaration()
	hash := hashing.DeclarationHash(Text(d, "", i18n.ES))
	sealed := Text(d, hash, i18n.ES)

	assert.Contains(t, sealed, strings.Repeat("-", 65))
	assert.Contains(t, sealed, "ID de Registro: AB12CD34")
	assert.Contains(t, sealed, "Hash de Validación: "+hash)

	t.Run("footer is the only difference", func(t *testing.T) {
		unsealed := Text(d, "", i18n.ES)
		assert.True(t, strings.HasPrefix(sealed, unsealed))
	})
}

func TestTextDeterminism(t *testing.T) {
	d := grammarlyDeclaration()
	assert.Equal(t, Text(d, "", i18n.ES), Text(d, "", i18n.ES))
	assert.Equal(t,
		hashing.DeclarationHash(Text(d, "", i18n.ES)),
		hashing.DeclarationHash(Text(d, "", i18n.ES)))
}

func TestTextEdgeCases(t *testing.T) {
	t.Run("no checklist selection shows manual placeholder", func(t *testing.T) {
		d := grammarlyDeclaration()
		d.SelectedChecklistIDs = nil
		text := Text(d, "", i18n.ES)
		assert.Contains(t, text, "   (Selección manual de categorías)")
	})

	t.Run("unknown checklist ids are skipped without a placeholder", func(t *testing.T) {
		d := grammarlyDeclaration()
		d.SelectedChecklistIDs = []string{"q99"}
		text := Text(d, "", i18n.ES)
		assert.NotContains(t, text, "   (Selección manual de categorías)")
		assert.NotContains(t, text, "[x]")
	})

	t.Run("retired checklist ids do not disturb surviving lines", func(t *testing.T) {
		d := grammarlyDeclaration()
		d.SelectedChecklistIDs = []string{"q99", "q2"}
		text := Text(d, "", i18n.ES)
		assert.NotContains(t, text, "   (Selección manual de categorías)")
		assert.Equal(t, 1, strings.Count(text, "[x]"))
	})

	t.Run("blank prompts are skipped and numbering stays dense", func(t *testing.T) {
		d := grammarlyDeclaration()
		d.Prompts = []datatypes.Prompt{
			{Description: "  "},
			{Description: "Primer prompt real"},
			{Description: ""},
			{Description: "Segundo prompt real"},
		}
		text := Text(d, "", i18n.ES)
		assert.Contains(t, text, `   1. "Primer prompt real"`)
		assert.Contains(t, text, `   2. "Segundo prompt real"`)
	})

	t.Run("all prompts blank omits the section", func(t *testing.T) {
		d := grammarlyDeclaration()
		d.Prompts = []datatypes.Prompt{{Description: " "}}
		text := Text(d, "", i18n.ES)
		assert.NotContains(t, text, "4. PROMPTS")
	})

	t.Run("no modes omits the integration section", func(t *testing.T) {
		d := grammarlyDeclaration()
		d.ContentUseModes = nil
		text := Text(d, "", i18n.ES)
		assert.NotContains(t, text, "5. INTEGRACIÓN")
	})

	t.Run("context line only when present", func(t *testing.T) {
		d := grammarlyDeclaration()
		d.ContentUseContext = "Capítulos 2 y 3 de la tesis"
		text := Text(d, "", i18n.ES)
		assert.Contains(t, text, "   Contexto: Capítulos 2 y 3 de la tesis")
	})

	t.Run("level zero hides reviewer lines", func(t *testing.T) {
		d := grammarlyDeclaration()
		d.HumanReviewLevel = 0
		text := Text(d, "", i18n.ES)
		assert.Contains(t, text, "   Nivel 0: Sin Revisión")
		assert.NotContains(t, text, "Revisado por")
		assert.NotContains(t, text, "Rol del revisor")
	})

	t.Run("blank reviewer fields are omitted", func(t *testing.T) {
		d := grammarlyDeclaration()
		d.ReviewerName = ""
		d.ReviewerRole = ""
		text := Text(d, "", i18n.ES)
		assert.NotContains(t, text, "Revisado por")
	})

	t.Run("none license suppresses the section", func(t *testing.T) {
		d := grammarlyDeclaration()
		d.License = "None"
		text := Text(d, "", i18n.ES)
		assert.NotContains(t, text, "7. LICENCIA DE USO:")
	})

	t.Run("empty tool fields show placeholders", func(t *testing.T) {
		d := grammarlyDeclaration()
		d.AIToolName = ""
		d.AIToolVersion = ""
		d.AIToolProvider = ""
		text := Text(d, "", i18n.ES)
		assert.Contains(t, text, "   Nombre: No especificado")
		assert.Contains(t, text, "   Versión: —")
		assert.Contains(t, text, "   Proveedor: —")
	})

	t.Run("custom other usage substitutes the label", func(t *testing.T) {
		d := grammarlyDeclaration()
		d.UsageTypes = []string{"other"}
		d.CustomUsageType = "Generación de audio explicativo"
		text := Text(d, "", i18n.ES)
		assert.Contains(t, text, "   GENERACIÓN DE AUDIO EXPLICATIVO")
	})
}

func TestJSONPayload(t *testing.T) {
	d := grammarlyDeclaration()
	payload, err := JSON(d, "A1B2C3D4E5F60718", i18n.ES)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &got))

	t.Run("envelope constants", func(t *testing.T) {
		assert.Equal(t, "academic-ai-transparency", got["declarationType"])
		assert.Equal(t, "1.0.0", got["schemaVersion"])
		assert.Equal(t, "1.1.0", got["softwareVersion"])
		assert.Equal(t, "AB12CD34", got["id"])
		assert.Equal(t, "A1B2C3D4E5F60718", got["validationHash"])
	})

	t.Run("generated timestamp", func(t *testing.T) {
		assert.Equal(t, "2024-03-05T12:00:00Z", got["generatedAt"])
	})

	t.Run("tool block with YYYY-MM date", func(t *testing.T) {
		tool := got["tool"].(map[string]any)
		assert.Equal(t, "Grammarly", tool["name"])
		assert.Equal(t, "2024-03", tool["date"])
	})

	t.Run("usage carries keys and labels", func(t *testing.T) {
		usage := got["usage"].(map[string]any)
		assert.Equal(t, []any{"writing-support"}, usage["types"])
		assert.Equal(t, []any{"Asistencia de Estilo y Redacción"}, usage["labels"])
		assert.Nil(t, usage["customDescription"])
	})

	t.Run("human review block", func(t *testing.T) {
		review := got["humanReview"].(map[string]any)
		assert.Equal(t, float64(2), review["level"])
		assert.Equal(t, "Nivel 2: Revisión Gramatical", review["label"])
		assert.Equal(t, "Luis Romero", review["reviewerName"])
	})

	t.Run("traceability ids", func(t *testing.T) {
		trace := got["traceability"].(map[string]any)
		assert.Equal(t, []any{"q6"}, trace["diagnosticIds"])
	})
}

func TestJSONExplicitNulls(t *testing.T) {
	d := grammarlyDeclaration()
	d.License = "None"
	d.ReviewerName = ""
	d.ReviewerRole = ""
	d.ContentUseContext = ""
	d.CreatedAt = time.Time{}
	payload, err := JSON(d, "", i18n.ES)
	require.NoError(t, err)

	assert.Contains(t, payload, `"license": null`)
	assert.Contains(t, payload, `"reviewerName": null`)
	assert.Contains(t, payload, `"reviewerRole": null`)
	assert.Contains(t, payload, `"context": null`)
	assert.Contains(t, payload, `"generatedAt": null`)
	assert.Contains(t, payload, `"validationHash": "pending"`)
}

func TestJSONEmptyListsSerializeAsArrays(t *testing.T) {
	d := &datatypes.Declaration{DeclarationID: "ZZ99XX88", IsDraft: true}
	payload, err := JSON(d, "", i18n.ES)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &got))

	usage := got["usage"].(map[string]any)
	assert.Equal(t, []any{}, usage["types"])
	assert.Equal(t, []any{}, usage["labels"])
	assert.Equal(t, []any{}, got["prompts"])
	trace := got["traceability"].(map[string]any)
	assert.Equal(t, []any{}, trace["diagnosticIds"])
	integration := got["integration"].(map[string]any)
	assert.Equal(t, []any{}, integration["modes"])
}

func TestJSONCustomUsageDescription(t *testing.T) {
	d := grammarlyDeclaration()
	d.UsageTypes = []string{"other"}
	d.CustomUsageType = "Generación de audio"
	payload, err := JSON(d, "", i18n.ES)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &got))
	usage := got["usage"].(map[string]any)
	assert.Equal(t, "Generación de audio", usage["customDescription"])
	assert.Equal(t, []any{"Generación de audio"}, usage["labels"])
}

func TestJSONModesAreLocalized(t *testing.T) {
	d := grammarlyDeclaration()
	payload, err := JSON(d, "", i18n.EN)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &got))
	integration := got["integration"].(map[string]any)
	assert.Equal(t, []any{"Partially edited (minor adjustments)"}, integration["modes"])
}
