// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package i18n maps language codes to translated catalog labels and UI
// strings, and resolves stored record values (canonical keys or legacy
// localized literals) to display labels in the requested language.
//
// Lookup misses never fail: unknown keys fall back down the chain
// requested language -> Spanish -> the raw key itself. Historical records
// may reference retired catalog entries, so passthrough is the documented
// compatibility posture, not a bug.
package i18n

import (
	"github.com/AleutianAI/AleutianDeclare/services/declare/catalog"
)

// Lang is a supported language code.
type Lang string

const (
	// ES is Spanish, the canonical language the catalog is authored in.
	ES Lang = "es"
	// EN is English.
	EN Lang = "en"
)

// Default is the language used when none is requested or the requested
// one is unknown.
const Default = ES

// Normalize maps an arbitrary language string to a supported Lang.
// Unknown or empty values fall back to the default.
func Normalize(s string) Lang {
	switch Lang(s) {
	case ES, EN:
		return Lang(s)
	default:
		return Default
	}
}

// usageLabels holds the per-language labels for usage-type keys. The
// Spanish entries mirror the canonical catalog labels.
var usageLabels = map[Lang]map[catalog.UsageType]string{
	ES: {
		catalog.UsageDraft:          "Generación de Borrador",
		catalog.UsageCoauthor:       "Co-creación Sustantiva",
		catalog.UsageWritingSupport: "Asistencia de Estilo y Redacción",
		catalog.UsageIdeation:       "Ideación y Estructura",
		catalog.UsageAnalysis:       "Análisis de Datos",
		catalog.UsageCoding:         "Generación de Código",
		catalog.UsageTranslation:    "Traducción Técnica",
		catalog.UsageReview:         "Simulación de Revisión (Feedback)",
		catalog.UsageOther:          "Otro uso no listado",
	},
	EN: {
		catalog.UsageDraft:          "Draft Generation",
		catalog.UsageCoauthor:       "Substantive Co-creation",
		catalog.UsageWritingSupport: "Style and Writing Assistance",
		catalog.UsageIdeation:       "Ideation and Structure",
		catalog.UsageAnalysis:       "Data Analysis",
		catalog.UsageCoding:         "Code Generation",
		catalog.UsageTranslation:    "Technical Translation",
		catalog.UsageReview:         "Review Simulation (Feedback)",
		catalog.UsageOther:          "Other use not listed",
	},
}

// contentModeLabels holds per-language content-mode labels, indexed in the
// canonical catalog order (catalog.ContentModeKeys). The last entry is
// always the "other" sentinel.
var contentModeLabels = map[Lang][catalog.ContentModeCount]string{
	ES: catalog.ContentModesES,
	EN: {
		"Incorporated verbatim (Verbatim)",
		"Partially edited (minor adjustments)",
		"Substantially rewritten",
		"Used only as inspiration/reference",
		"Synthesized with other sources",
		"Other",
	},
}

// reviewLevelLabels and reviewLevelDescriptions hold the per-language
// review ladder text, indexed by level.
var reviewLevelLabels = map[Lang][catalog.HumanReviewMax + 1]string{
	ES: {
		"Nivel 0: Sin Revisión",
		"Nivel 1: Revisión Superficial",
		"Nivel 2: Revisión Gramatical",
		"Nivel 3: Verificación Selectiva",
		"Nivel 4: Contrastación Documental",
		"Nivel 5: Validación Experta",
	},
	EN: {
		"Level 0: No Review",
		"Level 1: Superficial Review",
		"Level 2: Grammar Review",
		"Level 3: Selective Verification",
		"Level 4: Documentary Cross-checking",
		"Level 5: Expert Validation",
	},
}

var reviewLevelDescriptions = map[Lang][catalog.HumanReviewMax + 1]string{
	ES: {
		"El contenido generado se utilizó directamente sin verificación humana (RIESGO ALTO).",
		"Lectura rápida para verificar coherencia general, sin entrar en detalles de exactitud.",
		"Corrección de errores tipográficos, sintaxis y tono, asumiendo la veracidad del contenido.",
		"Comprobación aleatoria (spot-checking) de datos clave o afirmaciones dudosas.",
		"Verificación de citas, referencias y datos contra fuentes primarias fiables.",
		"Revisión profunda por un experto en la materia para asegurar integridad lógica y metodológica.",
	},
	EN: {
		"The generated content was used directly without human verification (HIGH RISK).",
		"Quick read to check overall coherence, without going into accuracy details.",
		"Correction of typos, syntax and tone, assuming the content is accurate.",
		"Random spot-checking of key data or doubtful claims.",
		"Verification of citations, references and data against reliable primary sources.",
		"In-depth review by a subject-matter expert to ensure logical and methodological integrity.",
	},
}

// checklistQuestions holds per-language diagnostic question text by item ID.
var checklistQuestions = map[Lang]map[string]string{
	ES: {
		"q1": "¿Generó texto nuevo (párrafos, capítulos) que usaste como base?",
		"q2": "¿Te ayudó a escribir código, scripts o fórmulas matemáticas?",
		"q3": "¿Resumió artículos, extrajo datos o analizó documentos PDF?",
		"q4": "¿Tradujo textos técnicos o abstracts a otro idioma?",
		"q5": "¿Sugirió estructuras, preguntas de investigación o ideas?",
		"q6": "¿Solo mejoró la redacción, el vocabulario o la ortografía?",
		"q7": "¿Evaluó tu trabajo buscando errores o debilidades?",
	},
	EN: {
		"q1": "Did it generate new text (paragraphs, chapters) you used as a base?",
		"q2": "Did it help you write code, scripts or mathematical formulas?",
		"q3": "Did it summarize articles, extract data or analyze PDF documents?",
		"q4": "Did it translate technical texts or abstracts into another language?",
		"q5": "Did it suggest structures, research questions or ideas?",
		"q6": "Did it only improve the writing, vocabulary or spelling?",
		"q7": "Did it evaluate your work looking for errors or weaknesses?",
	},
}

// uiStrings holds the per-language strings used by the declaration
// renderer and the public UI.
var uiStrings = map[Lang]map[string]string{
	ES: {
		"decl_title":             "DECLARACIÓN DE USO DE INTELIGENCIA ARTIFICIAL",
		"decl_section_0":         "0. DIAGNÓSTICO DE TRAZABILIDAD:",
		"decl_section_1":         "1. TIPO DE USO DECLARADO:",
		"decl_section_2":         "2. HERRAMIENTA UTILIZADA:",
		"decl_section_3":         "3. PROPÓSITO ESPECÍFICO:",
		"decl_section_4":         "4. PROMPTS PRINCIPALES UTILIZADOS:",
		"decl_section_5":         "5. INTEGRACIÓN DEL CONTENIDO:",
		"decl_section_6":         "6. SUPERVISIÓN HUMANA:",
		"decl_section_7":         "7. LICENCIA DE USO:",
		"decl_tool_name":         "Nombre",
		"decl_tool_version":      "Versión",
		"decl_tool_provider":     "Proveedor",
		"decl_tool_date":         "Fecha de uso",
		"decl_not_specified":     "No especificado",
		"decl_not_described":     "No descrito",
		"decl_manual_selection":  "Selección manual de categorías",
		"decl_content_mode":      "Modo",
		"decl_content_context":   "Contexto",
		"decl_review_level":      "Nivel",
		"decl_review_description": "Descripción",
		"decl_reviewed_by":       "Revisado por",
		"decl_reviewer_role":     "Rol del revisor",
		"decl_id_registry":       "ID de Registro",
		"decl_hash_validation":   "Hash de Validación",
		"usage_other":            "Otro uso no listado",
	},
	EN: {
		"decl_title":             "ARTIFICIAL INTELLIGENCE USAGE DECLARATION",
		"decl_section_0":         "0. TRACEABILITY DIAGNOSTIC:",
		"decl_section_1":         "1. DECLARED USAGE TYPE:",
		"decl_section_2":         "2. TOOL USED:",
		"decl_section_3":         "3. SPECIFIC PURPOSE:",
		"decl_section_4":         "4. MAIN PROMPTS USED:",
		"decl_section_5":         "5. CONTENT INTEGRATION:",
		"decl_section_6":         "6. HUMAN OVERSIGHT:",
		"decl_section_7":         "7. USAGE LICENSE:",
		"decl_tool_name":         "Name",
		"decl_tool_version":      "Version",
		"decl_tool_provider":     "Provider",
		"decl_tool_date":         "Date of use",
		"decl_not_specified":     "Not specified",
		"decl_not_described":     "Not described",
		"decl_manual_selection":  "Manual category selection",
		"decl_content_mode":      "Mode",
		"decl_content_context":   "Context",
		"decl_review_level":      "Level",
		"decl_review_description": "Description",
		"decl_reviewed_by":       "Reviewed by",
		"decl_reviewer_role":     "Reviewer role",
		"decl_id_registry":       "Registry ID",
		"decl_hash_validation":   "Validation Hash",
		"usage_other":            "Other use not listed",
	},
}
