// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package catalog holds the static reference data for the declaration
// service: the usage-type taxonomy, content-integration modes, the human
// review ladder, the diagnostic checklist, the license list, the AI tool
// catalog, and field length limits.
//
// All tables are process-wide immutable data loaded at compile time. The
// stable Value/Key fields are the canonical identifiers stored in records;
// display labels live here only in their canonical Spanish form, with
// translations provided by the i18n package. Renderers must resolve labels
// through these tables and never hardcode them.
package catalog

// =============================================================================
// Usage Types
// =============================================================================

// UsageType is the stable internal key for a usage category.
// Keys are stored in records and are distinct from display labels.
type UsageType string

const (
	UsageDraft          UsageType = "draft"
	UsageCoauthor       UsageType = "coauthor"
	UsageWritingSupport UsageType = "writing-support"
	UsageIdeation       UsageType = "ideation"
	UsageAnalysis       UsageType = "analysis"
	UsageCoding         UsageType = "coding"
	UsageTranslation    UsageType = "translation"
	UsageReview         UsageType = "review"
	UsageOther          UsageType = "other"
)

// UsageTypeInfo describes one usage category with its canonical (Spanish)
// label, an explanatory hint, and example uses.
type UsageTypeInfo struct {
	Value    UsageType
	Label    string
	Hint     string
	Examples []string
}

// UsageTypes is the full usage-category taxonomy in canonical order.
var UsageTypes = []UsageTypeInfo{
	{
		Value: UsageDraft,
		Label: "Generación de Borrador",
		Hint:  "La IA escribió una primera versión completa o secciones sustanciales que sirvieron de base.",
		Examples: []string{
			"Generación de introducción para un paper",
			"Redacción de correos formales",
			"Primer borrador de capítulos teóricos",
		},
	},
	{
		Value: UsageCoauthor,
		Label: "Co-creación Sustantiva",
		Hint:  "Colaboración iterativa donde la IA y el humano construyen argumentos o narrativas conjuntamente.",
		Examples: []string{
			"Diálogo socrático para refinar argumentos",
			"Expansión de puntos clave definidos por el humano",
			"Desarrollo de escenarios hipotéticos",
		},
	},
	{
		Value: UsageWritingSupport,
		Label: "Asistencia de Estilo y Redacción",
		Hint:  "Mejora de la forma sin alterar el fondo o las ideas principales.",
		Examples: []string{
			"Parafraseo para mejorar fluidez (Tone adjustment)",
			"Corrección gramatical y ortográfica",
			"Adaptación de texto a formato académico estándar",
		},
	},
	{
		Value: UsageIdeation,
		Label: "Ideación y Estructura",
		Hint:  "Apoyo en la fase previa a la escritura (brainstorming, esquemas).",
		Examples: []string{
			"Generación de preguntas de investigación",
			"Creación de esquemas (outlines) para tesis",
			"Sugerencia de títulos o palabras clave",
		},
	},
	{
		Value: UsageAnalysis,
		Label: "Análisis de Datos",
		Hint:  "Uso de capacidades computacionales para sintetizar o transformar información.",
		Examples: []string{
			"Resumen de papers o bibliografía",
			"Extracción de entidades en textos",
			"Análisis de sentimiento en corpus de datos",
		},
	},
	{
		Value: UsageCoding,
		Label: "Generación de Código",
		Hint:  "Creación de scripts, algoritmos o modelos matemáticos.",
		Examples: []string{
			"Scripts de Python/R para análisis estadístico",
			"Consultas SQL complejas",
			"Debugging de código de investigación",
		},
	},
	{
		Value: UsageTranslation,
		Label: "Traducción Técnica",
		Hint:  "Traducción de textos académicos o técnicos entre idiomas.",
		Examples: []string{
			"Traducción de abstract al inglés",
			"Comprensión de bibliografía en otro idioma",
		},
	},
	{
		Value: UsageReview,
		Label: "Simulación de Revisión (Feedback)",
		Hint:  "La IA actúa como \"abogado del diablo\" o revisor par simulado.",
		Examples: []string{
			"Detección de falacias lógicas",
			"Crítica a la metodología propuesta",
			"Búsqueda de lagunas en la argumentación",
		},
	},
	{
		Value:    UsageOther,
		Label:    "Otro uso no listado",
		Hint:     "Cualquier otro uso que no encaje en las categorías anteriores.",
		Examples: []string{},
	},
}

// UsageTypeByValue looks up a usage category by its stable key.
func UsageTypeByValue(value string) (UsageTypeInfo, bool) {
	for _, ut := range UsageTypes {
		if string(ut.Value) == value {
			return ut, true
		}
	}
	return UsageTypeInfo{}, false
}

// ValidUsageType reports whether value is a known usage-category key.
func ValidUsageType(value string) bool {
	_, ok := UsageTypeByValue(value)
	return ok
}

// =============================================================================
// Content-Use Modes
// =============================================================================

// ContentModeKey is the stable internal key for a content-integration mode.
//
// Historical records store the canonical Spanish literal strings (see
// ContentModesES) rather than these keys; the keys exist so each language
// can map labels independently without positional coupling.
type ContentModeKey string

const (
	ModeVerbatim           ContentModeKey = "verbatim"
	ModePartialEdit        ContentModeKey = "partial-edit"
	ModeSubstantialRewrite ContentModeKey = "substantial-rewrite"
	ModeInspiration        ContentModeKey = "inspiration"
	ModeSynthesized        ContentModeKey = "synthesized"
	ModeOther              ContentModeKey = "other"
)

// ContentModeCount is the fixed number of content-use modes.
const ContentModeCount = 6

// ContentModeKeys lists the mode keys in canonical order. The position of
// a key here matches the position of its Spanish literal in ContentModesES.
var ContentModeKeys = [ContentModeCount]ContentModeKey{
	ModeVerbatim,
	ModePartialEdit,
	ModeSubstantialRewrite,
	ModeInspiration,
	ModeSynthesized,
	ModeOther,
}

// ContentModesES holds the canonical Spanish literal strings stored in
// historical declaration records. Order must never change: legacy records
// are remapped to keys by position in this list.
var ContentModesES = [ContentModeCount]string{
	"Incorporado tal cual (Verbatim)",
	"Editado parcialmente (ajustes menores)",
	"Reescrito sustancialmente",
	"Usado solo como inspiración/referencia",
	"Sintetizado con otras fuentes",
	"Otro",
}

// =============================================================================
// Human Review Ladder
// =============================================================================

// Bounds for the human review ladder.
const (
	HumanReviewMin = 0
	HumanReviewMax = 5
)

// ReviewLevelInfo describes one rung of the human-review ladder.
// Level 0 means the AI output was used without any verification and is
// flagged as high risk; level 5 is expert validation.
type ReviewLevelInfo struct {
	Level       int
	Label       string
	Description string
}

// ReviewLevels is the 0-5 human-review ladder with canonical labels.
var ReviewLevels = [HumanReviewMax + 1]ReviewLevelInfo{
	{
		Level:       0,
		Label:       "Nivel 0: Sin Revisión",
		Description: "El contenido generado se utilizó directamente sin verificación humana (RIESGO ALTO).",
	},
	{
		Level:       1,
		Label:       "Nivel 1: Revisión Superficial",
		Description: "Lectura rápida para verificar coherencia general, sin entrar en detalles de exactitud.",
	},
	{
		Level:       2,
		Label:       "Nivel 2: Revisión Gramatical",
		Description: "Corrección de errores tipográficos, sintaxis y tono, asumiendo la veracidad del contenido.",
	},
	{
		Level:       3,
		Label:       "Nivel 3: Verificación Selectiva",
		Description: "Comprobación aleatoria (spot-checking) de datos clave o afirmaciones dudosas.",
	},
	{
		Level:       4,
		Label:       "Nivel 4: Contrastación Documental",
		Description: "Verificación de citas, referencias y datos contra fuentes primarias fiables.",
	},
	{
		Level:       5,
		Label:       "Nivel 5: Validación Experta",
		Description: "Revisión profunda por un experto en la materia para asegurar integridad lógica y metodológica.",
	},
}

// =============================================================================
// Diagnostic Checklist
// =============================================================================

// ChecklistItem is one yes/no diagnostic question. Affirming it suggests a
// usage type with the given priority weight; the suggestion logic is a UI
// concern, but the selected IDs are persisted for traceability.
type ChecklistItem struct {
	ID       string
	Question string
	Suggests UsageType
	Priority int
}

// Checklist is the 7-question diagnostic used to recommend a classification.
var Checklist = []ChecklistItem{
	{ID: "q1", Question: "¿Generó texto nuevo (párrafos, capítulos) que usaste como base?", Suggests: UsageDraft, Priority: 100},
	{ID: "q2", Question: "¿Te ayudó a escribir código, scripts o fórmulas matemáticas?", Suggests: UsageCoding, Priority: 90},
	{ID: "q3", Question: "¿Resumió artículos, extrajo datos o analizó documentos PDF?", Suggests: UsageAnalysis, Priority: 80},
	{ID: "q4", Question: "¿Tradujo textos técnicos o abstracts a otro idioma?", Suggests: UsageTranslation, Priority: 70},
	{ID: "q5", Question: "¿Sugirió estructuras, preguntas de investigación o ideas?", Suggests: UsageIdeation, Priority: 60},
	{ID: "q6", Question: "¿Solo mejoró la redacción, el vocabulario o la ortografía?", Suggests: UsageWritingSupport, Priority: 40},
	{ID: "q7", Question: "¿Evaluó tu trabajo buscando errores o debilidades?", Suggests: UsageReview, Priority: 20},
}

// =============================================================================
// Licenses
// =============================================================================

// LicenseNone is the sentinel value for "no license declared". It is a
// valid stored value but is suppressed from rendered output.
const LicenseNone = "None"

// License pairs a stable license value with its display label.
type License struct {
	Value string
	Label string
}

// Licenses lists the selectable output licenses.
var Licenses = []License{
	{Value: "CC BY 4.0", Label: "CC BY (Atribución)"},
	{Value: "CC BY-SA 4.0", Label: "CC BY-SA (Atribución - Compartir Igual)"},
	{Value: "CC BY-NC 4.0", Label: "CC BY-NC (Atribución - No Comercial)"},
	{Value: "CC BY-ND 4.0", Label: "CC BY-ND (Atribución - Sin Derivadas)"},
	{Value: "CC0 1.0", Label: "CC0 (Dominio Público)"},
	{Value: "Copyright", Label: "Todos los derechos reservados (Copyright)"},
	{Value: LicenseNone, Label: "No especificar / No aplica"},
}

// LicenseByValue looks up a license entry by its stable value.
func LicenseByValue(value string) (License, bool) {
	for _, lic := range Licenses {
		if lic.Value == value {
			return lic, true
		}
	}
	return License{}, false
}

// ValidLicense reports whether value is a known license value.
// The empty string is accepted and treated as LicenseNone.
func ValidLicense(value string) bool {
	if value == "" {
		return true
	}
	_, ok := LicenseByValue(value)
	return ok
}

// =============================================================================
// Field Limits
// =============================================================================

// FieldLimit bounds one free-text input in characters. Limits are enforced
// at input-validation time, never by the renderer.
type FieldLimit struct {
	Min         int
	Max         int
	Recommended int
}

// FieldLimits maps free-text field names to their character bounds.
var FieldLimits = map[string]FieldLimit{
	"specific_purpose":        {Min: 20, Max: 500, Recommended: 100},
	"prompt_description":      {Min: 10, Max: 300, Recommended: 50},
	"content_use_context":     {Min: 10, Max: 400, Recommended: 100},
	"custom_usage_type":       {Min: 10, Max: 200, Recommended: 50},
	"custom_content_use_mode": {Min: 10, Max: 200, Recommended: 50},
}

// SignerDeclarationMaxLen bounds the optional public commitment statement.
const SignerDeclarationMaxLen = 280

// =============================================================================
// AI Tool Catalog
// =============================================================================

// AITool describes a known AI tool for form auto-completion.
type AITool struct {
	Name     string
	Provider string
	Versions []string
}

// AIToolsCatalog groups known tools by category. Purely advisory: the
// declaration's tool fields remain free text.
var AIToolsCatalog = map[string][]AITool{
	"commercial": {
		{Name: "ChatGPT", Provider: "OpenAI", Versions: []string{"GPT-3.5", "GPT-4", "GPT-4 Turbo", "GPT-4o", "o1", "o1-mini"}},
		{Name: "Claude", Provider: "Anthropic", Versions: []string{"Claude 3 Haiku", "Claude 3 Sonnet", "Claude 3.5 Sonnet", "Claude 3 Opus"}},
		{Name: "Gemini", Provider: "Google", Versions: []string{"Gemini 1.0 Pro", "Gemini 1.5 Pro", "Gemini 1.5 Flash", "Gemini 2.0 Flash"}},
		{Name: "Copilot", Provider: "Microsoft", Versions: []string{"GPT-4 based", "Copilot Pro"}},
		{Name: "Perplexity", Provider: "Perplexity AI", Versions: []string{"Standard", "Pro"}},
		{Name: "Grok", Provider: "xAI", Versions: []string{"Grok-1", "Grok-2"}},
		{Name: "DeepSeek", Provider: "DeepSeek", Versions: []string{"DeepSeek-V2", "DeepSeek-Coder"}},
	},
	"open_source": {
		{Name: "Llama", Provider: "Meta", Versions: []string{"Llama 2 7B", "Llama 2 13B", "Llama 2 70B", "Llama 3 8B", "Llama 3 70B", "Llama 3.1 405B"}},
		{Name: "Mistral", Provider: "Mistral AI", Versions: []string{"Mistral 7B", "Mixtral 8x7B", "Mixtral 8x22B"}},
		{Name: "Qwen", Provider: "Alibaba", Versions: []string{"Qwen 7B", "Qwen 14B", "Qwen 72B"}},
		{Name: "Falcon", Provider: "TII", Versions: []string{"Falcon 7B", "Falcon 40B", "Falcon 180B"}},
		{Name: "Phi", Provider: "Microsoft Research", Versions: []string{"Phi-2", "Phi-3 Mini", "Phi-3 Medium"}},
		{Name: "Vicuna", Provider: "LMSYS", Versions: []string{"Vicuna 7B", "Vicuna 13B", "Vicuna 33B"}},
		{Name: "MPT", Provider: "MosaicML", Versions: []string{"MPT-7B", "MPT-30B"}},
	},
	"local_platforms": {
		{Name: "Ollama", Provider: "Ollama", Versions: []string{"Llama 2", "Mistral", "Code Llama", "Phi-2", "Neural Chat"}},
		{Name: "LM Studio", Provider: "LM Studio", Versions: []string{"Multi-model support"}},
		{Name: "GPT4All", Provider: "Nomic AI", Versions: []string{"GPT4All-J", "MPT-7B-Chat"}},
		{Name: "Jan", Provider: "Jan.ai", Versions: []string{"Local LLM Runner"}},
		{Name: "LocalAI", Provider: "LocalAI", Versions: []string{"Multi-model support"}},
	},
	"specialized": {
		{Name: "GitHub Copilot", Provider: "GitHub/Microsoft", Versions: []string{"GPT-4 based"}},
		{Name: "Tabnine", Provider: "Tabnine", Versions: []string{"Pro", "Enterprise"}},
		{Name: "Amazon CodeWhisperer", Provider: "AWS", Versions: []string{"Standard", "Professional"}},
		{Name: "Grammarly", Provider: "Grammarly", Versions: []string{"Free", "Premium", "Business"}},
		{Name: "Wordtune", Provider: "AI21 Labs", Versions: []string{"Free", "Premium"}},
		{Name: "QuillBot", Provider: "QuillBot", Versions: []string{"Free", "Premium"}},
		{Name: "NotebookLM", Provider: "Google", Versions: []string{"Standard"}},
		{Name: "Elicit", Provider: "Elicit", Versions: []string{"Research Assistant"}},
	},
}
