// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package catalog

// Preset pre-fills the declaration form for a common scenario.
type Preset struct {
	ID               string
	Name             string
	Description      string
	UsageTypes       []UsageType
	SpecificPurpose  string
	ContentUseModes  []string
	HumanReviewLevel int
	ReviewerRole     string
}

// Presets are the built-in form presets.
var Presets = []Preset{
	{
		ID:              "thesis-edit",
		Name:            "Corrección de Tesis",
		Description:     "Uso de IA solo para mejorar redacción y ortografía.",
		UsageTypes:      []UsageType{UsageWritingSupport},
		SpecificPurpose: "Mejorar la claridad, cohesión y ortografía de los capítulos de resultados y discusión, sin alterar los datos ni las conclusiones.",
		ContentUseModes: []string{
			"Editado parcialmente (ajustes menores)",
		},
		HumanReviewLevel: 5,
		ReviewerRole:     "Autor Principal",
	},
	{
		ID:              "coding-assist",
		Name:            "Análisis de Datos (R/Python)",
		Description:     "Generación de scripts para procesar datos.",
		UsageTypes:      []UsageType{UsageCoding, UsageAnalysis},
		SpecificPurpose: "Generación de scripts en Python para limpieza de dataset y visualización de gráficos exploratorios (Matplotlib).",
		ContentUseModes: []string{
			"Incorporado tal cual (Verbatim)",
			"Editado parcialmente (ajustes menores)",
		},
		HumanReviewLevel: 5,
		ReviewerRole:     "Investigador de Datos",
	},
	{
		ID:              "translation",
		Name:            "Traducción de Abstract",
		Description:     "Traducción de resúmenes académicos.",
		UsageTypes:      []UsageType{UsageTranslation},
		SpecificPurpose: "Traducción del resumen ejecutivo del español al inglés para publicación internacional.",
		ContentUseModes: []string{
			"Editado parcialmente (ajustes menores)",
		},
		HumanReviewLevel: 4,
		ReviewerRole:     "Autor / Traductor",
	},
}

// StepLabels names the stages of the form wizard in display order.
var StepLabels = []string{"Diagnóstico", "Clasificación", "Detalles", "Resultado"}

// MonthsES holds the Spanish month names for the tool-version date picker.
var MonthsES = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// GlossaryTerm defines one term shown in the UI glossary.
type GlossaryTerm struct {
	Term       string
	Definition string
}

// Glossary lists the UI glossary entries.
var Glossary = []GlossaryTerm{
	{Term: "Prompt", Definition: "La instrucción o texto de entrada que se le da a la IA para generar una respuesta."},
	{Term: "Alucinación", Definition: "Fenómeno donde la IA genera información falsa o inventada con apariencia de ser real."},
	{Term: "Sesgo (Bias)", Definition: "Prejuicios o inclinaciones injustas presentes en los datos de entrenamiento de la IA que se reflejan en sus respuestas."},
	{Term: "Verbatim", Definition: "Copia textual, palabra por palabra, del contenido generado."},
	{Term: "LLM (Large Language Model)", Definition: "Modelo de lenguaje grande (como GPT, Claude, Gemini) entrenado con vastas cantidades de texto."},
}
