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

// DefaultCountryFlag is returned for unknown or missing countries.
const DefaultCountryFlag = "🌍"

// countryFlags maps signer country names to flag emoji.
var countryFlags = map[string]string{
	"Alemania":             "🇩🇪",
	"Argentina":            "🇦🇷",
	"Bélgica":              "🇧🇪",
	"Bolivia":              "🇧🇴",
	"Brasil":               "🇧🇷",
	"Chile":                "🇨🇱",
	"Colombia":             "🇨🇴",
	"Costa Rica":           "🇨🇷",
	"Cuba":                 "🇨🇺",
	"Ecuador":              "🇪🇨",
	"El Salvador":          "🇸🇻",
	"España":               "🇪🇸",
	"Francia":              "🇫🇷",
	"Guatemala":            "🇬🇹",
	"Honduras":             "🇭🇳",
	"Italia":               "🇮🇹",
	"México":               "🇲🇽",
	"Nicaragua":            "🇳🇮",
	"Panamá":               "🇵🇦",
	"Paraguay":             "🇵🇾",
	"Perú":                 "🇵🇪",
	"Polonia":              "🇵🇱",
	"Portugal":             "🇵🇹",
	"Puerto Rico":          "🇵🇷",
	"Reino Unido":          "🇬🇧",
	"República Dominicana": "🇩🇴",
	"Suiza":                "🇨🇭",
	"Uruguay":              "🇺🇾",
	"Venezuela":            "🇻🇪",
	"Otro":                 DefaultCountryFlag,
}

// CountryFlag returns the flag emoji for a country name, or the default
// globe for unknown or empty countries.
func CountryFlag(country string) string {
	if country == "" {
		return DefaultCountryFlag
	}
	if flag, ok := countryFlags[country]; ok {
		return flag
	}
	return DefaultCountryFlag
}
