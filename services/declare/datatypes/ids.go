// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

import (
	"crypto/rand"
	"fmt"
)

// publicIDAlphabet is the character set for public record identifiers.
const publicIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PublicIDLen is the length of declaration and signer public identifiers.
const PublicIDLen = 8

// NewPublicID generates a random 8-character identifier over A-Z0-9.
//
// Uniqueness is enforced by the store's unique index, not here; on a
// collision the caller regenerates or rejects.
func NewPublicID() (string, error) {
	buf := make([]byte, PublicIDLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate public id: %w", err)
	}
	id := make([]byte, PublicIDLen)
	for i, b := range buf {
		id[i] = publicIDAlphabet[int(b)%len(publicIDAlphabet)]
	}
	return string(id), nil
}
