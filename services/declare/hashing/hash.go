// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package hashing provides the content digests used across the
// declaration service. All digests are SHA-256 over the UTF-8 bytes of
// the input, with no salt and no algorithm versioning: callers own the
// ordering of whatever fields they concatenate into the input string.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// DeclarationHashLen is the hex length of a declaration content hash.
const DeclarationHashLen = 16

// IdentityHashShortLen is the hex length of a signer short hash.
const IdentityHashShortLen = 8

// DeclarationHash computes the content-integrity digest of a rendered
// declaration: the first 16 hex characters of SHA-256, uppercased.
func DeclarationHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return strings.ToUpper(hex.EncodeToString(sum[:])[:DeclarationHashLen])
}

// IdentityHash computes a signer's identity fingerprint: the full
// 64-character lowercase hex SHA-256 digest and its 8-character short
// form used in public verification URLs.
func IdentityHash(content string) (full string, short string) {
	sum := sha256.Sum256([]byte(content))
	full = hex.EncodeToString(sum[:])
	return full, full[:IdentityHashShortLen]
}
