// Copyright (C) 2024 Areeb Ur Rub
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package ascon

import (
	"encoding/hex"
	"errors"
	"strings"
)

// ErrInvalidEncoding is the error returned when hex input is malformed
// (odd length or non-hex characters).
var ErrInvalidEncoding = errors.New("ascon: malformed hex input")

// BytesToHex encodes b as a lowercase hex string.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// HexToBytes decodes a hex string. It is the exact inverse of BytesToHex
// for valid input and rejects odd-length or non-hex input outright rather
// than returning a best-effort parse.
func HexToBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidEncoding
	}

	return b, nil
}

// TextToBytes encodes text as UTF-8. It never fails.
func TextToBytes(text string) []byte {
	return []byte(text)
}

// BytesToText decodes b as UTF-8, substituting the replacement character
// for invalid sequences rather than failing.
func BytesToText(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
