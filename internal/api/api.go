// Copyright (C) 2024 Areeb Ur Rub
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package api provides the Ascon implementation abstract interface.
package api

const (
	// KeySize is the Ascon-128 key size in bytes.
	KeySize = 16

	// NonceSize is the Ascon-128 nonce size in bytes.
	NonceSize = 16

	// TagSize is the Ascon-128 authentication tag size in bytes.
	TagSize = 16

	// BlockSize is the Ascon-128 rate in bytes.
	BlockSize = 8

	// StateSize is the sponge state size in 64-bit words.
	StateSize = 5

	// RoundsA is the round count for initialization and finalization.
	RoundsA = 12

	// RoundsB is the round count for data processing.
	RoundsB = 6

	// IV is the Ascon-128 initialization constant, packing the key size,
	// rate, and both round counts as specified by the standard.
	IV = uint64(KeySize*8)<<56 | uint64(BlockSize*8)<<48 | RoundsA<<40 | RoundsB<<32
)

// RoundConstants is the full 12-round constant schedule. A permutation of
// n < 12 rounds consumes the last n entries, so the final round always uses
// 0x4b regardless of the requested round count.
var RoundConstants = [RoundsA]uint64{
	0xf0, 0xe1, 0xd2, 0xc3, 0xb4, 0xa5, 0x96, 0x87, 0x78, 0x69, 0x5a, 0x4b,
}

// SBox is the published Ascon 5-bit substitution table, indexed by the
// 5-bit column read MSB-first from word 0 down to word 4. The round
// function computes it bit-sliced; tests assert the two forms agree.
var SBox = [32]byte{
	0x04, 0x0b, 0x1f, 0x14, 0x1a, 0x15, 0x09, 0x02,
	0x1b, 0x05, 0x08, 0x12, 0x1d, 0x03, 0x06, 0x1c,
	0x1e, 0x13, 0x07, 0x0e, 0x00, 0x0d, 0x11, 0x18,
	0x10, 0x0c, 0x01, 0x19, 0x16, 0x0a, 0x0f, 0x17,
}

// Factory is an Instance factory.
type Factory interface {
	// Name returns the name of the implementation.
	Name() string

	// New constructs a new keyed instance. rec may be nil, in which case
	// the instance records nothing.
	New(key []byte, rec *Recorder) Instance
}

// Instance is a keyed Ascon-128 instance.
type Instance interface {
	// Reset attempts to clear the instance of sensitive data.
	Reset()

	// Seal encrypts and authenticates plaintext and additional data and
	// appends the result to dst, returning the updated slice.
	Seal(dst, nonce, plaintext, additionalData []byte) []byte

	// Open decrypts and authenticates ciphertext, authenticates the additional
	// data and, if successful, appends the resulting plaintext to dst.
	Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, bool)
}
