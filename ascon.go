// Copyright (C) 2024 Areeb Ur Rub
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package ascon implements the Ascon-128 AEAD algorithm.
package ascon

import (
	"crypto/cipher"
	"errors"

	"github.com/areeburrub/ascon/internal/api"
	"github.com/areeburrub/ascon/internal/hardware"
	"github.com/areeburrub/ascon/internal/ref"
)

const (
	// KeySize is the Ascon-128 key size in bytes.
	KeySize = api.KeySize

	// NonceSize is the Ascon-128 nonce size in bytes.
	NonceSize = api.NonceSize

	// TagSize is the Ascon-128 authentication tag size in bytes.
	TagSize = api.TagSize

	// BlockSize is the Ascon-128 rate in bytes.
	BlockSize = api.BlockSize
)

var (
	// ErrInvalidKeySize is the error returned when the key size is invalid.
	ErrInvalidKeySize = errors.New("ascon: invalid key size")

	// ErrInvalidNonceSize is the error returned/paniced when the nonce size
	// is invalid.
	ErrInvalidNonceSize = errors.New("ascon: invalid nonce size")

	// ErrOpen is the error returned when the message authentication fails
	// durring an Open call.
	ErrOpen = errors.New("ascon: message authentication failure")

	chosenFactory      api.Factory
	supportedFactories []api.Factory
)

type aeadInstance struct {
	inner api.Instance
}

func (aead *aeadInstance) NonceSize() int {
	return NonceSize
}

func (aead *aeadInstance) Overhead() int {
	return TagSize
}

// Seal encrypts and authenticates plaintext and additionalData and appends
// the ciphertext followed by the tag to dst. The nonce must be unique for
// every (key, message) pair; the caller is responsible for freshness.
func (aead *aeadInstance) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic(ErrInvalidNonceSize)
	}

	return aead.inner.Seal(dst, nonce, plaintext, additionalData)
}

// Open authenticates ciphertext and additionalData and, on success, appends
// the plaintext to dst. No plaintext is ever released on authentication
// failure.
func (aead *aeadInstance) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonceSize
	}
	if len(ciphertext) < TagSize {
		return nil, ErrOpen
	}

	var ok bool
	dst, ok = aead.inner.Open(dst, nonce, ciphertext, additionalData)
	if !ok {
		for i := range dst {
			dst[i] = 0
		}
		return nil, ErrOpen
	}

	return dst, nil
}

func (aead *aeadInstance) Reset() {
	aead.inner.Reset()
}

// New creates a new Ascon-128 instance with the provided key.
func New(key []byte) (cipher.AEAD, error) {
	return NewWithRecorder(key, nil)
}

// NewWithRecorder creates a new Ascon-128 instance that appends a state
// snapshot to rec at every protocol and permutation sub-step. A nil rec
// behaves exactly like New.
func NewWithRecorder(key []byte, rec *Recorder) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}

	return &aeadInstance{
		inner: chosenFactory.New(key, rec),
	}, nil
}

// Encrypt encrypts and authenticates plaintext and additionalData, returning
// the ciphertext and tag separately. The nonce must be unique per
// (key, message) pair; uniqueness is the caller's responsibility.
func Encrypt(key, nonce, plaintext, additionalData []byte) (ciphertext, tag []byte, err error) {
	if len(nonce) != NonceSize {
		return nil, nil, ErrInvalidNonceSize
	}

	aead, err := New(key)
	if err != nil {
		return nil, nil, err
	}

	sealed := aead.Seal(nil, nonce, plaintext, additionalData)
	return sealed[:len(plaintext)], sealed[len(plaintext):], nil
}

// Decrypt authenticates ciphertext, tag and additionalData and returns the
// plaintext. On any failure no plaintext is returned; ErrOpen distinguishes
// authentication failure from malformed inputs.
func Decrypt(key, nonce, ciphertext, tag, additionalData []byte) ([]byte, error) {
	if len(tag) != TagSize {
		return nil, ErrOpen
	}

	aead, err := New(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	return aead.Open(nil, nonce, sealed, additionalData)
}

func init() {
	supportedFactories = append(supportedFactories, ref.Factory)
	if hardware.Factory != nil {
		supportedFactories = append([]api.Factory{hardware.Factory}, supportedFactories...)
	}

	chosenFactory = supportedFactories[0]
}
