// Copyright (C) 2024 Areeb Ur Rub
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package ref provides the portable Ascon-128 implementation.
package ref

import (
	"crypto/subtle"
	"encoding/binary"

	"gitlab.com/yawning/slice.git"

	"github.com/areeburrub/ascon/internal/api"
)

// Factory constructs portable Ascon-128 instances.
var Factory api.Factory = &refFactory{}

type refFactory struct{}

func (f *refFactory) Name() string {
	return "ref"
}

func (f *refFactory) New(key []byte, rec *api.Recorder) api.Instance {
	return &refInstance{
		k0:  binary.BigEndian.Uint64(key[0:8]),
		k1:  binary.BigEndian.Uint64(key[8:16]),
		rec: rec,
	}
}

type refInstance struct {
	k0, k1 uint64
	rec    *api.Recorder
}

func (inst *refInstance) Reset() {
	inst.k0 = 0
	inst.k1 = 0
}

func (inst *refInstance) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	ret, out := slice.ForAppend(dst, len(plaintext)+api.TagSize)

	s := state{rec: inst.rec}
	s.initialize(inst.k0, inst.k1, nonce)
	s.absorb(additionalData)
	s.encrypt(out[:len(plaintext)], plaintext)
	s.finalize(inst.k0, inst.k1)
	s.tag(out[len(plaintext):])

	return ret
}

func (inst *refInstance) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, bool) {
	ptLen := len(ciphertext) - api.TagSize
	ret, out := slice.ForAppend(dst, ptLen)

	s := state{rec: inst.rec}
	s.initialize(inst.k0, inst.k1, nonce)
	s.absorb(additionalData)
	s.decrypt(out, ciphertext[:ptLen])
	s.finalize(inst.k0, inst.k1)

	var computed [api.TagSize]byte
	s.tag(computed[:])

	ok := subtle.ConstantTimeCompare(ciphertext[ptLen:], computed[:]) == 1
	s.record(api.PhaseVerifyTag, -1, api.StepCompare, computed[:])

	return ret, ok
}
