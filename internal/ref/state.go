// Copyright (C) 2024 Areeb Ur Rub
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package ref

import (
	"encoding/binary"

	"github.com/areeburrub/ascon/internal/api"
)

// state is the 320-bit sponge state. x0 is the rate word, x1-x4 the
// capacity. One state is owned by exactly one Seal or Open call.
type state struct {
	x0, x1, x2, x3, x4 uint64

	rec *api.Recorder
}

func (s *state) words() [api.StateSize]uint64 {
	return [api.StateSize]uint64{s.x0, s.x1, s.x2, s.x3, s.x4}
}

func (s *state) record(phase api.Phase, round int, step string, data []byte) {
	if s.rec == nil {
		return
	}

	w := s.words()
	s.rec.Record(phase, round, step, &w, data)
}

// initialize loads IV || K || N, permutes, and whitens the capacity tail
// with the key.
func (s *state) initialize(k0, k1 uint64, nonce []byte) {
	s.x0 = api.IV
	s.x1 = k0
	s.x2 = k1
	s.x3 = binary.BigEndian.Uint64(nonce[0:8])
	s.x4 = binary.BigEndian.Uint64(nonce[8:16])
	s.record(api.PhaseInit, -1, api.StepLoad, nil)

	s.permute(api.PhaseInit, api.RoundsA)

	s.x3 ^= k0
	s.x4 ^= k1
	s.record(api.PhaseInit, -1, api.StepKeyMix, nil)
}

// absorb authenticates the associated data. The phase is skipped entirely
// for empty input, but the domain separation bit is flipped either way.
func (s *state) absorb(ad []byte) {
	if len(ad) > 0 {
		for len(ad) >= api.BlockSize {
			s.x0 ^= binary.BigEndian.Uint64(ad)
			s.record(api.PhaseAbsorbAD, -1, api.StepAbsorb, ad[:api.BlockSize])
			s.permute(api.PhaseAbsorbAD, api.RoundsB)
			ad = ad[api.BlockSize:]
		}
		s.x0 ^= be64n(ad)
		s.x0 ^= pad(len(ad))
		s.record(api.PhaseAbsorbAD, -1, api.StepAbsorb, ad)
		s.permute(api.PhaseAbsorbAD, api.RoundsB)
	}

	s.x4 ^= 1
	s.record(api.PhaseAbsorbAD, -1, api.StepSeparate, nil)
}

// encrypt processes plaintext into dst. len(dst) == len(src). The final
// block is padded into the rate but never permuted; finalization follows.
func (s *state) encrypt(dst, src []byte) {
	for len(src) >= api.BlockSize {
		s.x0 ^= binary.BigEndian.Uint64(src)
		binary.BigEndian.PutUint64(dst, s.x0)
		s.record(api.PhaseProcess, -1, api.StepEncrypt, dst[:api.BlockSize])
		s.permute(api.PhaseProcess, api.RoundsB)
		src, dst = src[api.BlockSize:], dst[api.BlockSize:]
	}

	s.x0 ^= be64n(src)
	s.x0 ^= pad(len(src))
	put64n(dst, s.x0)
	s.record(api.PhaseProcess, -1, api.StepEncrypt, dst)
}

// decrypt processes ciphertext into dst. The rate word is overwritten
// with the ciphertext bytes between blocks; for the partial block only
// the received bytes are replaced before the padding is applied.
func (s *state) decrypt(dst, src []byte) {
	for len(src) >= api.BlockSize {
		c := binary.BigEndian.Uint64(src)
		binary.BigEndian.PutUint64(dst, s.x0^c)
		s.x0 = c
		s.record(api.PhaseProcess, -1, api.StepDecrypt, dst[:api.BlockSize])
		s.permute(api.PhaseProcess, api.RoundsB)
		src, dst = src[api.BlockSize:], dst[api.BlockSize:]
	}

	c := be64n(src)
	put64n(dst, s.x0^c)
	s.x0 = mask(s.x0, len(src)) | c
	s.x0 ^= pad(len(src))
	s.record(api.PhaseProcess, -1, api.StepDecrypt, dst)
}

// finalize mixes the key into the capacity and derives the tag state.
func (s *state) finalize(k0, k1 uint64) {
	s.x1 ^= k0
	s.x2 ^= k1
	s.record(api.PhaseFinalize, -1, api.StepKeyMix, nil)

	s.permute(api.PhaseFinalize, api.RoundsA)

	s.x3 ^= k0
	s.x4 ^= k1
	s.record(api.PhaseFinalize, -1, api.StepKeyMix, nil)
}

// tag writes the authentication tag into dst[:TagSize].
func (s *state) tag(dst []byte) {
	binary.BigEndian.PutUint64(dst[0:8], s.x3)
	binary.BigEndian.PutUint64(dst[8:16], s.x4)
	s.record(api.PhaseFinalize, -1, api.StepTag, dst[:api.TagSize])
}

// pad returns the 0x80 separator byte positioned after n message bytes.
func pad(n int) uint64 {
	return 0x80 << (56 - 8*n)
}

// be64n reads up to 8 bytes big-endian into the high bits of a word.
func be64n(b []byte) uint64 {
	var x uint64
	for i := len(b) - 1; i >= 0; i-- {
		x |= uint64(b[i]) << (56 - 8*i)
	}
	return x
}

// put64n writes the high len(b) bytes of x big-endian.
func put64n(b []byte, x uint64) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(x >> (56 - 8*i))
	}
}

// mask clears the high n bytes of x.
func mask(x uint64, n int) uint64 {
	for i := 0; i < n; i++ {
		x &^= 0xff << (56 - 8*i)
	}
	return x
}
