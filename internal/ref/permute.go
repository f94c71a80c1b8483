// Copyright (C) 2024 Areeb Ur Rub
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package ref

import (
	"math/bits"

	"github.com/areeburrub/ascon/internal/api"
)

// permute runs the requested number of rounds, consuming round constants
// from the tail of the schedule so that the 12-round and 6-round call
// sites stay interoperable.
func (s *state) permute(phase api.Phase, rounds int) {
	if s.rec != nil {
		s.permuteTraced(phase, rounds)
		return
	}

	for _, c := range api.RoundConstants[api.RoundsA-rounds:] {
		s.addConstant(c)
		s.substitute()
		s.diffuse()
	}
}

func (s *state) permuteTraced(phase api.Phase, rounds int) {
	base := api.RoundsA - rounds
	for i, c := range api.RoundConstants[base:] {
		r := base + i

		s.addConstant(c)
		s.record(phase, r, api.StepConstant, nil)
		s.substitute()
		s.record(phase, r, api.StepSubstitution, nil)
		s.diffuse()
		s.record(phase, r, api.StepDiffusion, nil)
	}
}

// addConstant XORs the round constant into the middle capacity word.
func (s *state) addConstant(c uint64) {
	s.x2 ^= c
}

// substitute applies the 5-bit S-box bit-sliced across all 64 columns.
func (s *state) substitute() {
	s0, s1, s2, s3, s4 := s.x0, s.x1, s.x2, s.x3, s.x4

	s0 ^= s4
	s4 ^= s3
	s2 ^= s1

	t0 := s0 ^ (^s1 & s2)
	t1 := s1 ^ (^s2 & s3)
	t2 := s2 ^ (^s3 & s4)
	t3 := s3 ^ (^s4 & s0)
	t4 := s4 ^ (^s0 & s1)

	t1 ^= t0
	t0 ^= t4
	t3 ^= t2
	t2 = ^t2

	s.x0, s.x1, s.x2, s.x3, s.x4 = t0, t1, t2, t3, t4
}

// diffuse applies the per-word linear layer. Each word depends only on
// rotations of itself; cross-word mixing happens in the S-box.
func (s *state) diffuse() {
	s.x0 ^= rotr(s.x0, 19) ^ rotr(s.x0, 28)
	s.x1 ^= rotr(s.x1, 61) ^ rotr(s.x1, 39)
	s.x2 ^= rotr(s.x2, 1) ^ rotr(s.x2, 6)
	s.x3 ^= rotr(s.x3, 10) ^ rotr(s.x3, 17)
	s.x4 ^= rotr(s.x4, 7) ^ rotr(s.x4, 41)
}

func rotr(x uint64, n int) uint64 {
	return bits.RotateLeft64(x, -n)
}
