// Copyright (C) 2024 Areeb Ur Rub
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package ascon

import "github.com/areeburrub/ascon/internal/api"

// Phase identifies the protocol stage that produced a Snapshot. A renderer
// can switch on the closed set of values rather than matching label text.
type Phase = api.Phase

const (
	PhaseInit      = api.PhaseInit
	PhaseAbsorbAD  = api.PhaseAbsorbAD
	PhaseProcess   = api.PhaseProcess
	PhaseFinalize  = api.PhaseFinalize
	PhaseVerifyTag = api.PhaseVerifyTag
)

// Snapshot is an immutable copy of the sponge state at one observation
// point, with phase, round index and sub-step labels attached.
type Snapshot = api.Snapshot

// Recorder accumulates Snapshots for one protocol run. Attach one via
// NewWithRecorder, run Seal or Open to completion, then read the sequence
// back with Snapshots. A finished sequence is safe for concurrent readers.
type Recorder = api.Recorder

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return new(api.Recorder)
}
