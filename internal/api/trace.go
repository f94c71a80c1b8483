// Copyright (C) 2024 Areeb Ur Rub
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package api

// Phase identifies the protocol stage that produced a Snapshot.
type Phase int

const (
	// PhaseInit covers state loading, the initial permutation and key
	// whitening.
	PhaseInit Phase = iota

	// PhaseAbsorbAD covers associated-data absorption and the domain
	// separation bit.
	PhaseAbsorbAD

	// PhaseProcess covers plaintext/ciphertext processing.
	PhaseProcess

	// PhaseFinalize covers the final key mixing, permutation and tag
	// extraction.
	PhaseFinalize

	// PhaseVerifyTag covers the tag comparison on Open.
	PhaseVerifyTag
)

// String returns the phase label carried on snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "initialize"
	case PhaseAbsorbAD:
		return "absorb-associated-data"
	case PhaseProcess:
		return "process-data"
	case PhaseFinalize:
		return "finalize"
	case PhaseVerifyTag:
		return "verify-tag"
	default:
		return "unknown"
	}
}

// Sub-step labels carried on snapshots.
const (
	StepLoad         = "load"
	StepConstant     = "constant-addition"
	StepSubstitution = "substitution"
	StepDiffusion    = "diffusion"
	StepKeyMix       = "key-mix"
	StepSeparate     = "domain-separation"
	StepAbsorb       = "absorb"
	StepEncrypt      = "encrypt-block"
	StepDecrypt      = "decrypt-block"
	StepTag          = "tag"
	StepCompare      = "compare"
)

// Snapshot is an immutable copy of the sponge state at one observation
// point. Round is the index into the full 12-round schedule for snapshots
// taken inside the permutation and -1 elsewhere. Data holds the rate bytes
// consumed or produced at this point, if any.
type Snapshot struct {
	Phase Phase
	Round int
	Step  string
	Words [StateSize]uint64
	Data  []byte
}

// Recorder accumulates Snapshots for one protocol run. Snapshots are
// copied on append and never mutated afterwards, so a finished sequence
// may be read concurrently with a different run. The zero value is ready
// to use; a nil Recorder records nothing.
type Recorder struct {
	snaps []Snapshot
}

// Record appends one snapshot. words and data are copied.
func (r *Recorder) Record(phase Phase, round int, step string, words *[StateSize]uint64, data []byte) {
	if r == nil {
		return
	}

	snap := Snapshot{
		Phase: phase,
		Round: round,
		Step:  step,
		Words: *words,
	}
	if len(data) > 0 {
		snap.Data = append([]byte(nil), data...)
	}
	r.snaps = append(r.snaps, snap)
}

// Snapshots returns the recorded sequence in logical order. The returned
// slice aliases the recorder's backing store and must not be read while a
// run is still appending to it.
func (r *Recorder) Snapshots() []Snapshot {
	if r == nil {
		return nil
	}

	return r.snaps
}

// Len returns the number of recorded snapshots.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}

	return len(r.snaps)
}
