//
// key.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

package dpf

import (
	"fmt"

	"github.com/kbase6/FssFMI/fss"
)

// Params defines the domain and element sizes of a distributed point
// function.
type Params struct {
	// InputBits is the bit length n of inputs.
	InputBits uint

	// ElementBits is the bit length e of output elements.
	ElementBits uint

	// TermBits is the tree depth after early termination. The
	// remaining n-TermBits input bits select a lane of the packed
	// output block.
	TermBits uint
}

// NewParams creates parameters for n-bit inputs and e-bit outputs.
// The termination depth is the largest cut that still packs a full
// output block: the tree stops as soon as one 128-bit block holds
// 2^(n-depth) elements of e bits each.
func NewParams(n, e uint) (Params, error) {
	if n < 2 || n > 32 {
		return Params{}, fmt.Errorf("dpf: invalid input bits %d", n)
	}
	if e < 1 || e > 32 {
		return Params{}, fmt.Errorf("dpf: invalid element bits %d", e)
	}
	var k uint
	for e<<(k+1) <= fss.SecurityParameter {
		k++
	}
	var nu uint
	if k < n {
		nu = n - k
	}
	return Params{
		InputBits:   n,
		ElementBits: e,
		TermBits:    nu,
	}, nil
}

// Leaves returns the number of elements packed into one output
// block.
func (p Params) Leaves() uint {
	return 1 << (p.InputBits - p.TermBits)
}

// LaneBits returns the width of one packed output lane.
func (p Params) LaneBits() uint {
	return fss.SecurityParameter / p.Leaves()
}

// CorrectionWord is the public per-level correction applied during
// evaluation when the control bit is set.
type CorrectionWord struct {
	Seed      fss.Block
	CtrlLeft  bool
	CtrlRight bool
}

// Key is one party's share of a point function. Keys are created in
// matched pairs by GenerateKeys; a key alone reveals nothing about
// the shared point.
type Key struct {
	PartyID  int
	InitSeed fss.Block
	CW       []CorrectionWord
	Output   fss.Block
}
