//
// dcf.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

// Package dcf implements the two-party distributed comparison
// function: additive shares of f(x) = beta if x < alpha, 0
// otherwise. The GGM tree is expanded to the full input depth and a
// value accumulator collects the beta contributions of the subtrees
// left of the alpha path.
package dcf

import (
	"fmt"

	"github.com/kbase6/FssFMI/fss"
	"github.com/kbase6/FssFMI/prg"
)

const (
	left  = 0
	right = 1
)

var (
	prgLeft       = prg.New(prg.KeySeedLeft)
	prgRight      = prg.New(prg.KeySeedRight)
	prgValueLeft  = prg.New(prg.KeyValueLeft)
	prgValueRight = prg.New(prg.KeyValueRight)
)

// Params defines the domain and element sizes of a distributed
// comparison function.
type Params struct {
	// InputBits is the bit length n of inputs.
	InputBits uint

	// ElementBits is the bit length e of output elements.
	ElementBits uint
}

// NewParams creates parameters for n-bit inputs and e-bit outputs.
func NewParams(n, e uint) (Params, error) {
	if n < 1 || n > 64 {
		return Params{}, fmt.Errorf("dcf: invalid input bits %d", n)
	}
	if e < 1 || e > 64 {
		return Params{}, fmt.Errorf("dcf: invalid element bits %d", e)
	}
	return Params{
		InputBits:   n,
		ElementBits: e,
	}, nil
}

// CorrectionWord is the public per-level correction: the seed and
// control corrections of the tree walk plus the value correction of
// the accumulator.
type CorrectionWord struct {
	Seed      fss.Block
	CtrlLeft  bool
	CtrlRight bool
	Value     uint64
}

// Key is one party's share of a comparison function.
type Key struct {
	PartyID  int
	InitSeed fss.Block
	CW       []CorrectionWord
	Output   uint64
}

// DCF implements distributed comparison function key generation and
// evaluation.
type DCF struct {
	params Params
	rng    *fss.SecureRng
}

// New creates a new DCF engine.
func New(params Params, rng *fss.SecureRng) *DCF {
	return &DCF{
		params: params,
		rng:    rng,
	}
}

// Params returns the engine parameters.
func (d *DCF) Params() Params {
	return d.params
}

// GenerateKeys creates a key pair sharing the comparison function
// with the argument alpha and beta.
func (d *DCF) GenerateKeys(alpha, beta uint64) (*Key, *Key) {
	n := d.params.InputBits
	e := d.params.ElementBits

	k0 := &Key{
		PartyID: 0,
		CW:      make([]CorrectionWord, n),
	}
	k1 := &Key{
		PartyID: 1,
		CW:      make([]CorrectionWord, n),
	}

	seeds := [2]fss.Block{d.rng.Block(), d.rng.Block()}
	ctrl := [2]bool{false, true}
	k0.InitSeed = seeds[0]
	k1.InitSeed = seeds[1]

	var value uint64

	for i := uint(0); i < n; i++ {
		var es, ev [2][2]fss.Block
		var ec [2][2]bool

		for j := 0; j < 2; j++ {
			es[j][left] = prgLeft.Eval(seeds[j])
			es[j][right] = prgRight.Eval(seeds[j])
			ec[j][left] = es[j][left].Lsb()
			ec[j][right] = es[j][right].Lsb()
			ev[j][left] = prgValueLeft.Eval(seeds[j])
			ev[j][right] = prgValueRight.Eval(seeds[j])
		}

		bit := (alpha>>(n-i-1))&1 != 0
		keep := left
		if bit {
			keep = right
		}
		lose := 1 - keep

		// The lose subtree contains the inputs whose comparison
		// result flips at this level: below alpha when the alpha
		// bit is one, above when it is zero. Its value correction
		// cancels the accumulator drift and, on a left lose
		// subtree, injects beta.
		vcor := fss.CondNeg(ctrl[1],
			ev[1][lose].Convert(e)-ev[0][lose].Convert(e)-value, e)
		if lose == left {
			vcor = fss.Mod(vcor+fss.CondNeg(ctrl[1], beta, e), e)
		}

		cw := CorrectionWord{
			Seed:      es[0][lose].Xor(es[1][lose]),
			CtrlLeft:  !(ec[0][left] != ec[1][left] != bit),
			CtrlRight: ec[0][right] != ec[1][right] != bit,
			Value:     vcor,
		}
		k0.CW[i] = cw
		k1.CW[i] = cw

		value = fss.Mod(value-ev[1][keep].Convert(e)+
			ev[0][keep].Convert(e)+fss.CondNeg(ctrl[1], vcor, e), e)

		cwKeep := cw.CtrlRight
		if keep == left {
			cwKeep = cw.CtrlLeft
		}
		for j := 0; j < 2; j++ {
			seeds[j] = es[j][keep]
			if ctrl[j] {
				seeds[j] = seeds[j].Xor(cw.Seed)
			}
			ctrl[j] = ec[j][keep] != (ctrl[j] && cwKeep)
		}
	}

	out := fss.CondNeg(ctrl[1],
		seeds[1].Convert(e)-seeds[0].Convert(e)-value, e)
	k0.Output = out
	k1.Output = out
	return k0, k1
}

// EvaluateAt evaluates the key at point x, returning this party's
// additive share of f(x) modulo 2^e.
func (d *DCF) EvaluateAt(key *Key, x uint64) uint64 {
	n := d.params.InputBits
	e := d.params.ElementBits
	neg := key.PartyID != 0

	seed := key.InitSeed
	ctrl := neg

	var value uint64

	for i := uint(0); i < n; i++ {
		cw := &key.CW[i]

		var es, ev [2]fss.Block
		var ec [2]bool

		es[left] = prgLeft.Eval(seed)
		es[right] = prgRight.Eval(seed)
		ec[left] = es[left].Lsb()
		ec[right] = es[right].Lsb()
		ev[left] = prgValueLeft.Eval(seed)
		ev[right] = prgValueRight.Eval(seed)

		if ctrl {
			es[left] = es[left].Xor(cw.Seed)
			es[right] = es[right].Xor(cw.Seed)
			ec[left] = ec[left] != cw.CtrlLeft
			ec[right] = ec[right] != cw.CtrlRight
		}

		dir := left
		if (x>>(n-i-1))&1 != 0 {
			dir = right
		}

		v := ev[dir].Convert(e)
		if ctrl {
			v += cw.Value
		}
		value = fss.Mod(value+fss.CondNeg(neg, v, e), e)

		seed = es[dir]
		ctrl = ec[dir]
	}

	v := seed.Convert(e)
	if ctrl {
		v += key.Output
	}
	return fss.Mod(value+fss.CondNeg(neg, v, e), e)
}
