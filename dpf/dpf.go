//
// dpf.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

// Package dpf implements the two-party distributed point function:
// additive shares of f(x) = beta if x == alpha, 0 otherwise, over
// n-bit inputs and e-bit output elements. Key generation walks a GGM
// tree from the most significant input bit down and terminates early
// once a 128-bit block can pack all remaining leaves.
package dpf

import (
	"github.com/kbase6/FssFMI/fss"
	"github.com/kbase6/FssFMI/prg"
)

const (
	left  = 0
	right = 1
)

var (
	prgLeft  = prg.New(prg.KeySeedLeft)
	prgRight = prg.New(prg.KeySeedRight)
)

// DPF implements distributed point function key generation and
// evaluation.
type DPF struct {
	params Params
	rng    *fss.SecureRng
}

// New creates a new DPF engine.
func New(params Params, rng *fss.SecureRng) *DPF {
	return &DPF{
		params: params,
		rng:    rng,
	}
}

// Params returns the engine parameters.
func (d *DPF) Params() Params {
	return d.params
}

// GenerateKeys creates a key pair sharing the point function with
// the argument alpha and beta. The keys are fresh: repeated calls
// with the same point return different keys.
func (d *DPF) GenerateKeys(alpha, beta uint64) (*Key, *Key) {
	n := d.params.InputBits
	nu := d.params.TermBits

	k0 := &Key{
		PartyID: 0,
		CW:      make([]CorrectionWord, nu),
	}
	k1 := &Key{
		PartyID: 1,
		CW:      make([]CorrectionWord, nu),
	}

	seeds := [2]fss.Block{d.rng.Block(), d.rng.Block()}
	ctrl := [2]bool{false, true}
	k0.InitSeed = seeds[0]
	k1.InitSeed = seeds[1]

	for i := uint(0); i < nu; i++ {
		bit := (alpha>>(n-i-1))&1 != 0
		cw := nextLevel(bit, &seeds, &ctrl)
		k0.CW[i] = cw
		k1.CW[i] = cw
	}

	out := d.outputCorrection(alpha, beta, ctrl[1], seeds)
	k0.Output = out
	k1.Output = out
	return k0, k1
}

// EvaluateAt evaluates the key at point x, returning this party's
// additive share of f(x) modulo 2^e.
func (d *DPF) EvaluateAt(key *Key, x uint64) uint64 {
	n := d.params.InputBits
	nu := d.params.TermBits

	seed := key.InitSeed
	ctrl := key.PartyID != 0

	for i := uint(0); i < nu; i++ {
		seeds, ctrls := expand(seed, ctrl, &key.CW[i])
		if (x>>(n-i-1))&1 != 0 {
			seed = seeds[right]
			ctrl = ctrls[right]
		} else {
			seed = seeds[left]
			ctrl = ctrls[left]
		}
	}

	block := d.outputBlock(seed, ctrl, key)
	xHat := fss.Mod(x, n-nu)
	return block.ConvertVec(d.params.Leaves(), d.params.ElementBits)[xHat]
}

// GenerateKeysNaive creates a key pair with the tree expanded to the
// full depth n. The output correction is a single scalar and the
// packed-lane machinery is bypassed; element widths up to 64 bits
// are supported.
func (d *DPF) GenerateKeysNaive(alpha, beta uint64) (*Key, *Key) {
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

	for i := uint(0); i < n; i++ {
		bit := (alpha>>(n-i-1))&1 != 0
		cw := nextLevel(bit, &seeds, &ctrl)
		k0.CW[i] = cw
		k1.CW[i] = cw
	}

	out := fss.CondNeg(ctrl[1],
		beta-seeds[0].Convert(e)+seeds[1].Convert(e), e)
	k0.Output = fss.Block{Lo: out}
	k1.Output = fss.Block{Lo: out}
	return k0, k1
}

// EvaluateAtNaive evaluates a full-depth key at point x.
func (d *DPF) EvaluateAtNaive(key *Key, x uint64) uint64 {
	n := d.params.InputBits
	e := d.params.ElementBits

	seed := key.InitSeed
	ctrl := key.PartyID != 0

	for i := uint(0); i < n; i++ {
		seeds, ctrls := expand(seed, ctrl, &key.CW[i])
		if (x>>(n-i-1))&1 != 0 {
			seed = seeds[right]
			ctrl = ctrls[right]
		} else {
			seed = seeds[left]
			ctrl = ctrls[left]
		}
	}

	v := seed.Convert(e)
	if ctrl {
		v += key.Output.Convert(e)
	}
	return fss.CondNeg(key.PartyID != 0, v, e)
}

// nextLevel advances both parties' seed and control bit one tree
// level towards alpha and returns the level's correction word.
func nextLevel(bit bool, seeds *[2]fss.Block, ctrl *[2]bool) CorrectionWord {
	var es [2][2]fss.Block
	var ec [2][2]bool

	for j := 0; j < 2; j++ {
		es[j][left] = prgLeft.Eval(seeds[j])
		es[j][right] = prgRight.Eval(seeds[j])
		ec[j][left] = es[j][left].Lsb()
		ec[j][right] = es[j][right].Lsb()
	}

	keep := left
	if bit {
		keep = right
	}
	lose := 1 - keep

	cw := CorrectionWord{
		Seed:      es[0][lose].Xor(es[1][lose]),
		CtrlLeft:  !(ec[0][left] != ec[1][left] != bit),
		CtrlRight: ec[0][right] != ec[1][right] != bit,
	}

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
	return cw
}

// expand expands one node into its two children, applying the
// correction word when the control bit is set.
func expand(seed fss.Block, ctrl bool, cw *CorrectionWord) (
	[2]fss.Block, [2]bool) {

	var seeds [2]fss.Block
	var ctrls [2]bool

	seeds[left] = prgLeft.Eval(seed)
	seeds[right] = prgRight.Eval(seed)
	ctrls[left] = seeds[left].Lsb()
	ctrls[right] = seeds[right].Lsb()

	if ctrl {
		seeds[left] = seeds[left].Xor(cw.Seed)
		seeds[right] = seeds[right].Xor(cw.Seed)
		ctrls[left] = ctrls[left] != cw.CtrlLeft
		ctrls[right] = ctrls[right] != cw.CtrlRight
	}
	return seeds, ctrls
}

// outputCorrection builds the packed output correction block from
// the parties' final seeds. Lane alphaHat carries beta.
func (d *DPF) outputCorrection(alpha, beta uint64, ctrl1 bool,
	seeds [2]fss.Block) fss.Block {

	num := d.params.Leaves()
	w := d.params.LaneBits()
	alphaHat := fss.Mod(alpha, d.params.InputBits-d.params.TermBits)

	s0 := seeds[0].ConvertVec(num, w)
	s1 := seeds[1].ConvertVec(num, w)

	vec := make([]uint64, num)
	for i := range vec {
		v := s1[i] - s0[i]
		if uint64(i) == alphaHat {
			v += beta
		}
		vec[i] = fss.CondNeg(ctrl1, v, w)
	}
	return fss.FromVec(vec, num, w)
}

// outputBlock converts a terminal seed into this party's packed
// share block.
func (d *DPF) outputBlock(seed fss.Block, ctrl bool, key *Key) fss.Block {
	num := d.params.Leaves()
	w := d.params.LaneBits()

	vec := seed.ConvertVec(num, w)
	if ctrl {
		kv := key.Output.ConvertVec(num, w)
		for i := range vec {
			vec[i] += kv[i]
		}
	}
	if key.PartyID != 0 {
		for i := range vec {
			vec[i] = fss.Mod(-vec[i], w)
		}
	}
	return fss.FromVec(vec, num, w)
}
