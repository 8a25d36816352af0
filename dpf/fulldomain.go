//
// fulldomain.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

package dpf

import (
	"fmt"
	"math/bits"

	"github.com/kbase6/FssFMI/fss"
)

// Strategy selects the full-domain evaluation algorithm.
type Strategy int

// Full-domain evaluation strategies.
const (
	// Auto picks a strategy from the domain size and leaf count.
	Auto Strategy = iota

	// Naive runs a point evaluation for every input.
	Naive

	// Iterative walks the tree leaf to leaf in Gray-code order,
	// re-expanding only the levels that change between neighbors.
	Iterative

	// Batched4, Batched8 and Batched128 pre-expand the top three
	// levels and walk eight subtrees in lockstep, batching the PRG
	// calls. Each variant requires the matching leaf count.
	Batched4
	Batched8
	Batched128

	// Recursive expands the tree depth first.
	Recursive
)

func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Naive:
		return "naive"
	case Iterative:
		return "iterative"
	case Batched4:
		return "batched4"
	case Batched8:
		return "batched8"
	case Batched128:
		return "batched128"
	case Recursive:
		return "recursive"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// EvaluateFullDomain evaluates the key at every point of the input
// domain, returning this party's 2^n share values in input order.
func (d *DPF) EvaluateFullDomain(key *Key, strategy Strategy) (
	[]uint64, error) {

	n := d.params.InputBits
	nu := d.params.TermBits
	leaves := d.params.Leaves()

	out := make([]uint64, uint64(1)<<n)

	switch strategy {
	case Auto:
		return d.EvaluateFullDomain(key, d.autoStrategy())

	case Naive:
		for x := range out {
			out[x] = d.EvaluateAt(key, uint64(x))
		}

	case Iterative:
		d.fullDomainIterative(key, out)

	case Batched4, Batched8, Batched128:
		want := map[Strategy]uint{
			Batched4:   4,
			Batched8:   8,
			Batched128: 128,
		}[strategy]
		if leaves != want {
			return nil, fmt.Errorf(
				"dpf: %v needs %d leaves per block, params have %d",
				strategy, want, leaves)
		}
		if nu < 3 {
			return nil, fmt.Errorf(
				"dpf: %v needs tree depth >= 3, params have %d",
				strategy, nu)
		}
		d.fullDomainBatched(key, out)

	case Recursive:
		d.fullDomainRecursive(key, out)

	default:
		return nil, fmt.Errorf("dpf: unknown strategy %v", strategy)
	}
	return out, nil
}

// autoStrategy mirrors the measured crossover points between the
// strategies: small domains run the scalar walk, larger ones the
// batched walk matching the leaf count, and anything else falls back
// to the scalar walk.
func (d *DPF) autoStrategy() Strategy {
	n := d.params.InputBits
	leaves := d.params.Leaves()

	switch {
	case n < 9:
		return Iterative
	case n < 33 && leaves == 4 && d.params.TermBits >= 3:
		return Batched4
	case n < 17 && leaves == 8 && d.params.TermBits >= 3:
		return Batched8
	case n < 33 && leaves == 128 && d.params.TermBits >= 3:
		return Batched128
	default:
		return Iterative
	}
}

// fullDomainIterative walks the terminal nodes left to right. The
// path from the root is kept as a stack of per-level seeds; after a
// leaf, the Gray-code difference between consecutive indices tells
// how many levels to pop.
func (d *DPF) fullDomainIterative(key *Key, out []uint64) {
	e := d.params.ElementBits
	nu := d.params.TermBits
	leaves := uint64(d.params.Leaves())
	end := uint64(1) << nu

	prevSeed := make([]fss.Block, nu+1)
	prevCtrl := make([]bool, nu+1)
	prevSeed[0] = key.InitSeed
	prevCtrl[0] = key.PartyID != 0

	depth := 0
	for idx := uint64(0); idx != end; idx++ {
		for depth != int(nu) {
			bit := (idx >> (nu - 1 - uint(depth))) & 1
			seed := prevSeed[depth]
			ctrl := prevCtrl[depth]

			var next fss.Block
			if bit == 0 {
				next = prgLeft.Eval(seed)
			} else {
				next = prgRight.Eval(seed)
			}
			nctrl := next.Lsb()
			if ctrl {
				next = next.Xor(key.CW[depth].Seed)
				if bit == 0 {
					nctrl = nctrl != key.CW[depth].CtrlLeft
				} else {
					nctrl = nctrl != key.CW[depth].CtrlRight
				}
			}
			depth++
			prevSeed[depth] = next
			prevCtrl[depth] = nctrl
		}

		block := d.outputBlock(prevSeed[depth], prevCtrl[depth], key)
		copy(out[idx*leaves:], block.ConvertVec(d.params.Leaves(), e))

		depth -= bits.Len64((idx + 1) ^ idx)
	}
}

// fullDomainBatched pre-expands the first three levels into eight
// subtree states and then walks the eight subtrees in lockstep,
// expanding all eight nodes of a level with one batched PRG call.
func (d *DPF) fullDomainBatched(key *Key, out []uint64) {
	n := d.params.InputBits
	e := d.params.ElementBits
	nu := d.params.TermBits
	leaves := uint64(d.params.Leaves())

	seeds := []fss.Block{key.InitSeed}
	ctrls := []bool{key.PartyID != 0}
	for i := 0; i < 3; i++ {
		ns := make([]fss.Block, 2*len(seeds))
		nc := make([]bool, 2*len(ctrls))
		for j := range seeds {
			es, ec := expand(seeds[j], ctrls[j], &key.CW[i])
			ns[2*j] = es[left]
			ns[2*j+1] = es[right]
			nc[2*j] = ec[left]
			nc[2*j+1] = ec[right]
		}
		seeds = ns
		ctrls = nc
	}

	depthEnd := int(nu) - 3
	end := uint64(1) << depthEnd
	stride := uint64(1) << (n - 3)

	prevSeeds := make([][8]fss.Block, depthEnd+1)
	prevCtrls := make([][8]bool, depthEnd+1)
	copy(prevSeeds[0][:], seeds)
	copy(prevCtrls[0][:], ctrls)

	var cur, next [8]fss.Block
	var curCtrl [8]bool

	depth := 0
	for idx := uint64(0); idx != end; idx++ {
		for depth != depthEnd {
			bit := (idx >> (uint(depthEnd) - 1 - uint(depth))) & 1
			cur = prevSeeds[depth]
			curCtrl = prevCtrls[depth]
			cw := &key.CW[depth+3]

			if bit == 0 {
				prgLeft.Eval8(&cur, &next)
			} else {
				prgRight.Eval8(&cur, &next)
			}
			for s := 0; s < 8; s++ {
				nctrl := next[s].Lsb()
				if curCtrl[s] {
					next[s] = next[s].Xor(cw.Seed)
					if bit == 0 {
						nctrl = nctrl != cw.CtrlLeft
					} else {
						nctrl = nctrl != cw.CtrlRight
					}
				}
				cur[s] = next[s]
				curCtrl[s] = nctrl
			}
			depth++
			prevSeeds[depth] = cur
			prevCtrls[depth] = curCtrl
		}

		for s := 0; s < 8; s++ {
			block := d.outputBlock(prevSeeds[depth][s],
				prevCtrls[depth][s], key)
			copy(out[uint64(s)*stride+idx*leaves:],
				block.ConvertVec(d.params.Leaves(), e))
		}

		depth -= bits.Len64((idx + 1) ^ idx)
	}
}

// fullDomainRecursive expands the tree depth first.
func (d *DPF) fullDomainRecursive(key *Key, out []uint64) {
	d.traverse(key, key.InitSeed, key.PartyID != 0, d.params.TermBits,
		0, out)
}

func (d *DPF) traverse(key *Key, seed fss.Block, ctrl bool, depth uint,
	pos uint64, out []uint64) {

	n := d.params.InputBits
	nu := d.params.TermBits

	if depth == 0 {
		block := d.outputBlock(seed, ctrl, key)
		copy(out[pos:],
			block.ConvertVec(d.params.Leaves(), d.params.ElementBits))
		return
	}

	seeds, ctrls := expand(seed, ctrl, &key.CW[nu-depth])
	d.traverse(key, seeds[left], ctrls[left], depth-1, pos, out)
	d.traverse(key, seeds[right], ctrls[right], depth-1,
		pos+uint64(1)<<(n-nu+depth-1), out)
}
