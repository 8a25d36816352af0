//
// compare.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

package gates

import (
	"github.com/kbase6/FssFMI/ddcf"
	"github.com/kbase6/FssFMI/fss"
	"github.com/kbase6/FssFMI/p2p"
	"github.com/kbase6/FssFMI/sharing"
)

// Compare implements the secure integer comparison: the parties hold
// additive shares of x and y and end with additive shares of 1 if
// x < y as n-bit two's complement values, 0 otherwise. The result is
// valid when |x| + |y| < 2^(n-1).
type Compare struct {
	n    uint
	e    uint
	ddcf *ddcf.DDCF
	rng  *fss.SecureRng
}

// CompareKey is one party's gate key.
type CompareKey struct {
	Ddcf *ddcf.Key

	// Shr1In and Shr2In are this party's shares of the input masks,
	// ShrOut of the output mask.
	Shr1In uint64
	Shr2In uint64
	ShrOut uint64
}

// NewCompare creates a comparison gate for n-bit inputs and e-bit
// outputs.
func NewCompare(n, e uint, rng *fss.SecureRng) (*Compare, error) {
	params, err := ddcf.NewParams(n-1, e)
	if err != nil {
		return nil, err
	}
	return &Compare{
		n:    n,
		e:    e,
		ddcf: ddcf.New(params, rng),
		rng:  rng,
	}, nil
}

// GenerateKeys creates a gate key pair: a DDCF on the low n-1 bits
// of the combined mask, selected by the mask's sign bit, plus shares
// of the two input masks and the output mask.
func (cp *Compare) GenerateKeys() (*CompareKey, *CompareKey) {
	r1 := cp.rng.RandBits(cp.n)
	r2 := cp.rng.RandBits(cp.n)
	rOut := cp.rng.RandBits(cp.e)

	r := fss.Mod((uint64(1)<<cp.n)-(r1-r2), cp.e)
	alpha := fss.Mod(r, cp.n-1)
	msb := (r >> (cp.n - 1)) & 1

	dk0, dk1 := cp.ddcf.GenerateKeys(alpha, msb, 1-msb)

	s10, s11 := sharing.Split(cp.rng, r1, cp.n)
	s20, s21 := sharing.Split(cp.rng, r2, cp.n)
	so0, so1 := sharing.Split(cp.rng, rOut, cp.e)

	return &CompareKey{
			Ddcf:   dk0,
			Shr1In: s10,
			Shr2In: s20,
			ShrOut: so0,
		}, &CompareKey{
			Ddcf:   dk1,
			Shr1In: s11,
			Shr2In: s21,
			ShrOut: so1,
		}
}

// Evaluate runs the online phase on this party's shares of x and y.
// The masked inputs are opened, their difference z is reduced to its
// sign bit and low bits, and the DDCF turns them into shares of the
// comparison result re-masked with the output mask.
func (cp *Compare) Evaluate(conn p2p.IO, key *CompareKey,
	xShare, yShare uint64) (uint64, error) {

	party := key.Ddcf.Dcf.PartyID

	xHat, err := sharing.Open(conn, party,
		fss.Mod(xShare+key.Shr1In, cp.n), cp.n)
	if err != nil {
		return 0, err
	}
	yHat, err := sharing.Open(conn, party,
		fss.Mod(yShare+key.Shr2In, cp.n), cp.n)
	if err != nil {
		return 0, err
	}

	z := fss.Mod(xHat-yHat, cp.n)
	msb := (z >> (cp.n - 1)) & 1
	zn := fss.Mod((uint64(1)<<(cp.n-1))-fss.Mod(z, cp.n-1)-1, cp.n-1)

	out := cp.ddcf.EvaluateAt(key.Ddcf, zn)

	res := uint64(party) - (uint64(party)*msb + out - 2*msb*out) +
		key.ShrOut
	return fss.Mod(res, cp.e), nil
}
