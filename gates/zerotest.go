//
// zerotest.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

// Package gates implements the masked-input two-party gates built on
// the FSS engines. Key generation is an offline step run by a
// trusted dealer; evaluation is the online step where the parties
// open masked inputs over the connection and evaluate their FSS key
// shares locally.
package gates

import (
	"github.com/kbase6/FssFMI/dpf"
	"github.com/kbase6/FssFMI/fss"
	"github.com/kbase6/FssFMI/p2p"
	"github.com/kbase6/FssFMI/sharing"
)

// ZeroTest implements the secure zero test: the parties hold
// additive shares of x and end with additive shares of 1 if x == 0,
// 0 otherwise.
type ZeroTest struct {
	n   uint
	e   uint
	dpf *dpf.DPF
	rng *fss.SecureRng
}

// ZeroTestKey is one party's gate key.
type ZeroTestKey struct {
	Dpf *dpf.Key

	// ShrIn is this party's share of the random input mask.
	ShrIn uint64
}

// NewZeroTest creates a zero-test gate for n-bit inputs and e-bit
// outputs.
func NewZeroTest(n, e uint, rng *fss.SecureRng) (*ZeroTest, error) {
	params, err := dpf.NewParams(n, e)
	if err != nil {
		return nil, err
	}
	return &ZeroTest{
		n:   n,
		e:   e,
		dpf: dpf.New(params, rng),
		rng: rng,
	}, nil
}

// GenerateKeys creates a gate key pair: DPF keys for the point
// function at a random mask r with value 1, and shares of r.
func (zt *ZeroTest) GenerateKeys() (*ZeroTestKey, *ZeroTestKey) {
	rIn := zt.rng.RandBits(zt.n)
	dk0, dk1 := zt.dpf.GenerateKeys(rIn, 1)
	s0, s1 := sharing.Split(zt.rng, rIn, zt.n)

	return &ZeroTestKey{
			Dpf:   dk0,
			ShrIn: s0,
		}, &ZeroTestKey{
			Dpf:   dk1,
			ShrIn: s1,
		}
}

// Evaluate runs the online phase on this party's share of x. The
// parties open the masked input x+r and evaluate the point function
// at it: x+r hits the mask exactly when x is zero.
func (zt *ZeroTest) Evaluate(conn p2p.IO, key *ZeroTestKey,
	xShare uint64) (uint64, error) {

	masked := fss.Mod(xShare+key.ShrIn, zt.n)
	xHat, err := sharing.Open(conn, key.Dpf.PartyID, masked, zt.n)
	if err != nil {
		return 0, err
	}
	return zt.dpf.EvaluateAt(key.Dpf, xHat), nil
}

// EvaluateEqual runs the online phase of the equality test on this
// party's shares of x and y: a zero test of the difference.
func (zt *ZeroTest) EvaluateEqual(conn p2p.IO, key *ZeroTestKey,
	xShare, yShare uint64) (uint64, error) {

	return zt.Evaluate(conn, key, fss.Mod(xShare-yShare, zt.n))
}
