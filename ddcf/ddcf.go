//
// ddcf.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

// Package ddcf implements the two-party dual distributed comparison
// function: additive shares of f(x) = beta1 if x < alpha, beta2
// otherwise. The construction is one DCF on beta1-beta2 plus an
// additive sharing of beta2.
package ddcf

import (
	"github.com/kbase6/FssFMI/dcf"
	"github.com/kbase6/FssFMI/fss"
)

// Params defines the domain and element sizes, shared with the
// underlying DCF.
type Params = dcf.Params

// NewParams creates parameters for n-bit inputs and e-bit outputs.
func NewParams(n, e uint) (Params, error) {
	return dcf.NewParams(n, e)
}

// Key is one party's share of a dual comparison function.
type Key struct {
	Dcf  *dcf.Key
	Mask uint64
}

// DDCF implements dual distributed comparison function key
// generation and evaluation.
type DDCF struct {
	params Params
	dcf    *dcf.DCF
	rng    *fss.SecureRng
}

// New creates a new DDCF engine.
func New(params Params, rng *fss.SecureRng) *DDCF {
	return &DDCF{
		params: params,
		dcf:    dcf.New(params, rng),
		rng:    rng,
	}
}

// Params returns the engine parameters.
func (d *DDCF) Params() Params {
	return d.params
}

// GenerateKeys creates a key pair sharing the dual comparison
// function with values beta1 below alpha and beta2 from alpha up.
func (d *DDCF) GenerateKeys(alpha, beta1, beta2 uint64) (*Key, *Key) {
	e := d.params.ElementBits

	beta := fss.Mod(beta1-beta2, e)
	dk0, dk1 := d.dcf.GenerateKeys(alpha, beta)

	mask0 := d.rng.RandBits(e)
	mask1 := fss.Mod(beta2-mask0, e)

	k0 := &Key{
		Dcf:  dk0,
		Mask: mask0,
	}
	k1 := &Key{
		Dcf:  dk1,
		Mask: mask1,
	}
	return k0, k1
}

// EvaluateAt evaluates the key at point x, returning this party's
// additive share of f(x) modulo 2^e.
func (d *DDCF) EvaluateAt(key *Key, x uint64) uint64 {
	return fss.Mod(d.dcf.EvaluateAt(key.Dcf, x)+key.Mask,
		d.params.ElementBits)
}
