//
// sharing.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

// Package sharing implements two-party additive secret sharing over
// the ring Z_{2^e}: share splitting, reconstruction over a
// connection, and Beaver-triple multiplication.
package sharing

import (
	"github.com/kbase6/FssFMI/fss"
	"github.com/kbase6/FssFMI/p2p"
)

// Split splits value into two additive shares modulo 2^bits.
func Split(rng *fss.SecureRng, value uint64, bits uint) (uint64, uint64) {
	s0 := rng.RandBits(bits)
	return s0, fss.Mod(value-s0, bits)
}

// Open reconstructs a shared value by exchanging shares with the
// other party. Party 0 sends first; the parties must call Open in
// matching order.
func Open(conn p2p.IO, partyID int, share uint64, bits uint) (
	uint64, error) {

	var other uint64
	var err error

	if partyID == 0 {
		if err = conn.SendUint64(share); err != nil {
			return 0, err
		}
		if err = conn.Flush(); err != nil {
			return 0, err
		}
		if other, err = conn.ReceiveUint64(); err != nil {
			return 0, err
		}
	} else {
		if other, err = conn.ReceiveUint64(); err != nil {
			return 0, err
		}
		if err = conn.SendUint64(share); err != nil {
			return 0, err
		}
		if err = conn.Flush(); err != nil {
			return 0, err
		}
	}
	return fss.Mod(share+other, bits), nil
}

// Triple is one party's share of a Beaver triple a*b = c.
type Triple struct {
	A uint64
	B uint64
	C uint64
}

// NewTriples creates count shared multiplication triples, returning
// each party's shares.
func NewTriples(rng *fss.SecureRng, count int, bits uint) (
	[]Triple, []Triple) {

	t0 := make([]Triple, count)
	t1 := make([]Triple, count)

	for i := 0; i < count; i++ {
		a := rng.RandBits(bits)
		b := rng.RandBits(bits)
		c := fss.Mod(a*b, bits)

		t0[i].A, t1[i].A = Split(rng, a, bits)
		t0[i].B, t1[i].B = Split(rng, b, bits)
		t0[i].C, t1[i].C = Split(rng, c, bits)
	}
	return t0, t1
}

// Mul multiplies the shared values x and y with the triple, consuming
// it. Both parties learn additive shares of x*y; the masked
// differences x-a and y-b are opened on the way.
func Mul(conn p2p.IO, partyID int, triple Triple, x, y uint64,
	bits uint) (uint64, error) {

	d, err := Open(conn, partyID, fss.Mod(x-triple.A, bits), bits)
	if err != nil {
		return 0, err
	}
	e, err := Open(conn, partyID, fss.Mod(y-triple.B, bits), bits)
	if err != nil {
		return 0, err
	}

	z := triple.C + d*triple.B + e*triple.A
	if partyID == 0 {
		z += d * e
	}
	return fss.Mod(z, bits), nil
}
