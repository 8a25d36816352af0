//
// sharing_test.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

package sharing

import (
	"testing"

	"github.com/kbase6/FssFMI/fss"
	"github.com/kbase6/FssFMI/p2p"
)

func TestSplit(t *testing.T) {
	rng := fss.NewSecureRng()

	for _, bits := range []uint{1, 8, 16, 32, 64} {
		for i := 0; i < 100; i++ {
			value := rng.RandBits(bits)
			s0, s1 := Split(rng, value, bits)
			if fss.Mod(s0+s1, bits) != value {
				t.Fatalf("bits=%d: %d + %d != %d", bits, s0, s1, value)
			}
		}
	}
}

func TestOpen(t *testing.T) {
	rng := fss.NewSecureRng()
	c0, c1 := p2p.Pipe()

	const bits = 16
	value := uint64(0xbeef)
	s0, s1 := Split(rng, value, bits)

	results := make(chan uint64, 1)
	errs := make(chan error, 1)
	go func() {
		v, err := Open(c1, 1, s1, bits)
		errs <- err
		results <- v
	}()

	v0, err := Open(c0, 0, s0, bits)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := <-errs; err != nil {
		t.Fatalf("Open party 1: %v", err)
	}
	v1 := <-results

	if v0 != value || v1 != value {
		t.Fatalf("opened %d and %d, expected %d", v0, v1, value)
	}
}

func TestMul(t *testing.T) {
	rng := fss.NewSecureRng()
	c0, c1 := p2p.Pipe()

	const bits = 32
	const count = 16

	t0, t1 := NewTriples(rng, count, bits)

	for i := 0; i < count; i++ {
		x := rng.RandBits(bits)
		y := rng.RandBits(bits)
		x0, x1 := Split(rng, x, bits)
		y0, y1 := Split(rng, y, bits)

		results := make(chan uint64, 1)
		errs := make(chan error, 1)
		go func() {
			z, err := Mul(c1, 1, t1[i], x1, y1, bits)
			errs <- err
			results <- z
		}()

		z0, err := Mul(c0, 0, t0[i], x0, y0, bits)
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		if err := <-errs; err != nil {
			t.Fatalf("Mul party 1: %v", err)
		}
		z1 := <-results

		if got := fss.Mod(z0+z1, bits); got != fss.Mod(x*y, bits) {
			t.Fatalf("%d * %d = %d, expected %d",
				x, y, got, fss.Mod(x*y, bits))
		}
	}
}

func TestTripleShares(t *testing.T) {
	rng := fss.NewSecureRng()

	t0, t1 := NewTriples(rng, 100, 16)
	for i := range t0 {
		a := fss.Mod(t0[i].A+t1[i].A, 16)
		b := fss.Mod(t0[i].B+t1[i].B, 16)
		c := fss.Mod(t0[i].C+t1[i].C, 16)
		if c != fss.Mod(a*b, 16) {
			t.Fatalf("triple %d: %d * %d != %d", i, a, b, c)
		}
	}
}
