//
// fulldomain_test.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

package dpf

import (
	"testing"

	"github.com/kbase6/FssFMI/fss"
)

// Every strategy must agree with point-by-point evaluation.
func TestFullDomainStrategies(t *testing.T) {
	rng := fss.NewSecureRng()

	tests := []struct {
		name     string
		n, e     uint
		strategy Strategy
	}{
		{name: "iterative", n: 8, e: 8, strategy: Iterative},
		{name: "iterative-small", n: 2, e: 32, strategy: Iterative},
		{name: "naive", n: 8, e: 8, strategy: Naive},
		{name: "recursive", n: 10, e: 16, strategy: Recursive},
		{name: "batched4", n: 10, e: 32, strategy: Batched4},
		{name: "batched8", n: 10, e: 16, strategy: Batched8},
		{name: "batched128", n: 10, e: 1, strategy: Batched128},
		{name: "auto-small", n: 6, e: 8, strategy: Auto},
		{name: "auto-batched", n: 12, e: 32, strategy: Auto},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params, err := NewParams(test.n, test.e)
			if err != nil {
				t.Fatal(err)
			}
			d := New(params, rng)

			alpha := uint64(1)<<test.n - 3
			beta := fss.Mod(0xdeadbeef, test.e)
			if beta == 0 {
				beta = 1
			}
			k0, k1 := d.GenerateKeys(alpha, beta)

			v0, err := d.EvaluateFullDomain(k0, test.strategy)
			if err != nil {
				t.Fatal(err)
			}
			v1, err := d.EvaluateFullDomain(k1, test.strategy)
			if err != nil {
				t.Fatal(err)
			}
			if len(v0) != 1<<test.n {
				t.Fatalf("got %d values, expected %d",
					len(v0), 1<<test.n)
			}
			for x := range v0 {
				sum := fss.Mod(v0[x]+v1[x], test.e)
				p0 := d.EvaluateAt(k0, uint64(x))
				p1 := d.EvaluateAt(k1, uint64(x))
				point := fss.Mod(p0+p1, test.e)

				if sum != point {
					t.Fatalf("x=%d: full domain %d, point %d",
						x, sum, point)
				}
				var expected uint64
				if uint64(x) == alpha {
					expected = beta
				}
				if sum != expected {
					t.Fatalf("x=%d: got %d, expected %d",
						x, sum, expected)
				}
			}
		})
	}
}

// All strategies applicable to one parameter set agree bit for bit.
func TestFullDomainAgreement(t *testing.T) {
	rng := fss.NewSecureRng()

	// n=10 e=16 has 8 leaves per block and depth 7.
	params, err := NewParams(10, 16)
	if err != nil {
		t.Fatal(err)
	}
	d := New(params, rng)
	k0, _ := d.GenerateKeys(600, 3)

	ref, err := d.EvaluateFullDomain(k0, Iterative)
	if err != nil {
		t.Fatal(err)
	}
	for _, strategy := range []Strategy{
		Naive, Batched8, Recursive, Auto,
	} {
		got, err := d.EvaluateFullDomain(k0, strategy)
		if err != nil {
			t.Fatalf("%v: %v", strategy, err)
		}
		for x := range ref {
			if got[x] != ref[x] {
				t.Fatalf("%v: differs from iterative at %d: %d != %d",
					strategy, x, got[x], ref[x])
			}
		}
	}
}

// The domain sums to beta: exactly one position is non-zero, at a
// random point.
func TestFullDomainSinglePoint(t *testing.T) {
	rng := fss.NewSecureRng()

	params, err := NewParams(8, 16)
	if err != nil {
		t.Fatal(err)
	}
	d := New(params, rng)

	alpha := rng.RandBits(8)
	beta := rng.RandBits(16)
	if beta == 0 {
		beta = 7
	}
	k0, k1 := d.GenerateKeys(alpha, beta)

	v0, err := d.EvaluateFullDomain(k0, Auto)
	if err != nil {
		t.Fatal(err)
	}
	v1, err := d.EvaluateFullDomain(k1, Auto)
	if err != nil {
		t.Fatal(err)
	}

	nonzero := 0
	for x := range v0 {
		v := fss.Mod(v0[x]+v1[x], 16)
		if v != 0 {
			nonzero++
			if uint64(x) != alpha || v != beta {
				t.Fatalf("non-zero %d at %d, expected %d at %d",
					v, x, beta, alpha)
			}
		}
	}
	if nonzero != 1 {
		t.Fatalf("%d non-zero positions, expected 1", nonzero)
	}
}

func TestFullDomainConfigErrors(t *testing.T) {
	rng := fss.NewSecureRng()

	// n=10 e=16 has 8 leaves per block.
	params, err := NewParams(10, 16)
	if err != nil {
		t.Fatal(err)
	}
	d := New(params, rng)
	k0, _ := d.GenerateKeys(1, 1)

	if _, err := d.EvaluateFullDomain(k0, Batched4); err == nil {
		t.Error("batched4 accepted 8-leaf params")
	}
	if _, err := d.EvaluateFullDomain(k0, Batched128); err == nil {
		t.Error("batched128 accepted 8-leaf params")
	}
	if _, err := d.EvaluateFullDomain(k0, Strategy(99)); err == nil {
		t.Error("unknown strategy accepted")
	}

	// n=4 e=32 has matching leaves but too shallow a tree.
	params, err = NewParams(4, 32)
	if err != nil {
		t.Fatal(err)
	}
	d = New(params, rng)
	k0, _ = d.GenerateKeys(1, 1)
	if _, err := d.EvaluateFullDomain(k0, Batched4); err == nil {
		t.Error("batched4 accepted depth-2 tree")
	}
}

func BenchmarkFullDomainIterative(b *testing.B) {
	benchmarkFullDomain(b, 14, 32, Iterative)
}

func BenchmarkFullDomainBatched4(b *testing.B) {
	benchmarkFullDomain(b, 14, 32, Batched4)
}

func BenchmarkFullDomainRecursive(b *testing.B) {
	benchmarkFullDomain(b, 14, 32, Recursive)
}

func benchmarkFullDomain(b *testing.B, n, e uint, strategy Strategy) {
	rng := fss.NewSecureRng()
	params, err := NewParams(n, e)
	if err != nil {
		b.Fatal(err)
	}
	d := New(params, rng)
	k0, _ := d.GenerateKeys(42, 1)

	for b.Loop() {
		if _, err := d.EvaluateFullDomain(k0, strategy); err != nil {
			b.Fatal(err)
		}
	}
}
