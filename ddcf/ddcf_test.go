//
// ddcf_test.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

package ddcf

import (
	"testing"

	"github.com/kbase6/FssFMI/fss"
)

// Shares must reconstruct to beta1 below alpha and beta2 from alpha
// up.
func TestReconstruction(t *testing.T) {
	rng := fss.NewSecureRng()

	tests := []struct {
		n, e  uint
		alpha uint64
		beta1 uint64
		beta2 uint64
	}{
		{n: 3, e: 8, alpha: 3, beta1: 2, beta2: 4},
		{n: 5, e: 5, alpha: 3, beta1: 2, beta2: 4},
		{n: 8, e: 16, alpha: 100, beta1: 0, beta2: 1},
		{n: 8, e: 32, alpha: 0, beta1: 7, beta2: 7},
		{n: 10, e: 8, alpha: 1023, beta1: 255, beta2: 1},
	}
	for _, test := range tests {
		params, err := NewParams(test.n, test.e)
		if err != nil {
			t.Fatal(err)
		}
		d := New(params, rng)
		k0, k1 := d.GenerateKeys(test.alpha, test.beta1, test.beta2)

		for x := uint64(0); x < uint64(1)<<test.n; x++ {
			sum := fss.Mod(d.EvaluateAt(k0, x)+d.EvaluateAt(k1, x),
				test.e)

			expected := fss.Mod(test.beta2, test.e)
			if x < test.alpha {
				expected = fss.Mod(test.beta1, test.e)
			}
			if sum != expected {
				t.Fatalf("n=%d alpha=%d: f(%d) = %d, expected %d",
					test.n, test.alpha, x, sum, expected)
			}
		}
	}
}

// One mask share alone must not reveal beta2.
func TestMaskSharing(t *testing.T) {
	rng := fss.NewSecureRng()

	params, err := NewParams(8, 16)
	if err != nil {
		t.Fatal(err)
	}
	d := New(params, rng)

	same := 0
	for i := 0; i < 32; i++ {
		k0, k1 := d.GenerateKeys(10, 1, 0xabcd)
		if fss.Mod(k0.Mask+k1.Mask, 16) != 0xabcd {
			t.Fatal("mask shares do not reconstruct beta2")
		}
		if k0.Mask == 0xabcd {
			same++
		}
	}
	if same == 32 {
		t.Fatal("mask share is not blinded")
	}
}

func BenchmarkEvaluateAt(b *testing.B) {
	rng := fss.NewSecureRng()
	params, err := NewParams(16, 16)
	if err != nil {
		b.Fatal(err)
	}
	d := New(params, rng)
	k0, _ := d.GenerateKeys(12345, 1, 2)

	var x uint64
	for b.Loop() {
		d.EvaluateAt(k0, x)
		x = (x + 1) & 0xffff
	}
}
