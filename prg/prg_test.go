//
// prg_test.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

package prg

import (
	"testing"

	"github.com/kbase6/FssFMI/fss"
)

func TestDeterministic(t *testing.T) {
	prg := New(KeySeedLeft)
	seed := fss.Block{Lo: 1, Hi: 2}

	out1 := prg.Eval(seed)
	out2 := prg.Eval(seed)
	if !out1.Equal(out2) {
		t.Fatalf("eval not deterministic: %v != %v", out1, out2)
	}
	if out1.Equal(seed) {
		t.Fatal("eval is identity")
	}

	prg2 := New(KeySeedLeft)
	if out3 := prg2.Eval(seed); !out3.Equal(out1) {
		t.Fatal("instances of the same key disagree")
	}
}

func TestDomainSeparation(t *testing.T) {
	seed := fss.Block{Lo: 42}

	keys := []fss.Block{
		KeySeedLeft, KeySeedRight, KeyValueLeft, KeyValueRight,
	}
	seen := make(map[fss.Block]bool)
	for _, key := range keys {
		out := New(key).Eval(seed)
		if seen[out] {
			t.Fatalf("key %v collides", key)
		}
		seen[out] = true
	}
}

func TestEval8(t *testing.T) {
	prg := New(KeySeedRight)

	var in, out [8]fss.Block
	for i := range in {
		in[i] = fss.Block{Lo: uint64(i), Hi: uint64(i * 7)}
	}
	prg.Eval8(&in, &out)

	for i := range in {
		single := prg.Eval(in[i])
		if !out[i].Equal(single) {
			t.Fatalf("lane %d: got %v, expected %v", i, out[i], single)
		}
	}
}

func BenchmarkEval(b *testing.B) {
	prg := New(KeySeedLeft)
	seed := fss.Block{Lo: 1}

	for b.Loop() {
		seed = prg.Eval(seed)
	}
}

func BenchmarkEval8(b *testing.B) {
	prg := New(KeySeedLeft)

	var in, out [8]fss.Block
	for b.Loop() {
		prg.Eval8(&in, &out)
		in = out
	}
}
