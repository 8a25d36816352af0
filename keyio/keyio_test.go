//
// keyio_test.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

package keyio

import (
	"bytes"
	"testing"

	"github.com/kbase6/FssFMI/dcf"
	"github.com/kbase6/FssFMI/ddcf"
	"github.com/kbase6/FssFMI/dpf"
	"github.com/kbase6/FssFMI/fss"
)

// A deserialized key must evaluate identically to the original.
func TestDpfKeyRoundtrip(t *testing.T) {
	rng := fss.NewSecureRng()

	params, err := dpf.NewParams(10, 16)
	if err != nil {
		t.Fatal(err)
	}
	d := dpf.New(params, rng)
	k0, k1 := d.GenerateKeys(777, 42)

	for _, key := range []*dpf.Key{k0, k1} {
		var buf bytes.Buffer
		if err := WriteDpfKey(&buf, key); err != nil {
			t.Fatalf("write: %v", err)
		}
		got, err := ReadDpfKey(&buf)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		for x := uint64(0); x < 1024; x += 13 {
			if d.EvaluateAt(got, x) != d.EvaluateAt(key, x) {
				t.Fatalf("party %d: evaluation differs at %d",
					key.PartyID, x)
			}
		}
	}
}

func TestDcfKeyRoundtrip(t *testing.T) {
	rng := fss.NewSecureRng()

	params, err := dcf.NewParams(12, 32)
	if err != nil {
		t.Fatal(err)
	}
	d := dcf.New(params, rng)
	k0, _ := d.GenerateKeys(2000, 9)

	var buf bytes.Buffer
	if err := WriteDcfKey(&buf, k0); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadDcfKey(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.PartyID != k0.PartyID || got.Output != k0.Output {
		t.Fatal("key fields differ")
	}
	for x := uint64(0); x < 4096; x += 111 {
		if d.EvaluateAt(got, x) != d.EvaluateAt(k0, x) {
			t.Fatalf("evaluation differs at %d", x)
		}
	}
}

func TestDdcfKeyRoundtrip(t *testing.T) {
	rng := fss.NewSecureRng()

	params, err := ddcf.NewParams(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	d := ddcf.New(params, rng)
	_, k1 := d.GenerateKeys(100, 3, 5)

	var buf bytes.Buffer
	if err := WriteDdcfKey(&buf, k1); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadDdcfKey(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Mask != k1.Mask {
		t.Fatal("mask differs")
	}
	for x := uint64(0); x < 256; x++ {
		if d.EvaluateAt(got, x) != d.EvaluateAt(k1, x) {
			t.Fatalf("evaluation differs at %d", x)
		}
	}
}

func TestTruncatedInput(t *testing.T) {
	rng := fss.NewSecureRng()

	params, err := dpf.NewParams(10, 16)
	if err != nil {
		t.Fatal(err)
	}
	d := dpf.New(params, rng)
	k0, _ := d.GenerateKeys(1, 1)

	var buf bytes.Buffer
	if err := WriteDpfKey(&buf, k0); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	for _, cut := range []int{0, 3, 5, 20, len(data) - 1} {
		if _, err := ReadDpfKey(bytes.NewReader(data[:cut])); err == nil {
			t.Errorf("no error for %d-byte input", cut)
		}
	}
}

func TestInvalidParty(t *testing.T) {
	data := []byte{7, 0, 0, 0, 0}
	if _, err := ReadDpfKey(bytes.NewReader(data)); err == nil {
		t.Error("no error for invalid party ID")
	}
}
