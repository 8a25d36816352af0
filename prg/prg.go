//
// prg.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

// Package prg implements the fixed-key seed expansion used by the
// FSS engines. Each instance is an AES-128 permutation under a
// public constant key; key generation and evaluation must use the
// same instances, so the four domain-separated keys are exported as
// package constants.
package prg

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/kbase6/FssFMI/fss"
)

// Fixed expansion keys for the seed and value trees.
var (
	KeySeedLeft = fss.Block{
		Lo: 0xcc2ce93fdbcccc28,
		Hi: 0xf2416bf54f02e446,
	}
	KeySeedRight = fss.Block{
		Lo: 0xdac18583c2123349,
		Hi: 0x65776b0991b8d225,
	}
	KeyValueLeft = fss.Block{
		Lo: 0xd496c0250718166b,
		Hi: 0x276bea362956385d,
	}
	KeyValueRight = fss.Block{
		Lo: 0xf426148f7bfb9254,
		Hi: 0xaaa420b202808958,
	}
)

// PRG implements a deterministic expansion of 128-bit seeds.
type PRG struct {
	cipher cipher.Block
}

// New creates a new PRG keyed with the argument block.
func New(key fss.Block) *PRG {
	var data fss.BlockData

	c, err := aes.NewCipher(key.Bytes(&data))
	if err != nil {
		// Invalid key size.
		panic(err)
	}
	return &PRG{
		cipher: c,
	}
}

// Eval expands the seed into one output block.
func (prg *PRG) Eval(seed fss.Block) fss.Block {
	var data fss.BlockData

	seed.GetData(&data)
	prg.cipher.Encrypt(data[:], data[:])

	var out fss.Block
	out.SetData(&data)
	return out
}

// Eval8 expands eight seeds in lockstep.
func (prg *PRG) Eval8(in, out *[8]fss.Block) {
	var data fss.BlockData

	for i := range in {
		in[i].GetData(&data)
		prg.cipher.Encrypt(data[:], data[:])
		out[i].SetData(&data)
	}
}
