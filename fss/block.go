//
// block.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

// Package fss implements the shared primitives of the function
// secret sharing engines: the 128-bit block, its packed-lane codec,
// and the secure random number generator.
package fss

import (
	"encoding/binary"
	"fmt"
)

// SecurityParameter is the bit width of seeds and blocks.
const SecurityParameter = 128

// Block implements a 128-bit value used both as a PRG seed and as a
// vector of packed sub-word integers. Lane i of width w occupies bits
// [i*w, (i+1)*w) of the little-endian value; Lo holds bits 0..63.
type Block struct {
	Lo uint64
	Hi uint64
}

// BlockData contains block data as a byte array.
type BlockData [16]byte

func (b Block) String() string {
	return fmt.Sprintf("%016x%016x", b.Hi, b.Lo)
}

// Equal tests if the blocks are equal.
func (b Block) Equal(o Block) bool {
	return b.Lo == o.Lo && b.Hi == o.Hi
}

// Lsb returns the block's least significant bit, used as the tree
// control bit.
func (b Block) Lsb() bool {
	return b.Lo&1 != 0
}

// Xor returns the bitwise XOR of the blocks.
func (b Block) Xor(o Block) Block {
	return Block{Lo: b.Lo ^ o.Lo, Hi: b.Hi ^ o.Hi}
}

// And returns the bitwise AND of the blocks.
func (b Block) And(o Block) Block {
	return Block{Lo: b.Lo & o.Lo, Hi: b.Hi & o.Hi}
}

// Or returns the bitwise OR of the blocks.
func (b Block) Or(o Block) Block {
	return Block{Lo: b.Lo | o.Lo, Hi: b.Hi | o.Hi}
}

// Add64 adds the blocks as two independent 64-bit halves with
// wraparound.
func (b Block) Add64(o Block) Block {
	return Block{Lo: b.Lo + o.Lo, Hi: b.Hi + o.Hi}
}

// Sub64 subtracts the blocks as two independent 64-bit halves with
// wraparound.
func (b Block) Sub64(o Block) Block {
	return Block{Lo: b.Lo - o.Lo, Hi: b.Hi - o.Hi}
}

// GetData gets the block as block data.
func (b Block) GetData(buf *BlockData) {
	binary.LittleEndian.PutUint64(buf[0:8], b.Lo)
	binary.LittleEndian.PutUint64(buf[8:16], b.Hi)
}

// SetData sets the block from block data.
func (b *Block) SetData(data *BlockData) {
	b.Lo = binary.LittleEndian.Uint64((*data)[0:8])
	b.Hi = binary.LittleEndian.Uint64((*data)[8:16])
}

// Bytes returns the block data as bytes.
func (b Block) Bytes(buf *BlockData) []byte {
	b.GetData(buf)
	return buf[:]
}

// SetBytes sets the block data from bytes.
func (b *Block) SetBytes(data []byte) {
	b.Lo = binary.LittleEndian.Uint64(data[0:8])
	b.Hi = binary.LittleEndian.Uint64(data[8:16])
}
