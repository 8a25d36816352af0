//
// lanes.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

package fss

import (
	"fmt"
)

// MaskBits returns a mask covering the low bits bits of a uint64.
func MaskBits(bits uint) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

// Mod reduces v modulo 2^bits.
func Mod(v uint64, bits uint) uint64 {
	return v & MaskBits(bits)
}

// CondNeg returns v, negated modulo 2^bits when neg is set.
func CondNeg(neg bool, v uint64, bits uint) uint64 {
	if neg {
		v = -v
	}
	return Mod(v, bits)
}

// ValidLanes tests if num is a supported lane count.
func ValidLanes(num uint) bool {
	switch num {
	case 4, 8, 16, 32, 64, 128:
		return true
	default:
		return false
	}
}

func checkLanes(num uint) {
	if !ValidLanes(num) {
		panic(fmt.Sprintf("fss: invalid lane count %d", num))
	}
}

// Convert returns the block's low bits bits as an element value.
func (b Block) Convert(bits uint) uint64 {
	return Mod(b.Lo, bits)
}

// ConvertVec unpacks the block into num lane values, each reduced
// modulo 2^bits.
func (b Block) ConvertVec(num, bits uint) []uint64 {
	checkLanes(num)

	w := SecurityParameter / num
	mask := MaskBits(w) & MaskBits(bits)

	vec := make([]uint64, num)
	for i := uint(0); i < num; i++ {
		off := i * w
		if off < 64 {
			vec[i] = (b.Lo >> off) & mask
		} else {
			vec[i] = (b.Hi >> (off - 64)) & mask
		}
	}
	return vec
}

// FromVec packs num lane values into a block, each reduced modulo
// 2^bits.
func FromVec(vec []uint64, num, bits uint) Block {
	checkLanes(num)
	if uint(len(vec)) != num {
		panic(fmt.Sprintf("fss: lane count mismatch: %d != %d",
			len(vec), num))
	}

	w := SecurityParameter / num
	mask := MaskBits(w) & MaskBits(bits)

	var b Block
	for i := uint(0); i < num; i++ {
		v := vec[i] & mask
		off := i * w
		if off < 64 {
			b.Lo |= v << off
		} else {
			b.Hi |= v << (off - 64)
		}
	}
	return b
}

// AddVec adds the blocks lane-wise at num lanes, each lane wrapping
// at its width.
func (b Block) AddVec(o Block, num uint) Block {
	checkLanes(num)

	w := SecurityParameter / num
	x := b.ConvertVec(num, w)
	y := o.ConvertVec(num, w)
	for i := range x {
		x[i] += y[i]
	}
	return FromVec(x, num, w)
}

// SubVec subtracts the blocks lane-wise at num lanes, each lane
// wrapping at its width.
func (b Block) SubVec(o Block, num uint) Block {
	checkLanes(num)

	w := SecurityParameter / num
	x := b.ConvertVec(num, w)
	y := o.ConvertVec(num, w)
	for i := range x {
		x[i] -= y[i]
	}
	return FromVec(x, num, w)
}

// NegVec negates the block lane-wise at num lanes.
func (b Block) NegVec(num uint) Block {
	checkLanes(num)

	w := SecurityParameter / num
	x := b.ConvertVec(num, w)
	for i := range x {
		x[i] = -x[i]
	}
	return FromVec(x, num, w)
}
