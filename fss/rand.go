//
// rand.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

package fss

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// SecureRng implements a buffered cryptographic random number
// generator. The generator is a ChaCha20 stream keyed from the
// system's entropy source; one instance is not safe for concurrent
// use.
type SecureRng struct {
	stream *chacha20.Cipher
	buf    [512]byte
	pos    int
}

// NewSecureRng creates a new random number generator. It panics if
// the system's entropy source fails.
func NewSecureRng() *SecureRng {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte

	if _, err := rand.Read(key[:]); err != nil {
		panic(fmt.Sprintf("fss: rng key: %s", err))
	}
	if _, err := rand.Read(nonce[:]); err != nil {
		panic(fmt.Sprintf("fss: rng nonce: %s", err))
	}
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	rng := &SecureRng{
		stream: stream,
	}
	rng.pos = len(rng.buf)
	return rng
}

func (rng *SecureRng) refill() {
	for i := range rng.buf {
		rng.buf[i] = 0
	}
	rng.stream.XORKeyStream(rng.buf[:], rng.buf[:])
	rng.pos = 0
}

// Uint64 returns a uniform 64-bit value.
func (rng *SecureRng) Uint64() uint64 {
	if rng.pos+8 > len(rng.buf) {
		rng.refill()
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(rng.buf[rng.pos+i]) << (8 * i)
	}
	rng.pos += 8
	return v
}

// RandBits returns a uniform value modulo 2^bits.
func (rng *SecureRng) RandBits(bits uint) uint64 {
	return Mod(rng.Uint64(), bits)
}

// Block returns a uniform 128-bit block.
func (rng *SecureRng) Block() Block {
	return Block{
		Lo: rng.Uint64(),
		Hi: rng.Uint64(),
	}
}

// Read implements io.Reader with random bytes.
func (rng *SecureRng) Read(p []byte) (int, error) {
	for i := range p {
		if rng.pos >= len(rng.buf) {
			rng.refill()
		}
		p[i] = rng.buf[rng.pos]
		rng.pos++
	}
	return len(p), nil
}
