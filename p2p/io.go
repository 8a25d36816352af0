//
// io.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

// Package p2p implements the two-party connection of the online
// phase: a buffered binary protocol with I/O statistics over any
// io.ReadWriter, TCP helpers, and an in-memory pipe for tests.
package p2p

import (
	"encoding/binary"
)

var bo = binary.BigEndian

// IO defines the binary I/O interface between the parties.
type IO interface {
	// SendData sends length-prefixed binary data.
	SendData(val []byte) error

	// SendUint32 sends an uint32 value.
	SendUint32(val int) error

	// SendUint64 sends an uint64 value.
	SendUint64(val uint64) error

	// Flush flushes any pending data.
	Flush() error

	// ReceiveData receives length-prefixed binary data.
	ReceiveData() ([]byte, error)

	// ReceiveUint32 receives an uint32 value.
	ReceiveUint32() (int, error)

	// ReceiveUint64 receives an uint64 value.
	ReceiveUint64() (uint64, error)
}
