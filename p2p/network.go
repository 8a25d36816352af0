//
// network.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

package p2p

import (
	"log"
	"net"
	"time"
)

// Listen waits for the other party to connect to addr and returns
// the protocol connection.
func Listen(addr string) (*Conn, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	defer listener.Close()

	nc, err := listener.Accept()
	if err != nil {
		return nil, err
	}
	return NewConn(nc), nil
}

// Dial connects to the other party at addr, retrying until the
// listener is up.
func Dial(addr string) (*Conn, error) {
	for {
		nc, err := net.Dial("tcp", addr)
		if err != nil {
			delay := time.Second
			log.Printf("p2p: connect to %s failed, retrying in %s", addr, delay)
			<-time.After(delay)
			continue
		}
		return NewConn(nc), nil
	}
}
