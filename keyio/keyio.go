//
// keyio.go
//
// Copyright (c) 2024-2026 kbase6
//
// All rights reserved.
//

// Package keyio implements binary serialization of the FSS keys for
// the offline key-distribution step: the dealer generates key pairs
// and hands each party its half over a file or connection.
package keyio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/kbase6/FssFMI/dcf"
	"github.com/kbase6/FssFMI/ddcf"
	"github.com/kbase6/FssFMI/dpf"
	"github.com/kbase6/FssFMI/fss"
)

var bo = binary.BigEndian

const (
	ctrlLeft  = 0x01
	ctrlRight = 0x02
)

func writeBlock(w io.Writer, b fss.Block) error {
	var data fss.BlockData

	_, err := w.Write(b.Bytes(&data))
	return err
}

func readBlock(r io.Reader) (fss.Block, error) {
	var data fss.BlockData
	var b fss.Block

	if _, err := io.ReadFull(r, data[:]); err != nil {
		return b, err
	}
	b.SetData(&data)
	return b, nil
}

func writeUint64(w io.Writer, v uint64) error {
	var buf [8]byte

	bo.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readUint64(r io.Reader) (uint64, error) {
	var buf [8]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return bo.Uint64(buf[:]), nil
}

func writeHeader(w io.Writer, partyID, levels int) error {
	var buf [5]byte

	buf[0] = byte(partyID)
	bo.PutUint32(buf[1:], uint32(levels))
	_, err := w.Write(buf[:])
	return err
}

func readHeader(r io.Reader) (int, int, error) {
	var buf [5]byte

	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, 0, err
	}
	partyID := int(buf[0])
	if partyID > 1 {
		return 0, 0, fmt.Errorf("keyio: invalid party ID %d", partyID)
	}
	return partyID, int(bo.Uint32(buf[1:])), nil
}

func ctrlByte(l, r bool) byte {
	var b byte
	if l {
		b |= ctrlLeft
	}
	if r {
		b |= ctrlRight
	}
	return b
}

// WriteDpfKey serializes a DPF key.
func WriteDpfKey(w io.Writer, key *dpf.Key) error {
	if err := writeHeader(w, key.PartyID, len(key.CW)); err != nil {
		return err
	}
	if err := writeBlock(w, key.InitSeed); err != nil {
		return err
	}
	for _, cw := range key.CW {
		if err := writeBlock(w, cw.Seed); err != nil {
			return err
		}
		ctrl := []byte{ctrlByte(cw.CtrlLeft, cw.CtrlRight)}
		if _, err := w.Write(ctrl); err != nil {
			return err
		}
	}
	return writeBlock(w, key.Output)
}

// ReadDpfKey deserializes a DPF key.
func ReadDpfKey(r io.Reader) (*dpf.Key, error) {
	partyID, levels, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	key := &dpf.Key{
		PartyID: partyID,
		CW:      make([]dpf.CorrectionWord, levels),
	}
	if key.InitSeed, err = readBlock(r); err != nil {
		return nil, err
	}
	var ctrl [1]byte
	for i := range key.CW {
		if key.CW[i].Seed, err = readBlock(r); err != nil {
			return nil, err
		}
		if _, err = io.ReadFull(r, ctrl[:]); err != nil {
			return nil, err
		}
		key.CW[i].CtrlLeft = ctrl[0]&ctrlLeft != 0
		key.CW[i].CtrlRight = ctrl[0]&ctrlRight != 0
	}
	if key.Output, err = readBlock(r); err != nil {
		return nil, err
	}
	return key, nil
}

// WriteDcfKey serializes a DCF key.
func WriteDcfKey(w io.Writer, key *dcf.Key) error {
	if err := writeHeader(w, key.PartyID, len(key.CW)); err != nil {
		return err
	}
	if err := writeBlock(w, key.InitSeed); err != nil {
		return err
	}
	for _, cw := range key.CW {
		if err := writeBlock(w, cw.Seed); err != nil {
			return err
		}
		ctrl := []byte{ctrlByte(cw.CtrlLeft, cw.CtrlRight)}
		if _, err := w.Write(ctrl); err != nil {
			return err
		}
		if err := writeUint64(w, cw.Value); err != nil {
			return err
		}
	}
	return writeUint64(w, key.Output)
}

// ReadDcfKey deserializes a DCF key.
func ReadDcfKey(r io.Reader) (*dcf.Key, error) {
	partyID, levels, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	key := &dcf.Key{
		PartyID: partyID,
		CW:      make([]dcf.CorrectionWord, levels),
	}
	if key.InitSeed, err = readBlock(r); err != nil {
		return nil, err
	}
	var ctrl [1]byte
	for i := range key.CW {
		if key.CW[i].Seed, err = readBlock(r); err != nil {
			return nil, err
		}
		if _, err = io.ReadFull(r, ctrl[:]); err != nil {
			return nil, err
		}
		key.CW[i].CtrlLeft = ctrl[0]&ctrlLeft != 0
		key.CW[i].CtrlRight = ctrl[0]&ctrlRight != 0
		if key.CW[i].Value, err = readUint64(r); err != nil {
			return nil, err
		}
	}
	if key.Output, err = readUint64(r); err != nil {
		return nil, err
	}
	return key, nil
}

// WriteDdcfKey serializes a DDCF key.
func WriteDdcfKey(w io.Writer, key *ddcf.Key) error {
	if err := WriteDcfKey(w, key.Dcf); err != nil {
		return err
	}
	return writeUint64(w, key.Mask)
}

// ReadDdcfKey deserializes a DDCF key.
func ReadDdcfKey(r io.Reader) (*ddcf.Key, error) {
	dcfKey, err := ReadDcfKey(r)
	if err != nil {
		return nil, err
	}
	mask, err := readUint64(r)
	if err != nil {
		return nil, err
	}
	return &ddcf.Key{
		Dcf:  dcfKey,
		Mask: mask,
	}, nil
}
