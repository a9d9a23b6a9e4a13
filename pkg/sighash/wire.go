package sighash

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// writeCompactSize writes a Bitcoin-style variable-length integer.
func writeCompactSize(w io.Writer, n uint64) {
	switch {
	case n < 253:
		w.Write([]byte{byte(n)})
	case n <= 0xFFFF:
		w.Write([]byte{253})
		binary.Write(w, binary.LittleEndian, uint16(n))
	case n <= 0xFFFFFFFF:
		w.Write([]byte{254})
		binary.Write(w, binary.LittleEndian, uint32(n))
	default:
		w.Write([]byte{255})
		binary.Write(w, binary.LittleEndian, n)
	}
}

// readCompactSize reads a Bitcoin-style variable-length integer.
func readCompactSize(r io.Reader) (uint64, error) {
	var first [1]byte
	if _, err := io.ReadFull(r, first[:]); err != nil {
		return 0, err
	}

	switch first[0] {
	case 253:
		var v uint16
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return uint64(v), nil
	case 254:
		var v uint32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return uint64(v), nil
	case 255:
		var v uint64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return 0, err
		}
		return v, nil
	default:
		return uint64(first[0]), nil
	}
}

// Serialize renders the transaction in the standard wire layout:
// version, inputs, outputs, lock time, with compact-size list prefixes.
func (tx *Transaction) Serialize() []byte {
	buf := new(bytes.Buffer)

	binary.Write(buf, binary.LittleEndian, tx.Version)

	writeCompactSize(buf, uint64(len(tx.Inputs)))
	for i := range tx.Inputs {
		in := &tx.Inputs[i]
		buf.Write(in.PreviousOutPoint.Hash[:])
		binary.Write(buf, binary.LittleEndian, in.PreviousOutPoint.Index)
		writeCompactSize(buf, uint64(len(in.SignatureScript)))
		buf.Write(in.SignatureScript)
		binary.Write(buf, binary.LittleEndian, in.Sequence)
	}

	writeCompactSize(buf, uint64(len(tx.Outputs)))
	for i := range tx.Outputs {
		out := &tx.Outputs[i]
		binary.Write(buf, binary.LittleEndian, out.Value)
		writeCompactSize(buf, uint64(len(out.PkScript)))
		buf.Write(out.PkScript)
	}

	binary.Write(buf, binary.LittleEndian, tx.LockTime)
	return buf.Bytes()
}

// Parse decodes a legacy (pre-segwit) wire-format transaction. Trailing
// bytes after the lock time are an error.
func Parse(data []byte) (*Transaction, error) {
	r := bytes.NewReader(data)
	tx := &Transaction{}

	if err := binary.Read(r, binary.LittleEndian, &tx.Version); err != nil {
		return nil, fmt.Errorf("reading version: %w", err)
	}

	numInputs, err := readCompactSize(r)
	if err != nil {
		return nil, fmt.Errorf("reading input count: %w", err)
	}
	tx.Inputs = make([]TxInput, numInputs)
	for i := uint64(0); i < numInputs; i++ {
		if err := parseInput(r, &tx.Inputs[i]); err != nil {
			return nil, fmt.Errorf("parsing input %d: %w", i, err)
		}
	}

	numOutputs, err := readCompactSize(r)
	if err != nil {
		return nil, fmt.Errorf("reading output count: %w", err)
	}
	tx.Outputs = make([]TxOutput, numOutputs)
	for i := uint64(0); i < numOutputs; i++ {
		if err := parseOutput(r, &tx.Outputs[i]); err != nil {
			return nil, fmt.Errorf("parsing output %d: %w", i, err)
		}
	}

	if err := binary.Read(r, binary.LittleEndian, &tx.LockTime); err != nil {
		return nil, fmt.Errorf("reading lock time: %w", err)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%d trailing bytes after lock time", r.Len())
	}
	return tx, nil
}

func parseInput(r io.Reader, in *TxInput) error {
	if _, err := io.ReadFull(r, in.PreviousOutPoint.Hash[:]); err != nil {
		return fmt.Errorf("reading prevout hash: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &in.PreviousOutPoint.Index); err != nil {
		return fmt.Errorf("reading prevout index: %w", err)
	}

	scriptLen, err := readCompactSize(r)
	if err != nil {
		return fmt.Errorf("reading signature script length: %w", err)
	}
	in.SignatureScript = make([]byte, scriptLen)
	if _, err := io.ReadFull(r, in.SignatureScript); err != nil {
		return fmt.Errorf("reading signature script: %w", err)
	}

	if err := binary.Read(r, binary.LittleEndian, &in.Sequence); err != nil {
		return fmt.Errorf("reading sequence: %w", err)
	}
	return nil
}

func parseOutput(r io.Reader, out *TxOutput) error {
	if err := binary.Read(r, binary.LittleEndian, &out.Value); err != nil {
		return fmt.Errorf("reading value: %w", err)
	}

	scriptLen, err := readCompactSize(r)
	if err != nil {
		return fmt.Errorf("reading locking script length: %w", err)
	}
	out.PkScript = make([]byte, scriptLen)
	if _, err := io.ReadFull(r, out.PkScript); err != nil {
		return fmt.Errorf("reading locking script: %w", err)
	}
	return nil
}
