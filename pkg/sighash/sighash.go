package sighash

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/halcyon-labs/coinkit/pkg/hashutil"
)

// Script opcodes the engine has to know about: code separators are stripped
// from the subscript, and push opcodes carry data bytes that must never be
// misread as opcodes while stripping.
const (
	opPushData1     = 0x4c
	opPushData2     = 0x4d
	opPushData4     = 0x4e
	opCodeSeparator = 0xab
)

// singleSentinel is returned by HashForSignature when SIGHASH_SINGLE is
// asked for an input index with no matching output. The original client
// signed this "hash" of 1 instead of failing; the network still accepts
// such signatures, so this is a fixed result, not an error path.
var singleSentinel = [32]byte{0x01}

// HashForSignature computes the digest that a signature for input index
// commits to, given the subscript (the locking script being satisfied) and
// the signature-hash flags.
//
// The transaction is never mutated. A negative or out-of-range input index
// is a caller contract violation and panics.
func HashForSignature(tx *Transaction, index int, subscript []byte, hashType Type) [32]byte {
	if index < 0 || index >= len(tx.Inputs) {
		panic(fmt.Sprintf("sighash: input index %d out of range for %d inputs",
			index, len(tx.Inputs)))
	}
	p := preimage(tx, index, subscript, hashType)
	if p == nil {
		return singleSentinel
	}
	return hashutil.DoubleSha256(p)
}

// preimage builds the exact byte sequence that is double-SHA256-ed. Split
// out so tests can assert on the serialized form directly.
func preimage(tx *Transaction, index int, subscript []byte, hashType Type) []byte {
	sanitized := removeCodeSeparators(subscript)

	inputs := make([]TxInput, len(tx.Inputs))
	for i, in := range tx.Inputs {
		inputs[i] = in
		if i == index {
			inputs[i].SignatureScript = sanitized
		} else {
			inputs[i].SignatureScript = nil
		}
	}
	outputs := tx.Outputs

	switch hashType.Base() {
	case None:
		outputs = nil
		zeroOtherSequences(inputs, index)

	case Single:
		if index >= len(tx.Outputs) {
			// Historical defect: the original client returned the integer 1
			// as the digest here instead of failing. A nil preimage tells
			// HashForSignature to emit the fixed sentinel.
			return nil
		}
		outputs = make([]TxOutput, index+1)
		for i := 0; i < index; i++ {
			outputs[i] = TxOutput{Value: 0xFFFFFFFFFFFFFFFF}
		}
		outputs[index] = tx.Outputs[index]
		zeroOtherSequences(inputs, index)
	}

	// The input reduction keys on the whole flag byte, not the masked base:
	// ALL|ANYONECANPAY (0x81) does NOT reduce, matching the original client.
	if hashType == AnyOneCanPay {
		inputs = []TxInput{inputs[index]}
	}

	trimmed := Transaction{
		Version:  tx.Version,
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: tx.LockTime,
	}

	buf := bytes.NewBuffer(trimmed.Serialize())
	binary.Write(buf, binary.LittleEndian, uint32(hashType))
	return buf.Bytes()
}

// zeroOtherSequences clears every sequence except the signing input's.
func zeroOtherSequences(inputs []TxInput, index int) {
	for i := range inputs {
		if i != index {
			inputs[i].Sequence = 0
		}
	}
}

// removeCodeSeparators strips every OP_CODESEPARATOR from a script while
// honoring push-data lengths, so data bytes that happen to equal 0xab are
// kept. A push that runs past the end of the script is copied verbatim.
func removeCodeSeparators(script []byte) []byte {
	out := make([]byte, 0, len(script))

	for i := 0; i < len(script); {
		op := script[i]

		var pushLen int
		var headerLen int
		switch {
		case op <= 0x4b:
			pushLen, headerLen = int(op), 1
		case op == opPushData1:
			if i+1 >= len(script) {
				return append(out, script[i:]...)
			}
			pushLen, headerLen = int(script[i+1]), 2
		case op == opPushData2:
			if i+2 >= len(script) {
				return append(out, script[i:]...)
			}
			pushLen, headerLen = int(binary.LittleEndian.Uint16(script[i+1:i+3])), 3
		case op == opPushData4:
			if i+4 >= len(script) {
				return append(out, script[i:]...)
			}
			pushLen, headerLen = int(binary.LittleEndian.Uint32(script[i+1:i+5])), 5
		default:
			if op != opCodeSeparator {
				out = append(out, op)
			}
			i++
			continue
		}

		end := i + headerLen + pushLen
		if end > len(script) {
			return append(out, script[i:]...)
		}
		out = append(out, script[i:end]...)
		i = end
	}
	return out
}
