// Package strtrie specializes the trie engine to character strings,
// encoding each string as its raw bytes, most-significant bit first per
// byte (the "b = 8" case of spec.md §4.1's string codec) — a PATRICIA-style
// trie over byte sequences.
package strtrie

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/veqryn/cidr-ip-trie-sub001/internal/bitops"
)

const defaultMaxBytes = 4096
const bitsPerByte = 8

// Normalize returns s in Unicode NFC form. Codec does not normalize on its
// own — BitAt must stay O(1) per call, since the engine calls it once per
// bit of the key — so callers wanting Unicode-equivalence semantics (two
// different encodings of the same accented letter comparing equal) should
// normalize once at key-construction time, mirroring the FromString
// constructor idiom: normalize once, use the normalized form as the key
// from then on.
func Normalize(s string) string { return norm.NFC.String(s) }

// Codec implements trie.Codec[string]. Empty strings are rejected: a
// zero-length bit sequence has length_in_bits <= 0, which keyBits turns
// into InvalidArgument before any bit is read (spec.md §4.1).
type Codec struct {
	maxBytes int
}

// NewCodec constructs a string Codec. maxBytes bounds the longest key
// accepted, measured in bytes; 0 selects a default of 4096.
func NewCodec(maxBytes int) Codec {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	return Codec{maxBytes: maxBytes}
}

func (c Codec) LengthInBits(key string) int { return len(key) * bitsPerByte }

func (c Codec) BitAt(key string, i int) uint8 {
	byt := key[i/bitsPerByte]
	if byt&(1<<(7-uint(i%bitsPerByte))) == 0 {
		return 0
	}
	return 1
}

func (c Codec) MaxLengthInBits() int { return c.maxBytes * bitsPerByte }

func (c Codec) RecreateKey(bits []uint8, length int) string {
	return string(bitops.BytesFromBits(bits))
}

func (c Codec) Compare(a, b string) int { return strings.Compare(a, b) }
