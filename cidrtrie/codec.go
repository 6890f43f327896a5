// Package cidrtrie specializes the trie engine to IPv4 CIDR blocks,
// mirroring how the source library layers a concrete CidrTrie atop its
// generic AbstractBinaryTrie.
package cidrtrie

import (
	"net/netip"

	"github.com/veqryn/cidr-ip-trie-sub001/internal/bitops"
)

const maxIPv4Bits = 32

// Codec implements trie.Codec[netip.Prefix]: an a.b.c.d/m CIDR encodes as
// the top m bits of the 32-bit address, MSB-first (spec.md §4.1). A zero or
// non-IPv4 Prefix reports a length of -1, which keyBits rejects with
// InvalidArgument before any bit is ever read.
type Codec struct{}

func (Codec) LengthInBits(key netip.Prefix) int {
	if !key.IsValid() || !key.Addr().Is4() {
		return -1
	}
	return key.Bits()
}

func (Codec) BitAt(key netip.Prefix, i int) uint8 {
	addr := key.Addr().As4()
	return bitops.BitAt(addr[:], i)
}

func (Codec) MaxLengthInBits() int { return maxIPv4Bits }

// RecreateKey rebuilds a canonical (host bits cleared) CIDR from bits.
func (Codec) RecreateKey(bits []uint8, length int) netip.Prefix {
	var addr [4]byte
	copy(addr[:], bitops.BytesFromBits(bits))
	return netip.PrefixFrom(netip.AddrFrom4(addr), length).Masked()
}

// Compare orders by bit sequence: equal on the bits they share, shorter
// prefixes sort before any of their strict extensions. Comparison never
// looks past either key's own length, so host bits on an uncanonicalized
// input play no part.
func (c Codec) Compare(a, b netip.Prefix) int {
	la, lb := a.Bits(), b.Bits()
	minLen := la
	if lb < minLen {
		minLen = lb
	}
	for i := 0; i < minLen; i++ {
		ba, bb := c.BitAt(a, i), c.BitAt(b, i)
		if ba != bb {
			if ba < bb {
				return -1
			}
			return 1
		}
	}
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	default:
		return 0
	}
}
