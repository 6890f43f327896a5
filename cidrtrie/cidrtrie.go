package cidrtrie

import (
	"net/netip"

	"go4.org/netipx"

	"github.com/veqryn/cidr-ip-trie-sub001/trie"
)

// CIDRTrie is a navigable, ordered map keyed by IPv4 CIDR blocks, with
// natural ordering placing 0.0.0.0/1 before any prefix starting with a 1
// bit, and equal prefixes ordered by increasing mask width. A /0 prefix has
// a bit length of zero and is rejected as a key with InvalidArgument.
type CIDRTrie[V comparable] struct {
	*trie.Trie[netip.Prefix, V]
}

// New constructs an empty CIDRTrie.
func New[V comparable](opts ...trie.Option) *CIDRTrie[V] {
	return &CIDRTrie[V]{trie.New[netip.Prefix, V](Codec{}, opts...)}
}

// Subnets returns every stored CIDR contained within cidr (cidr itself
// included iff includeSelf).
func (t *CIDRTrie[V]) Subnets(cidr netip.Prefix, includeSelf bool) ([]netip.Prefix, error) {
	return t.PrefixedBy(cidr, includeSelf)
}

// Supernets returns every stored CIDR that contains cidr (cidr itself
// included iff includeSelf).
func (t *CIDRTrie[V]) Supernets(cidr netip.Prefix, includeSelf bool) ([]netip.Prefix, error) {
	return t.PrefixOf(cidr, includeSelf)
}

// Overlaps reports whether any CIDR stored in t shares address space with
// any CIDR stored in other. CIDR blocks are always either nested or
// disjoint, so this is exactly the prefix/subnet relation between the two
// key sets — computed here via go4.org/netipx's IPSet, which already
// implements range-overlap arithmetic, rather than re-deriving it by hand.
func (t *CIDRTrie[V]) Overlaps(other *CIDRTrie[V]) bool {
	var b netipx.IPSetBuilder
	for it := t.Keys().Iterator(); it.Next(); {
		k, _ := it.Key()
		b.AddPrefix(k)
	}
	set, err := b.IPSet()
	if err != nil {
		return false
	}
	for it := other.Keys().Iterator(); it.Next(); {
		k, _ := it.Key()
		if set.OverlapsPrefix(k) {
			return true
		}
	}
	return false
}
