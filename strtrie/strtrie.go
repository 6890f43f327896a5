package strtrie

import (
	"github.com/veqryn/cidr-ip-trie-sub001/trie"
)

// StringTrie is a navigable, ordered map keyed by strings, using byte-wise
// PATRICIA-style sharing of common prefixes.
type StringTrie[V comparable] struct {
	*trie.Trie[string, V]
}

// New constructs an empty StringTrie. maxBytes bounds the longest key
// accepted; 0 selects the Codec's default.
func New[V comparable](maxBytes int, opts ...trie.Option) *StringTrie[V] {
	return &StringTrie[V]{trie.New[string, V](NewCodec(maxBytes), opts...)}
}
