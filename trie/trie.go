// Package trie implements a generic binary (bitwise) trie that behaves as a
// fully navigable, ordered map keyed by variable-length bit sequences. The
// engine is generic over a Codec[K]; concrete key domains (IPv4 CIDR
// blocks, character strings, ...) live in sibling packages (cidrtrie,
// strtrie) that supply a Codec and a thin convenience wrapper.
//
// The engine is single-writer: it performs no internal synchronization.
// Iterators are fail-fast, not thread-safe (see Kind.KindConcurrentModification).
package trie

import "fmt"

// config holds the options accepted by New. It is intentionally not
// parameterized over K/V since neither option touches a key or a value.
type config struct {
	cacheKeys bool
	writeKeys bool
}

// Option configures a Trie at construction time.
type Option func(*config)

// WithCacheKeys makes nodes lazily memoize their reconstructed key on first
// resolution, trading memory for O(1) repeat key lookups from a node.
func WithCacheKeys() Option { return func(c *config) { c.cacheKeys = true } }

// WithWriteKeys selects the flat (key, value) serialization form instead of
// the default tree-shape form (see Serialize).
func WithWriteKeys() Option { return func(c *config) { c.writeKeys = true } }

// Trie is a generic binary trie keyed by K with values V, navigable and
// ordered per Codec[K].Compare. The zero value is not usable; construct
// with New.
type Trie[K any, V comparable] struct {
	codec     Codec[K]
	nodes     []node[K, V]
	free      []nodeID
	size      int
	modCount  uint64
	cacheKeys bool
	writeKeys bool
}

// New constructs an empty Trie using codec to interpret keys of type K.
func New[K any, V comparable](codec Codec[K], opts ...Option) *Trie[K, V] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &Trie[K, V]{
		codec:     codec,
		cacheKeys: cfg.cacheKeys,
		writeKeys: cfg.writeKeys,
	}
	t.nodes = append(t.nodes, node[K, V]{left: noChild, right: noChild, parent: noChild, inUse: true})
	return t
}

// Size returns the number of key-bearing nodes (invariant #1).
func (t *Trie[K, V]) Size() int { return t.size }

// IsEmpty reports whether Size() == 0.
func (t *Trie[K, V]) IsEmpty() bool { return t.size == 0 }

// Clear removes all entries, resetting the trie to a fresh root.
func (t *Trie[K, V]) Clear() {
	t.nodes = t.nodes[:1]
	t.nodes[0] = node[K, V]{left: noChild, right: noChild, parent: noChild, inUse: true}
	t.free = nil
	t.size = 0
	t.modCount++
}

// Clone deep-copies the trie: the two engines never share nodes afterward.
func (t *Trie[K, V]) Clone() *Trie[K, V] {
	nodes := make([]node[K, V], len(t.nodes))
	copy(nodes, t.nodes)
	free := make([]nodeID, len(t.free))
	copy(free, t.free)
	return &Trie[K, V]{
		codec:     t.codec,
		nodes:     nodes,
		free:      free,
		size:      t.size,
		cacheKeys: t.cacheKeys,
		writeKeys: t.writeKeys,
	}
}

// keyBits validates key against the codec's length bounds and materializes
// its bit sequence before any mutation occurs, so that Put/Remove retain
// strong exception safety: a codec bug (panic from BitAt) surfaces as a
// KindCodec error with the trie left untouched.
func (t *Trie[K, V]) keyBits(key K) (bits []uint8, err error) {
	length := t.codec.LengthInBits(key)
	if length <= 0 {
		return nil, errInvalidArgument("length_in_bits must be > 0")
	}
	if max := t.codec.MaxLengthInBits(); length > max {
		return nil, errInvalidArgument(fmt.Sprintf("key length %d exceeds max_length_in_bits %d", length, max))
	}
	defer func() {
		if r := recover(); r != nil {
			bits = nil
			err = errCodec(fmt.Sprintf("bit_at panicked for index within [0,%d): %v", length, r))
		}
	}()
	bits = make([]uint8, length)
	for i := range bits {
		bits[i] = t.codec.BitAt(key, i)
	}
	return bits, nil
}

// descend walks from the root along bits, returning the id of the node at
// the end of the path and true, or (noChild, false) if the trie does not
// have a node at that exact position.
func (t *Trie[K, V]) descend(bits []uint8) (nodeID, bool) {
	cur := rootID
	for _, bit := range bits {
		n := t.at(cur)
		var next nodeID
		if bit == 0 {
			next = n.left
		} else {
			next = n.right
		}
		if next == noChild {
			return noChild, false
		}
		cur = next
	}
	return cur, true
}

// Get returns the value stored for key, if present.
func (t *Trie[K, V]) Get(key K) (V, bool, error) {
	var zero V
	bits, err := t.keyBits(key)
	if err != nil {
		return zero, false, err
	}
	id, ok := t.descend(bits)
	if !ok {
		return zero, false, nil
	}
	n := t.at(id)
	return n.value, n.hasValue, nil
}

// Contains reports whether key is present.
func (t *Trie[K, V]) Contains(key K) (bool, error) {
	_, ok, err := t.Get(key)
	return ok, err
}

// Put associates value with key, returning the previous value (if any).
// The modification counter advances only when a new key-bearing node is
// created; overwriting an existing key's value does not invalidate
// in-flight iterators.
func (t *Trie[K, V]) Put(key K, value V) (V, bool, error) {
	var zero V
	bits, err := t.keyBits(key)
	if err != nil {
		return zero, false, err
	}
	cur := rootID
	for _, bit := range bits {
		n := t.at(cur)
		var next nodeID
		if bit == 0 {
			next = n.left
		} else {
			next = n.right
		}
		if next == noChild {
			next = t.allocNode()
			t.attachChild(cur, bit, next)
		}
		cur = next
	}
	n := t.at(cur)
	var prev V
	hadPrev := n.hasValue
	if hadPrev {
		prev = n.value
	} else {
		t.size++
		t.modCount++
	}
	t.setValue(cur, value)
	if t.cacheKeys {
		t.clearCachedKey(cur)
	}
	return prev, hadPrev, nil
}

// Remove deletes key from the trie, returning its prior value if present.
// Deletion frees the emptied node and every ancestor left with neither a
// value nor a child. A valueless node that still has a child stays where it
// is, since a node's key is its path from the root.
func (t *Trie[K, V]) Remove(key K) (V, bool, error) {
	var zero V
	bits, err := t.keyBits(key)
	if err != nil {
		return zero, false, err
	}
	id, ok := t.descend(bits)
	if !ok {
		return zero, false, nil
	}
	n := t.at(id)
	if !n.hasValue {
		return zero, false, nil
	}
	prev := n.value
	t.clearValue(id)
	t.size--
	t.modCount++

	cur := id
	for cur != rootID && t.isRoutingOnly(cur) && t.childCount(cur) == 0 {
		parent := t.at(cur).parent
		t.detachChild(parent, t.childBit(parent, cur))
		t.freeNode(cur)
		cur = parent
	}
	return prev, true, nil
}

// keyOf reconstructs the key of node id by walking to the root and
// invoking the codec's RecreateKey, memoizing the result when cacheKeys is
// enabled (invariant #3: cached_key length always equals node depth).
func (t *Trie[K, V]) keyOf(id nodeID) K {
	n := t.at(id)
	if t.cacheKeys && n.hasKey {
		return n.key
	}
	var bits []uint8
	cur := id
	for cur != rootID {
		parent := t.at(cur).parent
		bit := t.childBit(parent, cur)
		bits = append(bits, bit)
		cur = parent
	}
	for i, j := 0, len(bits)-1; i < j; i, j = i+1, j-1 {
		bits[i], bits[j] = bits[j], bits[i]
	}
	key := t.codec.RecreateKey(bits, len(bits))
	if t.cacheKeys {
		n.key = key
		n.hasKey = true
	}
	return key
}

// firstKeyBearing returns the smallest key-bearing node in the subtree
// rooted at id (in-order minimum), or noChild if the subtree has none.
func (t *Trie[K, V]) firstKeyBearing(id nodeID) nodeID {
	cur := id
	for {
		n := t.at(cur)
		if n.hasValue {
			return cur
		}
		if n.left != noChild {
			cur = n.left
			continue
		}
		if n.right != noChild {
			cur = n.right
			continue
		}
		return noChild
	}
}

// lastKeyBearing returns the largest key-bearing node in the subtree
// rooted at id (in-order maximum), or noChild if the subtree has none.
// Self only qualifies once both subtrees have been ruled out: self
// precedes both of its children, so anything reachable through either
// one is necessarily larger.
func (t *Trie[K, V]) lastKeyBearing(id nodeID) nodeID {
	cur := id
	for {
		n := t.at(cur)
		if n.right != noChild {
			cur = n.right
			continue
		}
		if n.left != noChild {
			cur = n.left
			continue
		}
		if n.hasValue {
			return cur
		}
		return noChild
	}
}

// ascendLeftBoundary walks up from id until it finds an ancestor of which
// id's subtree hangs off the left, returning that ancestor, or noChild if
// id is on the rightmost spine all the way to the root.
func (t *Trie[K, V]) ascendLeftBoundary(id nodeID) nodeID {
	cur := id
	for cur != rootID {
		parent := t.at(cur).parent
		if t.at(parent).left == cur {
			return parent
		}
		cur = parent
	}
	return noChild
}

// successorOf returns the in-order next key-bearing node after id, or
// noChild if id holds the largest key. Self precedes both children, so a
// valued node's own left subtree (if any) holds its immediate successor;
// only once both subtrees are exhausted does the search move to ancestors.
// Climbing past a "reached via right child" ancestor is always safe to do
// without inspecting its own value: that ancestor's value precedes its
// right subtree, which is where id sits, so it can never be id's successor.
func (t *Trie[K, V]) successorOf(id nodeID) nodeID {
	n := t.at(id)
	if n.left != noChild {
		return t.firstKeyBearing(n.left)
	}
	if n.right != noChild {
		return t.firstKeyBearing(n.right)
	}
	cur := id
	for {
		p := t.ascendLeftBoundary(cur)
		if p == noChild {
			return noChild
		}
		if t.at(p).right != noChild {
			return t.firstKeyBearing(t.at(p).right)
		}
		cur = p
	}
}

// predecessorOf returns the in-order previous key-bearing node before id,
// or noChild if id holds the smallest key. Unlike successorOf, id's own
// subtrees are never candidates (everything below id sorts after id), so
// the search always climbs immediately. The climb cannot jump straight to
// the first boundary ancestor the way successorOf does: an ancestor
// reached via its left child precedes id and is itself a live candidate
// (not merely a waypoint), so each parent is inspected as it is visited.
func (t *Trie[K, V]) predecessorOf(id nodeID) nodeID {
	cur := id
	for cur != rootID {
		parent := t.at(cur).parent
		pn := t.at(parent)
		if pn.right == cur {
			if pn.left != noChild {
				return t.lastKeyBearing(pn.left)
			}
			if pn.hasValue {
				return parent
			}
		} else if pn.hasValue {
			return parent
		}
		cur = parent
	}
	return noChild
}

// locate descends along bits, returning the deepest key-bearing ancestor
// whose key is <= the queried key (floor), the key-bearing node (ancestor
// or descendant) with the smallest key >= the queried key (ceil), and
// whether a node with exactly this bit sequence exists and is valued
// (exact; in which case floor == ceil == that node).
func (t *Trie[K, V]) locate(bits []uint8) (floor, ceil nodeID, exact bool) {
	floor, ceil = noChild, noChild
	cur := rootID
	for _, bit := range bits {
		n := t.at(cur)
		if n.hasValue {
			floor = cur
		}
		if bit == 1 {
			if n.left != noChild {
				floor = t.lastKeyBearing(n.left)
			}
			if n.right == noChild {
				return floor, ceil, false
			}
			cur = n.right
		} else {
			if n.right != noChild {
				ceil = t.firstKeyBearing(n.right)
			}
			if n.left == noChild {
				return floor, ceil, false
			}
			cur = n.left
		}
	}
	n := t.at(cur)
	if n.hasValue {
		return cur, cur, true
	}
	return floor, t.firstKeyBearing(cur), false
}
