package trie

import set3 "github.com/TomTonic/Set3"

// View is a live, bounded window onto a Trie: the full map (no bounds), a
// head/tail/sub-map, a descending map, or a prefixed-by map. It holds no
// copies — every method re-reads the backing Trie, so mutating the Trie
// through the View (or directly) is immediately visible through any other
// View derived from it. A View's lifetime must not exceed its Trie's.
type View[K any, V comparable] struct {
	t *Trie[K, V]

	hasLo, loInclusive bool
	lo                 K
	hasHi, hiInclusive bool
	hi                 K

	hasPrefix     bool
	prefixBits    []uint8
	includeAnchor bool

	descending bool
}

// FullView returns the unbounded, ascending view of the whole trie.
func FullView[K any, V comparable](t *Trie[K, V]) *View[K, V] {
	return &View[K, V]{t: t}
}

// prefixedByView returns the live view of entries whose bit sequence
// starts with prefixBits (anchor included iff includeAnchor).
func prefixedByView[K any, V comparable](t *Trie[K, V], prefixBits []uint8, includeAnchor bool) *View[K, V] {
	return &View[K, V]{t: t, hasPrefix: true, prefixBits: prefixBits, includeAnchor: includeAnchor}
}

func (v *View[K, V]) clone() *View[K, V] {
	nv := *v
	return &nv
}

// HeadMap returns the entries < to (or <= to if inclusive). Under a
// descending view this composes as the ascending TailMap would, with
// inclusivity carried through unchanged (descending duality, spec.md §4.5).
func (v *View[K, V]) HeadMap(to K, inclusive bool) *View[K, V] {
	nv := v.clone()
	if v.descending {
		nv.hasLo, nv.lo, nv.loInclusive = true, to, inclusive
	} else {
		nv.hasHi, nv.hi, nv.hiInclusive = true, to, inclusive
	}
	return nv
}

// TailMap returns the entries > from (or >= from if inclusive).
func (v *View[K, V]) TailMap(from K, inclusive bool) *View[K, V] {
	nv := v.clone()
	if v.descending {
		nv.hasHi, nv.hi, nv.hiInclusive = true, from, inclusive
	} else {
		nv.hasLo, nv.lo, nv.loInclusive = true, from, inclusive
	}
	return nv
}

// SubMap returns the entries between from and to per the given inclusivity.
func (v *View[K, V]) SubMap(from K, fromInclusive bool, to K, toInclusive bool) *View[K, V] {
	nv := v.clone()
	if v.descending {
		nv.hasLo, nv.lo, nv.loInclusive = true, to, toInclusive
		nv.hasHi, nv.hi, nv.hiInclusive = true, from, fromInclusive
	} else {
		nv.hasLo, nv.lo, nv.loInclusive = true, from, fromInclusive
		nv.hasHi, nv.hi, nv.hiInclusive = true, to, toInclusive
	}
	return nv
}

// DescendingMap returns the same bounds iterated in reverse.
func (v *View[K, V]) DescendingMap() *View[K, V] {
	nv := v.clone()
	nv.descending = !nv.descending
	return nv
}

// keyInBounds reports whether key satisfies this view's bounds. It does not
// check presence in the trie.
func (v *View[K, V]) keyInBounds(key K) bool {
	if v.hasPrefix {
		bits, err := v.t.keyBits(key)
		if err != nil || len(bits) < len(v.prefixBits) {
			return false
		}
		for i, b := range v.prefixBits {
			if bits[i] != b {
				return false
			}
		}
		if !v.includeAnchor && len(bits) == len(v.prefixBits) {
			return false
		}
	}
	if v.hasLo {
		c := v.t.codec.Compare(key, v.lo)
		if c < 0 || (c == 0 && !v.loInclusive) {
			return false
		}
	}
	if v.hasHi {
		c := v.t.codec.Compare(key, v.hi)
		if c > 0 || (c == 0 && !v.hiInclusive) {
			return false
		}
	}
	return true
}

// boundStart returns the smallest in-range node, or noChild.
func (v *View[K, V]) boundStart() nodeID {
	t := v.t
	var start nodeID
	switch {
	case v.hasPrefix:
		anchor, ok := t.descend(v.prefixBits)
		if !ok {
			return noChild
		}
		start = t.firstKeyBearing(anchor)
		if start == anchor && !v.includeAnchor {
			start = t.successorOf(start)
		}
	case v.hasLo:
		bits, err := t.keyBits(v.lo)
		if err != nil {
			return noChild
		}
		floor, ceil, exact := t.locate(bits)
		if exact {
			if v.loInclusive {
				start = floor
			} else {
				start = t.successorOf(floor)
			}
		} else {
			start = ceil
		}
	default:
		start = t.firstKeyBearing(rootID)
	}
	if start == noChild {
		return noChild
	}
	if !v.keyInBounds(t.keyOf(start)) {
		return noChild
	}
	return start
}

// boundEnd returns the largest in-range node, or noChild.
func (v *View[K, V]) boundEnd() nodeID {
	t := v.t
	var end nodeID
	switch {
	case v.hasPrefix:
		anchor, ok := t.descend(v.prefixBits)
		if !ok {
			return noChild
		}
		end = t.lastKeyBearing(anchor)
		if end == anchor && !v.includeAnchor {
			end = t.predecessorOf(end)
		}
	case v.hasHi:
		bits, err := t.keyBits(v.hi)
		if err != nil {
			return noChild
		}
		floor, ceil, exact := t.locate(bits)
		if exact {
			if v.hiInclusive {
				end = ceil
			} else {
				end = t.predecessorOf(ceil)
			}
		} else {
			end = floor
		}
	default:
		end = t.lastKeyBearing(rootID)
	}
	if end == noChild {
		return noChild
	}
	if !v.keyInBounds(t.keyOf(end)) {
		return noChild
	}
	return end
}

// firstID/lastID account for the descending flag: "first" is always the
// start of this view's iteration order.
func (v *View[K, V]) firstID() nodeID {
	if v.descending {
		return v.boundEnd()
	}
	return v.boundStart()
}

func (v *View[K, V]) lastID() nodeID {
	if v.descending {
		return v.boundStart()
	}
	return v.boundEnd()
}

func (v *View[K, V]) stepForward(id nodeID) nodeID {
	if v.descending {
		return v.t.predecessorOf(id)
	}
	return v.t.successorOf(id)
}

func (v *View[K, V]) stepBackward(id nodeID) nodeID {
	if v.descending {
		return v.t.successorOf(id)
	}
	return v.t.predecessorOf(id)
}

// advance moves one step forward from a known in-range node, stopping (and
// reporting noChild) as soon as the next node falls outside the view's
// bounds. Safe as a single check, not a scan: bounds are monotone along the
// iteration order, so once a step leaves range nothing further re-enters it.
func (v *View[K, V]) advance(from nodeID) nodeID {
	next := v.stepForward(from)
	if next == noChild {
		return noChild
	}
	if !v.keyInBounds(v.t.keyOf(next)) {
		return noChild
	}
	return next
}

// Size counts the entries currently in range. Like java.util.TreeMap's
// sub-maps, this is O(n) over the view, not cached.
func (v *View[K, V]) Size() int {
	n := 0
	for id := v.firstID(); id != noChild; id = v.advance(id) {
		n++
	}
	return n
}

func (v *View[K, V]) IsEmpty() bool { return v.firstID() == noChild }

// Contains reports whether key is present in the trie and within bounds.
func (v *View[K, V]) Contains(key K) (bool, error) {
	if !v.keyInBounds(key) {
		return false, nil
	}
	return v.t.Contains(key)
}

// Get returns the value for key if it is present and within bounds.
func (v *View[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if !v.keyInBounds(key) {
		return zero, false, nil
	}
	return v.t.Get(key)
}

// Put stores value at key if key is within bounds, else KindOutOfRange.
func (v *View[K, V]) Put(key K, value V) (V, bool, error) {
	var zero V
	if !v.keyInBounds(key) {
		return zero, false, errOutOfRange("key is outside this view's bounds")
	}
	return v.t.Put(key, value)
}

// Remove deletes key if it is within bounds, else KindOutOfRange.
func (v *View[K, V]) Remove(key K) (V, bool, error) {
	var zero V
	if !v.keyInBounds(key) {
		return zero, false, errOutOfRange("key is outside this view's bounds")
	}
	return v.t.Remove(key)
}

func (v *View[K, V]) FirstEntry() (Entry[K, V], error) {
	id := v.firstID()
	if id == noChild {
		return Entry[K, V]{}, errNotFound("FirstEntry on empty view")
	}
	return v.t.entryAt(id), nil
}

func (v *View[K, V]) LastEntry() (Entry[K, V], error) {
	id := v.lastID()
	if id == noChild {
		return Entry[K, V]{}, errNotFound("LastEntry on empty view")
	}
	return v.t.entryAt(id), nil
}

// Keys, Values and Entries return the live collection facades over this
// view (spec.md §4.5's three view families).
func (v *View[K, V]) Keys() *KeySet[K, V]            { return &KeySet[K, V]{v: v} }
func (v *View[K, V]) Values() *ValueCollection[K, V] { return &ValueCollection[K, V]{v: v} }
func (v *View[K, V]) Entries() *EntrySet[K, V]       { return &EntrySet[K, V]{v: v} }

// KeySet is the live key-set facade of a View.
type KeySet[K any, V comparable] struct{ v *View[K, V] }

func (s *KeySet[K, V]) Size() int            { return s.v.Size() }
func (s *KeySet[K, V]) IsEmpty() bool        { return s.v.IsEmpty() }
func (s *KeySet[K, V]) Contains(k K) (bool, error) { return s.v.Contains(k) }
func (s *KeySet[K, V]) Remove(k K) (bool, error) {
	_, ok, err := s.v.Remove(k)
	return ok, err
}
func (s *KeySet[K, V]) Iterator() *Iterator[K, V] { return newIterator(s.v) }

// Snapshot eagerly materializes the current keys into a Set3, a detached
// copy the caller owns outright (mirrors the teacher's GetAllValues/
// GetValuesFor returning a cloned *Set3 rather than a live structure).
func (s *KeySet[K, V]) Snapshot() *set3.Set3[any] {
	out := set3.EmptyWithCapacity[any](0)
	it := s.Iterator()
	for it.Next() {
		k, _ := it.Key()
		out.Add(k)
	}
	return out
}

// ValueCollection is the live value-collection facade of a View.
type ValueCollection[K any, V comparable] struct{ v *View[K, V] }

func (c *ValueCollection[K, V]) Size() int     { return c.v.Size() }
func (c *ValueCollection[K, V]) IsEmpty() bool { return c.v.IsEmpty() }

func (c *ValueCollection[K, V]) Iterator() *Iterator[K, V] { return newIterator(c.v) }

// Snapshot eagerly materializes the current values into a Set3.
func (c *ValueCollection[K, V]) Snapshot() *set3.Set3[V] {
	out := set3.EmptyWithCapacity[V](0)
	it := c.Iterator()
	for it.Next() {
		val, _ := it.Value()
		out.Add(val)
	}
	return out
}

// EntrySet is the live entry-set facade of a View.
type EntrySet[K any, V comparable] struct{ v *View[K, V] }

func (s *EntrySet[K, V]) Size() int     { return s.v.Size() }
func (s *EntrySet[K, V]) IsEmpty() bool { return s.v.IsEmpty() }

func (s *EntrySet[K, V]) Iterator() *Iterator[K, V] { return newIterator(s.v) }
