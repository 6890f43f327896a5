package trie

// FirstKey returns the smallest key in the trie. Per spec.md §9's open
// question, an empty trie raises KindNotFound rather than returning a
// zero-valued key.
func (t *Trie[K, V]) FirstKey() (K, error) {
	var zero K
	id := t.firstKeyBearing(rootID)
	if id == noChild {
		return zero, errNotFound("FirstKey on empty trie")
	}
	return t.keyOf(id), nil
}

// LastKey is the mirror of FirstKey.
func (t *Trie[K, V]) LastKey() (K, error) {
	var zero K
	id := t.lastKeyBearing(rootID)
	if id == noChild {
		return zero, errNotFound("LastKey on empty trie")
	}
	return t.keyOf(id), nil
}

// FirstEntry and LastEntry return the smallest/largest (key, value) pair.
func (t *Trie[K, V]) FirstEntry() (Entry[K, V], error) {
	id := t.firstKeyBearing(rootID)
	if id == noChild {
		return Entry[K, V]{}, errNotFound("FirstEntry on empty trie")
	}
	return t.entryAt(id), nil
}

func (t *Trie[K, V]) LastEntry() (Entry[K, V], error) {
	id := t.lastKeyBearing(rootID)
	if id == noChild {
		return Entry[K, V]{}, errNotFound("LastEntry on empty trie")
	}
	return t.entryAt(id), nil
}

func (t *Trie[K, V]) entryAt(id nodeID) Entry[K, V] {
	n := t.at(id)
	return Entry[K, V]{Key: t.keyOf(id), Value: n.value}
}

// Floor returns the largest key <= key, if any.
func (t *Trie[K, V]) Floor(key K) (Entry[K, V], bool, error) {
	return t.nav(key, func(bits []uint8) nodeID {
		floor, _, _ := t.locate(bits)
		return floor
	})
}

// Ceiling returns the smallest key >= key, if any.
func (t *Trie[K, V]) Ceiling(key K) (Entry[K, V], bool, error) {
	return t.nav(key, func(bits []uint8) nodeID {
		_, ceil, _ := t.locate(bits)
		return ceil
	})
}

// Lower returns the largest key strictly less than key, if any.
func (t *Trie[K, V]) Lower(key K) (Entry[K, V], bool, error) {
	return t.nav(key, func(bits []uint8) nodeID {
		floor, _, exact := t.locate(bits)
		if exact {
			return t.predecessorOf(floor)
		}
		return floor
	})
}

// Higher returns the smallest key strictly greater than key, if any.
func (t *Trie[K, V]) Higher(key K) (Entry[K, V], bool, error) {
	return t.nav(key, func(bits []uint8) nodeID {
		_, ceil, exact := t.locate(bits)
		if exact {
			return t.successorOf(ceil)
		}
		return ceil
	})
}

func (t *Trie[K, V]) nav(key K, pick func(bits []uint8) nodeID) (Entry[K, V], bool, error) {
	bits, err := t.keyBits(key)
	if err != nil {
		return Entry[K, V]{}, false, err
	}
	id := pick(bits)
	if id == noChild {
		return Entry[K, V]{}, false, nil
	}
	return t.entryAt(id), true, nil
}

// PollFirst removes and returns the smallest entry, if any.
func (t *Trie[K, V]) PollFirst() (Entry[K, V], bool) {
	id := t.firstKeyBearing(rootID)
	if id == noChild {
		return Entry[K, V]{}, false
	}
	e := t.entryAt(id)
	_, _, _ = t.Remove(e.Key)
	return e, true
}

// PollLast removes and returns the largest entry, if any.
func (t *Trie[K, V]) PollLast() (Entry[K, V], bool) {
	id := t.lastKeyBearing(rootID)
	if id == noChild {
		return Entry[K, V]{}, false
	}
	e := t.entryAt(id)
	_, _, _ = t.Remove(e.Key)
	return e, true
}

// HeadMap returns the live view of entries < to (or <= to if inclusive).
func (t *Trie[K, V]) HeadMap(to K, inclusive bool) *View[K, V] {
	return FullView(t).HeadMap(to, inclusive)
}

// TailMap returns the live view of entries > from (or >= from if inclusive).
func (t *Trie[K, V]) TailMap(from K, inclusive bool) *View[K, V] {
	return FullView(t).TailMap(from, inclusive)
}

// SubMap returns the live view of entries between from and to.
func (t *Trie[K, V]) SubMap(from K, fromInclusive bool, to K, toInclusive bool) *View[K, V] {
	return FullView(t).SubMap(from, fromInclusive, to, toInclusive)
}

// DescendingMap returns the live, reverse-ordered view of the whole trie.
func (t *Trie[K, V]) DescendingMap() *View[K, V] {
	return FullView(t).DescendingMap()
}

// Keys, Values and Entries expose the whole trie as live view collections.
func (t *Trie[K, V]) Keys() *KeySet[K, V]            { return FullView(t).Keys() }
func (t *Trie[K, V]) Values() *ValueCollection[K, V] { return FullView(t).Values() }
func (t *Trie[K, V]) Entries() *EntrySet[K, V]       { return FullView(t).Entries() }

// Iterator returns a fail-fast, ascending iterator over the whole trie.
func (t *Trie[K, V]) Iterator() *Iterator[K, V] { return newIterator(FullView(t)) }
