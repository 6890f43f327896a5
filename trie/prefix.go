package trie

// prefixWalk returns, in increasing-depth order, the ids of every
// key-bearing node encountered while descending bits from the root: every
// valued strict ancestor, plus (when includeSelf) the terminal node itself
// if it is valued. Descent stops early if the path runs out before
// reaching len(bits).
func (t *Trie[K, V]) prefixWalk(bits []uint8, includeSelf bool) []nodeID {
	var valued []nodeID
	cur := rootID
	for _, bit := range bits {
		n := t.at(cur)
		if n.hasValue {
			valued = append(valued, cur)
		}
		var next nodeID
		if bit == 0 {
			next = n.left
		} else {
			next = n.right
		}
		if next == noChild {
			return valued
		}
		cur = next
	}
	if n := t.at(cur); n.hasValue && includeSelf {
		valued = append(valued, cur)
	}
	return valued
}

// LongestPrefixOfEntry finds the deepest stored key that is a bit-prefix of
// key (or key itself, when includeSelf and key is present).
func (t *Trie[K, V]) LongestPrefixOfEntry(key K, includeSelf bool) (Entry[K, V], bool, error) {
	bits, err := t.keyBits(key)
	if err != nil {
		return Entry[K, V]{}, false, err
	}
	walk := t.prefixWalk(bits, includeSelf)
	if len(walk) == 0 {
		return Entry[K, V]{}, false, nil
	}
	return t.entryAt(walk[len(walk)-1]), true, nil
}

// LongestPrefixOfValue is LongestPrefixOfEntry, returning just the value.
func (t *Trie[K, V]) LongestPrefixOfValue(key K, includeSelf bool) (V, bool, error) {
	e, ok, err := t.LongestPrefixOfEntry(key, includeSelf)
	return e.Value, ok, err
}

// LongestPrefixOf is LongestPrefixOfEntry, returning just the key.
func (t *Trie[K, V]) LongestPrefixOf(key K, includeSelf bool) (K, bool, error) {
	e, ok, err := t.LongestPrefixOfEntry(key, includeSelf)
	return e.Key, ok, err
}

// ShortestPrefixOfEntry finds the shallowest stored key (after the root,
// which never holds a value) that is a bit-prefix of key.
func (t *Trie[K, V]) ShortestPrefixOfEntry(key K, includeSelf bool) (Entry[K, V], bool, error) {
	bits, err := t.keyBits(key)
	if err != nil {
		return Entry[K, V]{}, false, err
	}
	walk := t.prefixWalk(bits, includeSelf)
	if len(walk) == 0 {
		return Entry[K, V]{}, false, nil
	}
	return t.entryAt(walk[0]), true, nil
}

// ShortestPrefixOfValue is ShortestPrefixOfEntry, returning just the value.
func (t *Trie[K, V]) ShortestPrefixOfValue(key K, includeSelf bool) (V, bool, error) {
	e, ok, err := t.ShortestPrefixOfEntry(key, includeSelf)
	return e.Value, ok, err
}

// ShortestPrefixOf is ShortestPrefixOfEntry, returning just the key.
func (t *Trie[K, V]) ShortestPrefixOf(key K, includeSelf bool) (K, bool, error) {
	e, ok, err := t.ShortestPrefixOfEntry(key, includeSelf)
	return e.Key, ok, err
}

// PrefixOfEntries returns every stored (key, value) pair whose key is a
// bit-prefix of key, shallowest first.
func (t *Trie[K, V]) PrefixOfEntries(key K, includeSelf bool) ([]Entry[K, V], error) {
	bits, err := t.keyBits(key)
	if err != nil {
		return nil, err
	}
	walk := t.prefixWalk(bits, includeSelf)
	out := make([]Entry[K, V], len(walk))
	for i, id := range walk {
		out[i] = t.entryAt(id)
	}
	return out, nil
}

// PrefixOfValues is PrefixOfEntries, returning just the values.
func (t *Trie[K, V]) PrefixOfValues(key K, includeSelf bool) ([]V, error) {
	entries, err := t.PrefixOfEntries(key, includeSelf)
	if err != nil {
		return nil, err
	}
	out := make([]V, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out, nil
}

// PrefixOf is PrefixOfEntries, returning just the keys.
func (t *Trie[K, V]) PrefixOf(key K, includeSelf bool) ([]K, error) {
	entries, err := t.PrefixOfEntries(key, includeSelf)
	if err != nil {
		return nil, err
	}
	out := make([]K, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out, nil
}

// PrefixedByMap returns the live view of every stored entry whose key
// starts with key's bit sequence (key itself included iff includeSelf).
// An empty key raises InvalidArgument (spec.md S5).
func (t *Trie[K, V]) PrefixedByMap(key K, includeSelf bool) (*View[K, V], error) {
	bits, err := t.keyBits(key)
	if err != nil {
		return nil, err
	}
	return prefixedByView(t, bits, includeSelf), nil
}

// PrefixedByValues snapshots the values of PrefixedByMap's current range.
func (t *Trie[K, V]) PrefixedByValues(key K, includeSelf bool) ([]V, error) {
	v, err := t.PrefixedByMap(key, includeSelf)
	if err != nil {
		return nil, err
	}
	var out []V
	for id := v.firstID(); id != noChild; id = v.advance(id) {
		out = append(out, t.at(id).value)
	}
	return out, nil
}

// PrefixedBy snapshots the keys of PrefixedByMap's current range.
func (t *Trie[K, V]) PrefixedBy(key K, includeSelf bool) ([]K, error) {
	v, err := t.PrefixedByMap(key, includeSelf)
	if err != nil {
		return nil, err
	}
	var out []K
	for id := v.firstID(); id != noChild; id = v.advance(id) {
		out = append(out, t.keyOf(id))
	}
	return out, nil
}
