package trie

// iterState is the fail-fast iterator's state machine (spec.md §4.7): a
// fresh iterator has not yet produced an element; each Next moves it to
// Advanced; Remove moves an Advanced iterator to Removed; running off the
// end moves it to Exhausted; observing a foreign structural change moves it
// to Poisoned, from which it never recovers.
type iterState int

const (
	stateFresh iterState = iota
	stateAdvanced
	stateRemoved
	stateExhausted
	statePoisoned
)

// Iterator walks a View in its configured direction, failing fast on any
// structural modification (Put of a new key, Remove, Clear) made through a
// path other than the iterator's own Remove.
type Iterator[K any, V comparable] struct {
	v        *View[K, V]
	state    iterState
	modCount uint64
	cur      nodeID
	err      error
}

func newIterator[K any, V comparable](v *View[K, V]) *Iterator[K, V] {
	return &Iterator[K, V]{v: v, state: stateFresh, modCount: v.t.modCount, cur: noChild}
}

// Next advances the iterator and reports whether a new element is
// available. Once it returns false the iterator is either Exhausted (call
// Err to confirm nil) or Poisoned (Err returns KindConcurrentModification).
func (it *Iterator[K, V]) Next() bool {
	switch it.state {
	case statePoisoned, stateExhausted:
		return false
	}
	if it.v.t.modCount != it.modCount {
		it.state = statePoisoned
		it.err = errConcurrentMod("trie was modified during iteration")
		return false
	}
	var next nodeID
	switch it.state {
	case stateFresh:
		next = it.v.firstID()
	case stateRemoved:
		next = it.cur // Remove already stepped to the next in-range node
	default:
		next = it.v.advance(it.cur)
	}
	if next == noChild {
		it.state = stateExhausted
		return false
	}
	it.cur = next
	it.state = stateAdvanced
	return true
}

// Err returns the error that ended iteration, or nil if it ended because
// the view was exhausted.
func (it *Iterator[K, V]) Err() error { return it.err }

func (it *Iterator[K, V]) requireAdvanced() error {
	if it.state != stateAdvanced {
		return errInvalidArgument("iterator is not positioned on an element")
	}
	return nil
}

// Key returns the key at the iterator's current position.
func (it *Iterator[K, V]) Key() (K, error) {
	var zero K
	if err := it.requireAdvanced(); err != nil {
		return zero, err
	}
	return it.v.t.keyOf(it.cur), nil
}

// Value returns the value at the iterator's current position.
func (it *Iterator[K, V]) Value() (V, error) {
	var zero V
	if err := it.requireAdvanced(); err != nil {
		return zero, err
	}
	return it.v.t.at(it.cur).value, nil
}

// Entry returns the (key, value) pair at the iterator's current position.
func (it *Iterator[K, V]) Entry() (Entry[K, V], error) {
	if err := it.requireAdvanced(); err != nil {
		return Entry[K, V]{}, err
	}
	return it.v.t.entryAt(it.cur), nil
}

// Remove deletes the entry the iterator is currently positioned on. It may
// be called at most once per Next, matching java.util.Iterator's contract.
// The removal itself does not poison this iterator: its own modCount
// snapshot advances to account for it, so subsequent Next calls proceed
// normally. Any other mutation interleaved between Remove and the next Next
// still poisons, since it changes the real modCount out from under the
// iterator's updated snapshot.
func (it *Iterator[K, V]) Remove() error {
	if err := it.requireAdvanced(); err != nil {
		return err
	}
	if it.v.t.modCount != it.modCount {
		it.state = statePoisoned
		it.err = errConcurrentMod("trie was modified during iteration")
		return it.err
	}
	key := it.v.t.keyOf(it.cur)
	pendingNext := it.v.advance(it.cur)
	if _, _, err := it.v.t.Remove(key); err != nil {
		return err
	}
	it.modCount = it.v.t.modCount
	it.cur = pendingNext
	it.state = stateRemoved
	return nil
}
