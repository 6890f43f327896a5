package trie

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Encoder writes a single value of type T to w.
type Encoder[T any] func(w io.Writer, v T) error

// Decoder reads a single value of type T from r.
type Decoder[T any] func(r io.Reader) (T, error)

// Serialize writes t to w per spec.md §4.6. tag identifies the codec/key
// domain for Deserialize to check against; it is opaque to this package.
// keyEnc is required only when t was constructed with WithWriteKeys (the
// flat form serializes keys directly rather than rebuilding them from tree
// position).
func Serialize[K any, V comparable](t *Trie[K, V], w io.Writer, tag string, keyEnc Encoder[K], valEnc Encoder[V]) error {
	if err := writeTag(w, tag); err != nil {
		return err
	}
	if err := writeBool(w, t.writeKeys); err != nil {
		return err
	}
	if t.writeKeys {
		if keyEnc == nil {
			return errInvalidArgument("write_keys mode requires a key encoder")
		}
		return serializeFlat(t, w, keyEnc, valEnc)
	}
	return serializeTree(t, w, valEnc, rootID)
}

// serializeTree emits the recursive (has_value,has_left,has_right) tag-byte
// encoding; the root is always emitted, per spec.md §4.6.
func serializeTree[K any, V comparable](t *Trie[K, V], w io.Writer, valEnc Encoder[V], id nodeID) error {
	n := t.at(id)
	var tagByte byte
	if n.hasValue {
		tagByte |= 1
	}
	if n.left != noChild {
		tagByte |= 2
	}
	if n.right != noChild {
		tagByte |= 4
	}
	if _, err := w.Write([]byte{tagByte}); err != nil {
		return err
	}
	if n.hasValue {
		if err := valEnc(w, n.value); err != nil {
			return err
		}
	}
	if n.left != noChild {
		if err := serializeTree(t, w, valEnc, n.left); err != nil {
			return err
		}
	}
	if n.right != noChild {
		if err := serializeTree(t, w, valEnc, n.right); err != nil {
			return err
		}
	}
	return nil
}

// serializeFlat emits the count-prefixed, in-order (key, value) sequence.
func serializeFlat[K any, V comparable](t *Trie[K, V], w io.Writer, keyEnc Encoder[K], valEnc Encoder[V]) error {
	if err := binary.Write(w, binary.BigEndian, uint64(t.size)); err != nil {
		return err
	}
	for id := t.firstKeyBearing(rootID); id != noChild; id = t.successorOf(id) {
		if err := keyEnc(w, t.keyOf(id)); err != nil {
			return err
		}
		if err := valEnc(w, t.at(id).value); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize rebuilds a Trie from a stream written by Serialize. tag must
// match the tag Serialize was called with. codec and opts configure the new
// trie exactly as New does.
func Deserialize[K any, V comparable](r io.Reader, codec Codec[K], tag string, keyDec Decoder[K], valDec Decoder[V], opts ...Option) (*Trie[K, V], error) {
	gotTag, err := readTag(r)
	if err != nil {
		return nil, err
	}
	if gotTag != tag {
		return nil, errInvalidArgument(fmt.Sprintf("codec tag mismatch: want %q, got %q", tag, gotTag))
	}
	writeKeys, err := readBool(r)
	if err != nil {
		return nil, err
	}
	t := New[K, V](codec, opts...)
	if writeKeys {
		if keyDec == nil {
			return nil, errInvalidArgument("write_keys mode requires a key decoder")
		}
		if err := deserializeFlat(t, r, keyDec, valDec); err != nil {
			return nil, err
		}
	} else if err := deserializeTree(t, r, valDec, rootID); err != nil {
		return nil, err
	}
	return t, nil
}

func deserializeTree[K any, V comparable](t *Trie[K, V], r io.Reader, valDec Decoder[V], id nodeID) error {
	var tagByte [1]byte
	if _, err := io.ReadFull(r, tagByte[:]); err != nil {
		return err
	}
	hasValue := tagByte[0]&1 != 0
	hasLeft := tagByte[0]&2 != 0
	hasRight := tagByte[0]&4 != 0
	if hasValue {
		v, err := valDec(r)
		if err != nil {
			return err
		}
		t.setValue(id, v)
		t.size++
	}
	if hasLeft {
		child := t.allocNode()
		t.attachChild(id, 0, child)
		if err := deserializeTree(t, r, valDec, child); err != nil {
			return err
		}
	}
	if hasRight {
		child := t.allocNode()
		t.attachChild(id, 1, child)
		if err := deserializeTree(t, r, valDec, child); err != nil {
			return err
		}
	}
	return nil
}

func deserializeFlat[K any, V comparable](t *Trie[K, V], r io.Reader, keyDec Decoder[K], valDec Decoder[V]) error {
	var countBuf [8]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return err
	}
	count := binary.BigEndian.Uint64(countBuf[:])
	for i := uint64(0); i < count; i++ {
		k, err := keyDec(r)
		if err != nil {
			return err
		}
		v, err := valDec(r)
		if err != nil {
			return err
		}
		if _, _, err := t.Put(k, v); err != nil {
			return err
		}
	}
	return nil
}

func writeTag(w io.Writer, tag string) error {
	b := []byte(tag)
	if err := binary.Write(w, binary.BigEndian, uint32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func readTag(r io.Reader) (string, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}

func writeBool(w io.Writer, b bool) error {
	v := byte(0)
	if b {
		v = 1
	}
	_, err := w.Write([]byte{v})
	return err
}

func readBool(r io.Reader) (bool, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, err
	}
	return b[0] != 0, nil
}
