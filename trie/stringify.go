package trie

import (
	"fmt"
	"io"
	"strings"
)

// String returns a hierarchical tree diagram of the trie's keys, ascending
// top to bottom. Routing-only nodes (no value, present only to connect
// descendants) are rendered as a bare dot.
func (t *Trie[K, V]) String() string {
	var b strings.Builder
	if err := t.Fprint(&b); err != nil {
		panic(err)
	}
	return b.String()
}

// Fprint writes the same diagram as String to w.
//
//	▼
//	├─ 0.0.0.0/1 (a)
//	│  └─ ·
//	│     └─ 0.0.0.0/3 (b)
//	└─ 128.0.0.0/1 (c)
func (t *Trie[K, V]) Fprint(w io.Writer) error {
	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}
	return t.fprintChildren(w, rootID, "")
}

func (t *Trie[K, V]) fprintChildren(w io.Writer, id nodeID, pad string) error {
	n := t.at(id)
	var kids []nodeID
	if n.left != noChild {
		kids = append(kids, n.left)
	}
	if n.right != noChild {
		kids = append(kids, n.right)
	}
	glyph, spacer := "├─ ", "│  "
	for i, kid := range kids {
		if i == len(kids)-1 {
			glyph, spacer = "└─ ", "   "
		}
		kn := t.at(kid)
		var err error
		if kn.hasValue {
			_, err = fmt.Fprintf(w, "%s%s%v (%v)\n", pad, glyph, t.keyOf(kid), kn.value)
		} else {
			_, err = fmt.Fprintf(w, "%s%s·\n", pad, glyph)
		}
		if err != nil {
			return err
		}
		if err := t.fprintChildren(w, kid, pad+spacer); err != nil {
			return err
		}
	}
	return nil
}
