package strtrie

import (
	"errors"
	"testing"

	"github.com/veqryn/cidr-ip-trie-sub001/trie"
)

func put(t *testing.T, tr *StringTrie[string], keys []string) {
	t.Helper()
	for _, k := range keys {
		if _, _, err := tr.Put(k, k); err != nil {
			t.Fatalf("Put(%q): %v", k, err)
		}
	}
}

// S3 — String prefix map.
func TestPrefixedByMap(t *testing.T) {
	tr := New[string](0)
	put(t, tr, []string{
		"Albert", "Xavier", "XyZ", "Anna", "Alien", "Alberto", "Alberts",
		"Allie", "Alliese", "Alabama", "Banane", "Blabla", "Amber", "Ammun",
		"Akka", "Akko", "Albertoo", "Amma",
	})

	view, err := tr.PrefixedByMap("Al", true)
	if err != nil {
		t.Fatal(err)
	}
	if got := view.Size(); got != 8 {
		t.Fatalf("Size() = %d, want 8", got)
	}

	first, err := view.FirstEntry()
	if err != nil || first.Key != "Alabama" {
		t.Fatalf("FirstEntry() = %+v, %v, want Alabama", first, err)
	}
	last, err := view.LastEntry()
	if err != nil || last.Key != "Alliese" {
		t.Fatalf("LastEntry() = %+v, %v, want Alliese", last, err)
	}

	want := []string{"Alabama", "Albert", "Alberto", "Albertoo", "Alberts", "Alien", "Allie", "Alliese"}
	var got []string
	for it := view.Keys().Iterator(); it.Next(); {
		k, _ := it.Key()
		got = append(got, k)
	}
	if len(got) != len(want) {
		t.Fatalf("iteration order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}

	if _, _, err := view.Put("Albertz", "Albertz"); err != nil {
		t.Fatalf("Put through view: %v", err)
	}
	if v, ok, err := tr.Get("Albertz"); err != nil || !ok || v != "Albertz" {
		t.Fatalf("trie.Get(Albertz) = %v, %v, %v", v, ok, err)
	}
	sizeAfterInsert := view.Size()

	if _, ok, err := view.Remove("Albertz"); err != nil || !ok {
		t.Fatalf("Remove through view: %v, %v", ok, err)
	}
	if view.Size() != sizeAfterInsert-1 {
		t.Fatalf("Size() after remove = %d, want %d", view.Size(), sizeAfterInsert-1)
	}

	if _, _, err := view.Put("Banane2", "x"); !errors.Is(err, trie.ErrOutOfRange) {
		t.Fatalf("Put out of bounds: got err %v, want ErrOutOfRange", err)
	}
}

// S4 — Prefix of values.
func TestPrefixQueries(t *testing.T) {
	tr := New[string](0)
	put(t, tr, []string{
		"and", "ant", "antacid", "ante", "antecede", "anteceded",
		"antecededs", "antecededsic", "antecedent", "antewest", "awe",
	})

	if v, ok, err := tr.LongestPrefixOfValue("antecede", true); err != nil || !ok || v != "antecede" {
		t.Fatalf("LongestPrefixOfValue(antecede, true) = %v, %v, %v", v, ok, err)
	}
	if v, ok, err := tr.LongestPrefixOfValue("antecede", false); err != nil || !ok || v != "ante" {
		t.Fatalf("LongestPrefixOfValue(antecede, false) = %v, %v, %v", v, ok, err)
	}
	if v, ok, err := tr.ShortestPrefixOfValue("antecede", true); err != nil || !ok || v != "ant" {
		t.Fatalf("ShortestPrefixOfValue(antecede, true) = %v, %v, %v", v, ok, err)
	}

	vals, err := tr.PrefixOfValues("antecede", true)
	if err != nil {
		t.Fatal(err)
	}
	wantPrefixOf := []string{"ant", "ante", "antecede"}
	if len(vals) != len(wantPrefixOf) {
		t.Fatalf("PrefixOfValues = %v, want %v", vals, wantPrefixOf)
	}
	for i := range wantPrefixOf {
		if vals[i] != wantPrefixOf[i] {
			t.Errorf("position %d: got %q, want %q", i, vals[i], wantPrefixOf[i])
		}
	}

	prefixed, err := tr.PrefixedByValues("antecede", false)
	if err != nil {
		t.Fatal(err)
	}
	wantPrefixedBy := []string{"anteceded", "antecededs", "antecededsic", "antecedent"}
	if len(prefixed) != len(wantPrefixedBy) {
		t.Fatalf("PrefixedByValues = %v, want %v", prefixed, wantPrefixedBy)
	}
	for i := range wantPrefixedBy {
		if prefixed[i] != wantPrefixedBy[i] {
			t.Errorf("position %d: got %q, want %q", i, prefixed[i], wantPrefixedBy[i])
		}
	}
}

// S5 — Empty-prefix rejection.
func TestEmptyPrefixRejection(t *testing.T) {
	tr := New[string](0)
	if _, err := tr.PrefixedByMap("", true); !errors.Is(err, trie.ErrInvalidArgument) {
		t.Fatalf("PrefixedByMap(\"\", true) error = %v, want ErrInvalidArgument", err)
	}
}

// S6 — Fail-fast.
func TestFailFast(t *testing.T) {
	tr := New[string](0)
	put(t, tr, []string{"Akka", "Akko"})

	view, err := tr.PrefixedByMap("Ak", true)
	if err != nil {
		t.Fatal(err)
	}
	it := view.Keys().Iterator()
	if !it.Next() {
		t.Fatal("expected at least one element")
	}

	if _, _, err := tr.Put("Amber", "Amber"); err != nil {
		t.Fatal(err)
	}

	if it.Next() {
		t.Fatal("expected Next to fail after concurrent structural modification")
	}
	if !errors.Is(it.Err(), trie.ErrConcurrentModification) {
		t.Fatalf("Err() = %v, want ErrConcurrentModification", it.Err())
	}
}
