package cidrtrie

import (
	"net/netip"
	"testing"
)

func mustPrefix(t *testing.T, s string) netip.Prefix {
	t.Helper()
	p, err := netip.ParsePrefix(s)
	if err != nil {
		t.Fatalf("ParsePrefix(%q): %v", s, err)
	}
	return p
}

// S1 — CIDR ordering.
func TestCIDROrdering(t *testing.T) {
	ordered := []string{
		"0.0.0.0/8", "0.0.0.0/16", "0.0.0.0/24", "0.0.0.0/30", "0.0.0.0/31",
		"0.0.0.2/32", "127.0.0.0/8", "127.255.0.0/16", "127.255.255.0/24",
		"127.255.255.255/32",
	}
	shuffled := []string{
		"127.255.255.0/24", "0.0.0.0/30", "127.0.0.0/8", "0.0.0.2/32",
		"0.0.0.0/8", "127.255.255.255/32", "0.0.0.0/31", "0.0.0.0/24",
		"127.255.0.0/16", "0.0.0.0/16",
	}

	tr := New[string]()
	for _, s := range shuffled {
		if _, _, err := tr.Put(mustPrefix(t, s), s); err != nil {
			t.Fatalf("Put(%q): %v", s, err)
		}
	}

	var got []string
	for it := tr.Iterator(); it.Next(); {
		v, _ := it.Value()
		got = append(got, v)
	}
	if len(got) != len(ordered) {
		t.Fatalf("got %d entries, want %d", len(got), len(ordered))
	}
	for i := range ordered {
		if got[i] != ordered[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], ordered[i])
		}
	}

	var gotDesc []string
	for it := tr.DescendingMap().Entries().Iterator(); it.Next(); {
		v, _ := it.Value()
		gotDesc = append(gotDesc, v)
	}
	for i := range ordered {
		want := ordered[len(ordered)-1-i]
		if gotDesc[i] != want {
			t.Errorf("descending position %d: got %q, want %q", i, gotDesc[i], want)
		}
	}
}

// S2 — CIDR tree shape (observed through iteration order and Get, since the
// node arena is not part of the public surface).
func TestCIDRTreeShape(t *testing.T) {
	tr := New[string]()
	keys := []string{"0.0.0.0/1", "0.0.0.0/3", "128.0.0.0/1", "224.0.0.0/3"}
	for _, s := range keys {
		if _, _, err := tr.Put(mustPrefix(t, s), s); err != nil {
			t.Fatalf("Put(%q): %v", s, err)
		}
	}

	var got []string
	for it := tr.Iterator(); it.Next(); {
		v, _ := it.Value()
		got = append(got, v)
	}
	want := []string{"0.0.0.0/1", "0.0.0.0/3", "128.0.0.0/1", "224.0.0.0/3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}

	if _, ok, err := tr.Remove(mustPrefix(t, "224.0.0.0/3")); err != nil || !ok {
		t.Fatalf("Remove(224.0.0.0/3) = %v, %v", ok, err)
	}
	if tr.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", tr.Size())
	}
	if ok, _ := tr.Contains(mustPrefix(t, "224.0.0.0/3")); ok {
		t.Fatal("224.0.0.0/3 should be gone after Remove")
	}
	if ok, _ := tr.Contains(mustPrefix(t, "128.0.0.0/1")); !ok {
		t.Fatal("128.0.0.0/1 should survive collapse")
	}
}

func TestSubnetsSupernetsOverlaps(t *testing.T) {
	tr := New[string]()
	for _, s := range []string{"10.0.0.0/8", "10.1.0.0/16", "10.1.1.0/24", "192.168.0.0/16"} {
		if _, _, err := tr.Put(mustPrefix(t, s), s); err != nil {
			t.Fatal(err)
		}
	}

	subnets, err := tr.Subnets(mustPrefix(t, "10.0.0.0/8"), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(subnets) != 3 {
		t.Fatalf("Subnets(10.0.0.0/8) = %v, want 3 entries", subnets)
	}

	supernets, err := tr.Supernets(mustPrefix(t, "10.1.1.0/24"), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(supernets) != 3 {
		t.Fatalf("Supernets(10.1.1.0/24) = %v, want 3 entries", supernets)
	}

	other := New[string]()
	if _, _, err := other.Put(mustPrefix(t, "10.1.1.128/25"), "x"); err != nil {
		t.Fatal(err)
	}
	if !tr.Overlaps(other) {
		t.Fatal("expected overlap between 10.0.0.0/8 family and 10.1.1.128/25")
	}

	disjoint := New[string]()
	if _, _, err := disjoint.Put(mustPrefix(t, "172.16.0.0/12"), "y"); err != nil {
		t.Fatal(err)
	}
	if tr.Overlaps(disjoint) {
		t.Fatal("expected no overlap with 172.16.0.0/12")
	}
}
