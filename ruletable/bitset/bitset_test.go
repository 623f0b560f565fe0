package bitset_test

import (
	"testing"

	"github.com/jkuba/overlapwfc/ruletable/bitset"
)

func TestSetClearTest(t *testing.T) {
	s := bitset.New(70) // spans two words
	if !s.IsZero() {
		t.Fatal("expected fresh set to be zero")
	}
	s.Set(0)
	s.Set(63)
	s.Set(64)
	s.Set(69)
	for _, i := range []int{0, 63, 64, 69} {
		if !s.Test(i) {
			t.Errorf("expected bit %d set", i)
		}
	}
	if s.OnesCount() != 4 {
		t.Errorf("expected 4 bits set, got %d", s.OnesCount())
	}
	s.Clear(63)
	if s.Test(63) {
		t.Error("expected bit 63 cleared")
	}
	if s.OnesCount() != 3 {
		t.Errorf("expected 3 bits set after clear, got %d", s.OnesCount())
	}
}

func TestSetAllMasksTail(t *testing.T) {
	s := bitset.New(5)
	s.SetAll()
	if s.OnesCount() != 5 {
		t.Errorf("expected 5 bits set, got %d", s.OnesCount())
	}
}

func TestAndOrAndNot(t *testing.T) {
	a := bitset.New(8)
	b := bitset.New(8)
	a.Set(1)
	a.Set(2)
	b.Set(2)
	b.Set(3)

	union := a.Clone()
	union.Or(b)
	if union.OnesCount() != 3 {
		t.Errorf("expected union of 3 bits, got %d", union.OnesCount())
	}

	inter := a.Clone()
	inter.And(b)
	if inter.OnesCount() != 1 || !inter.Test(2) {
		t.Errorf("expected intersection {2}, got count=%d", inter.OnesCount())
	}

	diff := a.Clone()
	diff.AndNot(b)
	if diff.OnesCount() != 1 || !diff.Test(1) {
		t.Errorf("expected difference {1}, got count=%d", diff.OnesCount())
	}
}

func TestSingletonIndex(t *testing.T) {
	s := bitset.New(10)
	if _, ok := s.SingletonIndex(); ok {
		t.Fatal("expected no singleton on empty set")
	}
	s.Set(4)
	idx, ok := s.SingletonIndex()
	if !ok || idx != 4 {
		t.Fatalf("expected singleton 4, got %d,%v", idx, ok)
	}
	s.Set(5)
	if _, ok := s.SingletonIndex(); ok {
		t.Fatal("expected no singleton with two bits set")
	}
}

func TestIterateOrder(t *testing.T) {
	s := bitset.New(130)
	want := []int{0, 5, 64, 65, 129}
	for _, i := range want {
		s.Set(i)
	}
	var got []int
	s.Iterate(func(i int) { got = append(got, i) })
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEqualAndClone(t *testing.T) {
	a := bitset.New(16)
	a.Set(3)
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("expected clone to equal original")
	}
	b.Set(4)
	if a.Equal(b) {
		t.Fatal("expected mutation on clone not to affect original")
	}
}
