package seeded

import (
	"reflect"
	"testing"
)

func TestValue_Deterministic(t *testing.T) {
	for seed := 0; seed < 5; seed++ {
		for n := 0; n < 100; n++ {
			a := Value(seed, n)
			b := Value(seed, n)
			if a != b {
				t.Fatalf("Value(%d, %d) not deterministic: %v != %v", seed, n, a, b)
			}
		}
	}
}

func TestValue_Range(t *testing.T) {
	for n := 0; n < 1000; n++ {
		v := Value(42, n)
		if v < 0 || v >= 1 {
			t.Errorf("Value(42, %d) = %v, want [0,1)", n, v)
		}
	}
}

func TestValue_NoCallOrderDependence(t *testing.T) {
	forward := make([]float64, 10)
	for n := 0; n < 10; n++ {
		forward[n] = Value(7, n)
	}
	backward := make([]float64, 10)
	for n := 9; n >= 0; n-- {
		backward[n] = Value(7, n)
	}
	if !reflect.DeepEqual(forward, backward) {
		t.Error("values depend on call order")
	}
}

func TestValue_DifferentOffsetsDiffer(t *testing.T) {
	seen := make(map[float64]bool)
	dupes := 0
	for n := 0; n < 100; n++ {
		v := Value(0, n)
		if seen[v] {
			dupes++
		}
		seen[v] = true
	}
	if dupes > 0 {
		t.Errorf("got %d duplicate values across 100 offsets", dupes)
	}
}

func TestBetween(t *testing.T) {
	for n := 0; n < 100; n++ {
		v := Between(3, n, 30, 110)
		if v < 30 || v >= 110 {
			t.Errorf("Between(3, %d, 30, 110) = %v, out of range", n, v)
		}
	}
}

func TestIndex_InBounds(t *testing.T) {
	for n := 0; n < 200; n++ {
		i := Index(9, n, 7)
		if i < 0 || i >= 7 {
			t.Errorf("Index(9, %d, 7) = %d, out of bounds", n, i)
		}
	}
}

func TestIndex_EmptyList(t *testing.T) {
	if Index(1, 2, 0) != 0 {
		t.Error("Index with zero length should return 0")
	}
}

func TestShuffleStrings_Deterministic(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f"}
	first := ShuffleStrings(items, 123)
	second := ShuffleStrings(items, 123)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different shuffles: %v vs %v", first, second)
	}
}

func TestShuffleStrings_Permutation(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	shuffled := ShuffleStrings(items, 99)
	if len(shuffled) != len(items) {
		t.Fatalf("shuffle changed length: %d", len(shuffled))
	}
	counts := make(map[string]int)
	for _, s := range shuffled {
		counts[s]++
	}
	for _, s := range items {
		if counts[s] != 1 {
			t.Errorf("element %q appears %d times", s, counts[s])
		}
	}
}

func TestShuffleStrings_DoesNotMutateInput(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	original := []string{"a", "b", "c", "d"}
	ShuffleStrings(items, 55)
	if !reflect.DeepEqual(items, original) {
		t.Error("input slice was modified")
	}
}
