package rng

import "testing"

func TestFloat64_Deterministic(t *testing.T) {
	a := New()
	b := New()
	for i := 0; i < 10; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("draw %d diverged: %v != %v", i, va, vb)
		}
	}
}

func TestFloat64_Range(t *testing.T) {
	r := New()
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of range: %v", i, v)
		}
	}
}

func TestFloat64_FirstValue(t *testing.T) {
	r := New()
	got := r.Float64()
	// s = (42 * 16807) mod 2147483647 = 705894
	want := float64(705894-1) / float64(2147483647-1)
	if got != want {
		t.Errorf("first draw = %v, want %v", got, want)
	}
}

func TestReset(t *testing.T) {
	r := New()
	first := r.Float64()
	r.Float64()
	r.Float64()
	r.Reset()
	again := r.Float64()
	if first != again {
		t.Errorf("after Reset, first draw = %v, want %v", again, first)
	}
}

func TestJitterPoint_DrawsXThenY(t *testing.T) {
	a := New()
	x, y := JitterPoint(a, 10, 20, 2)

	b := New()
	wantX := Jitter(b, 10, 2)
	wantY := Jitter(b, 20, 2)

	if x != wantX || y != wantY {
		t.Errorf("JitterPoint = (%v,%v), want (%v,%v)", x, y, wantX, wantY)
	}
}

func TestJitter_Bounded(t *testing.T) {
	r := New()
	for i := 0; i < 100; i++ {
		v := Jitter(r, 0, 3)
		if v < -3 || v > 3 {
			t.Fatalf("jitter %v exceeds amount 3", v)
		}
	}
}
