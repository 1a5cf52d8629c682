package sieve

import (
	"sync"
	"testing"
)

func testOptions() Options {
	return Options{Limit: 1000, LockGranularity: 16}
}

func TestNew_AllKinds(t *testing.T) {
	for _, k := range Kinds() {
		s, err := New(k, testOptions())
		if err != nil {
			t.Fatalf("New(%v) failed: %v", k, err)
		}
		if s.Kind() != k {
			t.Errorf("New(%v).Kind() = %v", k, s.Kind())
		}
		if s.Len() != 1000 {
			t.Errorf("New(%v).Len() = %d, expected 1000", k, s.Len())
		}
	}
}

func TestNew_UnknownKind(t *testing.T) {
	if _, err := New(Kind(99), testOptions()); err == nil {
		t.Fatal("New with an out-of-range kind should fail")
	}
}

func TestNew_DefaultOptions(t *testing.T) {
	s, err := New(KindUnsafe, Options{Limit: 64})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Len() != 64 {
		t.Errorf("expected len 64, got %d", s.Len())
	}
}

func TestStrategy_MarkAndTest(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s, err := New(k, testOptions())
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			if s.Test(42) {
				t.Fatal("fresh cell observed as composite")
			}
			s.Mark(42)
			if !s.Test(42) {
				t.Fatal("marked cell not observed as composite")
			}
			if s.Test(41) || s.Test(43) {
				t.Fatal("neighboring cells affected by mark")
			}

			// Idempotence: re-marking never un-marks.
			s.Mark(42)
			if !s.Test(42) {
				t.Fatal("cell reverted after redundant mark")
			}
		})
	}
}

func TestStrategy_NoRegression(t *testing.T) {
	// Once Test(i) returns true it must keep returning true for the rest of
	// the run (not asserted for Unsafe, but single-goroutine use is still
	// deterministic).
	for _, k := range Kinds() {
		s, err := New(k, testOptions())
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		for i := int64(0); i < s.Len(); i += 7 {
			s.Mark(i)
		}
		for pass := 0; pass < 3; pass++ {
			for i := int64(0); i < s.Len(); i += 7 {
				if !s.Test(i) {
					t.Fatalf("%v: cell %d regressed on pass %d", k, i, pass)
				}
			}
		}
	}
}

func TestStrategy_ConcurrentMarks(t *testing.T) {
	// All synchronized variants must make every mark visible once the
	// markers are joined, including colliding marks on the same cells.
	for _, k := range []Kind{KindMutex, KindSpinlock, KindAtomic} {
		t.Run(k.String(), func(t *testing.T) {
			s, err := New(k, testOptions())
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			var wg sync.WaitGroup
			for g := 0; g < 8; g++ {
				wg.Add(1)
				go func(step int64) {
					defer wg.Done()
					for i := int64(0); i < s.Len(); i += step {
						if !s.Test(i) {
							s.Mark(i)
						}
					}
				}(int64(2 + g%3))
			}
			wg.Wait()

			for i := int64(0); i < s.Len(); i += 2 {
				if !s.Test(i) {
					t.Fatalf("cell %d not marked after join", i)
				}
			}
		})
	}
}

func TestLockCount(t *testing.T) {
	tests := []struct {
		limit, granularity, expected int64
	}{
		{1024, 256, 4},
		{1000, 16, 63},  // 62.5 rounds up
		{1000, 256, 4},  // 3.9 rounds up
		{256, 256, 1},
		{1, 256, 1},
	}
	for _, tt := range tests {
		if got := lockCount(tt.limit, tt.granularity); got != tt.expected {
			t.Errorf("lockCount(%d, %d) = %d, expected %d",
				tt.limit, tt.granularity, got, tt.expected)
		}
	}
}
