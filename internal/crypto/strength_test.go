package crypto

import (
	"math"
	"testing"
)

func closeTo(got, want, tolerance float64) bool {
	return math.Abs(got-want) <= tolerance
}

func TestStrengthZeroForShortPasswords(t *testing.T) {
	all := Options{Symbols: true, Digits: true, Uppercase: true, Lowercase: true}

	for _, l := range []int{0, 1} {
		opts := all
		opts.Length = l
		if got := Strength(opts); got != 0 {
			t.Errorf("Strength(length=%d) = %v, want 0", l, got)
		}

		if got := Strength(Options{Length: l, Digits: true}); got != 0 {
			t.Errorf("Strength(length=%d, digits) = %v, want 0", l, got)
		}
	}
}

func TestStrengthAllClasses(t *testing.T) {
	got := Strength(Options{Length: 10, Symbols: true, Digits: true, Uppercase: true, Lowercase: true})

	// 20 + 80*log_{255^94}(10^94) = 20 + 80*ln(10)/ln(255)
	if !closeTo(got, 53.2427, 0.001) {
		t.Errorf("Strength() = %v, want ~53.2427", got)
	}
}

func TestStrengthFullKeyspace(t *testing.T) {
	got := Strength(Options{Length: 255, Symbols: true, Digits: true, Uppercase: true, Lowercase: true})

	if !closeTo(got, 100, 1e-9) {
		t.Errorf("Strength() = %v, want exactly 100 at the maximum keyspace", got)
	}
}

func TestStrengthNoClassesIsFloor(t *testing.T) {
	// Zero enabled classes with length > 1 is a defined degenerate case:
	// pool size 0 collapses the log term and leaves the 20% floor.
	if got := Strength(Options{Length: 10}); got != 20 {
		t.Errorf("Strength() = %v, want 20", got)
	}
}

func TestStrengthPIN(t *testing.T) {
	got := Strength(Options{Length: 5, Digits: true})

	// 20 + 80*(10*ln(5))/(94*ln(255))
	if !closeTo(got, 22.4719, 0.001) {
		t.Errorf("Strength() = %v, want ~22.4719", got)
	}
}

func TestStrengthMonotonicInLength(t *testing.T) {
	opts := Options{Symbols: true, Digits: true, Uppercase: true, Lowercase: true}

	prev := 0.0
	for l := 2; l <= 255; l++ {
		opts.Length = l
		got := Strength(opts)
		if got <= prev {
			t.Fatalf("Strength(length=%d) = %v, not greater than %v at length %d", l, got, prev, l-1)
		}
		prev = got
	}
}

func TestStrengthMonotonicInClasses(t *testing.T) {
	digitsOnly := Strength(Options{Length: 12, Digits: true})
	withLower := Strength(Options{Length: 12, Digits: true, Lowercase: true})
	withAll := Strength(Options{Length: 12, Symbols: true, Digits: true, Uppercase: true, Lowercase: true})

	if !(digitsOnly < withLower && withLower < withAll) {
		t.Errorf("expected strictly increasing strength, got %v, %v, %v", digitsOnly, withLower, withAll)
	}
}

func TestStrengthRange(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		for l := 0; l <= 255; l++ {
			got := Strength(Options{
				Length:    l,
				Symbols:   mask&1 != 0,
				Digits:    mask&2 != 0,
				Uppercase: mask&4 != 0,
				Lowercase: mask&8 != 0,
			})
			if got < 0 || got > 100 {
				t.Fatalf("Strength(mask=%d, length=%d) = %v, outside [0, 100]", mask, l, got)
			}
		}
	}
}
