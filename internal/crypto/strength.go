package crypto

import "math"

// maxPoolSize is the combined alphabet size with every class enabled.
const maxPoolSize = len(symbolChars) + len(digitChars) + len(uppercaseChars) + len(lowercaseChars)

// poolSize sums the alphabet sizes of the enabled classes.
func (o Options) poolSize() int {
	size := 0
	if o.Symbols {
		size += len(symbolChars)
	}
	if o.Digits {
		size += len(digitChars)
	}
	if o.Uppercase {
		size += len(uppercaseChars)
	}
	if o.Lowercase {
		size += len(lowercaseChars)
	}
	return size
}

// Strength estimates password strength for the given rules as a
// percentage on a 20-100 scale.
//
// The score compares the keyspace length^poolSize against the largest
// keyspace the generator can express, MaxLength^maxPoolSize, on a log
// scale:
//
//	20 + 80 * log_b(a)   where a = length^poolSize, b = 255^94
//
// The 20% floor and the base-255 normalization are calibration constants
// kept for compatibility with the original tool; they are not an entropy
// measurement (that would be length * log2(poolSize) bits). Lengths 0 and
// 1 score zero regardless of classes, and zero enabled classes degrade to
// the 20% floor rather than an error.
func Strength(opts Options) float64 {
	if opts.Length <= 1 {
		return 0
	}

	a := float64(opts.poolSize()) * math.Log(float64(opts.Length))
	b := float64(maxPoolSize) * math.Log(float64(MaxLength))
	return 20 + 80*a/b
}
