package crypto

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// MaxLength is the longest password this generator will produce,
	// matching the byte-sized length field used by callers.
	MaxLength = 255
)

var (
	ErrLengthOutOfRange = errors.New("password length must be between 0 and 255")
	ErrNoRulesEnabled   = errors.New("at least one character class must be enabled")
)

// charRule tags an output position with the pool it must draw from.
type charRule int

const (
	ruleSymbol charRule = iota
	ruleDigit
	ruleLower
	ruleUpper
)

func (r charRule) pool() string {
	switch r {
	case ruleSymbol:
		return symbolChars
	case ruleDigit:
		return digitChars
	case ruleLower:
		return lowercaseChars
	default:
		return uppercaseChars
	}
}

// Options selects the character classes and length for one generation.
type Options struct {
	Length    int
	Symbols   bool
	Digits    bool
	Uppercase bool
	Lowercase bool
}

// enabledRules returns the enabled rule tags in fixed class order:
// symbols, digits, lowercase, uppercase.
func (o Options) enabledRules() []charRule {
	var rules []charRule
	if o.Symbols {
		rules = append(rules, ruleSymbol)
	}
	if o.Digits {
		rules = append(rules, ruleDigit)
	}
	if o.Lowercase {
		rules = append(rules, ruleLower)
	}
	if o.Uppercase {
		rules = append(rules, ruleUpper)
	}
	return rules
}

// Generator produces passwords from a secure random source. The source is
// fixed at construction; there is no reseeding.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator backed by the operating system's CSPRNG.
// The default source is safe for concurrent use, so one Generator may be
// shared across goroutines.
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewGeneratorWithRand returns a Generator reading randomness from r.
// Callers sharing the Generator must ensure r tolerates concurrent reads.
func NewGeneratorWithRand(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate creates a password of opts.Length characters where every
// position draws from one of the enabled character classes and, whenever
// the length allows, every enabled class appears at least once.
//
// A zero length yields an empty string. A positive length with no class
// enabled is rejected with ErrNoRulesEnabled.
func (g *Generator) Generate(opts Options) (string, error) {
	if opts.Length < 0 || opts.Length > MaxLength {
		return "", ErrLengthOutOfRange
	}
	if opts.Length == 0 {
		return "", nil
	}

	rules, err := g.ruleSequence(opts)
	if err != nil {
		return "", err
	}

	return g.fill(rules)
}

// ruleSequence builds the randomized rule order for one password:
// round-robin distribution over the enabled classes followed by coin-flip
// front/back placement.
func (g *Generator) ruleSequence(opts Options) ([]charRule, error) {
	enabled := opts.enabledRules()
	if len(enabled) == 0 {
		return nil, ErrNoRulesEnabled
	}

	// Cycling through the enabled classes keeps their counts within one of
	// each other, so a long password cannot collapse into a single class.
	distributed := make([]charRule, opts.Length)
	for i := range distributed {
		distributed[i] = enabled[i%len(enabled)]
	}

	return g.placeRules(distributed)
}

// placeRules randomizes rule order by inserting each tag at the front or
// back of a deque on a secure coin flip. This reproduces the placement
// bias of the original tool; it is intentionally not a uniform
// Fisher-Yates shuffle.
func (g *Generator) placeRules(distributed []charRule) ([]charRule, error) {
	var front, back []charRule
	for _, r := range distributed {
		flip, err := g.randIndex(2)
		if err != nil {
			return nil, err
		}
		if flip == 0 {
			back = append(back, r)
		} else {
			front = append(front, r)
		}
	}

	// Later front inserts land closer to the head, so front is replayed in
	// reverse.
	seq := make([]charRule, 0, len(distributed))
	for i := len(front) - 1; i >= 0; i-- {
		seq = append(seq, front[i])
	}
	return append(seq, back...), nil
}

// fill draws one uniformly random character per rule from that rule's pool.
func (g *Generator) fill(rules []charRule) (string, error) {
	out := make([]byte, len(rules))
	for i, r := range rules {
		pool := r.pool()
		j, err := g.randIndex(len(pool))
		if err != nil {
			return "", err
		}
		out[i] = pool[j]
	}
	return string(out), nil
}

// randIndex returns a uniform random int in [0, n).
func (g *Generator) randIndex(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
