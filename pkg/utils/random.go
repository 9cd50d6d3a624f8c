package utils

import (
	"math/rand/v2"
	"sync"
)

// Rand is the random source threaded through the signer.
// Implementations must be safe for concurrent use.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand draws from the runtime's shared source.
var DefaultRand Rand = globalRand{}

// LockedRand is a seeded source guarded by a mutex, used for reproducible runs.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedRand creates a deterministic source for seed.
func NewLockedRand(seed uint64) *LockedRand {
	return &LockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (l *LockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// Dictionaries used by RandomID.
const (
	DictNumber   = "0123456789"
	DictAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DictMax      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"
	DictHex      = "0123456789abcdef"
)

// RandomID draws size characters from dict with replacement.
func RandomID(r Rand, size int, dict string) string {
	if size <= 0 || dict == "" {
		return ""
	}
	chars := []rune(dict)
	out := make([]rune, size)
	for i := range out {
		out[i] = chars[r.IntN(len(chars))]
	}
	return string(out)
}

// RandomInt10 returns a digit in [0,10).
func RandomInt10(r Rand) int {
	return r.IntN(10)
}

// SelectDistinct draws n characters of seed without replacement, in draw order.
func SelectDistinct(r Rand, seed string, n int) string {
	pool := []rune(seed)
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return string(pool[:n])
}

// FilterChars removes every character of remove from s.
func FilterChars(s, remove string) string {
	drop := make(map[rune]struct{}, len(remove))
	for _, c := range remove {
		drop[c] = struct{}{}
	}
	out := make([]rune, 0, len(s))
	for _, c := range s {
		if _, ok := drop[c]; !ok {
			out = append(out, c)
		}
	}
	return string(out)
}

// PickOne returns a random element of items.
func PickOne[T any](r Rand, items []T) T {
	return items[r.IntN(len(items))]
}
