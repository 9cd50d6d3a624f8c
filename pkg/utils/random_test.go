package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedRand always returns the same offset, clamped to n.
type fixedRand int

func (f fixedRand) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestRandomID(t *testing.T) {
	assert.Equal(t, "xxxx", RandomID(fixedRand(0), 4, "xyz"))
	assert.Equal(t, "zzz", RandomID(fixedRand(9), 3, "xyz"))
	assert.Equal(t, "京京", RandomID(fixedRand(0), 2, "京东"))
	assert.Equal(t, "", RandomID(fixedRand(0), 0, "xyz"))
	assert.Equal(t, "", RandomID(fixedRand(0), 3, ""))

	id := RandomID(NewLockedRand(1), 16, DictHex)
	assert.Regexp(t, `^[0-9a-f]{16}$`, id)
}

func TestSelectDistinct(t *testing.T) {
	tests := []struct {
		name string
		r    Rand
		seed string
		n    int
		want string
	}{
		{name: "no swaps keeps seed order", r: fixedRand(0), seed: "abcdef", n: 3, want: "abc"},
		{name: "always last", r: fixedRand(100), seed: "abcd", n: 2, want: "da"},
		{name: "n beyond seed", r: fixedRand(0), seed: "abc", n: 5, want: "abc"},
		{name: "zero", r: fixedRand(0), seed: "abc", n: 0, want: ""},
		{name: "multi-byte seed", r: fixedRand(0), seed: "京东商城", n: 2, want: "京东"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectDistinct(tt.r, tt.seed, tt.n))
		})
	}
}

func TestSelectDistinct_NoRepeats(t *testing.T) {
	r := NewLockedRand(42)
	const seed = "uct6d0jhqw"
	for i := 0; i < 50; i++ {
		got := SelectDistinct(r, seed, 6)
		assert.Len(t, got, 6)
		seen := map[rune]bool{}
		for _, c := range got {
			assert.Contains(t, seed, string(c))
			assert.False(t, seen[c], "repeated %q in %s", c, got)
			seen[c] = true
		}
	}
}

func TestFilterChars(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		remove string
		want   string
	}{
		{name: "ascii", s: "hello world", remove: "lo", want: "he wrd"},
		{name: "nothing to remove", s: "abc", remove: "", want: "abc"},
		{name: "remove all", s: "aaa", remove: "a", want: ""},
		{name: "multi-byte", s: "京东商城", remove: "东", want: "京商城"},
		{name: "seed minus selection", s: "uct6d0jhqw", remove: "d0j", want: "uct6hqw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterChars(tt.s, tt.remove))
		})
	}
}

func TestLockedRand_Deterministic(t *testing.T) {
	a, b := NewLockedRand(7), NewLockedRand(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
	assert.Equal(t, "only", PickOne(fixedRand(0), []string{"only"}))
}
