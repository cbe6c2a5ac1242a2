package vmath

import (
	"hash/fnv"
	"unicode/utf16"
)

// CharCodeSum adds the UTF-16 code units of s, empty string sums to 0
// Characters outside the BMP count as their surrogate pair
func CharCodeSum(s string) int {
	sum := 0
	for _, u := range utf16.Encode([]rune(s)) {
		sum += int(u)
	}
	return sum
}

// SeedHash derives a 64-bit RNG seed from an arbitrary string
func SeedHash(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
