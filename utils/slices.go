package utils

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// ToBigInts returns a new slice of [big.Int] populated with the values of s.
func ToBigInts[T constraints.Integer](s []T) (v []big.Int) {
	v = make([]big.Int, len(s))
	for i := range s {
		if s[i] < 0 {
			v[i].SetInt64(int64(s[i]))
		} else {
			v[i].SetUint64(uint64(s[i]))
		}
	}
	return
}

// Chunks splits the range [0, n) into at most k contiguous
// intervals of (almost) equal size and returns their bounds.
func Chunks[T constraints.Integer](n, k T) (bounds [][2]T) {

	if n <= 0 {
		return nil
	}

	if k <= 0 || k > n {
		k = n
	}

	size := n / k
	rem := n % k

	bounds = make([][2]T, 0, k)

	var start T
	for i := T(0); i < k; i++ {
		end := start + size
		if i < rem {
			end++
		}
		bounds = append(bounds, [2]T{start, end})
		start = end
	}

	return
}

// AllDistinct returns true if all elements of s are distinct.
func AllDistinct[T comparable](s []T) bool {
	m := make(map[T]struct{}, len(s))
	for _, v := range s {
		if _, ok := m[v]; ok {
			return false
		}
		m[v] = struct{}{}
	}
	return true
}
