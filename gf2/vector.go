package gf2

import (
	"math/bits"
	"strings"
)

const wordBits = 64

// Vector is a fixed-length bit vector over GF(2), packed little-endian
// into 64-bit words: bit i lives in words[i/64] at position i%64.
// The zero value is unusable; construct with NewVector.
type Vector struct {
	n     int
	words []uint64
}

// NewVector returns an all-zero vector of length n.
// Returns ErrBadLength if n <= 0.
// Complexity: O(n/64).
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, ErrBadLength
	}

	return &Vector{n: n, words: make([]uint64, (n+wordBits-1)/wordBits)}, nil
}

// VectorFromBits builds a vector from a literal bit slice, b[i] being
// bit i. Returns ErrBadLength on an empty slice.
// Complexity: O(len(b)).
func VectorFromBits(b []uint8) (*Vector, error) {
	v, err := NewVector(len(b))
	if err != nil {
		return nil, err
	}
	for i, bit := range b {
		if bit != 0 {
			v.words[i/wordBits] |= 1 << (i % wordBits)
		}
	}

	return v, nil
}

// Len returns the vector length in bits. Complexity: O(1).
func (v *Vector) Len() int { return v.n }

// Bit reports whether bit i is set.
// Returns ErrIndexOutOfRange if i is outside [0, Len).
// Complexity: O(1).
func (v *Vector) Bit(i int) (bool, error) {
	if i < 0 || i >= v.n {
		return false, ErrIndexOutOfRange
	}

	return v.words[i/wordBits]&(1<<(i%wordBits)) != 0, nil
}

// SetBit sets bit i to val.
// Returns ErrIndexOutOfRange if i is outside [0, Len).
// Complexity: O(1).
func (v *Vector) SetBit(i int, val bool) error {
	if i < 0 || i >= v.n {
		return ErrIndexOutOfRange
	}
	if val {
		v.words[i/wordBits] |= 1 << (i % wordBits)
	} else {
		v.words[i/wordBits] &^= 1 << (i % wordBits)
	}

	return nil
}

// FlipBit inverts bit i (GF(2) addition of 1 at position i).
// Returns ErrIndexOutOfRange if i is outside [0, Len).
// Complexity: O(1).
func (v *Vector) FlipBit(i int) error {
	if i < 0 || i >= v.n {
		return ErrIndexOutOfRange
	}
	v.words[i/wordBits] ^= 1 << (i % wordBits)

	return nil
}

// Xor adds other into v over GF(2), word by word.
// Returns ErrLengthMismatch if lengths differ.
// Complexity: O(n/64).
func (v *Vector) Xor(other *Vector) error {
	if other == nil || other.n != v.n {
		return ErrLengthMismatch
	}
	for w := range v.words {
		v.words[w] ^= other.words[w]
	}

	return nil
}

// Weight returns the Hamming weight (number of set bits).
// Complexity: O(n/64).
func (v *Vector) Weight() int {
	var total int
	for _, w := range v.words {
		total += bits.OnesCount64(w)
	}

	return total
}

// IsZero reports whether every bit is 0.
// Complexity: O(n/64).
func (v *Vector) IsZero() bool {
	for _, w := range v.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Ones returns the indices of set bits in ascending order.
// Complexity: O(n).
func (v *Vector) Ones() []int {
	idx := make([]int, 0, v.Weight())
	for w, word := range v.words {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			idx = append(idx, w*wordBits+b)
			word &= word - 1
		}
	}

	return idx
}

// Clone returns a deep copy of v. Complexity: O(n/64).
func (v *Vector) Clone() *Vector {
	words := make([]uint64, len(v.words))
	copy(words, v.words)

	return &Vector{n: v.n, words: words}
}

// Equal reports whether v and other have identical length and bits.
// Complexity: O(n/64).
func (v *Vector) Equal(other *Vector) bool {
	if other == nil || other.n != v.n {
		return false
	}
	for w := range v.words {
		if v.words[w] != other.words[w] {
			return false
		}
	}

	return true
}

// String renders the vector as a "0101…" string, bit 0 first.
// Complexity: O(n).
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.words[i/wordBits]&(1<<(i%wordBits)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// bit is the unchecked fast path used by Matrix after bounds validation.
func (v *Vector) bit(i int) bool {
	return v.words[i/wordBits]&(1<<(i%wordBits)) != 0
}

// flip is the unchecked fast path used by Matrix after bounds validation.
func (v *Vector) flip(i int) {
	v.words[i/wordBits] ^= 1 << (i % wordBits)
}
