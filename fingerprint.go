package sortedlist

import (
	"fmt"
	"hash/crc32"
	"math/rand"
	"strconv"
	"time"
)

const (
	// fingerprintAlphabet is the 64-symbol alphabet FingerprintString
	// draws from.
	fingerprintAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// fingerprintStringLen is the fixed length of every fingerprint string.
	fingerprintStringLen = 20

	fingerprintBits = 31
)

// hasher is the process-wide generator behind FingerprintString. Its seed
// is reset on every call, so concurrent callers race on its sequence; the
// design assumes single-threaded use.
var hasher = rand.New(rand.NewSource(1))

// Fingerprint returns the list's unstable identity hash.
//
// The accumulator is seeded with the current wall-clock time, then folds
// over the sorted elements alternating addition and subtraction of
// (crc32(elem) mod capacity) + i^2 per position, the starting sign chosen
// by the order mode. The result seeds a generator that emits a 31-bit
// string parsed as an integer.
//
// Two calls on the same list generally return different values. This is
// inherited, intentional non-determinism, not a structural hash; use
// ElementsEqual for stable comparisons.
func (l *List[T]) Fingerprint() int32 {
	return l.fingerprintFrom(time.Now().UnixMilli())
}

// fingerprintFrom folds the elements into seed and draws the bit string.
func (l *List[T]) fingerprintFrom(seed int64) int32 {
	negative := l.ascending
	for i := 1; i <= l.size; i++ {
		term := int64(elemHash(l.sorted[i-1]))%int64(len(l.sorted)) + int64(i*i)
		if negative {
			seed -= term
		} else {
			seed += term
		}
		negative = !negative
	}

	rng := rand.New(rand.NewSource(seed))
	bits := make([]byte, fingerprintBits)
	for i := range bits {
		if rng.Intn(2) == 0 {
			bits[i] = '0'
		} else {
			bits[i] = '1'
		}
	}

	n, _ := strconv.ParseInt(string(bits), 2, 64)
	return int32(n)
}

// FingerprintString reseeds the shared generator with Fingerprint() and
// draws a fixed-length string from the fingerprint alphabet. As unstable
// as Fingerprint itself.
func (l *List[T]) FingerprintString() string {
	hasher.Seed(int64(l.Fingerprint()))

	b := make([]byte, fingerprintStringLen)
	for i := range b {
		b[i] = fingerprintAlphabet[hasher.Intn(len(fingerprintAlphabet))]
	}
	return string(b)
}

// Equal reports whether both lists produce the same Fingerprint. Since the
// fingerprint is time-seeded, Equal is non-deterministic and generally
// unusable for stable comparisons. Kept for fidelity with the inherited
// contract; prefer ElementsEqual.
func (l *List[T]) Equal(other *List[T]) bool {
	return l.Fingerprint() == other.Fingerprint()
}

// ElementsEqual is the conventional deep comparison: same size, same order
// mode, and elementwise-equal sorted and shadow prefixes under l's
// comparator.
func (l *List[T]) ElementsEqual(other *List[T]) bool {
	if l.size != other.size || l.ascending != other.ascending {
		return false
	}
	for i := 0; i < l.size; i++ {
		if l.cmp(l.sorted[i], other.sorted[i]) != 0 {
			return false
		}
		if l.cmp(l.shadow[i], other.shadow[i]) != 0 {
			return false
		}
	}
	return true
}

// elemHash folds an element's printed form through crc32.
func elemHash[T any](v T) uint32 {
	return crc32.ChecksumIEEE(fmt.Append(nil, v))
}
