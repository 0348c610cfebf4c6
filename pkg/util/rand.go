package util

import (
	"errors"
	"math"
	"math/rand"
	"strings"
)

const (
	letterBytes   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

var ErrKeyspace = errors.New("util: not enough distinct strings of that length")

// Rand produces reproducible keys for benchmarks and tests
type Rand struct {
	src *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{
		src: rand.New(rand.NewSource(seed)),
	}
}

// String returns n random ASCII letters
func (r *Rand) String(n int) string {
	sb := strings.Builder{}
	sb.Grow(n)
	// one Int63 carries letterIdxMax letter indices
	for i, cache, remain := n-1, r.src.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = r.src.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(letterBytes) {
			sb.WriteByte(letterBytes[idx])
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	return sb.String()
}

// Keyspace returns how many distinct strings of length n String can
// produce, saturating at math.MaxInt.
func Keyspace(n int) int {
	if n < 0 {
		return 0
	}
	total := 1
	for i := 0; i < n; i++ {
		if total > math.MaxInt/len(letterBytes) {
			return math.MaxInt
		}
		total *= len(letterBytes)
	}
	return total
}

// Strings returns count distinct random strings of length n. It fails
// with ErrKeyspace when fewer than count such strings exist.
func (r *Rand) Strings(count, n int) ([]string, error) {
	if count > Keyspace(n) {
		return nil, ErrKeyspace
	}
	seen := make(map[string]struct{}, count)
	out := make([]string, 0, count)
	for len(out) < count {
		s := r.String(n)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}

// Intn returns a number in [min, max). It returns min when max <= min.
func (r *Rand) Intn(min, max int) int {
	if max <= min {
		return min
	}
	return r.src.Intn(max-min) + min
}

// Shuffle randomizes the order of keys in place
func Shuffle[T any](r *Rand, keys []T) {
	r.src.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
}
