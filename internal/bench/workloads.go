package bench

import (
	"fmt"
	"math"
)

// Built-in workloads. They give the CLI something real to measure and the
// worker processes names they can always resolve.

func init() {
	must(RegisterWorkload("sum-squares", sumSquares))
	must(RegisterWorkload("prime-count", primeCount))
	must(RegisterWorkload("hash-mix", hashMix))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// sumSquares is a tight arithmetic loop, CPU-bound with no allocation.
func sumSquares(v float64) (float64, error) {
	n := int(math.Abs(v))
	if n > 200000 {
		n = 200000
	}
	var sum float64
	for i := 1; i <= n; i++ {
		sum += float64(i) * float64(i)
	}
	return sum, nil
}

// primeCount counts primes below v by trial division. Deliberately naive so
// per-item cost scales visibly with the input.
func primeCount(v float64) (float64, error) {
	limit := int(v)
	if limit < 0 {
		return 0, fmt.Errorf("prime-count: negative input %v", v)
	}
	if limit > 100000 {
		limit = 100000
	}
	count := 0
	for n := 2; n < limit; n++ {
		prime := true
		for d := 2; d*d <= n; d++ {
			if n%d == 0 {
				prime = false
				break
			}
		}
		if prime {
			count++
		}
	}
	return float64(count), nil
}

// hashMix churns an FNV-style mix over a small buffer, allocation-heavy
// relative to the arithmetic workloads.
func hashMix(v float64) (float64, error) {
	rounds := int(math.Abs(v))
	if rounds > 50000 {
		rounds = 50000
	}
	h := uint64(14695981039346656037)
	buf := make([]byte, 64)
	for i := 0; i < rounds; i++ {
		buf[i%len(buf)] = byte(h)
		for _, b := range buf {
			h ^= uint64(b)
			h *= 1099511628211
		}
	}
	return float64(h % (1 << 52)), nil
}
