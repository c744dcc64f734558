package generator

import (
	"math/rand"

	"svw.info/truthpuzzle/internal/domain"
)

// RandomExcluding draws uniformly from [lo,hi] without excluded. It draws
// from [lo,hi-1] and steps over the excluded value. An excluded value outside
// the range still yields a result inside [lo,hi].
func RandomExcluding(rng *rand.Rand, lo, hi, excluded int) int {
	v := lo + rng.Intn(hi-lo)
	if v >= excluded {
		v++
	}
	return v
}

// RandomAssignment returns n uniform booleans with n uniform in
// [domain.MinSize, domain.MaxSize].
func RandomAssignment(rng *rand.Rand) domain.Assignment {
	n := domain.MinSize + rng.Intn(domain.MaxSize-domain.MinSize+1)
	a := make(domain.Assignment, n)
	for i := range a {
		a[i] = randomBool(rng)
	}
	return a
}

func randomBool(rng *rand.Rand) bool { return rng.Intn(2) == 1 }
