package toggle

import (
	"sync"

	"github.com/katalvlaran/flipgrid/gf2"
)

// cacheKey identifies one built matrix: shape plus variant.
type cacheKey struct {
	rows, cols int
	variant    Variant
}

// ModelCache memoizes BuildVariantMatrix results per (rows, cols,
// variant). Construction is pure, so concurrent misses may race to
// build the same matrix; the loser's copy is discarded. Reads take the
// shared lock only.
//
// The zero value is ready to use. Callers must not mutate returned
// matrices; Clone first when a scratch copy is needed (the solver does
// its elimination on a copy already).
type ModelCache struct {
	mu sync.RWMutex
	m  map[cacheKey]*gf2.Matrix
}

// NewModelCache returns an empty cache.
func NewModelCache() *ModelCache {
	return &ModelCache{m: make(map[cacheKey]*gf2.Matrix)}
}

// Matrix returns the toggle matrix for (rows, cols, v), building and
// retaining it on first use. Errors are those of BuildVariantMatrix and
// are never cached.
// Complexity: O(1) on a hit; one BuildVariantMatrix on a miss.
func (mc *ModelCache) Matrix(rows, cols int, v Variant) (*gf2.Matrix, error) {
	key := cacheKey{rows: rows, cols: cols, variant: v}

	mc.mu.RLock()
	cached, ok := mc.m[key]
	mc.mu.RUnlock()
	if ok {
		return cached, nil
	}

	built, err := BuildVariantMatrix(rows, cols, v)
	if err != nil {
		return nil, err
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()
	if mc.m == nil {
		mc.m = make(map[cacheKey]*gf2.Matrix)
	}
	// Another goroutine may have built the same matrix meanwhile; keep
	// the first stored copy so callers always share one instance.
	if prior, ok := mc.m[key]; ok {
		return prior, nil
	}
	mc.m[key] = built

	return built, nil
}

// Len reports the number of cached matrices.
func (mc *ModelCache) Len() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	return len(mc.m)
}
