// Package cache provides a small generic memoizing cache for values that
// are expensive to produce, such as compiled shader programs.
//
//	programs := cache.New[key, []uint32](16)
//	words, err := programs.GetOrCreate(k, func() ([]uint32, error) {
//	    return compile(k)
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
