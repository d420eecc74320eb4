// Package cache provides a small generic LRU cache.
//
// The effects pipeline uses it to memoize parameter sets scaled to a target
// resolution, which are requested far more often than they change.
//
//	c := cache.New[int, *Params](32)
//	p := c.GetOrCreate(512, func() *Params { return scale(512) })
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation
// (it contains a mutex).
package cache
