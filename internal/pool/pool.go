// Package pool provides object pooling for go-miniarg
// Used by SplitPooled to reuse token slices across lines
package pool

import (
	"sync"
)

// Pool is a type-safe sync.Pool that resets objects before handing them out
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // optional, called on every Get
}

// NewPool creates a new generic pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse. nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// StringSlicePool pools token slices
type StringSlicePool struct {
	*Pool[[]string]
}

// NewStringSlicePool creates a new string slice pool
func NewStringSlicePool(defaultCap int) *StringSlicePool {
	return &StringSlicePool{
		Pool: NewPoolWithReset(
			func() *[]string {
				slice := make([]string, 0, defaultCap)
				return &slice
			},
			func(slice *[]string) {
				clear(*slice)         // drop references into old lines
				*slice = (*slice)[:0] // Reset length but keep capacity
			},
		),
	}
}

// globalStringSlices backs GetStringSlice and PutStringSlice
var globalStringSlices = NewStringSlicePool(16)

// GetStringSlice retrieves an empty string slice
func GetStringSlice() *[]string {
	return globalStringSlices.Get()
}

// PutStringSlice returns a string slice to the global pool
func PutStringSlice(slice *[]string) {
	globalStringSlices.Put(slice)
}
