package uax15

import (
	"context"
	"io"

	pool "github.com/jolestar/go-commons-pool"
)

// Iterators for the convenience functions are short-lived objects, but carry
// buffers. To avoid re-allocating them for every string, we pool them.
type iteratorPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalIteratorPool *iteratorPool

func init() {
	globalIteratorPool = &iteratorPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Iterator{}, nil
		})
	globalIteratorPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalIteratorPool.opool = pool.NewObjectPool(globalIteratorPool.ctx, factory, config)
}

// borrowIterator returns an iterator for form f, initialized to read from src.
// Clients must call releaseIntoPool when done.
func borrowIterator(f Form, src io.RuneReader) *Iterator {
	o, err := globalIteratorPool.opool.BorrowObject(globalIteratorPool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow iterator: %v", err)
		return f.Iterate(src)
	}
	it := o.(*Iterator)
	it.form = f
	it.Init(src)
	return it
}

// Clears the iterator and puts it back into the pool.
func (it *Iterator) releaseIntoPool() {
	it.bound.src = nil
	it.dec.src = nil
	it.rec.src = nil
	it.out = nil
	_ = globalIteratorPool.opool.ReturnObject(globalIteratorPool.ctx, it)
}
