// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dlift

// Local is an in-memory [Engine]: collections are slices, transforms run
// eagerly on the calling goroutine, and record order is preserved.
//
// Local exists as the reference engine for tests and single-process use.
// Panics from per-record functions propagate to the caller unhandled,
// which is Local's entire failure policy.
type Local struct{}

// localHandle is the slice backing one Local collection.
type localHandle []any

// NewLocal returns a Local engine.
func NewLocal() *Local { return &Local{} }

// Hold creates a collection from the given records and returns a typed
// dataset over it.
func Hold[T any](eng *Local, recs ...T) Dataset[T] {
	h := make(localHandle, len(recs))
	for i, r := range recs {
		h[i] = r
	}
	return From[T](eng, h)
}

// Map implements [Engine].
func (*Local) Map(src Handle, fn func(rec any) any) Handle {
	in := src.(localHandle)
	out := make(localHandle, len(in))
	for i, rec := range in {
		out[i] = fn(rec)
	}
	return out
}

// Expand implements [Engine].
func (*Local) Expand(src Handle, fn func(rec any, emit func(any))) Handle {
	in := src.(localHandle)
	out := make(localHandle, 0, len(in))
	for _, rec := range in {
		fn(rec, func(u any) { out = append(out, u) })
	}
	return out
}

// Collect materializes a Local-backed dataset into a slice, in record
// order. Panics if the dataset's engine is not a [Local].
func Collect[T any](d Dataset[T]) []T {
	if _, ok := d.Engine().(*Local); !ok {
		panic("dlift: Collect requires a Local engine")
	}
	in := d.Handle().(localHandle)
	out := make([]T, len(in))
	for i, rec := range in {
		out[i] = rec.(T)
	}
	return out
}
