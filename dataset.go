// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dlift

// Distributed-collection collaborator contract.
//
// The engine owns partitioning, scheduling and record movement; this
// package only ever derives one collection from another through the two
// primitives below. Records cross the engine boundary type-erased, and
// [Dataset] restores element typing on either side.

// Handle identifies a collection within its engine. Handles are opaque:
// only the engine that issued a handle can interpret it.
type Handle any

// Engine executes per-record transforms over distributed collections.
//
// Both primitives take pure per-record functions. A failure inside the
// supplied function propagates as a panic and is subject to whatever
// failure policy the engine enforces; this package adds no recovery.
type Engine interface {
	// Map derives a collection by applying fn to every record.
	// Record-preserving: one input record, one output record.
	Map(src Handle, fn func(rec any) any) Handle

	// Expand derives a collection by emitting zero or more output
	// records per input record.
	Expand(src Handle, fn func(rec any, emit func(any))) Handle
}

// Dataset is a typed view over one of an engine's collections.
// The zero value is not usable; construct with [From].
type Dataset[T any] struct {
	eng Engine
	h   Handle
}

// From wraps an engine-owned collection handle into a typed dataset.
// The caller asserts that every record in the collection is a T.
func From[T any](eng Engine, h Handle) Dataset[T] {
	return Dataset[T]{eng: eng, h: h}
}

// Engine returns the engine that owns the dataset's collection.
func (d Dataset[T]) Engine() Engine { return d.eng }

// Handle returns the engine-level handle of the dataset's collection.
func (d Dataset[T]) Handle() Handle { return d.h }

// mapRecords derives a dataset by a record-preserving transform.
// Every lift operation with unchanged cardinality funnels through here.
func mapRecords[T, U any](d Dataset[T], fn func(T) U) Dataset[U] {
	h := d.eng.Map(d.h, func(rec any) any {
		return fn(rec.(T))
	})
	return Dataset[U]{eng: d.eng, h: h}
}

// expandRecords derives a dataset by a zero-or-more transform.
// Only [Flatten] and the keep family change cardinality; they are the
// sole callers.
func expandRecords[T, U any](d Dataset[T], fn func(rec T, emit func(U))) Dataset[U] {
	h := d.eng.Expand(d.h, func(rec any, emit func(any)) {
		fn(rec.(T), func(u U) { emit(u) })
	})
	return Dataset[U]{eng: d.eng, h: h}
}
