// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dlift lifts generic functional operations onto distributed
// collections of effect-wrapped records.
//
// A [Dataset] is a typed view over a collection owned by an [Engine],
// the external collaborator that actually executes per-record work.
// When the records are values wrapped in an effect container F — an
// optional value, a slice, a keyed mapping — dlift exposes
// transformations that operate inside F without ever unwrapping it for
// the caller: map, flat-map, filter, fold, traverse, and the sequencing
// of nested effects.
//
// dlift is an adapter, not an engine. Every operation is one capability
// call per record; partitioning, scheduling, serialization and failure
// policy all belong to the engine behind the dataset. The in-memory
// [Local] engine ships as the reference implementation.
//
// # Capability Evidence
//
// Go has no higher-kinded type parameters, so "F supports map" cannot be
// stated over an abstract F. Instead each operation takes explicit
// capability evidence naming the concrete container instantiations it
// touches:
//
//   - [Functor]: mappable containers
//   - [Binder]: flat-mappable containers
//   - [Foldable]: element enumeration (folds, min/max, emptiness, flatten)
//   - [Filterable], [FilterMapper]: shape-preserving element dropping
//   - [Traversable], [Applicative]: threading an effect through a container
//   - [Monoid], [Order]: element-level algebra for folds and extrema
//
// Evidence values are stateless; instances for mo.Option, slices and
// keyed maps ship in this package (Option*, Slice*, Keyed*), with
// mo.Result available as a traversal effect.
//
// # Operations
//
// Record-preserving lifts (one record in, one record out):
//
//   - [As], [PairLeft], [PairRight]: replace or pair the wrapped value
//   - [MapInner], [FlatMapInner]: transform inside the container
//   - [PairWith], [FlatPairWith]: pair values with derived results
//   - [MapFilterInner], [CollectInner], [FilterInner]: drop elements
//     inside the container, keeping the record
//   - [FoldInner], [MinInner], [MaxInner]: collapse each container to a
//     single value (extrema are None on empty containers, never an error)
//   - [Traverse], [FlatTraverse]: thread an effect G through F
//
// Cardinality-changing lifts, the only two families that add or drop
// records:
//
//   - [Flatten]: each record's container becomes zero or more records
//   - [KeepNonEmpty], [KeepNonEmptyWhere], [KeepEmpty], [KeepEmptyWhere]:
//     drop records by container emptiness
//
// Nested containers F[G[A]]:
//
//   - [MapNested]: map through both layers
//   - [Sequence]: swap the layers, F[G[A]] to G[F[A]]
//
// # Example
//
//	eng := dlift.NewLocal()
//	d := dlift.Hold(eng, mo.Some(2), mo.None[int](), mo.Some(3))
//
//	doubled := dlift.MapInner(d, dlift.OptionFunctor[int, int]{}, func(x int) int {
//		return x * 2
//	})
//	flat := dlift.Flatten(doubled, dlift.OptionFoldable[int]{})
//	// dlift.Collect(flat) == []int{4, 6}
package dlift
