// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dlift

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Lift operations over a dataset of effect-wrapped records.
//
// Every operation applies one lawful capability call per record and
// never inspects the distributed shape beyond that. All operations are
// record-preserving except [Flatten] and the keep family, which change
// record cardinality and say so in their doc comments.

// As replaces every wrapped value with b, preserving container
// structure.
func As[FA, FB, A, B any](d Dataset[FA], fn Functor[FA, FB, A, B], b B) Dataset[FB] {
	return mapRecords(d, func(fa FA) FB {
		return fn.Map(fa, func(A) B { return b })
	})
}

// PairLeft pairs every wrapped value with b on the left.
func PairLeft[FA, FB, A, B any](d Dataset[FA], fn Functor[FA, FB, A, lo.Tuple2[B, A]], b B) Dataset[FB] {
	return mapRecords(d, func(fa FA) FB {
		return fn.Map(fa, func(a A) lo.Tuple2[B, A] { return lo.T2(b, a) })
	})
}

// PairRight pairs every wrapped value with b on the right.
func PairRight[FA, FB, A, B any](d Dataset[FA], fn Functor[FA, FB, A, lo.Tuple2[A, B]], b B) Dataset[FB] {
	return mapRecords(d, func(fa FA) FB {
		return fn.Map(fa, func(a A) lo.Tuple2[A, B] { return lo.T2(a, b) })
	})
}

// MapInner applies f to the wrapped value(s) of every record.
func MapInner[FA, FB, A, B any](d Dataset[FA], fn Functor[FA, FB, A, B], f func(A) B) Dataset[FB] {
	return mapRecords(d, func(fa FA) FB {
		return fn.Map(fa, f)
	})
}

// FlatMapInner applies f to the wrapped value(s) of every record and
// flattens one container level.
func FlatMapInner[FA, FB, A any](d Dataset[FA], fn Binder[FA, FB, A], f func(A) FB) Dataset[FB] {
	return mapRecords(d, func(fa FA) FB {
		return fn.Bind(fa, f)
	})
}

// PairWith pairs every wrapped value with the result of applying f
// to it.
func PairWith[FA, FB, A, B any](d Dataset[FA], fn Functor[FA, FB, A, lo.Tuple2[A, B]], f func(A) B) Dataset[FB] {
	return mapRecords(d, func(fa FA) FB {
		return fn.Map(fa, func(a A) lo.Tuple2[A, B] { return lo.T2(a, f(a)) })
	})
}

// FlatPairWith is the flat-mappable analogue of [PairWith]: f produces a
// container of results per value, and each result is paired with the
// value that produced it.
func FlatPairWith[FA, FB, FAB, A, B any](
	d Dataset[FA],
	bind Binder[FA, FAB, A],
	fn Functor[FB, FAB, B, lo.Tuple2[A, B]],
	f func(A) FB,
) Dataset[FAB] {
	return mapRecords(d, func(fa FA) FAB {
		return bind.Bind(fa, func(a A) FAB {
			return fn.Map(f(a), func(b B) lo.Tuple2[A, B] { return lo.T2(a, b) })
		})
	})
}

// MapFilterInner keeps the transformed value only where f returns a
// present Option.
func MapFilterInner[FA, FB, A, B any](d Dataset[FA], fn FilterMapper[FA, FB, A, B], f func(A) mo.Option[B]) Dataset[FB] {
	return mapRecords(d, func(fa FA) FB {
		return fn.FilterMap(fa, func(a A) (B, bool) {
			return f(a).Get()
		})
	})
}

// CollectInner keeps the transformed value only where the partial
// function f is defined, i.e. reports true.
func CollectInner[FA, FB, A, B any](d Dataset[FA], fn FilterMapper[FA, FB, A, B], f func(A) (B, bool)) Dataset[FB] {
	return mapRecords(d, func(fa FA) FB {
		return fn.FilterMap(fa, f)
	})
}

// Flatten expands each record's container into its constituent elements
// as separate records.
//
// Cardinality changes: one record becomes however many elements its
// container holds, possibly zero.
func Flatten[FA, A any](d Dataset[FA], fold Foldable[FA, A]) Dataset[A] {
	return expandRecords(d, func(fa FA, emit func(A)) {
		for a := range fold.Elems(fa) {
			emit(a)
		}
	})
}

// FilterInner keeps only the wrapped elements satisfying keep,
// preserving container shape otherwise. Records whose container becomes
// empty remain in the dataset as empty containers; see [KeepNonEmptyWhere]
// for the record-dropping variant.
func FilterInner[FA, A any](d Dataset[FA], fn Filterable[FA, A], keep func(A) bool) Dataset[FA] {
	return mapRecords(d, func(fa FA) FA {
		return fn.Filter(fa, keep)
	})
}

// KeepNonEmptyWhere filters the wrapped elements by keep, then drops
// records whose container became empty. Cardinality may shrink.
func KeepNonEmptyWhere[FA, A any](
	d Dataset[FA],
	fn Filterable[FA, A],
	fold Foldable[FA, A],
	keep func(A) bool,
) Dataset[FA] {
	return expandRecords(d, func(fa FA, emit func(FA)) {
		filtered := fn.Filter(fa, keep)
		if !isEmpty(fold, filtered) {
			emit(filtered)
		}
	})
}

// KeepNonEmpty drops records whose container is empty. Cardinality may
// shrink.
func KeepNonEmpty[FA, A any](d Dataset[FA], fold Foldable[FA, A]) Dataset[FA] {
	return expandRecords(d, func(fa FA, emit func(FA)) {
		if !isEmpty(fold, fa) {
			emit(fa)
		}
	})
}

// KeepEmptyWhere filters the wrapped elements by keep, then keeps only
// the records whose container became empty. The complement of
// [KeepNonEmptyWhere] over the same input; cardinality may shrink.
func KeepEmptyWhere[FA, A any](
	d Dataset[FA],
	fn Filterable[FA, A],
	fold Foldable[FA, A],
	keep func(A) bool,
) Dataset[FA] {
	return expandRecords(d, func(fa FA, emit func(FA)) {
		filtered := fn.Filter(fa, keep)
		if isEmpty(fold, filtered) {
			emit(filtered)
		}
	})
}

// KeepEmpty keeps only records whose container is empty. The complement
// of [KeepNonEmpty]; cardinality may shrink.
func KeepEmpty[FA, A any](d Dataset[FA], fold Foldable[FA, A]) Dataset[FA] {
	return expandRecords(d, func(fa FA, emit func(FA)) {
		if isEmpty(fold, fa) {
			emit(fa)
		}
	})
}

// FoldInner combines all elements of each record's container into a
// single value under m. An empty container folds to m's identity.
// Unordered containers require a commutative combine.
func FoldInner[FA, A any](d Dataset[FA], fold Foldable[FA, A], m Monoid[A]) Dataset[A] {
	return mapRecords(d, func(fa FA) A {
		acc := m.Empty()
		for a := range fold.Elems(fa) {
			acc = m.Combine(acc, a)
		}
		return acc
	})
}

// MinInner yields, per record, the minimum element of the container
// under ord, or None for an empty container.
func MinInner[FA, A any](d Dataset[FA], fold Foldable[FA, A], ord Order[A]) Dataset[mo.Option[A]] {
	return mapRecords(d, func(fa FA) mo.Option[A] {
		return pickBy(fold, fa, func(a, best A) bool { return ord.Compare(a, best) < 0 })
	})
}

// MaxInner yields, per record, the maximum element of the container
// under ord, or None for an empty container.
func MaxInner[FA, A any](d Dataset[FA], fold Foldable[FA, A], ord Order[A]) Dataset[mo.Option[A]] {
	return mapRecords(d, func(fa FA) mo.Option[A] {
		return pickBy(fold, fa, func(a, best A) bool { return ord.Compare(a, best) > 0 })
	})
}

// Traverse threads the effect G through each record's container,
// producing one G of container per record.
func Traverse[FA, FB, GB, GFB, A, B any](
	d Dataset[FA],
	trav Traversable[FA, FB, GB, GFB, A, B],
	ap Applicative[GFB, GB, FB, B],
	f func(A) GB,
) Dataset[GFB] {
	return mapRecords(d, func(fa FA) GFB {
		return trav.Traverse(fa, ap, f)
	})
}

// FlatTraverse traverses with a container-producing f, then flattens the
// doubly-wrapped container inside G: per record, A -> G[F[B]] elementwise
// yields G[F[F[B]]], which bind collapses to G[F[B]].
func FlatTraverse[FA, FB, FFB, GFB, GFFB, A any](
	d Dataset[FA],
	trav Traversable[FA, FFB, GFB, GFFB, A, FB],
	ap Applicative[GFFB, GFB, FFB, FB],
	gfn Functor[GFFB, GFB, FFB, FB],
	bind Binder[FFB, FB, FB],
	f func(A) GFB,
) Dataset[GFB] {
	return mapRecords(d, func(fa FA) GFB {
		nested := trav.Traverse(fa, ap, f)
		return gfn.Map(nested, func(ffb FFB) FB {
			return bind.Bind(ffb, func(fb FB) FB { return fb })
		})
	})
}

// isEmpty reports whether a container holds no elements, stopping at the
// first one.
func isEmpty[FA, A any](fold Foldable[FA, A], fa FA) bool {
	for range fold.Elems(fa) {
		return false
	}
	return true
}

// pickBy folds a container to its best element under better, or None if
// empty.
func pickBy[FA, A any](fold Foldable[FA, A], fa FA, better func(a, best A) bool) mo.Option[A] {
	var best A
	found := false
	for a := range fold.Elems(fa) {
		if !found || better(a, best) {
			best = a
			found = true
		}
	}
	if !found {
		return mo.None[A]()
	}
	return mo.Some(best)
}
