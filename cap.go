// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dlift

import (
	"cmp"
	"iter"
)

// Capability evidence interfaces.
//
// Go has no higher-kinded type parameters: F[A] and F[B] are unrelated
// concrete types, so each capability names every container instantiation
// it touches as its own type parameter. Evidence values are stateless and
// immutable; callers pass them per call and may share them freely across
// goroutines.
//
// One interface per capability. A container implements only the
// capabilities it lawfully has — the keyed-mapping container, for
// example, carries no Binder or Traversable instance.

// Functor is evidence that a container is mappable: FA is the container
// holding A, FB the same container shape holding B.
type Functor[FA, FB, A, B any] interface {
	Map(fa FA, f func(A) B) FB
}

// Binder is evidence that a container is flat-mappable: f produces a
// whole container per element, flattened one level into the result.
type Binder[FA, FB, A any] interface {
	Bind(fa FA, f func(A) FB) FB
}

// Foldable is evidence that a container's elements can be enumerated.
// Folding, min/max, emptiness and flattening all derive from Elems.
//
// Containers without a defined element order (keyed mappings) may yield
// in any order; operations that depend on order must not be given such
// evidence unless their combine is commutative.
type Foldable[FA, A any] interface {
	Elems(fa FA) iter.Seq[A]
}

// Filterable is evidence that a container's elements can be dropped by
// predicate while preserving the container's shape otherwise.
type Filterable[FA, A any] interface {
	Filter(fa FA, keep func(A) bool) FA
}

// FilterMapper is evidence for combined transform-and-filter: elements
// for which f reports false are dropped, the rest are replaced by f's
// result.
type FilterMapper[FA, FB, A, B any] interface {
	FilterMap(fa FA, f func(A) (B, bool)) FB
}

// Applicative is evidence for an effect G, specialized to the two
// instantiations a traversal needs: GAcc is G applied to the accumulated
// container Acc, GB is G applied to a single element B.
type Applicative[GAcc, GB, Acc, B any] interface {
	// Pure lifts a pure accumulator into G.
	Pure(acc Acc) GAcc
	// Map2 combines two effectful values with a pure function.
	Map2(ga GAcc, gb GB, f func(Acc, B) Acc) GAcc
}

// Traversable is evidence that a container can be traversed, threading
// an effect G through its elements: FA holds A, FB holds B, GB is
// G[B] and GFB is G[FB].
type Traversable[FA, FB, GB, GFB, A, B any] interface {
	Traverse(fa FA, ap Applicative[GFB, GB, FB, B], f func(A) GB) GFB
}

// Monoid is evidence that A has an identity element and an associative
// combine. Operations over unordered containers additionally require
// the combine to be commutative.
type Monoid[A any] interface {
	Empty() A
	Combine(a, b A) A
}

// Order is evidence of a total order on A: Compare returns a negative
// value if a < b, zero if equal, positive if a > b.
type Order[A any] interface {
	Compare(a, b A) int
}

// MonoidOf builds a [Monoid] from an identity element and a combine
// function.
func MonoidOf[A any](empty A, combine func(a, b A) A) Monoid[A] {
	return funcMonoid[A]{empty: empty, combine: combine}
}

type funcMonoid[A any] struct {
	empty   A
	combine func(a, b A) A
}

func (m funcMonoid[A]) Empty() A { return m.empty }

func (m funcMonoid[A]) Combine(a, b A) A { return m.combine(a, b) }

// Numeric covers the built-in numeric types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum is the additive monoid over a numeric type.
func Sum[A Numeric]() Monoid[A] {
	return MonoidOf(0, func(a, b A) A { return a + b })
}

// OrderOf builds an [Order] from a comparison function.
func OrderOf[A any](compare func(a, b A) int) Order[A] {
	return funcOrder[A](compare)
}

type funcOrder[A any] func(a, b A) int

func (o funcOrder[A]) Compare(a, b A) int { return o(a, b) }

// NaturalOrder is the built-in order of an ordered type.
func NaturalOrder[A cmp.Ordered]() Order[A] {
	return OrderOf(cmp.Compare[A])
}
