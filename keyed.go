// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dlift

import (
	"iter"
	"maps"

	"github.com/samber/lo"
)

// Capability instances for the keyed-mapping container map[K]A.
// Operations act on values; keys are preserved.
//
// A keyed mapping has no element order, so no Binder or Traversable
// instance exists for it, and folds over it require a commutative
// combine.

// KeyedFunctor is [Functor] evidence for maps.
type KeyedFunctor[K comparable, A, B any] struct{}

func (KeyedFunctor[K, A, B]) Map(fa map[K]A, f func(A) B) map[K]B {
	return lo.MapValues(fa, func(a A, _ K) B { return f(a) })
}

// KeyedFoldable is [Foldable] evidence for maps; elements are yielded in
// unspecified order.
type KeyedFoldable[K comparable, A any] struct{}

func (KeyedFoldable[K, A]) Elems(fa map[K]A) iter.Seq[A] {
	return maps.Values(fa)
}

// KeyedFilterable is [Filterable] evidence for maps: entries whose value
// fails the predicate are dropped.
type KeyedFilterable[K comparable, A any] struct{}

func (KeyedFilterable[K, A]) Filter(fa map[K]A, keep func(A) bool) map[K]A {
	return lo.PickBy(fa, func(_ K, a A) bool { return keep(a) })
}

// KeyedFilterMapper is [FilterMapper] evidence for maps.
type KeyedFilterMapper[K comparable, A, B any] struct{}

func (KeyedFilterMapper[K, A, B]) FilterMap(fa map[K]A, f func(A) (B, bool)) map[K]B {
	out := make(map[K]B, len(fa))
	for k, a := range fa {
		if b, keep := f(a); keep {
			out[k] = b
		}
	}
	return out
}
