// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dlift

import (
	"iter"
	"slices"

	"github.com/samber/lo"
)

// Capability instances for the ordered-sequence container []A.

// SliceFunctor is [Functor] evidence for slices.
type SliceFunctor[A, B any] struct{}

func (SliceFunctor[A, B]) Map(fa []A, f func(A) B) []B {
	return lo.Map(fa, func(a A, _ int) B { return f(a) })
}

// SliceBinder is [Binder] evidence for slices.
type SliceBinder[A, B any] struct{}

func (SliceBinder[A, B]) Bind(fa []A, f func(A) []B) []B {
	return lo.FlatMap(fa, func(a A, _ int) []B { return f(a) })
}

// SliceFoldable is [Foldable] evidence for slices; elements are yielded
// in slice order.
type SliceFoldable[A any] struct{}

func (SliceFoldable[A]) Elems(fa []A) iter.Seq[A] {
	return slices.Values(fa)
}

// SliceFilterable is [Filterable] evidence for slices.
type SliceFilterable[A any] struct{}

func (SliceFilterable[A]) Filter(fa []A, keep func(A) bool) []A {
	return lo.Filter(fa, func(a A, _ int) bool { return keep(a) })
}

// SliceFilterMapper is [FilterMapper] evidence for slices.
type SliceFilterMapper[A, B any] struct{}

func (SliceFilterMapper[A, B]) FilterMap(fa []A, f func(A) (B, bool)) []B {
	return lo.FilterMap(fa, func(a A, _ int) (B, bool) { return f(a) })
}

// SliceApplicative is [Applicative] evidence for slices as the traversal
// effect G, combining by cartesian product.
type SliceApplicative[Acc, B any] struct{}

func (SliceApplicative[Acc, B]) Pure(acc Acc) []Acc { return []Acc{acc} }

func (SliceApplicative[Acc, B]) Map2(ga []Acc, gb []B, f func(Acc, B) Acc) []Acc {
	out := make([]Acc, 0, len(ga)*len(gb))
	for _, acc := range ga {
		for _, b := range gb {
			out = append(out, f(acc, b))
		}
	}
	return out
}

// SliceTraversable is [Traversable] evidence for slices: the standard
// left-to-right traversal, folding each element's effect into the
// accumulated effectful slice.
type SliceTraversable[GB, GFB, A, B any] struct{}

func (SliceTraversable[GB, GFB, A, B]) Traverse(
	fa []A,
	ap Applicative[GFB, GB, []B, B],
	f func(A) GB,
) GFB {
	acc := ap.Pure([]B{})
	for _, a := range fa {
		acc = ap.Map2(acc, f(a), func(bs []B, b B) []B {
			// Full slice expression: Map2 may combine the same
			// accumulated slice more than once, and the appends
			// must not share a backing array.
			return append(bs[:len(bs):len(bs)], b)
		})
	}
	return acc
}
