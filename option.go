// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dlift

import (
	"iter"

	"github.com/samber/mo"
)

// Capability instances for the optional-value container [mo.Option].
// An Option holds zero or one element; every capability below follows
// from that directly.

// OptionFunctor is [Functor] evidence for mo.Option.
type OptionFunctor[A, B any] struct{}

func (OptionFunctor[A, B]) Map(fa mo.Option[A], f func(A) B) mo.Option[B] {
	if a, ok := fa.Get(); ok {
		return mo.Some(f(a))
	}
	return mo.None[B]()
}

// OptionBinder is [Binder] evidence for mo.Option.
type OptionBinder[A, B any] struct{}

func (OptionBinder[A, B]) Bind(fa mo.Option[A], f func(A) mo.Option[B]) mo.Option[B] {
	if a, ok := fa.Get(); ok {
		return f(a)
	}
	return mo.None[B]()
}

// OptionFoldable is [Foldable] evidence for mo.Option.
type OptionFoldable[A any] struct{}

func (OptionFoldable[A]) Elems(fa mo.Option[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		if a, ok := fa.Get(); ok {
			yield(a)
		}
	}
}

// OptionFilterable is [Filterable] evidence for mo.Option.
type OptionFilterable[A any] struct{}

func (OptionFilterable[A]) Filter(fa mo.Option[A], keep func(A) bool) mo.Option[A] {
	if a, ok := fa.Get(); ok && keep(a) {
		return fa
	}
	return mo.None[A]()
}

// OptionFilterMapper is [FilterMapper] evidence for mo.Option.
type OptionFilterMapper[A, B any] struct{}

func (OptionFilterMapper[A, B]) FilterMap(fa mo.Option[A], f func(A) (B, bool)) mo.Option[B] {
	if a, ok := fa.Get(); ok {
		if b, keep := f(a); keep {
			return mo.Some(b)
		}
	}
	return mo.None[B]()
}

// OptionTraversable is [Traversable] evidence for mo.Option: a None
// traverses to the effect's pure None, a Some threads its single
// element through the effect.
type OptionTraversable[GB, GFB, A, B any] struct{}

func (OptionTraversable[GB, GFB, A, B]) Traverse(
	fa mo.Option[A],
	ap Applicative[GFB, GB, mo.Option[B], B],
	f func(A) GB,
) GFB {
	a, ok := fa.Get()
	if !ok {
		return ap.Pure(mo.None[B]())
	}
	return ap.Map2(ap.Pure(mo.None[B]()), f(a), func(_ mo.Option[B], b B) mo.Option[B] {
		return mo.Some(b)
	})
}

// OptionApplicative is [Applicative] evidence for mo.Option as the
// traversal effect G: any absent input makes the whole result absent.
type OptionApplicative[Acc, B any] struct{}

func (OptionApplicative[Acc, B]) Pure(acc Acc) mo.Option[Acc] {
	return mo.Some(acc)
}

func (OptionApplicative[Acc, B]) Map2(ga mo.Option[Acc], gb mo.Option[B], f func(Acc, B) Acc) mo.Option[Acc] {
	acc, ok := ga.Get()
	if !ok {
		return mo.None[Acc]()
	}
	b, ok := gb.Get()
	if !ok {
		return mo.None[Acc]()
	}
	return mo.Some(f(acc, b))
}
