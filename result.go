// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dlift

import "github.com/samber/mo"

// Capability instances for the success-or-error container [mo.Result],
// used chiefly as the traversal effect G when a per-element function can
// fail with an error rather than mere absence.

// ResultFunctor is [Functor] evidence for mo.Result.
type ResultFunctor[A, B any] struct{}

func (ResultFunctor[A, B]) Map(fa mo.Result[A], f func(A) B) mo.Result[B] {
	a, err := fa.Get()
	if err != nil {
		return mo.Err[B](err)
	}
	return mo.Ok(f(a))
}

// ResultApplicative is [Applicative] evidence for mo.Result as the
// traversal effect G: the first error encountered becomes the result's
// error.
type ResultApplicative[Acc, B any] struct{}

func (ResultApplicative[Acc, B]) Pure(acc Acc) mo.Result[Acc] {
	return mo.Ok(acc)
}

func (ResultApplicative[Acc, B]) Map2(ga mo.Result[Acc], gb mo.Result[B], f func(Acc, B) Acc) mo.Result[Acc] {
	acc, err := ga.Get()
	if err != nil {
		return mo.Err[Acc](err)
	}
	b, err := gb.Get()
	if err != nil {
		return mo.Err[Acc](err)
	}
	return mo.Ok(f(acc, b))
}
