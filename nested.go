// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dlift

// Lift operations over a dataset of doubly-wrapped records F[G[A]].

// MapNested applies f through both container layers by composing the
// two Functor evidences. Record-preserving.
func MapNested[FGA, FGB, GA, GB, A, B any](
	d Dataset[FGA],
	outer Functor[FGA, FGB, GA, GB],
	inner Functor[GA, GB, A, B],
	f func(A) B,
) Dataset[FGB] {
	return MapInner(d, outer, func(ga GA) GB {
		return inner.Map(ga, f)
	})
}

// Sequence swaps the two effect layers of each record, turning F[G[A]]
// into G[F[A]]. It is [Traverse] with the identity function; no
// independent algorithm. Record-preserving.
func Sequence[FGA, FA, GA, GFA, A any](
	d Dataset[FGA],
	trav Traversable[FGA, FA, GA, GFA, GA, A],
	ap Applicative[GFA, GA, FA, A],
) Dataset[GFA] {
	return Traverse(d, trav, ap, func(ga GA) GA { return ga })
}
