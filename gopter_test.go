// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dlift_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/samber/mo"

	"code.hybscloud.com/dlift"
)

// Generator-driven law checks complementing the seeded loops in
// law_test.go.

func TestGopterSliceLaws(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	eng := dlift.NewLocal()

	properties.Property("map identity preserves records", prop.ForAll(
		func(xs []int) bool {
			d := dlift.Hold(eng, xs)
			got := dlift.Collect(dlift.MapInner(d, dlift.SliceFunctor[int, int]{}, func(x int) int {
				return x
			}))
			return slices.Equal(got[0], xs)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("flatten emits one record per element", prop.ForAll(
		func(xs []int) bool {
			d := dlift.Hold(eng, xs, xs)
			got := dlift.Collect(dlift.Flatten(d, dlift.SliceFoldable[int]{}))
			return len(got) == 2*len(xs)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("filter inside is idempotent", prop.ForAll(
		func(xs []int) bool {
			even := func(x int) bool { return x%2 == 0 }
			fn := dlift.SliceFilterable[int]{}
			d := dlift.Hold(eng, xs)
			once := dlift.Collect(dlift.FilterInner(d, fn, even))
			twice := dlift.Collect(dlift.FilterInner(dlift.FilterInner(d, fn, even), fn, even))
			return slices.Equal(once[0], twice[0])
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("min and max agree with sorted extremes", prop.ForAll(
		func(xs []int) bool {
			d := dlift.Hold(eng, xs)
			minGot := dlift.Collect(dlift.MinInner(d, dlift.SliceFoldable[int]{}, dlift.NaturalOrder[int]()))[0]
			maxGot := dlift.Collect(dlift.MaxInner(d, dlift.SliceFoldable[int]{}, dlift.NaturalOrder[int]()))[0]
			if len(xs) == 0 {
				return !minGot.IsPresent() && !maxGot.IsPresent()
			}
			return minGot == mo.Some(slices.Min(xs)) && maxGot == mo.Some(slices.Max(xs))
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("traverse succeeds iff no element is absent", prop.ForAll(
		func(xs []int) bool {
			opts := make([]mo.Option[int], len(xs))
			hasNone := false
			for i, x := range xs {
				if x%5 == 0 {
					opts[i] = mo.None[int]()
					hasNone = true
				} else {
					opts[i] = mo.Some(x)
				}
			}
			d := dlift.Hold(eng, opts)
			got := dlift.Collect(dlift.Traverse(
				d,
				dlift.SliceTraversable[mo.Option[int], mo.Option[[]int], mo.Option[int], int]{},
				dlift.OptionApplicative[[]int, int]{},
				func(o mo.Option[int]) mo.Option[int] { return o },
			))[0]
			return got.IsPresent() != hasNone
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}
