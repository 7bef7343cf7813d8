// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dlift_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/dlift"
)

func TestLocalMapPreservesOrder(t *testing.T) {
	eng := dlift.NewLocal()
	d := dlift.Hold(eng, 3, 1, 2)
	got := dlift.Collect(dlift.MapInner(
		dlift.MapInner(d, identityFunctor[int]{}, func(x int) int { return x }),
		identityFunctor[int]{},
		func(x int) int { return x * 10 },
	))
	if !slices.Equal(got, []int{30, 10, 20}) {
		t.Fatalf("got %v, want [30 10 20]", got)
	}
}

func TestLocalHoldEmpty(t *testing.T) {
	eng := dlift.NewLocal()
	d := dlift.Hold[int](eng)
	if got := dlift.Collect(d); len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestCollectRejectsForeignEngine(t *testing.T) {
	d := dlift.From[int](foreignEngine{}, nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-Local engine")
		}
	}()
	dlift.Collect(d)
}

func TestDatasetAccessors(t *testing.T) {
	eng := dlift.NewLocal()
	d := dlift.Hold(eng, 1)
	if d.Engine() != eng {
		t.Fatal("engine accessor lost the engine")
	}
	re := dlift.From[int](d.Engine(), d.Handle())
	if got := dlift.Collect(re); !slices.Equal(got, []int{1}) {
		t.Fatalf("got %v, want [1]", got)
	}
}

// identityFunctor treats a bare value as a one-element container of
// itself. It exists to exercise the engine without container noise.
type identityFunctor[A any] struct{}

func (identityFunctor[A]) Map(fa A, f func(A) A) A { return f(fa) }

// foreignEngine is a non-Local [dlift.Engine] for Collect's contract
// check.
type foreignEngine struct{}

func (foreignEngine) Map(src dlift.Handle, fn func(any) any) dlift.Handle { return src }

func (foreignEngine) Expand(src dlift.Handle, fn func(any, func(any))) dlift.Handle { return src }
