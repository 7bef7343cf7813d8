// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dlift_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/dlift"
)

type event struct {
	ID   int64  `cbor:"1,keyasint"`
	Name string `cbor:"2,keyasint"`
}

func TestCBORCoderRoundTrip(t *testing.T) {
	c := dlift.CBORCoder[event]{}
	in := event{ID: 7, Name: "seven"}
	b, err := c.Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := c.Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}
}

func TestRecodePreservesRecords(t *testing.T) {
	eng := dlift.NewLocal()
	in := []event{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	d := dlift.Hold(eng, in...)
	got := dlift.Collect(dlift.Recode(d, dlift.CBORCoder[event]{}))
	if !slices.Equal(got, in) {
		t.Fatalf("got %v, want %v", got, in)
	}
}

func TestRecodePanicsOnUncodableRecord(t *testing.T) {
	eng := dlift.NewLocal()
	d := dlift.Hold(eng, func() {})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for uncodable record")
		}
	}()
	dlift.Recode(d, dlift.CBORCoder[func()]{})
}
