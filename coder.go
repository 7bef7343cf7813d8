// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dlift

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Coder encodes and decodes records of one element type for distributed
// execution. Engines that move records between processes require a coder
// per concrete element type; the encoding itself is opaque to this
// package.
type Coder[T any] interface {
	Encode(v T) ([]byte, error)
	Decode(b []byte) (T, error)
}

// CBORCoder is a [Coder] backed by canonical CBOR encoding.
// The element type must be CBOR-serializable.
type CBORCoder[T any] struct{}

// Encode implements [Coder].
func (CBORCoder[T]) Encode(v T) ([]byte, error) { return cbor.Marshal(v) }

// Decode implements [Coder].
func (CBORCoder[T]) Decode(b []byte) (T, error) {
	var v T
	err := cbor.Unmarshal(b, &v)
	return v, err
}

// Recode derives a dataset whose every record has been round-tripped
// through c, surfacing the record loss a real serialization boundary
// would introduce. Record-preserving.
//
// A coder failure panics: record transforms carry no error channel, and
// the engine's failure policy governs what happens next.
func Recode[T any](d Dataset[T], c Coder[T]) Dataset[T] {
	return mapRecords(d, func(v T) T {
		b, err := c.Encode(v)
		if err != nil {
			panic(fmt.Errorf("dlift: encode record: %w", err))
		}
		u, err := c.Decode(b)
		if err != nil {
			panic(fmt.Errorf("dlift: decode record: %w", err))
		}
		return u
	})
}
