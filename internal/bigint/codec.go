package bigint

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// maxDecodeReserve bounds the storage reserved from a msgpack array header
// before any word has been read.
const maxDecodeReserve = 1 << 12

var (
	_ msgpack.CustomEncoder = (*Int)(nil)
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// EncodeMsgpack writes x as a two-element array: the sign flag followed by
// the magnitude words, least significant first.
func (x *Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	d := x.words()
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeBool(x.IsNeg()); err != nil {
		return err
	}
	if err := enc.EncodeArrayLen(len(d)); err != nil {
		return err
	}
	for _, w := range d {
		if err := enc.EncodeUint(w); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack reads a value written by EncodeMsgpack. The result is
// canonicalized, so non-canonical input (leading zero words, negative zero)
// is accepted.
func (z *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("bigint: msgpack array has %d elements, want 2", n)
	}
	neg, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	m, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if m <= 0 {
		z.SetUint64(0, false)
		return nil
	}
	// m is untrusted; storage grows only as words arrive.
	z.reserve(min(m, maxDecodeReserve))
	z.digits = z.digits[:0]
	for range m {
		w, err := dec.DecodeUint64()
		if err != nil {
			z.SetUint64(0, false)
			return err
		}
		z.push(w)
	}
	z.neg = neg
	z.norm()
	return nil
}
