// Package log holds capnp accessors for the services in overlay.capnp. Struct
// layouts follow the schema field order.
package log

import (
	"math"

	"capnproto.org/go/capnp/v3"
)

func float32Field(s capnp.Struct, off capnp.DataOffset) float32 {
	return math.Float32frombits(s.Uint32(off))
}

func setFloat32Field(s capnp.Struct, off capnp.DataOffset, v float32) {
	s.SetUint32(off, math.Float32bits(v))
}

func float32ListField(s capnp.Struct, i uint16) (capnp.Float32List, error) {
	p, err := s.Ptr(i)
	return capnp.Float32List(p.List()), err
}

func newFloat32ListField(s capnp.Struct, i uint16, n int32) (capnp.Float32List, error) {
	l, err := capnp.NewFloat32List(s.Segment(), n)
	if err != nil {
		return l, err
	}
	err = s.SetPtr(i, l.ToPtr())
	return l, err
}

func newStructField(s capnp.Struct, i uint16, sz capnp.ObjectSize) (capnp.Struct, error) {
	ss, err := capnp.NewStruct(s.Segment(), sz)
	if err != nil {
		return ss, err
	}
	err = s.SetPtr(i, ss.ToPtr())
	return ss, err
}

func newCompositeListField(s capnp.Struct, i uint16, sz capnp.ObjectSize, n int32) (capnp.List, error) {
	l, err := capnp.NewCompositeList(s.Segment(), sz, n)
	if err != nil {
		return l, err
	}
	err = s.SetPtr(i, l.ToPtr())
	return l, err
}
