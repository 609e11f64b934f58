package log

import (
	"capnproto.org/go/capnp/v3"
)

type RadarState capnp.Struct

var radarStateSize = capnp.ObjectSize{DataSize: 0, PointerCount: 2}

func (s RadarState) LeadOne() (RadarState_LeadData, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return RadarState_LeadData(p.Struct()), err
}

func (s RadarState) NewLeadOne() (RadarState_LeadData, error) {
	st, err := newStructField(capnp.Struct(s), 0, leadDataSize)
	return RadarState_LeadData(st), err
}

func (s RadarState) LeadTwo() (RadarState_LeadData, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return RadarState_LeadData(p.Struct()), err
}

func (s RadarState) NewLeadTwo() (RadarState_LeadData, error) {
	st, err := newStructField(capnp.Struct(s), 1, leadDataSize)
	return RadarState_LeadData(st), err
}

type RadarState_LeadData capnp.Struct

var leadDataSize = capnp.ObjectSize{DataSize: 24, PointerCount: 0}

func (s RadarState_LeadData) DRel() float32 {
	return float32Field(capnp.Struct(s), 0)
}

func (s RadarState_LeadData) SetDRel(v float32) {
	setFloat32Field(capnp.Struct(s), 0, v)
}

func (s RadarState_LeadData) YRel() float32 {
	return float32Field(capnp.Struct(s), 4)
}

func (s RadarState_LeadData) SetYRel(v float32) {
	setFloat32Field(capnp.Struct(s), 4, v)
}

func (s RadarState_LeadData) VRel() float32 {
	return float32Field(capnp.Struct(s), 8)
}

func (s RadarState_LeadData) SetVRel(v float32) {
	setFloat32Field(capnp.Struct(s), 8, v)
}

func (s RadarState_LeadData) ARel() float32 {
	return float32Field(capnp.Struct(s), 12)
}

func (s RadarState_LeadData) SetARel(v float32) {
	setFloat32Field(capnp.Struct(s), 12, v)
}

func (s RadarState_LeadData) Status() bool {
	return capnp.Struct(s).Bit(128)
}

func (s RadarState_LeadData) SetStatus(v bool) {
	capnp.Struct(s).SetBit(128, v)
}
