package log

import (
	"capnproto.org/go/capnp/v3"
)

type CarState capnp.Struct

var carStateSize = capnp.ObjectSize{DataSize: 8, PointerCount: 0}

func (s CarState) VEgo() float32 {
	return float32Field(capnp.Struct(s), 0)
}

func (s CarState) SetVEgo(v float32) {
	setFloat32Field(capnp.Struct(s), 0, v)
}

type SelfdriveState capnp.Struct

var selfdriveStateSize = capnp.ObjectSize{DataSize: 8, PointerCount: 0}

func (s SelfdriveState) Enabled() bool {
	return capnp.Struct(s).Bit(0)
}

func (s SelfdriveState) SetEnabled(v bool) {
	capnp.Struct(s).SetBit(0, v)
}

func (s SelfdriveState) ExperimentalMode() bool {
	return capnp.Struct(s).Bit(1)
}

func (s SelfdriveState) SetExperimentalMode(v bool) {
	capnp.Struct(s).SetBit(1, v)
}

func (s SelfdriveState) OpenpilotLongitudinalControl() bool {
	return capnp.Struct(s).Bit(2)
}

func (s SelfdriveState) SetOpenpilotLongitudinalControl(v bool) {
	capnp.Struct(s).SetBit(2, v)
}
