package log

import (
	"strconv"

	"capnproto.org/go/capnp/v3"
	"github.com/pkg/errors"
)

type Event capnp.Struct

type Event_Which uint16

const (
	Event_Which_modelV2         Event_Which = 0
	Event_Which_liveCalibration Event_Which = 1
	Event_Which_radarState      Event_Which = 2
	Event_Which_carState        Event_Which = 3
	Event_Which_selfdriveState  Event_Which = 4
	Event_Which_overlayOut      Event_Which = 5
	Event_Which_overlayIn       Event_Which = 6
)

func (w Event_Which) String() string {
	switch w {
	case Event_Which_modelV2:
		return "modelV2"
	case Event_Which_liveCalibration:
		return "liveCalibration"
	case Event_Which_radarState:
		return "radarState"
	case Event_Which_carState:
		return "carState"
	case Event_Which_selfdriveState:
		return "selfdriveState"
	case Event_Which_overlayOut:
		return "overlayOut"
	case Event_Which_overlayIn:
		return "overlayIn"
	}
	return "Event_Which(" + strconv.FormatUint(uint64(w), 10) + ")"
}

var eventSize = capnp.ObjectSize{DataSize: 16, PointerCount: 1}

func NewEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewStruct(s, eventSize)
	return Event(st), err
}

func NewRootEvent(s *capnp.Segment) (Event, error) {
	st, err := capnp.NewRootStruct(s, eventSize)
	return Event(st), err
}

func ReadRootEvent(msg *capnp.Message) (Event, error) {
	root, err := msg.Root()
	return Event(root.Struct()), err
}

func (s Event) Which() Event_Which {
	return Event_Which(capnp.Struct(s).Uint16(10))
}

func (s Event) LogMonoTime() uint64 {
	return capnp.Struct(s).Uint64(0)
}

func (s Event) SetLogMonoTime(v uint64) {
	capnp.Struct(s).SetUint64(0, v)
}

func (s Event) Valid() bool {
	return capnp.Struct(s).Bit(64)
}

func (s Event) SetValid(v bool) {
	capnp.Struct(s).SetBit(64, v)
}

func (s Event) body(which Event_Which) (capnp.Struct, error) {
	if s.Which() != which {
		return capnp.Struct{}, errors.Errorf("event holds %s, not %s", s.Which(), which)
	}
	p, err := capnp.Struct(s).Ptr(0)
	return p.Struct(), err
}

func (s Event) newBody(which Event_Which, sz capnp.ObjectSize) (capnp.Struct, error) {
	capnp.Struct(s).SetUint16(10, uint16(which))
	return newStructField(capnp.Struct(s), 0, sz)
}

func (s Event) ModelV2() (ModelDataV2, error) {
	st, err := s.body(Event_Which_modelV2)
	return ModelDataV2(st), err
}

func (s Event) NewModelV2() (ModelDataV2, error) {
	st, err := s.newBody(Event_Which_modelV2, modelDataV2Size)
	return ModelDataV2(st), err
}

func (s Event) LiveCalibration() (LiveCalibrationData, error) {
	st, err := s.body(Event_Which_liveCalibration)
	return LiveCalibrationData(st), err
}

func (s Event) NewLiveCalibration() (LiveCalibrationData, error) {
	st, err := s.newBody(Event_Which_liveCalibration, liveCalibrationDataSize)
	return LiveCalibrationData(st), err
}

func (s Event) RadarState() (RadarState, error) {
	st, err := s.body(Event_Which_radarState)
	return RadarState(st), err
}

func (s Event) NewRadarState() (RadarState, error) {
	st, err := s.newBody(Event_Which_radarState, radarStateSize)
	return RadarState(st), err
}

func (s Event) CarState() (CarState, error) {
	st, err := s.body(Event_Which_carState)
	return CarState(st), err
}

func (s Event) NewCarState() (CarState, error) {
	st, err := s.newBody(Event_Which_carState, carStateSize)
	return CarState(st), err
}

func (s Event) SelfdriveState() (SelfdriveState, error) {
	st, err := s.body(Event_Which_selfdriveState)
	return SelfdriveState(st), err
}

func (s Event) NewSelfdriveState() (SelfdriveState, error) {
	st, err := s.newBody(Event_Which_selfdriveState, selfdriveStateSize)
	return SelfdriveState(st), err
}

func (s Event) OverlayOut() (OverlayOut, error) {
	st, err := s.body(Event_Which_overlayOut)
	return OverlayOut(st), err
}

func (s Event) NewOverlayOut() (OverlayOut, error) {
	st, err := s.newBody(Event_Which_overlayOut, overlayOutSize)
	return OverlayOut(st), err
}

func (s Event) OverlayIn() (OverlayIn, error) {
	st, err := s.body(Event_Which_overlayIn)
	return OverlayIn(st), err
}

func (s Event) NewOverlayIn() (OverlayIn, error) {
	st, err := s.newBody(Event_Which_overlayIn, overlayInSize)
	return OverlayIn(st), err
}
