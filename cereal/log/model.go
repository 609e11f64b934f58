package log

import (
	"capnproto.org/go/capnp/v3"
)

type ModelDataV2 capnp.Struct

var modelDataV2Size = capnp.ObjectSize{DataSize: 8, PointerCount: 7}

func (s ModelDataV2) FrameId() uint32 {
	return capnp.Struct(s).Uint32(0)
}

func (s ModelDataV2) SetFrameId(v uint32) {
	capnp.Struct(s).SetUint32(0, v)
}

func (s ModelDataV2) Position() (ModelDataV2_XYZTData, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return ModelDataV2_XYZTData(p.Struct()), err
}

func (s ModelDataV2) HasPosition() bool {
	return capnp.Struct(s).HasPtr(0)
}

func (s ModelDataV2) NewPosition() (ModelDataV2_XYZTData, error) {
	st, err := newStructField(capnp.Struct(s), 0, xyztDataSize)
	return ModelDataV2_XYZTData(st), err
}

func (s ModelDataV2) LaneLines() (ModelDataV2_XYZTData_List, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return ModelDataV2_XYZTData_List(p.List()), err
}

func (s ModelDataV2) NewLaneLines(n int32) (ModelDataV2_XYZTData_List, error) {
	l, err := newCompositeListField(capnp.Struct(s), 1, xyztDataSize, n)
	return ModelDataV2_XYZTData_List(l), err
}

func (s ModelDataV2) LaneLineProbs() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 2)
}

func (s ModelDataV2) NewLaneLineProbs(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 2, n)
}

func (s ModelDataV2) RoadEdges() (ModelDataV2_XYZTData_List, error) {
	p, err := capnp.Struct(s).Ptr(3)
	return ModelDataV2_XYZTData_List(p.List()), err
}

func (s ModelDataV2) NewRoadEdges(n int32) (ModelDataV2_XYZTData_List, error) {
	l, err := newCompositeListField(capnp.Struct(s), 3, xyztDataSize, n)
	return ModelDataV2_XYZTData_List(l), err
}

func (s ModelDataV2) RoadEdgeStds() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 4)
}

func (s ModelDataV2) NewRoadEdgeStds(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 4, n)
}

func (s ModelDataV2) LeadsV3() (ModelDataV2_LeadDataV3_List, error) {
	p, err := capnp.Struct(s).Ptr(5)
	return ModelDataV2_LeadDataV3_List(p.List()), err
}

func (s ModelDataV2) NewLeadsV3(n int32) (ModelDataV2_LeadDataV3_List, error) {
	l, err := newCompositeListField(capnp.Struct(s), 5, leadDataV3Size, n)
	return ModelDataV2_LeadDataV3_List(l), err
}

func (s ModelDataV2) Acceleration() (ModelDataV2_XYZTData, error) {
	p, err := capnp.Struct(s).Ptr(6)
	return ModelDataV2_XYZTData(p.Struct()), err
}

func (s ModelDataV2) HasAcceleration() bool {
	return capnp.Struct(s).HasPtr(6)
}

func (s ModelDataV2) NewAcceleration() (ModelDataV2_XYZTData, error) {
	st, err := newStructField(capnp.Struct(s), 6, xyztDataSize)
	return ModelDataV2_XYZTData(st), err
}

type ModelDataV2_XYZTData capnp.Struct

type ModelDataV2_XYZTData_List = capnp.StructList[ModelDataV2_XYZTData]

var xyztDataSize = capnp.ObjectSize{DataSize: 0, PointerCount: 4}

func (s ModelDataV2_XYZTData) X() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 0)
}

func (s ModelDataV2_XYZTData) NewX(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 0, n)
}

func (s ModelDataV2_XYZTData) Y() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 1)
}

func (s ModelDataV2_XYZTData) NewY(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 1, n)
}

func (s ModelDataV2_XYZTData) Z() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 2)
}

func (s ModelDataV2_XYZTData) NewZ(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 2, n)
}

func (s ModelDataV2_XYZTData) T() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 3)
}

func (s ModelDataV2_XYZTData) NewT(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 3, n)
}

type ModelDataV2_LeadDataV3 capnp.Struct

type ModelDataV2_LeadDataV3_List = capnp.StructList[ModelDataV2_LeadDataV3]

var leadDataV3Size = capnp.ObjectSize{DataSize: 8, PointerCount: 5}

func (s ModelDataV2_LeadDataV3) Prob() float32 {
	return float32Field(capnp.Struct(s), 0)
}

func (s ModelDataV2_LeadDataV3) SetProb(v float32) {
	setFloat32Field(capnp.Struct(s), 0, v)
}

func (s ModelDataV2_LeadDataV3) ProbTime() float32 {
	return float32Field(capnp.Struct(s), 4)
}

func (s ModelDataV2_LeadDataV3) SetProbTime(v float32) {
	setFloat32Field(capnp.Struct(s), 4, v)
}

func (s ModelDataV2_LeadDataV3) T() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 0)
}

func (s ModelDataV2_LeadDataV3) NewT(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 0, n)
}

func (s ModelDataV2_LeadDataV3) X() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 1)
}

func (s ModelDataV2_LeadDataV3) NewX(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 1, n)
}

func (s ModelDataV2_LeadDataV3) Y() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 2)
}

func (s ModelDataV2_LeadDataV3) NewY(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 2, n)
}

func (s ModelDataV2_LeadDataV3) V() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 3)
}

func (s ModelDataV2_LeadDataV3) NewV(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 3, n)
}

func (s ModelDataV2_LeadDataV3) A() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 4)
}

func (s ModelDataV2_LeadDataV3) NewA(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 4, n)
}
