package log

import (
	"capnproto.org/go/capnp/v3"
)

type OverlayOut capnp.Struct

var overlayOutSize = capnp.ObjectSize{DataSize: 16, PointerCount: 7}

func (s OverlayOut) FrameId() uint32 {
	return capnp.Struct(s).Uint32(0)
}

func (s OverlayOut) SetFrameId(v uint32) {
	capnp.Struct(s).SetUint32(0, v)
}

func (s OverlayOut) WideCam() bool {
	return capnp.Struct(s).Bit(32)
}

func (s OverlayOut) SetWideCam(v bool) {
	capnp.Struct(s).SetBit(32, v)
}

func (s OverlayOut) LockQuality() float32 {
	return float32Field(capnp.Struct(s), 8)
}

func (s OverlayOut) SetLockQuality(v float32) {
	setFloat32Field(capnp.Struct(s), 8, v)
}

func (s OverlayOut) FrameMatrix() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 0)
}

func (s OverlayOut) NewFrameMatrix(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 0, n)
}

func (s OverlayOut) LaneLines() (OverlayOut_Polygon_List, error) {
	p, err := capnp.Struct(s).Ptr(1)
	return OverlayOut_Polygon_List(p.List()), err
}

func (s OverlayOut) NewLaneLines(n int32) (OverlayOut_Polygon_List, error) {
	l, err := newCompositeListField(capnp.Struct(s), 1, polygonSize, n)
	return OverlayOut_Polygon_List(l), err
}

func (s OverlayOut) RoadEdges() (OverlayOut_Polygon_List, error) {
	p, err := capnp.Struct(s).Ptr(2)
	return OverlayOut_Polygon_List(p.List()), err
}

func (s OverlayOut) NewRoadEdges(n int32) (OverlayOut_Polygon_List, error) {
	l, err := newCompositeListField(capnp.Struct(s), 2, polygonSize, n)
	return OverlayOut_Polygon_List(l), err
}

func (s OverlayOut) Path() (OverlayOut_Polygon, error) {
	p, err := capnp.Struct(s).Ptr(3)
	return OverlayOut_Polygon(p.Struct()), err
}

func (s OverlayOut) NewPath() (OverlayOut_Polygon, error) {
	st, err := newStructField(capnp.Struct(s), 3, polygonSize)
	return OverlayOut_Polygon(st), err
}

func (s OverlayOut) LockOns() (OverlayOut_LockOnBox_List, error) {
	p, err := capnp.Struct(s).Ptr(4)
	return OverlayOut_LockOnBox_List(p.List()), err
}

func (s OverlayOut) NewLockOns(n int32) (OverlayOut_LockOnBox_List, error) {
	l, err := newCompositeListField(capnp.Struct(s), 4, lockOnBoxSize, n)
	return OverlayOut_LockOnBox_List(l), err
}

func (s OverlayOut) Leads() (OverlayOut_LeadMarker_List, error) {
	p, err := capnp.Struct(s).Ptr(5)
	return OverlayOut_LeadMarker_List(p.List()), err
}

func (s OverlayOut) NewLeads(n int32) (OverlayOut_LeadMarker_List, error) {
	l, err := newCompositeListField(capnp.Struct(s), 5, leadMarkerSize, n)
	return OverlayOut_LeadMarker_List(l), err
}

func (s OverlayOut) Experimental() bool {
	return capnp.Struct(s).Bit(33)
}

func (s OverlayOut) SetExperimental(v bool) {
	capnp.Struct(s).SetBit(33, v)
}

func (s OverlayOut) PathGradient() (OverlayOut_GradientStop_List, error) {
	p, err := capnp.Struct(s).Ptr(6)
	return OverlayOut_GradientStop_List(p.List()), err
}

func (s OverlayOut) NewPathGradient(n int32) (OverlayOut_GradientStop_List, error) {
	l, err := newCompositeListField(capnp.Struct(s), 6, gradientStopSize, n)
	return OverlayOut_GradientStop_List(l), err
}

type OverlayOut_GradientStop capnp.Struct

type OverlayOut_GradientStop_List = capnp.StructList[OverlayOut_GradientStop]

var gradientStopSize = capnp.ObjectSize{DataSize: 24, PointerCount: 0}

func (s OverlayOut_GradientStop) Pos() float32 {
	return float32Field(capnp.Struct(s), 0)
}

func (s OverlayOut_GradientStop) SetPos(v float32) {
	setFloat32Field(capnp.Struct(s), 0, v)
}

func (s OverlayOut_GradientStop) Hue() float32 {
	return float32Field(capnp.Struct(s), 4)
}

func (s OverlayOut_GradientStop) SetHue(v float32) {
	setFloat32Field(capnp.Struct(s), 4, v)
}

func (s OverlayOut_GradientStop) Saturation() float32 {
	return float32Field(capnp.Struct(s), 8)
}

func (s OverlayOut_GradientStop) SetSaturation(v float32) {
	setFloat32Field(capnp.Struct(s), 8, v)
}

func (s OverlayOut_GradientStop) Lightness() float32 {
	return float32Field(capnp.Struct(s), 12)
}

func (s OverlayOut_GradientStop) SetLightness(v float32) {
	setFloat32Field(capnp.Struct(s), 12, v)
}

func (s OverlayOut_GradientStop) Alpha() float32 {
	return float32Field(capnp.Struct(s), 16)
}

func (s OverlayOut_GradientStop) SetAlpha(v float32) {
	setFloat32Field(capnp.Struct(s), 16, v)
}

type OverlayOut_Polygon capnp.Struct

type OverlayOut_Polygon_List = capnp.StructList[OverlayOut_Polygon]

var polygonSize = capnp.ObjectSize{DataSize: 8, PointerCount: 1}

func (s OverlayOut_Polygon) Alpha() float32 {
	return float32Field(capnp.Struct(s), 0)
}

func (s OverlayOut_Polygon) SetAlpha(v float32) {
	setFloat32Field(capnp.Struct(s), 0, v)
}

func (s OverlayOut_Polygon) Points() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 0)
}

func (s OverlayOut_Polygon) NewPoints(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 0, n)
}

type OverlayOut_Label uint16

const (
	OverlayOut_Label_none       OverlayOut_Label = 0
	OverlayOut_Label_topLeft    OverlayOut_Label = 1
	OverlayOut_Label_bottomLeft OverlayOut_Label = 2
)

type OverlayOut_Meter uint16

const (
	OverlayOut_Meter_none  OverlayOut_Meter = 0
	OverlayOut_Meter_accel OverlayOut_Meter = 1
	OverlayOut_Meter_decel OverlayOut_Meter = 2
)

type OverlayOut_LockOnBox capnp.Struct

type OverlayOut_LockOnBox_List = capnp.StructList[OverlayOut_LockOnBox]

var lockOnBoxSize = capnp.ObjectSize{DataSize: 48, PointerCount: 3}

func (s OverlayOut_LockOnBox) Slot() uint16 {
	return capnp.Struct(s).Uint16(0)
}

func (s OverlayOut_LockOnBox) SetSlot(v uint16) {
	capnp.Struct(s).SetUint16(0, v)
}

func (s OverlayOut_LockOnBox) Diverged() bool {
	return capnp.Struct(s).Bit(16)
}

func (s OverlayOut_LockOnBox) SetDiverged(v bool) {
	capnp.Struct(s).SetBit(16, v)
}

func (s OverlayOut_LockOnBox) HasPointer() bool {
	return capnp.Struct(s).Bit(17)
}

func (s OverlayOut_LockOnBox) SetHasPointer(v bool) {
	capnp.Struct(s).SetBit(17, v)
}

func (s OverlayOut_LockOnBox) HasTicks() bool {
	return capnp.Struct(s).Bit(18)
}

func (s OverlayOut_LockOnBox) SetHasTicks(v bool) {
	capnp.Struct(s).SetBit(18, v)
}

func (s OverlayOut_LockOnBox) Label() OverlayOut_Label {
	return OverlayOut_Label(capnp.Struct(s).Uint16(4))
}

func (s OverlayOut_LockOnBox) SetLabel(v OverlayOut_Label) {
	capnp.Struct(s).SetUint16(4, uint16(v))
}

func (s OverlayOut_LockOnBox) Meter() OverlayOut_Meter {
	return OverlayOut_Meter(capnp.Struct(s).Uint16(6))
}

func (s OverlayOut_LockOnBox) SetMeter(v OverlayOut_Meter) {
	capnp.Struct(s).SetUint16(6, uint16(v))
}

func (s OverlayOut_LockOnBox) X() float32 {
	return float32Field(capnp.Struct(s), 8)
}

func (s OverlayOut_LockOnBox) SetX(v float32) {
	setFloat32Field(capnp.Struct(s), 8, v)
}

func (s OverlayOut_LockOnBox) Y() float32 {
	return float32Field(capnp.Struct(s), 12)
}

func (s OverlayOut_LockOnBox) SetY(v float32) {
	setFloat32Field(capnp.Struct(s), 12, v)
}

func (s OverlayOut_LockOnBox) Width() float32 {
	return float32Field(capnp.Struct(s), 16)
}

func (s OverlayOut_LockOnBox) SetWidth(v float32) {
	setFloat32Field(capnp.Struct(s), 16, v)
}

func (s OverlayOut_LockOnBox) Height() float32 {
	return float32Field(capnp.Struct(s), 20)
}

func (s OverlayOut_LockOnBox) SetHeight(v float32) {
	setFloat32Field(capnp.Struct(s), 20, v)
}

func (s OverlayOut_LockOnBox) Alpha() float32 {
	return float32Field(capnp.Struct(s), 24)
}

func (s OverlayOut_LockOnBox) SetAlpha(v float32) {
	setFloat32Field(capnp.Struct(s), 24, v)
}

func (s OverlayOut_LockOnBox) Quality() float32 {
	return float32Field(capnp.Struct(s), 28)
}

func (s OverlayOut_LockOnBox) SetQuality(v float32) {
	setFloat32Field(capnp.Struct(s), 28, v)
}

func (s OverlayOut_LockOnBox) TickLength() float32 {
	return float32Field(capnp.Struct(s), 32)
}

func (s OverlayOut_LockOnBox) SetTickLength(v float32) {
	setFloat32Field(capnp.Struct(s), 32, v)
}

func (s OverlayOut_LockOnBox) Distance() float32 {
	return float32Field(capnp.Struct(s), 36)
}

func (s OverlayOut_LockOnBox) SetDistance(v float32) {
	setFloat32Field(capnp.Struct(s), 36, v)
}

func (s OverlayOut_LockOnBox) Accel() float32 {
	return float32Field(capnp.Struct(s), 40)
}

func (s OverlayOut_LockOnBox) SetAccel(v float32) {
	setFloat32Field(capnp.Struct(s), 40, v)
}

func (s OverlayOut_LockOnBox) Pointer() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 0)
}

func (s OverlayOut_LockOnBox) NewPointer(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 0, n)
}

func (s OverlayOut_LockOnBox) MeterPoints() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 1)
}

func (s OverlayOut_LockOnBox) NewMeterPoints(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 1, n)
}

func (s OverlayOut_LockOnBox) Ticks() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 2)
}

func (s OverlayOut_LockOnBox) NewTicks(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 2, n)
}

type OverlayOut_LeadMarker capnp.Struct

type OverlayOut_LeadMarker_List = capnp.StructList[OverlayOut_LeadMarker]

var leadMarkerSize = capnp.ObjectSize{DataSize: 16, PointerCount: 2}

func (s OverlayOut_LeadMarker) X() float32 {
	return float32Field(capnp.Struct(s), 0)
}

func (s OverlayOut_LeadMarker) SetX(v float32) {
	setFloat32Field(capnp.Struct(s), 0, v)
}

func (s OverlayOut_LeadMarker) Y() float32 {
	return float32Field(capnp.Struct(s), 4)
}

func (s OverlayOut_LeadMarker) SetY(v float32) {
	setFloat32Field(capnp.Struct(s), 4, v)
}

func (s OverlayOut_LeadMarker) Size() float32 {
	return float32Field(capnp.Struct(s), 8)
}

func (s OverlayOut_LeadMarker) SetSize(v float32) {
	setFloat32Field(capnp.Struct(s), 8, v)
}

func (s OverlayOut_LeadMarker) FillAlpha() float32 {
	return float32Field(capnp.Struct(s), 12)
}

func (s OverlayOut_LeadMarker) SetFillAlpha(v float32) {
	setFloat32Field(capnp.Struct(s), 12, v)
}

func (s OverlayOut_LeadMarker) Glow() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 0)
}

func (s OverlayOut_LeadMarker) NewGlow(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 0, n)
}

func (s OverlayOut_LeadMarker) Chevron() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 1)
}

func (s OverlayOut_LeadMarker) NewChevron(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 1, n)
}

type OverlayIn capnp.Struct

type OverlayInputType uint16

const (
	OverlayInputType_reloadSettings            OverlayInputType = 0
	OverlayInputType_saveSettings              OverlayInputType = 1
	OverlayInputType_loadDefaultSettings       OverlayInputType = 2
	OverlayInputType_setLogLevel               OverlayInputType = 3
	OverlayInputType_setTabletProfile          OverlayInputType = 4
	OverlayInputType_setPathAllowInvert        OverlayInputType = 5
	OverlayInputType_setLockOnMinProb          OverlayInputType = 6
	OverlayInputType_setLockOnStaleResetFrames OverlayInputType = 7
	OverlayInputType_setWideCameraAvailable    OverlayInputType = 8
	OverlayInputType_setWideCameraOnly         OverlayInputType = 9
	OverlayInputType_setStaleTimeout           OverlayInputType = 10
)

var overlayInSize = capnp.ObjectSize{DataSize: 16, PointerCount: 1}

func (s OverlayIn) Type() OverlayInputType {
	return OverlayInputType(capnp.Struct(s).Uint16(0))
}

func (s OverlayIn) SetType(v OverlayInputType) {
	capnp.Struct(s).SetUint16(0, uint16(v))
}

func (s OverlayIn) Bool() bool {
	return capnp.Struct(s).Bit(16)
}

func (s OverlayIn) SetBool(v bool) {
	capnp.Struct(s).SetBit(16, v)
}

func (s OverlayIn) Float() float32 {
	return float32Field(capnp.Struct(s), 4)
}

func (s OverlayIn) SetFloat(v float32) {
	setFloat32Field(capnp.Struct(s), 4, v)
}

func (s OverlayIn) Int() int32 {
	return int32(capnp.Struct(s).Uint32(8))
}

func (s OverlayIn) SetInt(v int32) {
	capnp.Struct(s).SetUint32(8, uint32(v))
}

func (s OverlayIn) Str() (string, error) {
	p, err := capnp.Struct(s).Ptr(0)
	return p.Text(), err
}

func (s OverlayIn) SetStr(v string) error {
	return capnp.Struct(s).SetText(0, v)
}
