package log

import (
	"capnproto.org/go/capnp/v3"
)

type LiveCalibrationData capnp.Struct

type LiveCalibrationData_Status uint16

const (
	LiveCalibrationData_Status_uncalibrated  LiveCalibrationData_Status = 0
	LiveCalibrationData_Status_calibrated    LiveCalibrationData_Status = 1
	LiveCalibrationData_Status_invalid       LiveCalibrationData_Status = 2
	LiveCalibrationData_Status_recalibrating LiveCalibrationData_Status = 3
)

var liveCalibrationDataSize = capnp.ObjectSize{DataSize: 8, PointerCount: 2}

func (s LiveCalibrationData) CalStatus() LiveCalibrationData_Status {
	return LiveCalibrationData_Status(capnp.Struct(s).Uint16(0))
}

func (s LiveCalibrationData) SetCalStatus(v LiveCalibrationData_Status) {
	capnp.Struct(s).SetUint16(0, uint16(v))
}

func (s LiveCalibrationData) RpyCalib() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 0)
}

func (s LiveCalibrationData) NewRpyCalib(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 0, n)
}

func (s LiveCalibrationData) WideFromDeviceEuler() (capnp.Float32List, error) {
	return float32ListField(capnp.Struct(s), 1)
}

func (s LiveCalibrationData) NewWideFromDeviceEuler(n int32) (capnp.Float32List, error) {
	return newFloat32ListField(capnp.Struct(s), 1, n)
}
