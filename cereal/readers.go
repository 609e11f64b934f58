package cereal

import (
	"pfeifer.dev/overlayd/cereal/log"
)

func ModelV2Reader(evt log.Event) (log.ModelDataV2, error) {
	return evt.ModelV2()
}

func LiveCalibrationReader(evt log.Event) (log.LiveCalibrationData, error) {
	return evt.LiveCalibration()
}

func RadarStateReader(evt log.Event) (log.RadarState, error) {
	return evt.RadarState()
}

func CarStateReader(evt log.Event) (log.CarState, error) {
	return evt.CarState()
}

func SelfdriveStateReader(evt log.Event) (log.SelfdriveState, error) {
	return evt.SelfdriveState()
}

func OverlayInReader(evt log.Event) (log.OverlayIn, error) {
	return evt.OverlayIn()
}

func OverlayOutReader(evt log.Event) (log.OverlayOut, error) {
	return evt.OverlayOut()
}
