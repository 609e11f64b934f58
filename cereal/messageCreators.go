package cereal

import (
	"pfeifer.dev/overlayd/cereal/log"
)

func OverlayInCreator(evt log.Event) (log.OverlayIn, error) {
	return evt.NewOverlayIn()
}

func OverlayOutCreator(evt log.Event) (log.OverlayOut, error) {
	return evt.NewOverlayOut()
}

func ModelV2Creator(evt log.Event) (log.ModelDataV2, error) {
	return evt.NewModelV2()
}

func LiveCalibrationCreator(evt log.Event) (log.LiveCalibrationData, error) {
	return evt.NewLiveCalibration()
}

func RadarStateCreator(evt log.Event) (log.RadarState, error) {
	return evt.NewRadarState()
}

func CarStateCreator(evt log.Event) (log.CarState, error) {
	return evt.NewCarState()
}

func SelfdriveStateCreator(evt log.Event) (log.SelfdriveState, error) {
	return evt.NewSelfdriveState()
}
