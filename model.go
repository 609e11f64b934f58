package main

import (
	"time"

	"github.com/pkg/errors"
	"pfeifer.dev/overlayd/cereal"
	"pfeifer.dev/overlayd/cereal/log"
)

func (s *State) UpdateModel(model log.ModelDataV2, now time.Time) error {
	if err := cereal.DecodeModel(model, &s.Model); err != nil {
		return errors.Wrap(err, "could not decode modelV2")
	}
	s.ModelUpdate.UpdateAt(now)
	s.newModel = true
	return nil
}

func (s *State) UpdateCalibration(calib log.LiveCalibrationData, now time.Time) error {
	c, err := cereal.DecodeCalibration(calib)
	if err != nil {
		return errors.Wrap(err, "could not decode liveCalibration")
	}
	s.Calibration = c
	s.CalibrationUpdate.UpdateAt(now)
	return nil
}

func (s *State) UpdateRadar(radar log.RadarState, now time.Time) error {
	if err := cereal.DecodeRadar(radar, &s.Radar); err != nil {
		return errors.Wrap(err, "could not decode radarState")
	}
	s.RadarUpdate.UpdateAt(now)
	return nil
}
