package main

import (
	"time"

	"pfeifer.dev/overlayd/cereal/log"
	ms "pfeifer.dev/overlayd/settings"
	"pfeifer.dev/overlayd/utils"
)

type CarState struct {
	VEgo                float32
	ExperimentalMode    bool
	LongitudinalControl bool
	UpdateTime          utils.UpdateTracker
	SelfdriveUpdateTime utils.UpdateTracker
}

func (c *CarState) Init() {
	c.UpdateTime.Init(ms.FPS_WINDOW)
	c.SelfdriveUpdateTime.Init(ms.FPS_WINDOW)
}

func (c *CarState) Update(carData log.CarState, now time.Time) {
	c.VEgo = carData.VEgo()
	c.UpdateTime.UpdateAt(now)
}

func (c *CarState) UpdateSelfdrive(selfdrive log.SelfdriveState, now time.Time) {
	c.ExperimentalMode = selfdrive.ExperimentalMode()
	c.LongitudinalControl = selfdrive.OpenpilotLongitudinalControl()
	c.SelfdriveUpdateTime.UpdateAt(now)
}

// Experimental falls back to off once selfdriveState goes quiet.
func (c *CarState) Experimental(now time.Time, timeout time.Duration) bool {
	return c.ExperimentalMode && c.SelfdriveUpdateTime.Alive(now, timeout)
}

func (c *CarState) Longitudinal(now time.Time, timeout time.Duration) bool {
	return c.LongitudinalControl && c.SelfdriveUpdateTime.Alive(now, timeout)
}
