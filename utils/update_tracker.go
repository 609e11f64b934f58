package utils

import (
	"time"

	m "pfeifer.dev/overlayd/math"
)

// UpdateTracker records when a service last produced a message and how often it
// does so.
type UpdateTracker struct {
	LastTime time.Time
	Time     time.Time
	DiffMA   m.MovingAverage
	Updated  bool
}

func (u *UpdateTracker) Init(maLength int) {
	u.LastTime = time.Now()
	u.Time = u.LastTime
	u.Updated = false
	u.DiffMA.Init(maLength)
}

func (u *UpdateTracker) Update() {
	u.UpdateAt(time.Now())
}

func (u *UpdateTracker) UpdateAt(now time.Time) {
	u.LastTime = u.Time
	u.Time = now
	if u.Updated {
		u.DiffMA.Update(u.Time.Sub(u.LastTime).Seconds())
	}
	u.Updated = true
}

// Alive reports whether an update arrived within timeout of now.
func (u *UpdateTracker) Alive(now time.Time, timeout time.Duration) bool {
	return u.Updated && now.Sub(u.Time) < timeout
}

// Frequency is the average update rate in Hz, or zero before two updates.
func (u *UpdateTracker) Frequency() float64 {
	if u.DiffMA.Estimate <= 0 {
		return 0
	}
	return 1 / u.DiffMA.Estimate
}
