package overlay

import (
	"math"

	m "pfeifer.dev/overlayd/math"
)

const (
	LOCKON_POSITION_K = 6.0
	LOCKON_ACCEL_K    = 10.0
	LOCKON_POINTER_K  = 20.0
	LOCKON_QUALITY_K  = 5.0

	LOCKON_QUALITY_MAX      = 40.0
	LOCKON_QUALITY_TICK_MIN = 3.0

	// slots 0 and 1 are considered the same object while their reconstructed lateral
	// positions (screen x times distance) stay within this many units
	LOCKON_LATERAL_TOLERANCE = 300.0
	// slot 1 may drift this many pixels right of slot 0 before the pointers swap sides
	LOCKON_SWAP_TOLERANCE = 20.0

	LOCKON_BOX_SIZE     = 300.0
	LOCKON_TABLET_SCALE = 1.25
	LOCKON_WIDE_SCALE   = 0.5
	LOCKON_TICK_WIDTH   = 8.0

	LOCKON_METER_MIN_BOX  = 40.0
	LOCKON_LABEL_MIN_BOX  = 80.0
	LOCKON_LABEL_D_NARROW = 32.0
	LOCKON_LABEL_D_WIDE   = 12.0

	DEFAULT_MIN_LEAD_PROB = 0.2
)

// LockOnState is the smoothed state of one lead slot. The zero value is the state
// at process start.
type LockOnState struct {
	X           float64
	Y           float64
	D           float64
	A           float64
	PointerTo   float64
	PointerFrom float64
	Quality     float64
	Missed      int
}

type LockOnInput struct {
	Anchor m.Point
	DRel   float64
	ARel   float64
	Prob   float64
}

type Line struct {
	From, To m.Point
}

type LabelPlacement int

const (
	LabelNone LabelPlacement = iota
	LabelTopLeft
	LabelBottomLeft
)

type MeterDirection int

const (
	MeterNone MeterDirection = iota
	MeterAccel
	MeterDecel
)

// LockOnBox is the geometry produced for one slot in one frame.
type LockOnBox struct {
	Slot     int
	Visible  bool
	Box      m.Rect
	Alpha    float64
	Distance float64
	Accel    float64

	HasPointer bool
	Pointer    Line

	Meter    [4]m.Point
	MeterDir MeterDirection

	Quality    float64
	TickLength float64
	Ticks      [4]Line
	HasTicks   bool

	Diverged bool
	Label    LabelPlacement
}

// LockOnTracker owns the smoothing state of every lead slot. It must only be used
// from the render loop.
type LockOnTracker struct {
	Slots [MAX_LEAD_SLOTS]LockOnState

	// Tablet enlarges the nominal box footprint for the larger display profile.
	Tablet bool
	// StaleResetFrames zeroes a slot after this many frames without an update. Zero
	// keeps stale slots frozen until the next update.
	StaleResetFrames int
}

// Quality is the lock quality of the primary slot.
func (t *LockOnTracker) Quality() float64 {
	return t.Slots[0].Quality
}

// Miss records a frame where the slot had no usable candidate.
func (t *LockOnTracker) Miss(slot int) {
	s := &t.Slots[slot]
	s.Missed++
	if t.StaleResetFrames > 0 && s.Missed >= t.StaleResetFrames {
		*s = LockOnState{}
	}
}

// lateral reconstructs a lateral position from the screen since the true offset is
// not kept.
func (t *LockOnTracker) lateral(slot int) float64 {
	return t.Slots[slot].X * t.Slots[slot].D
}

// Diverged reports whether slots 0 and 1 likely track different objects.
func (t *LockOnTracker) Diverged() bool {
	return math.Abs(t.lateral(0)-t.lateral(1)) > LOCKON_LATERAL_TOLERANCE
}

// boxLift is the empirical height of the box above its road anchor.
func boxLift(d float64, wide bool) float64 {
	if wide {
		dd := max((d-5)/(95.0/10)+1, 1)
		return 100 / (dd * dd)
	}
	dd := max((d-25)/(75.0/2)+1, 1)
	return 50 / dd
}

// tickScale makes far targets reach full length ticks more slowly.
func tickScale(d float64) float64 {
	dd := max(d, 10)
	return (dd-10)/(90.0/2) + 1
}

// Update feeds one frame of a slot's raw measurements and returns the stabilized
// geometry.
func (t *LockOnTracker) Update(slot int, in LockOnInput, surface m.Rect, wide bool) LockOnBox {
	s := &t.Slots[slot]
	s.Missed = 0

	sz := LeadMarkerSize(in.DRel)
	x := m.Clamp(in.Anchor.X, 0, surface.W-sz/2)
	y := in.Anchor.Y

	ww, hh := LOCKON_BOX_SIZE, LOCKON_BOX_SIZE
	if t.Tablet {
		ww *= LOCKON_TABLET_SCALE
		hh *= LOCKON_TABLET_SCALE
	}

	s.X = m.Smooth(s.X, x, LOCKON_POSITION_K)
	s.Y = m.Smooth(s.Y, y, LOCKON_POSITION_K)
	s.D = m.Smooth(s.D, max(in.DRel, 1), LOCKON_POSITION_K)
	s.A = m.Smooth(s.A, in.ARel, LOCKON_ACCEL_K)
	x, y = s.X, s.Y
	d := max(s.D, 1)
	a := s.A

	dh := boxLift(d, wide)
	if wide {
		ww *= LOCKON_WIDE_SCALE
		hh *= LOCKON_WIDE_SCALE
	}
	ww = ww * 2 * 5 / d
	hh = hh * 2 * 5 / d
	y = math.Min(surface.H, y-dh) + dh
	r := m.NewRect(x-ww/2, y-hh-dh, ww, hh)

	box := LockOnBox{
		Slot:     slot,
		Visible:  true,
		Box:      r,
		Alpha:    m.Clamp(in.Prob, 0, 1),
		Distance: d,
		Accel:    a,
	}
	diverged := t.Diverged()
	swapped := !(t.Slots[0].X > t.Slots[1].X-LOCKON_SWAP_TOLERANCE)

	switch slot {
	case 0:
		t.updatePointer(s, r, surface, !swapped)
		box.HasPointer = true
		box.Pointer = pointerLine(s, r)
		box.Label = LabelTopLeft

		if ww >= LOCKON_METER_MIN_BOX {
			box.Meter, box.MeterDir = accelMeter(x, r, a)
		}

		target := LOCKON_QUALITY_MAX
		if diverged {
			target = 0
		}
		s.Quality = m.Smooth(s.Quality, target, LOCKON_QUALITY_K)
		box.Quality = s.Quality
		if s.Quality >= LOCKON_QUALITY_TICK_MIN {
			box.HasTicks = true
			box.TickLength = s.Quality / tickScale(s.D)
			box.Ticks = ticks(r, box.TickLength)
		}
	case 1:
		box.Diverged = diverged
		t.updatePointer(s, r, surface, swapped)
		box.HasPointer = true
		box.Pointer = pointerLine(s, r)

		dLim := LOCKON_LABEL_D_NARROW
		if wide {
			dLim = LOCKON_LABEL_D_WIDE
		}
		if ww >= LOCKON_LABEL_MIN_BOX && (in.DRel < dLim || diverged) {
			box.Label = LabelBottomLeft
		}
	}
	return box
}

// updatePointer eases the pointer line toward the right frame edge or the left one.
func (t *LockOnTracker) updatePointer(s *LockOnState, r m.Rect, surface m.Rect, right bool) {
	if right {
		s.PointerTo = m.Smooth(s.PointerTo, r.Right(), LOCKON_POINTER_K)
		s.PointerFrom = m.Smooth(s.PointerFrom, surface.W, LOCKON_POINTER_K)
	} else {
		s.PointerTo = m.Smooth(s.PointerTo, r.Left(), LOCKON_POINTER_K)
		s.PointerFrom = m.Smooth(s.PointerFrom, 0, LOCKON_POINTER_K)
	}
}

func pointerLine(s *LockOnState, r m.Rect) Line {
	return Line{
		From: m.Point{X: m.Clamp(s.PointerTo, r.Left(), r.Right()), Y: r.Top()},
		To:   m.Point{X: s.PointerFrom, Y: 0},
	}
}

// accelMeter is a slanted bar along the right edge of the box, filled upward for a
// speeding up lead and downward for a slowing one.
func accelMeter(x float64, r m.Rect, a float64) ([4]m.Point, MeterDirection) {
	ww, hh := r.W, r.H
	wwa := m.Clamp(ww*0.15, 10, 40)
	if wwa > ww {
		wwa = ww
	}
	right := x + ww/2
	top := r.Top()

	switch {
	case a > 0:
		hha := max(1-0.1/a, 0) * hh
		return [4]m.Point{
			{X: right - wwa/2 - wwa/2*hha/hh, Y: top + (hh - hha)},
			{X: right, Y: top + (hh - hha)},
			{X: right, Y: top + hh},
			{X: right - wwa/2, Y: top + hh},
		}, MeterAccel
	case a < 0:
		hha := max(1+0.1/a, 0) * hh
		return [4]m.Point{
			{X: right - wwa/2, Y: top},
			{X: right, Y: top},
			{X: right, Y: top + hha},
			{X: right - wwa/2 - wwa/2*hha/hh, Y: top + hha},
		}, MeterDecel
	}
	return [4]m.Point{}, MeterNone
}

func ticks(r m.Rect, length float64) [4]Line {
	c := r.Center()
	half := LOCKON_TICK_WIDTH / 2
	return [4]Line{
		{From: m.Point{X: c.X, Y: r.Top() - half}, To: m.Point{X: c.X, Y: r.Top() - length}},
		{From: m.Point{X: r.Left() - half, Y: c.Y}, To: m.Point{X: r.Left() - length, Y: c.Y}},
		{From: m.Point{X: r.Right() + half, Y: c.Y}, To: m.Point{X: r.Right() + length, Y: c.Y}},
		{From: m.Point{X: c.X, Y: r.Bottom() + half}, To: m.Point{X: c.X, Y: r.Bottom() + length}},
	}
}
