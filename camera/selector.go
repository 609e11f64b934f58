package camera

const (
	WIDE_ENTER_SPEED = 10.0 // m/s
	WIDE_EXIT_SPEED  = 15.0 // m/s
)

// StreamSelector chooses between the narrow and wide road streams with speed
// hysteresis. The wide stream is only used in experimental mode.
type StreamSelector struct {
	wideRequested bool
}

// wideOnly is set when the wide stream is the only one available.
func (s *StreamSelector) Update(vEgo float64, hasWide, wideOnly, experimental bool) (wide bool) {
	if !hasWide {
		s.wideRequested = false
		return false
	}
	if vEgo < WIDE_ENTER_SPEED || wideOnly {
		s.wideRequested = true
	} else if vEgo > WIDE_EXIT_SPEED {
		s.wideRequested = false
	}
	s.wideRequested = s.wideRequested && experimental
	return s.wideRequested
}

func (s *StreamSelector) Wide() bool {
	return s.wideRequested
}
