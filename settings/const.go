package settings

import (
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024
	SMALL_SEGMENT_SIZE   = 1024 * 1024
	LOOP_DELAY           = 50 * time.Millisecond
	LIVENESS_TIMEOUT     = 1 * time.Second
	MIN_FPS              = 15.0
	FPS_WINDOW           = 100
)

var segmentSizes = map[string]int64{
	"modelV2":         DEFAULT_SEGMENT_SIZE,
	"overlayOut":      DEFAULT_SEGMENT_SIZE,
	"liveCalibration": SMALL_SEGMENT_SIZE,
	"radarState":      SMALL_SEGMENT_SIZE,
	"carState":        SMALL_SEGMENT_SIZE,
	"selfdriveState":  SMALL_SEGMENT_SIZE,
	"overlayIn":       SMALL_SEGMENT_SIZE,
}

// GetSegmentSize is the msgq buffer size for a service.
func GetSegmentSize(name string) int64 {
	if size, ok := segmentSizes[name]; ok {
		return size
	}
	return DEFAULT_SEGMENT_SIZE
}
