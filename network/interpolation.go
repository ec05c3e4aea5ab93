package network

import (
	"time"

	"github.com/automoto/shootr/shared/netcomponents"
)

// Interpolator computes the render clock, which runs a fixed delay behind
// the local clock so that two snapshots usually bracket it.
type Interpolator struct {
	Delay time.Duration
	Now   func() time.Time
}

// NewInterpolator creates an interpolator on the wall clock.
func NewInterpolator(delay time.Duration) *Interpolator {
	return &Interpolator{Delay: delay, Now: time.Now}
}

// RenderTime returns now minus the delay, in milliseconds.
func (in *Interpolator) RenderTime() int64 {
	return in.Now().UnixMilli() - in.Delay.Milliseconds()
}

// Interpolate blends from and to at renderTime. from is returned unchanged
// when the two share a timestamp or renderTime equals from's timestamp.
// Otherwise a new snapshot stamped renderTime is returned; neither input is
// modified.
func Interpolate(from, to netcomponents.Snapshot, renderTime int64) netcomponents.Snapshot {
	total := to.Timestamp - from.Timestamp
	progress := renderTime - from.Timestamp
	if total == 0 || progress == 0 {
		return from
	}
	f := float64(progress) / float64(total)

	return netcomponents.Snapshot{
		ID:        from.ID,
		Timestamp: renderTime,
		Pos:       from.Pos.Lerp(to.Pos, f),
		Vel:       from.Vel.Lerp(to.Vel, f),
	}
}
