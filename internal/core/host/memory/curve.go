package memory

import (
	"sort"

	"github.com/zeusync/moco/internal/core/host"
)

const bezierIterations = 48

var _ host.Curve = (*Curve)(nil)

// Curve is an in-memory Bézier animation curve.
type Curve struct {
	path string
	keys []host.Keyframe
}

// NewCurve copies and time-sorts keys.
func NewCurve(path string, keys ...host.Keyframe) *Curve {
	sorted := append([]host.Keyframe(nil), keys...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	return &Curve{path: path, keys: sorted}
}

func (c *Curve) Path() string { return c.path }

func (c *Curve) SetPath(path string) { c.path = path }

func (c *Curve) Keyframes() []host.Keyframe {
	return append([]host.Keyframe(nil), c.keys...)
}

// Evaluate samples the curve at frame. Values are held constant outside the
// keyed range.
func (c *Curve) Evaluate(frame float64) float64 {
	n := len(c.keys)
	switch {
	case n == 0:
		return 0
	case frame <= c.keys[0].Time:
		return c.keys[0].Value
	case frame >= c.keys[n-1].Time:
		return c.keys[n-1].Value
	}

	// first key strictly after frame; the segment starts one before it
	next := sort.Search(n, func(i int) bool { return c.keys[i].Time > frame })
	k0, k1 := c.keys[next-1], c.keys[next]
	if frame == k0.Time {
		return k0.Value
	}

	x0, x3 := k0.Time, k1.Time
	x1 := clamp(k0.Right.Time, x0, x3)
	x2 := clamp(k1.Left.Time, x0, x3)

	lo, hi := 0.0, 1.0
	t := 0.5
	for i := 0; i < bezierIterations; i++ {
		t = (lo + hi) / 2
		if cubic(x0, x1, x2, x3, t) < frame {
			lo = t
		} else {
			hi = t
		}
	}
	return cubic(k0.Value, k0.Right.Value, k1.Left.Value, k1.Value, t)
}

func cubic(p0, p1, p2, p3, t float64) float64 {
	u := 1 - t
	return u*u*u*p0 + 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t*p3
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Key builds a keyframe with flat handles a third of the way to its neighbours.
func Key(time, value, span float64) host.Keyframe {
	return host.Keyframe{
		Time:  time,
		Value: value,
		Left:  host.Handle{Time: time - span/3, Value: value},
		Right: host.Handle{Time: time + span/3, Value: value},
	}
}
