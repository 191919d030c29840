package gradient

import "fmt"

// Gradient maps a numeric value in a closed range [min, max] to a color
// interpolated from an ordered list of stops. The range is split into
// len(stops)-1 equal-width bins; a queried value is located in its bin
// and the two bounding stops are blended linearly. Values outside the
// range resolve to the configured outlier colors, or to the first/last
// stop when none is set.
//
// The zero value is not ready for queries; call Initialize or construct
// with New. Once initialized a gradient never mutates on queries, so it
// is safe to share across goroutines. Re-initialization must not race
// with queries.
type Gradient struct {
	stops      []Color
	minOutlier *Color
	maxOutlier *Color
	min        uint16
	max        uint16
	ready      bool
}

// New creates a gradient over [min, max] with the given stops.
// Equivalent to a zero-value Gradient followed by Initialize.
func New(min, max uint16, stops []Color, opt *Options) (*Gradient, error) {
	g := &Gradient{}
	if err := g.Initialize(min, max, stops, opt); err != nil {
		return nil, err
	}

	return g, nil
}

// Initialize populates the gradient, replacing any previous state. The
// stop list is copied, so the caller's slice stays caller-owned. Fails
// with ErrInvalidConfiguration when min >= max or fewer than two stops
// are given; on failure the receiver keeps its previous state.
func (g *Gradient) Initialize(min, max uint16, stops []Color, opt *Options) error {
	if min >= max {
		return fmt.Errorf("%w: min %d is not less than max %d", ErrInvalidConfiguration, min, max)
	}
	if len(stops) < 2 {
		return fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidConfiguration, len(stops))
	}

	nopt := opt.normalize()
	g.min = min
	g.max = max
	g.stops = append([]Color(nil), stops...)
	g.minOutlier = cloneColor(nopt.MinOutlier)
	g.maxOutlier = cloneColor(nopt.MaxOutlier)
	g.ready = true

	return nil
}

// At returns the color for value. Values below min resolve to the min
// outlier color (or the first stop), values above max to the max outlier
// color (or the last stop). min and max themselves are in range and map
// exactly to the first and last stop.
func (g *Gradient) At(value uint16) (Color, error) {
	if !g.ready {
		return Color{}, ErrNotInitialized
	}

	return g.at(value), nil
}

// at evaluates a ready gradient.
func (g *Gradient) at(value uint16) Color {
	if value < g.min {
		if g.minOutlier != nil {
			return *g.minOutlier
		}
		return g.stops[0]
	}
	if value > g.max {
		if g.maxOutlier != nil {
			return *g.maxOutlier
		}
		return g.stops[len(g.stops)-1]
	}
	// The top edge maps to the last stop exactly; computing t there is
	// subject to rounding in step and can land a hair below 1.
	if value == g.max {
		return g.stops[len(g.stops)-1]
	}

	span := float64(g.max - g.min)
	offset := float64(value - g.min)
	step := span / float64(len(g.stops)-1)

	// bin must stay within [0, len(stops)-2] so stops[bin+1] is valid.
	bin := int(offset / step)
	if bin > len(g.stops)-2 {
		bin = len(g.stops) - 2
	}

	t := (offset - float64(bin)*step) / step

	return blend(g.stops[bin], g.stops[bin+1], t)
}

// blend interpolates linearly between c1 (t=0) and c2 (t=1). Channels
// are blended in float and truncated back to uint8. t outside [0,1]
// short-circuits to the nearer stop verbatim.
func blend(c1, c2 Color, t float64) Color {
	if t <= 0 {
		return c1
	}
	if t >= 1 {
		return c2
	}

	return Color{
		R: uint8((1-t)*float64(c1.R) + t*float64(c2.R)),
		G: uint8((1-t)*float64(c1.G) + t*float64(c2.G)),
		B: uint8((1-t)*float64(c1.B) + t*float64(c2.B)),
	}
}

// Min returns the range minimum.
func (g *Gradient) Min() uint16 { return g.min }

// Max returns the range maximum.
func (g *Gradient) Max() uint16 { return g.max }

// Stops returns a copy of the stop list.
func (g *Gradient) Stops() []Color {
	return append([]Color(nil), g.stops...)
}

// Samples returns n colors evenly spaced across [min, max], the first at
// min and the last at max. Useful for precomputing lookup tables for
// renderers that index by level instead of evaluating per pixel.
func (g *Gradient) Samples(n int) ([]Color, error) {
	if !g.ready {
		return nil, ErrNotInitialized
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidConfiguration, n)
	}

	span := float64(g.max - g.min)
	out := make([]Color, n)
	for i := range out {
		v := uint16(float64(g.min) + span*float64(i)/float64(n-1))
		out[i] = g.at(v)
	}

	return out, nil
}

// cloneColor copies an optional color so the gradient owns its value.
func cloneColor(c *Color) *Color {
	if c == nil {
		return nil
	}
	out := *c

	return &out
}
