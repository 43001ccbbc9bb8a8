package plotline

import "math"

// LinearScale maps a data-space interval onto a pixel-space interval.
// Scales are derived once from dataset extents and never change afterwards;
// they are plain values, cheap to copy.
//
// RangeMin may exceed RangeMax: a vertical scale maps the domain minimum to
// the bottom of the plot (larger pixel Y), so its range runs backwards.
type LinearScale struct {
	DomainMin, DomainMax float64
	RangeMin, RangeMax   float64
}

// NewLinearScale creates a scale mapping [domainMin, domainMax] onto
// [rangeMin, rangeMax]. Panics if the domain is empty.
func NewLinearScale(domainMin, domainMax, rangeMin, rangeMax float64) LinearScale {
	if domainMin == domainMax {
		panic("plotline: scale domain is empty")
	}
	return LinearScale{
		DomainMin: domainMin, DomainMax: domainMax,
		RangeMin: rangeMin, RangeMax: rangeMax,
	}
}

// Apply maps a data-space value to pixel space.
func (s LinearScale) Apply(v float64) float64 {
	t := (v - s.DomainMin) / (s.DomainMax - s.DomainMin)
	return s.RangeMin + t*(s.RangeMax-s.RangeMin)
}

// Invert maps a pixel-space value back to data space.
func (s LinearScale) Invert(p float64) float64 {
	t := (p - s.RangeMin) / (s.RangeMax - s.RangeMin)
	return s.DomainMin + t*(s.DomainMax-s.DomainMin)
}

// Ticks returns roughly count tick values inside the domain, at "nice" steps
// (1, 2, or 5 times a power of ten).
func (s LinearScale) Ticks(count int) []float64 {
	if count < 2 {
		count = 2
	}
	lo, hi := s.DomainMin, s.DomainMax
	if lo > hi {
		lo, hi = hi, lo
	}
	step := niceStep((hi - lo) / float64(count))
	var ticks []float64
	for v := math.Ceil(lo/step) * step; v <= hi+step*1e-9; v += step {
		ticks = append(ticks, math.Round(v/step)*step)
	}
	return ticks
}

// niceStep rounds a raw step up to 1, 2, or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// PadExtent widens [min, max] by frac of its span on each side so marks at
// the extremes are not drawn on the plot border.
func PadExtent(min, max, frac float64) (float64, float64) {
	span := max - min
	if span == 0 {
		span = 1
	}
	return min - span*frac, max + span*frac
}
