package scale

import "math"

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickIncrement returns the 1-2-5 step that divides [start, stop] into about
// count intervals. A negative result -k stands for the step 1/k, which keeps
// fractional steps exact.
func tickIncrement(start, stop float64, count int) float64 {
	if count <= 0 || stop == start {
		return 0
	}
	step := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step))
	err := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// tickStep returns the absolute tick step for [start, stop].
func tickStep(start, stop float64, count int) float64 {
	lo, hi := math.Min(start, stop), math.Max(start, stop)
	inc := tickIncrement(lo, hi, count)
	if inc < 0 {
		inc = -1 / inc
	}
	if stop < start {
		return -inc
	}
	return inc
}

// linearTicks returns uniformly spaced round values within [start, stop], in
// the order of the arguments. count is clamped to MaxTickCount.
func linearTicks(start, stop float64, count int) []float64 {
	if math.IsNaN(start) || math.IsNaN(stop) || count <= 0 {
		return nil
	}
	count = min(count, MaxTickCount)
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	inc := tickIncrement(start, stop, count)
	if inc == 0 || math.IsInf(inc, 0) {
		return nil
	}

	var ticks []float64
	if inc > 0 {
		r0, r1 := math.Ceil(start/inc), math.Floor(stop/inc)
		for i := r0; i <= r1; i++ {
			ticks = append(ticks, i*inc)
		}
	} else {
		inc = -inc
		r0, r1 := math.Ceil(start*inc), math.Floor(stop*inc)
		for i := r0; i <= r1; i++ {
			ticks = append(ticks, i/inc)
		}
	}
	if reverse {
		for i, j := 0, len(ticks)-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// niceDomain extends [lo, hi] outward to multiples of the tick step,
// iterating until the step settles.
func niceDomain(lo, hi float64, count int) (float64, float64) {
	start, stop := lo, hi
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	prestep := math.NaN()
	for range 10 {
		step := tickIncrement(start, stop, count)
		if step == prestep {
			break
		}
		switch {
		case step > 0:
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		case step < 0:
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		default:
			if reverse {
				return stop, start
			}
			return start, stop
		}
		prestep = step
	}
	if reverse {
		return stop, start
	}
	return start, stop
}

// precisionFixed returns the number of decimals needed to tell apart values
// that differ by step.
func precisionFixed(step float64) int {
	step = math.Abs(step)
	if step == 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return 0
	}
	return max(0, -int(math.Floor(math.Log10(step)+1e-9)))
}
