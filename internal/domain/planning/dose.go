package planning

import "math"

// ComputeTotal returns dose * area * coverage / 100 with coverage clamped to
// [0, 100]. Non-finite inputs count as 0 and the result is always finite.
func ComputeTotal(dose, areaHectares, coveragePct float64) float64 {
	coverage := clamp(finiteOrZero(coveragePct), 0, 100)
	total := finiteOrZero(dose) * finiteOrZero(areaHectares) * coverage / 100
	return finiteOrZero(total)
}

// RecordArea sums plot areas. Negative and non-finite values are ignored.
func RecordArea(areas ...float64) float64 {
	var sum float64
	for _, a := range areas {
		if a = finiteOrZero(a); a > 0 {
			sum += a
		}
	}
	return sum
}

func finiteOrZero(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
