package platform

import "math"

func toBits(f float64) uint64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	return math.Float64bits(f)
}

func fromBits(b uint64) float64 {
	return math.Float64frombits(b)
}
