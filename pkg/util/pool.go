package util

import "runtime"

// GetOptimalPoolSize returns the pool size used for CPU-bound fan-out:
// min(max(NumCPU * 2, 4), 32).
//
// 2x cores keeps parsers busy while CGO calls block; the floor guarantees
// some parallelism on small machines and the cap bounds per-parser memory
// on big ones.
func GetOptimalPoolSize() int {
	size := runtime.NumCPU() * 2
	if size < 4 {
		size = 4
	}
	if size > 32 {
		size = 32
	}
	return size
}

// GetOptimalPoolSizeWithOverride uses override when positive, otherwise the
// computed optimum. The override exists for tests and tuning.
func GetOptimalPoolSizeWithOverride(override int) int {
	if override > 0 {
		return override
	}
	return GetOptimalPoolSize()
}
