package util

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetOptimalPoolSize(t *testing.T) {
	size := GetOptimalPoolSize()
	assert.GreaterOrEqual(t, size, 4)
	assert.LessOrEqual(t, size, 32)

	want := runtime.NumCPU() * 2
	if want < 4 {
		want = 4
	}
	if want > 32 {
		want = 32
	}
	assert.Equal(t, want, size)
}

func TestGetOptimalPoolSizeWithOverride(t *testing.T) {
	assert.Equal(t, 7, GetOptimalPoolSizeWithOverride(7))
	assert.Equal(t, GetOptimalPoolSize(), GetOptimalPoolSizeWithOverride(0))
	assert.Equal(t, GetOptimalPoolSize(), GetOptimalPoolSizeWithOverride(-1))
}
