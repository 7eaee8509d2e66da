package cursor

import (
	"errors"
	"math"
)

var errWrongWidth = errors.New("cursor: use ReadInt128 for 16-byte reads")

func uint32ToFloat32(v uint32) float32 {
	return math.Float32frombits(v)
}

func uint64ToFloat64(v uint64) float64 {
	return math.Float64frombits(v)
}
