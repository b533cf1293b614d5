// Package vector holds the float32 vector math used by semantic retrieval.
package vector

import (
	"encoding/binary"
	"errors"
	"math"
)

// Epsilon is the magnitude product below which a pair is treated as degenerate.
const Epsilon = 1e-8

// ErrCorruptBlob is returned when an encoded vector is not a whole number of float32s.
var ErrCorruptBlob = errors.New("vector: blob length is not a multiple of 4")

// Cosine returns the cosine similarity of a and b and whether the pair is comparable.
// Pairs of different length, empty pairs, near-zero magnitudes and non-finite
// components are not comparable.
func Cosine(a, b []float32) (float64, bool) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if !(denom >= Epsilon) {
		return 0, false
	}

	sim := dot / denom
	if math.IsNaN(sim) {
		return 0, false
	}
	// Clamp rounding drift so callers can rely on [-1, 1].
	if sim > 1 {
		sim = 1
	} else if sim < -1 {
		sim = -1
	}
	return sim, true
}

// Encode serialises v as little-endian float32s.
func Encode(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// Decode is the inverse of Encode.
func Decode(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, ErrCorruptBlob
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v, nil
}
