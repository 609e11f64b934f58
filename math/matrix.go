package math

import (
	m "math"
)

type Vec3 struct {
	X, Y, Z float64
}

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

// Mat4 is a row-major 4x4 matrix.
type Mat4 [4][4]float64

func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func (a Mat3) Mul(b Mat3) Mat3 {
	var res Mat3
	for i := range 3 {
		for j := range 3 {
			res[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return res
}

func (a Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: a[0][0]*v.X + a[0][1]*v.Y + a[0][2]*v.Z,
		Y: a[1][0]*v.X + a[1][1]*v.Y + a[1][2]*v.Z,
		Z: a[2][0]*v.X + a[2][1]*v.Y + a[2][2]*v.Z,
	}
}

func (a Mat3) Equals(b Mat3, tolerance float64) bool {
	for i := range 3 {
		for j := range 3 {
			if m.Abs(a[i][j]-b[i][j]) > tolerance {
				return false
			}
		}
	}
	return true
}

func Clamp(val, lo, hi float64) float64 {
	return m.Max(lo, m.Min(val, hi))
}
