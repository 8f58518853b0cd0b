package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world units (meters)
type Vec3F struct {
	X, Y, Z float64
}

// V3FZero is the origin
var V3FZero = Vec3F{}

func V3F(x, y, z float64) Vec3F {
	return Vec3F{X: x, Y: y, Z: z}
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FDist is the Euclidean distance between two points
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FMoveTowards steps from a toward b by at most maxStep, landing exactly on b when within reach
func V3FMoveTowards(a, b Vec3F, maxStep float64) Vec3F {
	d := V3FSub(b, a)
	dist := V3FMag(d)
	if dist <= maxStep || dist == 0 {
		return b
	}
	return V3FAdd(a, V3FScale(d, maxStep/dist))
}

// V3FNearlyEqual compares component-wise within eps
func V3FNearlyEqual(a, b Vec3F, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}
