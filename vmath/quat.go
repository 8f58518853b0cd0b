package vmath

import "math"

// Quat is a unit quaternion orientation
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity is the no-rotation orientation
var QuatIdentity = Quat{W: 1}

// QFromAxisAngle builds a rotation of angle radians around axis
func QFromAxisAngle(axis Vec3F, angle float64) Quat {
	n := V3FNormalize(axis)
	if n == (Vec3F{}) {
		return QuatIdentity
	}
	s, c := math.Sincos(angle / 2)
	return Quat{n.X * s, n.Y * s, n.Z * s, c}
}

// QFromYaw builds a rotation around the vertical axis, degrees
func QFromYaw(degrees float64) Quat {
	return QFromAxisAngle(Vec3F{Y: 1}, degrees*math.Pi/180)
}

// QMul composes rotations: the result applies b first, then a
func QMul(a, b Quat) Quat {
	return Quat{
		a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// QConj is the inverse for unit quaternions
func QConj(q Quat) Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

func QNormalize(q Quat) Quat {
	mag := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if mag == 0 {
		return QuatIdentity
	}
	inv := 1.0 / mag
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// QRotate rotates v by q
func QRotate(q Quat, v Vec3F) Vec3F {
	u := Vec3F{q.X, q.Y, q.Z}
	t := V3FScale(V3FCross(u, v), 2)
	return V3FAdd(V3FAdd(v, V3FScale(t, q.W)), V3FCross(u, t))
}

// QIntegrate advances orientation q by angular velocity w (rad/s) over dt seconds
func QIntegrate(q Quat, w Vec3F, dt float64) Quat {
	speed := V3FMag(w)
	if speed == 0 || dt == 0 {
		return q
	}
	return QNormalize(QMul(QFromAxisAngle(w, speed*dt), q))
}

// QNearlyEqual treats q and -q as the same orientation
func QNearlyEqual(a, b Quat, eps float64) bool {
	dot := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
	return math.Abs(math.Abs(dot)-1) <= eps
}
