package gamemath

// ApplyFriction adds a velocity-proportional decay term to an acceleration.
// The coefficient is negative, so the result always opposes the velocity.
func ApplyFriction(accel, velocity, coefficient float64) float64 {
	return accel + velocity*coefficient
}

// SnapToZero returns 0 when |speed| is below threshold.
func SnapToZero(speed, threshold float64) float64 {
	if speed > -threshold && speed < threshold {
		return 0
	}
	return speed
}

// Integrate advances a position by one tick using velocity plus half the
// acceleration.
func Integrate(pos, velocity, accel float64) float64 {
	return pos + velocity + 0.5*accel
}

// WrapHorizontal moves x to the opposite edge once it leaves [-halfW, width+halfW].
func WrapHorizontal(x, halfW, width float64) float64 {
	if x > width+halfW {
		x = -halfW
	}
	if x < -halfW {
		x = width + halfW
	}
	return x
}

// Oscillate steps a triangle wave: step is added to v and reverses once
// |v| exceeds limit. Returns the new value and the possibly flipped step.
func Oscillate(v, step, limit float64) (float64, float64) {
	v += step
	if v > limit || v < -limit {
		step = -step
	}
	return v, step
}

