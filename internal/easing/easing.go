package easing

// OutCubic eases t in [0, 1]: fast start, slow settle. Callers clamp t.
func OutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Progress returns how far a particle with the given delay is through its approach.
// elapsed and intro share a unit; the particle waits delay*intro, then travels for
// approach*intro. raw is linear, eased is OutCubic(raw).
func Progress(elapsed, delay, intro, approach float64) (raw, eased float64) {
	start := delay * intro
	window := approach * intro
	if window <= 0 {
		if elapsed >= start {
			return 1, 1
		}
		return 0, 0
	}
	raw = Clamp01((elapsed - start) / window)
	return raw, OutCubic(raw)
}

// FadeIn scales raw progress by rate, saturating at 1.
func FadeIn(raw, rate float64) float64 {
	v := raw * rate
	if v > 1 {
		return 1
	}
	return v
}
