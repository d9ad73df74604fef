package age

import "time"

// AgeData computes the elapsed time since then and whether timing data exists.
// Clock skew never produces a negative age.
func AgeData(then time.Time, now time.Time) (time.Duration, bool) {
	if then.IsZero() || now.IsZero() {
		return 0, false
	}
	if now.Before(then) {
		return 0, true
	}
	return now.Sub(then), true
}
