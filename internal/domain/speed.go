package domain

import "time"

type SpeedController struct {
	Step      time.Duration
	Floor     time.Duration
	Threshold int
}

func (sc SpeedController) Next(current time.Duration, score int) time.Duration {
	threshold := sc.Threshold
	if threshold <= 0 {
		threshold = 3
	}
	if score <= 0 || score%threshold != 0 {
		return current
	}
	if current-sc.Step < sc.Floor {
		return current
	}
	return current - sc.Step
}

// NextInterval applies the default every-three-points ramp.
func NextInterval(current time.Duration, score int, floor, step time.Duration) time.Duration {
	return SpeedController{Step: step, Floor: floor, Threshold: 3}.Next(current, score)
}
