package services

// Score maps four vitals to 0..100 in steps of 25, one step per vital inside
// its healthy band. There is no partial credit within a band.
func Score(bloodPressureSystolic, sleepHours, temperatureC, heartRate float64) int {
	score := 0
	if bloodPressureSystolic < 120 {
		score += 25
	}
	if sleepHours >= 7 && sleepHours <= 9 {
		score += 25
	}
	if temperatureC >= 36.1 && temperatureC <= 37.2 {
		score += 25
	}
	if heartRate >= 60 && heartRate <= 100 {
		score += 25
	}
	return score
}
