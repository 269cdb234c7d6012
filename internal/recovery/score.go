package recovery

import (
	"time"
)

// score weights, sleep matters most, then nutrition, then rest
const (
	sleepWeight   = 0.4
	proteinWeight = 0.35
	restWeight    = 0.25

	unknownFactor = 50
)

// ScoreInputs feeds ComputeScore. Nil pointers mean the signal is unknown
// for the day and fall back to a neutral factor.
type ScoreInputs struct {
	SleepHours         *float64
	SleepGoalHours     float64
	ProteinGrams       *float64
	TargetProteinGrams float64
	LastWorkoutAt      *time.Time
	Now                time.Time
}

// ComputeScore blends sleep, protein intake and rest into a single
// readiness score, bounded [0, 100].
func ComputeScore(in ScoreInputs) float64 {
	sleepFactor := float64(unknownFactor)
	if in.SleepHours != nil && in.SleepGoalHours > 0 {
		sleepFactor = min(*in.SleepHours/in.SleepGoalHours, 1) * 100
	}

	proteinFactor := float64(unknownFactor)
	if in.ProteinGrams != nil && in.TargetProteinGrams > 0 {
		proteinFactor = min(*in.ProteinGrams/in.TargetProteinGrams, 1) * 100
	}

	restFactor := float64(100)
	if in.LastWorkoutAt != nil && in.Now.Sub(*in.LastWorkoutAt) < 24*time.Hour {
		restFactor = 50
	}

	score := sleepWeight*sleepFactor + proteinWeight*proteinFactor + restWeight*restFactor
	return max(0, min(score, 100))
}

// VolumePercentile ranks a workout's total volume against the rest of the
// completed history. The target workout itself must not be in history.
// No history at all places the workout in the middle.
func VolumePercentile(totalVolume float64, historicalVolumes []float64) float64 {
	if len(historicalVolumes) == 0 {
		return 0.5
	}
	lower := 0
	for _, v := range historicalVolumes {
		if v < totalVolume {
			lower++
		}
	}
	return float64(lower) / float64(len(historicalVolumes))
}

// Buffer is the post-workout macro adjustment for unusually hard sessions.
type Buffer struct {
	Percentile   float64 `json:"percentile"`
	CarbGrams    float64 `json:"carbGrams"`
	ProteinGrams float64 `json:"proteinGrams"`
}

const bufferPercentileFloor = 0.8

// ComputeBuffer returns extra carbs and protein when the workout's volume
// percentile exceeds the floor, zero adjustment otherwise.
func ComputeBuffer(percentile float64) Buffer {
	b := Buffer{Percentile: percentile}
	if percentile <= bufferPercentileFloor {
		return b
	}
	overshoot := (percentile - bufferPercentileFloor) / (1 - bufferPercentileFloor)
	b.CarbGrams = 40 * overshoot
	b.ProteinGrams = 20 * overshoot
	return b
}
