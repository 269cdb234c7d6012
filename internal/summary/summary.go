package summary

import (
	"time"
)

// DailySummary is the daily rollup of food, training and biometric data.
// Recomputed in place, totals always replace previous values.
type DailySummary struct {
	ID   int       `json:"id"`
	Date time.Time `json:"date"`

	Calories     float64 `json:"calories"`
	ProteinGrams float64 `json:"proteinGrams"`
	CarbsGrams   float64 `json:"carbsGrams"`
	FatGrams     float64 `json:"fatGrams"`

	WorkoutCount   int     `json:"workoutCount"`
	WorkoutVolume  float64 `json:"workoutVolume"`
	WorkoutMinutes float64 `json:"workoutMinutes"`
	AverageRPE     float64 `json:"averageRpe"`

	SleepHours     *float64 `json:"sleepHours,omitempty"`
	BodyWeightKg   *float64 `json:"bodyWeightKg,omitempty"`
	ActiveCalories *float64 `json:"activeCalories,omitempty"`
	Steps          *int     `json:"steps,omitempty"`

	RecoveryScore    float64 `json:"recoveryScore"`
	VolumePercentile float64 `json:"volumePercentile"`
	// intake minus target, negative means a deficit; 0 without a target
	CalorieBalance float64 `json:"calorieBalance"`
}

// CorrelationPoint is one day of the correlation series.
type CorrelationPoint struct {
	Date          time.Time `json:"date"`
	ProteinGrams  float64   `json:"proteinGrams"`
	Calories      float64   `json:"calories"`
	WorkoutVolume float64   `json:"workoutVolume"`
	RecoveryScore float64   `json:"recoveryScore"`
	SleepHours    *float64  `json:"sleepHours,omitempty"`
}

// CorrelationSeries is an ascending-by-date run of points with average
// accessors that tolerate an empty series.
type CorrelationSeries struct {
	Points []CorrelationPoint `json:"points"`
}

func (s CorrelationSeries) AverageProtein() float64 {
	return s.average(func(p CorrelationPoint) float64 { return p.ProteinGrams })
}

func (s CorrelationSeries) AverageVolume() float64 {
	return s.average(func(p CorrelationPoint) float64 { return p.WorkoutVolume })
}

func (s CorrelationSeries) AverageRecoveryScore() float64 {
	return s.average(func(p CorrelationPoint) float64 { return p.RecoveryScore })
}

func (s CorrelationSeries) average(value func(CorrelationPoint) float64) float64 {
	if len(s.Points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range s.Points {
		sum += value(p)
	}
	return sum / float64(len(s.Points))
}
