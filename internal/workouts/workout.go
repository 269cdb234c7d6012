package workouts

import (
	"time"

	"github.com/mlukic92/fitpulse/internal/exercises"
)

// Set is one logged resistance-training set. Exercise name and muscle group
// are denormalized onto the set, so historical numbers survive the deletion
// of the referenced exercise.
type Set struct {
	ID           int                   `json:"id"`
	WorkoutID    int                   `json:"workoutId"`
	ExerciseID   *int                  `json:"exerciseId,omitempty"`
	ExerciseName string                `json:"exerciseName"`
	MuscleGroup  exercises.MuscleGroup `json:"muscleGroup"`
	WeightKg     float64               `json:"weightKg"`
	Reps         int                   `json:"reps"`
	RPE          *float64              `json:"rpe,omitempty"`
	Warmup       bool                  `json:"warmup"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// Estimated1RM estimates the one-rep max via the Brzycki formula,
// weight * 36/(37-reps). Outside of 0 < reps < 37 the formula diverges, so
// the raw weight is returned instead.
func (s Set) Estimated1RM() float64 {
	if s.Reps <= 0 || s.Reps >= 37 {
		return s.WeightKg
	}
	return s.WeightKg * 36 / float64(37-s.Reps)
}

// Volume is the tonnage of the set, weight * reps.
func (s Set) Volume() float64 {
	return s.WeightKg * float64(s.Reps)
}

type Workout struct {
	ID         int        `json:"id"`
	Date       time.Time  `json:"date"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
	Completed  bool       `json:"completed"`
	Sets       []Set      `json:"sets"`
}

func (w *Workout) TotalVolume() float64 {
	var total float64
	for _, s := range w.Sets {
		total += s.Volume()
	}
	return total
}

// AverageRPE averages over sets that have an RPE logged. Returns 0 when no
// set carries one.
func (w *Workout) AverageRPE() float64 {
	var sum float64
	var count int
	for _, s := range w.Sets {
		if s.RPE != nil {
			sum += *s.RPE
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func (w *Workout) VolumeByMuscleGroup() map[exercises.MuscleGroup]float64 {
	byGroup := make(map[exercises.MuscleGroup]float64)
	for _, s := range w.Sets {
		byGroup[s.MuscleGroup] += s.Volume()
	}
	return byGroup
}

// DurationMinutes is 0 for workouts never finished.
func (w *Workout) DurationMinutes() float64 {
	if w.FinishedAt == nil {
		return 0
	}
	return w.FinishedAt.Sub(w.StartedAt).Minutes()
}
