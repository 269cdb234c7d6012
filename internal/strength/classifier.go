package strength

import (
	"github.com/mlukic92/fitpulse/internal/exercises"
	"github.com/mlukic92/fitpulse/internal/profile"
	"github.com/mlukic92/fitpulse/internal/workouts"
)

// volumeScaleFactors derive volume thresholds from the 1RM thresholds,
// one factor per category.
var volumeScaleFactors = [5]float64{1.5, 1.8, 2.2, 2.5, 3.0}

// blend weights, the max effort signal dominates the volume signal
const (
	oneRMWeight  = 0.6
	volumeWeight = 0.4
)

// Classify buckets every muscle group into a strength category based on
// the lifter's profile and full set history. The returned map is total,
// groups without data are rookie. Deterministic for identical inputs.
func Classify(userProfile *profile.UserProfile, history []workouts.Set) map[exercises.MuscleGroup]Category {
	categories := make(map[exercises.MuscleGroup]Category, len(exercises.AllMuscleGroups))
	for _, group := range exercises.AllMuscleGroups {
		categories[group] = CategoryRookie
	}
	if userProfile == nil || userProfile.BodyWeightKg <= 0 {
		return categories
	}

	setsByGroup := make(map[exercises.MuscleGroup][]workouts.Set)
	for _, set := range history {
		setsByGroup[set.MuscleGroup] = append(setsByGroup[set.MuscleGroup], set)
	}

	for group, sets := range setsByGroup {
		if _, known := categories[group]; !known {
			continue
		}
		categories[group] = classifyGroup(*userProfile, group, sets)
	}
	return categories
}

type exerciseAggregate struct {
	name      string
	sumOneRM  float64
	sumVolume float64
	setCount  int
}

func classifyGroup(userProfile profile.UserProfile, group exercises.MuscleGroup, sets []workouts.Set) Category {
	aggregates := make(map[string]*exerciseAggregate)
	var order []string
	for _, set := range sets {
		agg, ok := aggregates[set.ExerciseName]
		if !ok {
			agg = &exerciseAggregate{name: set.ExerciseName}
			aggregates[set.ExerciseName] = agg
			order = append(order, set.ExerciseName)
		}
		agg.sumOneRM += set.Estimated1RM()
		agg.sumVolume += set.Volume()
		agg.setCount++
	}
	if len(order) == 0 {
		return CategoryRookie
	}

	var blendSum float64
	for _, name := range order {
		agg := aggregates[name]
		meanOneRM := agg.sumOneRM / float64(agg.setCount)
		meanVolume := agg.sumVolume / float64(agg.setCount)
		blendSum += blendExercise(userProfile, group, agg.name, meanOneRM, meanVolume)
	}
	return bucketBlended(blendSum / float64(len(order)))
}

// blendExercise scores one exercise as a numeric category value in [1, 5].
func blendExercise(userProfile profile.UserProfile, group exercises.MuscleGroup, exerciseName string, meanOneRM, meanVolume float64) float64 {
	entry := standardFor(exerciseName, group)
	source := entry.adjusted(userProfile.Sex)

	oneRMThresholds := source
	if entry.RelativeToBodyWeight {
		for i := range oneRMThresholds {
			oneRMThresholds[i] = source[i] * userProfile.BodyWeightKg
		}
	}
	oneRMCategory := bucketValue(meanOneRM, oneRMThresholds)

	var volumeThresholds [5]float64
	for i := range volumeThresholds {
		volumeThresholds[i] = source[i] * volumeScaleFactors[i]
	}
	volumeCategory := bucketValue(meanVolume/userProfile.BodyWeightKg, volumeThresholds)

	return oneRMWeight*float64(oneRMCategory) + volumeWeight*float64(volumeCategory)
}

// bucketValue finds the highest category whose threshold the value meets.
func bucketValue(value float64, thresholds [5]float64) Category {
	category := CategoryRookie
	for i := len(thresholds) - 1; i >= 1; i-- {
		if value >= thresholds[i] {
			category = Category(i + 1)
			break
		}
	}
	return category
}

func bucketBlended(blended float64) Category {
	switch {
	case blended >= 4.5:
		return CategoryElite
	case blended >= 3.5:
		return CategoryAdvanced
	case blended >= 2.5:
		return CategoryIntermediate
	case blended >= 1.5:
		return CategoryAverage
	default:
		return CategoryRookie
	}
}
