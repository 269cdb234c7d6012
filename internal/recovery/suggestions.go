package recovery

import (
	"fmt"
	"time"
)

type SuggestionCategory string

const (
	SuggestionNutrition SuggestionCategory = "nutrition"
	SuggestionWorkout   SuggestionCategory = "workout"
	SuggestionRecovery  SuggestionCategory = "recovery"
	SuggestionGeneral   SuggestionCategory = "general"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Suggestion struct {
	Category   SuggestionCategory `json:"category"`
	Priority   Priority           `json:"priority"`
	Title      string             `json:"title"`
	Message    string             `json:"message"`
	Actionable bool               `json:"actionable"`
}

// DayStats is one day's worth of aggregated signals, newest first in the
// slices passed to Suggest.
type DayStats struct {
	Date          time.Time
	Calories      float64
	ProteinGrams  float64
	WorkoutVolume float64
	SleepHours    *float64
	QuadVolume24h float64
}

// SuggestInputs carries the rule thresholds alongside the series.
type SuggestInputs struct {
	// Days holds the most recent daily summaries, newest first,
	// at most a week's worth.
	Days []DayStats

	CalorieTarget  float64
	BodyWeightLb   float64
	SleepGoalHours float64
}

const (
	plateauCalorieDeficit = 300
	lowProteinFactor      = 0.7
	shortSleepFactor      = 0.7
	quadVolumeThreshold   = 1000
)

// Suggest evaluates every rule independently over the recent series and
// returns all that fire. An empty series yields no suggestions.
func Suggest(in SuggestInputs) []Suggestion {
	var suggestions []Suggestion
	if len(in.Days) == 0 {
		return suggestions
	}

	if s := plateauRule(in); s != nil {
		suggestions = append(suggestions, *s)
	}
	if s := lowProteinRule(in); s != nil {
		suggestions = append(suggestions, *s)
	}
	if s := shortSleepRule(in); s != nil {
		suggestions = append(suggestions, *s)
	}
	if s := quadRecoveryRule(in); s != nil {
		suggestions = append(suggestions, *s)
	}
	return suggestions
}

// plateauRule fires when training volume stopped climbing while eating
// well under target. Needs at least 3 volume points; with fewer than 6
// the older window shrinks to whatever points remain.
func plateauRule(in SuggestInputs) *Suggestion {
	var volumes []float64
	for _, d := range in.Days {
		if d.WorkoutVolume > 0 {
			volumes = append(volumes, d.WorkoutVolume)
		}
	}
	if len(volumes) < 3 {
		return nil
	}

	recent := meanOf(volumes[:3])
	older := recent
	if len(volumes) > 3 {
		older = meanOf(volumes[3:min(6, len(volumes))])
	}
	if recent > older {
		return nil
	}

	var calorieSum float64
	for _, d := range in.Days {
		calorieSum += d.Calories
	}
	meanCalories := calorieSum / float64(len(in.Days))
	if in.CalorieTarget-meanCalories <= plateauCalorieDeficit {
		return nil
	}

	return &Suggestion{
		Category: SuggestionNutrition,
		Priority: PriorityHigh,
		Title:    "Volume plateau while under-eating",
		Message: fmt.Sprintf(
			"Training volume has stalled and you average %.0f kcal below target. Consider adding carbs around your workouts.",
			in.CalorieTarget-meanCalories,
		),
		Actionable: true,
	}
}

// lowProteinRule checks the weekly mean against the gram-per-pound
// guideline scaled by the leniency factor.
func lowProteinRule(in SuggestInputs) *Suggestion {
	if in.BodyWeightLb <= 0 {
		return nil
	}
	var proteinSum float64
	for _, d := range in.Days {
		proteinSum += d.ProteinGrams
	}
	meanProtein := proteinSum / float64(len(in.Days))
	if meanProtein >= lowProteinFactor*in.BodyWeightLb {
		return nil
	}

	return &Suggestion{
		Category: SuggestionNutrition,
		Priority: PriorityMedium,
		Title:    "Protein intake below target",
		Message: fmt.Sprintf(
			"Average protein over the last week is %.0f g, aim for at least %.0f g per day.",
			meanProtein, lowProteinFactor*in.BodyWeightLb,
		),
		Actionable: true,
	}
}

func shortSleepRule(in SuggestInputs) *Suggestion {
	latest := in.Days[0]
	if latest.SleepHours == nil || in.SleepGoalHours <= 0 {
		return nil
	}
	if *latest.SleepHours >= shortSleepFactor*in.SleepGoalHours {
		return nil
	}

	return &Suggestion{
		Category: SuggestionRecovery,
		Priority: PriorityHigh,
		Title:    "Short sleep last night",
		Message: fmt.Sprintf(
			"You slept %.1f h against a goal of %.1f h. Cut today's volume by about 10%%.",
			*latest.SleepHours, in.SleepGoalHours,
		),
		Actionable: true,
	}
}

func quadRecoveryRule(in SuggestInputs) *Suggestion {
	if in.Days[0].QuadVolume24h <= quadVolumeThreshold {
		return nil
	}

	return &Suggestion{
		Category: SuggestionWorkout,
		Priority: PriorityLow,
		Title:    "Quads still recovering",
		Message: fmt.Sprintf(
			"Heavy quad work in the last 24 hours (%.0f volume). An upper body focus today would let them recover.",
			in.Days[0].QuadVolume24h,
		),
		Actionable: false,
	}
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
