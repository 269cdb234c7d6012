package strength

import (
	"strings"

	"github.com/mlukic92/fitpulse/internal/exercises"
	"github.com/mlukic92/fitpulse/internal/profile"
)

// Category ranks a lifter within a muscle group.
type Category int

const (
	CategoryRookie Category = iota + 1
	CategoryAverage
	CategoryIntermediate
	CategoryAdvanced
	CategoryElite
)

func (c Category) String() string {
	switch c {
	case CategoryRookie:
		return "rookie"
	case CategoryAverage:
		return "average"
	case CategoryIntermediate:
		return "intermediate"
	case CategoryAdvanced:
		return "advanced"
	case CategoryElite:
		return "elite"
	}
	return "unknown"
}

func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// StandardEntry holds five ascending thresholds, rookie through elite.
// Relative entries are multiples of body weight, the rest are absolute kg.
type StandardEntry struct {
	Thresholds           [5]float64
	RelativeToBodyWeight bool
}

const femaleMultiplier = 0.65

// adjusted returns the thresholds with the sex multiplier applied to the
// source values, before any body-weight scaling.
func (e StandardEntry) adjusted(sex profile.Sex) [5]float64 {
	if sex != profile.SexFemale {
		return e.Thresholds
	}
	var out [5]float64
	for i, t := range e.Thresholds {
		out[i] = t * femaleMultiplier
	}
	return out
}

// keywordStandards maps exercise-name keywords to reference entries.
// Matched by case-insensitive containment against the exercise name.
var keywordStandards = map[string]StandardEntry{
	"bench press":    {Thresholds: [5]float64{0.5, 0.75, 1.0, 1.5, 2.0}, RelativeToBodyWeight: true},
	"squat":          {Thresholds: [5]float64{0.75, 1.0, 1.5, 2.0, 2.5}, RelativeToBodyWeight: true},
	"deadlift":       {Thresholds: [5]float64{1.0, 1.25, 1.75, 2.25, 2.75}, RelativeToBodyWeight: true},
	"overhead press": {Thresholds: [5]float64{0.35, 0.5, 0.7, 0.9, 1.1}, RelativeToBodyWeight: true},
	"shoulder press": {Thresholds: [5]float64{0.35, 0.5, 0.7, 0.9, 1.1}, RelativeToBodyWeight: true},
	"barbell row":    {Thresholds: [5]float64{0.5, 0.7, 0.9, 1.2, 1.5}, RelativeToBodyWeight: true},
	"pull up":        {Thresholds: [5]float64{0.0, 0.05, 0.2, 0.4, 0.6}, RelativeToBodyWeight: true},
	"pull-up":        {Thresholds: [5]float64{0.0, 0.05, 0.2, 0.4, 0.6}, RelativeToBodyWeight: true},
	"chin up":        {Thresholds: [5]float64{0.0, 0.05, 0.2, 0.4, 0.6}, RelativeToBodyWeight: true},
	"dip":            {Thresholds: [5]float64{0.0, 0.1, 0.3, 0.5, 0.75}, RelativeToBodyWeight: true},
	"curl":           {Thresholds: [5]float64{0.2, 0.3, 0.45, 0.6, 0.75}, RelativeToBodyWeight: true},
	"lunge":          {Thresholds: [5]float64{0.4, 0.6, 0.85, 1.1, 1.4}, RelativeToBodyWeight: true},
	"leg press":      {Thresholds: [5]float64{1.2, 1.8, 2.5, 3.2, 4.0}, RelativeToBodyWeight: true},
	"hip thrust":     {Thresholds: [5]float64{0.8, 1.2, 1.7, 2.2, 2.8}, RelativeToBodyWeight: true},
	"romanian":       {Thresholds: [5]float64{0.8, 1.1, 1.5, 1.9, 2.3}, RelativeToBodyWeight: true},
	"calf raise":     {Thresholds: [5]float64{0.6, 0.9, 1.3, 1.7, 2.1}, RelativeToBodyWeight: true},
	"lateral raise":  {Thresholds: [5]float64{0.08, 0.12, 0.18, 0.25, 0.33}, RelativeToBodyWeight: true},
	"plank":          {Thresholds: [5]float64{0, 10, 20, 35, 50}},
}

// groupDefaults back up exercises whose name matches no keyword.
var groupDefaults = map[exercises.MuscleGroup]StandardEntry{
	exercises.MuscleGroupChest:      {Thresholds: [5]float64{0.4, 0.6, 0.85, 1.2, 1.6}, RelativeToBodyWeight: true},
	exercises.MuscleGroupBack:       {Thresholds: [5]float64{0.45, 0.65, 0.9, 1.2, 1.5}, RelativeToBodyWeight: true},
	exercises.MuscleGroupShoulders:  {Thresholds: [5]float64{0.3, 0.45, 0.6, 0.8, 1.0}, RelativeToBodyWeight: true},
	exercises.MuscleGroupBiceps:     {Thresholds: [5]float64{0.2, 0.3, 0.45, 0.6, 0.75}, RelativeToBodyWeight: true},
	exercises.MuscleGroupTriceps:    {Thresholds: [5]float64{0.25, 0.35, 0.5, 0.65, 0.85}, RelativeToBodyWeight: true},
	exercises.MuscleGroupForearms:   {Thresholds: [5]float64{0.15, 0.25, 0.35, 0.5, 0.65}, RelativeToBodyWeight: true},
	exercises.MuscleGroupQuads:      {Thresholds: [5]float64{0.7, 1.0, 1.4, 1.9, 2.4}, RelativeToBodyWeight: true},
	exercises.MuscleGroupHamstrings: {Thresholds: [5]float64{0.6, 0.9, 1.3, 1.7, 2.1}, RelativeToBodyWeight: true},
	exercises.MuscleGroupGlutes:     {Thresholds: [5]float64{0.7, 1.0, 1.5, 2.0, 2.5}, RelativeToBodyWeight: true},
	exercises.MuscleGroupCalves:     {Thresholds: [5]float64{0.6, 0.9, 1.3, 1.7, 2.1}, RelativeToBodyWeight: true},
	exercises.MuscleGroupCore:       {Thresholds: [5]float64{0.1, 0.2, 0.35, 0.5, 0.7}, RelativeToBodyWeight: true},
	exercises.MuscleGroupOther:      {Thresholds: [5]float64{0.3, 0.5, 0.7, 1.0, 1.3}, RelativeToBodyWeight: true},
}

// standardFor picks the best reference entry for an exercise name by
// keyword containment, falling back to the muscle group default.
func standardFor(exerciseName string, group exercises.MuscleGroup) StandardEntry {
	lowered := strings.ToLower(exerciseName)
	bestLen := 0
	var best StandardEntry
	for keyword, entry := range keywordStandards {
		if strings.Contains(lowered, keyword) && len(keyword) > bestLen {
			bestLen = len(keyword)
			best = entry
		}
	}
	if bestLen > 0 {
		return best
	}
	return groupDefaults[group]
}
