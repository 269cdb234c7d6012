package exercises

import "time"

// MuscleGroup is the primary muscle group an exercise targets.
type MuscleGroup string

const (
	MuscleGroupChest      MuscleGroup = "chest"
	MuscleGroupBack       MuscleGroup = "back"
	MuscleGroupShoulders  MuscleGroup = "shoulders"
	MuscleGroupBiceps     MuscleGroup = "biceps"
	MuscleGroupTriceps    MuscleGroup = "triceps"
	MuscleGroupForearms   MuscleGroup = "forearms"
	MuscleGroupQuads      MuscleGroup = "quads"
	MuscleGroupHamstrings MuscleGroup = "hamstrings"
	MuscleGroupGlutes     MuscleGroup = "glutes"
	MuscleGroupCalves     MuscleGroup = "calves"
	MuscleGroupCore       MuscleGroup = "core"
	MuscleGroupOther      MuscleGroup = "other"
)

// AllMuscleGroups lists every muscle group, in a stable order.
var AllMuscleGroups = []MuscleGroup{
	MuscleGroupChest,
	MuscleGroupBack,
	MuscleGroupShoulders,
	MuscleGroupBiceps,
	MuscleGroupTriceps,
	MuscleGroupForearms,
	MuscleGroupQuads,
	MuscleGroupHamstrings,
	MuscleGroupGlutes,
	MuscleGroupCalves,
	MuscleGroupCore,
	MuscleGroupOther,
}

func (mg MuscleGroup) String() string {
	return string(mg)
}

func (mg MuscleGroup) IsValid() bool {
	for _, known := range AllMuscleGroups {
		if mg == known {
			return true
		}
	}
	return false
}

type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentMachine    Equipment = "machine"
	EquipmentCable      Equipment = "cable"
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentBand       Equipment = "band"
	EquipmentOther      Equipment = "other"
)

// Exercise is immutable reference data, imported once from the bundled
// catalog. Workout sets reference exercises by ID; deleting an exercise
// must not orphan the numeric data of historical sets.
type Exercise struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	Equipment   Equipment   `json:"equipment"`
	Compound    bool        `json:"compound"`
	DefaultReps string      `json:"defaultReps,omitempty"`
	TempoHint   string      `json:"tempoHint,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}
