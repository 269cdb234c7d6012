package profile

import "time"

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (s Sex) IsValid() bool {
	return s == SexMale || s == SexFemale
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type Goal string

const (
	GoalLoseFat      Goal = "lose_fat"
	GoalGainMuscle   Goal = "gain_muscle"
	GoalMaintain     Goal = "maintain"
	GoalGainStrength Goal = "gain_strength"
)

// UserProfile is a singleton per user. Sex is used only for scaling the
// strength standards, nothing else.
type UserProfile struct {
	ID             int           `json:"id"`
	ProteinTargetG float64       `json:"proteinTargetG"`
	CarbTargetG    float64       `json:"carbTargetG"`
	FatTargetG     float64       `json:"fatTargetG"`
	CalorieTarget  float64       `json:"calorieTarget"`
	BodyWeightKg   float64       `json:"bodyWeightKg"`
	HeightCm       float64       `json:"heightCm"`
	Age            int           `json:"age"`
	Sex            Sex           `json:"sex"`
	SleepGoalHours float64       `json:"sleepGoalHours"`
	ActivityLevel  ActivityLevel `json:"activityLevel"`
	PrimaryGoal    Goal          `json:"primaryGoal"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// BodyWeightLb converts the profile body weight to pounds, the unit the
// protein intake guideline (grams per pound of body weight) is expressed in.
func (p *UserProfile) BodyWeightLb() float64 {
	return p.BodyWeightKg * 2.20462
}
