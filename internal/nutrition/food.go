package nutrition

import (
	"fmt"
	"time"
)

// Provenance records which tier a stored food item originated from.
type Provenance string

const (
	ProvenanceUserHistory Provenance = "user_history"
	ProvenanceBundled     Provenance = "bundled"
	ProvenanceCatalog     Provenance = "catalog"
	ProvenanceManual      Provenance = "manual"
)

func (p Provenance) IsValid() bool {
	switch p {
	case ProvenanceUserHistory, ProvenanceBundled, ProvenanceCatalog, ProvenanceManual:
		return true
	}
	return false
}

type MealTag string

const (
	MealBreakfast   MealTag = "breakfast"
	MealLunch       MealTag = "lunch"
	MealDinner      MealTag = "dinner"
	MealSnack       MealTag = "snack"
	MealPreWorkout  MealTag = "pre_workout"
	MealPostWorkout MealTag = "post_workout"
)

func (m MealTag) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack, MealPreWorkout, MealPostWorkout:
		return true
	}
	return false
}

const highProteinPer100g = 25

// FoodItem is one entry of the local food store, macros per 100 g.
type FoodItem struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Barcode    string     `json:"barcode,omitempty"`
	Brand      string     `json:"brand,omitempty"`
	Calories   float64    `json:"calories"`
	Protein    float64    `json:"protein"`
	Carbs      float64    `json:"carbs"`
	Fat        float64    `json:"fat"`
	Fiber      *float64   `json:"fiber,omitempty"`
	Sugar      *float64   `json:"sugar,omitempty"`
	Provenance Provenance `json:"provenance"`
	LastUsed   time.Time  `json:"lastUsed"`
	UseCount   int        `json:"useCount"`
	Favorite   bool       `json:"favorite"`
}

func (f FoodItem) IsHighProtein() bool {
	return f.Protein >= highProteinPer100g
}

// MacrosForServing scales the per-100g macros to the given serving.
func (f FoodItem) MacrosForServing(servingGrams float64) Macros {
	factor := servingGrams / 100
	return Macros{
		Calories: f.Calories * factor,
		Protein:  f.Protein * factor,
		Carbs:    f.Carbs * factor,
		Fat:      f.Fat * factor,
	}
}

type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// LoggedFood is one eaten portion. Macro totals are cached on the row so
// they survive deletion of the source FoodItem.
type LoggedFood struct {
	ID           int       `json:"id"`
	FoodItemID   *int      `json:"foodItemId,omitempty"`
	Name         string    `json:"name"`
	ServingGrams float64   `json:"servingGrams"`
	Meal         MealTag   `json:"meal"`
	Macros       Macros    `json:"macros"`
	LoggedAt     time.Time `json:"loggedAt"`
}

func (lf LoggedFood) String() string {
	return fmt.Sprintf("logged food [%d]: %s %.0fg @ %s", lf.ID, lf.Name, lf.ServingGrams, lf.Meal)
}
