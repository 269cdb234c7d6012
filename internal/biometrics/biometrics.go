package biometrics

import (
	"context"
	"time"
)

// Snapshot holds the biometric signals reported for one calendar day.
// All fields are optional, the platform bridge may have nothing for a day.
type Snapshot struct {
	ID             int       `json:"id"`
	Date           time.Time `json:"date"`
	SleepHours     *float64  `json:"sleepHours,omitempty"`
	BodyWeightKg   *float64  `json:"bodyWeightKg,omitempty"`
	ActiveCalories *float64  `json:"activeCalories,omitempty"`
	Steps          *int      `json:"steps,omitempty"`
}

// Source is the read side of the platform biometric bridge. The repo-backed
// implementation serves whatever the client app last reported.
type Source interface {
	SleepHours(ctx context.Context, date time.Time) (*float64, error)
	BodyWeight(ctx context.Context) (*float64, error)
	ActiveCalories(ctx context.Context, date time.Time) (*float64, error)
	Steps(ctx context.Context, date time.Time) (*int, error)
}
