package strength

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlukic92/fitpulse/internal/exercises"
	"github.com/mlukic92/fitpulse/internal/profile"
	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"
	"github.com/mlukic92/fitpulse/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=strength_test

type profileRepo interface {
	Get(ctx context.Context) (*profile.UserProfile, error)
}

type setsRepo interface {
	ListAllSets(ctx context.Context) ([]workouts.Set, error)
}

// Service classifies the lifter's standing per muscle group from the
// stored profile and full working-set history.
type Service struct {
	profiles profileRepo
	sets     setsRepo
}

func NewService(profiles profileRepo, sets setsRepo) *Service {
	return &Service{
		profiles: profiles,
		sets:     sets,
	}
}

// Classify returns a total map over all muscle groups. A missing profile
// degrades to all rookie instead of failing.
func (s *Service) Classify(ctx context.Context) (_ map[exercises.MuscleGroup]Category, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "strength.classify")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userProfile, err := s.profiles.Get(ctx)
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			return nil, fmt.Errorf("get profile: %w", err)
		}
		userProfile = nil
	}

	history, err := s.sets.ListAllSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}

	return Classify(userProfile, history), nil
}
