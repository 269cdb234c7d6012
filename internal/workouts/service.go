package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"
	"github.com/mlukic92/fitpulse/pkg"
)

var (
	ErrNoActiveWorkout         = errors.New("no active workout")
	ErrWorkoutInProgress       = errors.New("another workout is already in progress")
	ErrWorkoutAlreadyCompleted = errors.New("workout already completed")
	ErrInvalidSet              = errors.New("invalid set")
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	Get(ctx context.Context, id int) (*Workout, error)
	GetOpen(ctx context.Context) (*Workout, error)
	Update(ctx context.Context, workout *Workout) error
	Delete(ctx context.Context, id int) error
	AddSet(ctx context.Context, set Set) (*Set, error)
	ListCompleted(ctx context.Context, from, to *time.Time) ([]Workout, error)
}

type Service struct {
	repo workoutsRepo
	now  func() time.Time
}

func NewService(repo workoutsRepo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Start opens a new workout. Only one workout may be open at a time.
func (s *Service) Start(ctx context.Context) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.repo.GetOpen(ctx); err == nil {
		return nil, ErrWorkoutInProgress
	} else if !errors.Is(err, ErrWorkoutNotFound) {
		return nil, fmt.Errorf("check open workout: %w", err)
	}

	now := s.now()
	workout, err := s.repo.Add(ctx, Workout{
		Date:      pkg.TruncateToDay(now),
		StartedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}
	return workout, nil
}

// AddSet logs a set against the currently open workout. Logging a set with
// no active workout is a recoverable precondition failure, nothing is
// written.
func (s *Service) AddSet(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.addset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validateSet(set); err != nil {
		return nil, err
	}

	open, err := s.repo.GetOpen(ctx)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return nil, ErrNoActiveWorkout
		}
		return nil, fmt.Errorf("get open workout: %w", err)
	}

	set.WorkoutID = open.ID
	if set.CreatedAt.IsZero() {
		set.CreatedAt = s.now()
	}

	added, err := s.repo.AddSet(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("add set: %w", err)
	}
	return added, nil
}

// Finish completes the currently open workout. Completing twice is a
// precondition failure.
func (s *Service) Finish(ctx context.Context) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	open, err := s.repo.GetOpen(ctx)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			return nil, ErrNoActiveWorkout
		}
		return nil, fmt.Errorf("get open workout: %w", err)
	}
	if open.Completed {
		return nil, ErrWorkoutAlreadyCompleted
	}

	finishedAt := s.now()
	open.FinishedAt = &finishedAt
	open.Completed = true

	if err := s.repo.Update(ctx, open); err != nil {
		return nil, fmt.Errorf("update workout: %w", err)
	}
	return open, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Workout, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListCompleted(ctx context.Context, from, to *time.Time) ([]Workout, error) {
	return s.repo.ListCompleted(ctx, from, to)
}

func validateSet(set Set) error {
	if set.Reps <= 0 {
		return fmt.Errorf("%w: reps must be a positive integer", ErrInvalidSet)
	}
	if set.WeightKg < 0 {
		return fmt.Errorf("%w: weight must not be negative", ErrInvalidSet)
	}
	if set.RPE != nil && (*set.RPE < 1 || *set.RPE > 10) {
		return fmt.Errorf("%w: rpe must be within [1, 10]", ErrInvalidSet)
	}
	if set.ExerciseName == "" {
		return fmt.Errorf("%w: exercise name empty", ErrInvalidSet)
	}
	if !set.MuscleGroup.IsValid() {
		return fmt.Errorf("%w: unknown muscle group %q", ErrInvalidSet, set.MuscleGroup)
	}
	return nil
}
