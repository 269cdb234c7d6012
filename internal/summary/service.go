package summary

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mlukic92/fitpulse/internal/exercises"
	"github.com/mlukic92/fitpulse/internal/nutrition"
	"github.com/mlukic92/fitpulse/internal/profile"
	"github.com/mlukic92/fitpulse/internal/recovery"
	"github.com/mlukic92/fitpulse/internal/telemetry/metrics"
	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"
	"github.com/mlukic92/fitpulse/internal/workouts"
	"github.com/mlukic92/fitpulse/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// ErrWorkoutNotCompleted rejects buffer requests for open workouts.
var ErrWorkoutNotCompleted = errors.New("workout not completed")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=summary_test

type summariesRepo interface {
	Upsert(ctx context.Context, s DailySummary) (*DailySummary, error)
	GetByDate(ctx context.Context, date time.Time) (*DailySummary, error)
	GetRange(ctx context.Context, from, to time.Time) ([]DailySummary, error)
	GetRecent(ctx context.Context, limit int) ([]DailySummary, error)
}

type loggedFoodsRepo interface {
	LoggedForDay(ctx context.Context, day time.Time) ([]nutrition.LoggedFood, error)
}

type workoutsRepo interface {
	Get(ctx context.Context, id int) (*workouts.Workout, error)
	ListCompleted(ctx context.Context, from, to *time.Time) ([]workouts.Workout, error)
	LastCompletedAt(ctx context.Context) (*time.Time, error)
}

type profilesRepo interface {
	Get(ctx context.Context) (*profile.UserProfile, error)
}

type biometricsSource interface {
	SleepHours(ctx context.Context, date time.Time) (*float64, error)
	BodyWeight(ctx context.Context) (*float64, error)
	ActiveCalories(ctx context.Context, date time.Time) (*float64, error)
	Steps(ctx context.Context, date time.Time) (*int, error)
}

// Service recomputes daily rollups and derives correlation series and
// suggestions from them.
type Service struct {
	summaries  summariesRepo
	foods      loggedFoodsRepo
	workouts   workoutsRepo
	profiles   profilesRepo
	biometrics biometricsSource
	metrics    *metrics.Manager

	suggestionWindow int
	now              func() time.Time

	// one recompute at a time, repeated calls replace rather than race
	recomputeMutex sync.Mutex
}

type ServiceParams struct {
	Summaries        summariesRepo
	Foods            loggedFoodsRepo
	Workouts         workoutsRepo
	Profiles         profilesRepo
	Biometrics       biometricsSource
	Metrics          *metrics.Manager
	SuggestionWindow int
}

func NewService(params ServiceParams) *Service {
	return &Service{
		summaries:        params.Summaries,
		foods:            params.Foods,
		workouts:         params.Workouts,
		profiles:         params.Profiles,
		biometrics:       params.Biometrics,
		metrics:          params.Metrics,
		suggestionWindow: params.SuggestionWindow,
		now:              time.Now,
	}
}

// ComputeDailySummary recomputes the rollup for the given date from
// scratch. Idempotent, safe to call any number of times.
func (s *Service) ComputeDailySummary(ctx context.Context, date time.Time) (_ *DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summary.compute")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.Format("2006-01-02")))

	s.recomputeMutex.Lock()
	defer s.recomputeMutex.Unlock()

	summary := DailySummary{Date: pkg.TruncateToDay(date)}

	loggedFoods, err := s.foods.LoggedForDay(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("logged foods for day: %w", err)
	}
	for _, lf := range loggedFoods {
		summary.Calories += lf.Macros.Calories
		summary.ProteinGrams += lf.Macros.Protein
		summary.CarbsGrams += lf.Macros.Carbs
		summary.FatGrams += lf.Macros.Fat
	}

	dayStart := pkg.TruncateToDay(date)
	dayEnd := dayStart.Add(24 * time.Hour)
	dayWorkouts, err := s.workouts.ListCompleted(ctx, &dayStart, &dayEnd)
	if err != nil {
		return nil, fmt.Errorf("completed workouts for day: %w", err)
	}
	var dayVolume, rpeSum float64
	var rpeCount int
	for i := range dayWorkouts {
		w := &dayWorkouts[i]
		dayVolume += w.TotalVolume()
		summary.WorkoutMinutes += w.DurationMinutes()
		for _, set := range w.Sets {
			if set.RPE != nil {
				rpeSum += *set.RPE
				rpeCount++
			}
		}
	}
	summary.WorkoutCount = len(dayWorkouts)
	summary.WorkoutVolume = dayVolume
	if rpeCount > 0 {
		summary.AverageRPE = rpeSum / float64(rpeCount)
	}

	// biometric reads degrade to unknown, never fail the recompute
	sleepHours, err := s.biometrics.SleepHours(ctx, date)
	if err != nil {
		log.Errorf("daily summary, sleep hours for %s: %s", dayStart.Format("2006-01-02"), err)
	} else {
		summary.SleepHours = sleepHours
	}
	bodyWeight, err := s.biometrics.BodyWeight(ctx)
	if err != nil {
		log.Errorf("daily summary, body weight: %s", err)
	} else {
		summary.BodyWeightKg = bodyWeight
	}
	activeCalories, err := s.biometrics.ActiveCalories(ctx, date)
	if err != nil {
		log.Errorf("daily summary, active calories for %s: %s", dayStart.Format("2006-01-02"), err)
	} else {
		summary.ActiveCalories = activeCalories
	}
	steps, err := s.biometrics.Steps(ctx, date)
	if err != nil {
		log.Errorf("daily summary, steps for %s: %s", dayStart.Format("2006-01-02"), err)
	} else {
		summary.Steps = steps
	}

	userProfile, err := s.profiles.Get(ctx)
	if err != nil && !errors.Is(err, profile.ErrProfileNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if userProfile != nil && userProfile.CalorieTarget > 0 {
		summary.CalorieBalance = summary.Calories - userProfile.CalorieTarget
	}

	scoreInputs := recovery.ScoreInputs{
		SleepHours: summary.SleepHours,
		Now:        s.now(),
	}
	if summary.ProteinGrams > 0 {
		protein := summary.ProteinGrams
		scoreInputs.ProteinGrams = &protein
	}
	if userProfile != nil {
		scoreInputs.SleepGoalHours = userProfile.SleepGoalHours
		scoreInputs.TargetProteinGrams = userProfile.ProteinTargetG
	}
	lastWorkoutAt, err := s.workouts.LastCompletedAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("last completed workout: %w", err)
	}
	scoreInputs.LastWorkoutAt = lastWorkoutAt
	summary.RecoveryScore = recovery.ComputeScore(scoreInputs)

	summary.VolumePercentile, err = s.volumePercentile(ctx, dayStart, dayEnd, dayVolume, len(dayWorkouts))
	if err != nil {
		return nil, err
	}

	stored, err := s.summaries.Upsert(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("store daily summary: %w", err)
	}

	s.metrics.CounterSummaryRecomputes.Inc()
	return stored, nil
}

// volumePercentile ranks the day's volume against all completed workouts
// outside the day itself.
func (s *Service) volumePercentile(ctx context.Context, dayStart, dayEnd time.Time, dayVolume float64, dayWorkoutCount int) (float64, error) {
	if dayWorkoutCount == 0 {
		return 0, nil
	}

	allWorkouts, err := s.workouts.ListCompleted(ctx, nil, nil)
	if err != nil {
		return 0, fmt.Errorf("all completed workouts: %w", err)
	}

	var historical []float64
	for i := range allWorkouts {
		w := &allWorkouts[i]
		if !w.Date.Before(dayStart) && w.Date.Before(dayEnd) {
			continue
		}
		historical = append(historical, w.TotalVolume())
	}
	return recovery.VolumePercentile(dayVolume, historical), nil
}

// RecoveryBuffer computes the post-workout macro adjustment for a
// completed workout, ranked against the rest of the history.
func (s *Service) RecoveryBuffer(ctx context.Context, workoutID int) (_ *recovery.Buffer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summary.recoveryBuffer")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workout, err := s.workouts.Get(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}
	if !workout.Completed {
		return nil, ErrWorkoutNotCompleted
	}

	allWorkouts, err := s.workouts.ListCompleted(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("all completed workouts: %w", err)
	}

	var historical []float64
	for i := range allWorkouts {
		w := &allWorkouts[i]
		if w.ID == workout.ID {
			continue
		}
		historical = append(historical, w.TotalVolume())
	}

	percentile := recovery.VolumePercentile(workout.TotalVolume(), historical)
	buffer := recovery.ComputeBuffer(percentile)
	return &buffer, nil
}

// GenerateCorrelationData builds the ascending series for the last
// `days` days, one point per existing summary.
func (s *Service) GenerateCorrelationData(ctx context.Context, days int) (_ *CorrelationSeries, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summary.correlation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("days", days))

	to := s.now()
	from := to.AddDate(0, 0, -days)
	summaries, err := s.summaries.GetRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("summaries range: %w", err)
	}

	series := &CorrelationSeries{Points: make([]CorrelationPoint, 0, len(summaries))}
	for _, ds := range summaries {
		series.Points = append(series.Points, CorrelationPoint{
			Date:          ds.Date,
			ProteinGrams:  ds.ProteinGrams,
			Calories:      ds.Calories,
			WorkoutVolume: ds.WorkoutVolume,
			RecoveryScore: ds.RecoveryScore,
			SleepHours:    ds.SleepHours,
		})
	}
	return series, nil
}

// Suggestions evaluates the suggestion rules over the most recent
// summaries.
func (s *Service) Suggestions(ctx context.Context) (_ []recovery.Suggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "summary.suggestions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	recent, err := s.summaries.GetRecent(ctx, s.suggestionWindow)
	if err != nil {
		return nil, fmt.Errorf("recent summaries: %w", err)
	}

	inputs := recovery.SuggestInputs{
		Days: make([]recovery.DayStats, 0, len(recent)),
	}
	for _, ds := range recent {
		inputs.Days = append(inputs.Days, recovery.DayStats{
			Date:          ds.Date,
			Calories:      ds.Calories,
			ProteinGrams:  ds.ProteinGrams,
			WorkoutVolume: ds.WorkoutVolume,
			SleepHours:    ds.SleepHours,
		})
	}

	userProfile, err := s.profiles.Get(ctx)
	if err != nil && !errors.Is(err, profile.ErrProfileNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if userProfile != nil {
		inputs.CalorieTarget = userProfile.CalorieTarget
		inputs.BodyWeightLb = userProfile.BodyWeightLb()
		inputs.SleepGoalHours = userProfile.SleepGoalHours
	}

	if len(inputs.Days) > 0 {
		quadVolume, quadErr := s.quadVolumeLast24h(ctx)
		if quadErr != nil {
			log.Errorf("suggestions, quad volume: %s", quadErr)
		} else {
			inputs.Days[0].QuadVolume24h = quadVolume
		}
	}

	return recovery.Suggest(inputs), nil
}

func (s *Service) quadVolumeLast24h(ctx context.Context) (float64, error) {
	from := s.now().Add(-24 * time.Hour)
	recentWorkouts, err := s.workouts.ListCompleted(ctx, &from, nil)
	if err != nil {
		return 0, err
	}

	var quadVolume float64
	for i := range recentWorkouts {
		byGroup := recentWorkouts[i].VolumeByMuscleGroup()
		quadVolume += byGroup[exercises.MuscleGroupQuads]
	}
	return quadVolume, nil
}

func (s *Service) GetByDate(ctx context.Context, date time.Time) (*DailySummary, error) {
	return s.summaries.GetByDate(ctx, date)
}
