package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mlukic92/fitpulse/internal/exercises"
	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"
	"github.com/mlukic92/fitpulse/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrSetNotFound     = errors.New("workout set not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout (date, started_at, finished_at, completed)
			VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		workout.Date, workout.StartedAt, workout.FinishedAt, workout.Completed,
	).Scan(&workout.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))

	if workout.Sets == nil {
		workout.Sets = make([]Set, 0)
	}
	return &workout, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, started_at, finished_at, completed FROM workout WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}
	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}

	workout := workouts[0]
	workout.Sets, err = r.setsForWorkout(ctx, workout.ID)
	if err != nil {
		return nil, fmt.Errorf("sets for workout %d: %w", workout.ID, err)
	}
	return &workout, nil
}

// GetOpen returns the single workout started but not yet completed, or
// ErrWorkoutNotFound if there is none.
func (r *Repo) GetOpen(ctx context.Context) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getopen")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, started_at, finished_at, completed
			FROM workout
			WHERE completed IS FALSE
			ORDER BY started_at DESC
			LIMIT 1;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}
	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}

	workout := workouts[0]
	workout.Sets, err = r.setsForWorkout(ctx, workout.ID)
	if err != nil {
		return nil, fmt.Errorf("sets for workout %d: %w", workout.ID, err)
	}
	return &workout, nil
}

func (r *Repo) Update(ctx context.Context, workout *Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", workout.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout SET date = $1, started_at = $2, finished_at = $3, completed = $4
			WHERE id = $5;`,
		workout.Date, workout.StartedAt, workout.FinishedAt, workout.Completed, workout.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// Delete removes a workout together with its sets (the workout owns them).
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM workout_set WHERE workout_id = $1;`, id); err != nil {
		return fmt.Errorf("delete workout sets: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM workout WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = ErrWorkoutNotFound
		return err
	}

	return tx.Commit(ctx)
}

func (r *Repo) AddSet(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_set
			(workout_id, exercise_id, exercise_name, muscle_group, weight_kg, reps, rpe, warmup, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;`,
		set.WorkoutID, set.ExerciseID, set.ExerciseName, set.MuscleGroup,
		set.WeightKg, set.Reps, set.RPE, set.Warmup, set.CreatedAt,
	).Scan(&set.ID)
	if err != nil {
		// the open workout can disappear between the lookup and the insert
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("set.id", set.ID))
	return &set, nil
}

// ListCompleted returns completed workouts with their sets, newest first.
// From/To filter on the workout date when set.
func (r *Repo) ListCompleted(ctx context.Context, from, to *time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listcompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, started_at, finished_at, completed
			FROM workout
			WHERE completed IS TRUE
			AND ($1::timestamp IS NULL OR date >= $1)
			AND ($2::timestamp IS NULL OR date <= $2)
			ORDER BY date DESC;`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2workouts: %w", err)
	}

	for i := range workouts {
		workouts[i].Sets, err = r.setsForWorkout(ctx, workouts[i].ID)
		if err != nil {
			return nil, fmt.Errorf("sets for workout %d: %w", workouts[i].ID, err)
		}
	}
	return workouts, nil
}

// ListAllSets returns every non-warmup set ever logged, the raw input of the
// strength classifier.
func (r *Repo) ListAllSets(ctx context.Context) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listallsets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, exercise_id, exercise_name, muscle_group, weight_kg, reps, rpe, warmup, created_at
			FROM workout_set
			WHERE warmup IS FALSE
			ORDER BY created_at DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2sets(rows)
}

// LastCompletedAt returns the finish time of the most recent completed
// workout, or nil when no workout was ever completed.
func (r *Repo) LastCompletedAt(ctx context.Context) (_ *time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.lastcompletedat")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var finishedAt *time.Time
	err = r.db.QueryRow(
		ctx,
		`SELECT finished_at FROM workout
			WHERE completed IS TRUE
			ORDER BY finished_at DESC
			LIMIT 1;`,
	).Scan(&finishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return finishedAt, nil
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.Date, &w.StartedAt, &w.FinishedAt, &w.Completed); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if workouts == nil {
		workouts = make([]Workout, 0)
	}
	return workouts, nil
}

func (r *Repo) setsForWorkout(ctx context.Context, workoutID int) ([]Set, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, exercise_id, exercise_name, muscle_group, weight_kg, reps, rpe, warmup, created_at
			FROM workout_set
			WHERE workout_id = $1
			ORDER BY created_at;`,
		workoutID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.rows2sets(rows)
}

func (r *Repo) rows2sets(rows pgx.Rows) ([]Set, error) {
	var sets []Set
	for rows.Next() {
		var s Set
		var mg string
		if err := rows.Scan(
			&s.ID, &s.WorkoutID, &s.ExerciseID, &s.ExerciseName, &mg,
			&s.WeightKg, &s.Reps, &s.RPE, &s.Warmup, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		s.MuscleGroup = exercises.MuscleGroup(mg)
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if sets == nil {
		sets = make([]Set, 0)
	}
	return sets, nil
}
