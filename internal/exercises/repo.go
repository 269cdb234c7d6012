package exercises

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// EnsureImported writes the bundled catalog into the exercise table, but only
// when the table is still empty. Reference data is immutable after import.
func (r *Repo) EnsureImported(ctx context.Context, catalog []Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.ensureImported")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM exercise;`).Scan(&count); err != nil {
		return fmt.Errorf("count exercises: %w", err)
	}
	if count > 0 {
		span.SetAttributes(attribute.Bool("already_imported", true))
		return nil
	}

	for _, e := range catalog {
		if _, err := r.db.Exec(
			ctx,
			`INSERT INTO exercise
				(name, muscle_group, equipment, compound, default_reps, tempo_hint, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			e.Name, e.MuscleGroup, e.Equipment, e.Compound, e.DefaultReps, e.TempoHint, time.Now(),
		); err != nil {
			return fmt.Errorf("insert exercise %q: %w", e.Name, err)
		}
	}

	span.SetAttributes(attribute.Int("imported", len(catalog)))
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, muscle_group, equipment, compound, default_reps, tempo_hint, created_at
			FROM exercise WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	found, err := r.rows2exercises(rows)
	if err != nil {
		return nil, err
	}
	if len(found) != 1 {
		return nil, ErrExerciseNotFound
	}
	return &found[0], nil
}

func (r *Repo) ListAll(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, muscle_group, equipment, compound, default_reps, tempo_hint, created_at
			FROM exercise ORDER BY muscle_group, name;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2exercises(rows)
}

// Delete removes an exercise. Workout sets referencing it keep their numeric
// data, the exercise reference is nullified by the schema (ON DELETE SET NULL).
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

func (r *Repo) rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var found []Exercise
	for rows.Next() {
		var e Exercise
		var mg, eq string
		if err := rows.Scan(
			&e.ID, &e.Name, &mg, &eq, &e.Compound, &e.DefaultReps, &e.TempoHint, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.MuscleGroup = MuscleGroup(mg)
		e.Equipment = Equipment(eq)
		found = append(found, e)
	}

	if found == nil {
		found = make([]Exercise, 0)
	}
	return found, nil
}
