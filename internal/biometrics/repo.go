package biometrics

import (
	"context"
	"errors"
	"time"

	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"
	"github.com/mlukic92/fitpulse/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSnapshotNotFound = errors.New("biometric snapshot not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert stores the snapshot for its date, replacing any previous report.
func (r *Repo) Upsert(ctx context.Context, snapshot Snapshot) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.biometrics.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day := pkg.TruncateToDay(snapshot.Date)
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO biometric_snapshot (date, sleep_hours, body_weight_kg, active_calories, steps)
			VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date) DO UPDATE SET
			sleep_hours = EXCLUDED.sleep_hours,
			body_weight_kg = EXCLUDED.body_weight_kg,
			active_calories = EXCLUDED.active_calories,
			steps = EXCLUDED.steps
		RETURNING id;`,
		day, snapshot.SleepHours, snapshot.BodyWeightKg, snapshot.ActiveCalories, snapshot.Steps,
	).Scan(&snapshot.ID)
	if err != nil {
		return nil, err
	}

	snapshot.Date = day
	span.SetAttributes(attribute.Int("snapshot.id", snapshot.ID))
	return &snapshot, nil
}

func (r *Repo) ForDate(ctx context.Context, date time.Time) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.biometrics.fordate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day := pkg.TruncateToDay(date)
	var s Snapshot
	err = r.db.QueryRow(
		ctx,
		`SELECT id, date, sleep_hours, body_weight_kg, active_calories, steps
			FROM biometric_snapshot WHERE date = $1;`,
		day,
	).Scan(&s.ID, &s.Date, &s.SleepHours, &s.BodyWeightKg, &s.ActiveCalories, &s.Steps)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}
	return &s, nil
}

// SleepHours implements Source.
func (r *Repo) SleepHours(ctx context.Context, date time.Time) (*float64, error) {
	s, err := r.ForDate(ctx, date)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.SleepHours, nil
}

// BodyWeight implements Source, returning the latest reported weight.
func (r *Repo) BodyWeight(ctx context.Context) (_ *float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.biometrics.bodyweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var weight *float64
	err = r.db.QueryRow(
		ctx,
		`SELECT body_weight_kg FROM biometric_snapshot
			WHERE body_weight_kg IS NOT NULL
			ORDER BY date DESC
			LIMIT 1;`,
	).Scan(&weight)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return weight, nil
}

// ActiveCalories implements Source.
func (r *Repo) ActiveCalories(ctx context.Context, date time.Time) (*float64, error) {
	s, err := r.ForDate(ctx, date)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.ActiveCalories, nil
}

// Steps implements Source.
func (r *Repo) Steps(ctx context.Context, date time.Time) (*int, error) {
	s, err := r.ForDate(ctx, date)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.Steps, nil
}
