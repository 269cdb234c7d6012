package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"
	"github.com/mlukic92/fitpulse/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSummaryNotFound = errors.New("daily summary not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert writes the summary for its date. Totals replace previous values,
// nothing ever accumulates across recomputes.
func (r *Repo) Upsert(ctx context.Context, s DailySummary) (_ *DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summary.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day := pkg.TruncateToDay(s.Date)
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO daily_summary
				(date, calories, protein_grams, carbs_grams, fat_grams,
				 workout_count, workout_volume, workout_minutes, average_rpe,
				 sleep_hours, body_weight_kg, active_calories, steps,
				 recovery_score, volume_percentile, calorie_balance)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (date) DO UPDATE SET
			calories = EXCLUDED.calories,
			protein_grams = EXCLUDED.protein_grams,
			carbs_grams = EXCLUDED.carbs_grams,
			fat_grams = EXCLUDED.fat_grams,
			workout_count = EXCLUDED.workout_count,
			workout_volume = EXCLUDED.workout_volume,
			workout_minutes = EXCLUDED.workout_minutes,
			average_rpe = EXCLUDED.average_rpe,
			sleep_hours = EXCLUDED.sleep_hours,
			body_weight_kg = EXCLUDED.body_weight_kg,
			active_calories = EXCLUDED.active_calories,
			steps = EXCLUDED.steps,
			recovery_score = EXCLUDED.recovery_score,
			volume_percentile = EXCLUDED.volume_percentile,
			calorie_balance = EXCLUDED.calorie_balance
		RETURNING id;`,
		day, s.Calories, s.ProteinGrams, s.CarbsGrams, s.FatGrams,
		s.WorkoutCount, s.WorkoutVolume, s.WorkoutMinutes, s.AverageRPE,
		s.SleepHours, s.BodyWeightKg, s.ActiveCalories, s.Steps,
		s.RecoveryScore, s.VolumePercentile, s.CalorieBalance,
	).Scan(&s.ID)
	if err != nil {
		return nil, err
	}

	s.Date = day
	span.SetAttributes(attribute.Int("summary.id", s.ID))
	return &s, nil
}

func (r *Repo) GetByDate(ctx context.Context, date time.Time) (_ *DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summary.getByDate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, calories, protein_grams, carbs_grams, fat_grams,
				workout_count, workout_volume, workout_minutes, average_rpe,
				sleep_hours, body_weight_kg, active_calories, steps,
				recovery_score, volume_percentile, calorie_balance
			FROM daily_summary WHERE date = $1;`,
		pkg.TruncateToDay(date),
	)
	if err != nil {
		return nil, err
	}
	summaries, err := rows2summaries(rows)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, ErrSummaryNotFound
	}
	return &summaries[0], nil
}

// GetRange returns summaries in [from, to], ascending by date.
func (r *Repo) GetRange(ctx context.Context, from, to time.Time) (_ []DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summary.getRange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, calories, protein_grams, carbs_grams, fat_grams,
				workout_count, workout_volume, workout_minutes, average_rpe,
				sleep_hours, body_weight_kg, active_calories, steps,
				recovery_score, volume_percentile, calorie_balance
			FROM daily_summary
			WHERE date >= $1 AND date <= $2
			ORDER BY date ASC;`,
		pkg.TruncateToDay(from), pkg.TruncateToDay(to),
	)
	if err != nil {
		return nil, err
	}
	return rows2summaries(rows)
}

// GetRecent returns the newest summaries first, capped at limit.
func (r *Repo) GetRecent(ctx context.Context, limit int) (_ []DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summary.getRecent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, calories, protein_grams, carbs_grams, fat_grams,
				workout_count, workout_volume, workout_minutes, average_rpe,
				sleep_hours, body_weight_kg, active_calories, steps,
				recovery_score, volume_percentile, calorie_balance
			FROM daily_summary
			ORDER BY date DESC
			LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return rows2summaries(rows)
}

func rows2summaries(rows pgx.Rows) ([]DailySummary, error) {
	defer rows.Close()

	var summaries []DailySummary
	for rows.Next() {
		var s DailySummary
		err := rows.Scan(
			&s.ID, &s.Date, &s.Calories, &s.ProteinGrams, &s.CarbsGrams, &s.FatGrams,
			&s.WorkoutCount, &s.WorkoutVolume, &s.WorkoutMinutes, &s.AverageRPE,
			&s.SleepHours, &s.BodyWeightKg, &s.ActiveCalories, &s.Steps,
			&s.RecoveryScore, &s.VolumePercentile, &s.CalorieBalance,
		)
		if err != nil {
			return nil, fmt.Errorf("scan daily summary row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
