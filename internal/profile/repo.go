package profile

import (
	"context"
	"errors"
	"time"

	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var p UserProfile
	var sex, activity, goal string
	err = r.db.QueryRow(
		ctx,
		`SELECT id, protein_target_g, carb_target_g, fat_target_g, calorie_target,
				body_weight_kg, height_cm, age, sex, sleep_goal_hours, activity_level,
				primary_goal, updated_at
			FROM user_profile
			ORDER BY id
			LIMIT 1;`,
	).Scan(
		&p.ID, &p.ProteinTargetG, &p.CarbTargetG, &p.FatTargetG, &p.CalorieTarget,
		&p.BodyWeightKg, &p.HeightCm, &p.Age, &sex, &p.SleepGoalHours, &activity,
		&goal, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	p.Sex = Sex(sex)
	p.ActivityLevel = ActivityLevel(activity)
	p.PrimaryGoal = Goal(goal)
	return &p, nil
}

// Save upserts the singleton profile row.
func (r *Repo) Save(ctx context.Context, p *UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p.UpdatedAt = time.Now()

	return r.db.QueryRow(
		ctx,
		`INSERT INTO user_profile
			(id, protein_target_g, carb_target_g, fat_target_g, calorie_target,
				body_weight_kg, height_cm, age, sex, sleep_goal_hours, activity_level,
				primary_goal, updated_at)
			VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			protein_target_g = EXCLUDED.protein_target_g,
			carb_target_g = EXCLUDED.carb_target_g,
			fat_target_g = EXCLUDED.fat_target_g,
			calorie_target = EXCLUDED.calorie_target,
			body_weight_kg = EXCLUDED.body_weight_kg,
			height_cm = EXCLUDED.height_cm,
			age = EXCLUDED.age,
			sex = EXCLUDED.sex,
			sleep_goal_hours = EXCLUDED.sleep_goal_hours,
			activity_level = EXCLUDED.activity_level,
			primary_goal = EXCLUDED.primary_goal,
			updated_at = EXCLUDED.updated_at
		RETURNING id;`,
		p.ProteinTargetG, p.CarbTargetG, p.FatTargetG, p.CalorieTarget,
		p.BodyWeightKg, p.HeightCm, p.Age, p.Sex, p.SleepGoalHours, p.ActivityLevel,
		p.PrimaryGoal, p.UpdatedAt,
	).Scan(&p.ID)
}
