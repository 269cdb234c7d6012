package nutrition

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

var (
	ErrFoodNotFound       = errors.New("food item not found")
	ErrFoodExists         = errors.New("food item already exists")
	ErrLoggedFoodNotFound = errors.New("logged food not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// SearchHistory matches user-history food items by name substring,
// ranked by how often and how recently they were logged.
func (r *Repo) SearchHistory(ctx context.Context, query string, limit int) (_ []FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.searchHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, barcode, brand, calories, protein, carbs, fat, fiber, sugar,
				provenance, last_used, use_count, favorite
			FROM food_item
			WHERE provenance = $1 AND name ILIKE '%' || $2 || '%'
			ORDER BY use_count DESC, last_used DESC
			LIMIT $3;`,
		ProvenanceUserHistory, query, limit,
	)
	if err != nil {
		return nil, err
	}
	return rows2foodItems(rows)
}

// SearchCachedCatalog matches catalog-provenance items still within the
// freshness window.
func (r *Repo) SearchCachedCatalog(ctx context.Context, query string, freshness time.Duration, limit int) (_ []FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.searchCachedCatalog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, barcode, brand, calories, protein, carbs, fat, fiber, sugar,
				provenance, last_used, use_count, favorite
			FROM food_item
			WHERE provenance = $1 AND last_used >= $2 AND name ILIKE '%' || $3 || '%'
			ORDER BY use_count DESC, last_used DESC
			LIMIT $4;`,
		ProvenanceCatalog, time.Now().Add(-freshness), query, limit,
	)
	if err != nil {
		return nil, err
	}
	return rows2foodItems(rows)
}

func (r *Repo) GetFood(ctx context.Context, id int) (_ *FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.getFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("food.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, barcode, brand, calories, protein, carbs, fat, fiber, sugar,
				provenance, last_used, use_count, favorite
			FROM food_item WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	items, err := rows2foodItems(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrFoodNotFound
	}
	return &items[0], nil
}

func (r *Repo) GetByBarcode(ctx context.Context, barcode string) (_ *FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.getByBarcode")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, barcode, brand, calories, protein, carbs, fat, fiber, sugar,
				provenance, last_used, use_count, favorite
			FROM food_item WHERE barcode = $1
			ORDER BY last_used DESC
			LIMIT 1;`,
		barcode,
	)
	if err != nil {
		return nil, err
	}
	items, err := rows2foodItems(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrFoodNotFound
	}
	return &items[0], nil
}

// AddFood inserts a new food item and returns it with its assigned id.
func (r *Repo) AddFood(ctx context.Context, item FoodItem) (_ *FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.addFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if item.LastUsed.IsZero() {
		item.LastUsed = time.Now()
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO food_item
				(name, barcode, brand, calories, protein, carbs, fat, fiber, sugar,
				 provenance, last_used, use_count, favorite)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id;`,
		item.Name, item.Barcode, item.Brand,
		item.Calories, item.Protein, item.Carbs, item.Fat, item.Fiber, item.Sugar,
		item.Provenance, item.LastUsed, item.UseCount, item.Favorite,
	).Scan(&item.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrFoodExists
		}
		return nil, err
	}
	return &item, nil
}

// UpsertCatalogItem stores a remote catalog result locally. Items with a
// barcode are matched by it, barcodeless items are always inserted.
func (r *Repo) UpsertCatalogItem(ctx context.Context, item FoodItem) (_ *FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.upsertCatalogItem")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	item.Provenance = ProvenanceCatalog
	item.LastUsed = time.Now()

	if item.Barcode == "" {
		return r.AddFood(ctx, item)
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO food_item
				(name, barcode, brand, calories, protein, carbs, fat, fiber, sugar,
				 provenance, last_used, use_count, favorite)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 0, false)
		ON CONFLICT (barcode) WHERE barcode <> '' DO UPDATE SET
			name = EXCLUDED.name,
			brand = EXCLUDED.brand,
			calories = EXCLUDED.calories,
			protein = EXCLUDED.protein,
			carbs = EXCLUDED.carbs,
			fat = EXCLUDED.fat,
			fiber = EXCLUDED.fiber,
			sugar = EXCLUDED.sugar,
			last_used = EXCLUDED.last_used
		RETURNING id, use_count, favorite;`,
		item.Name, item.Barcode, item.Brand,
		item.Calories, item.Protein, item.Carbs, item.Fat, item.Fiber, item.Sugar,
		item.Provenance, item.LastUsed,
	).Scan(&item.ID, &item.UseCount, &item.Favorite)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// LogFood stores an eaten portion and, in the same transaction, bumps the
// source item's usage stats and promotes it into the user history, so the
// history search tier ranks it from then on. FoodItemID may be nil for
// ad-hoc entries.
func (r *Repo) LogFood(ctx context.Context, logged LoggedFood) (_ *LoggedFood, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.logFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("%w [rollback: %s]", err, rbErr)
			}
		}
	}()

	if logged.LoggedAt.IsZero() {
		logged.LoggedAt = time.Now()
	}

	err = tx.QueryRow(
		ctx,
		`INSERT INTO logged_food
				(food_item_id, name, serving_grams, meal, calories, protein, carbs, fat, logged_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		logged.FoodItemID, logged.Name, logged.ServingGrams, logged.Meal,
		logged.Macros.Calories, logged.Macros.Protein, logged.Macros.Carbs, logged.Macros.Fat,
		logged.LoggedAt,
	).Scan(&logged.ID)
	if err != nil {
		return nil, err
	}

	if logged.FoodItemID != nil {
		tag, updateErr := tx.Exec(
			ctx,
			`UPDATE food_item
				SET use_count = use_count + 1, last_used = $1, provenance = $2
				WHERE id = $3;`,
			logged.LoggedAt, ProvenanceUserHistory, *logged.FoodItemID,
		)
		if updateErr != nil {
			err = updateErr
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			err = ErrFoodNotFound
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.Int("loggedFood.id", logged.ID))
	return &logged, nil
}

// LoggedForDay returns the portions logged on the given calendar day,
// oldest first.
func (r *Repo) LoggedForDay(ctx context.Context, day time.Time) (_ []LoggedFood, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.loggedForDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from := pkg.TruncateToDay(day)
	to := from.Add(24 * time.Hour)
	rows, err := r.db.Query(
		ctx,
		`SELECT id, food_item_id, name, serving_grams, meal,
				calories, protein, carbs, fat, logged_at
			FROM logged_food
			WHERE logged_at >= $1 AND logged_at < $2
			ORDER BY logged_at ASC;`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	return rows2loggedFoods(rows)
}

func (r *Repo) DeleteLoggedFood(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.deleteLoggedFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM logged_food WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLoggedFoodNotFound
	}
	return nil
}

// DeleteFood removes a food item. Logged portions keep their cached macros,
// the foreign key is nullified by the schema.
func (r *Repo) DeleteFood(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.deleteFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM food_item WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodNotFound
	}
	return nil
}

func (r *Repo) SetFavorite(ctx context.Context, id int, favorite bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.setFavorite")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `UPDATE food_item SET favorite = $1 WHERE id = $2;`, favorite, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodNotFound
	}
	return nil
}

func (r *Repo) Favorites(ctx context.Context) (_ []FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.favorites")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, barcode, brand, calories, protein, carbs, fat, fiber, sugar,
				provenance, last_used, use_count, favorite
			FROM food_item
			WHERE favorite
			ORDER BY use_count DESC, last_used DESC;`,
	)
	if err != nil {
		return nil, err
	}
	return rows2foodItems(rows)
}

// RecentlyUsed returns the most recently logged food items.
func (r *Repo) RecentlyUsed(ctx context.Context, limit int) (_ []FoodItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.recentlyUsed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, barcode, brand, calories, protein, carbs, fat, fiber, sugar,
				provenance, last_used, use_count, favorite
			FROM food_item
			WHERE use_count > 0
			ORDER BY last_used DESC
			LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return rows2foodItems(rows)
}

func rows2foodItems(rows pgx.Rows) ([]FoodItem, error) {
	defer rows.Close()

	var items []FoodItem
	for rows.Next() {
		var f FoodItem
		var barcode, brand *string
		err := rows.Scan(
			&f.ID, &f.Name, &barcode, &brand,
			&f.Calories, &f.Protein, &f.Carbs, &f.Fat, &f.Fiber, &f.Sugar,
			&f.Provenance, &f.LastUsed, &f.UseCount, &f.Favorite,
		)
		if err != nil {
			return nil, fmt.Errorf("scan food item row: %w", err)
		}
		if barcode != nil {
			f.Barcode = *barcode
		}
		if brand != nil {
			f.Brand = *brand
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func rows2loggedFoods(rows pgx.Rows) ([]LoggedFood, error) {
	defer rows.Close()

	var foods []LoggedFood
	for rows.Next() {
		var lf LoggedFood
		err := rows.Scan(
			&lf.ID, &lf.FoodItemID, &lf.Name, &lf.ServingGrams, &lf.Meal,
			&lf.Macros.Calories, &lf.Macros.Protein, &lf.Macros.Carbs, &lf.Macros.Fat,
			&lf.LoggedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan logged food row: %w", err)
		}
		foods = append(foods, lf)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return foods, nil
}
