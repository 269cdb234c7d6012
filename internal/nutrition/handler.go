package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/mlukic92/fitpulse/internal/telemetry/metrics"
	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"
	"github.com/mlukic92/fitpulse/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type foodResolver interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
	SearchByBarcode(ctx context.Context, code string) (*SearchResult, error)
}

type foodsRepo interface {
	AddFood(ctx context.Context, item FoodItem) (*FoodItem, error)
	GetFood(ctx context.Context, id int) (*FoodItem, error)
	LogFood(ctx context.Context, logged LoggedFood) (*LoggedFood, error)
	LoggedForDay(ctx context.Context, day time.Time) ([]LoggedFood, error)
	DeleteLoggedFood(ctx context.Context, id int) error
	DeleteFood(ctx context.Context, id int) error
	SetFavorite(ctx context.Context, id int, favorite bool) error
	Favorites(ctx context.Context) ([]FoodItem, error)
	RecentlyUsed(ctx context.Context, limit int) ([]FoodItem, error)
}

type Handler struct {
	resolver foodResolver
	repo     foodsRepo
	metrics  *metrics.Manager

	// memoized favorites/recent responses, dropped on any food write
	viewsMux      sync.Mutex
	favoritesJson []byte
	recentJson    []byte
}

func NewHandler(resolver foodResolver, repo foodsRepo, metrics *metrics.Manager) *Handler {
	return &Handler{
		resolver: resolver,
		repo:     repo,
		metrics:  metrics,
	}
}

func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.search")
	defer span.End()

	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "error, query empty", http.StatusBadRequest)
		return
	}

	results, err := h.resolver.Search(ctx, query)
	if err != nil {
		log.Errorf("food search %q: %s", query, err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}

	resultsJson, err := json.Marshal(SearchResponse{Results: results, Total: len(results)})
	if err != nil {
		log.Errorf("marshal food search results: %s", err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultsJson, http.StatusOK)
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}

func (h *Handler) HandleBarcode(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.barcode")
	defer span.End()

	vars := mux.Vars(r)
	code := vars["code"]
	if code == "" {
		http.Error(w, "error, barcode empty", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("barcode", code))

	result, err := h.resolver.SearchByBarcode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrFoodNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		log.Errorf("barcode lookup %s: %s", code, err)
		http.Error(w, "barcode lookup failed", http.StatusInternalServerError)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("marshal barcode result: %s", err)
		http.Error(w, "barcode lookup failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

// LogFoodRequest logs a portion of an already-known food item, or an
// ad-hoc entry when Macros is set and FoodItemID is nil.
type LogFoodRequest struct {
	FoodItemID   *int    `json:"foodItemId,omitempty"`
	Name         string  `json:"name"`
	ServingGrams float64 `json:"servingGrams"`
	Meal         MealTag `json:"meal"`
	Macros       *Macros `json:"macros,omitempty"`
	LoggedAt     string  `json:"loggedAt,omitempty"`
}

func (h *Handler) HandleLogFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.log")
	defer span.End()

	var req LogFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("log food, unmarshal json params: %s", err)
		http.Error(w, "log food failed", http.StatusBadRequest)
		return
	}

	logged, err := h.logFoodFromRequest(ctx, req)
	if err != nil {
		if errors.Is(err, ErrFoodNotFound) {
			http.Error(w, "food item not found", http.StatusNotFound)
			return
		}
		var reqErr badRequestError
		if errors.As(err, &reqErr) {
			http.Error(w, reqErr.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("log food: %s", err)
		http.Error(w, "log food failed", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterLoggedFoods.Inc()
	log.Tracef("%s logged", logged)

	loggedJson, err := json.Marshal(logged)
	if err != nil {
		log.Errorf("marshal logged food: %s", err)
		http.Error(w, "log food failed", http.StatusInternalServerError)
		return
	}
	h.invalidateViews()
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, loggedJson, http.StatusCreated)
}

type badRequestError string

func (e badRequestError) Error() string { return string(e) }

func (h *Handler) logFoodFromRequest(ctx context.Context, req LogFoodRequest) (*LoggedFood, error) {
	if req.ServingGrams <= 0 {
		return nil, badRequestError("error, serving grams must be positive")
	}
	if !req.Meal.IsValid() {
		return nil, badRequestError(fmt.Sprintf("error, invalid meal tag: %s", req.Meal))
	}

	logged := LoggedFood{
		FoodItemID:   req.FoodItemID,
		Name:         req.Name,
		ServingGrams: req.ServingGrams,
		Meal:         req.Meal,
	}
	if req.LoggedAt != "" {
		loggedAt, err := time.Parse(time.RFC3339, req.LoggedAt)
		if err != nil {
			return nil, badRequestError("error, invalid loggedAt timestamp")
		}
		logged.LoggedAt = loggedAt
	}

	switch {
	case req.FoodItemID != nil:
		item, err := h.repo.GetFood(ctx, *req.FoodItemID)
		if err != nil {
			return nil, err
		}
		if logged.Name == "" {
			logged.Name = item.Name
		}
		logged.Macros = item.MacrosForServing(req.ServingGrams)
	case req.Macros != nil:
		if logged.Name == "" {
			return nil, badRequestError("error, name required for ad-hoc entries")
		}
		logged.Macros = *req.Macros
	default:
		return nil, badRequestError("error, either foodItemId or macros required")
	}

	return h.repo.LogFood(ctx, logged)
}

func (h *Handler) HandleLoggedForDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.loggedForDay")
	defer span.End()

	vars := mux.Vars(r)
	day, err := time.Parse("2006-01-02", vars["date"])
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	foods, err := h.repo.LoggedForDay(ctx, day)
	if err != nil {
		log.Errorf("get logged foods for %s: %s", vars["date"], err)
		http.Error(w, "get logged foods failed", http.StatusInternalServerError)
		return
	}

	foodsJson, err := json.Marshal(foods)
	if err != nil {
		log.Errorf("marshal logged foods: %s", err)
		http.Error(w, "get logged foods failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, foodsJson, http.StatusOK)
}

func (h *Handler) HandleDeleteLogged(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.deleteLogged")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, logged food id invalid", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteLoggedFood(ctx, id); err != nil {
		if errors.Is(err, ErrLoggedFoodNotFound) {
			http.Error(w, "logged food not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete logged food %d: %s", id, err)
		http.Error(w, "delete logged food failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}

func (h *Handler) HandleAddFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.add")
	defer span.End()

	var item FoodItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Errorf("add food, unmarshal json params: %s", err)
		http.Error(w, "add food failed", http.StatusBadRequest)
		return
	}
	if item.Name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	item.Provenance = ProvenanceManual
	added, err := h.repo.AddFood(ctx, item)
	if err != nil {
		if errors.Is(err, ErrFoodExists) {
			http.Error(w, "food item with this barcode exists", http.StatusConflict)
			return
		}
		log.Errorf("add food: %s", err)
		http.Error(w, "add food failed", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added food: %s", err)
		http.Error(w, "add food failed", http.StatusInternalServerError)
		return
	}
	h.invalidateViews()
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (h *Handler) HandleDeleteFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, food id invalid", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteFood(ctx, id); err != nil {
		if errors.Is(err, ErrFoodNotFound) {
			http.Error(w, "food item not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete food %d: %s", id, err)
		http.Error(w, "delete food failed", http.StatusInternalServerError)
		return
	}

	h.invalidateViews()
	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}

type SetFavoriteRequest struct {
	Favorite bool `json:"favorite"`
}

func (h *Handler) HandleSetFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.setFavorite")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, food id invalid", http.StatusBadRequest)
		return
	}

	var req SetFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set favorite, unmarshal json params: %s", err)
		http.Error(w, "set favorite failed", http.StatusBadRequest)
		return
	}

	if err := h.repo.SetFavorite(ctx, id, req.Favorite); err != nil {
		if errors.Is(err, ErrFoodNotFound) {
			http.Error(w, "food item not found", http.StatusNotFound)
			return
		}
		log.Errorf("set favorite %d: %s", id, err)
		http.Error(w, "set favorite failed", http.StatusInternalServerError)
		return
	}

	h.invalidateViews()
	pkg.WriteTextResponseOK(w, "updated")
}

func (h *Handler) invalidateViews() {
	h.viewsMux.Lock()
	h.favoritesJson = nil
	h.recentJson = nil
	h.viewsMux.Unlock()
}

func (h *Handler) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.favorites")
	defer span.End()

	h.viewsMux.Lock()
	defer h.viewsMux.Unlock()
	if h.favoritesJson == nil {
		favorites, err := h.repo.Favorites(ctx)
		if err != nil {
			log.Errorf("get favorites: %s", err)
			http.Error(w, "get favorites failed", http.StatusInternalServerError)
			return
		}
		favoritesJson, err := json.Marshal(favorites)
		if err != nil {
			log.Errorf("marshal favorites: %s", err)
			http.Error(w, "get favorites failed", http.StatusInternalServerError)
			return
		}
		h.favoritesJson = favoritesJson
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, h.favoritesJson, http.StatusOK)
}

const recentFoodsLimit = 20

func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.foods.recent")
	defer span.End()

	h.viewsMux.Lock()
	defer h.viewsMux.Unlock()
	if h.recentJson == nil {
		recent, err := h.repo.RecentlyUsed(ctx, recentFoodsLimit)
		if err != nil {
			log.Errorf("get recent foods: %s", err)
			http.Error(w, "get recent foods failed", http.StatusInternalServerError)
			return
		}
		recentJson, err := json.Marshal(recent)
		if err != nil {
			log.Errorf("marshal recent foods: %s", err)
			http.Error(w, "get recent foods failed", http.StatusInternalServerError)
			return
		}
		h.recentJson = recentJson
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, h.recentJson, http.StatusOK)
}
