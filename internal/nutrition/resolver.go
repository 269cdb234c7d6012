package nutrition

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/mlukic92/fitpulse/internal/nutrition/catalog"
	"github.com/mlukic92/fitpulse/internal/telemetry/metrics"
	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Tier identifies which source a search result came from.
type Tier string

const (
	TierHistory  Tier = "history"
	TierBundled  Tier = "bundled"
	TierCache    Tier = "cache"
	TierRemote   Tier = "remote"
	TierFallback Tier = "fallback"
)

const (
	historyTierCap = 5
	localTierCap   = 30
)

// SearchResult is one resolver hit, tagged with its origin tier.
type SearchResult struct {
	Food     FoodItem `json:"food"`
	Tier     Tier     `json:"tier"`
	Estimate bool     `json:"estimate,omitempty"`
}

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=nutrition

type foodStore interface {
	SearchHistory(ctx context.Context, query string, limit int) ([]FoodItem, error)
	SearchCachedCatalog(ctx context.Context, query string, freshness time.Duration, limit int) ([]FoodItem, error)
	GetByBarcode(ctx context.Context, barcode string) (*FoodItem, error)
	UpsertCatalogItem(ctx context.Context, item FoodItem) (*FoodItem, error)
}

type foodCatalogClient interface {
	SearchByName(ctx context.Context, query string) ([]catalog.Product, error)
	GetByBarcode(ctx context.Context, code string) (*catalog.Product, error)
}

// Resolver cascades a food query through ordered tiers: logged history,
// bundled staples, cached catalog hits, then the remote catalog. It never
// returns an empty list for a non-empty query.
type Resolver struct {
	store      foodStore
	staples    *Staples
	remote     foodCatalogClient
	metrics    *metrics.Manager
	minResults int
	freshness  time.Duration

	// serializes remote lookups so two identical queries cannot race
	// their cache write-backs into duplicate rows
	remoteMutex sync.Mutex
}

type ResolverParams struct {
	Store          *Repo
	Staples        *Staples
	Remote         *catalog.Client
	Metrics        *metrics.Manager
	MinResults     int
	CacheFreshness time.Duration
}

func NewResolver(params ResolverParams) *Resolver {
	return &Resolver{
		store:      params.Store,
		staples:    params.Staples,
		remote:     params.Remote,
		metrics:    params.Metrics,
		minResults: params.MinResults,
		freshness:  params.CacheFreshness,
	}
}

// Search runs the tier cascade for a free-text query.
func (r *Resolver) Search(ctx context.Context, query string) (_ []SearchResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutrition.resolver.search")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("query", query))

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	var results []SearchResult
	seen := make(map[string]struct{})

	appendNew := func(tier Tier, foods ...FoodItem) {
		for _, f := range foods {
			key := strings.ToLower(f.Name)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			results = append(results, SearchResult{Food: f, Tier: tier})
		}
	}

	history, err := r.store.SearchHistory(ctx, query, historyTierCap)
	if err != nil {
		log.Errorf("food search, history tier for %q: %s", query, err)
	} else {
		appendNew(TierHistory, history...)
		r.metrics.CounterFoodSearches.WithLabelValues(string(TierHistory)).Add(float64(len(history)))
	}

	bundled := r.staples.Search(query, localTierCap)
	appendNew(TierBundled, bundled...)
	r.metrics.CounterFoodSearches.WithLabelValues(string(TierBundled)).Add(float64(len(bundled)))

	cached, err := r.store.SearchCachedCatalog(ctx, query, r.freshness, localTierCap)
	if err != nil {
		log.Errorf("food search, cache tier for %q: %s", query, err)
	} else {
		appendNew(TierCache, cached...)
		r.metrics.CounterFoodSearches.WithLabelValues(string(TierCache)).Add(float64(len(cached)))
	}

	if len(results) < r.minResults {
		remote := r.searchRemote(ctx, query, seen)
		results = append(results, remote...)
		r.metrics.CounterFoodSearches.WithLabelValues(string(TierRemote)).Add(float64(len(remote)))
	}

	if len(results) == 0 {
		results = append(results, fallbackResult(query))
		r.metrics.CounterFoodSearches.WithLabelValues(string(TierFallback)).Inc()
	}

	// errors above degrade individual tiers, the search itself succeeds
	err = nil
	span.SetAttributes(attribute.Int("results", len(results)))
	return results, nil
}

// searchRemote queries the catalog client and writes accepted hits back
// into the local store. Failures degrade to an empty tier.
func (r *Resolver) searchRemote(ctx context.Context, query string, seen map[string]struct{}) []SearchResult {
	r.remoteMutex.Lock()
	defer r.remoteMutex.Unlock()

	r.metrics.CounterRemoteCatalogCalls.Inc()

	products, err := r.remote.SearchByName(ctx, query)
	if err != nil {
		log.Errorf("food search, remote tier for %q: %s", query, err)
		return nil
	}

	var results []SearchResult
	for _, p := range products {
		key := strings.ToLower(p.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		item := product2foodItem(p)
		stored, upsertErr := r.store.UpsertCatalogItem(ctx, item)
		if upsertErr != nil {
			log.Errorf("food search, cache write-back for %q: %s", p.Name, upsertErr)
			stored = &item
		}
		results = append(results, SearchResult{Food: *stored, Tier: TierRemote})
	}
	return results
}

// SearchByBarcode checks the local store first, then the remote catalog.
// A miss everywhere is ErrFoodNotFound.
func (r *Resolver) SearchByBarcode(ctx context.Context, code string) (_ *SearchResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutrition.resolver.searchByBarcode")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("barcode", code))

	local, err := r.store.GetByBarcode(ctx, code)
	if err == nil {
		return &SearchResult{Food: *local, Tier: TierCache}, nil
	}
	if !errors.Is(err, ErrFoodNotFound) {
		return nil, err
	}

	r.remoteMutex.Lock()
	defer r.remoteMutex.Unlock()

	r.metrics.CounterRemoteCatalogCalls.Inc()

	product, err := r.remote.GetByBarcode(ctx, code)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	item := product2foodItem(*product)
	stored, err := r.store.UpsertCatalogItem(ctx, item)
	if err != nil {
		log.Errorf("barcode lookup, cache write-back for %s: %s", code, err)
		stored = &item
		err = nil
	}
	return &SearchResult{Food: *stored, Tier: TierRemote}, nil
}

func product2foodItem(p catalog.Product) FoodItem {
	return FoodItem{
		Name:       p.Name,
		Barcode:    p.Barcode,
		Brand:      p.Brand,
		Calories:   p.Calories,
		Protein:    p.Protein,
		Carbs:      p.Carbs,
		Fat:        p.Fat,
		Fiber:      p.Fiber,
		Sugar:      p.Sugar,
		Provenance: ProvenanceCatalog,
		LastUsed:   time.Now(),
	}
}

type macroHeuristic struct {
	keyword  string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

// rough per-100g estimates for common food words, last-resort only
var fallbackHeuristics = []macroHeuristic{
	{keyword: "chicken", calories: 165, protein: 31, carbs: 0, fat: 3.6},
	{keyword: "beef", calories: 250, protein: 26, carbs: 0, fat: 15},
	{keyword: "pork", calories: 242, protein: 27, carbs: 0, fat: 14},
	{keyword: "fish", calories: 140, protein: 25, carbs: 0, fat: 4},
	{keyword: "egg", calories: 155, protein: 13, carbs: 1, fat: 11},
	{keyword: "rice", calories: 130, protein: 2.7, carbs: 28, fat: 0.3},
	{keyword: "pasta", calories: 158, protein: 5.8, carbs: 31, fat: 0.9},
	{keyword: "bread", calories: 265, protein: 9, carbs: 49, fat: 3.2},
	{keyword: "cheese", calories: 350, protein: 23, carbs: 2, fat: 28},
	{keyword: "salad", calories: 20, protein: 1.5, carbs: 4, fat: 0.2},
	{keyword: "fruit", calories: 60, protein: 0.8, carbs: 15, fat: 0.3},
	{keyword: "shake", calories: 120, protein: 20, carbs: 5, fat: 2},
}

// generic catch-all when no keyword matches
var fallbackDefault = macroHeuristic{calories: 200, protein: 8, carbs: 25, fat: 8}

func fallbackResult(query string) SearchResult {
	lowered := strings.ToLower(query)
	h := fallbackDefault
	for _, candidate := range fallbackHeuristics {
		if strings.Contains(lowered, candidate.keyword) {
			h = candidate
			break
		}
	}
	return SearchResult{
		Food: FoodItem{
			Name:       titleCase(query) + " (estimate)",
			Calories:   h.calories,
			Protein:    h.protein,
			Carbs:      h.carbs,
			Fat:        h.fat,
			Provenance: ProvenanceManual,
			LastUsed:   time.Now(),
		},
		Tier:     TierFallback,
		Estimate: true,
	}
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
