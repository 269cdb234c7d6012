package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mlukic92/fitpulse/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// ErrProductNotFound is returned when the remote catalog has no product
// for the given barcode. Distinct from transport failures.
var ErrProductNotFound = errors.New("product not found")

const (
	cacheSizeBytes       = 10 * 1024 * 1024
	cacheExpireSeconds   = 60 * 60 * 6
	defaultClientTimeout = 10 * time.Second
)

// Product is one food entry as the remote catalog reports it,
// macros normalized per 100 g.
type Product struct {
	Name     string   `json:"name"`
	Barcode  string   `json:"barcode,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Fiber    *float64 `json:"fiber,omitempty"`
	Sugar    *float64 `json:"sugar,omitempty"`
}

type nutriments struct {
	EnergyKcal100g float64  `json:"energy-kcal_100g"`
	Proteins100g   float64  `json:"proteins_100g"`
	Carbs100g      float64  `json:"carbohydrates_100g"`
	Fat100g        float64  `json:"fat_100g"`
	Fiber100g      *float64 `json:"fiber_100g,omitempty"`
	Sugars100g     *float64 `json:"sugars_100g,omitempty"`
}

type remoteProduct struct {
	ProductName string     `json:"product_name"`
	Code        string     `json:"code"`
	Brands      string     `json:"brands"`
	Nutriments  nutriments `json:"nutriments"`
}

type searchResponse struct {
	Count    int             `json:"count"`
	Products []remoteProduct `json:"products"`
}

type productResponse struct {
	Status  int            `json:"status"`
	Product *remoteProduct `json:"product"`
}

// Client talks to an Open Food Facts compatible catalog API.
// Responses are cached in-process to spare the free public instance.
type Client struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
	cache      *freecache.Cache
}

func NewClient(baseURL string, pageSize int, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultClientTimeout,
		}
	}
	return &Client{
		baseURL:    baseURL,
		pageSize:   pageSize,
		httpClient: httpClient,
		cache:      freecache.NewCache(cacheSizeBytes),
	}
}

// SearchByName queries the catalog full-text search endpoint.
// An empty result list is a valid answer, not an error.
func (c *Client) SearchByName(ctx context.Context, query string) (_ []Product, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.searchByName")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("query", query))

	cacheKey := []byte("search::" + query)
	if cached, cacheErr := c.cache.Get(cacheKey); cacheErr == nil {
		var products []Product
		if err := json.Unmarshal(cached, &products); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return products, nil
		}
		log.Warnf("catalog search cache entry for %q unreadable, refetching", query)
	}

	reqURL := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		c.baseURL, url.QueryEscape(query), c.pageSize,
	)
	var sr searchResponse
	if err = c.getJSON(ctx, reqURL, &sr); err != nil {
		return nil, fmt.Errorf("catalog search %q: %w", query, err)
	}

	products := make([]Product, 0, len(sr.Products))
	for _, rp := range sr.Products {
		if rp.ProductName == "" {
			continue
		}
		products = append(products, rp.toProduct())
	}

	if cacheable, marshalErr := json.Marshal(products); marshalErr == nil {
		if cacheErr := c.cache.Set(cacheKey, cacheable, cacheExpireSeconds); cacheErr != nil {
			log.Warnf("catalog search cache set for %q: %s", query, cacheErr)
		}
	}

	span.SetAttributes(attribute.Int("results", len(products)))
	return products, nil
}

// GetByBarcode looks up a single product. A missing product is
// ErrProductNotFound, transport failures are anything else.
func (c *Client) GetByBarcode(ctx context.Context, code string) (_ *Product, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.getByBarcode")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("barcode", code))

	cacheKey := []byte("barcode::" + code)
	if cached, cacheErr := c.cache.Get(cacheKey); cacheErr == nil {
		var p Product
		if err := json.Unmarshal(cached, &p); err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &p, nil
		}
	}

	reqURL := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, url.PathEscape(code))
	var pr productResponse
	if err = c.getJSON(ctx, reqURL, &pr); err != nil {
		if errors.Is(err, errNotFoundStatus) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("catalog barcode %s: %w", code, err)
	}
	if pr.Status != 1 || pr.Product == nil || pr.Product.ProductName == "" {
		return nil, ErrProductNotFound
	}

	product := pr.Product.toProduct()
	if product.Barcode == "" {
		product.Barcode = code
	}

	if cacheable, marshalErr := json.Marshal(product); marshalErr == nil {
		if cacheErr := c.cache.Set(cacheKey, cacheable, cacheExpireSeconds); cacheErr != nil {
			log.Warnf("catalog barcode cache set for %s: %s", code, cacheErr)
		}
	}

	return &product, nil
}

var errNotFoundStatus = errors.New("not found status")

func (c *Client) getJSON(ctx context.Context, reqURL string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "FitPulse/1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Errorf("catalog response body close: %s", closeErr)
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFoundStatus
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s [%d]", resp.Status, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode response [status %s]: %w", strconv.Itoa(resp.StatusCode), err)
	}
	return nil
}

func (rp remoteProduct) toProduct() Product {
	return Product{
		Name:     rp.ProductName,
		Barcode:  rp.Code,
		Brand:    rp.Brands,
		Calories: rp.Nutriments.EnergyKcal100g,
		Protein:  rp.Nutriments.Proteins100g,
		Carbs:    rp.Nutriments.Carbs100g,
		Fat:      rp.Nutriments.Fat100g,
		Fiber:    rp.Nutriments.Fiber100g,
		Sugar:    rp.Nutriments.Sugars100g,
	}
}
