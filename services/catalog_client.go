package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"wemovies/libs"
	"wemovies/models"
)

const maxCatalogBody = 4 << 20

// CatalogFetcher is the Catalog View's view of the catalog client.
type CatalogFetcher interface {
	FetchCatalog(ctx context.Context) ([]models.Item, error)
}

// CatalogClient issues a single GET against the remote catalog. It never
// retries and sets no timeout of its own; the http.Client owns that.
type CatalogClient struct {
	url      string
	http     *http.Client
	validate *validator.Validate
}

func NewCatalogClient(url string, httpTimeout time.Duration) *CatalogClient {
	return NewCatalogClientWithHTTP(url, &http.Client{Timeout: httpTimeout})
}

func NewCatalogClientWithHTTP(url string, client *http.Client) *CatalogClient {
	return &CatalogClient{
		url:      url,
		http:     client,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (c *CatalogClient) FetchCatalog(ctx context.Context) ([]models.Item, error) {
	start := time.Now()
	items, err := c.fetch(ctx)
	if err != nil {
		libs.ObserveCatalogFetch("unavailable")
		libs.Log.Warn("catalog fetch failed",
			zap.String("url", c.url),
			zap.Duration("took", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	outcome := "loaded"
	if len(items) == 0 {
		outcome = "empty"
	}
	libs.ObserveCatalogFetch(outcome)
	libs.Log.Info("catalog fetched",
		zap.String("url", c.url),
		zap.Int("items", len(items)),
		zap.Duration("took", time.Since(start)),
	)
	return items, nil
}

func (c *CatalogClient) fetch(ctx context.Context) ([]models.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, catalogUnavailable(errors.Wrap(err, "build request"))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, catalogUnavailable(errors.Wrap(err, "request"))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, catalogUnavailable(errors.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBody))
	if err != nil {
		return nil, catalogUnavailable(errors.Wrap(err, "read body"))
	}

	items, err := c.parse(body)
	if err != nil {
		return nil, catalogUnavailable(err)
	}
	return items, nil
}

// parse rejects the whole payload on any shape mismatch; no partially
// populated items leave this function.
func (c *CatalogClient) parse(body []byte) ([]models.Item, error) {
	var payload models.CatalogResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "decode payload")
	}
	if err := c.validate.Struct(payload); err != nil {
		return nil, errors.Wrap(err, "validate payload")
	}

	items := make([]models.Item, 0, len(payload.Products))
	seen := make(map[int64]struct{}, len(payload.Products))
	for i, p := range payload.Products {
		if p.Price.IsNegative() {
			return nil, errors.Errorf("product %d: negative price %s", i, p.Price)
		}
		if _, dup := seen[*p.ID]; dup {
			return nil, errors.Errorf("product %d: duplicate id %d", i, *p.ID)
		}
		seen[*p.ID] = struct{}{}

		items = append(items, models.Item{
			ID:    *p.ID,
			Title: p.Title,
			Price: *p.Price,
			Image: p.Image,
		})
	}
	return items, nil
}
