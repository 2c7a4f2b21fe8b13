package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/antiqora/marketplace/internal/core/domain"
	"github.com/antiqora/marketplace/internal/core/port"
	"github.com/antiqora/marketplace/pkg/retry"
)

var _ port.CatalogGateway = (*Client)(nil)

// Client is a thin REST client for the catalog API. It owns no
// transport semantics beyond retrying transient upstream failures.
type Client struct {
	baseURL  string
	http     *http.Client
	retryCfg retry.RetryConfig
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		retryCfg: retry.RetryConfig{
			MaxAttempts: 3,
			Backoff:     retry.ExponentialBackoff(200 * time.Millisecond),
			ShouldRetry: isRetryable,
		},
	}
}

// Only network failures and 5xx responses are worth another attempt.
func isRetryable(err error) bool {
	var apiErr domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	return true
}

func (c *Client) SearchProducts(
	ctx context.Context, q port.SearchQuery, auth port.Credentials,
) (domain.SearchResultData, error) {
	const op = "CatalogClient.SearchProducts"

	params := url.Values{}
	params.Set("sort", q.Filters.SortField.WireValue())
	params.Set("order", q.Filters.SortOrder.WireValue())
	if q.Size > 0 {
		params.Set("size", strconv.Itoa(q.Size))
	}
	if len(q.SearchAfter) > 0 {
		cursor, err := json.Marshal(q.SearchAfter)
		if err != nil {
			return domain.SearchResultData{}, fmt.Errorf("%s: %w", op, err)
		}
		params.Set("searchAfter", string(cursor))
	}

	var res SearchResponseData
	err := c.do(
		ctx, http.MethodPost, "/v1/products/search?"+params.Encode(),
		BuildSearchRequest(q), auth, &res,
	)
	if err != nil {
		return domain.SearchResultData{}, fmt.Errorf("%s: %w", op, err)
	}

	out := domain.SearchResultData{
		Size:        deref(res.Size),
		Total:       deref(res.Total),
		SearchAfter: res.SearchAfter,
	}
	for _, item := range res.Items {
		p, err := MapPersonalizedProduct(item)
		if err != nil {
			return domain.SearchResultData{}, fmt.Errorf("%s: %w", op, err)
		}
		out.Products = append(out.Products, p)
	}
	return out, nil
}

func (c *Client) FetchProduct(
	ctx context.Context, productID string, lang domain.Language, auth port.Credentials,
) (domain.ProductDetail, error) {
	const op = "CatalogClient.FetchProduct"

	path := "/v1/products/" + url.PathEscape(productID) +
		"?language=" + lang.WireValue()

	var res PersonalizedGetProductData
	if err := c.do(ctx, http.MethodGet, path, nil, auth, &res); err != nil {
		return domain.ProductDetail{}, fmt.Errorf("%s: %w", op, err)
	}

	detail, err := MapProductDetail(res)
	if err != nil {
		return domain.ProductDetail{}, fmt.Errorf("%s: %w", op, err)
	}
	return detail, nil
}

func (c *Client) FetchWatchlist(
	ctx context.Context, auth port.Credentials,
) ([]domain.WatchlistEntry, error) {
	const op = "CatalogClient.FetchWatchlist"

	var res WatchlistResponseData
	if err := c.do(ctx, http.MethodGet, "/v1/watchlist", nil, auth, &res); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entries := make([]domain.WatchlistEntry, 0, len(res.Items))
	for _, item := range res.Items {
		entry, err := MapWatchlistEntry(item)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (c *Client) do(
	ctx context.Context, method, path string,
	body any, auth port.Credentials, out any,
) error {
	const op = "CatalogClient.do"
	log := slog.With("op", op, "method", method, "path", path)

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	err := retry.Do(ctx, c.retryCfg, func() error {
		err := c.doOnce(ctx, method, path, payload, auth, out)
		if err != nil && isRetryable(err) {
			log.Warn("catalog request failed", "err", err)
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) doOnce(
	ctx context.Context, method, path string,
	payload []byte, auth port.Credentials, out any,
) error {
	req, err := http.NewRequestWithContext(
		ctx, method, c.baseURL+path, bytes.NewReader(payload),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if len(payload) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth.Present() {
		req.Header.Set("Authorization", "Bearer "+auth.BearerToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, err = io.Copy(io.Discard, resp.Body)
		return err
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	var data APIErrorData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil || data.Status == 0 {
		return domain.APIError{
			Status:    resp.StatusCode,
			Title:     http.StatusText(resp.StatusCode),
			ErrorCode: "UPSTREAM_ERROR",
		}
	}
	return MapAPIError(data)
}
