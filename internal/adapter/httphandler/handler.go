package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/antiqora/marketplace/internal/core/domain"
	"github.com/antiqora/marketplace/internal/core/port"
	"github.com/antiqora/marketplace/pkg/searchquery"
)

// GET v1/search?q=... filter params per pkg/searchquery (200 OK, 400 Bad request)
// GET v1/products/{id} Headers Authorization Bearer is opt (200 OK, 404 Not found)
// GET v1/watchlist Headers Authorization Bearer (200 OK, 401 Unauthorized)
// POST v1/events JSON (202 Accepted, 400 Bad request)

const defaultPageSize = 24

type ProductsHandler struct {
	searcher port.ProductSearcher
	provider port.ProductProvider
}

func RegisterProducts(
	mux *http.ServeMux,
	searcher port.ProductSearcher,
	provider port.ProductProvider,
) {
	h := ProductsHandler{searcher, provider}
	mux.HandleFunc("GET /v1/search", h.Search)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
}

func (h ProductsHandler) Search(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Search"
	log := slog.With("op", op)

	loc := requestLocale(r)
	q := port.SearchQuery{
		Filters:  searchquery.Decode(r.URL.Query()),
		Language: loc.language,
		Currency: loc.currency,
		Size:     pageSize(r),
	}

	if raw := r.URL.Query().Get("searchAfter"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &q.SearchAfter); err != nil {
			writeError(w, log, domain.APIError{
				Status:    http.StatusBadRequest,
				Title:     "Bad Request",
				ErrorCode: "INVALID_CURSOR",
			})
			return
		}
	}

	res, err := h.searcher.SearchProducts(r.Context(), q, bearerCredentials(r))
	if err != nil {
		writeError(w, log, err)
		return
	}

	view := SearchResponseView{
		Items:       make([]ProductView, 0, len(res.Products)),
		Size:        res.Size,
		Total:       res.Total,
		SearchAfter: res.SearchAfter,
	}
	for _, p := range res.Products {
		view.Items = append(view.Items, toProductView(p, loc.tag))
	}

	writeJSON(w, log, http.StatusOK, view)
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"
	log := slog.With("op", op)

	loc := requestLocale(r)

	detail, err := h.provider.GetProduct(
		r.Context(), r.PathValue("id"), loc.language, bearerCredentials(r),
	)
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, log, http.StatusOK, toProductDetailView(detail, loc.tag))
}

type WatchlistHandler struct {
	provider port.WatchlistProvider
}

func RegisterWatchlist(mux *http.ServeMux, provider port.WatchlistProvider) {
	h := WatchlistHandler{provider}
	mux.HandleFunc("GET /v1/watchlist", h.GetWatchlist)
}

func (h WatchlistHandler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	const op = "WatchlistHandler.GetWatchlist"
	log := slog.With("op", op)

	auth := bearerCredentials(r)
	if !auth.Present() {
		writeError(w, log, domain.APIError{
			Status:    http.StatusUnauthorized,
			Title:     "Unauthorized",
			ErrorCode: "MISSING_CREDENTIALS",
		})
		return
	}

	loc := requestLocale(r)

	entries, err := h.provider.GetWatchlist(r.Context(), auth)
	if err != nil {
		writeError(w, log, err)
		return
	}

	view := WatchlistResponseView{
		Items: make([]WatchlistEntryView, 0, len(entries)),
	}
	for _, e := range entries {
		view.Items = append(view.Items, toWatchlistEntryView(e, loc.tag))
	}

	writeJSON(w, log, http.StatusOK, view)
}

type EventsHandler struct {
	sender port.ClientEventSender
}

func RegisterEvents(mux *http.ServeMux, sender port.ClientEventSender) {
	h := EventsHandler{sender}
	mux.HandleFunc("POST /v1/events", h.PostEvent)
}

func (h EventsHandler) PostEvent(w http.ResponseWriter, r *http.Request) {
	const op = "EventsHandler.PostEvent"
	log := slog.With("op", op)

	var body ClientEventBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if body.SessionID == "" {
		writeError(w, log, domain.APIError{
			Status:    http.StatusBadRequest,
			Title:     "Bad Request",
			ErrorCode: "MISSING_SESSION_ID",
		})
		return
	}

	evt := domain.ClientEvent{
		EventType: domain.ClientEventType(body.EventType),
		ProductID: body.ProductID,
		SessionID: body.SessionID,
	}
	// a broken client timestamp is replaced server-side, not rejected
	if ts, err := time.Parse(time.RFC3339, body.OccurredAt); err == nil {
		evt.OccurredAt = ts
	}

	if err := h.sender.SendClientEvent(r.Context(), evt); err != nil {
		writeError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func pageSize(r *http.Request) int {
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size <= 0 {
		return defaultPageSize
	}
	return size
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	var apiErr domain.APIError

	switch {
	case errors.Is(err, domain.ErrQueryTooShort):
		apiErr = domain.APIError{
			Status:    http.StatusBadRequest,
			Title:     "Bad Request",
			ErrorCode: "QUERY_TOO_SHORT",
			Detail:    domain.ErrQueryTooShort.Error(),
		}
	case errors.Is(err, domain.ErrMalformedTimestamp):
		apiErr = domain.APIError{
			Status:    http.StatusBadGateway,
			Title:     "Bad Gateway",
			ErrorCode: "MALFORMED_UPSTREAM_DATA",
		}
		log.Error("malformed upstream payload", "err", err)
	case errors.As(err, &apiErr):
		log.Warn("upstream error", "status", apiErr.Status, "err", err)
	default:
		apiErr = domain.APIError{
			Status:    http.StatusServiceUnavailable,
			Title:     "Service Unavailable",
			ErrorCode: "UPSTREAM_UNAVAILABLE",
		}
		log.Error("request failed", "err", err)
	}

	writeJSON(w, log, apiErr.Status, ErrorView{
		Status: apiErr.Status,
		Title:  apiErr.Title,
		Error:  apiErr.ErrorCode,
		Detail: apiErr.Detail,
	})
}
