package domain

import (
	"strings"
	"time"
)

// ProductEvent is one entry of a listing's history. The payload variant
// is discriminated by which fields the wire record carried.
type ProductEvent struct {
	EventType      string
	ProductID      string
	EventID        string
	ShopID         string
	ShopsProductID string
	Payload        EventPayload
	Timestamp      time.Time
}

type EventPayload interface {
	isEventPayload()
}

// CreatedPayload is the initial listing event. Price is optional: some
// shops list without a discovered price.
type CreatedPayload struct {
	State ProductState
	Price *Price
}

type StateChangedPayload struct {
	OldState ProductState
	NewState ProductState
}

type PriceChangedPayload struct {
	OldPrice Price
	NewPrice Price
}

type PriceDiscoveredPayload struct {
	NewPrice Price
}

type PriceRemovedPayload struct {
	OldPrice Price
}

func (CreatedPayload) isEventPayload()         {}
func (StateChangedPayload) isEventPayload()    {}
func (PriceChangedPayload) isEventPayload()    {}
func (PriceDiscoveredPayload) isEventPayload() {}
func (PriceRemovedPayload) isEventPayload()    {}

// ClientEventType is the closed vocabulary of client interaction events
// the web app reports for analytics.
type ClientEventType string

const (
	ClientEventProductViewed        ClientEventType = "PRODUCT_VIEWED"
	ClientEventSearchPerformed      ClientEventType = "SEARCH_PERFORMED"
	ClientEventWatchlistAdded       ClientEventType = "WATCHLIST_ADDED"
	ClientEventWatchlistRemoved     ClientEventType = "WATCHLIST_REMOVED"
	ClientEventNotificationsToggled ClientEventType = "NOTIFICATIONS_TOGGLED"
	ClientEventUnknown              ClientEventType = "UNKNOWN"
)

func ParseClientEventType(raw string) ClientEventType {
	switch t := ClientEventType(strings.ToUpper(raw)); t {
	case ClientEventProductViewed, ClientEventSearchPerformed,
		ClientEventWatchlistAdded, ClientEventWatchlistRemoved,
		ClientEventNotificationsToggled:
		return t
	default:
		return ClientEventUnknown
	}
}

func (t ClientEventType) WireValue() string {
	switch t {
	case ClientEventProductViewed, ClientEventSearchPerformed,
		ClientEventWatchlistAdded, ClientEventWatchlistRemoved,
		ClientEventNotificationsToggled:
		return string(t)
	default:
		return string(ClientEventUnknown)
	}
}

// ClientEvent is a single client interaction report.
type ClientEvent struct {
	EventType  ClientEventType
	ProductID  string
	SessionID  string
	OccurredAt time.Time
}
