package domain

import "strings"

// ProductState is the lifecycle state of an aggregated listing.
type ProductState string

const (
	StateListed    ProductState = "LISTED"
	StateAvailable ProductState = "AVAILABLE"
	StateReserved  ProductState = "RESERVED"
	StateSold      ProductState = "SOLD"
	StateRemoved   ProductState = "REMOVED"
	StateUnknown   ProductState = "UNKNOWN"
)

// ProductStates holds every member in canonical order.
var ProductStates = []ProductState{
	StateListed,
	StateAvailable,
	StateReserved,
	StateSold,
	StateRemoved,
	StateUnknown,
}

// ParseProductState maps an arbitrary wire string to a ProductState.
// Matching is case-insensitive; empty and unrecognized input resolves
// to StateUnknown. Never fails.
func ParseProductState(raw string) ProductState {
	switch s := ProductState(strings.ToUpper(raw)); s {
	case StateListed, StateAvailable, StateReserved, StateSold, StateRemoved:
		return s
	default:
		return StateUnknown
	}
}

// WireValue returns the backend spelling. The backend state vocabulary
// includes UNKNOWN, so the mapping is the identity for every member.
func (s ProductState) WireValue() string {
	switch s {
	case StateListed, StateAvailable, StateReserved, StateSold, StateRemoved:
		return string(s)
	default:
		return string(StateUnknown)
	}
}

// ItemState mirrors ProductState for the legacy item endpoints.
type ItemState = ProductState

func ParseItemState(raw string) ItemState {
	return ParseProductState(raw)
}
