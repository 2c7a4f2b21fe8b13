package domain

// Price is a monetary amount in integer minor units. Currency math on
// floats never enters the model.
type Price struct {
	Amount   int64
	Currency Currency
}

// NewPrice takes the amount as-is (the wire already carries minor units)
// and normalizes the currency code. No conversion is performed.
func NewPrice(amount int64, currency string) Price {
	return Price{Amount: amount, Currency: ParseCurrency(currency)}
}

// PriceEstimate is an appraisal range. Each bound is independently
// present-or-absent; a missing bound is never synthesized.
type PriceEstimate struct {
	Min *Price
	Max *Price
}

// NewPriceEstimate returns nil when neither bound is present, so callers
// can tell "no estimate" from a zero-valued one.
func NewPriceEstimate(min, max *Price) *PriceEstimate {
	if min == nil && max == nil {
		return nil
	}
	return &PriceEstimate{Min: min, Max: max}
}
