package catalogapi

// Wire payload shapes of the catalog API. Optional fields are pointers;
// a dedicated mapping step (mapper.go) normalizes them into the domain
// model, so nothing downstream ever touches these loosely-typed records.

type (
	PriceData struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}

	TextData struct {
		Text string `json:"text"`
	}

	ProductImageData struct {
		URL               string  `json:"url"`
		ProhibitedContent *string `json:"prohibitedContent,omitempty"`
	}

	GetProductData struct {
		ProductID        string                `json:"productId"`
		EventID          string                `json:"eventId"`
		ShopID           string                `json:"shopId"`
		ShopsProductID   string                `json:"shopsProductId"`
		ShopName         string                `json:"shopName"`
		ShopType         *string               `json:"shopType,omitempty"`
		Title            TextData              `json:"title"`
		Description      *TextData             `json:"description,omitempty"`
		Price            *PriceData            `json:"price,omitempty"`
		PriceEstimateMin *PriceData            `json:"priceEstimateMin,omitempty"`
		PriceEstimateMax *PriceData            `json:"priceEstimateMax,omitempty"`
		State            *string               `json:"state,omitempty"`
		URL              string                `json:"url"`
		Images           []ProductImageData    `json:"images,omitempty"`
		Created          string                `json:"created"`
		Updated          string                `json:"updated"`
		OriginYear       *int                  `json:"originYear,omitempty"`
		OriginYearMin    *int                  `json:"originYearMin,omitempty"`
		OriginYearMax    *int                  `json:"originYearMax,omitempty"`
		Authenticity     *string               `json:"authenticity,omitempty"`
		Condition        *string               `json:"condition,omitempty"`
		Provenance       *string               `json:"provenance,omitempty"`
		Restoration      *string               `json:"restoration,omitempty"`
		History          []GetProductEventData `json:"history,omitempty"`
	}

	WatchlistStateData struct {
		Watching      *bool `json:"watching,omitempty"`
		Notifications *bool `json:"notifications,omitempty"`
	}

	ProductUserStateData struct {
		Watchlist WatchlistStateData `json:"watchlist"`
	}

	PersonalizedGetProductData struct {
		Item      GetProductData        `json:"item"`
		UserState *ProductUserStateData `json:"userState,omitempty"`
	}

	WatchlistProductData struct {
		Product       GetProductData `json:"product"`
		Notifications bool           `json:"notifications"`
		Created       string         `json:"created"`
		Updated       string         `json:"updated"`
	}

	// EventPayloadData is the union of every history payload; the
	// variant is discriminated by field presence in mapEventPayload.
	EventPayloadData struct {
		State    *string    `json:"state,omitempty"`
		OldState *string    `json:"oldState,omitempty"`
		NewState *string    `json:"newState,omitempty"`
		Price    *PriceData `json:"price,omitempty"`
		OldPrice *PriceData `json:"oldPrice,omitempty"`
		NewPrice *PriceData `json:"newPrice,omitempty"`
	}

	GetProductEventData struct {
		EventType      string           `json:"eventType"`
		ProductID      string           `json:"productId"`
		EventID        string           `json:"eventId"`
		ShopID         string           `json:"shopId"`
		ShopsProductID string           `json:"shopsProductId"`
		Payload        EventPayloadData `json:"payload"`
		Timestamp      string           `json:"timestamp"`
	}

	SearchResponseData struct {
		Items       []PersonalizedGetProductData `json:"items"`
		Size        *int                         `json:"size,omitempty"`
		Total       *int                         `json:"total,omitempty"`
		SearchAfter []any                        `json:"searchAfter,omitempty"`
	}

	WatchlistResponseData struct {
		Items []WatchlistProductData `json:"items"`
	}

	APIErrorSourceData struct {
		Field      string `json:"field"`
		SourceType string `json:"sourceType"`
	}

	APIErrorData struct {
		Status int                 `json:"status"`
		Title  string              `json:"title"`
		Error  string              `json:"error"`
		Detail *string             `json:"detail,omitempty"`
		Source *APIErrorSourceData `json:"source,omitempty"`
	}
)

// Request body shapes, backend enum spellings.

type (
	Int64SpanData struct {
		Min *int64 `json:"min,omitempty"`
		Max *int64 `json:"max,omitempty"`
	}

	IntSpanData struct {
		Min *int `json:"min,omitempty"`
		Max *int `json:"max,omitempty"`
	}

	DateSpanData struct {
		Min *string `json:"min,omitempty"`
		Max *string `json:"max,omitempty"`
	}

	SearchRequestData struct {
		Language        string         `json:"language"`
		Currency        string         `json:"currency"`
		ProductQuery    string         `json:"productQuery"`
		Price           *Int64SpanData `json:"price,omitempty"`
		State           []string       `json:"state,omitempty"`
		Created         *DateSpanData  `json:"created,omitempty"`
		Updated         *DateSpanData  `json:"updated,omitempty"`
		ShopName        string         `json:"shopName,omitempty"`
		ShopNameExclude string         `json:"shopNameExclude,omitempty"`
		OriginYear      *IntSpanData   `json:"originYear,omitempty"`
		Authenticity    []string       `json:"authenticity,omitempty"`
		Condition       []string       `json:"condition,omitempty"`
		Provenance      []string       `json:"provenance,omitempty"`
		Restoration     []string       `json:"restoration,omitempty"`
	}
)
