package httphandler

// Response shapes for the web app. Raw values travel next to their
// locale-formatted siblings so the client never formats anything.

type (
	PriceView struct {
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		Formatted string `json:"formatted"`
	}

	PriceEstimateView struct {
		Min *PriceView `json:"min,omitempty"`
		Max *PriceView `json:"max,omitempty"`
	}

	ImageView struct {
		URL               string `json:"url"`
		ProhibitedContent string `json:"prohibitedContent"`
	}

	UserDataView struct {
		Watching             bool `json:"watching"`
		NotificationsEnabled bool `json:"notificationsEnabled"`
	}

	QualityView struct {
		Value          string `json:"value"`
		TranslationKey string `json:"translationKey"`
	}

	ProductView struct {
		ProductID      string             `json:"productId"`
		ShopID         string             `json:"shopId"`
		ShopsProductID string             `json:"shopsProductId"`
		ShopName       string             `json:"shopName"`
		ShopType       string             `json:"shopType,omitempty"`
		ShopTypeLabel  string             `json:"shopTypeLabel,omitempty"`
		Title          string             `json:"title"`
		Description    string             `json:"description,omitempty"`
		Price          *PriceView         `json:"price,omitempty"`
		PriceEstimate  *PriceEstimateView `json:"priceEstimate,omitempty"`
		State          string             `json:"state"`
		URL            string             `json:"url,omitempty"`
		Images         []ImageView        `json:"images,omitempty"`
		Created        string             `json:"created"`
		CreatedLabel   string             `json:"createdLabel"`
		Updated        string             `json:"updated"`
		UpdatedLabel   string             `json:"updatedLabel"`
		UserData       *UserDataView      `json:"userData,omitempty"`
		OriginYear     *int               `json:"originYear,omitempty"`
		OriginYearMin  *int               `json:"originYearMin,omitempty"`
		OriginYearMax  *int               `json:"originYearMax,omitempty"`
		Authenticity   QualityView        `json:"authenticity"`
		Condition      QualityView        `json:"condition"`
		Provenance     QualityView        `json:"provenance"`
		Restoration    QualityView        `json:"restoration"`
	}

	EventPayloadView struct {
		State    string     `json:"state,omitempty"`
		OldState string     `json:"oldState,omitempty"`
		NewState string     `json:"newState,omitempty"`
		Price    *PriceView `json:"price,omitempty"`
		OldPrice *PriceView `json:"oldPrice,omitempty"`
		NewPrice *PriceView `json:"newPrice,omitempty"`
	}

	ProductEventView struct {
		EventType      string           `json:"eventType"`
		Timestamp      string           `json:"timestamp"`
		TimestampLabel string           `json:"timestampLabel"`
		Payload        EventPayloadView `json:"payload"`
	}

	ProductDetailView struct {
		ProductView
		History []ProductEventView `json:"history,omitempty"`
	}

	SearchResponseView struct {
		Items       []ProductView `json:"items"`
		Size        int           `json:"size"`
		Total       int           `json:"total"`
		SearchAfter []any         `json:"searchAfter,omitempty"`
	}

	WatchlistEntryView struct {
		Product              ProductView `json:"product"`
		NotificationsEnabled bool        `json:"notificationsEnabled"`
		Created              string      `json:"created"`
		CreatedLabel         string      `json:"createdLabel"`
		Updated              string      `json:"updated"`
		UpdatedLabel         string      `json:"updatedLabel"`
	}

	WatchlistResponseView struct {
		Items []WatchlistEntryView `json:"items"`
	}

	ClientEventBody struct {
		EventType  string `json:"eventType"`
		ProductID  string `json:"productId,omitempty"`
		SessionID  string `json:"sessionId"`
		OccurredAt string `json:"occurredAt,omitempty"`
	}

	ErrorView struct {
		Status int    `json:"status"`
		Title  string `json:"title"`
		Error  string `json:"error"`
		Detail string `json:"detail,omitempty"`
	}
)
