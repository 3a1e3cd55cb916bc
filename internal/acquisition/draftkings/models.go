package draftkings

// eventGroupResponse is the envelope of the eventgroups v5 endpoint.
type eventGroupResponse struct {
	EventGroup EventGroup `json:"eventGroup"`
}

type EventGroup struct {
	Events          []Event         `json:"events"`
	OfferCategories []OfferCategory `json:"offerCategories"`
}

type Event struct {
	EventID     int64       `json:"eventId"`
	StartDate   string      `json:"startDate"` // RFC3339
	TeamName1   string      `json:"teamName1"` // away
	TeamName2   string      `json:"teamName2"` // home
	EventStatus EventStatus `json:"eventStatus"`
}

type EventStatus struct {
	State string `json:"state"` // "NOT_STARTED", "STARTED", ...
}

type OfferCategory struct {
	OfferSubcategoryDescriptors []OfferSubcategoryDescriptor `json:"offerSubcategoryDescriptors"`
}

type OfferSubcategoryDescriptor struct {
	OfferSubcategory OfferSubcategory `json:"offerSubcategory"`
}

type OfferSubcategory struct {
	Offers [][]Offer `json:"offers"`
}

type Offer struct {
	EventID  int64     `json:"eventId"`
	Label    string    `json:"label"` // "Moneyline", "Spread", "Total"
	Outcomes []Outcome `json:"outcomes"`
}

type Outcome struct {
	Label        string `json:"label"` // team name for moneylines
	OddsAmerican string `json:"oddsAmerican"`
}
