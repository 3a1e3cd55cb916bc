package betrivers

// listViewResponse is the envelope of the listview/events endpoint.
type listViewResponse struct {
	Items []Event `json:"items"`
}

// Event is one game with its participants and bet offers.
type Event struct {
	ID           int64         `json:"id"`
	Start        string        `json:"start"` // RFC3339
	Participants []Participant `json:"participants"`
	BetOffers    []BetOffer    `json:"betOffers"`
}

type Participant struct {
	Name string `json:"name"`
	Home bool   `json:"home"`
}

type BetOffer struct {
	BetDescription string    `json:"betDescription"`
	Outcomes       []Outcome `json:"outcomes"`
}

type Outcome struct {
	Type         string `json:"type"` // "HOME" / "AWAY"
	OddsAmerican string `json:"oddsAmerican"`
	Line         string `json:"line,omitempty"`
}
