package oddsapi

// oddsResponse is the envelope of GET /v3/odds.
type oddsResponse struct {
	Success bool   `json:"success"`
	Data    []Game `json:"data"`
}

// Game is one upcoming event with per-site odds.
type Game struct {
	ID           string   `json:"id"`
	SportKey     string   `json:"sport_key"`
	SportNice    string   `json:"sport_nice"`
	Teams        []string `json:"teams"`
	CommenceTime int64    `json:"commence_time"` // unix seconds
	HomeTeam     string   `json:"home_team"`
	Sites        []Site   `json:"sites"`
}

// Site is one sportsbook's quote block for a game.
type Site struct {
	SiteKey    string   `json:"site_key"`
	SiteNice   string   `json:"site_nice"`
	LastUpdate int64    `json:"last_update"` // unix seconds
	Odds       SiteOdds `json:"odds"`
}

// SiteOdds carries the head-to-head prices in the order of Game.Teams.
// A third element, when present, is the draw price (unsupported).
type SiteOdds struct {
	H2H []float64 `json:"h2h"`
}
