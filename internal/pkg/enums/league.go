package enums

// League represents supported leagues
type League string

const (
	MLB   League = "MLB"
	NBA   League = "NBA"
	NFL   League = "NFL"
	NCAAB League = "NCAAB"
)

// LeagueInfo contains additional information about a league
type LeagueInfo struct {
	SportKey string // the-odds-api sport key
	DataDir  string // directory for persisted period datasets
}

// GetLeagueInfo returns league information
func (l League) GetLeagueInfo() LeagueInfo {
	switch l {
	case MLB:
		return LeagueInfo{SportKey: "baseball_mlb", DataDir: "mlb_odds"}
	case NBA:
		return LeagueInfo{SportKey: "basketball_nba", DataDir: "nba_odds"}
	case NFL:
		return LeagueInfo{SportKey: "americanfootball_nfl", DataDir: "nfl_odds"}
	case NCAAB:
		return LeagueInfo{SportKey: "basketball_ncaab", DataDir: "ncaab_odds"}
	default:
		return LeagueInfo{SportKey: "unknown", DataDir: "odds"}
	}
}

// IsValid checks if league is supported
func (l League) IsValid() bool {
	switch l {
	case MLB, NBA, NFL, NCAAB:
		return true
	default:
		return false
	}
}

// String returns string representation
func (l League) String() string {
	return string(l)
}

// GetAllLeagues returns all supported leagues
func GetAllLeagues() []League {
	return []League{MLB, NBA, NFL, NCAAB}
}

// ParseLeague parses string to League enum
func ParseLeague(s string) (League, bool) {
	l := League(s)
	return l, l.IsValid()
}
