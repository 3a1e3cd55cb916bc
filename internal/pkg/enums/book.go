package enums

// Book identifies one of the tracked sportsbooks.
// The string value is the column prefix used in persisted datasets;
// the Odds-API site key may differ (see APIKey).
type Book string

const (
	BetOnline   Book = "bet_online"
	Barstool    Book = "barstool"
	Betfair     Book = "betfair"
	BetMGM      Book = "betmgm"
	BetRivers   Book = "betrivers"
	BetUS       Book = "betus"
	Bovada      Book = "bovada"
	DraftKings  Book = "draftkings"
	FanDuel     Book = "fanduel"
	FoxBet      Book = "foxbet"
	GTBet       Book = "gtbet"
	Intertops   Book = "intertops"
	LowVig      Book = "lowwig"
	MyBookie    Book = "mybookie"
	PointsBet   Book = "pointsbet"
	SugarHouse  Book = "sugarhouse"
	TwinSpires  Book = "twinspires"
	Unibet      Book = "unibet"
	WilliamHill Book = "williamhill"
	WynnBet     Book = "wynnbet"
)

// apiKeys maps each book to the site key used by the-odds-api.
var apiKeys = map[Book]string{
	BetOnline:   "betonlineag",
	Barstool:    "barstool",
	Betfair:     "betfair",
	BetMGM:      "betmgm",
	BetRivers:   "betrivers",
	BetUS:       "betus",
	Bovada:      "bovada",
	DraftKings:  "draftkings",
	FanDuel:     "fanduel",
	FoxBet:      "foxbet",
	GTBet:       "gtbets",
	Intertops:   "intertops",
	LowVig:      "lowvig",
	MyBookie:    "mybookieag",
	PointsBet:   "pointsbetus",
	SugarHouse:  "sugarhouse",
	TwinSpires:  "twinspires",
	Unibet:      "unibet",
	WilliamHill: "williamhill_us",
	WynnBet:     "wynnbet",
}

// APIKey returns the-odds-api site key for the book.
func (b Book) APIKey() string {
	return apiKeys[b]
}

// IsValid checks if the book is one of the tracked sportsbooks.
func (b Book) IsValid() bool {
	_, ok := apiKeys[b]
	return ok
}

// String returns string representation
func (b Book) String() string {
	return string(b)
}

// AllBooks returns every tracked book in stable (column) order.
func AllBooks() []Book {
	return []Book{
		BetOnline,
		Barstool,
		Betfair,
		BetMGM,
		BetRivers,
		BetUS,
		Bovada,
		DraftKings,
		FanDuel,
		FoxBet,
		GTBet,
		Intertops,
		LowVig,
		MyBookie,
		PointsBet,
		SugarHouse,
		TwinSpires,
		Unibet,
		WilliamHill,
		WynnBet,
	}
}

// ParseBook parses a column prefix into a Book.
func ParseBook(s string) (Book, bool) {
	b := Book(s)
	return b, b.IsValid()
}

// BookFromAPIKey resolves the-odds-api site key (e.g. "betonlineag") to a Book.
func BookFromAPIKey(key string) (Book, bool) {
	for b, k := range apiKeys {
		if k == key {
			return b, true
		}
	}
	return "", false
}
