package catalog

// SearchResult is a single entry from the paginated discover endpoint.
type SearchResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// DiscoverPage is one page of discover results.
type DiscoverPage struct {
	Page       int            `json:"page"`
	Results    []SearchResult `json:"results"`
	TotalPages int            `json:"total_pages"`
}

// Genre is a genre name as returned by the detail endpoint.
type Genre struct {
	Name string `json:"name"`
}

// ProductionCountry is a production country as returned by the detail endpoint.
type ProductionCountry struct {
	Name    string `json:"name"`
	ISO3166 string `json:"iso_3166_1"`
}

// MovieDetail is the detail record for a single movie.
type MovieDetail struct {
	Genres              []Genre             `json:"genres"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
	OriginalLanguage    string              `json:"original_language"`
}

// DiscoverQuery bounds a discover request. Dates are YYYY-MM-DD and bound the
// remote query only; window membership is enforced independently downstream.
type DiscoverQuery struct {
	LanguageCode string
	RegionCode   string
	StartDate    string
	EndDate      string
	Page         int
}
