package domain

import (
	"fmt"
	"strconv"
)

// Movie is a catalog summary record as returned by search, trending and the
// other list endpoints.
type Movie struct {
	ID               int     `json:"id"`                // Catalog-wide unique identifier
	Title            string  `json:"title"`             // Display title
	OriginalTitle    string  `json:"original_title"`    // Title in the original language
	OriginalLanguage string  `json:"original_language"` // ISO 639-1 code
	Overview         string  `json:"overview"`          // Plot synopsis
	PosterPath       string  `json:"poster_path"`       // Relative poster path ("" = none)
	BackdropPath     string  `json:"backdrop_path"`     // Relative backdrop path ("" = none)
	ReleaseDate      string  `json:"release_date"`      // YYYY-MM-DD, may be empty
	VoteAverage      float64 `json:"vote_average"`      // Rating on a 0-10 scale
	VoteCount        int     `json:"vote_count"`
	GenreIDs         []int   `json:"genre_ids"` // Catalog-provided order
	Popularity       float64 `json:"popularity"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
}

// Year returns the release year, or 0 when the release date is absent.
func (m Movie) Year() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	y, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return y
}

// Stars converts the 0-10 vote average to a 0-5 star scale.
func (m Movie) Stars() float64 {
	return m.VoteAverage / 2
}

// FormattedRating returns the rating and vote count in a display form,
// e.g. "7.8 (1,234 votes)" without the thousands separator.
func (m Movie) FormattedRating() string {
	if m.VoteCount == 0 {
		return "Not rated"
	}
	return fmt.Sprintf("%.1f (%d votes)", m.VoteAverage, m.VoteCount)
}

// Genre is a named genre from the detail endpoint.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductionCompany describes a company credited on a movie.
type ProductionCompany struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country"`
}

// ProductionCountry describes a country a movie was produced in.
type ProductionCountry struct {
	ISO3166 string `json:"iso_3166_1"`
	Name    string `json:"name"`
}

// SpokenLanguage describes a language spoken in a movie.
type SpokenLanguage struct {
	ISO639 string `json:"iso_639_1"`
	Name   string `json:"name"`
}

// Collection is a reference to the parent collection a movie belongs to.
type Collection struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	PosterPath   string `json:"poster_path"`
	BackdropPath string `json:"backdrop_path"`
}

// MovieDetails is the full detail record for a single movie.
type MovieDetails struct {
	Movie

	Runtime             int                 `json:"runtime"` // Minutes
	Genres              []Genre             `json:"genres"`  // Catalog-provided order
	ProductionCompanies []ProductionCompany `json:"production_companies"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
	SpokenLanguages     []SpokenLanguage    `json:"spoken_languages"`
	Budget              int64               `json:"budget"`
	Revenue             int64               `json:"revenue"`
	Tagline             string              `json:"tagline"`
	Homepage            string              `json:"homepage"`
	IMDBID              string              `json:"imdb_id"`
	Status              string              `json:"status"`
	Collection          *Collection         `json:"belongs_to_collection"`
}

// FormattedRuntime returns the runtime in a human-readable format.
func (d MovieDetails) FormattedRuntime() string {
	if d.Runtime <= 0 {
		return ""
	}
	h := d.Runtime / 60
	m := d.Runtime % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// MoviePage is the paginated response envelope used by every list endpoint.
type MoviePage struct {
	Page         int
	Results      []Movie
	TotalPages   int
	TotalResults int
}

// HasMore reports whether further pages exist beyond this one.
func (p MoviePage) HasMore() bool {
	return p.Page < p.TotalPages
}
