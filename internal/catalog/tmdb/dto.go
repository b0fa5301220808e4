package tmdb

// Wire types for TMDB responses. Nullable paths decode to "" and are mapped
// to empty strings on the domain side.

type pageResponse struct {
	Page         int        `json:"page"`
	Results      []movieDTO `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

type movieDTO struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	OriginalLanguage string  `json:"original_language"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	GenreIDs         []int   `json:"genre_ids"`
	Popularity       float64 `json:"popularity"`
	Adult            bool    `json:"adult"`
	Video            bool    `json:"video"`
}

type genreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type companyDTO struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country"`
}

type countryDTO struct {
	ISO3166 string `json:"iso_3166_1"`
	Name    string `json:"name"`
}

type languageDTO struct {
	ISO639 string `json:"iso_639_1"`
	Name   string `json:"name"`
}

type collectionDTO struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	PosterPath   string `json:"poster_path"`
	BackdropPath string `json:"backdrop_path"`
}

type movieDetailResponse struct {
	movieDTO

	Runtime             int            `json:"runtime"`
	Genres              []genreDTO     `json:"genres"`
	ProductionCompanies []companyDTO   `json:"production_companies"`
	ProductionCountries []countryDTO   `json:"production_countries"`
	SpokenLanguages     []languageDTO  `json:"spoken_languages"`
	Budget              int64          `json:"budget"`
	Revenue             int64          `json:"revenue"`
	Tagline             string         `json:"tagline"`
	Homepage            string         `json:"homepage"`
	IMDBID              string         `json:"imdb_id"`
	Status              string         `json:"status"`
	Collection          *collectionDTO `json:"belongs_to_collection"`
}
