package tmdb

import "github.com/mwhitley/reel/internal/domain"

func mapMovie(dto movieDTO) domain.Movie {
	return domain.Movie{
		ID:               dto.ID,
		Title:            dto.Title,
		OriginalTitle:    dto.OriginalTitle,
		OriginalLanguage: dto.OriginalLanguage,
		Overview:         dto.Overview,
		PosterPath:       dto.PosterPath,
		BackdropPath:     dto.BackdropPath,
		ReleaseDate:      dto.ReleaseDate,
		VoteAverage:      dto.VoteAverage,
		VoteCount:        dto.VoteCount,
		GenreIDs:         dto.GenreIDs,
		Popularity:       dto.Popularity,
		Adult:            dto.Adult,
		Video:            dto.Video,
	}
}

func mapPage(resp pageResponse) *domain.MoviePage {
	results := make([]domain.Movie, 0, len(resp.Results))
	for _, dto := range resp.Results {
		results = append(results, mapMovie(dto))
	}
	return &domain.MoviePage{
		Page:         resp.Page,
		Results:      results,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
	}
}

func mapDetails(resp movieDetailResponse) *domain.MovieDetails {
	details := &domain.MovieDetails{
		Movie:    mapMovie(resp.movieDTO),
		Runtime:  resp.Runtime,
		Budget:   resp.Budget,
		Revenue:  resp.Revenue,
		Tagline:  resp.Tagline,
		Homepage: resp.Homepage,
		IMDBID:   resp.IMDBID,
		Status:   resp.Status,
	}

	for _, g := range resp.Genres {
		details.Genres = append(details.Genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	for _, c := range resp.ProductionCompanies {
		details.ProductionCompanies = append(details.ProductionCompanies, domain.ProductionCompany{
			ID:            c.ID,
			Name:          c.Name,
			LogoPath:      c.LogoPath,
			OriginCountry: c.OriginCountry,
		})
	}
	for _, c := range resp.ProductionCountries {
		details.ProductionCountries = append(details.ProductionCountries, domain.ProductionCountry{
			ISO3166: c.ISO3166,
			Name:    c.Name,
		})
	}
	for _, l := range resp.SpokenLanguages {
		details.SpokenLanguages = append(details.SpokenLanguages, domain.SpokenLanguage{
			ISO639: l.ISO639,
			Name:   l.Name,
		})
	}
	if resp.Collection != nil {
		details.Collection = &domain.Collection{
			ID:           resp.Collection.ID,
			Name:         resp.Collection.Name,
			PosterPath:   resp.Collection.PosterPath,
			BackdropPath: resp.Collection.BackdropPath,
		}
	}

	return details
}
