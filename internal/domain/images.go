package domain

// Image size tokens used when building asset URLs.
const (
	posterSize   = "w500"
	backdropSize = "original"
)

// ImageResolver builds full image URLs from the relative paths carried on
// catalog records.
type ImageResolver struct {
	baseURL string
}

// NewImageResolver creates a resolver rooted at the image host,
// e.g. "https://image.tmdb.org/t/p".
func NewImageResolver(baseURL string) ImageResolver {
	return ImageResolver{baseURL: baseURL}
}

// PosterURL returns the full poster URL, or "" when the movie has no poster.
// Callers render a fallback instead of requesting an image for "".
func (r ImageResolver) PosterURL(m Movie) string {
	if m.PosterPath == "" {
		return ""
	}
	return r.baseURL + "/" + posterSize + m.PosterPath
}

// BackdropURL returns the full backdrop URL, or "" when absent.
func (r ImageResolver) BackdropURL(m Movie) string {
	if m.BackdropPath == "" {
		return ""
	}
	return r.baseURL + "/" + backdropSize + m.BackdropPath
}
