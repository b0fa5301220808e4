package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwhitley/reel/internal/domain"
	"github.com/mwhitley/reel/internal/tui/styles"
)

// DetailView renders the full detail page for one movie.
type DetailView struct {
	details  *domain.MovieDetails
	favorite bool
	images   domain.ImageResolver

	width  int
	height int
}

// NewDetailView creates an empty detail view.
func NewDetailView(images domain.ImageResolver) DetailView {
	return DetailView{images: images}
}

// SetDetails replaces the displayed movie.
func (d *DetailView) SetDetails(details *domain.MovieDetails, favorite bool) {
	d.details = details
	d.favorite = favorite
}

// SetFavorite updates the favorite marker without reloading.
func (d *DetailView) SetFavorite(favorite bool) {
	d.favorite = favorite
}

// MovieID returns the displayed movie's ID, or 0 when empty.
func (d DetailView) MovieID() int {
	if d.details == nil {
		return 0
	}
	return d.details.ID
}

// Movie returns the summary portion of the displayed movie.
func (d DetailView) Movie() (domain.Movie, bool) {
	if d.details == nil {
		return domain.Movie{}, false
	}
	return d.details.Movie, true
}

// SetSize updates the component dimensions.
func (d *DetailView) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the detail page.
func (d DetailView) View() string {
	if d.details == nil {
		return styles.DimStyle.Render("Loading details...")
	}

	m := d.details
	width := d.width - 4
	if width < 20 {
		width = 20
	}
	body := lipgloss.NewStyle().Width(width)

	var rows []string

	title := styles.TitleStyle.Render(m.Title)
	if m.Year() > 0 {
		title += styles.SubtitleStyle.Render(fmt.Sprintf(" (%d)", m.Year()))
	}
	if d.favorite {
		title += " " + styles.FavoriteMark
	}
	rows = append(rows, title)

	if m.Tagline != "" {
		rows = append(rows, styles.DimStyle.Italic(true).Render(m.Tagline))
	}
	rows = append(rows, "")

	rows = append(rows, renderStars(m.Stars())+" "+styles.SubtitleStyle.Render(m.FormattedRating()))

	var facts []string
	if rt := m.FormattedRuntime(); rt != "" {
		facts = append(facts, rt)
	}
	if m.Status != "" {
		facts = append(facts, m.Status)
	}
	if m.OriginalLanguage != "" {
		facts = append(facts, strings.ToUpper(m.OriginalLanguage))
	}
	if len(facts) > 0 {
		rows = append(rows, styles.SubtitleStyle.Render(strings.Join(facts, " · ")))
	}

	if len(m.Genres) > 0 {
		names := make([]string, len(m.Genres))
		for i, g := range m.Genres {
			names[i] = g.Name
		}
		rows = append(rows, styles.AccentStyle.Render(strings.Join(names, ", ")))
	}

	if m.Overview != "" {
		rows = append(rows, "", body.Render(m.Overview))
	}

	var credits []string
	if len(m.ProductionCompanies) > 0 {
		names := make([]string, len(m.ProductionCompanies))
		for i, c := range m.ProductionCompanies {
			names[i] = c.Name
		}
		credits = append(credits, "Studios: "+strings.Join(names, ", "))
	}
	if len(m.ProductionCountries) > 0 {
		names := make([]string, len(m.ProductionCountries))
		for i, c := range m.ProductionCountries {
			names[i] = c.Name
		}
		credits = append(credits, "Countries: "+strings.Join(names, ", "))
	}
	if len(m.SpokenLanguages) > 0 {
		names := make([]string, len(m.SpokenLanguages))
		for i, l := range m.SpokenLanguages {
			names[i] = l.Name
		}
		credits = append(credits, "Languages: "+strings.Join(names, ", "))
	}
	if m.Budget > 0 {
		credits = append(credits, fmt.Sprintf("Budget: $%s", formatAmount(m.Budget)))
	}
	if m.Revenue > 0 {
		credits = append(credits, fmt.Sprintf("Revenue: $%s", formatAmount(m.Revenue)))
	}
	if m.Collection != nil {
		credits = append(credits, "Part of: "+m.Collection.Name)
	}
	if len(credits) > 0 {
		rows = append(rows, "")
		for _, line := range credits {
			rows = append(rows, body.Render(styles.SubtitleStyle.Render(line)))
		}
	}

	var links []string
	if m.Homepage != "" {
		links = append(links, m.Homepage)
	}
	if m.IMDBID != "" {
		links = append(links, "https://www.imdb.com/title/"+m.IMDBID)
	}
	if poster := d.images.PosterURL(m.Movie); poster != "" {
		links = append(links, poster)
	} else {
		links = append(links, styles.DimStyle.Render("no poster available"))
	}
	rows = append(rows, "")
	for _, link := range links {
		rows = append(rows, styles.DimStyle.Render(link))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderStars draws a five-star rating bar.
func renderStars(stars float64) string {
	filled := int(stars + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return styles.StarStyle.Render(
		strings.Repeat(styles.StarChar, filled) + strings.Repeat(styles.EmptyStarChar, 5-filled))
}

// formatAmount inserts thousands separators into a dollar amount.
func formatAmount(n int64) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
