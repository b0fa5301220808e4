package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwhitley/reel/internal/domain"
	"github.com/mwhitley/reel/internal/tui/styles"
)

// Layout constants for the grid
const (
	cellLines      = 3 // title, meta, spacer
	minCellWidth   = 16
	defaultColumns = 4
)

// GridItem is one cell of the movie grid.
type GridItem struct {
	Movie          domain.Movie
	Favorite       bool
	MatchedIndexes []int // Title positions to highlight (filter hits)
}

// MovieGrid renders a scrollable grid of movie summaries with a cursor.
type MovieGrid struct {
	items []GridItem

	cursor  int
	offset  int // First visible row
	columns int

	width   int
	height  int
	focused bool
}

// NewMovieGrid creates an empty grid.
func NewMovieGrid() MovieGrid {
	return MovieGrid{columns: defaultColumns, focused: true}
}

// SetItems replaces the grid contents. The cursor is clamped, not reset, so
// an appended page keeps the user's position.
func (g *MovieGrid) SetItems(items []GridItem) {
	g.items = items
	if g.cursor >= len(items) {
		g.cursor = len(items) - 1
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
	g.clampScroll()
}

// Reset clears the cursor and scroll position.
func (g *MovieGrid) Reset() {
	g.cursor = 0
	g.offset = 0
}

// SetSize updates the component dimensions.
func (g *MovieGrid) SetSize(width, height int) {
	g.width = width
	g.height = height

	g.columns = defaultColumns
	for g.columns > 1 && width/g.columns < minCellWidth {
		g.columns--
	}
	g.clampScroll()
}

// SetColumns overrides the column count (from config).
func (g *MovieGrid) SetColumns(n int) {
	if n > 0 {
		g.columns = n
	}
}

// SetFocused toggles cursor highlighting.
func (g *MovieGrid) SetFocused(focused bool) {
	g.focused = focused
}

// Len returns the number of items.
func (g *MovieGrid) Len() int {
	return len(g.items)
}

// Selected returns the movie under the cursor.
func (g *MovieGrid) Selected() (domain.Movie, bool) {
	if g.cursor < 0 || g.cursor >= len(g.items) {
		return domain.Movie{}, false
	}
	return g.items[g.cursor].Movie, true
}

// AtLastRow reports whether the cursor sits on the final row, which the app
// uses to trigger load-more on a further down-move.
func (g *MovieGrid) AtLastRow() bool {
	if len(g.items) == 0 {
		return true
	}
	return g.cursor/g.columns == (len(g.items)-1)/g.columns
}

// Cursor movement

func (g *MovieGrid) MoveUp() {
	if g.cursor-g.columns >= 0 {
		g.cursor -= g.columns
	}
	g.clampScroll()
}

func (g *MovieGrid) MoveDown() {
	if g.cursor+g.columns < len(g.items) {
		g.cursor += g.columns
	} else if g.cursor < len(g.items)-1 {
		// Partial last row: land on the final item
		g.cursor = len(g.items) - 1
	}
	g.clampScroll()
}

func (g *MovieGrid) MoveLeft() {
	if g.cursor > 0 {
		g.cursor--
	}
	g.clampScroll()
}

func (g *MovieGrid) MoveRight() {
	if g.cursor < len(g.items)-1 {
		g.cursor++
	}
	g.clampScroll()
}

func (g *MovieGrid) visibleRows() int {
	rows := g.height / cellLines
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (g *MovieGrid) clampScroll() {
	if g.columns < 1 {
		g.columns = 1
	}
	row := g.cursor / g.columns
	if row < g.offset {
		g.offset = row
	}
	if row >= g.offset+g.visibleRows() {
		g.offset = row - g.visibleRows() + 1
	}
	if g.offset < 0 {
		g.offset = 0
	}
}

// View renders the grid.
func (g *MovieGrid) View() string {
	if len(g.items) == 0 {
		return styles.DimStyle.Render("Nothing to show.")
	}

	cellWidth := g.width / g.columns
	if cellWidth < minCellWidth {
		cellWidth = minCellWidth
	}

	totalRows := (len(g.items) + g.columns - 1) / g.columns
	lastRow := g.offset + g.visibleRows()
	if lastRow > totalRows {
		lastRow = totalRows
	}

	var b strings.Builder
	for row := g.offset; row < lastRow; row++ {
		cells := make([]string, 0, g.columns)
		for col := 0; col < g.columns; col++ {
			i := row*g.columns + col
			if i >= len(g.items) {
				break
			}
			cells = append(cells, g.renderCell(i, cellWidth))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		if row < lastRow-1 {
			b.WriteString("\n")
		}
	}

	if lastRow < totalRows {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("↓ more"))
	}

	return b.String()
}

func (g *MovieGrid) renderCell(i, width int) string {
	item := g.items[i]
	inner := width - 2 // space for the favorite marker column

	title := renderTitle(item, inner)

	mark := styles.NotFavoriteChar
	if item.Favorite {
		mark = styles.FavoriteMark
	}

	meta := metaLine(item.Movie)

	titleLine := mark + " " + title
	if i == g.cursor && g.focused {
		titleLine = mark + " " + styles.HighlightStyle.Render(truncate(item.Movie.Title, inner-2))
	}

	cell := titleLine + "\n  " + meta + "\n"
	return lipgloss.NewStyle().Width(width).Render(cell)
}

// renderTitle truncates and, for filter hits, highlights matched characters.
func renderTitle(item GridItem, width int) string {
	title := truncate(item.Movie.Title, width)
	if len(item.MatchedIndexes) == 0 {
		return styles.TitleStyle.Render(title)
	}

	matched := make(map[int]bool, len(item.MatchedIndexes))
	for _, idx := range item.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder
	for i, r := range title {
		if matched[i] {
			b.WriteString(styles.MatchStyle.Render(string(r)))
		} else {
			b.WriteString(styles.TitleStyle.Render(string(r)))
		}
	}
	return b.String()
}

func metaLine(m domain.Movie) string {
	year := "—"
	if y := m.Year(); y > 0 {
		year = fmt.Sprintf("%d", y)
	}
	if m.VoteCount == 0 {
		return styles.SubtitleStyle.Render(year)
	}
	return styles.SubtitleStyle.Render(year) + " " +
		styles.StarStyle.Render(fmt.Sprintf("%s %.1f", styles.StarChar, m.VoteAverage))
}

func truncate(s string, width int) string {
	if width <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
