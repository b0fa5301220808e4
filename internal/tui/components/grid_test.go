package components

import (
	"fmt"
	"testing"

	"github.com/mwhitley/reel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridWith(n int) MovieGrid {
	g := NewMovieGrid()
	g.SetSize(80, 30)
	g.SetColumns(4)

	items := make([]GridItem, n)
	for i := range items {
		items[i] = GridItem{Movie: domain.Movie{ID: i + 1, Title: fmt.Sprintf("Movie %d", i+1)}}
	}
	g.SetItems(items)
	return g
}

func TestGridCursorMovement(t *testing.T) {
	g := gridWith(10) // rows of 4: [0-3] [4-7] [8-9]

	sel, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, sel.ID)

	g.MoveRight()
	g.MoveDown()
	sel, _ = g.Selected()
	assert.Equal(t, 6, sel.ID)

	g.MoveUp()
	sel, _ = g.Selected()
	assert.Equal(t, 2, sel.ID)

	g.MoveLeft()
	sel, _ = g.Selected()
	assert.Equal(t, 1, sel.ID)

	// Up at the top row stays put
	g.MoveUp()
	sel, _ = g.Selected()
	assert.Equal(t, 1, sel.ID)
}

func TestGridDownIntoPartialLastRow(t *testing.T) {
	g := gridWith(10)

	g.MoveRight()
	g.MoveRight()
	g.MoveRight() // cursor on 4
	g.MoveDown()  // 8
	g.MoveDown()  // last row has only 9, 10: land on 10
	sel, _ := g.Selected()
	assert.Equal(t, 10, sel.ID)
	assert.True(t, g.AtLastRow())
}

func TestGridEmpty(t *testing.T) {
	g := NewMovieGrid()
	_, ok := g.Selected()
	assert.False(t, ok)
	assert.True(t, g.AtLastRow())
	assert.NotEmpty(t, g.View())
}

func TestGridAppendKeepsCursor(t *testing.T) {
	g := gridWith(8)
	g.MoveDown()
	g.MoveDown() // lands on the last item

	items := make([]GridItem, 12)
	for i := range items {
		items[i] = GridItem{Movie: domain.Movie{ID: i + 1}}
	}
	g.SetItems(items)

	sel, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, 8, sel.ID, "cursor should not reset when a page is appended")
}
