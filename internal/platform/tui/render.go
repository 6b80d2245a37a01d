package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/milyin/tui2048/internal/field"
	"github.com/milyin/tui2048/internal/game"
)

const tileWidth = 7

// tileStyles maps tile levels to lipgloss styles, roughly following the
// classic palette: warm tones up to 2048, then purple for everything above.
var tileStyles = map[uint]lipgloss.Style{
	0:  tileBase().Background(lipgloss.Color("254")).Foreground(lipgloss.Color("238")),
	1:  tileBase().Background(lipgloss.Color("252")).Foreground(lipgloss.Color("238")),
	2:  tileBase().Background(lipgloss.Color("216")).Foreground(lipgloss.Color("238")),
	3:  tileBase().Background(lipgloss.Color("209")).Foreground(lipgloss.Color("231")),
	4:  tileBase().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("231")),
	5:  tileBase().Background(lipgloss.Color("202")).Foreground(lipgloss.Color("231")),
	6:  tileBase().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("231")),
	7:  tileBase().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("238")),
	8:  tileBase().Background(lipgloss.Color("221")).Foreground(lipgloss.Color("238")),
	9:  tileBase().Background(lipgloss.Color("222")).Foreground(lipgloss.Color("238")),
	10: tileBase().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("238")),
}

var (
	emptyStyle = tileBase().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("241"))

	bigTileStyle = tileBase().
			Background(lipgloss.Color("93")).
			Foreground(lipgloss.Color("231"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	overStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

func tileBase() lipgloss.Style {
	return lipgloss.NewStyle().
		Width(tileWidth).
		Align(lipgloss.Center).
		Bold(true)
}

// tileStyle returns the style for a tile level.
func tileStyle(level uint) lipgloss.Style {
	if s, ok := tileStyles[level]; ok {
		return s
	}
	return bigTileStyle
}

// renderBoard draws the tile grid.
func renderBoard(g *game.Game) string {
	f := g.Field()

	rows := make([]string, 0, f.Height())
	for y := 0; y < f.Height(); y++ {
		cells := make([]string, 0, f.Width())
		for x := 0; x < f.Width(); x++ {
			cells = append(cells, renderCell(f.Get(x, y)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderCell draws a single cell: the face value for tiles, a dot for
// empty slots.
func renderCell(t *field.Tile) string {
	if t == nil {
		return emptyStyle.Render("·")
	}
	return tileStyle(t.Level).Render(fmt.Sprintf("%d", game.DisplayValue(t.Level)))
}

// renderHUD draws the score line above the board.
func renderHUD(g *game.Game, best int) string {
	hud := fmt.Sprintf("Score: %d   Moves: %d", g.DisplayScore(), g.Moves())
	if best > 0 {
		hud += fmt.Sprintf("   Best: %d", best)
	}
	return hudStyle.Render(hud)
}
