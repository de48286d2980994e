package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/snake-village/internal/core"
	"github.com/vovakirdan/snake-village/internal/games/snake"
	"github.com/vovakirdan/snake-village/internal/registry"
)

// Board layout: one HUD row above the framed board, one help row below.
// Each board cell is two terminal columns wide.
const (
	hudRows    = 1
	footerRows = 1
	cellChars  = 2
)

// boardCells returns how many board cells fit in a terminal.
func boardCells(termW, termH int) (cols, rows int) {
	cols = core.Max(0, (termW-2)/cellChars)
	rows = core.Max(0, termH-hudRows-footerRows-2)
	return cols, rows
}

// boardUnits converts a terminal size to board units for the session.
func boardUnits(termW, termH, cellSize int) (w, h int) {
	cols, rows := boardCells(termW, termH)
	return cols * cellSize, rows * cellSize
}

// hudInfo carries the non-simulation values shown around the board.
type hudInfo struct {
	HighScore int
	Muted     bool
	Banner    string // Level-up banner, empty when hidden
}

// boardView maps board cells to screen positions.
type boardView struct {
	scr    *core.Screen
	ox, oy int // Top-left of the frame
	cols   int
	rows   int
	cs     int
}

func (v boardView) plot(cx, cy int, glyph string, c core.Color) {
	if cx < 0 || cy < 0 || cx >= v.cols || cy >= v.rows {
		return
	}
	v.scr.DrawText(v.ox+1+cx*cellChars, v.oy+1+cy, glyph, c)
}

func (v boardView) plotPoint(p core.Point, glyph string, c core.Color) {
	v.plot(p.X/v.cs, p.Y/v.cs, glyph, c)
}

// drawGame renders a full game frame into scr.
func drawGame(scr *core.Screen, snap snake.Snapshot, theme registry.Theme, hud hudInfo, fx *Particles) {
	scr.Clear()

	if snap.TooSmall {
		drawTooSmall(scr)
		return
	}

	pal := theme.Palette
	cols, rows := snap.Cols(), snap.Rows()
	frameW := cols*cellChars + 2
	v := boardView{
		scr:  scr,
		ox:   core.Max(0, (scr.Width()-frameW)/2),
		oy:   hudRows,
		cols: cols,
		rows: rows,
		cs:   snap.CellSize,
	}

	drawHUD(scr, snap, theme, hud)

	border := pal.Border
	if snap.InDanger && snap.Tick%2 == 0 {
		border = core.ColorRed
	}
	scr.DrawBox(core.NewRect(v.ox, v.oy, frameW, rows+2), border)

	for _, p := range snap.Props {
		v.plotPoint(p.Pos, string(theme.Glyph(p.Type)), core.ColorGray)
	}
	for _, o := range snap.Obstacles {
		v.plotPoint(o, "▒▒", pal.Obstacle)
	}
	for _, vl := range snap.Villagers {
		glyph := "☺"
		if vl.Scared {
			glyph = "!"
		}
		v.plotPoint(vl.Pos, glyph, pal.Villager)
	}
	v.plotPoint(snap.Food, "◆", pal.Food)
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		c := pal.Snake
		if i == 0 {
			c = pal.SnakeHead
		}
		v.plotPoint(snap.Snake[i], "██", c)
	}
	if fx != nil {
		fx.Draw(cols, rows, func(cx, cy int, r rune) {
			v.plot(cx, cy, string(r), pal.Particle)
		})
	}

	midY := v.oy + 1 + rows/2
	switch {
	case snap.GameOver:
		drawOverlay(scr, midY, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Score %d   Level %d", snap.Score, snap.Level),
			fmt.Sprintf("Best %d", core.Max(hud.HighScore, snap.Score)),
			"",
			"r play again   esc menu   q quit",
		)
	case snap.Paused:
		drawOverlay(scr, midY, core.ColorYellow, "PAUSED", "", "p resume   esc menu")
	case hud.Banner != "":
		drawOverlay(scr, midY, pal.Food, hud.Banner)
	}

	scr.DrawTextCentered(scr.Height()-1,
		"arrows/wasd move   p pause   m sound   esc menu   q quit", core.ColorGray)
}

func drawHUD(scr *core.Screen, snap snake.Snapshot, theme registry.Theme, hud hudInfo) {
	sound := "sound on"
	if hud.Muted {
		sound = "sound off"
	}
	left := fmt.Sprintf(" Score %d  Level %d  Best %d", snap.Score, snap.Level, core.Max(hud.HighScore, snap.Score))
	right := fmt.Sprintf("%s · %s · %dms · %s ", snap.Difficulty, theme.Title, snap.Speed.Milliseconds(), sound)

	scr.DrawText(0, 0, left, core.ColorWhite)
	if snap.InDanger && !snap.GameOver {
		scr.DrawText(len([]rune(left))+2, 0, "DANGER", core.ColorRed)
	}
	scr.DrawText(scr.Width()-len([]rune(right)), 0, right, core.ColorGray)
}

// drawOverlay draws a framed message box centered on row midY.
func drawOverlay(scr *core.Screen, midY int, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 6
	boxH := len(lines) + 2
	r := core.NewRect(
		core.Clamp((scr.Width()-boxW)/2, 0, scr.Width()),
		core.Clamp(midY-boxH/2, 0, scr.Height()),
		boxW, boxH,
	)

	scr.FillRect(r, ' ', core.ColorDefault)
	scr.DrawBox(r, c)
	for i, l := range lines {
		x := r.X + (boxW-len([]rune(l)))/2
		scr.DrawText(x, r.Y+1+i, l, c)
	}
}

func drawTooSmall(scr *core.Screen) {
	minW := snake.MinBoardCells*cellChars + 2
	minH := snake.MinBoardCells + hudRows + footerRows + 2
	msg := []string{
		"Terminal too small",
		fmt.Sprintf("need at least %dx%d", minW, minH),
	}
	y := scr.Height()/2 - 1
	for i, l := range msg {
		scr.DrawTextCentered(y+i, l, core.ColorYellow)
	}
}

// levelBanner formats the level-up announcement.
func levelBanner(level int) string {
	return strings.ToUpper(fmt.Sprintf("Level %d!", level))
}
