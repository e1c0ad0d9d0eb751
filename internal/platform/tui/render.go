package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/termsnake/termsnake/internal/core"
	"github.com/termsnake/termsnake/internal/snake"
)

// Board glyphs, matching the classic look: a bold red apple, a bright head
// and a dimmer body.
const (
	appleGlyph = '@'
	headGlyph  = '■'
	bodyGlyph  = '■'
)

// colorStyles maps core colors to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a screen buffer to a styled string. Adjacent cells
// with the same color are grouped to keep ANSI escape sequences down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// viewMenu renders the start menu as centered plain text with a help footer.
func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(centerText("T E R M S N A K E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Eat apples, dodge walls, dodge yourself.", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Press Enter to start", m.width))
	b.WriteString("\n")
	b.WriteString(centerText("Press Q to quit", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// viewGame renders the full frame: HUD, board, snake, apple, status line and
// the game-over overlay. The whole grid is recomputed every frame.
func (m Model) viewGame() string {
	snap := m.session.Snapshot()
	m.screen.Clear()

	m.drawHUD(snap)
	m.drawBoard(snap)
	m.drawStatus(snap)

	if snap.Over {
		m.drawGameOverOverlay(snap)
	}

	return RenderScreen(m.screen)
}

// drawHUD draws the score/level line and a separator.
func (m Model) drawHUD(snap snake.Snapshot) {
	hud := fmt.Sprintf(" termsnake   Score: %d   Level: %d", snap.Score, snap.Level)
	m.screen.DrawTextColored(0, 0, hud, core.ColorYellow)
	m.screen.DrawHLine(0, 1, m.screen.Width(), '─', core.ColorGray)
}

// drawBoard draws the bordered playfield with the snake and the apple.
func (m Model) drawBoard(snap snake.Snapshot) {
	ox, oy := m.boardOrigin(snap)

	m.screen.DrawBox(core.NewRect(ox, oy, snap.Width+2, snap.Height+2), core.ColorMagenta)

	m.screen.SetCell(ox+1+snap.Apple.X, oy+1+snap.Apple.Y, appleGlyph, core.ColorBrightRed)

	for i, seg := range snap.Snake {
		if i == 0 {
			m.screen.SetCell(ox+1+seg.X, oy+1+seg.Y, headGlyph, core.ColorBrightGreen)
		} else {
			m.screen.SetCell(ox+1+seg.X, oy+1+seg.Y, bodyGlyph, core.ColorGreen)
		}
	}
}

// drawStatus draws the bottom control hints.
func (m Model) drawStatus(snap snake.Snapshot) {
	status := " WASD/arrows: move   R: restart   Q: quit"
	if snap.Over {
		status = " R: restart   Esc: menu   Q: quit"
	}
	m.screen.DrawTextColored(0, m.screen.Height()-1, status, core.ColorGray)
}

// drawGameOverOverlay draws a centered box over the board.
func (m Model) drawGameOverOverlay(snap snake.Snapshot) {
	line1 := "GAME OVER"
	line2 := fmt.Sprintf("Score: %d   Level: %d", snap.Score, snap.Level)
	line3 := "Press R to restart"

	boxW := core.Max(len(line2), len(line3)) + 6
	boxH := 7
	boxX := (m.screen.Width() - boxW) / 2
	boxY := (m.screen.Height() - boxH) / 2

	// Blank the interior first so the snake does not show through
	for y := boxY; y < boxY+boxH; y++ {
		m.screen.DrawHLine(boxX, y, boxW, ' ', core.ColorDefault)
	}
	m.screen.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightRed)

	m.screen.DrawTextCentered(boxY+1, line1, core.ColorBrightRed)
	m.screen.DrawTextCentered(boxY+3, line2, core.ColorWhite)
	m.screen.DrawTextCentered(boxY+5, line3, core.ColorGray)
}

// boardOrigin returns the top-left corner of the board box, centered
// horizontally under the HUD.
func (m Model) boardOrigin(snap snake.Snapshot) (int, int) {
	ox := core.Max(0, (m.screen.Width()-snap.Width-2)/2)
	return ox, hudRows
}

// centerText centers a single line within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return strings.Repeat(" ", (width-len(text))/2) + text
}
