package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

// Styles contains styling for board and console output
type Styles struct {
	Header   lipgloss.Style
	Covered  lipgloss.Style
	Empty    lipgloss.Style
	Flag     lipgloss.Style
	Question lipgloss.Style
	Numbers  [9]lipgloss.Style
	Exploded lipgloss.Style
	Mine     lipgloss.Style
	BadFlag  lipgloss.Style

	Prompt  lipgloss.Style
	Status  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

var numberColors = [9]string{
	"#626262", // unused, 0 is drawn with Empty
	"#74B9FF",
	"#96CEB4",
	"#FF6B6B",
	"#7D56F4",
	"#FFD700",
	"#00CEC9",
	"#FAFAFA",
	"#B2BEC3",
}

// DefaultStyles creates the styles used on a color terminal
func DefaultStyles() Styles {
	s := Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Covered: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B2BEC3")),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Flag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Question: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")).
			Bold(true),
		Exploded: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Mine: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BadFlag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Strikethrough(true),

		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
	for n, color := range numberColors {
		s.Numbers[n] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Bold(true)
	}
	return s
}

// Renderer draws engine views as text. A plain renderer emits no escape
// sequences at all.
type Renderer struct {
	styles Styles
	plain  bool
}

func New(plain bool) *Renderer {
	return &Renderer{styles: DefaultStyles(), plain: plain}
}

// Lipgloss pads every line of a multi-line block to the same width, so
// styles go on single glyphs and lines only.
func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if r.plain {
		return s
	}
	return style.Render(s)
}

func (r *Renderer) cellStyle(s mines.CellState) lipgloss.Style {
	switch {
	case s == mines.Unknown:
		return r.styles.Covered
	case s == mines.Flag, s == mines.CorrectlyFlagged:
		return r.styles.Flag
	case s == mines.Question:
		return r.styles.Question
	case s == 0:
		return r.styles.Empty
	case s.Revealed():
		return r.styles.Numbers[s]
	case s == mines.ExplodedMine:
		return r.styles.Exploded
	case s == mines.FalselyFlagged:
		return r.styles.BadFlag
	default:
		return r.styles.Mine
	}
}

func digits(n int) int {
	return len(strconv.Itoa(n))
}

// Board draws the grid with column numbers on top and row numbers on the
// left, both zero-based as the console expects them.
func (r *Renderer) Board(v mines.View) string {
	var (
		b      strings.Builder
		labelW = digits(v.Rows - 1)
		cellW  = digits(v.Cols - 1)
	)

	header := make([]string, v.Cols)
	for col := range v.Cols {
		header[col] = fmt.Sprintf("%*d", cellW, col)
	}
	b.WriteString(strings.Repeat(" ", labelW+1))
	b.WriteString(r.paint(r.styles.Header, strings.Join(header, " ")))
	b.WriteByte('\n')

	for row := range v.Rows {
		b.WriteString(r.paint(r.styles.Header, fmt.Sprintf("%*d", labelW, row)))
		for _, s := range v.Row(row) {
			b.WriteString(strings.Repeat(" ", cellW))
			b.WriteString(r.paint(r.cellStyle(s), s.String()))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Status summarizes a view in one line.
func (r *Renderer) Status(v mines.View) string {
	return r.paint(r.styles.Status, fmt.Sprintf(
		"%dx%d  mines: %d  flags: %d  left: %d  %s",
		v.Rows, v.Cols, v.MineCount, v.FlagCount, v.MineCount-v.FlagCount, v.State,
	))
}

func (r *Renderer) Prompt(s string) string  { return r.paint(r.styles.Prompt, s) }
func (r *Renderer) Success(s string) string { return r.paint(r.styles.Success, s) }
func (r *Renderer) Error(s string) string   { return r.paint(r.styles.Error, s) }
func (r *Renderer) Warning(s string) string { return r.paint(r.styles.Warning, s) }
func (r *Renderer) Info(s string) string    { return r.paint(r.styles.Info, s) }
