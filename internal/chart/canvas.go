package chart

import "strings"

// cell is a single glyph on the canvas plus its optional decoration.
type cell struct {
	r    rune
	deco Decorator
}

// Canvas is an owned, mutable grid of styled glyphs. The renderer's raw lines
// are copied in, never aliased, so overlay edits cannot leak back into any
// cached renderer output.
type Canvas struct {
	rows [][]cell
}

// NewCanvas copies the given text lines onto a fresh canvas.
func NewCanvas(lines []string) *Canvas {
	c := &Canvas{rows: make([][]cell, len(lines))}
	for i, line := range lines {
		runes := []rune(line)
		row := make([]cell, len(runes))
		for j, r := range runes {
			row[j] = cell{r: r}
		}
		c.rows[i] = row
	}
	return c
}

// Rows returns the number of rows currently on the canvas.
func (c *Canvas) Rows() int { return len(c.rows) }

// At returns the glyph at (row, col), or a space when out of bounds.
func (c *Canvas) At(row, col int) rune {
	if row < 0 || row >= len(c.rows) || col < 0 || col >= len(c.rows[row]) {
		return ' '
	}
	return c.rows[row][col].r
}

// Set places a glyph at (row, col), growing the row with blanks as needed.
// Writes to nonexistent rows or negative columns are ignored.
func (c *Canvas) Set(row, col int, r rune, deco Decorator) {
	if row < 0 || row >= len(c.rows) || col < 0 {
		return
	}
	for len(c.rows[row]) <= col {
		c.rows[row] = append(c.rows[row], cell{r: ' '})
	}
	c.rows[row][col] = cell{r: r, deco: deco}
}

// Decorate re-styles the glyph at (row, col) without changing it. Out of
// bounds positions are ignored.
func (c *Canvas) Decorate(row, col int, deco Decorator) {
	if row < 0 || row >= len(c.rows) || col < 0 || col >= len(c.rows[row]) {
		return
	}
	c.rows[row][col].deco = deco
}

// AppendRow adds a blank row to the bottom of the canvas and returns its
// index.
func (c *Canvas) AppendRow() int {
	c.rows = append(c.rows, nil)
	return len(c.rows) - 1
}

// String renders the canvas as a single block of text, applying each cell's
// decorator.
func (c *Canvas) String() string {
	var sb strings.Builder
	for i, row := range c.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, cl := range row {
			if cl.deco != nil {
				sb.WriteString(cl.deco(string(cl.r)))
			} else {
				sb.WriteRune(cl.r)
			}
		}
	}
	return sb.String()
}
