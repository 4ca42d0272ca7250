package components

import "strings"

// BigTextHeight is the number of rows every BigText rendering has.
const BigTextHeight = 5

// Glyph masks on a 3-column grid ('#' lit). Colon and space are one column.
var bigGlyphs = map[rune][BigTextHeight]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	':': {".", "#", ".", "#", "."},
	' ': {".", ".", ".", ".", "."},
}

const (
	bigLit   = "██"
	bigBlank = "  "
)

// BigText renders digits, colons and spaces as block glyphs, one string per
// row. Every lit cell is two terminal columns wide and glyphs are separated
// by one column. Runes without a glyph are skipped.
func BigText(s string) []string {
	rows := make([]strings.Builder, BigTextHeight)
	first := true
	for _, r := range s {
		g, ok := bigGlyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			if !first {
				rows[i].WriteByte(' ')
			}
			for _, c := range g[i] {
				if c == '#' {
					rows[i].WriteString(bigLit)
				} else {
					rows[i].WriteString(bigBlank)
				}
			}
		}
		first = false
	}

	out := make([]string, BigTextHeight)
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out
}

// BigTextWidth returns the cell width BigText(s) will occupy.
func BigTextWidth(s string) int {
	w, n := 0, 0
	for _, r := range s {
		g, ok := bigGlyphs[r]
		if !ok {
			continue
		}
		w += len(g[0]) * len(bigBlank)
		n++
	}
	if n > 1 {
		w += n - 1
	}
	return w
}
