package pdf

import "strings"

// DrawWrapped lays out multi-line text under maxWidth, breaking on word
// boundaries and advancing the cursor one line height per drawn line.
//
// The return value is the cursor after the last drawn line plus one line
// height. All call sites rely on this offset and compensate explicitly when
// they need the next usable top; changing it would shift every vertical
// spacing computation downstream.
//
// Empty input draws nothing and returns startY unchanged. A token wider than
// maxWidth with no internal space is drawn in full at its oversized width.
func (d *Doc) DrawWrapped(text string, startY, x float64, opt TextOptions, maxWidth float64) float64 {
	if maxWidth <= 0 {
		maxWidth = PageWidth - x - Margin
	}
	lines := d.wrapLines(text, maxWidth, opt)
	if len(lines) == 0 {
		return startY
	}
	y := startY
	for _, line := range lines {
		y = d.DrawLine(line, y, x, opt)
	}
	return y + opt.lineHeight()
}

// wrapLines splits sanitized text into the lines DrawWrapped will draw.
// Hard newlines split first; each resulting line is then greedily broken
// to fit maxWidth.
func (d *Doc) wrapLines(text string, maxWidth float64, opt TextOptions) []string {
	s := Sanitize(text)
	if s == "" {
		return nil
	}

	var lines []string
	for _, raw := range strings.Split(s, "\n") {
		rest := raw
		for {
			if d.TextWidth(rest, opt.Font, opt.size()) <= maxWidth {
				lines = append(lines, rest)
				break
			}
			prefix, remainder := d.breakLine(rest, maxWidth, opt)
			lines = append(lines, prefix)
			rest = strings.TrimLeft(remainder, " ")
			if rest == "" {
				break
			}
		}
	}
	return lines
}

// breakLine finds the longest prefix of line that fits maxWidth, preferring
// the last space at or before the metric break point. When no space precedes
// the break point the whole leading token is kept intact, oversized, up to
// the next space (or the end of the line).
func (d *Doc) breakLine(line string, maxWidth float64, opt TextOptions) (prefix, remainder string) {
	runes := []rune(line)

	// Longest prefix whose rendered width fits.
	cut := 0
	for i := 1; i <= len(runes); i++ {
		if d.TextWidth(string(runes[:i]), opt.Font, opt.size()) > maxWidth {
			break
		}
		cut = i
	}
	if cut == 0 {
		cut = 1 // a single glyph never splits further
	}

	// Prefer the last word boundary at or before the break point.
	for i := cut - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return string(runes[:i]), string(runes[i:])
		}
	}

	// No boundary before the break point: keep the token whole.
	for i := cut; i < len(runes); i++ {
		if runes[i] == ' ' {
			return string(runes[:i]), string(runes[i:])
		}
	}
	return line, ""
}
