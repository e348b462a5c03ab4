package pdf

import (
	"strings"
	"testing"
)

// Every wrapped line must fit maxWidth, except a single token with no
// internal space which is allowed to overflow.
func TestWrapLinesRespectMaxWidth(t *testing.T) {
	d := NewDoc()
	opt := TextOptions{Size: 10}

	inputs := []string{
		"the quick brown fox jumps over the lazy dog again and again and again",
		"short",
		"a b c d e f g h i j k l m n o p q r s t u v w x y z",
		"several words\nover multiple\nhard lines that are long enough to wrap at narrow widths",
	}
	for _, in := range inputs {
		for _, maxWidth := range []float64{60, 120, 250} {
			for _, line := range d.wrapLines(in, maxWidth, opt) {
				// A single unbreakable token may legally overflow; any
				// line that still contains a space must fit.
				if !strings.Contains(line, " ") {
					continue
				}
				if w := d.TextWidth(line, opt.Font, opt.size()); w > maxWidth {
					t.Errorf("line %q width %.1f exceeds max %.1f", line, w, maxWidth)
				}
			}
		}
	}
}

// Joining wrapped lines with single spaces must reconstruct the sanitized
// input for space-separated text.
func TestWrapLinesReconstruction(t *testing.T) {
	d := NewDoc()
	opt := TextOptions{Size: 10}

	inputs := []string{
		"the quick brown fox jumps over the lazy dog",
		"one two three four five six seven eight nine ten eleven twelve",
	}
	for _, in := range inputs {
		for _, maxWidth := range []float64{70, 140, 400} {
			lines := d.wrapLines(in, maxWidth, opt)
			if got := strings.Join(lines, " "); got != in {
				t.Errorf("maxWidth %.0f: reconstruction = %q, want %q", maxWidth, got, in)
			}
		}
	}
}

func TestWrapLinesHardNewlines(t *testing.T) {
	d := NewDoc()
	lines := d.wrapLines("a\nb\nc", 500, TextOptions{Size: 10})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
}

func TestWrapLinesUnbreakableToken(t *testing.T) {
	d := NewDoc()
	opt := TextOptions{Size: 10}
	token := strings.Repeat("W", 80)

	lines := d.wrapLines(token, 50, opt)
	if len(lines) != 1 || lines[0] != token {
		t.Fatalf("unbreakable token must stay whole, got %v", lines)
	}

	// Followed by more words, the token still stays whole on its own line.
	lines = d.wrapLines(token+" tail words", 50, opt)
	if lines[0] != token {
		t.Fatalf("leading token split: %q", lines[0])
	}
	if got := strings.Join(lines[1:], " "); got != "tail words" {
		t.Fatalf("remainder = %q", got)
	}
}

func TestDrawWrappedEmptyInput(t *testing.T) {
	d := NewDoc()
	d.AddPage()
	const startY = 700.0
	if got := d.DrawWrapped("", startY, Margin, TextOptions{}, 200); got != startY {
		t.Errorf("empty input must return startY unchanged, got %f", got)
	}
}

// The wrapper returns the cursor after the last line plus one line height;
// with a single drawn line that is exactly startY.
func TestDrawWrappedReturnOffset(t *testing.T) {
	d := NewDoc()
	d.AddPage()
	opt := TextOptions{Size: 10, LineHeight: 12}

	if got := d.DrawWrapped("one line", 700, Margin, opt, 400); got != 700 {
		t.Errorf("single line return = %f, want 700", got)
	}
	// Two hard lines: startY - 2*lh + lh = startY - lh.
	if got := d.DrawWrapped("one\ntwo", 700, Margin, opt, 400); got != 700-12 {
		t.Errorf("two line return = %f, want %f", got, 700-12.0)
	}
}

// Multi-byte runes (accented text is legal sanitizer output) must wrap on
// the word boundary without mixing byte and rune offsets.
func TestWrapLinesAccentedText(t *testing.T) {
	d := NewDoc()
	opt := TextOptions{Size: 10}

	word := strings.Repeat("é", 10)
	text := word + " z"
	// Wide enough for the accented word plus the space, not the whole line.
	maxWidth := d.TextWidth(word+" ", opt.Font, opt.size())

	lines := d.wrapLines(text, maxWidth, opt)
	if len(lines) != 2 {
		t.Fatalf("lines = %q, want 2 lines", lines)
	}
	if lines[0] != word {
		t.Errorf("first line = %q, want the accented word intact", lines[0])
	}
	if lines[1] != "z" {
		t.Errorf("second line = %q, want %q", lines[1], "z")
	}

	for _, in := range []string{
		"Crème brûlée with açaí — 12 €",
		strings.Repeat("ü", 40),
		"Größenänderung der Straßenbeleuchtung in München",
	} {
		for _, w := range []float64{40, 90, 200} {
			for _, line := range d.wrapLines(in, w, opt) {
				if !strings.Contains(line, " ") {
					continue
				}
				if got := d.TextWidth(line, opt.Font, opt.size()); got > w {
					t.Errorf("line %q width %.1f exceeds max %.1f", line, got, w)
				}
			}
		}
	}
}
