package pdf

import (
	"bytes"
	"testing"
)

func TestDrawLineAdvancesCursor(t *testing.T) {
	d := NewDoc()
	d.AddPage()

	got := d.DrawLine("hello", 700, Margin, TextOptions{LineHeight: 20})
	if got != 680 {
		t.Errorf("DrawLine returned %f, want 680", got)
	}

	// Default line height applies when unset.
	got = d.DrawLine("hello", 700, Margin, TextOptions{})
	if got != 700-DefaultLineHeight {
		t.Errorf("DrawLine returned %f, want %f", got, 700-DefaultLineHeight)
	}
}

// The transparent sentinel suppresses ink but still advances the cursor.
func TestDrawLineTransparentAdvances(t *testing.T) {
	visible := NewDoc()
	visible.AddPage()
	visible.DrawLine("measured text", 700, Margin, TextOptions{})
	visibleOut, err := visible.Output()
	if err != nil {
		t.Fatal(err)
	}

	hidden := NewDoc()
	hidden.AddPage()
	got := hidden.DrawLine("measured text", 700, Margin, TextOptions{Color: Transparent})
	if got != 700-DefaultLineHeight {
		t.Errorf("transparent draw returned %f, want %f", got, 700-DefaultLineHeight)
	}
	hiddenOut, err := hidden.Output()
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(visibleOut, hiddenOut) {
		t.Error("transparent draw should not place ink")
	}
}

func TestDrawLineAlignmentFallsBackToLeft(t *testing.T) {
	d := NewDoc()
	d.AddPage()
	// Right alignment without MaxWidth has no width to offset against; the call
	// must not shift x (and must not error).
	got := d.DrawLine("x", 700, Margin, TextOptions{Align: AlignRight})
	if got != 700-DefaultLineHeight {
		t.Errorf("returned %f", got)
	}
	if err := d.Err(); err != nil {
		t.Fatalf("draw error: %v", err)
	}
}

func TestTextWidth(t *testing.T) {
	d := NewDoc()

	short := d.TextWidth("ab", FontRegular, 10)
	long := d.TextWidth("abcdef", FontRegular, 10)
	if short <= 0 || long <= short {
		t.Errorf("widths not increasing: %f %f", short, long)
	}

	big := d.TextWidth("ab", FontRegular, 20)
	if big <= short {
		t.Errorf("larger size must be wider: %f <= %f", big, short)
	}

	bold := d.TextWidth("abcdef", FontBold, 10)
	if bold <= 0 {
		t.Errorf("bold width = %f", bold)
	}
}

func TestOutputIsPDF(t *testing.T) {
	d := NewDoc()
	d.AddPage()
	d.DrawLine("content", 700, Margin, TextOptions{})
	out, err := d.Output()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not start with PDF header")
	}
}
