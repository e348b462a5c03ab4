package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry in PostScript points (A4).
const (
	PageWidth  = 595.28
	PageHeight = 841.89

	Margin            = 50.0
	DefaultFontSize   = 10.0
	DefaultLineHeight = 15.0
)

// Align is the horizontal alignment of a drawn line within its max width.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Color is an RGB ink color.
type Color struct {
	R, G, B int
}

var (
	ColorText   = Color{40, 40, 40}
	ColorMuted  = Color{120, 120, 120}
	ColorAccent = Color{41, 98, 155}
	ColorRule   = Color{200, 200, 200}

	// Transparent is a sentinel: layout is computed and the cursor advances,
	// but no ink is placed. Used to pre-measure blocks whose background must
	// be sized from their content height.
	Transparent = Color{-1, -1, -1}
)

// Font styles for the embedded sans-serif pair.
const (
	FontRegular = ""
	FontBold    = "B"
)

// TextOptions control a single DrawLine call.
type TextOptions struct {
	Font       string  // FontRegular or FontBold
	Size       float64 // zero means DefaultFontSize
	Color      Color   // zero value means ColorText
	LineHeight float64 // zero means DefaultLineHeight
	Align      Align
	MaxWidth   float64 // required for center/right alignment
}

func (o TextOptions) size() float64 {
	if o.Size > 0 {
		return o.Size
	}
	return DefaultFontSize
}

func (o TextOptions) lineHeight() float64 {
	if o.LineHeight > 0 {
		return o.LineHeight
	}
	return DefaultLineHeight
}

func (o TextOptions) color() Color {
	if (o.Color == Color{}) {
		return ColorText
	}
	return o.Color
}

// Doc wraps the underlying PDF surface with a bottom-left coordinate
// convention: Y runs upward from the page bottom and the write cursor
// decreases as content flows down the page.
type Doc struct {
	fpdf      *gofpdf.Fpdf
	translate func(string) string
	images    int
}

// NewDoc creates an empty A4 document with manual pagination. The first
// page is not added; the Flow controller owns page allocation.
func NewDoc() *Doc {
	f := gofpdf.New("P", "pt", "A4", "")
	f.SetAutoPageBreak(false, 0)
	f.SetMargins(0, 0, 0)
	// Fixed creation date keeps renders of the same record byte-identical.
	f.SetCreationDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	f.SetModificationDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	f.SetCatalogSort(true)
	return &Doc{
		fpdf:      f,
		translate: f.UnicodeTranslatorFromDescriptor(""),
	}
}

// AddPage appends a fresh page and makes it current.
func (d *Doc) AddPage() {
	d.fpdf.AddPage()
}

// PageCount returns the number of pages allocated so far.
func (d *Doc) PageCount() int {
	return d.fpdf.PageCount()
}

// TextWidth measures the rendered width of sanitized text.
func (d *Doc) TextWidth(text, font string, size float64) float64 {
	d.fpdf.SetFont("Helvetica", font, size)
	return d.fpdf.GetStringWidth(d.translate(Sanitize(text)))
}

// DrawLine draws one line of text with its baseline at y and returns the
// advanced cursor (y minus one line height). Center/right alignment offsets
// x within MaxWidth using glyph-width metrics; without a MaxWidth the
// alignment silently degrades to left. The Transparent color suppresses the
// draw call but still advances the cursor.
func (d *Doc) DrawLine(text string, y, x float64, opt TextOptions) float64 {
	s := d.translate(Sanitize(text))
	size := opt.size()
	d.fpdf.SetFont("Helvetica", opt.Font, size)

	if opt.Align != AlignLeft && opt.MaxWidth > 0 {
		w := d.fpdf.GetStringWidth(s)
		switch opt.Align {
		case AlignRight:
			x += opt.MaxWidth - w
		case AlignCenter:
			x += (opt.MaxWidth - w) / 2
		}
	}

	if opt.Color != Transparent {
		c := opt.color()
		d.fpdf.SetTextColor(c.R, c.G, c.B)
		d.fpdf.Text(x, PageHeight-y, s)
	}
	return y - opt.lineHeight()
}

// Rule draws a horizontal line across [x1,x2] at height y.
func (d *Doc) Rule(x1, x2, y float64, c Color, width float64) {
	d.fpdf.SetDrawColor(c.R, c.G, c.B)
	d.fpdf.SetLineWidth(width)
	d.fpdf.Line(x1, PageHeight-y, x2, PageHeight-y)
}

// FillRect paints a filled rectangle whose top edge sits at yTop.
func (d *Doc) FillRect(x, yTop, w, h float64, c Color) {
	d.fpdf.SetFillColor(c.R, c.G, c.B)
	d.fpdf.Rect(x, PageHeight-yTop, w, h, "F")
}

// DrawImage embeds raster bytes with the image's top edge at yTop.
// format is "PNG" or "JPG" as sniffed by the asset resolver. Bytes the
// surface cannot decode are skipped: the document renders without the
// image rather than failing outright.
func (d *Doc) DrawImage(data []byte, format string, x, yTop, w, h float64) {
	if d.fpdf.Err() {
		return
	}
	d.images++
	name := fmt.Sprintf("img-%d", d.images)
	opts := gofpdf.ImageOptions{ImageType: format}
	d.fpdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if d.fpdf.Err() {
		d.fpdf.ClearError()
		return
	}
	d.fpdf.ImageOptions(name, x, PageHeight-yTop, w, h, false, opts, 0, "")
}

// Output serializes the document to bytes.
func (d *Doc) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.fpdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize document: %w", err)
	}
	return buf.Bytes(), nil
}

// Err surfaces any deferred drawing error from the underlying surface.
func (d *Doc) Err() error {
	if d.fpdf.Err() {
		return d.fpdf.Error()
	}
	return nil
}
