package pdf

// Vertical reserves in points, measured from the page bottom.
const (
	// TableBottomReserve is the threshold below which the item table breaks
	// to a new page rather than starting another row.
	TableBottomReserve = 200.0

	// FooterMinHeight is the room the footer block wants before it either
	// squeezes (first page) or overflows to a fresh page.
	FooterMinHeight = 90.0
)

// Flow owns the current page and the vertical write cursor. Section
// renderers never touch page geometry directly; they draw at the cursor and
// ask the flow for room. One Flow instance serves exactly one render call.
type Flow struct {
	doc *Doc
	y   float64
}

// NewFlow allocates the first page and places the cursor at the top margin.
func NewFlow(doc *Doc) *Flow {
	f := &Flow{doc: doc}
	f.NewPage()
	return f
}

// Y returns the current cursor position (distance from the page bottom).
func (f *Flow) Y() float64 { return f.y }

// SetY moves the cursor to an absolute position on the current page.
func (f *Flow) SetY(y float64) { f.y = y }

// Advance moves the cursor down the page by dy.
func (f *Flow) Advance(dy float64) { f.y -= dy }

// AtBottom reports whether the cursor has crossed below the given reserve.
func (f *Flow) AtBottom(reserve float64) bool { return f.y < reserve }

// NewPage allocates a page of the fixed document size and resets the cursor
// to the top margin.
func (f *Flow) NewPage() {
	f.doc.AddPage()
	f.y = PageHeight - Margin
}

// EnsureRoom breaks to a new page when the cursor sits below reserve,
// invoking replay afterwards so tabular sections can re-emit their column
// header before data resumes. It reports whether a break happened.
func (f *Flow) EnsureRoom(reserve float64, replay func()) bool {
	if !f.AtBottom(reserve) {
		return false
	}
	f.NewPage()
	if replay != nil {
		replay()
	}
	return true
}

// PageCount returns the number of pages allocated so far.
func (f *Flow) PageCount() int { return f.doc.PageCount() }
