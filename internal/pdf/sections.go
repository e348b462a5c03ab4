package pdf

import (
	"fmt"
	"strings"
)

// Layout constants for the five-phase section structure, in points.
const (
	logoSize     = 64.0
	headerFloor  = PageHeight - 170 // minimum header depth before the rule
	contentWidth = PageWidth - 2*Margin
)

var colorBoxFill = Color{235, 240, 247}

// renderer assembles one document. It owns nothing beyond the render call:
// the flow, surface, and record all die with it.
type renderer struct {
	doc  *Doc
	flow *Flow
	spec kindSpec
	rec  *DocumentRecord
	co   *CompanyProfile
	logo *LogoAsset
}

// renderDocument runs the five phases in fixed order over a fresh surface
// and serializes the result. It is deterministic: all I/O (record fetch,
// logo resolution) happens before this call.
func renderDocument(kind Kind, rec *DocumentRecord, co *CompanyProfile, logo *LogoAsset) ([]byte, error) {
	doc := NewDoc()
	if err := renderInto(doc, kind, rec, co, logo); err != nil {
		return nil, err
	}
	return doc.Output()
}

// renderInto draws the document onto an existing surface.
func renderInto(doc *Doc, kind Kind, rec *DocumentRecord, co *CompanyProfile, logo *LogoAsset) error {
	if strings.TrimSpace(rec.Party.Name) == "" {
		return fmt.Errorf("%w: party has no name", ErrIncompleteData)
	}

	r := &renderer{
		doc:  doc,
		flow: NewFlow(doc),
		spec: kind.spec(),
		rec:  rec,
		co:   co,
		logo: logo,
	}

	r.header()
	r.partyBlock()
	r.itemTable()
	if r.spec.ShowTotals {
		r.totals()
	}
	r.footer()

	return doc.Err()
}

// header draws the branding block: logo (when resolved), company identity
// on the left, document title/number/dates on the right, and a rule whose
// position is the lower of the content bottom and a fixed minimum depth.
func (r *renderer) header() {
	top := r.flow.Y()

	// Company identity, left. Starts at the top margin whether or not a
	// logo was resolved; no space is reserved for an absent logo.
	leftY := r.doc.DrawLine(r.co.Name, top-12, Margin, TextOptions{
		Font: FontBold, Size: 14, LineHeight: 18,
	})
	if r.co.Address != "" {
		leftY = r.doc.DrawWrapped(r.co.Address, leftY, Margin, TextOptions{
			Size: 9, LineHeight: 12, Color: ColorMuted,
		}, 240) - 12
	}
	if r.co.Phone != "" {
		leftY = r.doc.DrawLine(r.co.Phone, leftY, Margin, TextOptions{Size: 9, LineHeight: 12, Color: ColorMuted})
	}
	if r.co.Email != "" {
		leftY = r.doc.DrawLine(r.co.Email, leftY, Margin, TextOptions{Size: 9, LineHeight: 12, Color: ColorMuted})
	}

	// Title block, right. Sits below the logo when one is present.
	rightY := top - 12
	if r.logo != nil {
		r.doc.DrawImage(r.logo.Data, r.logo.Format, PageWidth-Margin-logoSize, top, logoSize, logoSize)
		rightY = top - logoSize - 16
	}
	rightY = r.doc.DrawLine(r.spec.Title, rightY, Margin, TextOptions{
		Font: FontBold, Size: 18, LineHeight: 24, Color: ColorAccent,
		Align: AlignRight, MaxWidth: contentWidth,
	})
	rightY = r.doc.DrawLine("No. "+r.rec.Number, rightY, Margin, TextOptions{
		Size: 10, Align: AlignRight, MaxWidth: contentWidth,
	})
	rightY = r.doc.DrawLine("Date: "+FormatDate(r.rec.IssueDate), rightY, Margin, TextOptions{
		Size: 10, Align: AlignRight, MaxWidth: contentWidth,
	})
	if r.rec.SecondaryDate != nil && r.spec.SecondaryLabel != "" {
		rightY = r.doc.DrawLine(r.spec.SecondaryLabel+": "+FormatDate(*r.rec.SecondaryDate), rightY, Margin, TextOptions{
			Size: 10, Align: AlignRight, MaxWidth: contentWidth,
		})
	}

	ruleY := min(leftY, rightY, headerFloor)
	r.doc.Rule(Margin, PageWidth-Margin, ruleY, ColorRule, 1)
	r.flow.SetY(ruleY - 28)
}

// partyBlock renders the counterparty. Absent optional fields contribute
// zero vertical space. Purchase orders may carry a second drop-ship block
// on the right half.
func (r *renderer) partyBlock() {
	bottom := r.drawParty(r.spec.PartyLabel, &r.rec.Party, Margin)
	if r.spec.DeliveryBlock && r.rec.Delivery != nil {
		dy := r.drawParty("Deliver To", r.rec.Delivery, PageWidth/2)
		bottom = min(bottom, dy)
	}
	r.flow.SetY(bottom - 14)
}

func (r *renderer) drawParty(label string, p *Party, x float64) float64 {
	y := r.flow.Y()
	y = r.doc.DrawLine(label, y, x, TextOptions{Font: FontBold, Size: 9, Color: ColorMuted, LineHeight: 14})
	y = r.doc.DrawLine(p.Name, y, x, TextOptions{Font: FontBold, Size: 11, LineHeight: 15})
	if p.Address != "" {
		y = r.doc.DrawWrapped(p.Address, y, x, TextOptions{Size: 10, LineHeight: 13}, 230) - 13
	}
	if p.Email != "" {
		y = r.doc.DrawLine(p.Email, y, x, TextOptions{Size: 10, LineHeight: 13})
	}
	if p.Phone != "" {
		y = r.doc.DrawLine(p.Phone, y, x, TextOptions{Size: 10, LineHeight: 13})
	}
	return y
}

// column geometry derived from the fractional width weights.
type colGeom struct {
	x, w float64
}

func (r *renderer) columnGeometry() []colGeom {
	geom := make([]colGeom, len(r.spec.Columns))
	x := Margin
	for i, c := range r.spec.Columns {
		w := contentWidth * c.Weight
		geom[i] = colGeom{x: x, w: w}
		x += w
	}
	return geom
}

// tableHeader draws the bold column header row at the cursor and advances
// past it. Re-invoked on every page break inside the table so each page of
// a multi-page table is self-describing.
func (r *renderer) tableHeader() {
	y := r.flow.Y()
	geom := r.columnGeometry()
	for i, c := range r.spec.Columns {
		g := geom[i]
		r.doc.DrawLine(c.Label, y, g.x, TextOptions{
			Font: FontBold, Size: 10, Align: c.Align, MaxWidth: g.w - 8,
		})
	}
	r.doc.Rule(Margin, PageWidth-Margin, y-6, ColorRule, 0.75)
	r.flow.SetY(y - 22)
}

// itemTable draws the line items with manual pagination: when the cursor
// would cross the bottom reserve before a row, a new page is allocated and
// the column header re-emitted before data resumes.
func (r *renderer) itemTable() {
	geom := r.columnGeometry()
	r.tableHeader()

	for _, item := range r.rec.Items {
		r.flow.EnsureRoom(TableBottomReserve, r.tableHeader)

		rowTop := r.flow.Y()
		descY := rowTop
		if item.Name != "" {
			// Product name: bold, single line, never wrapped.
			r.doc.DrawLine(item.Name, rowTop, geom[0].x, TextOptions{Font: FontBold, Size: 10})
			descY = rowTop - 14
		}

		bottom := descY
		if item.Description != "" {
			bottom = r.doc.DrawWrapped(item.Description, descY, geom[0].x, TextOptions{
				Size: 9, LineHeight: 12, Color: ColorMuted,
			}, geom[0].w-8) - 12
		} else if item.Name != "" {
			bottom = rowTop - 14
		}

		// Numeric cells align to the top of the row (the name baseline).
		cells := r.rowCells(item)
		for i, cell := range cells {
			g := geom[i+1]
			r.doc.DrawLine(cell, rowTop, g.x, TextOptions{
				Size: 10, Align: r.spec.Columns[i+1].Align, MaxWidth: g.w - 8,
			})
		}

		r.doc.Rule(Margin, PageWidth-Margin, bottom-4, ColorRule, 0.5)
		r.flow.SetY(bottom - 18)
	}
}

// rowCells formats the numeric columns for one item, matching the kind's
// column set minus the leading description column.
func (r *renderer) rowCells(item LineItem) []string {
	qty := item.Quantity.String()
	if len(r.spec.Columns) == 2 {
		// Delivery note: description and quantity only.
		return []string{qty}
	}
	return []string{
		qty,
		FormatCurrency(item.UnitPrice, r.rec.Currency),
		item.EffectiveTaxRate().StringFixed(0) + "%",
		FormatCurrency(item.Total(), r.rec.Currency),
	}
}

// totals draws the stored monetary summary anchored to the right half of
// the page. Zero tax and discount lines are omitted entirely.
func (r *renderer) totals() {
	labelX := PageWidth / 2
	valueW := PageWidth - Margin - labelX
	y := r.flow.Y()

	row := func(label, value string, opt TextOptions) {
		r.doc.DrawLine(label, y, labelX, opt)
		valueOpt := opt
		valueOpt.Align = AlignRight
		valueOpt.MaxWidth = valueW
		r.doc.DrawLine(value, y, labelX, valueOpt)
		y -= opt.lineHeight()
	}

	row("Subtotal:", FormatCurrency(r.rec.Subtotal, r.rec.Currency), TextOptions{Size: 10, LineHeight: 16})
	if r.rec.TaxAmount.IsPositive() {
		row("Tax:", FormatCurrency(r.rec.TaxAmount, r.rec.Currency), TextOptions{Size: 10, LineHeight: 16})
	}
	if r.rec.DiscountAmount.IsPositive() {
		row("Discount:", "-"+FormatCurrency(r.rec.DiscountAmount, r.rec.Currency), TextOptions{Size: 10, LineHeight: 16})
	}

	r.doc.Rule(labelX, PageWidth-Margin, y+6, ColorRule, 0.75)
	y -= 6
	row("Total Amount:", FormatCurrency(r.rec.TotalAmount, r.rec.Currency), TextOptions{
		Font: FontBold, Size: 12, LineHeight: 18, Color: ColorAccent,
	})

	r.flow.SetY(y - 14)
}

// footer draws the closing blocks: notes, terms, kind-specific extras, and
// the centered contact line near the page bottom. When the cursor is out of
// room the footer overflows to a new page, except on a single-page document
// where it compresses in place instead.
func (r *renderer) footer() {
	if r.flow.AtBottom(FooterMinHeight) && r.flow.PageCount() > 1 {
		r.flow.NewPage()
	}

	y := r.flow.Y()
	r.doc.Rule(Margin, PageWidth-Margin, y, ColorRule, 1)
	y -= 18

	paragraph := func(label, text string) {
		if text == "" {
			return
		}
		y = r.doc.DrawLine(label, y, Margin, TextOptions{Font: FontBold, Size: 10, LineHeight: 14})
		y = r.doc.DrawWrapped(text, y, Margin, TextOptions{Size: 9, LineHeight: 12, Color: ColorMuted}, contentWidth) - 12
		y -= 6
	}

	paragraph("Notes", r.rec.Notes)
	paragraph("Terms & Conditions", r.rec.Terms)

	if r.spec.BankDetailsBox {
		paragraph("Payment Terms", r.co.PaymentTerms)
		y = r.bankDetailsBox(y)
	}
	if r.spec.ConfirmationBox {
		y = r.confirmationBox(y)
	}

	r.contactLine(y)
}

// bankDetailsBox highlights the bank details on a filled background. The
// background must be painted before the text, so the text is first laid out
// with the transparent sentinel purely to measure its height.
func (r *renderer) bankDetailsBox(y float64) float64 {
	if r.co.BankDetails == "" {
		return y
	}
	boxW := contentWidth / 2
	textOpt := TextOptions{Size: 9, LineHeight: 12}

	measureOpt := textOpt
	measureOpt.Color = Transparent
	textBottom := r.doc.DrawWrapped(r.co.BankDetails, y-16, Margin+8, measureOpt, boxW-16) - 12

	boxTop := y + 10
	r.doc.FillRect(Margin, boxTop, boxW, boxTop-(textBottom-8), colorBoxFill)

	r.doc.DrawLine("Bank Details", y, Margin+8, TextOptions{Font: FontBold, Size: 9, LineHeight: 14})
	r.doc.DrawWrapped(r.co.BankDetails, y-16, Margin+8, textOpt, boxW-16)
	return textBottom - 20
}

// confirmationBox is the delivery-note sign-off block with blank signature
// and date lines.
func (r *renderer) confirmationBox(y float64) float64 {
	y = r.doc.DrawLine("Received the goods listed above in good condition.", y, Margin, TextOptions{Size: 9, LineHeight: 26})
	y = r.doc.DrawLine("Signature: _______________________", y, Margin, TextOptions{Size: 10, LineHeight: 22})
	y = r.doc.DrawLine("Date: _______________________", y, Margin, TextOptions{Size: 10, LineHeight: 22})
	return y
}

// contactLine centers the closing contact sentence near the page bottom,
// pushing to a fresh page when no space remains.
func (r *renderer) contactLine(y float64) {
	if y < Margin {
		r.flow.NewPage()
	}
	contact := r.co.Email
	if contact == "" {
		contact = r.co.Phone
	}
	sentence := "For any questions concerning this document, please contact " + r.co.Name
	if contact != "" {
		sentence += " at " + contact
	}
	r.doc.DrawLine(sentence, 42, Margin, TextOptions{
		Size: 8, Color: ColorMuted, Align: AlignCenter, MaxWidth: contentWidth,
	})
}
