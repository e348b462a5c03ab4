package pdf

import (
	"time"

	"github.com/shopspring/decimal"
)

// The render-facing data model. Everything here is transient and
// request-scoped: the store maps persisted records into these shapes, the
// renderer consumes them, and nothing survives past the byte buffer.

// Party is the counterparty on a document (customer or vendor).
type Party struct {
	Name    string // required; rendering fails without it
	Address string // optional, newline-delimited
	Email   string
	Phone   string
}

// LineItem is one row of the item table.
type LineItem struct {
	// Name is the bold single-line product name above the description.
	// Empty when the item has no linked product.
	Name        string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     *decimal.Decimal // percent, nil treated as 0
}

// EffectiveTaxRate treats a nil tax rate as zero.
func (li LineItem) EffectiveTaxRate() decimal.Decimal {
	if li.TaxRate == nil {
		return decimal.Zero
	}
	return *li.TaxRate
}

// Total derives the displayed line total: quantity x unit price x (1 + tax/100).
func (li LineItem) Total() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(li.EffectiveTaxRate().Div(decimal.NewFromInt(100)))
	return li.Quantity.Mul(li.UnitPrice).Mul(factor)
}

// DocumentRecord is the universal resolved shape the section renderers
// consume, regardless of document kind.
type DocumentRecord struct {
	Number        string
	IssueDate     time.Time
	SecondaryDate *time.Time // due / valid-until / expected, per kind
	Currency      string

	Party    Party
	Delivery *Party // purchase order drop-ship block, usually nil

	Items []LineItem

	// Stored totals, displayed as-is. The renderer never recomputes these.
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal

	Notes string
	Terms string
}

// CompanyProfile is the issuer identity block. A render cannot proceed
// without one.
type CompanyProfile struct {
	Name         string // required
	Address      string // optional, newline-delimited
	Phone        string
	Email        string
	LogoURL      string
	PaymentTerms string
	BankDetails  string
}

// LogoAsset is a decoded raster logo handed to the renderer by the asset
// resolver. A nil asset means the document renders without a logo.
type LogoAsset struct {
	Data   []byte
	Format string // "PNG" or "JPG"
}
