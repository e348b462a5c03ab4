package pdf

// Kind selects which of the four document variants to render. The five-phase
// structure is identical across kinds; only the column set, labels, and a
// few optional footer blocks differ.
type Kind int

const (
	KindInvoice Kind = iota
	KindQuotation
	KindPurchaseOrder
	KindDeliveryNote
)

func (k Kind) String() string {
	switch k {
	case KindInvoice:
		return "invoice"
	case KindQuotation:
		return "quotation"
	case KindPurchaseOrder:
		return "purchase-order"
	case KindDeliveryNote:
		return "delivery-note"
	}
	return "unknown"
}

// Column describes one item-table column: its header label, its share of
// the usable page width, and the alignment of its cells.
type Column struct {
	Label  string
	Weight float64
	Align  Align
}

// kindSpec carries everything that varies between document kinds.
type kindSpec struct {
	Title          string
	FilePrefix     string
	PartyLabel     string // heading over the counterparty block
	SecondaryLabel string // label for the secondary date, empty when absent
	Columns        []Column

	ShowTotals      bool // totals block (everything except the delivery note)
	BankDetailsBox  bool // quotation: highlighted bank details with background
	ConfirmationBox bool // delivery note: signature/date confirmation block
	DeliveryBlock   bool // purchase order: optional drop-ship address block
}

var amountColumns = []Column{
	{Label: "Description", Weight: 0.40, Align: AlignLeft},
	{Label: "Qty", Weight: 0.15, Align: AlignRight},
	{Label: "Unit Price", Weight: 0.15, Align: AlignRight},
	{Label: "Tax %", Weight: 0.15, Align: AlignRight},
	{Label: "Total", Weight: 0.15, Align: AlignRight},
}

var kindSpecs = map[Kind]kindSpec{
	KindInvoice: {
		Title:          "INVOICE",
		FilePrefix:     "invoice",
		PartyLabel:     "Bill To",
		SecondaryLabel: "Due Date",
		Columns:        amountColumns,
		ShowTotals:     true,
	},
	KindQuotation: {
		Title:          "QUOTATION",
		FilePrefix:     "quotation",
		PartyLabel:     "Quotation For",
		SecondaryLabel: "Valid Until",
		Columns:        amountColumns,
		ShowTotals:     true,
		BankDetailsBox: true,
	},
	KindPurchaseOrder: {
		Title:          "PURCHASE ORDER",
		FilePrefix:     "purchase-order",
		PartyLabel:     "Vendor",
		SecondaryLabel: "Expected Delivery",
		Columns:        amountColumns,
		ShowTotals:     true,
		DeliveryBlock:  true,
	},
	KindDeliveryNote: {
		Title:      "DELIVERY NOTE",
		FilePrefix: "delivery-note",
		PartyLabel: "Deliver To",
		Columns: []Column{
			{Label: "Description", Weight: 0.70, Align: AlignLeft},
			{Label: "Qty", Weight: 0.30, Align: AlignRight},
		},
		ConfirmationBox: true,
	},
}

// spec returns the variant table for the kind.
func (k Kind) spec() kindSpec {
	return kindSpecs[k]
}
