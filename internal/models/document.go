package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DocumentStatus represents the lifecycle status of a billing document.
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "draft"
	DocumentStatusFinal     DocumentStatus = "final"
	DocumentStatusPaid      DocumentStatus = "paid"
	DocumentStatusCancelled DocumentStatus = "cancelled"
)

// Invoice represents a billing invoice issued to a client.
// Implements the Ownable interface for ownership-based authorization.
type Invoice struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// UserID is the owner of this invoice (for multi-tenant isolation)
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	Number string `gorm:"size:50;uniqueIndex" json:"number"`

	// Client relationship
	ClientID uint    `gorm:"index;not null" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	IssueDate time.Time  `gorm:"not null" json:"issue_date"`
	DueDate   *time.Time `json:"due_date,omitempty"`

	Status   DocumentStatus `gorm:"size:20;default:'draft'" json:"status"`
	Currency string         `gorm:"size:3;default:'USD'" json:"currency"`

	// Stored totals; the renderer displays these as-is and never recomputes them.
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2)" json:"subtotal"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(12,2)" json:"tax_amount"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`
	Terms string `gorm:"type:text" json:"terms,omitempty"`

	Items []DocumentItem `gorm:"polymorphic:Owner" json:"items,omitempty"`
}

// GetUserID implements the Ownable interface for authorization.
func (i *Invoice) GetUserID() uint { return i.UserID }

// CanEdit returns true if the invoice can still be edited.
func (i *Invoice) CanEdit() bool { return i.Status == DocumentStatusDraft }

// Quotation represents a quote/estimate offered to a client.
type Quotation struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	Number string `gorm:"size:50;uniqueIndex" json:"number"`

	ClientID uint    `gorm:"index;not null" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	IssueDate  time.Time  `gorm:"not null" json:"issue_date"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`

	Status   DocumentStatus `gorm:"size:20;default:'draft'" json:"status"`
	Currency string         `gorm:"size:3;default:'USD'" json:"currency"`

	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2)" json:"subtotal"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(12,2)" json:"tax_amount"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`
	Terms string `gorm:"type:text" json:"terms,omitempty"`

	Items []DocumentItem `gorm:"polymorphic:Owner" json:"items,omitempty"`
}

// GetUserID implements the Ownable interface for authorization.
func (q *Quotation) GetUserID() uint { return q.UserID }

// PurchaseOrder represents an order issued to a vendor.
type PurchaseOrder struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	Number string `gorm:"size:50;uniqueIndex" json:"number"`

	// Vendor relationship (the counterparty on a purchase order)
	VendorID uint    `gorm:"index;not null" json:"vendor_id"`
	Vendor   *Vendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`

	// Optional drop-ship delivery client
	DeliveryClientID *uint   `gorm:"index" json:"delivery_client_id,omitempty"`
	DeliveryClient   *Client `gorm:"foreignKey:DeliveryClientID" json:"delivery_client,omitempty"`

	IssueDate    time.Time  `gorm:"not null" json:"issue_date"`
	ExpectedDate *time.Time `json:"expected_date,omitempty"`

	Status   DocumentStatus `gorm:"size:20;default:'draft'" json:"status"`
	Currency string         `gorm:"size:3;default:'USD'" json:"currency"`

	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2)" json:"subtotal"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(12,2)" json:"tax_amount"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`
	Terms string `gorm:"type:text" json:"terms,omitempty"`

	Items []DocumentItem `gorm:"polymorphic:Owner" json:"items,omitempty"`
}

// GetUserID implements the Ownable interface for authorization.
func (p *PurchaseOrder) GetUserID() uint { return p.UserID }

// DeliveryNote accompanies a shipment to a client; it carries no prices.
type DeliveryNote struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	Number string `gorm:"size:50;uniqueIndex" json:"number"`

	ClientID uint    `gorm:"index;not null" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	IssueDate time.Time `gorm:"not null" json:"issue_date"`

	Currency string `gorm:"size:3;default:'USD'" json:"currency"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`

	Items []DocumentItem `gorm:"polymorphic:Owner" json:"items,omitempty"`
}

// GetUserID implements the Ownable interface for authorization.
func (d *DeliveryNote) GetUserID() uint { return d.UserID }

// DocumentItem is a line item attached to any of the four document types
// via gorm's polymorphic association.
type DocumentItem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	OwnerID   uint   `gorm:"index;not null" json:"owner_id"`
	OwnerType string `gorm:"size:30;index;not null" json:"owner_type"`

	// Optional product reference (can be null for custom items)
	ProductID *uint    `gorm:"index" json:"product_id,omitempty"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	Description string           `gorm:"size:500;not null" json:"description"`
	Quantity    decimal.Decimal  `gorm:"type:decimal(10,3);not null;default:1" json:"quantity"`
	UnitPrice   decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TaxRate     *decimal.Decimal `gorm:"type:decimal(5,2)" json:"tax_rate,omitempty"` // percent, nil means 0

	// Position for ordering
	Position int `gorm:"default:0" json:"position"`
}

// EffectiveTaxRate returns the tax rate percentage, treating nil as zero.
func (item *DocumentItem) EffectiveTaxRate() decimal.Decimal {
	if item.TaxRate == nil {
		return decimal.Zero
	}
	return *item.TaxRate
}

// LineTotal calculates quantity x unit price x (1 + tax/100).
// Line totals are always derived at render time, never stored.
func (item *DocumentItem) LineTotal() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(item.EffectiveTaxRate().Div(decimal.NewFromInt(100)))
	return item.Quantity.Mul(item.UnitPrice).Mul(factor)
}
