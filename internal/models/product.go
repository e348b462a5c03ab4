package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a reusable catalog entry that line items can reference.
type Product struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// UserID is the owner of this product (for multi-tenant isolation)
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"size:500" json:"description,omitempty"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TaxRate     decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"tax_rate"` // percent
	IsActive    bool            `gorm:"default:true" json:"is_active"`
}

// GetUserID implements the Ownable interface for authorization.
func (p *Product) GetUserID() uint {
	return p.UserID
}

// PriceWithTax returns the unit price inflated by the tax rate percentage.
func (p *Product) PriceWithTax() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(p.TaxRate.Div(decimal.NewFromInt(100)))
	return p.UnitPrice.Mul(factor)
}
