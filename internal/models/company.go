package models

import (
	"time"

	"gorm.io/gorm"
)

// CompanySettings represents the user's company information printed on documents.
type CompanySettings struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// UserID is the owner of these settings
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	// Company information
	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255" json:"email,omitempty"`
	Phone string `gorm:"size:50" json:"phone,omitempty"`

	// Address
	Address    string `gorm:"size:500" json:"address,omitempty"`
	City       string `gorm:"size:100" json:"city,omitempty"`
	PostalCode string `gorm:"size:20" json:"postal_code,omitempty"`
	Country    string `gorm:"size:100" json:"country,omitempty"`

	// Billing defaults
	Currency     string `gorm:"size:3;default:'USD'" json:"currency"`
	PaymentTerms string `gorm:"size:500" json:"payment_terms,omitempty"`
	BankDetails  string `gorm:"type:text" json:"bank_details,omitempty"`

	// Branding
	LogoURL string `gorm:"size:500" json:"logo_url,omitempty"`
}

// GetUserID implements the Ownable interface.
func (c *CompanySettings) GetUserID() uint {
	return c.UserID
}

// FullAddress returns the formatted multi-line address.
func (c *CompanySettings) FullAddress() string {
	return joinAddress(c.Address, c.PostalCode, c.City, c.Country)
}
