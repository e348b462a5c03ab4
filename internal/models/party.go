package models

import (
	"time"

	"gorm.io/gorm"
)

// Client represents a customer in the billing system.
// Implements the Ownable interface for ownership-based authorization.
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// UserID is the owner of this client (for multi-tenant isolation)
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	// Client information
	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255" json:"email,omitempty"`
	Phone string `gorm:"size:50" json:"phone,omitempty"`

	// Address
	Address    string `gorm:"size:500" json:"address,omitempty"`
	City       string `gorm:"size:100" json:"city,omitempty"`
	PostalCode string `gorm:"size:20" json:"postal_code,omitempty"`
	Country    string `gorm:"size:100" json:"country,omitempty"`
}

// GetUserID implements the Ownable interface for authorization.
func (c *Client) GetUserID() uint {
	return c.UserID
}

// FullAddress returns the formatted full address.
func (c *Client) FullAddress() string {
	return joinAddress(c.Address, c.PostalCode, c.City, c.Country)
}

// Vendor represents a supplier that purchase orders are issued to.
type Vendor struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255" json:"email,omitempty"`
	Phone string `gorm:"size:50" json:"phone,omitempty"`

	Address    string `gorm:"size:500" json:"address,omitempty"`
	City       string `gorm:"size:100" json:"city,omitempty"`
	PostalCode string `gorm:"size:20" json:"postal_code,omitempty"`
	Country    string `gorm:"size:100" json:"country,omitempty"`
}

// GetUserID implements the Ownable interface for authorization.
func (v *Vendor) GetUserID() uint {
	return v.UserID
}

// FullAddress returns the formatted full address.
func (v *Vendor) FullAddress() string {
	return joinAddress(v.Address, v.PostalCode, v.City, v.Country)
}

// joinAddress builds a newline-delimited postal address, skipping empty parts.
func joinAddress(street, postalCode, city, country string) string {
	addr := street
	if postalCode != "" || city != "" {
		if addr != "" {
			addr += "\n"
		}
		addr += postalCode
		if postalCode != "" && city != "" {
			addr += " "
		}
		addr += city
	}
	if country != "" {
		if addr != "" {
			addr += "\n"
		}
		addr += country
	}
	return addr
}
