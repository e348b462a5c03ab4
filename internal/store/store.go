// Package store is the persistence boundary: it resolves gorm records into
// the transient shapes the document renderer consumes, and backs the JSON
// listing endpoints.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ledgerline/go-billing/internal/models"
	"github.com/ledgerline/go-billing/internal/pdf"
)

// Store wraps the gorm handle. It implements pdf.RecordSource.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// New returns a Store bound to the given database handle.
func New(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}

// orderedItems keeps line items in their authored order regardless of
// insertion order.
func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, id ASC")
}

// Document resolves one document with its party and items for rendering.
// Records belonging to another user are reported as not found rather than
// forbidden, so the endpoint does not leak document existence across tenants.
func (s *Store) Document(ctx context.Context, kind pdf.Kind, userID, id uint) (*pdf.DocumentRecord, error) {
	switch kind {
	case pdf.KindInvoice:
		return s.invoiceRecord(ctx, userID, id)
	case pdf.KindQuotation:
		return s.quotationRecord(ctx, userID, id)
	case pdf.KindPurchaseOrder:
		return s.purchaseOrderRecord(ctx, userID, id)
	case pdf.KindDeliveryNote:
		return s.deliveryNoteRecord(ctx, userID, id)
	default:
		return nil, fmt.Errorf("unknown document kind %d", kind)
	}
}

// CompanyProfile resolves the issuer identity for the user.
func (s *Store) CompanyProfile(ctx context.Context, userID uint) (*pdf.CompanyProfile, error) {
	var cs models.CompanySettings
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&cs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %d has no company settings", pdf.ErrConfigurationMissing, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("load company settings: %w", err)
	}
	return &pdf.CompanyProfile{
		Name:         cs.Name,
		Address:      cs.FullAddress(),
		Phone:        cs.Phone,
		Email:        cs.Email,
		LogoURL:      cs.LogoURL,
		PaymentTerms: cs.PaymentTerms,
		BankDetails:  cs.BankDetails,
	}, nil
}

func (s *Store) invoiceRecord(ctx context.Context, userID, id uint) (*pdf.DocumentRecord, error) {
	var inv models.Invoice
	err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Items", orderedItems).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&inv, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: invoice %d", pdf.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load invoice %d: %w", id, err)
	}
	if inv.Client == nil {
		return nil, fmt.Errorf("%w: invoice %d has no client", pdf.ErrIncompleteData, id)
	}
	return &pdf.DocumentRecord{
		Number:         inv.Number,
		IssueDate:      inv.IssueDate,
		SecondaryDate:  inv.DueDate,
		Currency:       inv.Currency,
		Party:          clientParty(inv.Client),
		Items:          renderItems(inv.Items),
		Subtotal:       inv.Subtotal,
		TaxAmount:      inv.TaxAmount,
		DiscountAmount: inv.DiscountAmount,
		TotalAmount:    inv.TotalAmount,
		Notes:          inv.Notes,
		Terms:          inv.Terms,
	}, nil
}

func (s *Store) quotationRecord(ctx context.Context, userID, id uint) (*pdf.DocumentRecord, error) {
	var q models.Quotation
	err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Items", orderedItems).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: quotation %d", pdf.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load quotation %d: %w", id, err)
	}
	if q.Client == nil {
		return nil, fmt.Errorf("%w: quotation %d has no client", pdf.ErrIncompleteData, id)
	}
	return &pdf.DocumentRecord{
		Number:         q.Number,
		IssueDate:      q.IssueDate,
		SecondaryDate:  q.ValidUntil,
		Currency:       q.Currency,
		Party:          clientParty(q.Client),
		Items:          renderItems(q.Items),
		Subtotal:       q.Subtotal,
		TaxAmount:      q.TaxAmount,
		DiscountAmount: q.DiscountAmount,
		TotalAmount:    q.TotalAmount,
		Notes:          q.Notes,
		Terms:          q.Terms,
	}, nil
}

func (s *Store) purchaseOrderRecord(ctx context.Context, userID, id uint) (*pdf.DocumentRecord, error) {
	var po models.PurchaseOrder
	err := s.db.WithContext(ctx).
		Preload("Vendor").
		Preload("DeliveryClient").
		Preload("Items", orderedItems).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&po, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: purchase order %d", pdf.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load purchase order %d: %w", id, err)
	}
	if po.Vendor == nil {
		return nil, fmt.Errorf("%w: purchase order %d has no vendor", pdf.ErrIncompleteData, id)
	}
	rec := &pdf.DocumentRecord{
		Number:         po.Number,
		IssueDate:      po.IssueDate,
		SecondaryDate:  po.ExpectedDate,
		Currency:       po.Currency,
		Party:          vendorParty(po.Vendor),
		Items:          renderItems(po.Items),
		Subtotal:       po.Subtotal,
		TaxAmount:      po.TaxAmount,
		DiscountAmount: po.DiscountAmount,
		TotalAmount:    po.TotalAmount,
		Notes:          po.Notes,
		Terms:          po.Terms,
	}
	if po.DeliveryClient != nil {
		dp := clientParty(po.DeliveryClient)
		rec.Delivery = &dp
	}
	return rec, nil
}

func (s *Store) deliveryNoteRecord(ctx context.Context, userID, id uint) (*pdf.DocumentRecord, error) {
	var dn models.DeliveryNote
	err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Items", orderedItems).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&dn, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: delivery note %d", pdf.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load delivery note %d: %w", id, err)
	}
	if dn.Client == nil {
		return nil, fmt.Errorf("%w: delivery note %d has no client", pdf.ErrIncompleteData, id)
	}
	return &pdf.DocumentRecord{
		Number:    dn.Number,
		IssueDate: dn.IssueDate,
		Currency:  dn.Currency,
		Party:     clientParty(dn.Client),
		Items:     renderItems(dn.Items),
		Notes:     dn.Notes,
	}, nil
}

func clientParty(c *models.Client) pdf.Party {
	return pdf.Party{
		Name:    c.Name,
		Address: c.FullAddress(),
		Email:   c.Email,
		Phone:   c.Phone,
	}
}

func vendorParty(v *models.Vendor) pdf.Party {
	return pdf.Party{
		Name:    v.Name,
		Address: v.FullAddress(),
		Email:   v.Email,
		Phone:   v.Phone,
	}
}

func renderItems(items []models.DocumentItem) []pdf.LineItem {
	out := make([]pdf.LineItem, 0, len(items))
	for _, it := range items {
		li := pdf.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TaxRate:     it.TaxRate,
		}
		if it.Product != nil {
			li.Name = it.Product.Name
		}
		out = append(out, li)
	}
	return out
}
