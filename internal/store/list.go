package store

import (
	"context"

	"github.com/ledgerline/go-billing/internal/models"
)

// Listing queries behind the JSON collection endpoints. All of them scope
// by user and preload the counterparty so the frontend can show names
// without extra round trips.

func (s *Store) ListInvoices(ctx context.Context, userID uint) ([]models.Invoice, error) {
	var out []models.Invoice
	err := s.db.WithContext(ctx).
		Preload("Client").
		Where("user_id = ?", userID).
		Order("issue_date DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (s *Store) ListQuotations(ctx context.Context, userID uint) ([]models.Quotation, error) {
	var out []models.Quotation
	err := s.db.WithContext(ctx).
		Preload("Client").
		Where("user_id = ?", userID).
		Order("issue_date DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (s *Store) ListPurchaseOrders(ctx context.Context, userID uint) ([]models.PurchaseOrder, error) {
	var out []models.PurchaseOrder
	err := s.db.WithContext(ctx).
		Preload("Vendor").
		Where("user_id = ?", userID).
		Order("issue_date DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (s *Store) ListDeliveryNotes(ctx context.Context, userID uint) ([]models.DeliveryNote, error) {
	var out []models.DeliveryNote
	err := s.db.WithContext(ctx).
		Preload("Client").
		Where("user_id = ?", userID).
		Order("issue_date DESC, id DESC").
		Find(&out).Error
	return out, err
}

// UserByEmail resolves a user for login.
func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
