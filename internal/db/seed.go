package db

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ledgerline/go-billing/internal/models"
)

// Seed populates a development database with one user, a company profile,
// and a document of each kind. It is idempotent: if the demo user already
// exists nothing is written.
func Seed(db *gorm.DB, log *zap.Logger) error {
	var existing models.User
	if err := db.Where("email = ?", "demo@example.com").First(&existing).Error; err == nil {
		log.Info("seed skipped, demo user already present")
		return nil
	}

	user := models.User{Email: "demo@example.com", Name: "Demo User"}
	if err := user.SetPassword("demo1234"); err != nil {
		return err
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	company := models.CompanySettings{
		UserID:       user.ID,
		Name:         "Acme Consulting LLC",
		Email:        "billing@acme.example",
		Phone:        "+1 555 010 3344",
		Address:      "1 Infinite Loop",
		City:         "Springfield",
		PostalCode:   "94000",
		Country:      "USA",
		Currency:     "USD",
		PaymentTerms: "Net 30. Late payments accrue 1.5% monthly interest.",
		BankDetails:  "First National Bank\nIBAN US00 1234 5678 9012\nBIC FNBUS33",
	}
	if err := db.Create(&company).Error; err != nil {
		return err
	}

	client := models.Client{
		UserID:     user.ID,
		Name:       "Globex Corporation",
		Email:      "accounts@globex.example",
		Phone:      "+1 555 020 7788",
		Address:    "742 Evergreen Terrace",
		City:       "Shelbyville",
		PostalCode: "94100",
		Country:    "USA",
	}
	vendor := models.Vendor{
		UserID:     user.ID,
		Name:       "Initech Supplies",
		Email:      "orders@initech.example",
		Address:    "4120 Freidrich Lane",
		City:       "Austin",
		PostalCode: "78744",
		Country:    "USA",
	}
	if err := db.Create(&client).Error; err != nil {
		return err
	}
	if err := db.Create(&vendor).Error; err != nil {
		return err
	}

	consulting := models.Product{
		UserID:      user.ID,
		Name:        "Consulting",
		Description: "Senior engineering consulting, billed hourly",
		UnitPrice:   decimal.NewFromInt(150),
		TaxRate:     decimal.NewFromInt(20),
		IsActive:    true,
	}
	hardware := models.Product{
		UserID:      user.ID,
		Name:        "Workstation",
		Description: "Developer workstation, assembled and configured",
		UnitPrice:   decimal.NewFromFloat(1899.99),
		TaxRate:     decimal.NewFromInt(20),
		IsActive:    true,
	}
	if err := db.Create(&consulting).Error; err != nil {
		return err
	}
	if err := db.Create(&hardware).Error; err != nil {
		return err
	}

	tax20 := decimal.NewFromInt(20)
	now := time.Now().Truncate(24 * time.Hour)
	due := now.AddDate(0, 1, 0)

	invoice := models.Invoice{
		UserID:      user.ID,
		Number:      "INV-2026-0001",
		ClientID:    client.ID,
		IssueDate:   now,
		DueDate:     &due,
		Status:      models.DocumentStatusFinal,
		Currency:    "USD",
		Subtotal:    decimal.NewFromInt(1200),
		TaxAmount:   decimal.NewFromInt(240),
		TotalAmount: decimal.NewFromInt(1440),
		Notes:       "Thank you for your business.",
		Terms:       "Payment due within 30 days of the issue date.",
		Items: []models.DocumentItem{
			{ProductID: &consulting.ID, Description: "API integration work, June",
				Quantity: decimal.NewFromInt(8), UnitPrice: decimal.NewFromInt(150), TaxRate: &tax20, Position: 1},
		},
	}
	quotation := models.Quotation{
		UserID:      user.ID,
		Number:      "QUO-2026-0001",
		ClientID:    client.ID,
		IssueDate:   now,
		ValidUntil:  &due,
		Status:      models.DocumentStatusDraft,
		Currency:    "USD",
		Subtotal:    decimal.NewFromFloat(1899.99),
		TaxAmount:   decimal.NewFromFloat(380.00),
		TotalAmount: decimal.NewFromFloat(2279.99),
		Items: []models.DocumentItem{
			{ProductID: &hardware.ID, Description: "Workstation for new hire",
				Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(1899.99), TaxRate: &tax20, Position: 1},
		},
	}
	order := models.PurchaseOrder{
		UserID:           user.ID,
		Number:           "PO-2026-0001",
		VendorID:         vendor.ID,
		DeliveryClientID: &client.ID,
		IssueDate:        now,
		ExpectedDate:     &due,
		Status:           models.DocumentStatusFinal,
		Currency:         "USD",
		Subtotal:         decimal.NewFromInt(400),
		TaxAmount:        decimal.NewFromInt(80),
		TotalAmount:      decimal.NewFromInt(480),
		Items: []models.DocumentItem{
			{Description: "Ergonomic chairs", Quantity: decimal.NewFromInt(2),
				UnitPrice: decimal.NewFromInt(200), TaxRate: &tax20, Position: 1},
		},
	}
	note := models.DeliveryNote{
		UserID:    user.ID,
		Number:    "DN-2026-0001",
		ClientID:  client.ID,
		IssueDate: now,
		Currency:  "USD",
		Notes:     "Deliver to the loading dock before noon.",
		Items: []models.DocumentItem{
			{ProductID: &hardware.ID, Description: "Workstation, serial WS-4411",
				Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(1899.99), Position: 1},
		},
	}

	for _, doc := range []any{&invoice, &quotation, &order, &note} {
		if err := db.Create(doc).Error; err != nil {
			return err
		}
	}

	log.Info("seeded development data", zap.String("user", user.Email))
	return nil
}
