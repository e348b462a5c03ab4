// Package server wires the HTTP routes.
package server

import (
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ledgerline/go-billing/internal/auth"
	"github.com/ledgerline/go-billing/internal/handlers"
	"github.com/ledgerline/go-billing/internal/pdf"
	"github.com/ledgerline/go-billing/internal/store"
)

// New constructs the root http.Handler with all routes and middleware applied.
func New(dbConn *gorm.DB, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	st := store.New(dbConn, log)
	assembler := pdf.NewAssembler(st, pdf.NewAssetResolver(log), log)

	authHandler := handlers.NewAuthHandler(st, log)
	docHandler := handlers.NewDocumentHandler(st, log)
	pdfHandler := handlers.NewPDFHandler(assembler, log)

	mux.HandleFunc("GET /healthz", handlers.Healthz)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("POST /logout", authHandler.Logout)

	protected := func(h http.HandlerFunc) http.Handler {
		return auth.RequireAuth(h)
	}

	mux.Handle("GET /invoices", protected(docHandler.ListInvoices))
	mux.Handle("GET /quotations", protected(docHandler.ListQuotations))
	mux.Handle("GET /purchase-orders", protected(docHandler.ListPurchaseOrders))
	mux.Handle("GET /delivery-notes", protected(docHandler.ListDeliveryNotes))

	mux.Handle("GET /invoices/{id}/pdf", protected(pdfHandler.Download(pdf.KindInvoice)))
	mux.Handle("GET /quotations/{id}/pdf", protected(pdfHandler.Download(pdf.KindQuotation)))
	mux.Handle("GET /purchase-orders/{id}/pdf", protected(pdfHandler.Download(pdf.KindPurchaseOrder)))
	mux.Handle("GET /delivery-notes/{id}/pdf", protected(pdfHandler.Download(pdf.KindDeliveryNote)))

	return auth.Middleware(mux)
}
