package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ledgerline/go-billing/internal/auth"
	"github.com/ledgerline/go-billing/internal/httpx"
	"github.com/ledgerline/go-billing/internal/store"
)

// DocumentHandler serves the JSON collection endpoints.
type DocumentHandler struct {
	store *store.Store
	log   *zap.Logger
}

func NewDocumentHandler(s *store.Store, log *zap.Logger) *DocumentHandler {
	return &DocumentHandler{store: s, log: log}
}

func (h *DocumentHandler) userID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}
	return userID, ok
}

func (h *DocumentHandler) list(w http.ResponseWriter, r *http.Request, what string, fetch func(uint) (any, error)) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	items, err := fetch(userID)
	if err != nil {
		h.log.Error("listing failed", zap.String("collection", what), zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "list_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items})
}

// ListInvoices handles GET /invoices.
func (h *DocumentHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "invoices", func(uid uint) (any, error) {
		return h.store.ListInvoices(r.Context(), uid)
	})
}

// ListQuotations handles GET /quotations.
func (h *DocumentHandler) ListQuotations(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "quotations", func(uid uint) (any, error) {
		return h.store.ListQuotations(r.Context(), uid)
	})
}

// ListPurchaseOrders handles GET /purchase-orders.
func (h *DocumentHandler) ListPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "purchase_orders", func(uid uint) (any, error) {
		return h.store.ListPurchaseOrders(r.Context(), uid)
	})
}

// ListDeliveryNotes handles GET /delivery-notes.
func (h *DocumentHandler) ListDeliveryNotes(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "delivery_notes", func(uid uint) (any, error) {
		return h.store.ListDeliveryNotes(r.Context(), uid)
	})
}
