package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/ledgerline/go-billing/internal/auth"
	"github.com/ledgerline/go-billing/internal/pdf"
)

// Generator renders one document to bytes. Satisfied by *pdf.Assembler.
type Generator interface {
	Generate(ctx context.Context, kind pdf.Kind, userID, id uint) ([]byte, string, error)
}

// PDFHandler serves the document download endpoints.
type PDFHandler struct {
	gen Generator
	log *zap.Logger
}

func NewPDFHandler(gen Generator, log *zap.Logger) *PDFHandler {
	return &PDFHandler{gen: gen, log: log}
}

// Download handles GET /{doctype}/{id}/pdf for the given kind.
func (h *PDFHandler) Download(kind pdf.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		id64, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
		if err != nil {
			http.Error(w, "invalid document id", http.StatusBadRequest)
			return
		}

		data, filename, err := h.gen.Generate(r.Context(), kind, userID, uint(id64))
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, pdf.ErrNotFound) {
				status = http.StatusNotFound
			}
			// Plain-text reason; never a partial document body.
			http.Error(w, err.Error(), status)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
