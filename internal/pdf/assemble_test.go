package pdf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	rec        *DocumentRecord
	recErr     error
	profile    *CompanyProfile
	profileErr error
}

func (s *stubSource) Document(ctx context.Context, kind Kind, userID, id uint) (*DocumentRecord, error) {
	return s.rec, s.recErr
}

func (s *stubSource) CompanyProfile(ctx context.Context, userID uint) (*CompanyProfile, error) {
	return s.profile, s.profileErr
}

func newTestAssembler(t *testing.T, src RecordSource) *Assembler {
	return NewAssembler(src, fastResolver(t), zap.NewNop())
}

func TestGenerateSuccess(t *testing.T) {
	src := &stubSource{rec: sampleRecord(1), profile: sampleCompany()}
	// No logo URL and no network in tests: resolution degrades to no logo.
	src.profile.LogoURL = "http://127.0.0.1:1/logo.png"

	out, filename, err := newTestAssembler(t, src).Generate(context.Background(), KindInvoice, 1, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, "invoice-INV-2026-0042.pdf", filename)
}

func TestGenerateNotFound(t *testing.T) {
	src := &stubSource{recErr: ErrNotFound}
	out, _, err := newTestAssembler(t, src).Generate(context.Background(), KindInvoice, 1, 42)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, out, "no partial output on failure")
}

func TestGenerateConfigurationMissing(t *testing.T) {
	src := &stubSource{rec: sampleRecord(1), profileErr: ErrConfigurationMissing}
	out, _, err := newTestAssembler(t, src).Generate(context.Background(), KindQuotation, 1, 42)
	require.ErrorIs(t, err, ErrConfigurationMissing)
	assert.Empty(t, out)
}

func TestGenerateIncompleteData(t *testing.T) {
	rec := sampleRecord(1)
	rec.Party.Name = ""
	src := &stubSource{rec: rec, profile: sampleCompany()}
	src.profile.LogoURL = "http://127.0.0.1:1/logo.png"

	out, _, err := newTestAssembler(t, src).Generate(context.Background(), KindInvoice, 1, 42)
	require.ErrorIs(t, err, ErrIncompleteData)
	assert.Empty(t, out)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct{ in, want string }{
		{"INV-2026-0042", "INV-2026-0042"},
		{"QT/2026 #7", "QT_2026__7"},
		{"..", ".."},
		{"", "document"},
		{"café", "caf_"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "invoice", KindInvoice.String())
	assert.Equal(t, "quotation", KindQuotation.String())
	assert.Equal(t, "purchase-order", KindPurchaseOrder.String())
	assert.Equal(t, "delivery-note", KindDeliveryNote.String())
}
