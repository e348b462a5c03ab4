package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ledgerline/go-billing/internal/auth"
	"github.com/ledgerline/go-billing/internal/db"
	"github.com/ledgerline/go-billing/internal/models"
)

type appFixture struct {
	handler http.Handler
	user    models.User
	invoice models.Invoice
	broken  models.Invoice // references a client that does not exist
}

func setupApp(t *testing.T) appFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	user := models.User{Email: t.Name() + "@example.com"}
	if err := user.SetPassword("secret12"); err != nil {
		t.Fatalf("password: %v", err)
	}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("user: %v", err)
	}
	company := models.CompanySettings{
		UserID: user.ID, Name: "Acme LLC", Currency: "USD",
		// Unroutable address: the logo degrades and the render proceeds.
		LogoURL: "http://127.0.0.1:1/logo.png",
	}
	if err := gdb.Create(&company).Error; err != nil {
		t.Fatalf("company: %v", err)
	}
	client := models.Client{UserID: user.ID, Name: "Globex", City: "Shelbyville"}
	if err := gdb.Create(&client).Error; err != nil {
		t.Fatalf("client: %v", err)
	}

	invoice := models.Invoice{
		UserID: user.ID, Number: "INV-2026-0042", ClientID: client.ID,
		IssueDate: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), Currency: "USD",
		Subtotal: decimal.NewFromInt(100), TotalAmount: decimal.NewFromInt(100),
		Items: []models.DocumentItem{
			{Description: "Consulting", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100), Position: 1},
		},
	}
	if err := gdb.Create(&invoice).Error; err != nil {
		t.Fatalf("invoice: %v", err)
	}
	broken := models.Invoice{
		UserID: user.ID, Number: "INV-2026-0043", ClientID: 424242,
		IssueDate: time.Now(), Currency: "USD",
	}
	if err := gdb.Create(&broken).Error; err != nil {
		t.Fatalf("broken invoice: %v", err)
	}

	return appFixture{handler: New(gdb, zap.NewNop()), user: user, invoice: invoice, broken: broken}
}

func sessionCookie(userID uint) *http.Cookie {
	return &http.Cookie{Name: "session", Value: auth.SessionValue(userID)}
}

func TestInvoicePDFDownload(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/invoices/"+strconv.Itoa(int(app.invoice.ID))+"/pdf", nil)
	req.AddCookie(sessionCookie(app.user.ID))
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, `invoice-INV-2026-0042.pdf`) {
		t.Errorf("content disposition = %q", cd)
	}
	body := rec.Body.Bytes()
	if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Error("body is not a PDF document")
	}
	if cl := rec.Header().Get("Content-Length"); cl != strconv.Itoa(len(body)) {
		t.Errorf("content length = %q, body = %d bytes", cl, len(body))
	}
}

func TestPDFRequiresSession(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/invoices/1/pdf", nil)
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestPDFNotFound(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/invoices/99999/pdf", nil)
	req.AddCookie(sessionCookie(app.user.ID))
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestPDFIncompleteData(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/invoices/"+strconv.Itoa(int(app.broken.ID))+"/pdf", nil)
	req.AddCookie(sessionCookie(app.user.ID))
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "incomplete") {
		t.Errorf("body should name the failure, got %q", rec.Body.String())
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("failed request must not emit document bytes")
	}
}

func TestPDFBadID(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/invoices/abc/pdf", nil)
	req.AddCookie(sessionCookie(app.user.ID))
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLoginThenList(t *testing.T) {
	app := setupApp(t)

	payload, _ := json.Marshal(map[string]string{"email": app.user.Email, "password": "secret12"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", rec.Code, rec.Body.String())
	}
	res := rec.Result()
	if len(res.Cookies()) == 0 {
		t.Fatal("login should set the session cookie")
	}

	listReq := httptest.NewRequest(http.MethodGet, "/invoices", nil)
	for _, c := range res.Cookies() {
		listReq.AddCookie(c)
	}
	listRec := httptest.NewRecorder()
	app.handler.ServeHTTP(listRec, listReq)

	if listRec.Code != http.StatusOK {
		t.Fatalf("list status = %d", listRec.Code)
	}
	var parsed struct {
		Items []models.Invoice `json:"items"`
	}
	if err := json.Unmarshal(listRec.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(parsed.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(parsed.Items))
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	payload, _ := json.Marshal(map[string]string{"email": app.user.Email, "password": "nope"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}
