package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"persianas-backend/internal/models"
	"persianas-backend/internal/services"

	"gorm.io/gorm"
)

func seedProduct(t *testing.T, conn *gorm.DB) *models.Product {
	t.Helper()
	name := "Persiana Blackout"
	dist, client := 450.0, 585.0
	p, err := services.NewCatalogService(conn).CreateProduct(services.ProductInput{
		Name:             &name,
		DistributorPrice: &dist,
		ClientPrice:      &client,
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func createQuote(t *testing.T, h *QuoteHandler, body string) *models.Quote {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create quote: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var q models.Quote
	if err := json.Unmarshal(w.Body.Bytes(), &q); err != nil {
		t.Fatalf("decode quote: %v", err)
	}
	return &q
}

func TestQuoteCreateAndGet(t *testing.T) {
	conn := setupTestDB(t)
	p := seedProduct(t, conn)
	h := NewQuoteHandler(conn)

	body := fmt.Sprintf(`{"client_type":"distributor","client_name":"María","items":[{"product_id":"%s","width":1.2,"height":1.5,"color":"Gris"}]}`, p.ID)
	q := createQuote(t, h, body)
	if len(q.Items) != 1 || q.Items[0].UnitPrice != 450 {
		t.Fatalf("unexpected quote payload: %+v", q)
	}

	w := httptest.NewRecorder()
	h.Get(w, httptest.NewRequest(http.MethodGet, "/quotes/get?id="+q.ID, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200 got %d", w.Code)
	}
}

func TestQuoteCreateRejectsEmptyAndBadType(t *testing.T) {
	conn := setupTestDB(t)
	h := NewQuoteHandler(conn)

	req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(`{"client_type":"client","items":[]}`))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty quote: expected 400 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "empty_quote") {
		t.Fatalf("expected empty_quote error, body=%s", w.Body.String())
	}

	p := seedProduct(t, conn)
	body := fmt.Sprintf(`{"client_type":"mayorista","items":[{"product_id":"%s","width":1,"height":1}]}`, p.ID)
	w2 := httptest.NewRecorder()
	h.Create(w2, httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body)))
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("bad client type: expected 400 got %d", w2.Code)
	}
	if !strings.Contains(w2.Body.String(), "invalid_client_type") {
		t.Fatalf("expected invalid_client_type error, body=%s", w2.Body.String())
	}
}

func TestQuotePDFEndpoint(t *testing.T) {
	conn := setupTestDB(t)
	p := seedProduct(t, conn)
	h := NewQuoteHandler(conn)

	body := fmt.Sprintf(`{"client_type":"client","items":[{"product_id":"%s","width":1,"height":1}]}`, p.ID)
	q := createQuote(t, h, body)

	w := httptest.NewRecorder()
	h.PDF(w, httptest.NewRequest(http.MethodGet, "/quotes/pdf?id="+q.ID, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("pdf: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		PDFBase64 string `json:"pdf_base64"`
		Filename  string `json:"filename"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(resp.PDFBase64)
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF-")) {
		t.Fatal("payload is not a pdf")
	}
	if !strings.HasPrefix(resp.Filename, "cotizacion_") || !strings.HasSuffix(resp.Filename, ".pdf") {
		t.Fatalf("unexpected filename %q", resp.Filename)
	}

	// Unknown perspective is rejected.
	w2 := httptest.NewRecorder()
	h.PDF(w2, httptest.NewRequest(http.MethodGet, "/quotes/pdf?id="+q.ID+"&perspective=mayorista", nil))
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("bad perspective: expected 400 got %d", w2.Code)
	}

	// Unknown quote is 404.
	w3 := httptest.NewRecorder()
	h.PDF(w3, httptest.NewRequest(http.MethodGet, "/quotes/pdf?id=missing", nil))
	if w3.Code != http.StatusNotFound {
		t.Fatalf("missing quote: expected 404 got %d", w3.Code)
	}
}

func TestQuotePDFBothEndpoint(t *testing.T) {
	conn := setupTestDB(t)
	p := seedProduct(t, conn)
	h := NewQuoteHandler(conn)

	body := fmt.Sprintf(`{"client_type":"distributor","items":[{"product_id":"%s","width":1,"height":1}]}`, p.ID)
	q := createQuote(t, h, body)

	w := httptest.NewRecorder()
	h.PDFBoth(w, httptest.NewRequest(http.MethodGet, "/quotes/pdf/both?id="+q.ID, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("pdf both: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var resp map[string]struct {
		PDFBase64 string `json:"pdf_base64"`
		Filename  string `json:"filename"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	dist, ok := resp["distributor"]
	if !ok {
		t.Fatal("missing distributor document")
	}
	client, ok := resp["client"]
	if !ok {
		t.Fatal("missing client document")
	}
	if !strings.HasSuffix(dist.Filename, "_distribuidor.pdf") {
		t.Fatalf("distributor filename %q", dist.Filename)
	}
	if !strings.HasSuffix(client.Filename, "_cliente.pdf") {
		t.Fatalf("client filename %q", client.Filename)
	}
	if dist.PDFBase64 == "" || client.PDFBase64 == "" {
		t.Fatal("empty documents")
	}
}

func TestQuoteDeleteEndpoint(t *testing.T) {
	conn := setupTestDB(t)
	p := seedProduct(t, conn)
	h := NewQuoteHandler(conn)

	body := fmt.Sprintf(`{"client_type":"client","items":[{"product_id":"%s","width":1,"height":1}]}`, p.ID)
	q := createQuote(t, h, body)

	w := httptest.NewRecorder()
	h.Delete(w, httptest.NewRequest(http.MethodPost, "/quotes/delete?id="+q.ID, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	h.Get(w2, httptest.NewRequest(http.MethodGet, "/quotes/get?id="+q.ID, nil))
	if w2.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete got %d", w2.Code)
	}
}
