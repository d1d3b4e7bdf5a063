package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"persianas-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Product{}, &models.BusinessConfig{}, &models.Quote{}, &models.QuoteItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func TestProductCreateAndList(t *testing.T) {
	h := NewProductHandler(setupTestDB(t))

	body := `{"name":"Persiana Screen","distributor_price":520,"client_price":676,"colors":[{"name":"Gris","code":"#808080"}]}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var created models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id in response")
	}

	w2 := httptest.NewRecorder()
	h.List(w2, httptest.NewRequest(http.MethodGet, "/products", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w2.Code)
	}
	var products []models.Product
	if err := json.Unmarshal(w2.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Persiana Screen" {
		t.Fatalf("unexpected list: %+v", products)
	}
}

func TestProductCreateValidation(t *testing.T) {
	h := NewProductHandler(setupTestDB(t))

	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":"","client_price":-5}`))
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	var resp struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "validation_failed" {
		t.Fatalf("unexpected error code %q", resp.Error)
	}
	for _, field := range []string{"name", "distributor_price", "client_price"} {
		if _, ok := resp.Details[field]; !ok {
			t.Fatalf("expected violation for %s, got %v", field, resp.Details)
		}
	}
}

func TestProductGetNotFound(t *testing.T) {
	h := NewProductHandler(setupTestDB(t))

	w := httptest.NewRecorder()
	h.Get(w, httptest.NewRequest(http.MethodGet, "/products/get?id=nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	h.Get(w2, httptest.NewRequest(http.MethodGet, "/products/get", nil))
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("missing id should be 400, got %d", w2.Code)
	}
}

func TestProductSeedEndpoint(t *testing.T) {
	h := NewProductHandler(setupTestDB(t))

	w := httptest.NewRecorder()
	h.Seed(w, httptest.NewRequest(http.MethodPost, "/products/seed", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", w.Code)
	}
	var resp struct {
		Inserted int    `json:"inserted"`
		Message  string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Inserted != 5 {
		t.Fatalf("expected 5 inserted got %d", resp.Inserted)
	}

	// Second call is a no-op and says so.
	w2 := httptest.NewRecorder()
	h.Seed(w2, httptest.NewRequest(http.MethodPost, "/products/seed", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w2.Code)
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Inserted != 0 {
		t.Fatalf("second seed inserted %d", resp.Inserted)
	}

	// GET is rejected.
	w3 := httptest.NewRecorder()
	h.Seed(w3, httptest.NewRequest(http.MethodGet, "/products/seed", nil))
	if w3.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", w3.Code)
	}
}

func TestProductUpdateAndDelete(t *testing.T) {
	conn := setupTestDB(t)
	h := NewProductHandler(conn)

	create := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":"Blackout","distributor_price":450,"client_price":585}`))
	w := httptest.NewRecorder()
	h.Create(w, create)
	var p models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}

	upd := httptest.NewRequest(http.MethodPost, "/products/update?id="+p.ID, strings.NewReader(`{"client_price":600}`))
	w2 := httptest.NewRecorder()
	h.Update(w2, upd)
	if w2.Code != http.StatusOK {
		t.Fatalf("update: expected 200 got %d body=%s", w2.Code, w2.Body.String())
	}
	var updated models.Product
	if err := json.Unmarshal(w2.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode update: %v", err)
	}
	if updated.ClientPrice != 600 || updated.DistributorPrice != 450 {
		t.Fatalf("partial update wrong: %+v", updated)
	}

	del := httptest.NewRequest(http.MethodPost, "/products/delete?id="+p.ID, nil)
	w3 := httptest.NewRecorder()
	h.Delete(w3, del)
	if w3.Code != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d", w3.Code)
	}

	w4 := httptest.NewRecorder()
	h.Delete(w4, httptest.NewRequest(http.MethodPost, "/products/delete?id="+p.ID, nil))
	if w4.Code != http.StatusNotFound {
		t.Fatalf("double delete: expected 404 got %d", w4.Code)
	}
}
