package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"persianas-backend/internal/httpx"
	"persianas-backend/internal/services"
	"persianas-backend/internal/validation"

	"gorm.io/gorm"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{Catalog: services.NewCatalogService(db)}
}

// List: GET /products
func (h *ProductHandler) List(w http.ResponseWriter, _ *http.Request) {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_products", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

// Get: GET /products/get?id=...
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

// Create: POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	name := ""
	if input.Name != nil {
		name = *input.Name
	}
	validation.Required("name", name, v)
	if input.DistributorPrice != nil {
		validation.PositiveFloat("distributor_price", *input.DistributorPrice, v)
	} else {
		v["distributor_price"] = "required"
	}
	if input.ClientPrice != nil {
		validation.PositiveFloat("client_price", *input.ClientPrice, v)
	} else {
		v["client_price"] = "required"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	p, err := h.Catalog.CreateProduct(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, p)
}

// Update: POST|PUT /products/update?id=...
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	var input services.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	p, err := h.Catalog.UpdateProduct(id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

// Delete: POST|DELETE /products/delete?id=...
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// Seed: POST /products/seed – loads the default catalog once; a non-empty
// catalog makes this a no-op.
func (h *ProductHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	inserted, err := h.Catalog.Seed()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "seed_failed", nil)
		return
	}
	if inserted == 0 {
		httpx.JSON(w, http.StatusOK, map[string]any{
			"inserted": 0,
			"message":  "el catálogo ya contiene productos",
		})
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"inserted": inserted,
		"message":  fmt.Sprintf("se crearon %d productos de ejemplo", inserted),
	})
}
