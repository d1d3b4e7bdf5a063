package handlers

import (
	"encoding/json"
	"net/http"

	"persianas-backend/internal/httpx"
	"persianas-backend/internal/services"

	"gorm.io/gorm"
)

// ConfigHandler serves the singleton business configuration. GET always
// succeeds, falling back to defaults when nothing was ever saved.
type ConfigHandler struct {
	Catalog *services.CatalogService
}

func NewConfigHandler(db *gorm.DB) *ConfigHandler {
	return &ConfigHandler{Catalog: services.NewCatalogService(db)}
}

// Get: GET /config
func (h *ConfigHandler) Get(w http.ResponseWriter, _ *http.Request) {
	cfg, err := h.Catalog.GetConfig()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_config", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, cfg)
}

// Put: PUT|POST /config – partial update, omitted fields keep their value.
func (h *ConfigHandler) Put(w http.ResponseWriter, r *http.Request) {
	var input services.ConfigInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	cfg, err := h.Catalog.PutConfig(input)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_save_config", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, cfg)
}
