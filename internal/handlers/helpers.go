package handlers

import (
	"errors"
	"net/http"

	"persianas-backend/internal/httpx"
	"persianas-backend/internal/pdf"
	"persianas-backend/internal/pricing"
	"persianas-backend/internal/services"
)

// writeServiceError maps service-layer error kinds onto HTTP statuses so the
// client can tell bad input (fix and retry) from missing records.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *pricing.ValidationError
	var nf *services.NotFoundError
	var re *pdf.RenderError
	switch {
	case errors.As(err, &ve):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]any{
			"kind":  ve.Kind,
			"field": ve.Field,
		})
	case errors.As(err, &nf):
		httpx.JSONError(w, http.StatusNotFound, "not_found", map[string]string{
			"kind": nf.Kind,
			"id":   nf.ID,
		})
	case errors.Is(err, services.ErrEmptyQuote):
		httpx.JSONError(w, http.StatusBadRequest, "empty_quote", nil)
	case errors.Is(err, services.ErrInvalidClientType):
		httpx.JSONError(w, http.StatusBadRequest, "invalid_client_type", nil)
	case errors.As(err, &re):
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}

// requireID pulls the id query parameter shared by the get/update/delete
// routes; an empty value is reported to the client directly.
func requireID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return "", false
	}
	return id, true
}
