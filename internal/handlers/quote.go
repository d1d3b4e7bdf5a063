package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"persianas-backend/internal/httpx"
	"persianas-backend/internal/models"
	"persianas-backend/internal/pdf"
	"persianas-backend/internal/services"

	"gorm.io/gorm"
)

type QuoteHandler struct {
	Quotes   *services.QuoteService
	Renderer *pdf.Renderer
}

func NewQuoteHandler(db *gorm.DB) *QuoteHandler {
	quotes := services.NewQuoteService(db)
	lookup := func(productID, clientType string) (float64, bool) {
		p, err := quotes.Catalog.GetProduct(productID)
		if err != nil {
			return 0, false
		}
		return p.PriceFor(clientType), true
	}
	return &QuoteHandler{Quotes: quotes, Renderer: pdf.NewRenderer(lookup)}
}

// Create: POST /quotes – prices the request against the live catalog and
// stores the immutable quote.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	quote, err := h.Quotes.Create(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, quote)
}

// List: GET /quotes – newest first.
func (h *QuoteHandler) List(w http.ResponseWriter, _ *http.Request) {
	quotes, err := h.Quotes.List()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_quotes", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, quotes)
}

// Get: GET /quotes/get?id=...
func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	q, err := h.Quotes.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, q)
}

// Delete: POST|DELETE /quotes/delete?id=...
func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	if err := h.Quotes.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"deleted": id})
}

type pdfPayload struct {
	PDFBase64 string `json:"pdf_base64"`
	Filename  string `json:"filename"`
}

func toPayload(doc pdf.Document) pdfPayload {
	return pdfPayload{
		PDFBase64: base64.StdEncoding.EncodeToString(doc.Bytes),
		Filename:  doc.Filename,
	}
}

// PDF: GET /quotes/pdf?id=...&perspective=distributor|client
// The perspective defaults to the one the quote was created with.
func (h *QuoteHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	q, err := h.Quotes.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	perspective := r.URL.Query().Get("perspective")
	switch perspective {
	case "":
		perspective = q.ClientType
	case models.ClientTypeDistributor, models.ClientTypeClient:
	default:
		httpx.JSONError(w, http.StatusBadRequest, "invalid_perspective", nil)
		return
	}
	cfg, err := h.Quotes.Catalog.GetConfig()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_config", nil)
		return
	}
	doc, err := h.Renderer.Render(q, cfg, perspective)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPayload(doc))
}

// PDFBoth: GET /quotes/pdf/both?id=... – renders the distributor and client
// variants in one call.
func (h *QuoteHandler) PDFBoth(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	q, err := h.Quotes.Get(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	cfg, err := h.Quotes.Catalog.GetConfig()
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_load_config", nil)
		return
	}
	dist, client, err := h.Renderer.RenderBoth(q, cfg)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]pdfPayload{
		"distributor": toPayload(dist),
		"client":      toPayload(client),
	})
}
