package services

import (
	"errors"
	"fmt"

	"persianas-backend/internal/models"
	"persianas-backend/internal/pricing"

	"gorm.io/gorm"
)

// Accessory defaults applied when a line item omits them, matching what the
// order forms offer first.
const (
	DefaultChainOrientation = "Derecha"
	DefaultFasciaType       = "Redonda"
	DefaultFasciaColor      = "Blanca"
)

// LineItemRequest is one proposed blind. ProductName and UnitPrice are
// advisory: the builder re-derives both from the catalog so a stale or
// tampered request can never fix its own price.
type LineItemRequest struct {
	ProductID         string  `json:"product_id"`
	ProductName       string  `json:"product_name"`
	Color             string  `json:"color"`
	Width             float64 `json:"width"`
	Height            float64 `json:"height"`
	UnitPrice         float64 `json:"unit_price"`
	ChainOrientation  string  `json:"chain_orientation"`
	FasciaType        string  `json:"fascia_type"`
	FasciaColor       string  `json:"fascia_color"`
	FasciaPrice       float64 `json:"fascia_price"`
	InstallationPrice float64 `json:"installation_price"`
}

type QuoteRequest struct {
	Items       []LineItemRequest `json:"items"`
	ClientType  string            `json:"client_type"`
	ClientName  string            `json:"client_name"`
	ClientPhone string            `json:"client_phone"`
	ClientEmail string            `json:"client_email"`
	Notes       string            `json:"notes"`
}

// QuoteService builds and stores quotes. Quotes are append/delete only; there
// is deliberately no update path.
type QuoteService struct {
	DB      *gorm.DB
	Catalog *CatalogService
}

func NewQuoteService(db *gorm.DB) *QuoteService {
	return &QuoteService{DB: db, Catalog: NewCatalogService(db)}
}

// Create validates the request, prices each line against the live catalog and
// persists the resulting immutable quote in a single transactional write.
// Validation happens entirely before the write: a failing item means nothing
// is stored.
func (s *QuoteService) Create(req QuoteRequest) (*models.Quote, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyQuote
	}
	if req.ClientType != models.ClientTypeDistributor && req.ClientType != models.ClientTypeClient {
		return nil, ErrInvalidClientType
	}

	items := make([]models.QuoteItem, 0, len(req.Items))
	var total float64
	for i, it := range req.Items {
		product, err := s.Catalog.GetProduct(it.ProductID)
		if err != nil {
			return nil, err
		}
		unitPrice := product.PriceFor(req.ClientType)
		line, err := pricing.ComputeLine(pricing.LineInput{
			Width:             it.Width,
			Height:            it.Height,
			UnitPrice:         unitPrice,
			FasciaPrice:       it.FasciaPrice,
			InstallationPrice: it.InstallationPrice,
		})
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		total += line.Subtotal
		items = append(items, models.QuoteItem{
			Position:          i,
			ProductID:         product.ID,
			ProductName:       product.Name,
			Color:             it.Color,
			Width:             it.Width,
			Height:            it.Height,
			SquareMeters:      line.SquareMeters,
			UnitPrice:         unitPrice,
			Subtotal:          line.Subtotal,
			ChainOrientation:  orDefault(it.ChainOrientation, DefaultChainOrientation),
			FasciaType:        orDefault(it.FasciaType, DefaultFasciaType),
			FasciaColor:       orDefault(it.FasciaColor, DefaultFasciaColor),
			FasciaPrice:       it.FasciaPrice,
			InstallationPrice: it.InstallationPrice,
		})
	}

	quote := &models.Quote{
		Items:       items,
		Total:       total,
		ClientType:  req.ClientType,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		Notes:       req.Notes,
	}
	// gorm creates the quote and its items inside one transaction.
	if err := s.DB.Create(quote).Error; err != nil {
		return nil, fmt.Errorf("persist quote: %w", err)
	}
	return quote, nil
}

// List returns quotes newest first, items in entry order.
func (s *QuoteService) List() ([]models.Quote, error) {
	var quotes []models.Quote
	err := s.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Order("created_at desc, id desc").
		Find(&quotes).Error
	if err != nil {
		return nil, err
	}
	return quotes, nil
}

func (s *QuoteService) Get(id string) (*models.Quote, error) {
	var q models.Quote
	err := s.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		First(&q, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Kind: "quote", ID: id}
		}
		return nil, err
	}
	return &q, nil
}

// Delete removes a quote and its items. An unknown id reports NotFoundError.
func (s *QuoteService) Delete(id string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.Quote{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Kind: "quote", ID: id}
		}
		return tx.Where("quote_id = ?", id).Delete(&models.QuoteItem{}).Error
	})
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
