package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client perspectives: which price tier a quote was built with.
const (
	ClientTypeDistributor = "distributor"
	ClientTypeClient      = "client"
)

// Quote is an immutable priced document. Once created it is only ever read or
// deleted; totals are never recomputed from the live catalog.
type Quote struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	Items       []QuoteItem `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"items"`
	Total       float64     `gorm:"not null" json:"total"`
	ClientType  string      `gorm:"not null" json:"client_type"`
	ClientName  string      `json:"client_name,omitempty"`
	ClientPhone string      `json:"client_phone,omitempty"`
	ClientEmail string      `json:"client_email,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`
}

func (q *Quote) BeforeCreate(_ *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// Folio is the short human-facing reference printed on documents.
func (q *Quote) Folio() string {
	if len(q.ID) < 8 {
		return q.ID
	}
	return q.ID[:8]
}

// QuoteItem is one measured blind within a quote. ProductName and UnitPrice
// are snapshots taken when the quote was created; catalog edits after that
// point do not reach them. Position preserves entry order.
type QuoteItem struct {
	ID                uint    `gorm:"primaryKey" json:"-"`
	QuoteID           string  `gorm:"size:36;not null;index" json:"-"`
	Position          int     `gorm:"not null" json:"-"`
	ProductID         string  `gorm:"size:36;not null" json:"product_id"`
	ProductName       string  `gorm:"not null" json:"product_name"`
	Color             string  `json:"color,omitempty"`
	Width             float64 `gorm:"not null" json:"width"`
	Height            float64 `gorm:"not null" json:"height"`
	SquareMeters      float64 `gorm:"not null" json:"square_meters"`
	UnitPrice         float64 `gorm:"not null" json:"unit_price"`
	Subtotal          float64 `gorm:"not null" json:"subtotal"`
	ChainOrientation  string  `json:"chain_orientation"`
	FasciaType        string  `json:"fascia_type"`
	FasciaColor       string  `json:"fascia_color"`
	FasciaPrice       float64 `json:"fascia_price"`
	InstallationPrice float64 `json:"installation_price"`
}
