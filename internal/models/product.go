package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductColor is one color/model variant offered for a product.
// Code is an optional display hex like #FFFFFF.
type ProductColor struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// ColorList is persisted as a JSON column so the ordered palette travels with
// the product row instead of a join table.
type ColorList []ProductColor

func (c ColorList) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *ColorList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*c = nil
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return errors.New("colors column: unsupported source type")
}

// Product is a catalog entry. Prices are per square meter, one tier per
// client perspective. Quote line items reference products by id but snapshot
// name and price, so deleting a product never rewrites history.
type Product struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Description      string    `json:"description"`
	DistributorPrice float64   `gorm:"not null" json:"distributor_price"`
	ClientPrice      float64   `gorm:"not null" json:"client_price"`
	Colors           ColorList `gorm:"type:text" json:"colors"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PriceFor returns the unit price for the given perspective
// (distributor or client).
func (p *Product) PriceFor(clientType string) float64 {
	if clientType == ClientTypeDistributor {
		return p.DistributorPrice
	}
	return p.ClientPrice
}
