package models

import "time"

// BusinessConfigID is the sentinel key of the single letterhead record.
// Updates are upserts against this id; there is never a second row.
const BusinessConfigID = "business-config"

// BusinessConfig holds the business identity printed on quote documents.
// LogoBase64 is an optional base64-encoded PNG/JPEG.
type BusinessConfig struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	BusinessName string    `json:"business_name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	LogoBase64   string    `json:"logo_base64,omitempty"`
	UpdatedAt    time.Time `json:"-"`
}

// DefaultBusinessConfig returns the values used until the business saves its
// own configuration. Reads never fail for lack of a stored record.
func DefaultBusinessConfig() BusinessConfig {
	return BusinessConfig{
		ID:           BusinessConfigID,
		BusinessName: "Persianas Premium",
		Phone:        "+52 555 123 4567",
		Email:        "contacto@persianaspremium.mx",
		Address:      "Av. Reforma 123, Col. Centro, CDMX",
	}
}
