package services

import (
	"errors"
	"strings"

	"persianas-backend/internal/models"
	"persianas-backend/internal/pricing"

	"gorm.io/gorm"
)

// CatalogService owns the product catalog and the singleton business
// configuration. The *gorm.DB handle is injected at construction; there is no
// package-level state.
type CatalogService struct{ DB *gorm.DB }

func NewCatalogService(db *gorm.DB) *CatalogService { return &CatalogService{DB: db} }

// ProductInput is the mutable surface of a product. Pointer fields distinguish
// "not sent" from zero values on update.
type ProductInput struct {
	Name             *string          `json:"name"`
	Description      *string          `json:"description"`
	DistributorPrice *float64         `json:"distributor_price"`
	ClientPrice      *float64         `json:"client_price"`
	Colors           models.ColorList `json:"colors"`
}

func (s *CatalogService) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.Order("created_at asc, id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	var p models.Product
	if err := s.DB.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Kind: "product", ID: id}
		}
		return nil, err
	}
	return &p, nil
}

func (s *CatalogService) CreateProduct(in ProductInput) (*models.Product, error) {
	p := models.Product{Colors: in.Colors}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.DistributorPrice != nil {
		p.DistributorPrice = *in.DistributorPrice
	}
	if in.ClientPrice != nil {
		p.ClientPrice = *in.ClientPrice
	}
	if err := validateProduct(&p); err != nil {
		return nil, err
	}
	if err := s.DB.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *CatalogService) UpdateProduct(id string, in ProductInput) (*models.Product, error) {
	p, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.DistributorPrice != nil {
		p.DistributorPrice = *in.DistributorPrice
	}
	if in.ClientPrice != nil {
		p.ClientPrice = *in.ClientPrice
	}
	if in.Colors != nil {
		p.Colors = in.Colors
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	if err := s.DB.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(id string) error {
	res := s.DB.Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Kind: "product", ID: id}
	}
	return nil
}

// validateProduct enforces the price invariant (both tiers > 0) before any
// write. Field-presence checks live in the HTTP layer.
func validateProduct(p *models.Product) error {
	if p.DistributorPrice <= 0 {
		return &pricing.ValidationError{Kind: pricing.KindInvalidPrice, Field: "distributor_price", Value: p.DistributorPrice}
	}
	if p.ClientPrice <= 0 {
		return &pricing.ValidationError{Kind: pricing.KindInvalidPrice, Field: "client_price", Value: p.ClientPrice}
	}
	return nil
}

// Seed inserts the default blind catalog when the catalog is empty. It is an
// explicit administrative operation, idempotent: a non-empty catalog makes it
// a no-op. Returns the number of products inserted.
func (s *CatalogService) Seed() (int, error) {
	var count int64
	if err := s.DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	catalog := defaultCatalog()
	if err := s.DB.Create(&catalog).Error; err != nil {
		return 0, err
	}
	return len(catalog), nil
}

// GetConfig returns the stored business configuration, or the defaults when
// none was ever saved. Absence is not an error.
func (s *CatalogService) GetConfig() (models.BusinessConfig, error) {
	var cfg models.BusinessConfig
	err := s.DB.First(&cfg, "id = ?", models.BusinessConfigID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultBusinessConfig(), nil
	}
	if err != nil {
		return models.BusinessConfig{}, err
	}
	return cfg, nil
}

// ConfigInput mirrors ProductInput: nil means "leave as is".
type ConfigInput struct {
	BusinessName *string `json:"business_name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	LogoBase64   *string `json:"logo_base64"`
}

// PutConfig upserts the singleton record, applying only the fields present in
// the input. Concurrent writers are last-write-wins.
func (s *CatalogService) PutConfig(in ConfigInput) (models.BusinessConfig, error) {
	var cfg models.BusinessConfig
	err := s.DB.First(&cfg, "id = ?", models.BusinessConfigID).Error
	create := errors.Is(err, gorm.ErrRecordNotFound)
	if create {
		cfg = models.DefaultBusinessConfig()
	} else if err != nil {
		return models.BusinessConfig{}, err
	}
	if in.BusinessName != nil {
		cfg.BusinessName = *in.BusinessName
	}
	if in.Phone != nil {
		cfg.Phone = *in.Phone
	}
	if in.Email != nil {
		cfg.Email = *in.Email
	}
	if in.Address != nil {
		cfg.Address = *in.Address
	}
	if in.LogoBase64 != nil {
		cfg.LogoBase64 = *in.LogoBase64
	}
	if create {
		err = s.DB.Create(&cfg).Error
	} else {
		err = s.DB.Save(&cfg).Error
	}
	if err != nil {
		return models.BusinessConfig{}, err
	}
	return cfg, nil
}
