package models

import "github.com/shopspring/decimal"

// Product — таблица products
type Product struct {
	Base
	Name        string              `gorm:"not null"`
	Description string              `gorm:"type:text"`
	Price       decimal.Decimal     `gorm:"type:decimal(10,2);not null"`
	OldPrice    decimal.NullDecimal `gorm:"type:decimal(10,2)"` // цена до скидки, для зачёркнутого ценника
	Category    string              `gorm:"not null;index"`
	// без default-тега: gorm не вставляет false у полей с default,
	// а наличие товара всегда задаётся явно
	InStock     bool                `gorm:"not null"`

	Images []ProductImage `gorm:"constraint:OnDelete:CASCADE"`
}

// PrimaryImage returns the reference flagged as primary, falling back to
// the first image, then to the placeholder.
func (p Product) PrimaryImage() string {
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return p.Images[i].Image
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].Image
	}
	return "default.jpg"
}

// ProductImage — таблица product_images
type ProductImage struct {
	Base
	ProductID uint   `gorm:"index;not null"`
	Image     string `gorm:"not null"` // имя файла в папке загрузок, напр. "product_0_20230101_120000_cloak.jpg"
	IsPrimary bool   `gorm:"not null;default:false"`
}
