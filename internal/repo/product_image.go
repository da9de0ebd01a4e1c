package repo

import (
	"context"

	"gorm.io/gorm"

	"gothicshop/internal/models"
)

type ProductImageRepository interface {
	Get(ctx context.Context, id uint) (*models.ProductImage, error)
	Add(ctx context.Context, img *models.ProductImage) error
	Delete(ctx context.Context, id uint) error
	ListByProduct(ctx context.Context, productID uint) ([]models.ProductImage, error)
	// SetPrimary clears every primary flag for the owning product and sets
	// img's, inside one transaction so two concurrent calls cannot leave
	// zero or two primaries.
	SetPrimary(ctx context.Context, img *models.ProductImage) error
}

type productImageRepo struct{ db *gorm.DB }

func NewProductImageRepository(db *gorm.DB) ProductImageRepository {
	return &productImageRepo{db: db}
}

func (r *productImageRepo) Get(ctx context.Context, id uint) (*models.ProductImage, error) {
	var img models.ProductImage
	if err := r.db.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *productImageRepo) Add(ctx context.Context, img *models.ProductImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *productImageRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ProductImage{}, id).Error
}

func (r *productImageRepo) ListByProduct(ctx context.Context, productID uint) ([]models.ProductImage, error) {
	var imgs []models.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at asc").
		Find(&imgs).Error
	return imgs, err
}

func (r *productImageRepo) SetPrimary(ctx context.Context, img *models.ProductImage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ProductImage{}).
			Where("product_id = ?", img.ProductID).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Model(img).Update("is_primary", true).Error
	})
}
