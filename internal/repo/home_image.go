package repo

import (
	"context"

	"gorm.io/gorm"

	"gothicshop/internal/models"
)

type HomeImageRepository interface {
	Create(ctx context.Context, img *models.HomeImage) error
	Get(ctx context.Context, id uint) (*models.HomeImage, error)
	Delete(ctx context.Context, id uint) error
	// ListAll is the admin view, newest first.
	ListAll(ctx context.Context) ([]models.HomeImage, error)
	// ListActive is what the homepage renders, ordered by position.
	ListActive(ctx context.Context) ([]models.HomeImage, error)
	// ToggleActive flips is_active and returns the new value.
	ToggleActive(ctx context.Context, id uint) (bool, error)
}

type homeImageRepo struct{ db *gorm.DB }

func NewHomeImageRepository(db *gorm.DB) HomeImageRepository {
	return &homeImageRepo{db: db}
}

func (r *homeImageRepo) Create(ctx context.Context, img *models.HomeImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *homeImageRepo) Get(ctx context.Context, id uint) (*models.HomeImage, error) {
	var img models.HomeImage
	if err := r.db.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *homeImageRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.HomeImage{}, id).Error
}

func (r *homeImageRepo) ListAll(ctx context.Context) ([]models.HomeImage, error) {
	var imgs []models.HomeImage
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&imgs).Error
	return imgs, err
}

func (r *homeImageRepo) ListActive(ctx context.Context) ([]models.HomeImage, error) {
	var imgs []models.HomeImage
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("position asc").
		Find(&imgs).Error
	return imgs, err
}

func (r *homeImageRepo) ToggleActive(ctx context.Context, id uint) (bool, error) {
	var active bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var img models.HomeImage
		if err := tx.First(&img, id).Error; err != nil {
			return err
		}
		active = !img.IsActive
		return tx.Model(&img).Update("is_active", active).Error
	})
	return active, err
}
