package repo

import (
	"context"

	"gorm.io/gorm"

	"gothicshop/internal/models"
)

// ProductPage is one page of a listing plus the numbers the templates
// need to render "page N of M" and disable out-of-range navigation.
type ProductPage struct {
	Items      []models.Product
	Total      int64
	Page       int
	TotalPages int
}

// HasPrev reports whether a previous page exists.
func (p ProductPage) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p ProductPage) HasNext() bool { return p.Page < p.TotalPages }

// ProductCounts feeds the admin dashboard.
type ProductCounts struct {
	Total      int64
	InStock    int64
	OutOfStock int64
}

type ProductRepository interface {
	// Create persists the product and its image rows in one transaction,
	// so a product is never visible without at least one image.
	Create(ctx context.Context, p *models.Product, images []models.ProductImage) error
	Get(ctx context.Context, id uint) (*models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	// Delete removes the product and its image rows. Backing files are
	// the caller's problem (it has to skip the placeholder anyway).
	Delete(ctx context.Context, id uint) error
	ListInStock(ctx context.Context, category string, page, perPage int) (ProductPage, error)
	ListRecent(ctx context.Context, limit int) ([]models.Product, error)
	ListRelated(ctx context.Context, category string, excludeID uint, limit int) ([]models.Product, error)
	ListAll(ctx context.Context, page, perPage int) (ProductPage, error)
	Counts(ctx context.Context) (ProductCounts, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, p *models.Product, images []models.ProductImage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].ProductID = p.ID
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}
		p.Images = images
		return nil
	})
}

func (r *productRepo) Get(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Preload("Images").First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Update(ctx context.Context, p *models.Product) error {
	// Save с явным Select — полная перезапись изменяемых полей,
	// включая сброшенные bool/NULL.
	return r.db.WithContext(ctx).Model(p).
		Select("Name", "Description", "Price", "OldPrice", "Category", "InStock").
		Updates(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}

func (r *productRepo) ListInStock(ctx context.Context, category string, page, perPage int) (ProductPage, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{}).Where("in_stock = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	return paginate(q, page, perPage)
}

func (r *productRepo) ListRecent(ctx context.Context, limit int) ([]models.Product, error) {
	var items []models.Product
	err := r.db.WithContext(ctx).Preload("Images").
		Where("in_stock = ?", true).
		Order("created_at desc").Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *productRepo) ListRelated(ctx context.Context, category string, excludeID uint, limit int) ([]models.Product, error) {
	var items []models.Product
	err := r.db.WithContext(ctx).Preload("Images").
		Where("in_stock = ? AND category = ? AND id <> ?", true, category, excludeID).
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *productRepo) ListAll(ctx context.Context, page, perPage int) (ProductPage, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})
	return paginate(q, page, perPage)
}

func (r *productRepo) Counts(ctx context.Context) (ProductCounts, error) {
	var c ProductCounts
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Count(&c.Total).Error; err != nil {
		return c, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Where("in_stock = ?", true).Count(&c.InStock).Error; err != nil {
		return c, err
	}
	c.OutOfStock = c.Total - c.InStock
	return c, nil
}

// paginate runs the count-then-page dance shared by all listings.
// Out-of-range pages come back empty rather than erroring.
func paginate(q *gorm.DB, page, perPage int) (ProductPage, error) {
	if page < 1 {
		page = 1
	}
	res := ProductPage{Page: page}
	if err := q.Count(&res.Total).Error; err != nil {
		return res, err
	}
	res.TotalPages = int((res.Total + int64(perPage) - 1) / int64(perPage))
	err := q.Preload("Images").
		Order("created_at desc").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&res.Items).Error
	return res, err
}
