package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gothicshop/internal/models"
)

func seedProductWithImages(t *testing.T, db *gorm.DB, refs ...string) (*models.Product, []models.ProductImage) {
	t.Helper()
	products := NewProductRepository(db)
	imgs := make([]models.ProductImage, len(refs))
	for i, ref := range refs {
		imgs[i] = models.ProductImage{Image: ref, IsPrimary: i == 0}
	}
	p := newProduct("Corset", "corsets", true, time.Now())
	require.NoError(t, products.Create(context.Background(), p, imgs))
	return p, p.Images
}

func primaries(t *testing.T, db *gorm.DB, productID uint) []models.ProductImage {
	t.Helper()
	var out []models.ProductImage
	require.NoError(t, db.Where("product_id = ? AND is_primary = ?", productID, true).Find(&out).Error)
	return out
}

func TestSetPrimaryIsExclusive(t *testing.T) {
	db := newTestDB(t)
	images := NewProductImageRepository(db)
	ctx := context.Background()

	p, imgs := seedProductWithImages(t, db, "a.jpg", "b.jpg", "c.jpg")

	// A → B: главной остаётся ровно одна
	require.NoError(t, images.SetPrimary(ctx, &imgs[1]))
	got := primaries(t, db, p.ID)
	require.Len(t, got, 1)
	assert.Equal(t, "b.jpg", got[0].Image)

	// повторное назначение другой
	require.NoError(t, images.SetPrimary(ctx, &imgs[2]))
	got = primaries(t, db, p.ID)
	require.Len(t, got, 1)
	assert.Equal(t, "c.jpg", got[0].Image)
}

func TestSetPrimaryDoesNotTouchOtherProducts(t *testing.T) {
	db := newTestDB(t)
	images := NewProductImageRepository(db)
	ctx := context.Background()

	p1, _ := seedProductWithImages(t, db, "p1a.jpg", "p1b.jpg")
	p2, imgs2 := seedProductWithImages(t, db, "p2a.jpg", "p2b.jpg")

	require.NoError(t, images.SetPrimary(ctx, &imgs2[1]))

	assert.Equal(t, "p1a.jpg", primaries(t, db, p1.ID)[0].Image)
	assert.Equal(t, "p2b.jpg", primaries(t, db, p2.ID)[0].Image)
}

func TestAddAndDeleteImage(t *testing.T) {
	db := newTestDB(t)
	images := NewProductImageRepository(db)
	ctx := context.Background()

	p, _ := seedProductWithImages(t, db, "a.jpg")

	img := models.ProductImage{ProductID: p.ID, Image: "extra.jpg"}
	require.NoError(t, images.Add(ctx, &img))

	list, err := images.ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	// добавленная не становится главной
	assert.Equal(t, "a.jpg", primaries(t, db, p.ID)[0].Image)

	require.NoError(t, images.Delete(ctx, img.ID))
	_, err = images.Get(ctx, img.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
