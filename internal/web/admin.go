package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"gothicshop/internal/models"
	"gothicshop/internal/upload"
)

const adminPageSize = 10

// parsePrice coerces a form value into a positive decimal, tolerating a
// comma as decimal separator.
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("price must be positive")
	}
	return d, nil
}

func (s *Server) dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	counts, err := s.products.Counts(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	recent, err := s.products.ListAll(ctx, 1, 3)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "dashboard.tmpl", s.view(c, ViewData{
		"Counts": counts,
		"Recent": recent.Items,
	}))
}

// ---------- products ----------

func (s *Server) adminProducts(c *gin.Context) {
	s.renderAdminProducts(c, http.StatusOK, "")
}

func (s *Server) renderAdminProducts(c *gin.Context, status int, errMsg string) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	result, err := s.products.ListAll(c.Request.Context(), page, adminPageSize)
	if err != nil {
		fail(c, err)
		return
	}
	data := s.view(c, ViewData{"Page": result})
	if errMsg != "" {
		data["Error"] = errMsg
	}
	c.HTML(status, "admin_products.tmpl", data)
}

func (s *Server) createProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	description := strings.TrimSpace(c.PostForm("description"))
	priceStr := strings.TrimSpace(c.PostForm("price"))
	oldPriceStr := strings.TrimSpace(c.PostForm("old_price"))
	category := strings.TrimSpace(c.PostForm("category"))

	if name == "" || priceStr == "" || category == "" {
		s.renderAdminProducts(c, http.StatusBadRequest, "يرجى ملء جميع الحقول المطلوبة")
		return
	}
	price, err := parsePrice(priceStr)
	if err != nil {
		s.renderAdminProducts(c, http.StatusBadRequest, "سعر غير صالح")
		return
	}
	var oldPrice decimal.NullDecimal
	if oldPriceStr != "" {
		d, err := parsePrice(oldPriceStr)
		if err != nil {
			s.renderAdminProducts(c, http.StatusBadRequest, "سعر غير صالح")
			return
		}
		oldPrice = decimal.NewNullDecimal(d)
	}

	p := models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		OldPrice:    oldPrice,
		Category:    category,
		InStock:     true,
	}

	// файлы пишутся до вставки строк: при сбое записи строк не будет
	var images []models.ProductImage
	if form, err := c.MultipartForm(); err == nil {
		for i, fh := range form.File["images"] {
			if fh.Filename == "" || fh.Size == 0 {
				continue
			}
			ref, err := s.uploads.Save(fh, "product", strconv.Itoa(i))
			if err != nil {
				flashError(c, "تعذر حفظ الصورة")
				c.Redirect(http.StatusSeeOther, "/admin/products")
				return
			}
			// первый непустой файл становится главным
			images = append(images, models.ProductImage{Image: ref, IsPrimary: len(images) == 0})
		}
	}
	if len(images) == 0 {
		images = []models.ProductImage{{Image: upload.Placeholder, IsPrimary: true}}
	}

	if err := s.products.Create(c.Request.Context(), &p, images); err != nil {
		fail(c, err)
		return
	}
	flashSuccess(c, "تم إضافة المنتج بنجاح")
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	p, err := s.products.Get(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	// Remove сам пропускает default.jpg
	for i := range p.Images {
		if err := s.uploads.Remove(p.Images[i].Image); err != nil {
			flashError(c, "تعذر حذف ملف الصورة")
			c.Redirect(http.StatusSeeOther, "/admin/products")
			return
		}
	}
	if err := s.products.Delete(ctx, id); err != nil {
		fail(c, err)
		return
	}
	flashSuccess(c, "تم حذف المنتج بنجاح")
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

func (s *Server) editProductForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := s.products.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit_product.tmpl", s.view(c, ViewData{"Product": p}))
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	p, err := s.products.Get(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	description := strings.TrimSpace(c.PostForm("description"))
	priceStr := strings.TrimSpace(c.PostForm("price"))
	oldPriceStr := strings.TrimSpace(c.PostForm("old_price"))
	category := strings.TrimSpace(c.PostForm("category"))

	renderErr := func(msg string) {
		c.HTML(http.StatusBadRequest, "edit_product.tmpl", s.view(c, ViewData{
			"Product": p,
			"Error":   msg,
		}))
	}

	if name == "" || priceStr == "" || category == "" {
		renderErr("يرجى ملء جميع الحقول المطلوبة")
		return
	}
	price, err := parsePrice(priceStr)
	if err != nil {
		renderErr("سعر غير صالح")
		return
	}
	var oldPrice decimal.NullDecimal
	if oldPriceStr != "" {
		d, err := parsePrice(oldPriceStr)
		if err != nil {
			renderErr("سعر غير صالح")
			return
		}
		oldPrice = decimal.NewNullDecimal(d)
	}

	// полная перезапись изменяемых полей
	p.Name = name
	p.Description = description
	p.Price = price
	p.OldPrice = oldPrice
	p.Category = category
	p.InStock = c.PostForm("in_stock") == "on"

	if err := s.products.Update(ctx, p); err != nil {
		fail(c, err)
		return
	}
	flashSuccess(c, "تم تحديث المنتج بنجاح")
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

// ---------- product images ----------

func (s *Server) addProductImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if _, err := s.products.Get(ctx, id); err != nil {
		fail(c, err)
		return
	}

	redirect := fmt.Sprintf("/admin/products/edit/%d", id)
	fh, err := c.FormFile("image")
	if err != nil || fh.Filename == "" || fh.Size == 0 {
		// без файла — просто назад к форме, как и раньше
		c.Redirect(http.StatusSeeOther, redirect)
		return
	}
	ref, err := s.uploads.Save(fh, "product", strconv.FormatUint(uint64(id), 10))
	if err != nil {
		flashError(c, "تعذر حفظ الصورة")
		c.Redirect(http.StatusSeeOther, redirect)
		return
	}
	img := models.ProductImage{ProductID: id, Image: ref, IsPrimary: false}
	if err := s.images.Add(ctx, &img); err != nil {
		fail(c, err)
		return
	}
	flashSuccess(c, "تم إضافة الصورة بنجاح")
	c.Redirect(http.StatusSeeOther, redirect)
}

func (s *Server) setPrimaryImage(c *gin.Context) {
	id, ok := parseID(c, "imageId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	img, err := s.images.Get(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	if err := s.images.SetPrimary(ctx, img); err != nil {
		fail(c, err)
		return
	}
	flashSuccess(c, "تم تعيين الصورة كرئيسية")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/products/edit/%d", img.ProductID))
}

func (s *Server) deleteProductImage(c *gin.Context) {
	id, ok := parseID(c, "imageId")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	img, err := s.images.Get(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	redirect := fmt.Sprintf("/admin/products/edit/%d", img.ProductID)
	if err := s.uploads.Remove(img.Image); err != nil {
		flashError(c, "تعذر حذف ملف الصورة")
		c.Redirect(http.StatusSeeOther, redirect)
		return
	}
	if err := s.images.Delete(ctx, id); err != nil {
		fail(c, err)
		return
	}
	flashSuccess(c, "تم حذف الصورة بنجاح")
	c.Redirect(http.StatusSeeOther, redirect)
}

// ---------- home images ----------

func (s *Server) adminHomeImages(c *gin.Context) {
	imgs, err := s.home.ListAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "home_images.tmpl", s.view(c, ViewData{"Images": imgs}))
}

func (s *Server) createHomeImage(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	position := strings.TrimSpace(c.PostForm("position"))

	ref := upload.Placeholder
	if fh, err := c.FormFile("image"); err == nil && fh.Filename != "" && fh.Size > 0 {
		var saveErr error
		ref, saveErr = s.uploads.Save(fh, "home")
		if saveErr != nil {
			flashError(c, "تعذر حفظ الصورة")
			c.Redirect(http.StatusSeeOther, "/admin/home-images")
			return
		}
	}

	img := models.HomeImage{
		Title:       title,
		Description: description,
		Image:       ref,
		Position:    position,
		IsActive:    true,
	}
	if err := s.home.Create(c.Request.Context(), &img); err != nil {
		fail(c, err)
		return
	}
	flashSuccess(c, "تم إضافة الصورة بنجاح")
	c.Redirect(http.StatusSeeOther, "/admin/home-images")
}

func (s *Server) toggleHomeImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	active, err := s.home.ToggleActive(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	status := "تعطيل"
	if active {
		status = "تفعيل"
	}
	flashSuccess(c, fmt.Sprintf("تم %s الصورة بنجاح", status))
	c.Redirect(http.StatusSeeOther, "/admin/home-images")
}

func (s *Server) deleteHomeImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	img, err := s.home.Get(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	if err := s.uploads.Remove(img.Image); err != nil {
		flashError(c, "تعذر حذف ملف الصورة")
		c.Redirect(http.StatusSeeOther, "/admin/home-images")
		return
	}
	if err := s.home.Delete(ctx, id); err != nil {
		fail(c, err)
		return
	}
	flashSuccess(c, "تم حذف الصورة بنجاح")
	c.Redirect(http.StatusSeeOther, "/admin/home-images")
}
