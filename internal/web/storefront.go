package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shopPageSize = 12

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return 0, false
	}
	return uint(id), true
}

// fail maps a repository error to the client response: record misses are
// a 404 page, everything else is logged and becomes a bare 500.
func fail(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	slog.Error("request failed", "path", c.FullPath(), "err", err)
	c.String(http.StatusInternalServerError, "Internal error")
}

func (s *Server) homePage(c *gin.Context) {
	ctx := c.Request.Context()
	products, err := s.products.ListRecent(ctx, 8)
	if err != nil {
		fail(c, err)
		return
	}
	banners, err := s.home.ListActive(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", s.view(c, ViewData{
		"Products":   products,
		"HomeImages": banners,
	}))
}

func (s *Server) shopPage(c *gin.Context) {
	category := c.Query("category")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := s.products.ListInStock(c.Request.Context(), category, page, shopPageSize)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "shop.tmpl", s.view(c, ViewData{
		"Page":     result,
		"Category": category,
	}))
}

func (s *Server) productPage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()
	// намеренно без фильтра in_stock: прямая ссылка на распроданный
	// товар продолжает открываться
	p, err := s.products.Get(ctx, id)
	if err != nil {
		fail(c, err)
		return
	}
	related, err := s.products.ListRelated(ctx, p.Category, p.ID, 4)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "product.tmpl", s.view(c, ViewData{
		"Product": p,
		"Related": related,
	}))
}
