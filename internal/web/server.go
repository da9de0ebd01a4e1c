package web

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gothicshop/internal/config"
	"gothicshop/internal/repo"
	"gothicshop/internal/upload"
	"gothicshop/internal/whatsapp"
)

// Server bundles the repositories and the upload store behind the HTTP
// handlers.
type Server struct {
	products repo.ProductRepository
	images   repo.ProductImageRepository
	home     repo.HomeImageRepository
	users    repo.UserRepository
	uploads  *upload.Store
}

// New wires sessions, templates, static files and all routes onto a gin
// engine.
func New(gdb *gorm.DB, uploads *upload.Store, cfg config.Config) *gin.Engine {
	s := &Server{
		products: repo.NewProductRepository(gdb),
		images:   repo.NewProductImageRepository(gdb),
		home:     repo.NewHomeImageRepository(gdb),
		users:    repo.NewUserRepository(gdb),
		uploads:  uploads,
	}

	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	// sessions
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("gothic_session", store))

	// раздача статики
	r.Static("/static", "./static")
	r.Static("/uploads", uploads.Dir())

	// templates
	r.SetFuncMap(template.FuncMap{
		"whatsapp": whatsapp.Link,
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
	})
	r.LoadHTMLGlob(cfg.TemplatesGlob)

	// health
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := gdb.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// storefront
	r.GET("/", s.homePage)
	r.GET("/shop", s.shopPage)
	r.GET("/product/:id", s.productPage)

	// admin
	admin := r.Group("/admin")
	admin.GET("/login", s.loginForm)
	admin.POST("/login", s.login)
	admin.GET("/logout", s.logout)

	auth := admin.Group("", s.RequireLogin(), s.RequireAdmin())
	auth.GET("/dashboard", s.dashboard)
	auth.GET("/products", s.adminProducts)
	auth.POST("/products", s.createProduct)
	auth.POST("/products/delete/:id", s.deleteProduct)
	auth.GET("/products/edit/:id", s.editProductForm)
	auth.POST("/products/edit/:id", s.updateProduct)
	auth.POST("/products/add-image/:id", s.addProductImage)
	auth.POST("/products/set-primary-image/:imageId", s.setPrimaryImage)
	auth.POST("/products/delete-image/:imageId", s.deleteProductImage)
	auth.GET("/home-images", s.adminHomeImages)
	auth.POST("/home-images", s.createHomeImage)
	auth.POST("/home-images/toggle/:id", s.toggleHomeImage)
	auth.POST("/home-images/delete/:id", s.deleteHomeImage)

	return r
}
