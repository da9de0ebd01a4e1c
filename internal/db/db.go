package db

import (
	"errors"
	"log"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gothicshop/internal/models"
)

// MustOpen открывает соединение с БД по строке из .env
func MustOpen(dsn string) *gorm.DB {
	if dsn == "" {
		log.Fatal("DB_DSN is empty (check your .env)")
	}
	// TranslateError: SeedAdmin различает нарушение уникальности по
	// gorm.ErrDuplicatedKey
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}
	return db
}

// Migrate creates/updates the four tables. Runs once at startup, not per
// request.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
		&models.HomeImage{},
	)
}

// SeedAdmin creates the default "admin" user on first boot. The unique
// index on username is the guard against two instances racing here: the
// loser's insert fails and is ignored.
func SeedAdmin(db *gorm.DB, password string) error {
	var u models.User
	err := db.Where("username = ?", "admin").First(&u).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := models.HashPassword(password)
	if err != nil {
		return err
	}
	admin := models.User{Username: "admin", PasswordHash: hash, IsAdmin: true}
	if err := db.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	slog.Info("seeded default admin user", "username", admin.Username)
	return nil
}
