package main

import (
	"log"
	"log/slog"
	"os"

	"gothicshop/internal/config"
	"gothicshop/internal/db"
	"gothicshop/internal/upload"
	"gothicshop/internal/web"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	gdb := db.MustOpen(cfg.DBDSN)
	if err := db.Migrate(gdb); err != nil {
		log.Fatal("migrate: ", err)
	}
	if err := db.SeedAdmin(gdb, cfg.AdminPassword); err != nil {
		log.Fatal("seed admin: ", err)
	}
	sqlDB, _ := gdb.DB()
	defer sqlDB.Close()

	uploads, err := upload.New(cfg.UploadDir)
	if err != nil {
		log.Fatal("upload dir: ", err)
	}

	r := web.New(gdb, uploads, cfg)

	slog.Info("server listening", "port", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
