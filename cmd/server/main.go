package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"NotesBro/internal/config"
	"NotesBro/internal/handlers"
	"NotesBro/internal/middleware"
	"NotesBro/internal/repo"
	"NotesBro/internal/service"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	// секрет подписи обязателен: захардкоженного значения по умолчанию нет
	if cfg.AuthSecret == "" {
		sugar.Fatalw("AUTH_SECRET is not set; refusing to start")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	noteRepo := repo.NewNoteRepository(gormDB)
	userRepo := repo.NewUserRepository(gormDB)

	noteService := service.NewNoteService(noteRepo)
	userService := service.NewUserService(userRepo)

	// bootstrap администратора из конфигурации
	if cfg.AdminPassword != "" {
		if _, err := userService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			sugar.Fatalw("failed to ensure admin user", "error", err)
		}
		sugar.Infow("Admin user ensured", "username", cfg.AdminUsername)
	} else {
		sugar.Warnw("ADMIN_PASSWORD not set; skipping admin bootstrap")
	}

	h := handlers.NewHandler(noteService, userService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
