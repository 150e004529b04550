package main

import (
	"fmt"
	"os"

	"github.com/amberdrive/backoffice/internal/ai"
	"github.com/amberdrive/backoffice/internal/auth"
	"github.com/amberdrive/backoffice/internal/config"
	"github.com/amberdrive/backoffice/internal/db"
	"github.com/amberdrive/backoffice/internal/excel"
	httphandler "github.com/amberdrive/backoffice/internal/http"
	"github.com/amberdrive/backoffice/internal/http/middleware"
	"github.com/amberdrive/backoffice/internal/logger"
	"github.com/amberdrive/backoffice/internal/pdf"
	"github.com/amberdrive/backoffice/internal/repository"
	"github.com/amberdrive/backoffice/internal/service"
	"github.com/amberdrive/backoffice/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	images, err := storage.NewDiskStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init image storage")
	}

	carRepo := repository.NewCarRepository(database)
	quoteRepo := repository.NewQuoteRepository(database)
	userRepo := repository.NewUserRepository(database)
	statsRepo := repository.NewStatsRepository(database)

	issuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(userRepo, issuer)
	carService := service.NewCarService(carRepo, images)
	quoteService := service.NewQuoteService(quoteRepo, carRepo, pdf.NewGenerator(), excel.NewGenerator())
	searchService := service.NewSearchService(carRepo, ai.NewClient(cfg.AI))
	statsService := service.NewStatsService(statsRepo, quoteRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(authService, carService, quoteService, searchService, statsService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.Uploads.Dir)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting backoffice service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
