// file: main.go
package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/derrick-nuby/talent-vortex-be/config"
	"github.com/derrick-nuby/talent-vortex-be/controllers"
	"github.com/derrick-nuby/talent-vortex-be/database"
	"github.com/derrick-nuby/talent-vortex-be/routes"
	"github.com/derrick-nuby/talent-vortex-be/services"
	"github.com/derrick-nuby/talent-vortex-be/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	utils.SetJWTSecret(cfg.JWTSecret)
	utils.SetCryptoSecret(cfg.CryptoSecret)

	database.Connect(cfg.DatabaseDSN)
	database.InitRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	database.MigrateTables()

	cache := &database.RedisCache{Client: database.RDB}

	mailService := services.NewMailService(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword,
		cfg.MailFrom, cfg.AppURL, cfg.FrontendURL, logger,
	)

	applicationService := services.NewApplicationService(
		database.NewApplicationStore(database.DB),
		database.NewChallengeReader(database.DB),
		database.NewUserDirectory(database.DB),
		mailService,
		logger,
	)

	controllers.Init(
		services.NewAuthService(database.DB, mailService, logger),
		applicationService,
		services.NewChallengeService(database.DB, cache),
		services.NewCategoryService(database.DB),
		services.NewSubmissionService(database.DB),
		services.NewAnalyticsService(database.DB, cache),
		services.NewFormService(database.DB),
	)

	r := routes.SetupRouter()

	logger.Info("Starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to run server", zap.Error(err))
	}
}
