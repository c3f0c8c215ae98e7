package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yohanvishvajith/sintravels-sub000/internal/config"
	"github.com/yohanvishvajith/sintravels-sub000/internal/domain/fiber/handler"
	"github.com/yohanvishvajith/sintravels-sub000/internal/logger"
	"github.com/yohanvishvajith/sintravels-sub000/internal/middleware"
	"github.com/yohanvishvajith/sintravels-sub000/internal/model"
	"github.com/yohanvishvajith/sintravels-sub000/internal/repository"
	"github.com/yohanvishvajith/sintravels-sub000/internal/service"
	"github.com/yohanvishvajith/sintravels-sub000/internal/usecase"
	"github.com/yohanvishvajith/sintravels-sub000/internal/wizard"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	logger.Init(appConfig.Env)

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return ctx.Status(code).JSON(fiber.Map{"ok": false, "error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))
	app.Use(middleware.AuthGate())

	app.Static("/uploads", "./public/uploads")

	db := ConnectDB()

	jobRepo := repository.NewJobRepository(db)
	userRepo := repository.NewUserRepository(db)
	applicantRepo := repository.NewApplicantRepository(db)
	refRepo := repository.NewReferenceRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)

	mail := service.NewMailService()
	wizardStore := wizard.NewStore()

	jobUC := usecase.NewJobUsecase(jobRepo)
	authUC := usecase.NewAuthUsecase(userRepo)
	applyUC := usecase.NewApplicationUsecase(applicantRepo)
	refUC := usecase.NewReferenceUsecase(refRepo)
	visitorUC := usecase.NewVisitorUsecase(visitorRepo)
	dashboardUC := usecase.NewDashboardUsecase(jobRepo, applicantRepo, refRepo, userRepo)

	handler.NewJobHandler(jobUC).RegisterRoutes(app)
	handler.NewAuthHandler(authUC).RegisterRoutes(app)
	handler.NewApplyHandler(applyUC).RegisterRoutes(app)
	handler.NewWizardHandler(wizardStore, applyUC).RegisterRoutes(app)
	handler.NewReferenceHandler(refUC).RegisterRoutes(app)
	handler.NewUploadHandler().RegisterRoutes(app)
	handler.NewContactHandler(mail).RegisterRoutes(app)
	handler.NewVisitorHandler(visitorUC, dashboardUC).RegisterRoutes(app)

	// Sweep abandoned wizard sessions.
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if n := wizardStore.Sweep(); n > 0 {
				log.Info().Int("removed", n).Msg("swept expired wizard sessions")
			}
		}
	}()

	log.Info().Str("port", appConfig.Port).Msg("server running")
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("could not get database instance")
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.Job{},
		&model.JobBenefit{},
		&model.User{},
		&model.Applicant{},
		&model.Country{},
		&model.Industry{},
		&model.Benefit{},
		&model.Visitor{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	return db
}
