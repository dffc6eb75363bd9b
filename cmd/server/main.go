package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/ciberseguria/sgsi-express/internal/api"
	"github.com/ciberseguria/sgsi-express/internal/config"
	"github.com/ciberseguria/sgsi-express/internal/database"
	"github.com/ciberseguria/sgsi-express/internal/middleware"
	"github.com/ciberseguria/sgsi-express/internal/report"
	"github.com/ciberseguria/sgsi-express/internal/services"
)

func initLogger() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))
}

func main() {
	initLogger()
	cfg := config.Load()

	db, err := database.NewConnection(cfg.DatabasePath)
	if err != nil {
		slog.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	if err := database.SeedCatalog(db); err != nil {
		slog.Error("catalog seeding failed", "err", err)
		os.Exit(1)
	}

	accounts := database.NewAccountRepository(db)
	questions := database.NewQuestionRepository(db)
	assessments := database.NewAssessmentRepository(db)

	issuer := middleware.NewTokenIssuer(cfg.JWTSecret)
	auth := middleware.NewAuth(issuer, accounts)

	authService := services.NewAuthService(accounts, issuer.Sign, cfg.TokenTTL, cfg.BcryptCost)
	catalogService := services.NewCatalogService(questions)
	assessmentService := services.NewAssessmentService(assessments, questions)
	composer := report.NewComposer(assessments)

	e := api.NewRouter(
		api.NewAuthController(authService),
		api.NewAssessmentController(assessmentService, catalogService),
		api.NewReportController(assessmentService, composer),
		auth,
		cfg.SessionSecret,
	)

	slog.Info("sgsi-express listening", "addr", cfg.Addr)
	if err := e.Start(cfg.Addr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
