package main

import (
	"context"
	"os"

	"github.com/AndyIsBuilding/calorie-counter/internal/auth"
	"github.com/AndyIsBuilding/calorie-counter/internal/config"
	"github.com/AndyIsBuilding/calorie-counter/internal/dailylog"
	"github.com/AndyIsBuilding/calorie-counter/internal/db"
	"github.com/AndyIsBuilding/calorie-counter/internal/food"
	"github.com/AndyIsBuilding/calorie-counter/internal/goals"
	"github.com/AndyIsBuilding/calorie-counter/internal/logging"
	"github.com/AndyIsBuilding/calorie-counter/internal/recommend"
	"github.com/AndyIsBuilding/calorie-counter/internal/router"
	"github.com/AndyIsBuilding/calorie-counter/internal/summary"

	"github.com/gin-gonic/gin"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", os.Stderr).WithError(err).Fatal("invalid configuration")
	}

	log := logging.New(cfg.LogLevel, os.Stdout)
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens, err := auth.NewTokens(cfg.JWTSecret, auth.DefaultTokenTTL)
	if err != nil {
		log.WithError(err).Fatal("auth init failed")
	}

	// ───────────────────────── STORES ─────────────────────────
	var (
		foodRepo  food.Repository
		logRepo   dailylog.Repository
		goalsRepo goals.Repository
		sumRepo   summary.Repository
	)

	switch cfg.DBDriver {
	case config.DriverSQLite:
		conn, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.WithError(err).Fatal("sqlite init failed")
		}
		defer conn.Close()
		log.WithField("path", cfg.SQLitePath).Info("using sqlite store")

		foodRepo = food.NewSQLiteRepository(conn)
		logRepo = dailylog.NewSQLiteRepository(conn)
		goalsRepo = goals.NewSQLiteRepository(conn)
		sumRepo = summary.NewSQLiteRepository(conn)

	default:
		pool, err := db.ConnectPostgres(context.Background(), cfg.DatabaseURL, log)
		if err != nil {
			log.WithError(err).Fatal("postgres init failed")
		}
		defer pool.Close()

		foodRepo = food.NewPostgresRepository(pool)
		logRepo = dailylog.NewPostgresRepository(pool)
		goalsRepo = goals.NewPostgresRepository(pool)
		sumRepo = summary.NewPostgresRepository(pool)
	}

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	foodService := food.NewService(foodRepo)
	logService := dailylog.NewService(logRepo, foodService, cfg.Location, log)
	goalService := goals.NewService(goalsRepo, logService)
	sumService := summary.NewService(sumRepo, logService, goalService, log)
	recService := recommend.NewService(
		foodService,
		logService,
		goalService,
		recommend.Options{
			MinFoods: cfg.RecommendMinFoods,
			MaxCells: cfg.RecommendMaxCells,
		},
		log,
	)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Deps{
		Log:         log,
		Tokens:      tokens,
		CORSOrigins: cfg.CORSOrigins,
		Foods:       food.NewHandler(foodService),
		DailyLog:    dailylog.NewHandler(logService),
		Goals:       goals.NewHandler(goalService),
		Recommend:   recommend.NewHandler(recService),
		Summaries:   summary.NewHandler(sumService),
	})

	// ───────────────────────── START ─────────────────────────
	log.WithField("port", cfg.Port).Info("API running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Error("server stopped")
	}
}
