package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/AndyIsBuilding/calorie-counter/internal/auth"
	"github.com/AndyIsBuilding/calorie-counter/internal/dailylog"
	"github.com/AndyIsBuilding/calorie-counter/internal/food"
	"github.com/AndyIsBuilding/calorie-counter/internal/goals"
	"github.com/AndyIsBuilding/calorie-counter/internal/logging"
	"github.com/AndyIsBuilding/calorie-counter/internal/middleware"
	"github.com/AndyIsBuilding/calorie-counter/internal/recommend"
	"github.com/AndyIsBuilding/calorie-counter/internal/summary"
)

type Deps struct {
	Log         logrus.FieldLogger
	Tokens      *auth.Tokens
	CORSOrigins []string

	Foods     *food.Handler
	DailyLog  *dailylog.Handler
	Goals     *goals.Handler
	Recommend *recommend.Handler
	Summaries *summary.Handler
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger(d.Log))

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("")
	api.Use(middleware.AuthMiddleware(d.Tokens))

	// ───────────────────────── CATALOG ─────────────────────────
	foods := api.Group("/foods")
	{
		foods.GET("", d.Foods.List)
		foods.POST("", d.Foods.Create)
		foods.DELETE("/:id", d.Foods.Delete)
	}

	// ───────────────────────── DAILY LOG ─────────────────────────
	logs := api.Group("/log")
	{
		logs.GET("/today", d.DailyLog.Today)
		logs.POST("", d.DailyLog.LogFood)
		logs.POST("/quick/:foodID", d.DailyLog.LogQuickFood)
		logs.DELETE("/:id", d.DailyLog.Remove)
	}

	// ───────────────────────── SUMMARIES ─────────────────────────
	api.GET("/summaries", d.Summaries.Recent)
	api.POST("/summaries", d.Summaries.Save)

	// ───────────────────────── GOALS ─────────────────────────
	api.GET("/goals", d.Goals.Get)
	api.PUT("/goals", d.Goals.Update)

	// ───────────────────────── RECOMMENDATIONS ─────────────────────────
	api.GET("/recommendations", d.Recommend.Get)
	api.POST("/recommendations", d.Recommend.Get)

	return r
}
